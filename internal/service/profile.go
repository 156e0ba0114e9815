package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

const maxGoalLength = 200

// FieldError describes why one submitted profile field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every rejected field of a profile update.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	parts := make([]string, len(fe))
	for i, e := range fe {
		parts[i] = e.Field + ": " + e.Message
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

// Is makes FieldErrors match domain.ErrInvalidInput.
func (fe FieldErrors) Is(target error) bool {
	return target == domain.ErrInvalidInput
}

func (fe *FieldErrors) add(field, msg string) {
	*fe = append(*fe, FieldError{Field: field, Message: msg})
}

// ValidateProfileUpdate checks the recognized fields of a partial profile
// update against the current user. Unknown keys are ignored. All failures
// are collected before returning.
func ValidateProfileUpdate(fields map[string]json.RawMessage, current *domain.User) (domain.ProfileChanges, FieldErrors) {
	var changes domain.ProfileChanges
	var errs FieldErrors

	if raw, ok := fields["displayName"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil {
			errs.add("displayName", "must be a string")
		} else {
			name = SanitizeDisplayName(name, current.DisplayName)
			if name == "" {
				errs.add("displayName", "must not be empty")
			} else {
				changes.DisplayName = &name
			}
		}
	}

	if raw, ok := fields["level"]; ok {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			errs.add("level", "must be a string")
		} else if level, err := domain.ParseLevel(s); err != nil {
			errs.add("level", "must be one of beginner, intermediate, advanced")
		} else {
			changes.Level = &level
		}
	}

	if raw, ok := fields["goal"]; ok {
		var goal string
		if err := json.Unmarshal(raw, &goal); err != nil {
			errs.add("goal", "must be a string")
		} else if utf8.RuneCountInString(goal) > maxGoalLength {
			errs.add("goal", fmt.Sprintf("must be at most %d characters", maxGoalLength))
		} else {
			goal = strings.TrimSpace(goal)
			changes.Goal = &goal
		}
	}

	if raw, ok := fields["scenarios"]; ok {
		scenarios, msg := parseScenarioList(raw, current.Plan)
		if msg != "" {
			errs.add("scenarios", msg)
		} else {
			changes.Scenarios = scenarios
		}
	}

	return changes, errs
}

func parseScenarioList(raw json.RawMessage, plan domain.Plan) ([]domain.Scenario, string) {
	var tags []string
	if err := json.Unmarshal(raw, &tags); err != nil || tags == nil {
		return nil, "must be an array of scenario names"
	}

	seen := make(map[domain.Scenario]bool, len(tags))
	scenarios := make([]domain.Scenario, 0, len(tags))
	for _, tag := range tags {
		s, err := domain.ParseScenario(tag)
		if err != nil {
			return nil, fmt.Sprintf("unknown scenario %q", tag)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		scenarios = append(scenarios, s)
	}

	if limit := plan.MaxScenarios(); limit > 0 && len(scenarios) > limit {
		return nil, fmt.Sprintf("the %s plan allows at most %d scenarios", plan, limit)
	}
	return scenarios, ""
}

// ProfileService reads and updates learner profiles.
type ProfileService struct {
	users domain.UserRepository
}

func NewProfileService(users domain.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile validates fields and applies them only when every field is
// valid. The returned error is a FieldErrors when validation fails.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, fields map[string]json.RawMessage) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	changes, fieldErrs := ValidateProfileUpdate(fields, user)
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	if changes.Empty() {
		return user, nil
	}

	if err := s.users.UpdateProfile(ctx, userID, changes); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.users.GetByID(ctx, userID)
}
