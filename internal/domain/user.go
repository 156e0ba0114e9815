package domain

import (
	"context"
	"fmt"
	"time"
)

// Level is a learner's self-reported proficiency.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels lists every valid level in display order.
var Levels = []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseLevel returns the Level named by s.
func ParseLevel(s string) (Level, error) {
	for _, l := range Levels {
		if string(l) == s {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown level %q", ErrInvalidInput, s)
}

// Plan is the subscription tier. It gates how many scenarios a user may pick.
type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

// ParsePlan returns the Plan named by s.
func ParsePlan(s string) (Plan, error) {
	switch Plan(s) {
	case PlanFree, PlanPro:
		return Plan(s), nil
	}
	return "", fmt.Errorf("%w: unknown plan %q", ErrInvalidInput, s)
}

// MaxScenarios returns the scenario selection limit for the plan.
// Zero means unlimited.
func (p Plan) MaxScenarios() int {
	if p == PlanFree {
		return 2
	}
	return 0
}

// Scenario is a real-life context that selects which lesson content is served.
type Scenario string

const (
	ScenarioShopping Scenario = "shopping"
	ScenarioWork     Scenario = "work"
	ScenarioPhone    Scenario = "phone"
	ScenarioDoctor   Scenario = "doctor"
	ScenarioTravel   Scenario = "travel"
	ScenarioFood     Scenario = "food"
	ScenarioHousing  Scenario = "housing"
	ScenarioSurvival Scenario = "survival"
)

// Scenarios lists the full scenario vocabulary in display order.
var Scenarios = []Scenario{
	ScenarioShopping, ScenarioWork, ScenarioPhone, ScenarioDoctor,
	ScenarioTravel, ScenarioFood, ScenarioHousing, ScenarioSurvival,
}

// StarterScenarios are assigned to every new account.
var StarterScenarios = []Scenario{ScenarioSurvival, ScenarioShopping}

// ParseScenario returns the Scenario named by s.
func ParseScenario(s string) (Scenario, error) {
	for _, sc := range Scenarios {
		if string(sc) == s {
			return sc, nil
		}
	}
	return "", fmt.Errorf("%w: unknown scenario %q", ErrInvalidInput, s)
}

// User represents a registered learner.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Level        Level
	Goal         string
	Scenarios    []Scenario
	Plan         Plan
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfileChanges is a validated partial update. Nil fields are left unchanged.
type ProfileChanges struct {
	DisplayName *string
	Level       *Level
	Goal        *string
	Scenarios   []Scenario
}

// Empty reports whether the update changes nothing.
func (c ProfileChanges) Empty() bool {
	return c.DisplayName == nil && c.Level == nil && c.Goal == nil && c.Scenarios == nil
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id string, changes ProfileChanges) error
}
