package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/msomdec/dagligsvensk/internal/domain"
	"github.com/msomdec/dagligsvensk/internal/service"
)

func fields(t *testing.T, raw string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}
	return m
}

func freeUser() *domain.User {
	return &domain.User{
		DisplayName: "Kari",
		Level:       domain.LevelBeginner,
		Scenarios:   []domain.Scenario{domain.ScenarioSurvival, domain.ScenarioShopping},
		Plan:        domain.PlanFree,
	}
}

func TestValidateProfileUpdate_Valid(t *testing.T) {
	changes, errs := service.ValidateProfileUpdate(fields(t, `{
		"displayName": "  Kari Nordmann  ",
		"level": "advanced",
		"goal": "  Move to Stockholm ",
		"scenarios": ["work", "food"],
		"plan": "pro"
	}`), freeUser())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if changes.DisplayName == nil || *changes.DisplayName != "Kari Nordmann" {
		t.Fatalf("unexpected displayName: %v", changes.DisplayName)
	}
	if changes.Level == nil || *changes.Level != domain.LevelAdvanced {
		t.Fatalf("unexpected level: %v", changes.Level)
	}
	if changes.Goal == nil || *changes.Goal != "Move to Stockholm" {
		t.Fatalf("unexpected goal: %v", changes.Goal)
	}
	if len(changes.Scenarios) != 2 || changes.Scenarios[0] != domain.ScenarioWork {
		t.Fatalf("unexpected scenarios: %v", changes.Scenarios)
	}
}

func TestValidateProfileUpdate_EmptyDisplayNameKeepsCurrent(t *testing.T) {
	changes, errs := service.ValidateProfileUpdate(fields(t, `{"displayName": "   "}`), freeUser())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if changes.DisplayName == nil || *changes.DisplayName != "Kari" {
		t.Fatalf("expected fallback to current name, got %v", changes.DisplayName)
	}

	noName := freeUser()
	noName.DisplayName = ""
	_, errs = service.ValidateProfileUpdate(fields(t, `{"displayName": ""}`), noName)
	if len(errs) != 1 || errs[0].Field != "displayName" {
		t.Fatalf("expected displayName error, got %v", errs)
	}
}

func TestValidateProfileUpdate_FreePlanScenarioCap(t *testing.T) {
	_, errs := service.ValidateProfileUpdate(fields(t, `{"scenarios": ["work", "food", "travel"]}`), freeUser())
	if len(errs) != 1 || errs[0].Field != "scenarios" {
		t.Fatalf("expected scenarios error, got %v", errs)
	}

	changes, errs := service.ValidateProfileUpdate(fields(t, `{"scenarios": ["work", "work", "food"]}`), freeUser())
	if len(errs) != 0 {
		t.Fatalf("duplicates should collapse under the cap: %v", errs)
	}
	if len(changes.Scenarios) != 2 {
		t.Fatalf("expected 2 unique scenarios, got %v", changes.Scenarios)
	}

	pro := freeUser()
	pro.Plan = domain.PlanPro
	changes, errs = service.ValidateProfileUpdate(fields(t, `{"scenarios": ["work", "food", "travel", "housing"]}`), pro)
	if len(errs) != 0 {
		t.Fatalf("pro plan should allow 4 scenarios: %v", errs)
	}
	if len(changes.Scenarios) != 4 {
		t.Fatalf("expected 4 scenarios, got %v", changes.Scenarios)
	}
}

func TestValidateProfileUpdate_CollectsAllErrors(t *testing.T) {
	_, errs := service.ValidateProfileUpdate(fields(t, `{
		"displayName": 42,
		"level": "expert",
		"goal": "`+strings.Repeat("x", 201)+`",
		"scenarios": ["space"]
	}`), freeUser())
	if len(errs) != 4 {
		t.Fatalf("expected 4 field errors, got %d: %v", len(errs), errs)
	}
	if !errors.Is(errs, domain.ErrInvalidInput) {
		t.Fatal("FieldErrors should match ErrInvalidInput")
	}
}

func TestProfileService_UpdateProfile(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()
	profiles := service.NewProfileService(db.Users())

	user, err := auth.Register(ctx, "profile@example.com", "password123", "Profile")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	updated, err := profiles.UpdateProfile(ctx, user.ID, fields(t, `{"level": "intermediate", "goal": "Work in Malmö"}`))
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.Level != domain.LevelIntermediate || updated.Goal != "Work in Malmö" {
		t.Fatalf("unexpected profile: level=%s goal=%q", updated.Level, updated.Goal)
	}
	if updated.DisplayName != "Profile" {
		t.Fatalf("displayName should be unchanged, got %q", updated.DisplayName)
	}
}

func TestProfileService_UpdateProfile_InvalidWritesNothing(t *testing.T) {
	auth, db := newTestAuthService(t)
	ctx := context.Background()
	profiles := service.NewProfileService(db.Users())

	user, err := auth.Register(ctx, "partial@example.com", "password123", "Partial")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err = profiles.UpdateProfile(ctx, user.ID, fields(t, `{"level": "advanced", "scenarios": ["work", "food", "travel"]}`))
	var fieldErrs service.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}

	got, err := profiles.GetProfile(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.Level != domain.LevelBeginner {
		t.Fatalf("level should be unchanged, got %s", got.Level)
	}
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	_, db := newTestAuthService(t)
	profiles := service.NewProfileService(db.Users())

	_, err := profiles.UpdateProfile(context.Background(), "missing", fields(t, `{"goal": "x"}`))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
