package service

import (
	"slices"

	"github.com/msomdec/dagligsvensk/internal/domain"
)

// DefaultScenario is served when a scenario has no scripted lesson.
const DefaultScenario = domain.ScenarioShopping

// LessonService serves the static scripted lessons.
type LessonService struct {
	content map[domain.Scenario][]domain.LessonStep
}

func NewLessonService() *LessonService {
	return &LessonService{content: lessonContent}
}

// Resolve returns the scenario whose content will actually be served for s.
func (s *LessonService) Resolve(sc domain.Scenario) domain.Scenario {
	if _, ok := s.content[sc]; ok {
		return sc
	}
	return DefaultScenario
}

// Steps returns a copy of the lesson for sc, falling back to DefaultScenario.
func (s *LessonService) Steps(sc domain.Scenario) []domain.LessonStep {
	return slices.Clone(s.content[s.Resolve(sc)])
}

// ForUser picks the lesson for the user's first selected scenario.
func (s *LessonService) ForUser(user *domain.User) (domain.Scenario, []domain.LessonStep) {
	sc := DefaultScenario
	if user != nil && len(user.Scenarios) > 0 {
		sc = user.Scenarios[0]
	}
	sc = s.Resolve(sc)
	return sc, s.Steps(sc)
}
