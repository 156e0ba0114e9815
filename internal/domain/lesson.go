package domain

import "encoding/json"

// LessonStep is one screen of a scripted lesson. The set of implementations
// is closed: IntroStep, ListenStep, QuizStep and PracticeStep.
type LessonStep interface {
	StepType() string
	lessonStep()
}

// IntroStep opens a lesson.
type IntroStep struct {
	Title string
	Text  string
}

// ListenStep presents a Swedish phrase to listen to, with its translation.
type ListenStep struct {
	Title       string
	Phrase      string
	Translation string
	Explanation string
}

// QuizStep is a multiple-choice question. AudioPhrase is optional.
type QuizStep struct {
	Question     string
	Options      []string
	CorrectIndex int
	AudioPhrase  string
}

// PracticeStep asks the learner to repeat a phrase.
type PracticeStep struct {
	Title       string
	Phrase      string
	Translation string
	Explanation string
}

func (IntroStep) StepType() string    { return "intro" }
func (ListenStep) StepType() string   { return "listen" }
func (QuizStep) StepType() string     { return "quiz" }
func (PracticeStep) StepType() string { return "practice" }

func (IntroStep) lessonStep()    {}
func (ListenStep) lessonStep()   {}
func (QuizStep) lessonStep()     {}
func (PracticeStep) lessonStep() {}

func (s IntroStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		Title string `json:"title"`
		Text  string `json:"text"`
	}{s.StepType(), s.Title, s.Text})
}

func (s ListenStep) MarshalJSON() ([]byte, error) {
	return marshalPhraseStep(s.StepType(), s.Title, s.Phrase, s.Translation, s.Explanation)
}

func (s PracticeStep) MarshalJSON() ([]byte, error) {
	return marshalPhraseStep(s.StepType(), s.Title, s.Phrase, s.Translation, s.Explanation)
}

func (s QuizStep) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type         string   `json:"type"`
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correctIndex"`
		AudioPhrase  string   `json:"audio,omitempty"`
	}{s.StepType(), s.Question, s.Options, s.CorrectIndex, s.AudioPhrase})
}

func marshalPhraseStep(typ, title, phrase, translation, explanation string) ([]byte, error) {
	return json.Marshal(struct {
		Type        string `json:"type"`
		Title       string `json:"title"`
		Phrase      string `json:"phrase"`
		Translation string `json:"translation"`
		Explanation string `json:"explanation"`
	}{typ, title, phrase, translation, explanation})
}
