// Package content defines the instructional payload types shared by the
// store, the generation pipelines, and the selection layer.
package content

import "fmt"

// Kind identifies what a task produces.
type Kind string

const (
	KindLesson Kind = "lesson"
	KindQuiz   Kind = "quiz"
)

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindLesson, KindQuiz:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown task kind %q", s)
	}
}

// Status is the lifecycle state of a task's payload.
type Status string

const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Question types accepted by the quiz pipeline.
const (
	QuestionMCQ         = "MCQ"
	QuestionTrueFalse   = "True/False"
	QuestionShortAnswer = "Short Answer"
	QuestionMixed       = "Mixed"
)

// ModelRef names one provider/model pair for a generation role.
type ModelRef struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Name     string `json:"name,omitempty"`
}

// IsZero reports whether the reference is unset.
func (r ModelRef) IsZero() bool {
	return r.Provider == "" && r.Model == ""
}

func (r ModelRef) String() string {
	if r.IsZero() {
		return ""
	}
	return r.Provider + "/" + r.Model
}

// Combo is a named bundle of model choices for the roles a task kind needs.
// Lesson combos populate Script and Image; quiz combos populate QuizPrompt
// and QuizQuestions.
type Combo struct {
	Name          string   `json:"name"`
	Script        ModelRef `json:"scriptModel,omitempty"`
	Image         ModelRef `json:"imageModel,omitempty"`
	QuizPrompt    ModelRef `json:"quizPromptModel,omitempty"`
	QuizQuestions ModelRef `json:"quizQuestionsModel,omitempty"`
}

// Key returns the stable identity string used for performance profiles.
func (c Combo) Key() string {
	return c.Name
}

// IsZero reports whether no roles are populated.
func (c Combo) IsZero() bool {
	return c.Script.IsZero() && c.Image.IsZero() && c.QuizPrompt.IsZero() && c.QuizQuestions.IsZero()
}

// Slide is one unit of a lesson script with its generated media. Image and
// speech URLs stay empty when the corresponding generation call failed.
type Slide struct {
	SlideNumber int    `json:"slideNumber"`
	Script      string `json:"script"`
	ImageURL    string `json:"imageUrl,omitempty"`
	SpeechURL   string `json:"speechUrl,omitempty"`
}

// LessonData is the lesson payload branch.
type LessonData struct {
	Script string  `json:"script"`
	Slides []Slide `json:"slides"`
}

// QuizQuestion is one generated question with its answer key.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Type          string   `json:"type"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// QuizData is the quiz payload branch.
type QuizData struct {
	Prompt    string         `json:"prompt,omitempty"`
	Questions []QuizQuestion `json:"questions"`
}

// Payload is the tagged union of task content. Exactly one branch is
// populated, matching the task's kind.
type Payload struct {
	Lesson *LessonData `json:"lesson,omitempty"`
	Quiz   *QuizData   `json:"quiz,omitempty"`
}

// Empty reports whether no branch carries content.
func (p Payload) Empty() bool {
	if p.Lesson != nil && (p.Lesson.Script != "" || len(p.Lesson.Slides) > 0) {
		return false
	}
	if p.Quiz != nil && (p.Quiz.Prompt != "" || len(p.Quiz.Questions) > 0) {
		return false
	}
	return true
}
