package generation

import (
	"context"

	"github.com/samacademy/cohortgen/internal/content"
)

// Mock is a Backend with per-step function hooks for tests. Unset hooks
// return minimal successful results.
type Mock struct {
	ScriptFn        func(ctx context.Context, topic string, lengthMinutes int, ref content.ModelRef) (*ScriptResult, error)
	ImageFn         func(ctx context.Context, slideScript string, slideNumber int, topic string, ref content.ModelRef) (string, error)
	SpeechFn        func(ctx context.Context, text, voice string) (string, error)
	QuizPromptFn    func(ctx context.Context, topic, questionType string, numQuestions int, ref content.ModelRef) (string, error)
	QuizQuestionsFn func(ctx context.Context, prompt, topic, questionType string, numQuestions int, ref content.ModelRef) (*QuizResult, error)
}

func (m *Mock) GenerateScript(ctx context.Context, topic string, lengthMinutes int, ref content.ModelRef) (*ScriptResult, error) {
	if m.ScriptFn != nil {
		return m.ScriptFn(ctx, topic, lengthMinutes, ref)
	}
	n := SlideCount(lengthMinutes)
	slides := make([]content.Slide, n)
	for i := range slides {
		slides[i] = content.Slide{SlideNumber: i + 1, Script: "slide narration"}
	}
	return &ScriptResult{Script: "full narration", Slides: slides}, nil
}

func (m *Mock) GenerateImage(ctx context.Context, slideScript string, slideNumber int, topic string, ref content.ModelRef) (string, error) {
	if m.ImageFn != nil {
		return m.ImageFn(ctx, slideScript, slideNumber, topic, ref)
	}
	return "https://example.test/image.png", nil
}

func (m *Mock) GenerateSpeech(ctx context.Context, text, voice string) (string, error) {
	if m.SpeechFn != nil {
		return m.SpeechFn(ctx, text, voice)
	}
	return "file:///tmp/speech.mp3", nil
}

func (m *Mock) GenerateQuizPrompt(ctx context.Context, topic, questionType string, numQuestions int, ref content.ModelRef) (string, error) {
	if m.QuizPromptFn != nil {
		return m.QuizPromptFn(ctx, topic, questionType, numQuestions, ref)
	}
	return "quiz brief", nil
}

func (m *Mock) GenerateQuizQuestions(ctx context.Context, prompt, topic, questionType string, numQuestions int, ref content.ModelRef) (*QuizResult, error) {
	if m.QuizQuestionsFn != nil {
		return m.QuizQuestionsFn(ctx, prompt, topic, questionType, numQuestions, ref)
	}
	qs := make([]content.QuizQuestion, numQuestions)
	for i := range qs {
		qs[i] = content.QuizQuestion{
			Question:      "question",
			Type:          questionType,
			CorrectAnswer: "answer",
			Explanation:   "because",
		}
	}
	return &QuizResult{Questions: qs}, nil
}
