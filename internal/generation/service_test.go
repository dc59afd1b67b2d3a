package generation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/llm"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.CallTimeout = time.Second
	cfg.RatePerMinute = 6000
	return cfg
}

func TestSlideCount(t *testing.T) {
	tests := []struct {
		minutes int
		want    int
	}{
		{0, 3},
		{4, 3},
		{6, 3},
		{8, 4},
		{10, 5},
		{20, 10},
	}
	for _, tt := range tests {
		if got := SlideCount(tt.minutes); got != tt.want {
			t.Errorf("SlideCount(%d) = %d, want %d", tt.minutes, got, tt.want)
		}
	}
}

func TestGenerateScript_ParsesSlides(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"script":"full text","slides":[{"slideNumber":1,"script":"a"},{"slideNumber":2,"script":"b"},{"slideNumber":3,"script":"c"}]}`),
	})
	svc := NewService(mock, nil, testConfig())

	out, err := svc.GenerateScript(context.Background(), "photosynthesis", 6, content.ModelRef{Provider: "openai", Model: "gpt-4o"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Script != "full text" {
		t.Fatalf("unexpected script: %q", out.Script)
	}
	if len(out.Slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(out.Slides))
	}
	if out.Slides[1].SlideNumber != 2 || out.Slides[1].Script != "b" {
		t.Fatalf("unexpected slide: %+v", out.Slides[1])
	}

	// The combo's model must reach the provider as a per-request override.
	if len(mock.Calls) != 1 || mock.Calls[0].Model != "gpt-4o" {
		t.Fatalf("expected model override gpt-4o, got %+v", mock.Calls)
	}
	if mock.Calls[0].Schema != ScriptSchema {
		t.Fatal("expected script schema on the request")
	}
}

func TestGenerateScript_PropagatesFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	svc := NewService(mock, nil, testConfig())

	_, err := svc.GenerateScript(context.Background(), "photosynthesis", 6, content.ModelRef{})
	if err == nil {
		t.Fatal("expected error")
	}
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got: %v", err)
	}
}

func TestGenerateQuizPrompt_ReturnsText(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"cover fractions, then ratios"`),
	})
	svc := NewService(mock, nil, testConfig())

	prompt, err := svc.GenerateQuizPrompt(context.Background(), "fractions", content.QuestionMCQ, 5, content.ModelRef{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prompt != "cover fractions, then ratios" {
		t.Fatalf("unexpected prompt: %q", prompt)
	}
}

func TestGenerateQuizQuestions_ParsesQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"questions":[{"question":"2+2?","type":"MCQ","options":["3","4","5","6"],"correctAnswer":"4","explanation":"arithmetic"}]}`),
	})
	svc := NewService(mock, nil, testConfig())

	out, err := svc.GenerateQuizQuestions(context.Background(), "brief", "arithmetic", content.QuestionMCQ, 1, content.ModelRef{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Questions) != 1 {
		t.Fatalf("expected 1 question, got %d", len(out.Questions))
	}
	if out.Questions[0].CorrectAnswer != "4" {
		t.Fatalf("unexpected answer: %q", out.Questions[0].CorrectAnswer)
	}
}

func TestGenerateImage_NoMediaClient(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil, testConfig())
	_, err := svc.GenerateImage(context.Background(), "slide", 1, "topic", content.ModelRef{})
	if err == nil {
		t.Fatal("expected error without a media client")
	}
}

func TestGenerateSpeech_NoMediaClient(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), nil, testConfig())
	_, err := svc.GenerateSpeech(context.Background(), "hello", "")
	if err == nil {
		t.Fatal("expected error without a media client")
	}
}
