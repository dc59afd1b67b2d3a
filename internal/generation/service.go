package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/llm"
)

// Service is the default Backend. Text steps run through the configured
// provider chain with the combo's model as a per-request override; image
// and speech synthesis use the OpenAI-compatible media client when one is
// configured.
type Service struct {
	text    llm.Provider
	media   *openai.Client
	cfg     Config
	limiter *rate.Limiter
}

// NewService creates a generation backend. media may be nil, in which case
// image and speech calls report an error and the variant engine degrades
// those slides.
func NewService(text llm.Provider, media *openai.Client, cfg Config) *Service {
	perMin := cfg.RatePerMinute
	if perMin <= 0 {
		perMin = DefaultConfig().RatePerMinute
	}
	return &Service{
		text:    text,
		media:   media,
		cfg:     cfg,
		limiter: rate.NewLimiter(rate.Limit(float64(perMin)/60.0), perMin),
	}
}

func (s *Service) GenerateScript(ctx context.Context, topic string, lengthMinutes int, ref content.ModelRef) (*ScriptResult, error) {
	ctx = llm.WithPurpose(ctx, "script")
	slideCount := SlideCount(lengthMinutes)

	resp, err := s.generate(ctx, llm.Request{
		System: scriptSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildScriptUserMessage(topic, lengthMinutes, slideCount)},
		},
		Schema:      ScriptSchema,
		Model:       ref.Model,
		MaxTokens:   s.cfg.ScriptMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("script generation: %w", err)
	}

	var out ScriptResult
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse script response: %w", err)
	}
	return &out, nil
}

func (s *Service) GenerateImage(ctx context.Context, slideScript string, slideNumber int, topic string, ref content.ModelRef) (string, error) {
	if s.media == nil {
		return "", fmt.Errorf("no media client configured")
	}
	if err := s.wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	req := openai.ImageRequest{
		Prompt:         imageSystemPrompt + "\n\n" + buildImageUserMessage(slideScript, slideNumber, topic),
		Model:          ref.Model,
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	}

	resp, err := s.media.CreateImage(ctx, req)
	if err != nil {
		return "", fmt.Errorf("image generation (slide %d): %w", slideNumber, err)
	}
	if len(resp.Data) == 0 {
		return "", nil
	}
	return resp.Data[0].URL, nil
}

func (s *Service) GenerateSpeech(ctx context.Context, text, voice string) (string, error) {
	if s.media == nil {
		return "", fmt.Errorf("no media client configured")
	}
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	if voice == "" {
		voice = s.cfg.Voice
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	audio, err := s.media.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.SpeechVoice(voice),
	})
	if err != nil {
		return "", fmt.Errorf("speech synthesis: %w", err)
	}
	defer audio.Close()

	return s.writeAudio(audio)
}

func (s *Service) GenerateQuizPrompt(ctx context.Context, topic, questionType string, numQuestions int, ref content.ModelRef) (string, error) {
	ctx = llm.WithPurpose(ctx, "quiz-prompt")

	resp, err := s.generate(ctx, llm.Request{
		System: quizPromptSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizPromptUserMessage(topic, questionType, numQuestions)},
		},
		Model:       ref.Model,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("quiz prompt generation: %w", err)
	}
	return resp.Text(), nil
}

func (s *Service) GenerateQuizQuestions(ctx context.Context, prompt, topic, questionType string, numQuestions int, ref content.ModelRef) (*QuizResult, error) {
	ctx = llm.WithPurpose(ctx, "quiz-questions")

	resp, err := s.generate(ctx, llm.Request{
		System: quizQuestionsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizQuestionsUserMessage(prompt, topic, questionType, numQuestions)},
		},
		Schema:      QuizSchema,
		Model:       ref.Model,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz question generation: %w", err)
	}

	var out QuizResult
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}
	return &out, nil
}

// generate applies the shared rate limit and per-call timeout around a
// text generation request.
func (s *Service) generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.CallTimeout)
	defer cancel()

	return s.text.Generate(ctx, req)
}

func (s *Service) wait(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}

// writeAudio persists a synthesized audio stream under the data dir and
// returns a file URL to it.
func (s *Service) writeAudio(audio io.Reader) (string, error) {
	dir := s.cfg.DataDir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	path := filepath.Join(dir, uuid.NewString()+".mp3")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create audio file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, audio); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return "file://" + path, nil
}
