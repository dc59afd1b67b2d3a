package generation

import "time"

// Config holds generation pipeline settings.
type Config struct {
	// ScriptMaxTokens bounds the script step response.
	ScriptMaxTokens int

	// QuizMaxTokens bounds the quiz prompt and question step responses.
	QuizMaxTokens int

	Temperature float64

	// CallTimeout bounds each outbound generation call. Calls can run for
	// tens of seconds, so the default is deliberately generous.
	CallTimeout time.Duration

	// RatePerMinute limits outbound calls across all concurrent variants.
	RatePerMinute int

	// Voice is the default speech synthesis voice.
	Voice string

	// DataDir is where synthesized audio files are written.
	DataDir string
}

// DefaultConfig returns sensible defaults for the generation pipelines.
func DefaultConfig() Config {
	return Config{
		ScriptMaxTokens: 4096,
		QuizMaxTokens:   2048,
		Temperature:     0.7,
		CallTimeout:     180 * time.Second,
		RatePerMinute:   60,
		Voice:           "alloy",
	}
}
