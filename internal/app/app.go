// Package app wires the store, providers, and services into one object
// every command builds on.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/samacademy/cohortgen/internal/alerts"
	"github.com/samacademy/cohortgen/internal/content"
	"github.com/samacademy/cohortgen/internal/feedback"
	"github.com/samacademy/cohortgen/internal/generation"
	"github.com/samacademy/cohortgen/internal/grouping"
	"github.com/samacademy/cohortgen/internal/llm"
	"github.com/samacademy/cohortgen/internal/scoring"
	"github.com/samacademy/cohortgen/internal/selection"
	"github.com/samacademy/cohortgen/internal/store"
	"github.com/samacademy/cohortgen/internal/surveys"
	"github.com/samacademy/cohortgen/internal/variants"
	"github.com/samacademy/cohortgen/internal/vitals"
)

// Options configures app construction. Zero values fall back to env and
// XDG defaults.
type Options struct {
	// DBPath overrides the resolved database location.
	DBPath string

	// GroupSize overrides the cohort size.
	GroupSize int

	// LLM overrides the provider configuration. When zero, configuration
	// is discovered from the environment.
	LLM *llm.Config

	// Probe overrides the vitals source. Defaults to a probe that reports
	// no capture; the simulate command injects a file probe.
	Probe vitals.Probe
}

// App is the composition root.
type App struct {
	Store *store.Store

	Provider llm.Provider
	Backend  generation.Backend

	Selector *selection.Selector
	Grouping *grouping.Orchestrator
	Engine   *variants.Engine
	Scorer   *scoring.Scorer
	Feedback *feedback.Service
	Alerts   *alerts.Evaluator
}

// New opens the store and wires every service. The LLM provider is
// optional: without any configured API key the app still serves read and
// feedback paths, and task creation fails with a clear error.
func New(ctx context.Context, opts Options) (*App, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		var err error
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	a := &App{Store: st}

	cfg, ok := resolveLLMConfig(opts)
	if ok {
		provider, err := llm.NewProvider(ctx, cfg, st.Events())
		if err != nil {
			st.Close()
			return nil, fmt.Errorf("initialize provider: %w", err)
		}
		a.Provider = provider
		a.Backend = generation.NewService(provider, mediaClient(cfg), generationConfig())
	}

	a.Selector = selection.NewSelector(st.Feedback())
	a.Grouping = grouping.NewOrchestrator(st.Classes(), st.Groups(), a.Selector, grouping.NewSegmenter(opts.GroupSize))
	if a.Backend != nil {
		a.Engine = variants.NewEngine(st.Tasks(), st.Groups(), a.Backend)
	}

	a.Scorer = scoring.NewScorer(st.Profiles())
	a.Alerts = alerts.NewEvaluator(alerts.LogSink{})

	probe := opts.Probe
	if probe == nil {
		probe = &vitals.StaticProbe{Err: fmt.Errorf("no vitals probe configured")}
	}
	a.Feedback = feedback.NewService(st.Tasks(), st.Feedback(), probe, a.Scorer, a.Alerts, surveys.LogSink{})

	return a, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.Store.Close()
}

// CreateTaskParams carries the fields for a new canonical task.
type CreateTaskParams struct {
	Kind          string
	Topic         string
	ClassID       int
	Purpose       string
	LengthMinutes int
	QuestionType  string
	NumQuestions  int
}

// CreateTaskResult reports what task creation produced. Generation
// continues in the background after return.
type CreateTaskResult struct {
	Task       *store.Task
	GroupCount int
	Message    string
}

// CreateTask validates, creates the parent task, groups the class, and
// spawns variant generation in the background. It returns as soon as the
// groups are persisted; the spawn goroutine reconciles the parent when
// every variant resolves.
func (a *App) CreateTask(ctx context.Context, p CreateTaskParams) (*CreateTaskResult, error) {
	if a.Engine == nil {
		return nil, fmt.Errorf("no generation provider configured; set an API key (e.g. COHORTGEN_OPENAI_API_KEY)")
	}

	kind, err := content.ParseKind(p.Kind)
	if err != nil {
		return nil, err
	}
	if p.Topic == "" {
		return nil, fmt.Errorf("topic is required")
	}
	purpose := p.Purpose
	if purpose == "" {
		purpose = "practice"
	}

	class, err := a.Store.Classes().Get(ctx, p.ClassID)
	if err != nil {
		return nil, fmt.Errorf("load class %d: %w", p.ClassID, err)
	}

	task, err := a.Store.Tasks().Create(ctx, store.TaskDraft{
		Kind:          kind,
		Topic:         p.Topic,
		Status:        content.StatusGenerating,
		ClassID:       class.ID,
		Purpose:       purpose,
		Grade:         class.Grade,
		Subject:       class.Subject,
		LengthMinutes: p.LengthMinutes,
		QuestionType:  p.QuestionType,
		NumQuestions:  p.NumQuestions,
	})
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	res, err := a.Grouping.CreateGroupsForTask(ctx, task.ID, class.ID, grouping.TaskContext{
		Kind:    kind,
		Topic:   p.Topic,
		Purpose: purpose,
	})
	if err != nil {
		if serr := a.Store.Tasks().UpdateStatus(ctx, task.ID, content.StatusFailed); serr != nil {
			slog.Error("failed to mark task failed", "task", task.ID, "error", serr)
		}
		return nil, fmt.Errorf("group class %d: %w", class.ID, err)
	}

	if len(res.Groups) == 0 {
		if err := a.Store.Tasks().UpdateStatus(ctx, task.ID, content.StatusPending); err != nil {
			slog.Error("failed to park empty task", "task", task.ID, "error", err)
		}
		return &CreateTaskResult{Task: task, Message: res.Message}, nil
	}

	// Generation outlives the request context.
	go func() {
		bg, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()
		if err := a.Engine.SpawnVariants(bg, task.ID); err != nil {
			slog.Error("variant generation failed", "task", task.ID, "error", err)
		}
	}()

	return &CreateTaskResult{
		Task:       task,
		GroupCount: len(res.Groups),
		Message:    fmt.Sprintf("task %d: %s; generating %d variants", task.ID, res.Message, len(res.Groups)),
	}, nil
}

func resolveLLMConfig(opts Options) (llm.Config, bool) {
	if opts.LLM != nil {
		return *opts.LLM, true
	}
	if p := llm.ConfigFromEnv(); p.Validate() == nil && hasKey(p) {
		return p, true
	}
	if cfg, ok := llm.DiscoverConfig(); ok {
		return cfg, true
	}
	return llm.Config{}, false
}

func hasKey(cfg llm.Config) bool {
	switch cfg.Provider {
	case "anthropic":
		return cfg.Anthropic.APIKey != ""
	case "openai":
		return cfg.OpenAI.APIKey != ""
	case "gemini":
		return cfg.Gemini.APIKey != ""
	case "openrouter":
		return cfg.OpenRouter.APIKey != ""
	case "mock":
		return true
	}
	return false
}

// mediaClient builds the OpenAI-compatible client image and speech calls
// run through. Nil when no compatible key is configured; the variant
// engine then degrades media slides.
func mediaClient(cfg llm.Config) *openai.Client {
	switch {
	case cfg.OpenAI.APIKey != "":
		c := openai.DefaultConfig(cfg.OpenAI.APIKey)
		if cfg.OpenAI.BaseURL != "" {
			c.BaseURL = cfg.OpenAI.BaseURL
		}
		return openai.NewClientWithConfig(c)
	case cfg.OpenRouter.APIKey != "":
		c := openai.DefaultConfig(cfg.OpenRouter.APIKey)
		c.BaseURL = cfg.OpenRouter.BaseURL
		if c.BaseURL == "" {
			c.BaseURL = "https://openrouter.ai/api/v1"
		}
		return openai.NewClientWithConfig(c)
	}
	return nil
}

func generationConfig() generation.Config {
	cfg := generation.DefaultConfig()
	if dir, err := store.DefaultDataDir(); err == nil {
		cfg.DataDir = dir
	}
	return cfg
}
