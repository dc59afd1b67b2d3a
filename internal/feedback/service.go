package feedback

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samacademy/cohortgen/internal/alerts"
	"github.com/samacademy/cohortgen/internal/scoring"
	"github.com/samacademy/cohortgen/internal/store"
	"github.com/samacademy/cohortgen/internal/surveys"
	"github.com/samacademy/cohortgen/internal/vitals"
)

// Session identifies one completed learning session to ingest.
type Session struct {
	SessionID string
	LearnerID string
	ClassID   int
	TaskID    int
}

// Service runs the post-session feedback pipeline: probe, normalize,
// persist, score, alert, survey.
type Service struct {
	tasks    store.TaskRepo
	feedback store.FeedbackRepo
	probe    vitals.Probe
	scorer   *scoring.Scorer
	alerts   *alerts.Evaluator
	surveys  surveys.Sink
}

func NewService(tasks store.TaskRepo, feedback store.FeedbackRepo, probe vitals.Probe, scorer *scoring.Scorer, evaluator *alerts.Evaluator, surveySink surveys.Sink) *Service {
	return &Service{
		tasks:    tasks,
		feedback: feedback,
		probe:    probe,
		scorer:   scorer,
		alerts:   evaluator,
		surveys:  surveySink,
	}
}

// Ingest processes one session end to end. The feedback record is the
// anchor: probe or persistence failures abort, but scoring, alerting, and
// survey failures are logged and never surfaced to the session.
func (s *Service) Ingest(ctx context.Context, session Session) (*store.Feedback, error) {
	task, err := s.tasks.Get(ctx, session.TaskID)
	if err != nil {
		return nil, fmt.Errorf("load task %d: %w", session.TaskID, err)
	}

	metrics, err := s.probe.SessionMetrics(ctx, session.SessionID)
	if err != nil {
		return nil, fmt.Errorf("probe session %s: %w", session.SessionID, err)
	}

	sig := Normalize(metrics)

	fb := &store.Feedback{
		SessionID:     session.SessionID,
		LearnerID:     session.LearnerID,
		ClassID:       session.ClassID,
		TaskID:        task.ID,
		ComboKey:      task.Combo.Key(),
		Combo:         task.Combo,
		Kind:          task.Kind,
		Topic:         task.Topic,
		Purpose:       task.Purpose,
		LengthBucket:  scoring.LengthBucket(task.LengthMinutes),
		Grade:         task.Grade,
		Subject:       task.Subject,
		Clarity:       sig.Clarity,
		Engagement:    sig.Engagement,
		CognitiveLoad: sig.CognitiveLoad,
		AttentionSpan: sig.AttentionSpan,
		Confidence:    sig.Confidence,
		FatigueTrend:  sig.FatigueTrend,
		FatigueSlope:  sig.FatigueSlope,
		RawMetrics:    metrics.Raw(),
	}

	fb, err = s.feedback.Append(ctx, fb)
	if err != nil {
		return nil, fmt.Errorf("append feedback: %w", err)
	}

	var delta *alerts.ProfileDelta
	res, err := s.scorer.UpdateProfile(ctx, fb)
	if err != nil {
		slog.Error("profile update failed, feedback kept",
			"sessionId", session.SessionID, "comboKey", fb.ComboKey, "error", err)
	} else {
		delta = &alerts.ProfileDelta{
			NewScore:         res.Profile.PerformanceScore,
			PreviousScore:    res.PreviousScore,
			PreviousSessions: res.PreviousSessions,
		}
	}

	s.alerts.Evaluate(ctx, alerts.Session{
		SessionID: session.SessionID,
		LearnerID: session.LearnerID,
		TaskID:    task.ID,
	}, alerts.Signals{
		Clarity:      sig.Clarity,
		Engagement:   sig.Engagement,
		Confidence:   sig.Confidence,
		FatigueTrend: sig.FatigueTrend,
	}, delta)

	s.submitSurvey(ctx, session, task, fb.ID)

	return fb, nil
}

// submitSurvey fires the post-session survey and attaches the submission
// id. Best effort on both steps.
func (s *Service) submitSurvey(ctx context.Context, session Session, task *store.Task, feedbackID int) {
	id, err := s.surveys.Submit(ctx, surveys.Submission{
		SessionID: session.SessionID,
		LearnerID: session.LearnerID,
		TaskID:    task.ID,
		Topic:     task.Topic,
		Questions: surveys.DefaultQuestions,
	})
	if err != nil {
		slog.Warn("survey submission failed", "sessionId", session.SessionID, "error", err)
		return
	}
	if err := s.feedback.AttachSurvey(ctx, feedbackID, id); err != nil {
		slog.Warn("survey attach failed", "feedbackId", feedbackID, "error", err)
	}
}
