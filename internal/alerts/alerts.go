// Package alerts watches normalized session signals for learners in
// trouble and routes findings to a sink.
package alerts

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Alert kinds.
const (
	KindVitalityCollapse   = "vitality_collapse"
	KindCriticalThresholds = "critical_thresholds"
	KindPerformanceDrop    = "performance_drop"
)

// Alert is one finding about a learner's session.
type Alert struct {
	Kind      string
	SessionID string
	LearnerID string
	TaskID    int
	Message   string
	Timestamp time.Time
}

// Sink receives alerts. Delivery failures never block the feedback
// pipeline.
type Sink interface {
	Deliver(ctx context.Context, a Alert) error
}

// LogSink writes alerts to the structured log.
type LogSink struct{}

func (LogSink) Deliver(_ context.Context, a Alert) error {
	slog.Warn("learner alert",
		"kind", a.Kind,
		"sessionId", a.SessionID,
		"learnerId", a.LearnerID,
		"taskId", a.TaskID,
		"message", a.Message)
	return nil
}

// Signals are the per-session values the evaluator inspects.
type Signals struct {
	Clarity      float64
	Engagement   float64
	Confidence   float64
	FatigueTrend string
}

// ProfileDelta compares a profile's score before and after an update.
type ProfileDelta struct {
	NewScore         float64
	PreviousScore    float64
	PreviousSessions int
}

// Session identifies the session under evaluation.
type Session struct {
	SessionID string
	LearnerID string
	TaskID    int
}

// Evaluator applies the alert rules and fans findings out to a sink.
type Evaluator struct {
	sink Sink
	now  func() time.Time
}

func NewEvaluator(sink Sink) *Evaluator {
	return &Evaluator{sink: sink, now: time.Now}
}

// regressionFactor flags a profile whose score fell below this fraction
// of its previous value.
const regressionFactor = 0.8

// regressionMinSessions is how much history a profile needs before a
// score drop is meaningful.
const regressionMinSessions = 5

// Evaluate runs every rule against one session's signals and profile
// delta. Sink errors are logged and swallowed; evaluation always
// completes.
func (e *Evaluator) Evaluate(ctx context.Context, s Session, sig Signals, delta *ProfileDelta) []Alert {
	var found []Alert

	if msg, ok := vitalityCollapse(sig); ok {
		found = append(found, e.alert(KindVitalityCollapse, s, msg))
	}
	if msg, ok := criticalThresholds(sig); ok {
		found = append(found, e.alert(KindCriticalThresholds, s, msg))
	}
	if delta != nil && delta.PreviousSessions >= regressionMinSessions &&
		delta.NewScore < regressionFactor*delta.PreviousScore {
		msg := fmt.Sprintf("performance score dropped from %.3f to %.3f", delta.PreviousScore, delta.NewScore)
		found = append(found, e.alert(KindPerformanceDrop, s, msg))
	}

	for _, a := range found {
		if err := e.sink.Deliver(ctx, a); err != nil {
			slog.Warn("alert delivery failed", "kind", a.Kind, "error", err)
		}
	}
	return found
}

func (e *Evaluator) alert(kind string, s Session, msg string) Alert {
	return Alert{
		Kind:      kind,
		SessionID: s.SessionID,
		LearnerID: s.LearnerID,
		TaskID:    s.TaskID,
		Message:   msg,
		Timestamp: e.now(),
	}
}

func vitalityCollapse(sig Signals) (string, bool) {
	switch {
	case sig.Clarity < 0.3:
		return fmt.Sprintf("clarity collapsed to %.2f", sig.Clarity), true
	case sig.Engagement < 0.3:
		return fmt.Sprintf("engagement collapsed to %.2f", sig.Engagement), true
	case sig.FatigueTrend == "rising" && sig.Clarity < 0.4:
		return fmt.Sprintf("fatigue rising with clarity at %.2f", sig.Clarity), true
	}
	return "", false
}

func criticalThresholds(sig Signals) (string, bool) {
	var breached []string
	if sig.Clarity < 0.25 {
		breached = append(breached, fmt.Sprintf("clarity %.2f", sig.Clarity))
	}
	if sig.Engagement < 0.25 {
		breached = append(breached, fmt.Sprintf("engagement %.2f", sig.Engagement))
	}
	if sig.Confidence < 0.2 {
		breached = append(breached, fmt.Sprintf("confidence %.2f", sig.Confidence))
	}
	if len(breached) == 0 {
		return "", false
	}
	return "critical thresholds breached: " + strings.Join(breached, ", "), true
}
