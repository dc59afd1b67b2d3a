package alerts

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type spySink struct {
	delivered []Alert
	err       error
}

func (s *spySink) Deliver(_ context.Context, a Alert) error {
	s.delivered = append(s.delivered, a)
	return s.err
}

func kinds(alerts []Alert) []string {
	out := make([]string, len(alerts))
	for i, a := range alerts {
		out[i] = a.Kind
	}
	return out
}

func hasKind(alerts []Alert, kind string) bool {
	for _, a := range alerts {
		if a.Kind == kind {
			return true
		}
	}
	return false
}

func TestEvaluate_LowClarityTriggersCollapseAndCritical(t *testing.T) {
	sink := &spySink{}
	ev := NewEvaluator(sink)

	got := ev.Evaluate(context.Background(), Session{SessionID: "s1", LearnerID: "l1"}, Signals{
		Clarity:    0.2,
		Engagement: 0.6,
		Confidence: 0.5,
	}, nil)

	if !hasKind(got, KindVitalityCollapse) {
		t.Errorf("clarity 0.2 should trigger vitality collapse, got %v", kinds(got))
	}
	if !hasKind(got, KindCriticalThresholds) {
		t.Errorf("clarity 0.2 should trigger critical thresholds, got %v", kinds(got))
	}
	if len(sink.delivered) != len(got) {
		t.Errorf("delivered %d alerts, evaluated %d", len(sink.delivered), len(got))
	}
}

func TestEvaluate_HealthySignalsTriggerNothing(t *testing.T) {
	ev := NewEvaluator(&spySink{})

	got := ev.Evaluate(context.Background(), Session{}, Signals{
		Clarity:    0.5,
		Engagement: 0.6,
		Confidence: 0.5,
	}, nil)

	if len(got) != 0 {
		t.Errorf("expected no alerts, got %v", kinds(got))
	}
}

func TestEvaluate_RisingFatigueLowersClarityBar(t *testing.T) {
	ev := NewEvaluator(&spySink{})

	got := ev.Evaluate(context.Background(), Session{}, Signals{
		Clarity:      0.35,
		Engagement:   0.6,
		Confidence:   0.5,
		FatigueTrend: "rising",
	}, nil)

	if !hasKind(got, KindVitalityCollapse) {
		t.Errorf("rising fatigue with clarity 0.35 should trigger collapse, got %v", kinds(got))
	}
	if hasKind(got, KindCriticalThresholds) {
		t.Errorf("no critical threshold breached, got %v", kinds(got))
	}
}

func TestEvaluate_CriticalMessageListsBreachedMetrics(t *testing.T) {
	ev := NewEvaluator(&spySink{})

	got := ev.Evaluate(context.Background(), Session{}, Signals{
		Clarity:    0.1,
		Engagement: 0.1,
		Confidence: 0.1,
	}, nil)

	var critical *Alert
	for i := range got {
		if got[i].Kind == KindCriticalThresholds {
			critical = &got[i]
		}
	}
	if critical == nil {
		t.Fatal("expected a critical thresholds alert")
	}
	for _, metric := range []string{"clarity", "engagement", "confidence"} {
		if !strings.Contains(critical.Message, metric) {
			t.Errorf("critical message missing %s: %q", metric, critical.Message)
		}
	}
}

func TestEvaluate_PerformanceDrop(t *testing.T) {
	ev := NewEvaluator(&spySink{})
	healthy := Signals{Clarity: 0.6, Engagement: 0.6, Confidence: 0.6}

	got := ev.Evaluate(context.Background(), Session{}, healthy, &ProfileDelta{
		NewScore:         0.4,
		PreviousScore:    0.7,
		PreviousSessions: 6,
	})
	if !hasKind(got, KindPerformanceDrop) {
		t.Errorf("score 0.4 from 0.7 should trigger performance drop, got %v", kinds(got))
	}

	// Not enough history.
	got = ev.Evaluate(context.Background(), Session{}, healthy, &ProfileDelta{
		NewScore:         0.4,
		PreviousScore:    0.7,
		PreviousSessions: 3,
	})
	if hasKind(got, KindPerformanceDrop) {
		t.Errorf("3 prior sessions should not trigger performance drop, got %v", kinds(got))
	}

	// Drop within tolerance.
	got = ev.Evaluate(context.Background(), Session{}, healthy, &ProfileDelta{
		NewScore:         0.6,
		PreviousScore:    0.7,
		PreviousSessions: 6,
	})
	if hasKind(got, KindPerformanceDrop) {
		t.Errorf("0.6 from 0.7 is within tolerance, got %v", kinds(got))
	}
}

func TestEvaluate_SinkFailureDoesNotAbort(t *testing.T) {
	sink := &spySink{err: errors.New("webhook down")}
	ev := NewEvaluator(sink)

	got := ev.Evaluate(context.Background(), Session{}, Signals{
		Clarity:    0.1,
		Engagement: 0.6,
		Confidence: 0.5,
	}, nil)

	if len(got) == 0 {
		t.Error("alerts should still be reported when the sink fails")
	}
}
