// Package surveys sends post-session micro-surveys to learners. The
// transport lives behind the Sink interface; only the submission id comes
// back into the feedback record.
package surveys

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Submission is one outbound survey request.
type Submission struct {
	SessionID string
	LearnerID string
	TaskID    int
	Topic     string
	Questions []string
}

// DefaultQuestions are asked after every session.
var DefaultQuestions = []string{
	"How clear was this session?",
	"Would you want more sessions like this one?",
}

// Sink delivers a survey and returns the submission id.
type Sink interface {
	Submit(ctx context.Context, s Submission) (string, error)
}

// LogSink records the survey in the structured log and fabricates a
// submission id. Stands in until a real delivery channel exists.
type LogSink struct{}

func (LogSink) Submit(_ context.Context, s Submission) (string, error) {
	id := uuid.NewString()
	slog.Info("survey submitted",
		"submissionId", id,
		"sessionId", s.SessionID,
		"learnerId", s.LearnerID,
		"taskId", s.TaskID,
		"questions", len(s.Questions))
	return id, nil
}

// StaticSink returns a fixed id. Test helper.
type StaticSink struct {
	ID  string
	Err error

	Submissions []Submission
}

func (s *StaticSink) Submit(_ context.Context, sub Submission) (string, error) {
	s.Submissions = append(s.Submissions, sub)
	if s.Err != nil {
		return "", s.Err
	}
	return s.ID, nil
}
