package store

import (
	"context"
	"fmt"

	"github.com/samacademy/cohortgen/ent"
	"github.com/samacademy/cohortgen/ent/sessionfeedback"
	"github.com/samacademy/cohortgen/internal/content"
)

// feedbackRepo implements FeedbackRepo backed by ent and the global
// sequence counter.
type feedbackRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *feedbackRepo) Append(ctx context.Context, fb *Feedback) (*Feedback, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("next sequence: %w", err)
	}

	row, err := r.client.SessionFeedback.Create().
		SetSequence(seqNum).
		SetSessionID(fb.SessionID).
		SetLearnerID(fb.LearnerID).
		SetClassID(fb.ClassID).
		SetTaskID(fb.TaskID).
		SetComboKey(fb.ComboKey).
		SetCombo(fb.Combo).
		SetKind(string(fb.Kind)).
		SetTopic(fb.Topic).
		SetPurpose(fb.Purpose).
		SetLengthBucket(fb.LengthBucket).
		SetGrade(fb.Grade).
		SetSubject(fb.Subject).
		SetClarity(fb.Clarity).
		SetEngagement(fb.Engagement).
		SetCognitiveLoad(fb.CognitiveLoad).
		SetAttentionSpan(fb.AttentionSpan).
		SetConfidence(fb.Confidence).
		SetFatigueTrend(fb.FatigueTrend).
		SetFatigueSlope(fb.FatigueSlope).
		SetRawMetrics(fb.RawMetrics).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save session feedback: %w", err)
	}
	return feedbackFromRow(row), nil
}

func (r *feedbackRepo) RecentByLearner(ctx context.Context, learnerID string, f FeedbackFilter, limit int) ([]*Feedback, error) {
	query := r.client.SessionFeedback.Query().
		Where(sessionfeedback.LearnerIDEQ(learnerID))
	query = applyFilter(query, f)
	query = query.Order(ent.Desc(sessionfeedback.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query feedback of learner %s: %w", learnerID, err)
	}
	return feedbackFromRows(rows), nil
}

func (r *feedbackRepo) RecentGlobal(ctx context.Context, f FeedbackFilter, limit int) ([]*Feedback, error) {
	query := applyFilter(r.client.SessionFeedback.Query(), f).
		Order(ent.Desc(sessionfeedback.FieldSequence))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query global feedback: %w", err)
	}
	return feedbackFromRows(rows), nil
}

func (r *feedbackRepo) AttachSurvey(ctx context.Context, id int, submissionID string) error {
	_, err := r.client.SessionFeedback.UpdateOneID(id).
		SetSurveySubmissionID(submissionID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("attach survey to feedback %d: %w", id, err)
	}
	return nil
}

func applyFilter(q *ent.SessionFeedbackQuery, f FeedbackFilter) *ent.SessionFeedbackQuery {
	if f.Kind != "" {
		q = q.Where(sessionfeedback.KindEQ(string(f.Kind)))
	}
	if f.Grade != "" {
		q = q.Where(sessionfeedback.GradeEQ(f.Grade))
	}
	if f.Subject != "" {
		q = q.Where(sessionfeedback.SubjectEQ(f.Subject))
	}
	return q
}

func feedbackFromRows(rows []*ent.SessionFeedback) []*Feedback {
	out := make([]*Feedback, len(rows))
	for i, row := range rows {
		out[i] = feedbackFromRow(row)
	}
	return out
}

func feedbackFromRow(row *ent.SessionFeedback) *Feedback {
	return &Feedback{
		ID:                 row.ID,
		Sequence:           row.Sequence,
		SessionID:          row.SessionID,
		LearnerID:          row.LearnerID,
		ClassID:            row.ClassID,
		TaskID:             row.TaskID,
		ComboKey:           row.ComboKey,
		Combo:              row.Combo,
		Kind:               content.Kind(row.Kind),
		Topic:              row.Topic,
		Purpose:            row.Purpose,
		LengthBucket:       row.LengthBucket,
		Grade:              row.Grade,
		Subject:            row.Subject,
		Clarity:            row.Clarity,
		Engagement:         row.Engagement,
		CognitiveLoad:      row.CognitiveLoad,
		AttentionSpan:      row.AttentionSpan,
		Confidence:         row.Confidence,
		FatigueTrend:       row.FatigueTrend,
		FatigueSlope:       row.FatigueSlope,
		RawMetrics:         row.RawMetrics,
		SurveySubmissionID: row.SurveySubmissionID,
		Timestamp:          row.Timestamp,
	}
}
