package store

import (
	"context"
	"fmt"

	"github.com/samacademy/cohortgen/ent"
	"github.com/samacademy/cohortgen/ent/performanceprofile"
	"github.com/samacademy/cohortgen/internal/content"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) ByKey(ctx context.Context, key ProfileKey) (*Profile, error) {
	row, err := r.client.PerformanceProfile.Query().
		Where(
			performanceprofile.ComboKeyEQ(key.ComboKey),
			performanceprofile.TopicEQ(key.Topic),
			performanceprofile.PurposeEQ(key.Purpose),
			performanceprofile.LengthBucketEQ(key.LengthBucket),
			performanceprofile.KindEQ(string(key.Kind)),
			performanceprofile.GradeEQ(key.Grade),
			performanceprofile.SubjectEQ(key.Subject),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query profile: %w", err)
	}
	return profileFromRow(row), nil
}

func (r *profileRepo) Create(ctx context.Context, p *Profile) (*Profile, error) {
	row, err := r.client.PerformanceProfile.Create().
		SetComboKey(p.Key.ComboKey).
		SetTopic(p.Key.Topic).
		SetPurpose(p.Key.Purpose).
		SetLengthBucket(p.Key.LengthBucket).
		SetKind(string(p.Key.Kind)).
		SetGrade(p.Key.Grade).
		SetSubject(p.Key.Subject).
		SetClarityAvg(p.ClarityAvg).
		SetEngagementAvg(p.EngagementAvg).
		SetConfidenceAvg(p.ConfidenceAvg).
		SetAttentionAvg(p.AttentionAvg).
		SetFatigueSlope(p.FatigueSlope).
		SetSessionCount(p.SessionCount).
		SetPerformanceScore(p.PerformanceScore).
		SetProfileStatus(p.Status).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return profileFromRow(row), nil
}

func (r *profileRepo) Update(ctx context.Context, p *Profile) error {
	_, err := r.client.PerformanceProfile.UpdateOneID(p.ID).
		SetClarityAvg(p.ClarityAvg).
		SetEngagementAvg(p.EngagementAvg).
		SetConfidenceAvg(p.ConfidenceAvg).
		SetAttentionAvg(p.AttentionAvg).
		SetFatigueSlope(p.FatigueSlope).
		SetSessionCount(p.SessionCount).
		SetPerformanceScore(p.PerformanceScore).
		SetProfileStatus(p.Status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update profile %d: %w", p.ID, err)
	}
	return nil
}

func (r *profileRepo) SetStatus(ctx context.Context, id int, status string) error {
	_, err := r.client.PerformanceProfile.UpdateOneID(id).
		SetProfileStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set profile %d status: %w", id, err)
	}
	return nil
}

func (r *profileRepo) List(ctx context.Context) ([]*Profile, error) {
	rows, err := r.client.PerformanceProfile.Query().
		Order(ent.Desc(performanceprofile.FieldPerformanceScore)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	out := make([]*Profile, len(rows))
	for i, row := range rows {
		out[i] = profileFromRow(row)
	}
	return out, nil
}

func profileFromRow(row *ent.PerformanceProfile) *Profile {
	return &Profile{
		ID: row.ID,
		Key: ProfileKey{
			ComboKey:     row.ComboKey,
			Topic:        row.Topic,
			Purpose:      row.Purpose,
			LengthBucket: row.LengthBucket,
			Kind:         content.Kind(row.Kind),
			Grade:        row.Grade,
			Subject:      row.Subject,
		},
		ClarityAvg:       row.ClarityAvg,
		EngagementAvg:    row.EngagementAvg,
		ConfidenceAvg:    row.ConfidenceAvg,
		AttentionAvg:     row.AttentionAvg,
		FatigueSlope:     row.FatigueSlope,
		SessionCount:     row.SessionCount,
		PerformanceScore: row.PerformanceScore,
		Status:           row.ProfileStatus,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}
