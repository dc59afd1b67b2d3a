package store

import (
	"context"
	"fmt"

	"github.com/samacademy/cohortgen/ent"
	"github.com/samacademy/cohortgen/ent/enrollment"
)

// classRepo implements ClassRepo using the ent client.
type classRepo struct {
	client *ent.Client
}

func (r *classRepo) Create(ctx context.Context, name, grade, subject string) (*Class, error) {
	row, err := r.client.Class.Create().
		SetName(name).
		SetGrade(grade).
		SetSubject(subject).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save class: %w", err)
	}
	return classFromRow(row), nil
}

func (r *classRepo) Get(ctx context.Context, id int) (*Class, error) {
	row, err := r.client.Class.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("class %d not found", id)
		}
		return nil, fmt.Errorf("get class %d: %w", id, err)
	}
	return classFromRow(row), nil
}

func (r *classRepo) Enroll(ctx context.Context, classID int, learnerID string) error {
	_, err := r.client.Enrollment.Create().
		SetClassID(classID).
		SetLearnerID(learnerID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("enroll learner %s in class %d: %w", learnerID, classID, err)
	}
	return nil
}

func (r *classRepo) EnrolledLearners(ctx context.Context, classID int) ([]string, error) {
	rows, err := r.client.Enrollment.Query().
		Where(enrollment.ClassIDEQ(classID)).
		Order(ent.Asc(enrollment.FieldCreatedAt), ent.Asc(enrollment.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query enrollments of class %d: %w", classID, err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.LearnerID
	}
	return ids, nil
}

func classFromRow(row *ent.Class) *Class {
	return &Class{
		ID:        row.ID,
		Name:      row.Name,
		Grade:     row.Grade,
		Subject:   row.Subject,
		CreatedAt: row.CreatedAt,
	}
}
