package store

import (
	"context"
	"fmt"

	"github.com/samacademy/cohortgen/ent"
	"github.com/samacademy/cohortgen/ent/task"
	"github.com/samacademy/cohortgen/internal/content"
)

// taskRepo implements TaskRepo using the ent client.
type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) Create(ctx context.Context, draft TaskDraft) (*Task, error) {
	builder := r.client.Task.Create().
		SetKind(string(draft.Kind)).
		SetTopic(draft.Topic).
		SetStatus(string(draft.Status)).
		SetClassID(draft.ClassID).
		SetCombo(draft.Combo).
		SetPurpose(draft.Purpose).
		SetGrade(draft.Grade).
		SetSubject(draft.Subject).
		SetLengthMinutes(draft.LengthMinutes).
		SetQuestionType(draft.QuestionType).
		SetNumQuestions(draft.NumQuestions)

	if draft.ParentID != nil {
		builder = builder.SetParentID(*draft.ParentID)
	}
	if draft.GroupID != nil {
		builder = builder.SetGroupID(*draft.GroupID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	return taskFromRow(row), nil
}

func (r *taskRepo) Get(ctx context.Context, id int) (*Task, error) {
	row, err := r.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %d not found", id)
		}
		return nil, fmt.Errorf("get task %d: %w", id, err)
	}
	return taskFromRow(row), nil
}

func (r *taskRepo) UpdateStatus(ctx context.Context, id int, status content.Status) error {
	_, err := r.client.Task.UpdateOneID(id).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update task %d status: %w", id, err)
	}
	return nil
}

func (r *taskRepo) SetPayload(ctx context.Context, id int, payload content.Payload, status content.Status) error {
	_, err := r.client.Task.UpdateOneID(id).
		SetPayload(payload).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("set task %d payload: %w", id, err)
	}
	return nil
}

func (r *taskRepo) VariantsOf(ctx context.Context, parentID int) ([]*Task, error) {
	rows, err := r.client.Task.Query().
		Where(task.ParentIDEQ(parentID)).
		Order(ent.Asc(task.FieldCreatedAt), ent.Asc(task.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query variants of task %d: %w", parentID, err)
	}

	out := make([]*Task, len(rows))
	for i, row := range rows {
		out[i] = taskFromRow(row)
	}
	return out, nil
}

func (r *taskRepo) ListParents(ctx context.Context, limit int) ([]*Task, error) {
	query := r.client.Task.Query().
		Where(task.ParentIDIsNil()).
		Order(ent.Desc(task.FieldCreatedAt), ent.Desc(task.FieldID))
	if limit > 0 {
		query = query.Limit(limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list parent tasks: %w", err)
	}

	out := make([]*Task, len(rows))
	for i, row := range rows {
		out[i] = taskFromRow(row)
	}
	return out, nil
}

func taskFromRow(row *ent.Task) *Task {
	return &Task{
		ID:            row.ID,
		Kind:          content.Kind(row.Kind),
		Topic:         row.Topic,
		Status:        content.Status(row.Status),
		ClassID:       row.ClassID,
		ParentID:      row.ParentID,
		GroupID:       row.GroupID,
		Combo:         row.Combo,
		Payload:       row.Payload,
		Purpose:       row.Purpose,
		Grade:         row.Grade,
		Subject:       row.Subject,
		LengthMinutes: row.LengthMinutes,
		QuestionType:  row.QuestionType,
		NumQuestions:  row.NumQuestions,
		CreatedAt:     row.CreatedAt,
	}
}
