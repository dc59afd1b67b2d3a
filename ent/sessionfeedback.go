// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/samacademy/cohortgen/ent/sessionfeedback"
	"github.com/samacademy/cohortgen/internal/content"
)

// SessionFeedback is the model entity for the SessionFeedback schema.
type SessionFeedback struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the record
	Timestamp time.Time `json:"timestamp,omitempty"`
	// UUID of the learner session
	SessionID string `json:"session_id,omitempty"`
	// LearnerID holds the value of the "learner_id" field.
	LearnerID string `json:"learner_id,omitempty"`
	// ClassID holds the value of the "class_id" field.
	ClassID int `json:"class_id,omitempty"`
	// Variant task the session ran against
	TaskID int `json:"task_id,omitempty"`
	// Catalogue name of the combo that produced the content
	ComboKey string `json:"combo_key,omitempty"`
	// Full combo for per-role tallies
	Combo content.Combo `json:"combo,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind string `json:"kind,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose string `json:"purpose,omitempty"`
	// LengthBucket holds the value of the "length_bucket" field.
	LengthBucket string `json:"length_bucket,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// Clarity holds the value of the "clarity" field.
	Clarity float64 `json:"clarity,omitempty"`
	// Engagement holds the value of the "engagement" field.
	Engagement float64 `json:"engagement,omitempty"`
	// CognitiveLoad holds the value of the "cognitive_load" field.
	CognitiveLoad float64 `json:"cognitive_load,omitempty"`
	// AttentionSpan holds the value of the "attention_span" field.
	AttentionSpan float64 `json:"attention_span,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float64 `json:"confidence,omitempty"`
	// rising, stable, or falling
	FatigueTrend string `json:"fatigue_trend,omitempty"`
	// FatigueSlope holds the value of the "fatigue_slope" field.
	FatigueSlope float64 `json:"fatigue_slope,omitempty"`
	// Vitals aggregates; absent keys were not reported
	RawMetrics map[string]float64 `json:"raw_metrics,omitempty"`
	// Attached after the outbound survey is accepted
	SurveySubmissionID string `json:"survey_submission_id,omitempty"`
	selectValues       sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionFeedback) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionfeedback.FieldCombo, sessionfeedback.FieldRawMetrics:
			values[i] = new([]byte)
		case sessionfeedback.FieldClarity, sessionfeedback.FieldEngagement, sessionfeedback.FieldCognitiveLoad, sessionfeedback.FieldAttentionSpan, sessionfeedback.FieldConfidence, sessionfeedback.FieldFatigueSlope:
			values[i] = new(sql.NullFloat64)
		case sessionfeedback.FieldID, sessionfeedback.FieldSequence, sessionfeedback.FieldClassID, sessionfeedback.FieldTaskID:
			values[i] = new(sql.NullInt64)
		case sessionfeedback.FieldSessionID, sessionfeedback.FieldLearnerID, sessionfeedback.FieldComboKey, sessionfeedback.FieldKind, sessionfeedback.FieldTopic, sessionfeedback.FieldPurpose, sessionfeedback.FieldLengthBucket, sessionfeedback.FieldGrade, sessionfeedback.FieldSubject, sessionfeedback.FieldFatigueTrend, sessionfeedback.FieldSurveySubmissionID:
			values[i] = new(sql.NullString)
		case sessionfeedback.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionFeedback fields.
func (_m *SessionFeedback) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionfeedback.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionfeedback.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case sessionfeedback.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case sessionfeedback.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionfeedback.FieldLearnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learner_id", values[i])
			} else if value.Valid {
				_m.LearnerID = value.String
			}
		case sessionfeedback.FieldClassID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field class_id", values[i])
			} else if value.Valid {
				_m.ClassID = int(value.Int64)
			}
		case sessionfeedback.FieldTaskID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value.Valid {
				_m.TaskID = int(value.Int64)
			}
		case sessionfeedback.FieldComboKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field combo_key", values[i])
			} else if value.Valid {
				_m.ComboKey = value.String
			}
		case sessionfeedback.FieldCombo:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field combo", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Combo); err != nil {
					return fmt.Errorf("unmarshal field combo: %w", err)
				}
			}
		case sessionfeedback.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case sessionfeedback.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case sessionfeedback.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = value.String
			}
		case sessionfeedback.FieldLengthBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field length_bucket", values[i])
			} else if value.Valid {
				_m.LengthBucket = value.String
			}
		case sessionfeedback.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case sessionfeedback.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case sessionfeedback.FieldClarity:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field clarity", values[i])
			} else if value.Valid {
				_m.Clarity = value.Float64
			}
		case sessionfeedback.FieldEngagement:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement", values[i])
			} else if value.Valid {
				_m.Engagement = value.Float64
			}
		case sessionfeedback.FieldCognitiveLoad:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field cognitive_load", values[i])
			} else if value.Valid {
				_m.CognitiveLoad = value.Float64
			}
		case sessionfeedback.FieldAttentionSpan:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field attention_span", values[i])
			} else if value.Valid {
				_m.AttentionSpan = value.Float64
			}
		case sessionfeedback.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = value.Float64
			}
		case sessionfeedback.FieldFatigueTrend:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field fatigue_trend", values[i])
			} else if value.Valid {
				_m.FatigueTrend = value.String
			}
		case sessionfeedback.FieldFatigueSlope:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fatigue_slope", values[i])
			} else if value.Valid {
				_m.FatigueSlope = value.Float64
			}
		case sessionfeedback.FieldRawMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field raw_metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RawMetrics); err != nil {
					return fmt.Errorf("unmarshal field raw_metrics: %w", err)
				}
			}
		case sessionfeedback.FieldSurveySubmissionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field survey_submission_id", values[i])
			} else if value.Valid {
				_m.SurveySubmissionID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionFeedback.
// This includes values selected through modifiers, order, etc.
func (_m *SessionFeedback) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionFeedback.
// Note that you need to call SessionFeedback.Unwrap() before calling this method if this SessionFeedback
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionFeedback) Update() *SessionFeedbackUpdateOne {
	return NewSessionFeedbackClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionFeedback entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionFeedback) Unwrap() *SessionFeedback {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionFeedback is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionFeedback) String() string {
	var builder strings.Builder
	builder.WriteString("SessionFeedback(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("learner_id=")
	builder.WriteString(_m.LearnerID)
	builder.WriteString(", ")
	builder.WriteString("class_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClassID))
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TaskID))
	builder.WriteString(", ")
	builder.WriteString("combo_key=")
	builder.WriteString(_m.ComboKey)
	builder.WriteString(", ")
	builder.WriteString("combo=")
	builder.WriteString(fmt.Sprintf("%v", _m.Combo))
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("purpose=")
	builder.WriteString(_m.Purpose)
	builder.WriteString(", ")
	builder.WriteString("length_bucket=")
	builder.WriteString(_m.LengthBucket)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("clarity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Clarity))
	builder.WriteString(", ")
	builder.WriteString("engagement=")
	builder.WriteString(fmt.Sprintf("%v", _m.Engagement))
	builder.WriteString(", ")
	builder.WriteString("cognitive_load=")
	builder.WriteString(fmt.Sprintf("%v", _m.CognitiveLoad))
	builder.WriteString(", ")
	builder.WriteString("attention_span=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttentionSpan))
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("fatigue_trend=")
	builder.WriteString(_m.FatigueTrend)
	builder.WriteString(", ")
	builder.WriteString("fatigue_slope=")
	builder.WriteString(fmt.Sprintf("%v", _m.FatigueSlope))
	builder.WriteString(", ")
	builder.WriteString("raw_metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.RawMetrics))
	builder.WriteString(", ")
	builder.WriteString("survey_submission_id=")
	builder.WriteString(_m.SurveySubmissionID)
	builder.WriteByte(')')
	return builder.String()
}

// SessionFeedbacks is a parsable slice of SessionFeedback.
type SessionFeedbacks []*SessionFeedback
