// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/samacademy/cohortgen/ent/performanceprofile"
)

// PerformanceProfile is the model entity for the PerformanceProfile schema.
type PerformanceProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Catalogue name of the combo
	ComboKey string `json:"combo_key,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Purpose holds the value of the "purpose" field.
	Purpose string `json:"purpose,omitempty"`
	// short, medium, or long
	LengthBucket string `json:"length_bucket,omitempty"`
	// lesson or quiz
	Kind string `json:"kind,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// Subject holds the value of the "subject" field.
	Subject string `json:"subject,omitempty"`
	// EMA of clarity, 0 to 1
	ClarityAvg float64 `json:"clarity_avg,omitempty"`
	// EMA of engagement, 0 to 1
	EngagementAvg float64 `json:"engagement_avg,omitempty"`
	// EMA of confidence, 0 to 1
	ConfidenceAvg float64 `json:"confidence_avg,omitempty"`
	// EMA of attention span, 0 to 1
	AttentionAvg float64 `json:"attention_avg,omitempty"`
	// EMA of fatigue slope; first sample sets it directly
	FatigueSlope float64 `json:"fatigue_slope,omitempty"`
	// SessionCount holds the value of the "session_count" field.
	SessionCount int `json:"session_count,omitempty"`
	// Derived only; recomputed on every mutation
	PerformanceScore float64 `json:"performance_score,omitempty"`
	// experimental, active, or deprecated
	ProfileStatus string `json:"profile_status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PerformanceProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case performanceprofile.FieldClarityAvg, performanceprofile.FieldEngagementAvg, performanceprofile.FieldConfidenceAvg, performanceprofile.FieldAttentionAvg, performanceprofile.FieldFatigueSlope, performanceprofile.FieldPerformanceScore:
			values[i] = new(sql.NullFloat64)
		case performanceprofile.FieldID, performanceprofile.FieldSessionCount:
			values[i] = new(sql.NullInt64)
		case performanceprofile.FieldComboKey, performanceprofile.FieldTopic, performanceprofile.FieldPurpose, performanceprofile.FieldLengthBucket, performanceprofile.FieldKind, performanceprofile.FieldGrade, performanceprofile.FieldSubject, performanceprofile.FieldProfileStatus:
			values[i] = new(sql.NullString)
		case performanceprofile.FieldCreatedAt, performanceprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PerformanceProfile fields.
func (_m *PerformanceProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case performanceprofile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case performanceprofile.FieldComboKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field combo_key", values[i])
			} else if value.Valid {
				_m.ComboKey = value.String
			}
		case performanceprofile.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case performanceprofile.FieldPurpose:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field purpose", values[i])
			} else if value.Valid {
				_m.Purpose = value.String
			}
		case performanceprofile.FieldLengthBucket:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field length_bucket", values[i])
			} else if value.Valid {
				_m.LengthBucket = value.String
			}
		case performanceprofile.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = value.String
			}
		case performanceprofile.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case performanceprofile.FieldSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field subject", values[i])
			} else if value.Valid {
				_m.Subject = value.String
			}
		case performanceprofile.FieldClarityAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field clarity_avg", values[i])
			} else if value.Valid {
				_m.ClarityAvg = value.Float64
			}
		case performanceprofile.FieldEngagementAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_avg", values[i])
			} else if value.Valid {
				_m.EngagementAvg = value.Float64
			}
		case performanceprofile.FieldConfidenceAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence_avg", values[i])
			} else if value.Valid {
				_m.ConfidenceAvg = value.Float64
			}
		case performanceprofile.FieldAttentionAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field attention_avg", values[i])
			} else if value.Valid {
				_m.AttentionAvg = value.Float64
			}
		case performanceprofile.FieldFatigueSlope:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field fatigue_slope", values[i])
			} else if value.Valid {
				_m.FatigueSlope = value.Float64
			}
		case performanceprofile.FieldSessionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_count", values[i])
			} else if value.Valid {
				_m.SessionCount = int(value.Int64)
			}
		case performanceprofile.FieldPerformanceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field performance_score", values[i])
			} else if value.Valid {
				_m.PerformanceScore = value.Float64
			}
		case performanceprofile.FieldProfileStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_status", values[i])
			} else if value.Valid {
				_m.ProfileStatus = value.String
			}
		case performanceprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case performanceprofile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PerformanceProfile.
// This includes values selected through modifiers, order, etc.
func (_m *PerformanceProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PerformanceProfile.
// Note that you need to call PerformanceProfile.Unwrap() before calling this method if this PerformanceProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PerformanceProfile) Update() *PerformanceProfileUpdateOne {
	return NewPerformanceProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PerformanceProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PerformanceProfile) Unwrap() *PerformanceProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PerformanceProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PerformanceProfile) String() string {
	var builder strings.Builder
	builder.WriteString("PerformanceProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("combo_key=")
	builder.WriteString(_m.ComboKey)
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
	builder.WriteString("kind=")
	builder.WriteString(_m.Kind)
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("subject=")
	builder.WriteString(_m.Subject)
	builder.WriteString(", ")
	builder.WriteString("clarity_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClarityAvg))
	builder.WriteString(", ")
	builder.WriteString("engagement_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementAvg))
	builder.WriteString(", ")
	builder.WriteString("confidence_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.ConfidenceAvg))
	builder.WriteString(", ")
	builder.WriteString("attention_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.AttentionAvg))
	builder.WriteString(", ")
	builder.WriteString("fatigue_slope=")
	builder.WriteString(fmt.Sprintf("%v", _m.FatigueSlope))
	builder.WriteString(", ")
	builder.WriteString("session_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCount))
	builder.WriteString(", ")
	builder.WriteString("performance_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.PerformanceScore))
	builder.WriteString(", ")
	builder.WriteString("profile_status=")
	builder.WriteString(_m.ProfileStatus)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PerformanceProfiles is a parsable slice of PerformanceProfile.
type PerformanceProfiles []*PerformanceProfile
