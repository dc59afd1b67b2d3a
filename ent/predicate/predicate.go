// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Class is the predicate function for class builders.
type Class func(*sql.Selector)

// Enrollment is the predicate function for enrollment builders.
type Enrollment func(*sql.Selector)

// GenerationEvent is the predicate function for generationevent builders.
type GenerationEvent func(*sql.Selector)

// Group is the predicate function for group builders.
type Group func(*sql.Selector)

// PerformanceProfile is the predicate function for performanceprofile builders.
type PerformanceProfile func(*sql.Selector)

// SessionFeedback is the predicate function for sessionfeedback builders.
type SessionFeedback func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)
