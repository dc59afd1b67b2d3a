package store

import (
	"context"
	"time"

	"github.com/samacademy/cohortgen/internal/content"
)

// Task is the store-level view of a task row. Variant tasks carry a parent
// and group reference; canonical tasks leave both nil.
type Task struct {
	ID            int
	Kind          content.Kind
	Topic         string
	Status        content.Status
	ClassID       int
	ParentID      *int
	GroupID       *int
	Combo         content.Combo
	Payload       content.Payload
	Purpose       string
	Grade         string
	Subject       string
	LengthMinutes int
	QuestionType  string
	NumQuestions  int
	CreatedAt     time.Time
}

// IsParent reports whether this is a canonical task.
func (t *Task) IsParent() bool {
	return t.ParentID == nil
}

// TaskDraft carries the fields for a new task row.
type TaskDraft struct {
	Kind          content.Kind
	Topic         string
	Status        content.Status
	ClassID       int
	ParentID      *int
	GroupID       *int
	Combo         content.Combo
	Purpose       string
	Grade         string
	Subject       string
	LengthMinutes int
	QuestionType  string
	NumQuestions  int
}

// TaskRepo provides access to task rows.
type TaskRepo interface {
	Create(ctx context.Context, draft TaskDraft) (*Task, error)
	Get(ctx context.Context, id int) (*Task, error)

	// UpdateStatus sets only the status column.
	UpdateStatus(ctx context.Context, id int, status content.Status) error

	// SetPayload writes the generated content and status together.
	SetPayload(ctx context.Context, id int, payload content.Payload, status content.Status) error

	// VariantsOf returns all variants of a parent in creation order.
	VariantsOf(ctx context.Context, parentID int) ([]*Task, error)

	// ListParents returns recent canonical tasks, newest first.
	ListParents(ctx context.Context, limit int) ([]*Task, error)
}

// Group is the store-level view of a cohort row.
type Group struct {
	ID            int
	TaskID        int
	ClassID       int
	Number        int
	Members       []string
	Combo         content.Combo
	VariantTaskID *int
	CreatedAt     time.Time
}

// GroupDraft carries the fields for a new group row.
type GroupDraft struct {
	TaskID  int
	ClassID int
	Number  int
	Members []string
	Combo   content.Combo
}

// GroupRepo provides access to group rows.
type GroupRepo interface {
	// CreateAll persists every draft in one transaction. Either all groups
	// exist afterwards or none do.
	CreateAll(ctx context.Context, drafts []GroupDraft) ([]*Group, error)

	// ByTask returns a task's groups ordered by number.
	ByTask(ctx context.Context, taskID int) ([]*Group, error)

	// SetVariantTask records the variant generated for a group. Set once.
	SetVariantTask(ctx context.Context, groupID, taskID int) error
}

// Class is the store-level view of a class row.
type Class struct {
	ID        int
	Name      string
	Grade     string
	Subject   string
	CreatedAt time.Time
}

// ClassRepo provides access to classes and their enrollments.
type ClassRepo interface {
	Create(ctx context.Context, name, grade, subject string) (*Class, error)
	Get(ctx context.Context, id int) (*Class, error)
	Enroll(ctx context.Context, classID int, learnerID string) error

	// EnrolledLearners returns the learner IDs currently enrolled.
	EnrolledLearners(ctx context.Context, classID int) ([]string, error)
}

// ProfileKey is the composite identity of a performance profile.
type ProfileKey struct {
	ComboKey     string
	Topic        string
	Purpose      string
	LengthBucket string
	Kind         content.Kind
	Grade        string
	Subject      string
}

// Profile is the store-level view of a performance profile row.
type Profile struct {
	ID               int
	Key              ProfileKey
	ClarityAvg       float64
	EngagementAvg    float64
	ConfidenceAvg    float64
	AttentionAvg     float64
	FatigueSlope     float64
	SessionCount     int
	PerformanceScore float64
	Status           string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Profile lifecycle states.
const (
	ProfileExperimental = "experimental"
	ProfileActive       = "active"
	ProfileDeprecated   = "deprecated"
)

// ProfileRepo provides access to performance profiles.
type ProfileRepo interface {
	// ByKey returns the profile for a key, or nil if none exists.
	ByKey(ctx context.Context, key ProfileKey) (*Profile, error)

	Create(ctx context.Context, p *Profile) (*Profile, error)

	// Update writes the mutable columns of an existing profile.
	Update(ctx context.Context, p *Profile) error

	// SetStatus changes only the lifecycle status.
	SetStatus(ctx context.Context, id int, status string) error

	List(ctx context.Context) ([]*Profile, error)
}

// Feedback is the store-level view of a session feedback row.
type Feedback struct {
	ID                 int
	Sequence           int64
	SessionID          string
	LearnerID          string
	ClassID            int
	TaskID             int
	ComboKey           string
	Combo              content.Combo
	Kind               content.Kind
	Topic              string
	Purpose            string
	LengthBucket       string
	Grade              string
	Subject            string
	Clarity            float64
	Engagement         float64
	CognitiveLoad      float64
	AttentionSpan      float64
	Confidence         float64
	FatigueTrend       string
	FatigueSlope       float64
	RawMetrics         map[string]float64
	SurveySubmissionID string
	Timestamp          time.Time
}

// FeedbackFilter narrows history queries to a task context.
type FeedbackFilter struct {
	Kind    content.Kind
	Grade   string
	Subject string
}

// FeedbackRepo provides append and history access to session feedback.
type FeedbackRepo interface {
	// Append persists a new feedback record, assigning its sequence number.
	Append(ctx context.Context, fb *Feedback) (*Feedback, error)

	// RecentByLearner returns a learner's newest records matching the
	// filter, up to limit.
	RecentByLearner(ctx context.Context, learnerID string, f FeedbackFilter, limit int) ([]*Feedback, error)

	// RecentGlobal returns the newest records matching the filter across
	// all learners, up to limit.
	RecentGlobal(ctx context.Context, f FeedbackFilter, limit int) ([]*Feedback, error)

	// AttachSurvey records the outbound survey submission id.
	AttachSurvey(ctx context.Context, id int, submissionID string) error
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// GenerationEventData captures the data for a single generation call event.
type GenerationEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// GenerationRecord is a persisted generation event.
type GenerationRecord struct {
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append and query access to generation events.
type EventRepo interface {
	// AppendGeneration records an outbound generation call.
	AppendGeneration(ctx context.Context, data GenerationEventData) error

	// QueryGeneration returns generation events, newest first.
	QueryGeneration(ctx context.Context, opts QueryOpts) ([]GenerationRecord, error)
}
