package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoAnswers is returned by Stats when the log is empty.
var ErrNoAnswers = errors.New("no answers recorded")

// AnswerEvent is one finalized answer.
type AnswerEvent struct {
	ID          int64
	SessionID   string
	SubjectID   int
	SubjectKind string
	TaskType    string
	Response    string
	Status      string
	Plugin      string // plugin that decided the verdict, if any
	Timestamp   time.Time
}

// QueryOpts configures answer queries.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	SessionID string    // only this session, if set
	From      time.Time // timestamp >= From
}

// Stats summarises the answer log.
type Stats struct {
	Total    int
	ByStatus map[string]int

	// TopHintPlugin is the plugin behind the most hints, empty if no hint
	// was ever given.
	TopHintPlugin string
	TopHintCount  int
}

// AnswerRepo records and queries answers.
type AnswerRepo interface {
	// Append records an answer. A zero Timestamp is set from the store's
	// clock. The stored ID is written back into ev.
	Append(ctx context.Context, ev *AnswerEvent) error

	// Recent returns answers newest first.
	Recent(ctx context.Context, opts QueryOpts) ([]AnswerEvent, error)

	// Stats summarises all answers. Returns ErrNoAnswers if there are none.
	Stats(ctx context.Context) (*Stats, error)

	// Truncate deletes every answer and returns how many were removed.
	Truncate(ctx context.Context) (int64, error)
}

// NewSessionID returns a fresh identifier for a practice session.
func NewSessionID() string {
	return uuid.NewString()
}
