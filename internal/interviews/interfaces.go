package interviews

import (
	"context"
	"time"

	"github.com/nikmy/interviewd/internal/questions"
)

type Store interface {
	FindAll(ctx context.Context) ([]Interview, error)

	// FindByID returns nil without an error when the interview is absent.
	FindByID(ctx context.Context, id string) (*Interview, error)

	// Save inserts or replaces the whole aggregate and returns the stored
	// form; the store assigns the id on first save.
	Save(ctx context.Context, interview Interview) (Interview, error)

	// DeleteByID is a no-op on missing ids.
	DeleteByID(ctx context.Context, id string) error

	// FindInTimeWindow returns interviews with planned_time in [from, to]
	// involving the interviewer or the candidate, regardless of status.
	FindInTimeWindow(ctx context.Context, interviewerID, candidateID string, from, to time.Time) ([]Interview, error)
}

// UserDirectory is the remote user service. Consulted on create only.
type UserDirectory interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

// QuestionBank resolves bank questions for embedding. Implementations
// must return copies, never live references.
type QuestionBank interface {
	FindByID(ctx context.Context, id string) (*questions.UserQuestion, error)
}

type Clock interface {
	Now() time.Time
}

type stdClock struct{}

func (stdClock) Now() time.Time { return time.Now().UTC() }
