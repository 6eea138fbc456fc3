package questions

import "context"

type Repo interface {
	// FindByID returns nil without an error when the question is absent.
	FindByID(ctx context.Context, id string) (*UserQuestion, error)

	FindByUser(ctx context.Context, userID string) ([]UserQuestion, error)

	FindByUserAndSkill(ctx context.Context, userID, skillID string) ([]UserQuestion, error)

	// Insert stores a new question and returns it with the id populated.
	Insert(ctx context.Context, question UserQuestion) (UserQuestion, error)

	// Update replaces the stored question matched by id and user.
	Update(ctx context.Context, question UserQuestion) (found bool, err error)

	Delete(ctx context.Context, userID, id string) error
}
