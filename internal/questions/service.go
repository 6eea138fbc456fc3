package questions

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

// CreateParams carry the caller-settable fields of a bank question.
type CreateParams struct {
	Text       string     `validate:"required,max=255"`
	SkillID    string     `validate:"required"`
	Difficulty Difficulty `validate:"required,oneof=EASY MEDIUM HARD"`
	Type       Type       `validate:"required,oneof=SOFT_SKILLS TECHNICAL CODING"`
}

type UpdateParams struct {
	Text       *string     `validate:"omitempty,min=1,max=255"`
	SkillID    *string     `validate:"omitempty,min=1"`
	Difficulty *Difficulty `validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Type       *Type       `validate:"omitempty,oneof=SOFT_SKILLS TECHNICAL CODING"`
}

func New(repo Repo, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
		log:      log.With("questions"),
	}
}

type Service struct {
	repo     Repo
	validate *validator.Validate
	log      logger.Logger
}

// FindByID resolves a bank question for embedding into an interview.
// The returned value is a copy, safe to snapshot.
func (s *Service) FindByID(ctx context.Context, id string) (*UserQuestion, error) {
	q, err := s.repo.FindByID(ctx, id)
	return q, errors.WrapFail(err, "find user question by id")
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]UserQuestion, error) {
	qs, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.WrapFail(err, "list user questions")
	}

	s.log.Infof("retrieved %d questions of user %s", len(qs), userID)
	return qs, nil
}

func (s *Service) ListByUserAndSkill(ctx context.Context, userID, skillID string) ([]UserQuestion, error) {
	qs, err := s.repo.FindByUserAndSkill(ctx, userID, skillID)
	if err != nil {
		return nil, errors.WrapFail(err, "list user questions by skill")
	}

	s.log.Infof("retrieved %d questions of user %s with skill %s", len(qs), userID, skillID)
	return qs, nil
}

func (s *Service) Create(ctx context.Context, userID string, params CreateParams) (UserQuestion, error) {
	err := s.validate.Struct(params)
	if err != nil {
		return UserQuestion{}, errors.Mark(errors.Validation, err)
	}

	created, err := s.repo.Insert(ctx, UserQuestion{
		UserID:     userID,
		Text:       params.Text,
		SkillID:    params.SkillID,
		Difficulty: params.Difficulty,
		Type:       params.Type,
	})
	if err != nil {
		return UserQuestion{}, errors.WrapFail(err, "insert user question")
	}

	s.log.Infof("created question %s for user %s", created.ID, userID)
	return created, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, params UpdateParams) (UserQuestion, error) {
	err := s.validate.Struct(params)
	if err != nil {
		return UserQuestion{}, errors.Mark(errors.Validation, err)
	}

	q, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserQuestion{}, errors.WrapFail(err, "find user question by id")
	}
	if q == nil || q.UserID != userID {
		return UserQuestion{}, errors.NotFoundf("question %s of user %s not found", id, userID)
	}

	if params.Text != nil {
		q.Text = *params.Text
	}
	if params.SkillID != nil {
		q.SkillID = *params.SkillID
	}
	if params.Difficulty != nil {
		q.Difficulty = *params.Difficulty
	}
	if params.Type != nil {
		q.Type = *params.Type
	}

	found, err := s.repo.Update(ctx, *q)
	if err != nil {
		return UserQuestion{}, errors.WrapFail(err, "update user question")
	}
	if !found {
		return UserQuestion{}, errors.NotFoundf("question %s of user %s not found", id, userID)
	}

	s.log.Infof("updated question %s of user %s", id, userID)
	return *q, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return errors.WrapFail(err, "delete user question")
	}

	s.log.Infof("deleted question %s of user %s", id, userID)
	return nil
}
