package api

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nikmy/interviewd/internal/questions"
	"github.com/nikmy/interviewd/pkg/errors"
)

var validate = validator.New()

type createInterviewRequest struct {
	InterviewerID string    `json:"interviewer_id" validate:"required"`
	CandidateID   string    `json:"candidate_id"   validate:"required"`
	PlannedTime   time.Time `json:"planned_time"   validate:"required"`
}

type updateInterviewRequest struct {
	PlannedTime *time.Time `json:"planned_time"`
}

type transitionStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type setFeedbackRequest struct {
	Feedback string `json:"feedback"`
}

type addQuestionRequest struct {
	UserQuestionID string `json:"user_question_id" validate:"required"`
}

type updateQuestionRequest struct {
	Notes *string `json:"notes"`
	Order *int    `json:"order"`
}

type userQuestionRequest struct {
	Text       string               `json:"text"       validate:"required,max=255"`
	SkillID    string               `json:"skill_id"   validate:"required"`
	Difficulty questions.Difficulty `json:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	Type       questions.Type       `json:"type"       validate:"required,oneof=SOFT_SKILLS TECHNICAL CODING"`
}

type userQuestionPatchRequest struct {
	Text       *string               `json:"text"       validate:"omitempty,min=1,max=255"`
	SkillID    *string               `json:"skill_id"   validate:"omitempty,min=1"`
	Difficulty *questions.Difficulty `json:"difficulty" validate:"omitempty,oneof=EASY MEDIUM HARD"`
	Type       *questions.Type       `json:"type"       validate:"omitempty,oneof=SOFT_SKILLS TECHNICAL CODING"`
}

// parseBody unmarshals and validates a request payload in one go, so
// every handler reports malformed input with the same error kind.
func parseBody[T any](c interface{ BodyParser(any) error }) (T, error) {
	var body T

	err := c.BodyParser(&body)
	if err != nil {
		return body, errors.Mark(errors.Validation, errors.WrapFail(err, "unmarshal request payload"))
	}

	err = validate.Struct(&body)
	if err != nil {
		return body, errors.Mark(errors.Validation, err)
	}

	return body, nil
}
