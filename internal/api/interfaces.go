package api

import (
	"context"

	"github.com/nikmy/interviewd/internal/interviews"
	"github.com/nikmy/interviewd/internal/questions"
	"github.com/nikmy/interviewd/internal/skills"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type InterviewEngine interface {
	List(ctx context.Context) ([]interviews.Interview, error)
	Get(ctx context.Context, id string) (interviews.Interview, error)
	Create(ctx context.Context, params interviews.CreateParams) (interviews.Interview, error)
	Update(ctx context.Context, id string, params interviews.UpdateParams) (interviews.Interview, error)
	Delete(ctx context.Context, id string) error
	TransitionStatus(ctx context.Context, id string, next interviews.Status) (interviews.Interview, error)
	SetFeedback(ctx context.Context, id string, feedback string) (interviews.Interview, error)
	AddQuestion(ctx context.Context, interviewID, userQuestionID string) (interviews.Question, error)
	UpdateQuestion(ctx context.Context, interviewID, questionID string, params interviews.QuestionUpdateParams) (interviews.Question, error)
	DeleteQuestion(ctx context.Context, interviewID, questionID string) error
}

type QuestionBank interface {
	ListByUser(ctx context.Context, userID string) ([]questions.UserQuestion, error)
	ListByUserAndSkill(ctx context.Context, userID, skillID string) ([]questions.UserQuestion, error)
	Create(ctx context.Context, userID string, params questions.CreateParams) (questions.UserQuestion, error)
	Update(ctx context.Context, userID, id string, params questions.UpdateParams) (questions.UserQuestion, error)
	Delete(ctx context.Context, userID, id string) error
}

type SkillTrees interface {
	Trees(ctx context.Context) ([]skills.Tree, error)
	TreeByID(ctx context.Context, id string) (skills.Tree, error)
}
