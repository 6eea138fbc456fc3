package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/interviewd/internal/questions"
	"github.com/nikmy/interviewd/pkg/errors"
	mng "github.com/nikmy/interviewd/pkg/mongotools"
)

type mongoQuestions struct {
	coll *mongo.Collection
}

func (m mongoQuestions) FindByID(ctx context.Context, id string) (*questions.UserQuestion, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find user question by id")
	}

	var parsed questions.UserQuestion
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode user question")
	}

	return &parsed, nil
}

func (m mongoQuestions) FindByUser(ctx context.Context, userID string) ([]questions.UserQuestion, error) {
	c, err := m.coll.Find(ctx, mng.Field(questions.FieldUserID, userID))
	if err != nil {
		return nil, errors.WrapFail(err, "find user questions")
	}

	parsed, err := mng.DecodeAll[questions.UserQuestion](ctx, c)
	return parsed, errors.WrapFail(err, "decode user questions")
}

func (m mongoQuestions) FindByUserAndSkill(
	ctx context.Context,
	userID, skillID string,
) ([]questions.UserQuestion, error) {
	filter := mng.Field(questions.FieldUserID, userID)
	filter[questions.FieldSkillID] = skillID

	c, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.WrapFail(err, "find user questions by skill")
	}

	parsed, err := mng.DecodeAll[questions.UserQuestion](ctx, c)
	return parsed, errors.WrapFail(err, "decode user questions")
}

func (m mongoQuestions) Insert(
	ctx context.Context,
	question questions.UserQuestion,
) (questions.UserQuestion, error) {
	question.ID = primitive.NewObjectID().Hex()

	_, err := m.coll.InsertOne(ctx, question)
	if err != nil {
		return questions.UserQuestion{}, errors.WrapFail(err, "insert user question")
	}

	return question, nil
}

func (m mongoQuestions) Update(ctx context.Context, question questions.UserQuestion) (bool, error) {
	filter := mng.ID(question.ID)
	filter[questions.FieldUserID] = question.UserID

	r, err := m.coll.ReplaceOne(ctx, filter, question)
	if err != nil {
		return false, errors.WrapFail(err, "replace user question")
	}

	return r.MatchedCount > 0, nil
}

func (m mongoQuestions) Delete(ctx context.Context, userID, id string) error {
	filter := mng.ID(id)
	filter[questions.FieldUserID] = userID

	_, err := m.coll.DeleteOne(ctx, filter)
	return errors.WrapFail(err, "delete user question")
}
