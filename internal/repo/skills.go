package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/interviewd/internal/skills"
	"github.com/nikmy/interviewd/pkg/errors"
	mng "github.com/nikmy/interviewd/pkg/mongotools"
)

type mongoSkills struct {
	coll *mongo.Collection
}

func (m mongoSkills) FindAll(ctx context.Context) ([]skills.Skill, error) {
	c, err := m.coll.Find(ctx, mng.All())
	if err != nil {
		return nil, errors.WrapFail(err, "find skills")
	}

	parsed, err := mng.DecodeAll[skills.Skill](ctx, c)
	return parsed, errors.WrapFail(err, "decode skills")
}

func (m mongoSkills) FindByID(ctx context.Context, id string) (*skills.Skill, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find skill by id")
	}

	var parsed skills.Skill
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode skill")
	}

	return &parsed, nil
}
