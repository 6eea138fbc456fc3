package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviewd/internal/interviews"
	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
	mng "github.com/nikmy/interviewd/pkg/mongotools"
)

type mongoInterviews struct {
	coll *mongo.Collection
	log  logger.Logger
}

func (m mongoInterviews) FindAll(ctx context.Context) ([]interviews.Interview, error) {
	c, err := m.coll.Find(ctx, mng.All())
	if err != nil {
		return nil, errors.WrapFail(err, "find interviews")
	}

	parsed, err := mng.DecodeAll[interviews.Interview](ctx, c)
	return parsed, errors.WrapFail(err, "decode interviews")
}

func (m mongoInterviews) FindByID(ctx context.Context, id string) (*interviews.Interview, error) {
	r := m.coll.FindOne(ctx, mng.ID(id))
	err := r.Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFail(err, "find interview by id")
	}

	var parsed interviews.Interview
	err = r.Decode(&parsed)
	if err != nil {
		return nil, errors.WrapFail(err, "decode interview")
	}

	return &parsed, nil
}

// Save persists the whole aggregate. Ids are hex object ids assigned here
// on first save.
func (m mongoInterviews) Save(ctx context.Context, interview interviews.Interview) (interviews.Interview, error) {
	if interview.ID == "" {
		interview.ID = primitive.NewObjectID().Hex()

		_, err := m.coll.InsertOne(ctx, interview)
		if err != nil {
			return interviews.Interview{}, errors.WrapFail(err, "insert interview")
		}

		return interview, nil
	}

	_, err := m.coll.ReplaceOne(ctx, mng.ID(interview.ID), interview, options.Replace().SetUpsert(true))
	if err != nil {
		return interviews.Interview{}, errors.WrapFail(err, "replace interview")
	}

	return interview, nil
}

func (m mongoInterviews) DeleteByID(ctx context.Context, id string) error {
	r, err := m.coll.DeleteOne(ctx, mng.ID(id))
	if err != nil {
		return errors.WrapFail(err, "delete interview by id")
	}

	if r.DeletedCount == 0 {
		m.log.Debugf("no interview %s to delete", id)
	}
	return nil
}

func (m mongoInterviews) FindInTimeWindow(
	ctx context.Context,
	interviewerID, candidateID string,
	from, to time.Time,
) ([]interviews.Interview, error) {
	filter := mng.Range(interviews.FieldPlannedTime, from, to)
	filter["$or"] = bson.A{
		mng.Field(interviews.FieldInterviewerID, interviewerID),
		mng.Field(interviews.FieldCandidateID, candidateID),
	}

	c, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.WrapFail(err, "find interviews in time window")
	}

	parsed, err := mng.DecodeAll[interviews.Interview](ctx, c)
	return parsed, errors.WrapFail(err, "decode interviews")
}
