package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nikmy/interviewd/internal/interviews"
	"github.com/nikmy/interviewd/internal/questions"
	"github.com/nikmy/interviewd/internal/skills"
	"github.com/nikmy/interviewd/pkg/errors"
	"github.com/nikmy/interviewd/pkg/logger"
)

// participant+time indexes back the conflict window query.
var interviewIndexes = []mongo.IndexModel{
	{
		Keys:    bson.D{{Key: interviews.FieldInterviewerID, Value: 1}, {Key: interviews.FieldPlannedTime, Value: 1}},
		Options: options.Index().SetName("interviewer_planned_time"),
	},
	{
		Keys:    bson.D{{Key: interviews.FieldCandidateID, Value: 1}, {Key: interviews.FieldPlannedTime, Value: 1}},
		Options: options.Index().SetName("candidate_planned_time"),
	},
}

func NewClient(ctx context.Context, cfg Config, log logger.Logger) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.URL).
		SetTimeout(cfg.Timeout)

	if cfg.Auth.Username != "" {
		opts = opts.SetAuth(options.Credential{
			Username: cfg.Auth.Username,
			Password: cfg.Auth.Password,
		})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, errors.WrapFail(err, "connect to mongo db")
	}

	db := client.Database(cfg.Database)

	interviewsColl := db.Collection(cfg.Collections.Interviews)
	_, err = interviewsColl.Indexes().CreateMany(ctx, interviewIndexes)
	if err != nil {
		return nil, errors.WrapFail(err, "create interview indexes")
	}

	return &Client{
		c:          client,
		interviews: mongoInterviews{coll: interviewsColl, log: log.With("mongo_interviews")},
		questions:  mongoQuestions{coll: db.Collection(cfg.Collections.UserQuestions)},
		skills:     mongoSkills{coll: db.Collection(cfg.Collections.Skills)},
	}, nil
}

type Client struct {
	c          *mongo.Client
	interviews mongoInterviews
	questions  mongoQuestions
	skills     mongoSkills
}

func (c *Client) Interviews() interviews.Store { return c.interviews }

func (c *Client) UserQuestions() questions.Repo { return c.questions }

func (c *Client) Skills() skills.Repo { return c.skills }

func (c *Client) Close(ctx context.Context) error {
	err := c.c.Disconnect(ctx)
	return errors.WrapFail(err, "close mongo db connection")
}
