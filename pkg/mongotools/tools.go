package mongotools

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/interviewd/pkg/errors"
)

func ID(id string) bson.M {
	return bson.M{"_id": id}
}

func All() bson.M {
	return bson.M{}
}

func Field[T any](field string, value T) bson.M {
	return bson.M{field: value}
}

func SetAll(fieldKVs ...bson.M) bson.M {
	s := make(bson.M, len(fieldKVs))
	for _, kv := range fieldKVs {
		for k, v := range kv {
			s[k] = v
		}
	}

	return bson.M{"$set": s}
}

// Range builds an inclusive [from, to] filter on field.
func Range[T any](field string, from, to T) bson.M {
	return bson.M{field: bson.M{"$gte": from, "$lte": to}}
}

func AnyOf(filters ...bson.M) bson.M {
	return bson.M{"$or": filters}
}

// DecodeAll drains the cursor into a slice, closing it afterwards.
func DecodeAll[T any](ctx context.Context, c *mongo.Cursor) ([]T, error) {
	defer func() { _ = c.Close(ctx) }()

	var items []T
	for c.Next(ctx) {
		var item T
		err := c.Decode(&item)
		if err != nil {
			return nil, errors.WrapFail(err, "decode item")
		}

		items = append(items, item)
	}

	return items, c.Err()
}
