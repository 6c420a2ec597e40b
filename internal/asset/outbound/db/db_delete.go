package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/creatorconnect/server/internal/pkg/goerror"
)

func (s *DB) DeleteAsset(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return goerror.ErrNotFound
	}

	res, err := s.assets.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return s.mapError(err)
	}
	if res.DeletedCount == 0 {
		return goerror.ErrNotFound
	}

	return nil
}
