package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/creatorconnect/server/internal/identity/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
)

func (s *DB) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m userModel
	if err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&m); err != nil {
		return nil, s.mapError(err)
	}

	return m.toEntity(), nil
}

func (s *DB) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, goerror.ErrNotFound
	}

	var m userModel
	if err := s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		return nil, s.mapError(err)
	}

	return m.toEntity(), nil
}
