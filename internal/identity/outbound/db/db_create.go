package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/creatorconnect/server/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, user entity.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", user.ID, err)
	}

	_, err = s.users.InsertOne(ctx, userModel{
		ID:        oid,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		Role:      user.Role.String(),
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	})

	return s.mapError(err)
}
