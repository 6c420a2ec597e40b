// Package db is the MongoDB adapter for the identity module.
package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/creatorconnect/server/internal/identity/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
)

const (
	collUsers = "users"
	collOTPs  = "otps"
)

type DB struct {
	users *mongo.Collection
	otps  *mongo.Collection
}

func NewDB(database *mongo.Database) *DB {
	return &DB{
		users: database.Collection(collUsers),
		otps:  database.Collection(collOTPs),
	}
}

// EnsureIndexes creates the indexes the identity flows rely on: the unique
// email constraint on users, the otps email lookup, and the TTL index that
// garbage-collects expired codes.
func (s *DB) EnsureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.otps.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})

	return err
}

func (s *DB) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return goerror.ErrNotFound
	}

	if mongo.IsDuplicateKeyError(err) {
		return goerror.ErrConflict
	}

	return err
}

type userModel struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Role      string             `bson:"role"`
	Verified  bool               `bson:"is_verified"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m userModel) toEntity() *entity.User {
	return &entity.User{
		ID:        m.ID.Hex(),
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		Role:      entity.Role(m.Role).Ensure(),
		Verified:  m.Verified,
		CreatedAt: m.CreatedAt,
	}
}

type oneTimeCodeModel struct {
	Email     string    `bson:"email"`
	Code      string    `bson:"otp"`
	ExpiresAt time.Time `bson:"expires_at"`
	Used      bool      `bson:"is_used"`
}
