package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/creatorconnect/server/internal/identity/entity"
)

// UpsertActiveCode replaces the single unused code for the email in one atomic
// find-and-update, so concurrent issues for the same email cannot both survive.
func (s *DB) UpsertActiveCode(ctx context.Context, code entity.OneTimeCode) error {
	err := s.otps.FindOneAndUpdate(ctx,
		bson.M{"email": code.Email, "is_used": false},
		bson.M{"$set": oneTimeCodeModel{
			Email:     code.Email,
			Code:      code.Code,
			ExpiresAt: code.ExpiresAt,
			Used:      false,
		}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Err()

	// The upsert path reports no prior document; that is the insert case.
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}

	return s.mapError(err)
}

// ConsumeCode marks the matching unused, unexpired code as used in the same
// conditional update that matched it, so a code can be consumed exactly once.
func (s *DB) ConsumeCode(ctx context.Context, email, code string, now time.Time) (bool, error) {
	err := s.otps.FindOneAndUpdate(ctx,
		bson.M{
			"email":      email,
			"otp":        code,
			"is_used":    false,
			"expires_at": bson.M{"$gt": now},
		},
		bson.M{"$set": bson.M{"is_used": true}},
	).Err()

	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, s.mapError(err)
	}

	return true, nil
}

// MarkUserVerified is a no-op when no user exists for the email yet.
func (s *DB) MarkUserVerified(ctx context.Context, email string) error {
	_, err := s.users.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"is_verified": true}},
	)

	return s.mapError(err)
}
