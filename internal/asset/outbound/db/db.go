// Package db is the MongoDB adapter for the asset module.
package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/creatorconnect/server/internal/asset/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
)

const collAssets = "assets"

type DB struct {
	assets *mongo.Collection
}

func NewDB(database *mongo.Database) *DB {
	return &DB{assets: database.Collection(collAssets)}
}

// EnsureIndexes creates the indexes the asset listings rely on.
func (s *DB) EnsureIndexes(ctx context.Context) error {
	_, err := s.assets.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "visibility", Value: 1}, {Key: "created_at", Value: -1}},
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

type assetModel struct {
	ID         primitive.ObjectID `bson:"_id"`
	Title      string             `bson:"title"`
	FileName   string             `bson:"file_name"`
	FileURL    string             `bson:"file_url"`
	StorageKey string             `bson:"storage_key"`
	MimeType   string             `bson:"mime_type"`
	Visibility string             `bson:"visibility"`
	OwnerID    primitive.ObjectID `bson:"owner_id"`
	OwnerName  string             `bson:"owner_name"`
	CreatedAt  time.Time          `bson:"created_at"`
}

func (m assetModel) toEntity() entity.Asset {
	return entity.Asset{
		ID:         m.ID.Hex(),
		Title:      m.Title,
		FileName:   m.FileName,
		FileURL:    m.FileURL,
		StorageKey: m.StorageKey,
		MimeType:   m.MimeType,
		Visibility: entity.Visibility(m.Visibility),
		OwnerID:    m.OwnerID.Hex(),
		OwnerName:  m.OwnerName,
		CreatedAt:  m.CreatedAt,
	}
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
}
