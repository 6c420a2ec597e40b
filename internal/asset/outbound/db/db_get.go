package db

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/creatorconnect/server/internal/asset/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
)

func (s *DB) GetAssetByID(ctx context.Context, id string) (*entity.Asset, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, goerror.ErrNotFound
	}

	var m assetModel
	if err := s.assets.FindOne(ctx, bson.M{"_id": oid}).Decode(&m); err != nil {
		return nil, s.mapError(err)
	}

	out := m.toEntity()
	return &out, nil
}

func (s *DB) ListByVisibility(ctx context.Context, v entity.Visibility) ([]entity.Asset, error) {
	cur, err := s.assets.Find(ctx, bson.M{"visibility": v.String()}, newestFirst())
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.decodeAll(ctx, cur)
}

func (s *DB) ListByOwner(ctx context.Context, ownerID string) ([]entity.Asset, error) {
	oid, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, goerror.ErrNotFound
	}

	cur, err := s.assets.Find(ctx, bson.M{"owner_id": oid}, newestFirst())
	if err != nil {
		return nil, s.mapError(err)
	}

	return s.decodeAll(ctx, cur)
}

func (s *DB) decodeAll(ctx context.Context, cur *mongo.Cursor) ([]entity.Asset, error) {
	defer cur.Close(ctx)

	assets := make([]entity.Asset, 0)
	for cur.Next(ctx) {
		var m assetModel
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		assets = append(assets, m.toEntity())
	}

	return assets, cur.Err()
}
