package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/creatorconnect/server/internal/asset/entity"
)

func (s *DB) CreateAsset(ctx context.Context, asset entity.Asset) error {
	id, err := primitive.ObjectIDFromHex(asset.ID)
	if err != nil {
		return fmt.Errorf("invalid asset id %q: %w", asset.ID, err)
	}

	ownerID, err := primitive.ObjectIDFromHex(asset.OwnerID)
	if err != nil {
		return fmt.Errorf("invalid owner id %q: %w", asset.OwnerID, err)
	}

	_, err = s.assets.InsertOne(ctx, assetModel{
		ID:         id,
		Title:      asset.Title,
		FileName:   asset.FileName,
		FileURL:    asset.FileURL,
		StorageKey: asset.StorageKey,
		MimeType:   asset.MimeType,
		Visibility: asset.Visibility.String(),
		OwnerID:    ownerID,
		OwnerName:  asset.OwnerName,
		CreatedAt:  asset.CreatedAt,
	})

	return s.mapError(err)
}
