package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/creatorconnect/server/internal/pkg/goerror"
)

type DeleteInput struct {
	ID      string `validate:"required"`
	OwnerID string `validate:"required"`
}

type DeleteOutput struct {
	ID string
}

// Delete removes an asset the caller owns: first the stored object, then the
// record. Only the owner may delete an asset.
func (s *Usecase) Delete(ctx context.Context, in DeleteInput) (*DeleteOutput, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	asset, err := s.repoDB.GetAssetByID(ctx, in.ID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("Asset not found", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get asset", "asset_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if asset.OwnerID != in.OwnerID {
		slog.WarnContext(ctx, "asset delete rejected for non-owner", "asset_id", in.ID, "owner_id", in.OwnerID)
		return nil, goerror.NewBusiness("You are not allowed to delete this asset", goerror.CodeForbidden)
	}

	if asset.StorageKey != "" {
		if err := s.storage.Delete(ctx, asset.StorageKey); err != nil {
			slog.ErrorContext(ctx, "failed to delete stored object", "key", asset.StorageKey, "error", err)
			return nil, goerror.NewServer(err)
		}
	}

	if err := s.repoDB.DeleteAsset(ctx, in.ID); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete asset", "asset_id", in.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &DeleteOutput{ID: in.ID}, nil
}
