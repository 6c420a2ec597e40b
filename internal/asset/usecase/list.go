package usecase

import (
	"context"
	"log/slog"

	"github.com/creatorconnect/server/internal/asset/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
)

type ListPublicOutput struct {
	Assets []entity.Asset
}

// ListPublic returns every public asset, newest first.
func (s *Usecase) ListPublic(ctx context.Context) (*ListPublicOutput, error) {
	assets, err := s.repoDB.ListByVisibility(ctx, entity.VisibilityPublic)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list public assets", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListPublicOutput{Assets: assets}, nil
}

type ListMineInput struct {
	OwnerID string `validate:"required"`
}

type ListMineOutput struct {
	Assets []entity.Asset
}

// ListMine returns the owner's assets, public and private, newest first.
func (s *Usecase) ListMine(ctx context.Context, in ListMineInput) (*ListMineOutput, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	assets, err := s.repoDB.ListByOwner(ctx, in.OwnerID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list owner assets", "owner_id", in.OwnerID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListMineOutput{Assets: assets}, nil
}
