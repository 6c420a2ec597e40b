// Package usecase implements the media asset flows: upload, listing, and
// deletion.
package usecase

import (
	"context"

	"github.com/creatorconnect/server/internal/asset/entity"
	"github.com/creatorconnect/server/internal/pkg/clock"
	"github.com/creatorconnect/server/internal/pkg/config"
	"github.com/creatorconnect/server/internal/pkg/storage"
	"github.com/creatorconnect/server/internal/pkg/uid"
	"github.com/creatorconnect/server/internal/pkg/validator"
)

// storageKeyPrefix namespaces uploaded objects inside the bucket.
const storageKeyPrefix = "creator-connect/assets/"

type repoDB interface {
	CreateAsset(ctx context.Context, asset entity.Asset) error
	// GetAssetByID returns goerror.ErrNotFound when no record exists.
	GetAssetByID(ctx context.Context, id string) (*entity.Asset, error)
	// ListByVisibility returns assets newest first.
	ListByVisibility(ctx context.Context, v entity.Visibility) ([]entity.Asset, error)
	// ListByOwner returns the owner's assets newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Asset, error)
	DeleteAsset(ctx context.Context, id string) error
}

// Usecase carries the asset flows and their collaborators.
type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	storage   storage.Storage
	oid       uid.StringID
	clock     clock.Clocker
}

// Dependency lists everything Usecase needs.
type Dependency struct {
	RepoDB    repoDB
	Validator validator.Validator
	Config    config.Config
	Storage   storage.Storage
	OID       uid.StringID
	Clock     clock.Clocker
}

// New constructs the asset Usecase.
func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		storage:   dep.Storage,
		oid:       dep.OID,
		clock:     dep.Clock,
	}
}
