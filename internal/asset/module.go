// Package asset wires the media-asset workflows: entity types, usecases, the
// MongoDB adapter, and the HTTP endpoints.
package asset

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/creatorconnect/server/internal/asset/inbound"
	"github.com/creatorconnect/server/internal/asset/outbound/db"
	"github.com/creatorconnect/server/internal/asset/usecase"
	"github.com/creatorconnect/server/internal/pkg/clock"
	"github.com/creatorconnect/server/internal/pkg/config"
	"github.com/creatorconnect/server/internal/pkg/router"
	"github.com/creatorconnect/server/internal/pkg/storage"
	"github.com/creatorconnect/server/internal/pkg/uid"
	"github.com/creatorconnect/server/internal/pkg/validator"
)

type Dependency struct {
	Database  *mongo.Database     `validate:"required"`
	Router    *router.Router      `validate:"required"`
	Config    config.Config       `validate:"required"`
	Validator validator.Validator `validate:"required"`
	Storage   storage.Storage     `validate:"required"`
	OID       uid.StringID        `validate:"required"`
	Clock     clock.Clocker       `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAsset := db.NewDB(dep.Database)
	if err := dbAsset.EnsureIndexes(ctx); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:    dbAsset,
		Validator: dep.Validator,
		Config:    dep.Config,
		Storage:   dep.Storage,
		OID:       dep.OID,
		Clock:     dep.Clock,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
