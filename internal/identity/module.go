// Package identity wires the email-OTP registration and login flows: entity
// types, usecases, the MongoDB adapter, and the HTTP endpoints.
package identity

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/creatorconnect/server/internal/identity/inbound"
	"github.com/creatorconnect/server/internal/identity/outbound/db"
	"github.com/creatorconnect/server/internal/identity/usecase"
	"github.com/creatorconnect/server/internal/pkg/clock"
	"github.com/creatorconnect/server/internal/pkg/config"
	"github.com/creatorconnect/server/internal/pkg/goerror"
	"github.com/creatorconnect/server/internal/pkg/hash"
	"github.com/creatorconnect/server/internal/pkg/jwt"
	"github.com/creatorconnect/server/internal/pkg/mail"
	"github.com/creatorconnect/server/internal/pkg/otp"
	"github.com/creatorconnect/server/internal/pkg/router"
	"github.com/creatorconnect/server/internal/pkg/uid"
	"github.com/creatorconnect/server/internal/pkg/validator"
)

type Dependency struct {
	Database  *mongo.Database     `validate:"required"`
	Router    *router.Router      `validate:"required"`
	Config    config.Config       `validate:"required"`
	Validator validator.Validator `validate:"required"`
	Mail      mail.Mail           `validate:"required"`
	Bcrypt    hash.Hash           `validate:"required"`
	Codes     otp.Generator       `validate:"required"`
	OID       uid.StringID        `validate:"required"`
	Clock     clock.Clocker       `validate:"required"`
	JWT       jwt.JWT             `validate:"required"`
}

func New(ctx context.Context, dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	dbAuth := db.NewDB(dep.Database)
	if err := dbAuth.EnsureIndexes(ctx); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:    dbAuth,
		Validator: dep.Validator,
		Config:    dep.Config,
		Mail:      dep.Mail,
		Bcrypt:    dep.Bcrypt,
		Codes:     dep.Codes,
		OID:       dep.OID,
		Clock:     dep.Clock,
		JWT:       dep.JWT,
		ExposeOTP: dep.Config.GetBool("modules.identity.expose_otp"),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

// AuthResolver resolves verified token subjects to live user records for the
// router's authentication middleware.
type AuthResolver struct {
	db *db.DB
}

// NewAuthResolver builds a resolver backed by the users collection.
func NewAuthResolver(database *mongo.Database) *AuthResolver {
	return &AuthResolver{db: db.NewDB(database)}
}

// Resolve returns the live identity for the user id, or nil when the account
// no longer exists.
func (r *AuthResolver) Resolve(ctx context.Context, userID string) (*router.Identity, error) {
	user, err := r.db.GetUserByID(ctx, userID)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &router.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role.String(),
	}, nil
}
