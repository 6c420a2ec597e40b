// Package usecase implements the identity business flows: OTP issuance and
// verification, registration, and login.
package usecase

import (
	"context"
	"time"

	"github.com/creatorconnect/server/internal/identity/entity"
	"github.com/creatorconnect/server/internal/pkg/clock"
	"github.com/creatorconnect/server/internal/pkg/config"
	"github.com/creatorconnect/server/internal/pkg/hash"
	"github.com/creatorconnect/server/internal/pkg/jwt"
	"github.com/creatorconnect/server/internal/pkg/mail"
	"github.com/creatorconnect/server/internal/pkg/otp"
	"github.com/creatorconnect/server/internal/pkg/uid"
	"github.com/creatorconnect/server/internal/pkg/validator"
)

type repoDB interface {
	// UpsertActiveCode replaces the single unused code record for the email,
	// creating one if none exists. The operation must be atomic in the store.
	UpsertActiveCode(ctx context.Context, code entity.OneTimeCode) error
	// ConsumeCode atomically marks the matching unused, unexpired code as used.
	// It reports false when no record matched, without distinguishing why.
	ConsumeCode(ctx context.Context, email, code string, now time.Time) (bool, error)
	// MarkUserVerified flips the verified flag for the user with the email.
	// It is a no-op when no such user exists.
	MarkUserVerified(ctx context.Context, email string) error

	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user entity.User) error
}

// Usecase carries the identity flows and their collaborators.
type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	mailer    mail.Mail
	bcrypt    hash.Hash
	codes     otp.Generator
	oid       uid.StringID
	clock     clock.Clocker
	jwt       jwt.JWT
	exposeOTP bool
}

// Dependency lists everything Usecase needs.
type Dependency struct {
	RepoDB    repoDB
	Validator validator.Validator
	Config    config.Config
	Mail      mail.Mail
	Bcrypt    hash.Hash
	Codes     otp.Generator
	OID       uid.StringID
	Clock     clock.Clocker
	JWT       jwt.JWT
	// ExposeOTP echoes the raw code in the issue response. Only enable this
	// outside production; it exists so local clients can test without a mail
	// server.
	ExposeOTP bool
}

// New constructs the identity Usecase.
func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		mailer:    dep.Mail,
		bcrypt:    dep.Bcrypt,
		codes:     dep.Codes,
		oid:       dep.OID,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		exposeOTP: dep.ExposeOTP,
	}
}
