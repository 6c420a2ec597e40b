package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/creatorconnect/server/internal/identity/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
)

type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
	OTP      string `validate:"required"`
}

type RegisterOutput struct {
	User  entity.User
	Token string
}

// Register creates a verified account. The email must not be taken and the
// OTP must be consumable; the conflict check runs before the OTP is spent so
// a duplicate registration does not burn a valid code.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := normalizeEmail(in.Email)

	existing, err := s.repoDB.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}
	if existing != nil {
		slog.WarnContext(ctx, "registration rejected for taken email", "email", email)
		return nil, goerror.NewBusiness("User already exists", goerror.CodeConflict)
	}

	if _, err := s.VerifyOTP(ctx, VerifyOTPInput{Email: email, OTP: in.OTP}); err != nil {
		return nil, err
	}

	hashed, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	user := entity.User{
		ID:        s.oid.Generate(),
		Name:      in.Name,
		Email:     email,
		Password:  string(hashed),
		Role:      entity.RoleUser,
		Verified:  true,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repoDB.CreateUser(ctx, user); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "registration lost create race", "email", email)
			return nil, goerror.NewBusiness("User already exists", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	token, err := s.jwt.Generate(user.ID, user.Role.String())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	user.Password = ""

	return &RegisterOutput{User: user, Token: token}, nil
}
