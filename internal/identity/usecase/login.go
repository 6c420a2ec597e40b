package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/creatorconnect/server/internal/identity/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	User  entity.User
	Token string
}

// Login authenticates by email and password. Unknown accounts and wrong
// passwords fail with the same message so callers cannot probe for accounts.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := normalizeEmail(in.Email)

	user, err := s.repoDB.GetUserByEmail(ctx, email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "login for unknown email", "email", email)
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "login password mismatch", "user_id", user.ID)
		return nil, goerror.NewBusiness("Invalid credentials", goerror.CodeUnauthorized)
	}

	token, err := s.jwt.Generate(user.ID, user.Role.String())
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	out := *user
	out.Password = ""

	return &LoginOutput{User: out, Token: token}, nil
}
