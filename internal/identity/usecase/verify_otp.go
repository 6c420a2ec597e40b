package usecase

import (
	"context"
	"log/slog"

	"github.com/creatorconnect/server/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	OTP   string `validate:"required"`
}

type VerifyOTPOutput struct {
	Success bool
}

// VerifyOTP consumes the matching unused, unexpired code for the email. The
// failure message never reveals whether the code was wrong, expired, already
// used, or never issued.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := normalizeEmail(in.Email)

	matched, err := s.repoDB.ConsumeCode(ctx, email, in.OTP, s.clock.Now())
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo consume otp code", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}
	if !matched {
		slog.WarnContext(ctx, "otp verification rejected", "email", email)
		return nil, goerror.NewBusiness("Invalid or expired OTP", goerror.CodeUnauthorized)
	}

	// The verified flag flips even before the account exists; registration
	// then creates the user as already verified.
	if err := s.repoDB.MarkUserVerified(ctx, email); err != nil {
		slog.ErrorContext(ctx, "failed to repo mark user verified", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyOTPOutput{Success: true}, nil
}
