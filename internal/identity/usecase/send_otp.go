package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/creatorconnect/server/internal/identity/entity"
	"github.com/creatorconnect/server/internal/pkg/goerror"
	"github.com/creatorconnect/server/internal/pkg/mail"
)

type SendOTPInput struct {
	Email string `validate:"required,email"`
}

type SendOTPOutput struct {
	Email     string
	ExpiresAt time.Time
	// Code carries the raw OTP only when the usecase was built with ExposeOTP.
	Code string
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func otpMailBody(code string, validFor time.Duration) string {
	minutes := int(validFor.Minutes())
	return fmt.Sprintf(`
  <div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto;padding:16px;">
    <h2 style="margin:0 0 12px;">Creator Connect OTP</h2>
    <p style="margin:0 0 8px;">Your verification code is:</p>
    <p style="font-size:28px;font-weight:700;letter-spacing:4px;margin:8px 0 12px;">%s</p>
    <p style="margin:0;color:#555;">This OTP is valid for %d minutes.</p>
  </div>
`, code, minutes)
}

// SendOTP issues a fresh one-time code for the email, replacing any unused
// code already issued, and dispatches it by mail.
func (s *Usecase) SendOTP(ctx context.Context, in SendOTPInput) (*SendOTPOutput, error) {
	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := normalizeEmail(in.Email)

	code, err := s.codes.Generate()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "error", err)
		return nil, goerror.NewServer(err)
	}

	validFor := s.cfg.GetMinute("modules.identity.otp_expiry_minutes")
	if validFor <= 0 {
		validFor = 10 * time.Minute
	}
	expiresAt := s.clock.Now().Add(validFor)

	if err := s.repoDB.UpsertActiveCode(ctx, entity.OneTimeCode{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
		Used:      false,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to repo upsert otp code", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if err := s.mailer.Send(ctx, mail.Message{
		To:       []string{email},
		Subject:  "Your OTP for Creator Connect",
		HTMLBody: otpMailBody(code, validFor),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to send otp mail", "email", email, "error", err)
		if errors.Is(err, mail.ErrNotConfigured) {
			return nil, goerror.NewConfiguration(err, "Email service is not configured")
		}
		return nil, goerror.NewServer(err)
	}

	out := &SendOTPOutput{Email: email, ExpiresAt: expiresAt}
	if s.exposeOTP {
		out.Code = code
	}

	return out, nil
}
