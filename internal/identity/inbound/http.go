// Package inbound exposes the identity module over HTTP.
package inbound

import (
	"context"

	"github.com/creatorconnect/server/internal/identity/usecase"
	"github.com/creatorconnect/server/internal/pkg/router"
)

type uc interface {
	SendOTP(ctx context.Context, in usecase.SendOTPInput) (*usecase.SendOTPOutput, error)
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/auth/send-otp", end.SendOTP)
	r.POST("/api/auth/verify-otp", end.VerifyOTP)
	//
	r.POST("/api/auth/register", end.Register)
	r.POST("/api/auth/signup", end.Register) // alias
	//
	r.POST("/api/auth/login", end.Login)
	r.POST("/api/auth/signin", end.Login) // alias
}
