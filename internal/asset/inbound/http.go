// Package inbound exposes the asset module over HTTP.
package inbound

import (
	"context"

	"github.com/creatorconnect/server/internal/asset/usecase"
	"github.com/creatorconnect/server/internal/pkg/router"
)

type uc interface {
	Upload(ctx context.Context, in usecase.UploadInput) (*usecase.UploadOutput, error)
	ListPublic(ctx context.Context) (*usecase.ListPublicOutput, error)
	ListMine(ctx context.Context, in usecase.ListMineInput) (*usecase.ListMineOutput, error)
	Delete(ctx context.Context, in usecase.DeleteInput) (*usecase.DeleteOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/assets/public", end.ListPublic)
	r.GET("/api/assets/me", end.ListMine)
	r.POST("/api/assets", end.Upload)
	r.DELETE("/api/assets/:id", end.Delete)
}
