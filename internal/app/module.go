package app

import (
	"log/slog"
	"os"

	"github.com/creatorconnect/server/internal/asset"
	"github.com/creatorconnect/server/internal/identity"
)

func (a *App) initModules() {
	if err := identity.New(a.ctx, identity.Dependency{
		Database:  a.database,
		Router:    a.router,
		Config:    a.config,
		Validator: a.validator,
		Mail:      a.mail,
		Bcrypt:    a.bcrypt,
		Codes:     a.codes,
		OID:       a.oid,
		Clock:     a.clock,
		JWT:       a.jwt,
	}); err != nil {
		slog.Error("failed to init module identity", "error", err)
		os.Exit(1)
	}

	if err := asset.New(a.ctx, asset.Dependency{
		Database:  a.database,
		Router:    a.router,
		Config:    a.config,
		Validator: a.validator,
		Storage:   a.storage,
		OID:       a.oid,
		Clock:     a.clock,
	}); err != nil {
		slog.Error("failed to init module asset", "error", err)
		os.Exit(1)
	}
}
