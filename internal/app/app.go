// Package app wires dependencies and manages the service lifecycle.
package app

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/creatorconnect/server/internal/pkg/clock"
	"github.com/creatorconnect/server/internal/pkg/config"
	"github.com/creatorconnect/server/internal/pkg/hash"
	"github.com/creatorconnect/server/internal/pkg/jwt"
	"github.com/creatorconnect/server/internal/pkg/mail"
	"github.com/creatorconnect/server/internal/pkg/otp"
	"github.com/creatorconnect/server/internal/pkg/router"
	"github.com/creatorconnect/server/internal/pkg/storage"
	"github.com/creatorconnect/server/internal/pkg/uid"
	"github.com/creatorconnect/server/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	oid       uid.StringID
	uuid      uid.StringID
	codes     otp.Generator
	jwt       jwt.JWT

	// resources
	dbClient *mongo.Client
	database *mongo.Database
	mail     mail.Mail
	storage  storage.Storage

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLogger()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initMail()
	app.initStorage()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
