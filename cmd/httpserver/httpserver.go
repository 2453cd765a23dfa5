// Package httpserver manages server creation and api routing.
package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/accountdelivery"
	"github.com/go-petr/pet-ledger/internal/accountservice"
	"github.com/go-petr/pet-ledger/internal/clientdelivery"
	"github.com/go-petr/pet-ledger/internal/clientservice"
	"github.com/go-petr/pet-ledger/internal/ledger"
	"github.com/go-petr/pet-ledger/internal/middleware"
	"github.com/go-petr/pet-ledger/internal/transferdelivery"
	"github.com/go-petr/pet-ledger/internal/transferservice"
	"github.com/go-petr/pet-ledger/pkg/configpkg"
	"github.com/go-petr/pet-ledger/pkg/passpkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Server holds the ledger registry, handlers router and configuration.
type Server struct {
	Registry *ledger.Registry
	Engine   *gin.Engine
	Config   configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(registry *ledger.Registry, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	if config.AdminPassword == "" {
		return nil, errors.New("admin password is not configured")
	}

	hashedPassword, err := passpkg.Hash(config.AdminPassword)
	if err != nil {
		return nil, errors.New("cannot hash admin password")
	}

	if err := web.RegisterValidators(); err != nil {
		return nil, errors.New("cannot register amount validator")
	}

	clientService := clientservice.New(registry)
	accountService := accountservice.New(registry)
	transferService := transferservice.New(registry)

	clientHandler := clientdelivery.NewHandler(clientService, accountService)
	accountHandler := accountdelivery.NewHandler(accountService)
	transferHandler := transferdelivery.NewHandler(transferService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/clients", clientHandler.Create)
	engine.GET("/clients/:id", clientHandler.Get)
	engine.GET("/clients/:id/transactions", clientHandler.Transactions)
	engine.POST("/clients/:id/accounts", accountHandler.Create)

	engine.GET("/accounts/:id", accountHandler.Get)
	engine.GET("/accounts/:id/transactions", accountHandler.Transactions)
	engine.POST("/accounts/:id/deposits", accountHandler.Deposit)
	engine.POST("/accounts/:id/withdrawals", accountHandler.Withdraw)

	engine.POST("/transfers", transferHandler.Create)

	adminRoutes := engine.Group("/admin").Use(middleware.AdminAuth(hashedPassword))

	adminRoutes.GET("/clients", clientHandler.List)
	adminRoutes.GET("/clients/:id/transactions", clientHandler.Transactions)
	adminRoutes.POST("/accounts/:id/interest", accountHandler.AccrueInterest)
	adminRoutes.PATCH("/accounts/:id/status", accountHandler.SetStatus)

	server := &Server{
		Registry: registry,
		Engine:   engine,
		Config:   config,
	}

	return server, nil
}
