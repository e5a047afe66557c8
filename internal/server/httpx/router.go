// Package httpx exposes the account service over HTTP.
package httpx

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HealthFunc reports whether the service dependencies are reachable.
type HealthFunc func(ctx context.Context) error

// Router wires HTTP endpoints to services.
type Router struct {
	mux    chi.Router
	logger logging.Logger
	users  UserService
	health HealthFunc
}

// NewRouter assembles routes with dependencies. health may be nil.
func NewRouter(logger logging.Logger, users UserService, health HealthFunc) *Router {
	rt := &Router{
		mux:    chi.NewRouter(),
		logger: logger.With("module", "http"),
		users:  users,
		health: health,
	}
	rt.register()
	return rt
}

func (rt *Router) register() {
	rt.mux.Use(middleware.StripSlashes)
	rt.mux.Use(rt.requestID)
	rt.mux.Use(rt.audit)
	rt.mux.Use(rt.recoverer)

	rt.mux.Get("/healthz", rt.handleHealthz)
	rt.mux.Post(common.UsersRoute, rt.handleRegister)
}

// ServeHTTP delegates to the chi mux.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}
