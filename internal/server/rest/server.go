// Package rest exposes the HTTP API. It translates requests into service
// calls and service errors back into status codes, and owns the access-token
// cookie lifecycle.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"itemvault/internal/logging"
	"itemvault/internal/server/config"
	"itemvault/internal/server/services"
)

type Server struct {
	addr     string
	logger   logging.Logger
	users    *services.UserService
	items    *services.ItemService
	cookieTTL time.Duration
	metrics  *httpMetrics

	httpServer *http.Server
}

func NewServer(cfg *config.Config, logger logging.Logger, users *services.UserService, items *services.ItemService) *Server {
	return &Server{
		addr:      cfg.EndpointAddrHTTP,
		logger:    logger,
		users:     users,
		items:     items,
		cookieTTL: cfg.AccessTokenValidityDuration,
		metrics:   newHTTPMetrics(),
	}
}

// Router builds the route table. Reads on users and items are public;
// everything that acts on behalf of an identity goes through requireAuth.
func (s *Server) Router() http.Handler {
	router := httprouter.New()

	router.POST("/users/sign_up", s.signUp)
	router.POST("/users/sign_in", s.signIn)
	router.POST("/users/logout", s.logout)

	router.GET("/users/me", s.requireAuth(s.me))
	router.GET("/users/me/items", s.requireAuth(s.myItems))
	router.GET("/users/me/items/:id", s.requireAuth(s.myItem))

	router.GET("/users", s.listUsers)
	router.GET("/users/user/:id", s.getUser)

	router.POST("/items", s.requireAuth(s.createItem))
	router.DELETE("/items/:id", s.requireAuth(s.deleteItem))
	router.GET("/items", s.listItems)
	router.GET("/items/:id", s.getItem)

	router.GET("/healthz", s.healthz)
	router.Handler(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))

	return s.withRequestID(s.withMetrics(router))
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{Addr: s.addr, Handler: s.Router()}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
