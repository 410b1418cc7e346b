// Package httpapi exposes the account service over HTTP: form-encoded
// signup and login plus bearer-token identity resolution.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/esavelyev/accountd/internal/logging"
	"github.com/esavelyev/accountd/internal/server/users"
)

// UserService is the surface the HTTP layer needs from the account service.
type UserService interface {
	Signup(ctx context.Context, username, email, password, confirmPassword string) (*users.User, error)
	Login(ctx context.Context, identifier, password string) (*users.LoginResult, error)
	CurrentUser(ctx context.Context, token string) (*users.User, error)
}

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Server struct {
	address string
	users   UserService
	health  HealthChecker
	logger  logging.Logger
}

func NewServer(address string, l logging.Logger, us UserService, hc HealthChecker) *Server {
	return &Server{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
		health:  hc,
	}
}

// Routes builds the router. Split out from Run so tests can drive the
// handlers through httptest.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/signup", s.handleSignup)
		r.Post("/login", s.handleLogin)
		r.With(s.authenticate).Get("/me", s.handleMe)
	})
	r.Get("/healthz", s.handleHealth)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.logger.Info(ctx, "stopping HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "starting HTTP server", "address", s.address)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	return nil
}
