package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/jaminalder/elite-tic-tac-toe/internal/app"
)

// DefaultCookieName names the session cookie unless overridden.
const DefaultCookieName = "ttt_session"

// Option customises the server.
type Option func(*handlers)

// WithCookieName sets the session cookie name.
func WithCookieName(name string) Option {
	return func(h *handlers) {
		if name != "" {
			h.cookie = name
		}
	}
}

// NewServer wires routes and returns an http.Handler.
func NewServer(log *zap.Logger, s *app.Sessions, opts ...Option) http.Handler {
	h := &handlers{
		sessions: s,
		tpl:      loadTemplates(),
		cookie:   DefaultCookieName,
		log:      log.Named("web"),
	}
	for _, opt := range opts {
		opt(h)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)

	r.Get("/", h.index)
	r.Post("/cells/{index}", h.activate)
	r.Post("/reset", h.reset)
	r.Get("/healthz", h.healthz)
	return r
}
