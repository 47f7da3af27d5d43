package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/GemClicker_Go/internal/game"
	"github.com/osse101/GemClicker_Go/internal/handler"
	"github.com/osse101/GemClicker_Go/internal/logger"
	"github.com/osse101/GemClicker_Go/internal/metrics"
	"github.com/osse101/GemClicker_Go/internal/sse"
)

// Options configures the HTTP server.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration
}

// Deps are the services the routes are bound to.
type Deps struct {
	Game          game.Service
	Notifications handler.NotificationFeed
	Store         handler.Pinger
	Hub           *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, deps),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Middleware runs outermost first.
func NewRouter(opts Options, deps Deps) http.Handler {
	r := chi.NewRouter()

	rateLimit := opts.RateLimit
	if rateLimit == 0 {
		rateLimit = DefaultRateLimit
	}
	detector := NewSuspiciousActivityDetector(rateLimit, opts.RateWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get(RouteHealthz, handler.HandleHealthz())
	r.Get(RouteReadyz, handler.HandleReadyz(deps.Store))
	r.Get(RouteVersion, handler.HandleVersion())
	r.Handle(RouteMetrics, promhttp.Handler())

	r.Route(RouteAPI, func(r chi.Router) {
		if deps.Hub != nil {
			r.Get(RouteEvents, sse.Handler(deps.Hub))
		}

		r.Route(RouteGame, func(r chi.Router) {
			svc := deps.Game

			r.Get("/state", handler.HandleGetState(svc))
			r.Get("/stats", handler.HandleGetStats(svc))
			r.Get("/upgrades", handler.HandleGetUpgrades(svc))
			r.Get("/quests", handler.HandleGetQuests(svc))
			r.Get("/achievements", handler.HandleGetAchievements(svc))
			r.Get("/skills", handler.HandleGetSkills(svc))

			r.Post("/click", handler.HandleClick(svc))
			r.Post("/upgrades/{id}", handler.HandleBuyUpgrade(svc))
			r.Post("/quests/{id}/claim", handler.HandleClaimQuest(svc))
			r.Post("/skills/{id}", handler.HandleBuySkill(svc))
			r.Post("/prestige", handler.HandlePrestige(svc))
			r.Put("/language", handler.HandleSetLanguage(svc))
			r.Post("/save", handler.HandleSave(svc))
			r.Post("/reset", handler.HandleReset(svc))
			r.Post("/lifecycle", handler.HandleLifecycle(svc))

			if deps.Notifications != nil {
				r.Route("/notifications", func(r chi.Router) {
					r.Get("/", handler.HandleListNotifications(deps.Notifications))
					r.Delete("/", handler.HandleClearNotifications(deps.Notifications))
					r.Delete("/{id}", handler.HandleDismissNotification(deps.Notifications))
				})
			}
		})
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, RouteHealthz) ||
			strings.HasPrefix(r.URL.Path, RouteReadyz) ||
			strings.HasPrefix(r.URL.Path, RouteMetrics) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Debug(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start serves until Stop is called. It returns nil after a graceful stop.
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logger.Info(LogMsgServerStopping, "addr", s.httpServer.Addr)
	return s.httpServer.Shutdown(ctx)
}
