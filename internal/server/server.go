package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/completion"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/database"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/domain"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/features"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/handler"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/metrics"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/payments"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/player"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/realtime"
	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/rewards"
)

// Dependencies are the services the HTTP surface is built on.
// Payments and Realtime are optional; their routes are omitted when nil.
type Dependencies struct {
	DB         database.Pool
	Verifier   TokenVerifier
	Calculator rewards.Calculator
	Players    player.Service
	Completion completion.Service
	ClubTokens handler.ClubTokens
	Payments   payments.Service
	Flags      *features.Evaluator
	Realtime   *realtime.Manager
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, deps Dependencies) *Server {
	r := chi.NewRouter()

	// outermost first
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(deps.Verifier, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	var streams handler.StreamCounter
	if deps.Realtime != nil {
		streams = deps.Realtime
	}
	r.Get("/readyz", handler.HandleReadyz(deps.DB, streams))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		rewardsHandler := handler.NewRewardsHandler(deps.Calculator, deps.Players, deps.Flags)
		r.Route("/rewards", func(r chi.Router) {
			r.Post("/calculate", rewardsHandler.HandleCalculate)
			r.Post("/preview", rewardsHandler.HandlePreview)
			r.Post("/risk", rewardsHandler.HandleRisk)
			r.Get("/brackets", rewardsHandler.HandleBrackets)
		})

		sessionHandler := handler.NewSessionHandler(deps.Completion, deps.Players)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Post("/complete", sessionHandler.HandleComplete)
			r.Get("/completions", sessionHandler.HandleListCompletions)
		})

		playerHandler := handler.NewPlayerHandler(deps.Players, deps.Completion)
		r.Route("/players/me", func(r chi.Router) {
			r.Get("/status", playerHandler.HandleGetStatus)
			r.Post("/hp/restore", playerHandler.HandleRestoreHP)
			r.Post("/xp", playerHandler.HandleAwardXP)
		})
		r.Post("/coaches/me/cxp", playerHandler.HandleAwardCoachXP)

		clubHandler := handler.NewClubHandler(deps.ClubTokens)
		r.Route("/clubs/{clubID}", func(r chi.Router) {
			r.Post("/token-pool", clubHandler.HandleInitializeTokenPool)
			r.Post("/token-redemptions", clubHandler.HandleRedeemTokens)
		})

		if deps.Payments != nil {
			paymentHandler := handler.NewPaymentHandler(deps.Payments)
			r.Route("/payments", func(r chi.Router) {
				r.Get("/catalog", paymentHandler.HandleCatalog)
				r.Get("/checkouts", paymentHandler.HandleListCheckouts)
				r.Post("/create-club-subscription", paymentHandler.HandleCreateClubSubscription)
				r.Post("/token-pack-purchase", paymentHandler.HandleTokenPackPurchase)
				r.Post("/process-hybrid-payment", paymentHandler.HandleHybridPayment)
			})
		} else {
			slog.Info(LogMsgPaymentsDisabled)
		}

		r.Get("/features", handler.HandleGetFeatures(deps.Flags))

		if deps.Realtime != nil {
			r.Get("/realtime", realtime.Handler(deps.Realtime, func(userID string) bool {
				return deps.Flags.IsEnabled(domain.FeatureRealtimeUpdates, userID)
			}))
		} else {
			slog.Info(LogMsgRealtimeDisabled)
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		router: r,
	}
}

// Handler exposes the routed handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
