package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"tienda-movil/internal/apiclient"
	"tienda-movil/internal/config"
	"tienda-movil/internal/handlers"
	"tienda-movil/internal/middleware"
	"tienda-movil/internal/observability"
	"tienda-movil/internal/screens"
	"tienda-movil/internal/server"
	"tienda-movil/internal/ui/templates"
)

const renderTimeout = 10 * time.Second

func handleShell(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
	defer cancel()

	if err := templates.Shell().Render(ctx, w); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"backend", cfg.Backend.BaseURL,
	)

	api := apiclient.New(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)

	usuarios := screens.NewUsuariosScreen(api, logger)
	productos := screens.NewProductosScreen(api, logger)
	compras := screens.NewComprasScreen(api, logger)
	estadisticas := screens.NewEstadisticasScreen(api, logger)

	templateHandlers := &server.TemplateHandlers{
		Shell: handleShell,
	}

	srv := server.NewServer(
		handlers.NewAPIHandlers(usuarios, productos, compras, estadisticas, logger),
		handlers.NewSSEHandlers(usuarios, productos, compras, estadisticas, logger),
		logger,
		templateHandlers,
	)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      middlewareChain(srv),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down screen state")
		return nil
	})

	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
