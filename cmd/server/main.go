package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/prospot/prospot-api/internal/config"
	"github.com/prospot/prospot-api/internal/http/health"
	"github.com/prospot/prospot-api/internal/http/v1/routes"
	"github.com/prospot/prospot-api/internal/platform/auth"
	"github.com/prospot/prospot-api/internal/platform/firebase"
	applog "github.com/prospot/prospot-api/internal/platform/logging"
	appmiddleware "github.com/prospot/prospot-api/internal/platform/middleware"
	"github.com/prospot/prospot-api/internal/respond"
	adsvc "github.com/prospot/prospot-api/internal/service/ads"
	assistsvc "github.com/prospot/prospot-api/internal/service/assist"
	catalogsvc "github.com/prospot/prospot-api/internal/service/catalog"
	usersvc "github.com/prospot/prospot-api/internal/service/user"
	"github.com/prospot/prospot-api/internal/store"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		applog.LogFatal(context.Background(), "config load failed", err)
	}

	ctx := context.Background()

	gateway, verifier, cleanup := buildStorage(ctx, cfg)
	defer cleanup()

	catalogService := catalogsvc.NewStore(gateway)
	adService := adsvc.NewStore(gateway)
	userService := usersvc.NewStore(gateway)
	assistService := buildAssist(cfg)

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)

	respond.Install()

	apiConfig := huma.DefaultConfig("ProSpot API", Version)
	apiConfig.DocsPath = "/api-docs"
	api := humachi.New(router, apiConfig)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	routes.Register(api, verifier, catalogService, adService, userService, assistService)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// buildStorage assembles the tiered gateway from whatever is configured.
// Missing Firebase credentials drop the remote tier and a missing Redis
// address drops the cache tier. With neither the gateway falls back to a
// seeded in-memory store and mock auth, which is the local development mode;
// writes live for the process lifetime.
func buildStorage(ctx context.Context, cfg config.Config) (store.Gateway, auth.Verifier, func()) {
	var (
		remote   store.Gateway
		cache    *store.Cache
		verifier auth.Verifier
		closers  []func()
	)

	if cfg.Firebase.ProjectID != "" {
		clients, err := firebase.InitializeClients(ctx, firebase.Config{
			ProjectID:       cfg.Firebase.ProjectID,
			CredentialsFile: cfg.Firebase.GoogleApplicationCredentials,
		})
		if err != nil {
			applog.LogFatal(ctx, "firebase init failed", err)
		}
		closers = append(closers, func() {
			if err := clients.Close(); err != nil {
				applog.LogError(context.Background(), "firebase close error", err)
			}
		})
		remote = store.NewFirestoreStore(clients.Firestore)
		verifier = auth.NewFirebaseVerifier(clients.Auth)
	} else {
		applog.LogWarn(ctx, "no firebase project configured, using mock auth and no remote store")
		verifier = &auth.MockVerifier{Account: auth.TestAccount()}
	}

	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		closers = append(closers, func() {
			if err := rdb.Close(); err != nil {
				applog.LogError(context.Background(), "redis close error", err)
			}
		})
		cache = store.NewCache(rdb)
	}

	gateway := store.NewFallback(remote, cache)
	if err := gateway.CheckVersion(ctx, cfg.DataVersion); err != nil {
		applog.LogError(ctx, "data version check failed", err)
	}
	if err := gateway.Warm(ctx); err != nil {
		applog.LogError(ctx, "collection warmup failed", err)
	}

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	return gateway, verifier, cleanup
}

// buildAssist wires the AI helper. Without an API key every call answers
// from the local keyword heuristic.
func buildAssist(cfg config.Config) assistsvc.Service {
	if cfg.Assist.APIKey == "" {
		applog.LogWarn(context.Background(), "no assist api key configured, using local heuristic only")
		return assistsvc.NewWithFallback(nil)
	}
	client, err := assistsvc.NewGPTClient(assistsvc.GPTConfig{
		APIURL: cfg.Assist.APIURL,
		APIKey: cfg.Assist.APIKey,
		Model:  cfg.Assist.Model,
	})
	if err != nil {
		applog.LogError(context.Background(), "assist client init failed, using local heuristic", err)
		return assistsvc.NewWithFallback(nil)
	}
	return assistsvc.NewWithFallback(client)
}
