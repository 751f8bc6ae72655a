package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bookstore/internal/book"
	"bookstore/internal/httpx"
	"bookstore/internal/user"
)

func main() {
	loadEnvFiles()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	books := book.DefaultSeed()
	if cfg.SeedFile != "" {
		if books, err = book.LoadSeedFile(cfg.SeedFile); err != nil {
			log.Fatalf("cannot load seed file: %v", err)
		}
	}
	users, err := user.DefaultSeed()
	if err != nil {
		log.Fatalf("cannot seed users: %v", err)
	}
	bookService := book.NewService(book.NewMemoryRepo(books), cfg.ResponseDelay)
	userService := user.NewService(user.NewMemoryRepo(users))
	log.Printf("catalog loaded books=%d users=%d response_delay=%s", len(books), len(users), bookService.Delay())

	handler := newHandler(ctx, cfg, bookService, userService)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.writeTimeout(),
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.writeTimeout())
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Server running on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	log.Println("server stopped")
}

// newHandler builds the routed, middleware-wrapped handler. ctx bounds the
// rate limiter's background eviction.
func newHandler(ctx context.Context, cfg config, bookService *book.Service, userService *user.Service) http.Handler {
	router := http.NewServeMux()

	router.Handle("/healthz", httpx.MethodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		}),
	}))

	book.NewHTTPHandler(bookService).RegisterRoutes(router)
	user.NewHTTPHandler(userService).RegisterRoutes(router)

	middleware := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware,
		httpx.CORSMiddleware(cfg.CORSAllowedOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
	}
	if cfg.RateLimitRPS > 0 {
		limiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
		go limiter.Run(ctx)
		middleware = append(middleware, limiter.Middleware)
	}

	return httpx.Chain(router, middleware...)
}
