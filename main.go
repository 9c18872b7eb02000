package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payoff-agent/config"
	httpLayer "payoff-agent/http"
	"payoff-agent/repository"
	"payoff-agent/service"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	var cache repository.CacheRepository
	if cfg.CacheBackend == "redis" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		if err := redisCache.Ping(); err != nil {
			log.Fatalf("Cannot reach redis at %s: %v", cfg.RedisAddr, err)
		}
		cache = redisCache
	} else {
		cache = repository.NewMockCache()
	}

	planRepo := repository.NewPlanRepositoryMemory()

	payoffService := service.NewPayoffService(planRepo, cache)
	payoffHandler := httpLayer.NewPayoffHandler(payoffService)

	projectionService := service.NewProjectionService()
	projectionHandler := httpLayer.NewProjectionHandler(projectionService)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	routes := map[string]http.HandlerFunc{
		"/payoff/plan":      payoffHandler.BuildPlan,
		"/payoff/compare":   payoffHandler.CompareStrategies,
		"/payoff/goal":      payoffHandler.GoalSeek,
		"/credit/summary":   payoffHandler.CreditSummary,
		"/loan/outstanding": projectionHandler.Outstanding,
		"/loan/projection":  projectionHandler.Project,
	}
	for path, handler := range routes {
		mux.Handle(path, httpLayer.RateLimitMiddleware(rateLimiter, handler))
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Payoff API listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
