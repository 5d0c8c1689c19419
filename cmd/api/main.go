package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/vidasalud-clinic/admission-service/internal/config"
	"github.com/vidasalud-clinic/admission-service/internal/db"
	"github.com/vidasalud-clinic/admission-service/internal/http"
	"github.com/vidasalud-clinic/admission-service/internal/messaging"
	"github.com/vidasalud-clinic/admission-service/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	// Initialize OpenTelemetry
	otelConfig := telemetry.LoadConfig()
	provider, err := telemetry.InitProvider(ctx, otelConfig)
	if err != nil {
		log.Printf("Warning: failed to initialize OpenTelemetry: %v", err)
		log.Println("Service will continue without telemetry")
	}
	if provider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during telemetry shutdown: %v", err)
			}
		}()
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Printf("Warning: failed to initialize metrics: %v", err)
		metrics = nil
	} else {
		log.Println("✓ Custom metrics initialized")
	}

	// Connect to PostgreSQL
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Connect to RabbitMQ; the service degrades to log-only events if
	// the broker is unreachable at startup
	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: failed to connect to RabbitMQ: %v", err)
		log.Println("Service will continue without event publishing")
		publisher = nil
	} else {
		defer publisher.Close()
	}

	router := http.SetupRouter(database, publisher, cfg, metrics)

	server := &nethttp.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      http.CORSMiddleware(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("✓ Admission service listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, draining connections...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("✓ Server shut down gracefully")
	}
}
