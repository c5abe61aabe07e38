package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nekogravitycat/tennis-scheduling-backend/internal/app"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/config"
	"github.com/nekogravitycat/tennis-scheduling-backend/internal/queue"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Init components; a malformed timetable aborts here.
	container, err := app.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to init application: %v", err)
	}
	defer container.Close()

	log.Printf("slot catalog ready: %d slots", container.Catalog.Len())

	// Warm venue addresses in the background; booking never waits on this.
	go container.Resolver.Warm(ctx)

	// Consume booking events when a broker is configured.
	if cfg.AMQPURL != "" {
		go queue.StartBookingConsumer(ctx, cfg.AMQPURL)
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		log.Printf("server running on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	log.Println("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	log.Println("server exited gracefully")
}
