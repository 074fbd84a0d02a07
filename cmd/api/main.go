package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"mehndi-service/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[MAIN] No .env file found, relying on system env vars")
	}

	srv, err := app.NewServer(context.Background())
	if err != nil {
		log.Fatalf("[MAIN] failed to initialize server: %v", err)
	}

	// Run server in a separate goroutine so we can listen for shutdown signals
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Printf("[MAIN] server failed: %v", err)
			_ = srv.Shutdown(context.Background())
			os.Exit(1)
		}
		return
	case <-quit:
	}

	log.Println("[MAIN] shutting down server...")
	if err := srv.Shutdown(context.Background()); err != nil {
		log.Printf("[MAIN] graceful shutdown failed: %v", err)
		os.Exit(1)
	}
	log.Println("[MAIN] server stopped gracefully")
}
