package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"bluebus/internal/catalog"
	intconfig "bluebus/internal/config"
	router "bluebus/internal/http"
	"bluebus/internal/repositories"
	"bluebus/internal/services"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	users := repositories.UserRepository{}
	bookings := repositories.BookingRepository{}
	if err := users.EnsureSchema(); err != nil {
		log.Fatalf("failed to ensure users schema: %v", err)
	}
	if err := bookings.EnsureSchema(); err != nil {
		log.Fatalf("failed to ensure bookings schema: %v", err)
	}
	if err := users.SeedAdmin(env.AdminUsername, env.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	cat, err := catalog.Load(env.CatalogFile)
	if err != nil {
		log.Fatalf("failed to load bus catalog: %v", err)
	}

	wizard := services.NewWizardService(cat, bookings)

	// Router (Gin engine)
	r := router.NewRouter(env, wizard)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to run server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	log.Println("server stopped cleanly.")
}
