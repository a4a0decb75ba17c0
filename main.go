package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "bennyevents/internal/config"
	intdb "bennyevents/internal/db"
	router "bennyevents/internal/http"
	"bennyevents/internal/http/handlers"
	"bennyevents/internal/ledger"
	"bennyevents/internal/repositories"
	"bennyevents/internal/services"
	"bennyevents/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	env, err := intconfig.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := utils.InitLogger(env.Environment)
	defer logger.Sync()
	sugar := logger.Sugar()

	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	db, err := intconfig.ConnectDB(env.DBDSN)
	if err != nil {
		sugar.Fatalw("failed to connect database", "error", err)
	}
	defer intconfig.CloseDB()
	sugar.Infow("connected to database")

	if err := intdb.Migrate(context.Background(), db); err != nil {
		sugar.Fatalw("failed to apply migrations", "error", err)
	}

	hub := ledger.NewHub()
	bookingRepo := repositories.BookingRepository{DB: db}

	h := &handlers.Handlers{
		Bookings:  services.BookingService{Repo: bookingRepo, Hub: hub},
		Roles:     services.RoleService{Repo: repositories.RoleRepository{DB: db}},
		Docs:      services.DocsService{BookingRepo: bookingRepo},
		Ledger:    &ledger.Manager{Store: bookingRepo, Hub: hub},
		JWTSecret: []byte(env.JWTSecret),
	}

	r := router.NewRouter(env, h)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sugar.Infow("server listening", "addr", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("failed to run server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sugar.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		sugar.Fatalw("server shutdown failed", "error", err)
	}

	sugar.Infow("server stopped cleanly")
}
