package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/dkovacic/devlink/internal/config"
	"github.com/dkovacic/devlink/internal/database"
	postgresrepo "github.com/dkovacic/devlink/internal/repository/postgres"
	"github.com/dkovacic/devlink/internal/service"
	"github.com/dkovacic/devlink/internal/token"
	"github.com/dkovacic/devlink/internal/transport/http/handlers"
	"github.com/dkovacic/devlink/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Database
	if err := database.Migrate(ctx, cfg); err != nil {
		log.Fatal(err)
	}
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Println("Connected to database")

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool)
	profileRepo := postgresrepo.NewProfileRepo(pool)
	postRepo := postgresrepo.NewPostRepo(pool)

	// Services
	tokens := token.NewService(cfg.JWTSecret)
	authService := service.NewAuthService(userRepo, tokens)
	profileService := service.NewProfileService(profileRepo)
	accountService := service.NewAccountService(postRepo, profileRepo, userRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(authService)
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService, accountService)

	// Middleware
	auth := middleware.Auth(tokens)
	limiter := middleware.NewRateLimiter(rate.Limit(1), 10)
	defer limiter.Stop()

	mux := handlers.NewRouter(auth, limiter, userHandler, authHandler, profileHandler)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: middleware.CORS(mux),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("Starting server on %s", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
