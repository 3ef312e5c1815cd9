package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movielobby/auth"
	"movielobby/httpserver"
	"movielobby/memory"
	"movielobby/movie"
	"movielobby/pkg/config"
	"movielobby/pkg/jwt"
	"movielobby/pkg/logger"
	"movielobby/pkg/sentry"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	err = sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		log.Fatalw("cannot init sentry", "error", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	repo := memory.NewMovieRepository()
	if err := seedCatalog(context.Background(), cfg, repo, log); err != nil {
		sentry.Fatal(err)
		log.Fatalw("cannot seed catalog", "error", err)
	}

	if cfg.Auth.JWTSecret == "" {
		log.Warn("JWT_SECRET is not set; write endpoints will answer 500")
		sentry.Warning("JWT_SECRET is not set")
	}

	server, err := httpserver.New(cfg,
		httpserver.WithLogger(log),
		httpserver.WithMovieService(movie.NewUsecase(repo)),
		httpserver.WithAuthService(auth.NewUsecase(jwt.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL))),
	)
	if err != nil {
		log.Fatalw("cannot create server", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Infow("server started", "addr", server.Addr)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server stopped with error", "error", err)
			sentry.Error(err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("graceful shutdown failed", "error", err)
	}
}

func seedCatalog(ctx context.Context, cfg *config.Config, repo movie.Repository, log *zap.SugaredLogger) error {
	movies := memory.DemoMovies
	source := "demo"
	switch {
	case cfg.Seed.File != "":
		f, err := os.Open(cfg.Seed.File)
		if err != nil {
			return err
		}
		defer f.Close()
		if movies, err = memory.LoadCSV(f); err != nil {
			return err
		}
		source = cfg.Seed.File
	case !cfg.Seed.Demo:
		return nil
	}

	n, err := memory.Seed(ctx, repo, movies)
	if err != nil {
		return err
	}
	log.Infow("catalog seeded", "source", source, "movies", n)
	sentry.WithExtras(map[string]interface{}{"source": source, "movies": n}).Info("catalog seeded")
	return nil
}
