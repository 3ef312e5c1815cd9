package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"movielobby/auth"
	"movielobby/pkg/config"
	"movielobby/pkg/jwt"
	"movielobby/pkg/logger"
)

// token prints a bearer token signed with JWT_SECRET, for calling the
// write endpoints by hand.
func main() {
	var (
		userID string
		role   string
	)
	flag.StringVar(&userID, "user", "admin", "user id carried in the token")
	flag.StringVar(&role, "role", string(auth.RoleAdmin), "role carried in the token (USER or ADMIN)")
	flag.Parse()

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

	svc := auth.NewUsecase(jwt.NewJWTProvider(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL))
	token, err := svc.IssueToken(context.Background(), auth.Claims{
		UserID: userID,
		Role:   auth.Role(strings.ToUpper(role)),
	})
	if err != nil {
		log.Fatalw("cannot issue token", "error", err, "user_id", userID, "role", role)
	}

	log.Debugw("token issued", "user_id", userID, "role", role, "ttl", cfg.Auth.TokenTTL)
	fmt.Println(token)
}
