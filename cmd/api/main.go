package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/questa-app/questa-backend/internal/config"
	"github.com/questa-app/questa-backend/internal/db"
	"github.com/questa-app/questa-backend/internal/model"
	"github.com/questa-app/questa-backend/internal/server"
	"github.com/questa-app/questa-backend/internal/token"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(
		&model.User{},
		&model.Activity{},
		&model.Reward{},
		&model.ActivityCompletion{},
		&model.RewardRedemption{},
	); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	tokens, err := token.NewManager(
		cfg.JWTSecret,
		time.Duration(cfg.AccessTokenTTLMin)*time.Minute,
		time.Duration(cfg.RefreshTokenTTLHours)*time.Hour,
	)
	if err != nil {
		log.Fatalf("token manager error: %v", err)
	}

	srv := server.New(conn, cfg, tokens)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
