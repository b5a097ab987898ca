package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/NullVsVoid/Spell-Checker-Final/internal/config"
	"github.com/NullVsVoid/Spell-Checker-Final/internal/customdict"
	"github.com/NullVsVoid/Spell-Checker-Final/internal/server"
	"github.com/NullVsVoid/Spell-Checker-Final/internal/spell"
	"github.com/NullVsVoid/Spell-Checker-Final/internal/wordlist"
)

func main() {
	cfg := config.FromEnv()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx := context.Background()
	dict := spell.NewDictionary()

	if cfg.WordlistPath != "" {
		words, err := wordlist.Load(cfg.WordlistPath)
		if err != nil {
			log.Fatalf("load word list: %v", err)
		}
		dict.AddAll(words)
	}

	if cfg.PostgresDSN != "" {
		db, err := wordlist.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		words, err := wordlist.NewPostgresSource(db, "").Words(ctx)
		db.Close()
		if err != nil {
			log.Fatalf("load postgres words: %v", err)
		}
		dict.AddAll(words)
	}

	var store *customdict.Store
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store = customdict.New(client, "")
		words, err := store.All(ctx)
		if err != nil {
			log.Fatalf("load custom words: %v", err)
		}
		dict.AddAll(words)
	}

	if dict.Len() == 0 {
		logger.Warn("dictionary is empty, every checked word will be flagged")
	}

	checker := spell.NewChecker(dict, append(cfg.CheckerOptions(), spell.WithLogger(logger))...)

	srv := server.New(cfg.HTTPAddr, checker, dict, store, logger)
	logger.Info("listening", "addr", cfg.HTTPAddr, "words", dict.Len())
	if err := srv.Start(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
