// Command migrate runs schema operations for the backend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"fitlog/internal/config"
	"fitlog/internal/database"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func usage() error {
	return fmt.Errorf("usage: go run ./cmd/migrate/main.go <up|status>")
}

func run() error {
	flag.Parse()
	if flag.NArg() < 1 {
		return usage()
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cmd := strings.ToLower(strings.TrimSpace(flag.Arg(0)))
	switch cmd {
	case "up":
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Println("schema is up to date")
	case "status":
		statuses, err := database.Status(ctx, db)
		if err != nil {
			return fmt.Errorf("schema status failed: %w", err)
		}
		pending := 0
		for _, s := range statuses {
			switch {
			case s.UpToDate():
				log.Printf("ok:      %s", s.Table)
			case !s.Exists:
				pending++
				log.Printf("missing: %s", s.Table)
			default:
				pending++
				log.Printf("pending: %s (columns: %s)", s.Table, strings.Join(s.MissingColumns, ", "))
			}
		}
		log.Printf("driver=%s env=%s tables=%d pending=%d", cfg.DBDriver, cfg.Env, len(statuses), pending)
	default:
		return usage()
	}

	return nil
}
