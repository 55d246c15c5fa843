// Command dbtool creates the database schema and loads the zone and demo stop seeds.
//
// Usage:
//
//	dbtool [schema|seed|all]
//
// Both steps are idempotent. Connection settings come from the same DB_* variables as
// the server, read from .env when present.
package main

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"

	"logistics/cmd"
)

var (
	//go:embed schema.sql
	schemaSQL string

	//go:embed seed.sql
	seedSQL string
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	step := "all"
	if len(os.Args) > 1 {
		step = os.Args[1]
	}

	if err := run(step, logger); err != nil {
		logger.Error("dbtool failed", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(step string, logger *slog.Logger) error {
	var scripts []string
	switch step {
	case "schema":
		scripts = []string{schemaSQL}
	case "seed":
		scripts = []string{seedSQL}
	case "all":
		scripts = []string{schemaSQL, seedSQL}
	default:
		return fmt.Errorf("unknown step %q, want schema, seed or all", step)
	}

	config, err := cmd.LoadConfig(".env")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("verify connection to %s:%s: %w", config.DBHost, config.DBPort, err)
	}

	for _, script := range scripts {
		if err := exec(ctx, db, script); err != nil {
			return err
		}
	}

	logger.Info("database ready", slog.String("step", step), slog.String("database", config.DBName))
	return nil
}

// exec runs a multi-statement script in one transaction.
func exec(ctx context.Context, db *sql.DB, script string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	// lib/pq sends scripts without parameters through the simple query protocol,
	// which accepts several statements at once.
	if _, err := tx.ExecContext(ctx, script); err != nil {
		return fmt.Errorf("run script: %w", err)
	}
	return tx.Commit()
}
