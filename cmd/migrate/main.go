// Package main is the migration tool for the submission ledger database.
// It applies the embedded goose migrations; the API server never alters
// the schema itself.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/comdominio/dashboard/migrations"
)

var databaseURL string

var rootCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the submission ledger schema",
	Long: `Apply or roll back the embedded SQL migrations.

The connection string is read from --database-url or DATABASE_URL.`,
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
		results, err := p.Up(ctx)
		for _, r := range results {
			slog.Info("migration applied", "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
		}
		return err
	}),
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
		r, err := p.Down(ctx)
		if r != nil {
			slog.Info("migration rolled back", "version", r.Source.Version, "path", r.Source.Path, "duration", r.Duration)
		}
		return err
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Roll back every migration",
	RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
		results, err := p.DownTo(ctx, 0)
		for _, r := range results {
			slog.Info("migration rolled back", "version", r.Source.Version, "path", r.Source.Path)
		}
		return err
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which migrations are applied",
	RunE: withProvider(func(ctx context.Context, p *goose.Provider) error {
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			fmt.Printf("%-6d %-40s %s\n", s.Source.Version, s.Source.Path, s.State)
		}
		return nil
	}),
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")
	rootCmd.AddCommand(upCmd, downCmd, resetCmd, statusCmd)
}

// withProvider opens the database, builds a goose provider over the
// embedded migrations and runs fn with it.
func withProvider(fn func(context.Context, *goose.Provider) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if databaseURL == "" {
			return errors.New("DATABASE_URL or --database-url is required")
		}
		db, err := sql.Open("pgx", databaseURL)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer db.Close()

		provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
		if err != nil {
			return fmt.Errorf("create goose provider: %w", err)
		}
		return fn(cmd.Context(), provider)
	}
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}
