package cli

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/fittrack/internal/app"
	"github.com/templui/fittrack/internal/config"
	"github.com/templui/fittrack/internal/db"
)

// NewRootCmd runs the interactive shell by default. The shell provisions the
// schema before its first prompt; the migrate subtree does not.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fittrack",
		Short:         cfg.AppName + " - log activities, plan workouts, share progress",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer closeApp(a)

			return NewShell(a, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}

	rootCmd.AddCommand(MigrateCmd(cfg))

	return rootCmd
}

func MigrateCmd(cfg *config.Config) *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cfg, func(database *sqlx.DB) error {
				err := db.RunMigrations(database.DB, cfg.DBDriver)
				if err != nil {
					return err
				}
				return printVersion(cmd, cfg, database)
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration (DESTROYS DATA)",
		Long: "Roll back the most recent migration.\n\n" +
			"WARNING: rolling back the initial migration drops every table, including\n" +
			"all users, activities, goals, workout plans and posts. There is no\n" +
			"confirmation prompt. Back up the store first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cfg, func(database *sqlx.DB) error {
				err := db.MigrateDown(database.DB, cfg.DBDriver)
				if err != nil {
					return err
				}
				return printVersion(cmd, cfg, database)
			})
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cfg, func(database *sqlx.DB) error {
				return printVersion(cmd, cfg, database)
			})
		},
	})

	return migrateCmd
}

// withStore opens the store without migrating it.
func withStore(cfg *config.Config, fn func(database *sqlx.DB) error) error {
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		closeErr := db.Close(database)
		if closeErr != nil {
			slog.Error("failed to close database", "error", closeErr)
		}
	}()

	return fn(database)
}

func closeApp(a *app.App) {
	closeErr := a.Close()
	if closeErr != nil {
		slog.Error("failed to close app", "error", closeErr)
	}
}

func printVersion(cmd *cobra.Command, cfg *config.Config, database *sqlx.DB) error {
	version, err := db.Version(database.DB, cfg.DBDriver)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
	return nil
}
