package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/staffdesk/staffdesk-go/internal/config"
	"github.com/staffdesk/staffdesk-go/internal/handler/console"
	"github.com/staffdesk/staffdesk-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-go/internal/pkg/logging"
	"github.com/staffdesk/staffdesk-go/internal/repository/sqlstore"
	"github.com/staffdesk/staffdesk-go/internal/service/staff"
)

var (
	version = "dev"

	envFile     string
	forceEngine string
	noSeed      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "staffdesk",
		Short: "Staffdesk - position and employee management",
		Long: `Staffdesk manages job positions and employees in a relational store,
with automatic fallback from PostgreSQL to an embedded SQLite file when
the server is unreachable.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Path to an env file (defaults to ./.env when present)")
	rootCmd.Flags().StringVar(&forceEngine, "engine", "", "Force a specific engine (postgresql or sqlite); disables fallback")
	rootCmd.Flags().BoolVar(&noSeed, "no-seed", false, "Skip sample data seeding on an empty store")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("staffdesk %s\n", version)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	logging.Apply(cfg.App.LogLevel)

	primary := database.EngineConfig{Engine: database.EnginePostgres, DSN: cfg.PostgresURL()}
	secondary := database.EngineConfig{Engine: database.EngineSQLite, DSN: cfg.SQLiteDSN()}
	mgr := database.NewManager(primary, secondary)

	switch forceEngine {
	case "":
		if err := mgr.Connect(); err != nil {
			log.Error().Err(err).Msg("No database engine available")
			return err
		}
	case string(database.EnginePostgres):
		if err := mgr.ForceEngine(primary); err != nil {
			return err
		}
	case string(database.EngineSQLite):
		if err := mgr.ForceEngine(secondary); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown engine %q", forceEngine)
	}
	defer mgr.Close()

	positionRepo := sqlstore.NewPositionRepository(mgr)
	employeeRepo := sqlstore.NewEmployeeRepository(mgr)
	svc := staff.NewStaffService(mgr, positionRepo, employeeRepo)
	defer svc.Shutdown()

	ctx := context.Background()

	if !noSeed {
		if err := svc.InitializeSampleData(ctx); err != nil {
			log.Error().Err(err).Msg("Sample data initialization failed")
		}
	}

	menu := console.NewMenu(svc, os.Stdin, os.Stdout)
	return menu.Run(ctx)
}
