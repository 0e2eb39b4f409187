package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"ticketapp/internal/infrastructure/config"
	"ticketapp/internal/infrastructure/database"
	"ticketapp/internal/infrastructure/migration"
	"ticketapp/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create new migration files with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv() (*migration.GolangMigrateStrategy, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	scriptsPath, err := scriptsDir()
	if err != nil {
		return nil, err
	}

	strategy, ok := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
	if !ok {
		return nil, fmt.Errorf("unexpected migration strategy type")
	}
	return strategy, nil
}

func scriptsDir() (string, error) {
	scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
	if err != nil {
		return "", fmt.Errorf("failed to resolve migration scripts path: %w", err)
	}
	return scriptsPath, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := strategy.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration up failed: %w", err)
	}

	logger.Info("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("migration down failed: %w", err)
	}

	logger.Info("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	strategy, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	version, dirty, err := strategy.Version(database.Get())
	if err != nil {
		return fmt.Errorf("failed to read migration status: %w", err)
	}

	fmt.Printf("Current version: %d\nDirty: %v\n", version, dirty)
	return nil
}

// runCreate writes a pair of empty timestamped migration files.
func runCreate(cmd *cobra.Command, args []string) error {
	scriptsPath, err := scriptsDir()
	if err != nil {
		return err
	}

	timestamp := time.Now().UTC().Format("20060102150405")
	upFile := filepath.Join(scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downFile := filepath.Join(scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	for _, f := range []string{upFile, downFile} {
		if err := os.WriteFile(f, []byte("-- "+name+"\n"), 0o644); err != nil {
			return fmt.Errorf("failed to create migration file %s: %w", f, err)
		}
	}

	fmt.Printf("Created:\n  %s\n  %s\n", upFile, downFile)
	return nil
}
