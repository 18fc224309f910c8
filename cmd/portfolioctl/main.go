package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/johndn/portfolio/internal/config"
	"github.com/johndn/portfolio/internal/db"
	"github.com/johndn/portfolio/internal/logging"
	"github.com/johndn/portfolio/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var logger *logging.Logger

func initLogger() {
	logConfig := &logging.LogConfig{
		Level: os.Getenv("LOG_LEVEL"),
	}

	if err := logging.InitLogger(logConfig); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger = logging.GetGlobalLogger()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "portfolioctl",
		Short: "portfolioctl - portfolio site maintenance tool",
		Long: `portfolioctl manages the portfolio API's database and content:
create the schema, read contact messages, check the content file and
generate slugs.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(),
		newMessagesCmd(),
		newContentCmd(),
		newSlugCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
			s.Suffix = " Migrating database..."
			s.Writer = cmd.ErrOrStderr()
			s.Start()
			database, err := db.Initialize(cmd.Context(), cfg.DatabaseDriver, cfg.DatabaseURL)
			s.Stop()
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer database.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "✓ Schema is up to date (%s)\n", database.Dialect())
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetBuildInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "portfolioctl %s\n", version.Info())
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
		},
	}
}

func main() {
	initLogger()
	defer logger.Close()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
