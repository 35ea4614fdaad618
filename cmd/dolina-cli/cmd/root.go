package cmd

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dolinaroz/landing/internal/config"
	"github.com/dolinaroz/landing/internal/logging"
)

// cfg is loaded before every command that needs it.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "dolina-cli",
	Short: "Dolina Roz landing page tool",
	Long: `dolina-cli works with the Dolina Roz landing page outside of the web server.

Available commands:
  export     Write the landing page as a static site
  submit     Send a single lead through the configured relay
  version    Print the version number

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	c, err := config.Load()
	if err != nil {
		return err
	}
	cfg = c
	slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel))
	return nil
}
