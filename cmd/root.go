package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/ttsforge/internal/config"
	"github.com/arcanaland/ttsforge/internal/logging"
)

var (
	// logLevel overrides log_level from the config file
	logLevel string

	cfg    *config.Config
	logger *zap.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "ttsforge",
	Short: "Build Tabletop Simulator card records from a Scryfall catalog",
	Long: `ttsforge reads a Scryfall bulk catalog, picks the printings in a wanted list,
and writes them as Tabletop Simulator records with formatted oracle text.

Catalogs are looked up in your catalog library (XDG_DATA_HOME/ttsforge/catalogs)
or as a relative path.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		level := cfg.LogLevel
		if logLevel != "" {
			level = logLevel
		}
		logger, err = logging.New(level, os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// catalogPath resolves the --catalog flag, falling back to the default
// catalog from the config
func catalogPath(cmd *cobra.Command) (string, error) {
	name, _ := cmd.Flags().GetString("catalog")
	if name == "" {
		name = cfg.DefaultCatalog
	}

	path, err := config.GetCatalogPath(name)
	if err != nil {
		return "", fmt.Errorf("error loading catalog: %w", err)
	}
	return path, nil
}
