package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/ttsforge/internal/config"
	"github.com/arcanaland/ttsforge/internal/export"
	"github.com/arcanaland/ttsforge/internal/wanted"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export wanted printings as Tabletop Simulator records",
	Long: `Export reads a catalog, keeps the playable printings named in a wanted list,
and writes them as JSON. The output is a list in catalog order, or with --map
an object keyed by collector number followed by set code.

Wanted lists may be .json ([["123", "neo"], ...]), .toml ([[card]] tables with
set and collector_number), .yaml or .txt ("set collector_number" per line).

Examples:
  ttsforge export --wanted deck.txt
  ttsforge export --catalog ./default-cards.json --wanted deck.toml --map -o deck.json
  ttsforge export --wanted deck.yaml --on-error skip --workers 8`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := catalogPath(cmd)
		if err != nil {
			return err
		}

		wantedPath, _ := cmd.Flags().GetString("wanted")
		want, err := wanted.Load(wantedPath)
		if err != nil {
			return err
		}

		opts, asMap, err := exportOptions(cmd)
		if err != nil {
			return err
		}
		opts.Wanted = want
		opts.Logger = logger.With(zap.String("catalog", path))

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("error opening catalog: %w", err)
		}
		defer f.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		res, err := export.Run(ctx, f, opts)
		if err != nil {
			return err
		}

		var out io.Writer = cmd.OutOrStdout()
		if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("error creating output file: %w", err)
			}
			defer file.Close()
			out = file
		}

		var v any = res.Records
		if asMap {
			v = res.Keyed()
		}
		if err := writeJSON(out, v); err != nil {
			return err
		}

		if len(res.Skipped) > 0 {
			logger.Warn("records skipped", zap.Int("count", len(res.Skipped)))
		}
		return nil
	},
}

// exportOptions merges the command flags over the config file
func exportOptions(cmd *cobra.Command) (export.Options, bool, error) {
	c := *cfg
	if cmd.Flags().Changed("map") {
		if asMap, _ := cmd.Flags().GetBool("map"); asMap {
			c.Output = config.OutputMap
		} else {
			c.Output = config.OutputList
		}
	}
	if cmd.Flags().Changed("on-error") {
		c.OnError, _ = cmd.Flags().GetString("on-error")
	}
	if cmd.Flags().Changed("workers") {
		c.Workers, _ = cmd.Flags().GetInt("workers")
	}
	if err := c.Validate(); err != nil {
		return export.Options{}, false, err
	}

	opts := export.Options{
		SkipInvalid: c.OnError == config.OnErrorSkip,
		Workers:     c.Workers,
	}
	return opts, c.Output == config.OutputMap, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("catalog", "c", "", "Catalog from your catalog library or a path to a catalog file")
	exportCmd.Flags().StringP("wanted", "w", "", "Wanted list file (.json, .toml, .yaml, .txt)")
	exportCmd.Flags().StringP("out", "o", "", "Write JSON here instead of stdout")
	exportCmd.Flags().Bool("map", false, "Write an object keyed by collector number and set")
	exportCmd.Flags().String("on-error", "", "What to do with invalid catalog records: abort or skip")
	exportCmd.Flags().Int("workers", 0, "Parallel normalization workers")
	_ = exportCmd.MarkFlagRequired("wanted")
}
