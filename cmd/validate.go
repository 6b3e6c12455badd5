package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/ttsforge/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [catalog]",
	Short: "Validate a catalog file",
	Long: `Validate decodes every record in a catalog and reports the ones that cannot
be exported: unknown layouts, missing required fields and wrong face counts.
Duplicate printings and records that will export with gaps are reported as
warnings.

With no argument the default catalog from your config is checked.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			_ = cmd.Flags().Set("catalog", args[0])
		}
		path, err := catalogPath(cmd)
		if err != nil {
			return err
		}

		// Create validator and run validation
		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Warnings) > 0 {
			colorize.Yellow("Warnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
			fmt.Println()
		}

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Catalog '%s' is valid: %d records decoded.\n", path, results.Records)
			return nil
		}

		fmt.Printf("❌ Catalog '%s' has %d invalid records (%d decoded):\n", path, len(results.Errors), results.Records)
		for i, err := range results.Errors {
			fmt.Printf("%d. %s\n", i+1, colorize.RedString(err))
		}
		return fmt.Errorf("validation failed")
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringP("catalog", "c", "", "Catalog from your catalog library or a path to a catalog file")
	_ = validateCmd.Flags().MarkHidden("catalog")
}
