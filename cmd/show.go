package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/ttsforge/internal/card"
	"github.com/arcanaland/ttsforge/internal/preview"
	"github.com/arcanaland/ttsforge/internal/tts"
)

var errFound = errors.New("found")

var showCmd = &cobra.Command{
	Use:   "show [set] [collector_number]",
	Short: "Display the Tabletop Simulator description of a printing",
	Long: `Show finds a printing in the catalog and prints the description Tabletop
Simulator will show for it, with the markup rendered as terminal colours.
Multi-faced cards print one block per face.

Examples:
  ttsforge show neo 123
  ttsforge show --catalog ./default-cards.json isd 51`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := card.Key{Set: strings.ToLower(args[0]), CollectorNumber: args[1]}

		path, err := catalogPath(cmd)
		if err != nil {
			return err
		}

		c, err := findCard(path, key)
		if err != nil {
			return err
		}

		displayCard(c)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("catalog", "c", "", "Catalog from your catalog library or a path to a catalog file")
}

// findCard scans the catalog for the first printing with key, ignoring
// records that do not decode
func findCard(path string, key card.Key) (card.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog: %w", err)
	}
	defer f.Close()

	var found card.Card
	err = card.Scan(f, func(c card.Card) error {
		if c.Key() == key {
			found = c
			return errFound
		}
		return nil
	}, func(error) error { return nil })
	if err != nil && !errors.Is(err, errFound) {
		return nil, err
	}
	if found == nil {
		return nil, fmt.Errorf("card not found: %s %s", key.Set, key.CollectorNumber)
	}
	return found, nil
}

// displayCard prints the card header and each rendered description block
func displayCard(c card.Card) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}

	base := c.Common()
	fmt.Println()
	fmt.Println(colorize.CyanString("Card:   ") + colorize.HiWhiteString("%s", base.Name))
	fmt.Println(colorize.CyanString("Set:    ") + colorize.HiWhiteString("%s #%s", base.Set, base.CollectorNumber))
	fmt.Println(colorize.CyanString("Layout: ") + colorize.HiWhiteString("%s", base.Layout))

	rec, err := tts.Normalize(c)
	if err != nil {
		fmt.Println(colorize.YellowString("\n%v", err))
		return
	}
	if rec.Details != nil {
		if rec.ImageURIs.Normal != "" {
			fmt.Println(colorize.CyanString("Image:  ") + rec.ImageURIs.Normal)
		}
		printBlock(rec.OracleText, width)
	}

	for i, face := range rec.CardFaces {
		fmt.Println(colorize.CyanString("\nFace %d: ", i+1) + colorize.HiWhiteString("%s", face.Name))
		if face.ImageURIs.Normal != "" {
			fmt.Println(colorize.CyanString("Image:  ") + face.ImageURIs.Normal)
		}
		printBlock(face.OracleText, width)
	}
	fmt.Println()
}

// printBlock renders a description block indented under its header
func printBlock(markup string, width int) {
	fmt.Println()
	for _, line := range preview.Wrap(preview.Render(markup), width-4) {
		fmt.Println("  " + line)
	}
}
