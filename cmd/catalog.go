package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/ttsforge/internal/card"
	"github.com/arcanaland/ttsforge/internal/config"
)

// catalogCmd represents the catalog command group
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage catalogs in your catalog library",
	Long:  `Commands for managing Scryfall bulk catalogs in your catalog library.`,
}

// catalogListCmd represents the catalog ls command
var catalogListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available catalogs in your catalog library",
	Run: func(cmd *cobra.Command, args []string) {
		libraryPath := config.GetCatalogLibraryPath()

		// Check if catalog library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Catalog library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'ttsforge catalog init' to create it.")
			return
		}

		libraryPath, err := filepath.EvalSymlinks(libraryPath)
		if err != nil {
			fmt.Printf("Error resolving symbolic link: %v\n", err)
			return
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			fmt.Printf("Error reading catalog library: %v\n", err)
			return
		}

		found := false
		for _, entry := range entries {
			if filepath.Ext(entry.Name()) != ".json" {
				continue
			}

			// Resolve the symbolic link or regular entry
			fileInfo, err := os.Stat(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				fmt.Printf("Error resolving entry %s: %v\n", entry.Name(), err)
				continue
			}
			if fileInfo.IsDir() {
				continue
			}

			found = true
			size := fmt.Sprintf("%.1f MB", float64(fileInfo.Size())/(1<<20))
			if entry.Name() == cfg.DefaultCatalog {
				fmt.Printf("* %s (%s) [DEFAULT]\n", entry.Name(), size)
			} else {
				fmt.Printf("  %s (%s)\n", entry.Name(), size)
			}
		}

		if !found {
			fmt.Println("No catalogs found in your catalog library.")
			fmt.Println("You can add Scryfall bulk data files by copying them to:", libraryPath)
		}
	},
}

// catalogSetDefaultCmd represents the catalog set-default command
var catalogSetDefaultCmd = &cobra.Command{
	Use:   "set-default [catalog_name]",
	Short: "Set the default catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Check if the catalog exists
		path, err := config.GetCatalogPath(name)
		if err != nil {
			return err
		}

		// Make sure it reads as a catalog
		if err := checkCatalog(path); err != nil {
			return fmt.Errorf("not a valid catalog: %w", err)
		}

		if err := config.SetDefaultCatalog(name); err != nil {
			return fmt.Errorf("error setting default catalog: %w", err)
		}

		fmt.Printf("Default catalog set to: %s\n", name)
		return nil
	},
}

// catalogInitCmd represents the catalog init command
var catalogInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the catalog library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetCatalogLibraryPath()

		// Create the catalog library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating catalog library: %w", err)
		}

		fmt.Println("Catalog library initialized at:", libraryPath)
		fmt.Println("You can now add Scryfall bulk data files to this directory.")
		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

// checkCatalog reads up to the first decodable record of a catalog
func checkCatalog(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	err = card.Scan(f, func(card.Card) error { return errFound }, func(error) error { return nil })
	if err != nil && !errors.Is(err, errFound) {
		return err
	}
	return nil
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSetDefaultCmd)
	catalogCmd.AddCommand(catalogInitCmd)
}
