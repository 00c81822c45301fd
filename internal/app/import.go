package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/career"
	"github.com/blackwell-systems/trackrecord/internal/config"
	"github.com/blackwell-systems/trackrecord/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <path>...",
	Short: "Import entries from JSON exports",
	Long: `Import entries from JSON files or directories of JSON files. Each file may
hold a single entry object or an array of entries. Entries are upserted by
ID, so re-importing the same export is safe.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	var imported, skipped int
	for _, path := range args {
		entries, err := loadPath(path)
		if err != nil {
			return err
		}
		for _, e := range entries {
			// Exports from other tools may not carry IDs.
			if e.ID == "" {
				e.ID = uuid.NewString()
			}
			if err := e.Validate(); err != nil {
				skipped++
				if flagVerbose {
					fmt.Fprintf(os.Stderr, "skipping entry: %v\n", err)
				}
				continue
			}
			if err := db.SaveEntry(e); err != nil {
				return fmt.Errorf("saving entry %s: %w", e.ID, err)
			}
			imported++
		}
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]int{"imported": imported, "skipped": skipped})
	}

	fmt.Printf("Imported %d entries", imported)
	if skipped > 0 {
		fmt.Printf(", skipped %d", skipped)
	}
	fmt.Println()
	return nil
}

// loadPath reads entries from a JSON file, or from every JSON file in a
// directory.
func loadPath(path string) ([]career.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if info.IsDir() {
		return career.LoadDir(path)
	}
	return career.LoadFile(path)
}
