package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/config"
	"github.com/blackwell-systems/trackrecord/internal/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete an entry",
	Long: `Delete an entry by ID. A unique prefix of the ID works too:

  trackrecord delete 3f2a91c8
  trackrecord delete 3f2a91c8-77d1-4a0e-9a1b-0c4d5e6f7a8b`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	id := args[0]
	deleted, err := db.DeleteEntry(id)
	if err != nil {
		return fmt.Errorf("deleting entry: %w", err)
	}
	if !deleted {
		// Not an exact ID, try it as a prefix.
		entry, err := db.FindEntryByPrefix(id)
		if err != nil {
			return err
		}
		if entry == nil {
			return fmt.Errorf("no entry matches %q", id)
		}
		id = entry.ID
		if _, err := db.DeleteEntry(id); err != nil {
			return fmt.Errorf("deleting entry: %w", err)
		}
	}

	fmt.Printf("Deleted entry %s\n", truncateID(id))
	return nil
}
