package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/career"
	"github.com/blackwell-systems/trackrecord/internal/config"
	"github.com/blackwell-systems/trackrecord/internal/output"
	"github.com/blackwell-systems/trackrecord/internal/store"
)

var (
	listCategory string
	listProject  string
	listSkill    string
	listDays     int
	listLimit    int
)

var listCmd = &cobra.Command{
	Use:   "list [id-prefix]",
	Short: "Browse and inspect logged entries",
	Long: `List entries newest first, with optional filters. Pass an entry ID (or a
unique prefix of one) to inspect a single entry in detail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category")
	listCmd.Flags().StringVar(&listProject, "project", "", "Filter by project")
	listCmd.Flags().StringVar(&listSkill, "skill", "", "Filter to entries exercising a skill")
	listCmd.Flags().IntVar(&listDays, "days", 0, "Only entries from the last N days")
	listCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum entries to show (0 = all)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	// Inspect mode: a positional argument is an entry ID prefix.
	if len(args) == 1 {
		return inspectEntry(db, args[0])
	}

	entries, err := db.ListEntries(store.Filter{
		Category: listCategory,
		Project:  listProject,
		Days:     listDays,
	})
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}

	if listSkill != "" {
		entries = filterBySkill(entries, listSkill)
	}

	// Newest first for display.
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	if listLimit > 0 && len(entries) > listLimit {
		entries = entries[:listLimit]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Println("No entries found. Use 'trackrecord add' to log your first activity.")
		return nil
	}

	tbl := output.NewTable("ID", "Date", "Category", "Description", "Impact")
	for _, e := range entries {
		impact := output.StyleMuted.Render("·")
		if e.HasImpact() {
			impact = output.StyleSuccess.Render("✓")
		}
		tbl.AddRow(truncateID(e.ID), displayDate(e.Date), e.Category, clip(e.Description, 48), impact)
	}
	tbl.Print()
	fmt.Println(output.StyleMuted.Render(fmt.Sprintf("%d entries", len(entries))))
	return nil
}

// inspectEntry shows the detail view for a single entry resolved by ID prefix.
func inspectEntry(db *store.DB, prefix string) error {
	e, err := db.FindEntryByPrefix(prefix)
	if err != nil {
		return err
	}
	if e == nil {
		return fmt.Errorf("no entry matches %q", prefix)
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	}

	fmt.Println(output.Section("Entry " + truncateID(e.ID)))
	fmt.Println()
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Printf(" %s %s\n", output.StyleLabel.Render(label), value)
	}
	row("ID", e.ID)
	row("Date", displayDate(e.Date))
	row("Category", e.Category)
	row("Project", e.Project)
	row("Description", e.Description)
	row("Impact", e.Impact)
	row("Skills", strings.Join(e.Skills, ", "))
	row("Tags", strings.Join(e.Tags, ", "))
	return nil
}

// filterBySkill keeps entries whose skill list matches the given skill, using
// the same containment matching the analysis passes use.
func filterBySkill(entries []career.Entry, skill string) []career.Entry {
	var filtered []career.Entry
	for _, e := range entries {
		for _, s := range e.Skills {
			if analyzer.SkillMatches(s, skill) {
				filtered = append(filtered, e)
				break
			}
		}
	}
	return filtered
}

// displayDate normalizes an entry date for display.
func displayDate(raw string) string {
	d := career.ParseDate(raw)
	if d.IsZero() {
		return raw
	}
	return d.Format("2006-01-02")
}

// clip shortens a string to at most n runes for table display.
func clip(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

// truncateID shortens a UUID for display.
func truncateID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
