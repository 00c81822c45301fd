package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/career"
	"github.com/blackwell-systems/trackrecord/internal/config"
	"github.com/blackwell-systems/trackrecord/internal/output"
	"github.com/blackwell-systems/trackrecord/internal/store"
)

var (
	addDate     string
	addImpact   string
	addSkills   []string
	addTags     []string
	addProject  string
	addCategory string
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Log a career activity",
	Long: `Add an entry to the career log. The description is required; everything
else is optional, but the analysis rewards detail, especially --impact.

Examples:
  trackrecord add "Migrated billing to the new API" --skills Go,SQL --category project
  trackrecord add "Led the Q3 platform review" --category leadership \
    --impact "Aligned three teams on one storage roadmap"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "Entry date, YYYY-MM-DD (default: today)")
	addCmd.Flags().StringVar(&addImpact, "impact", "", "Measurable outcome of the activity")
	addCmd.Flags().StringSliceVar(&addSkills, "skills", nil, "Skills exercised (can specify multiple)")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Freeform tags (can specify multiple)")
	addCmd.Flags().StringVar(&addProject, "project", "", "Project the activity belongs to")
	addCmd.Flags().StringVar(&addCategory, "category", career.CategoryProject, "Entry category: achievement, skill, project, leadership, learning, networking")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	date := addDate
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if career.ParseDate(date).IsZero() {
		return fmt.Errorf("unrecognized date %q, want YYYY-MM-DD", date)
	}

	entry := career.Entry{
		ID:          uuid.NewString(),
		Date:        date,
		Description: strings.Join(args, " "),
		Impact:      addImpact,
		Skills:      addSkills,
		Tags:        addTags,
		Project:     addProject,
		Category:    addCategory,
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.SaveEntry(entry); err != nil {
		return fmt.Errorf("saving entry: %w", err)
	}

	fmt.Printf("Added entry %s (%s, %s)\n", truncateID(entry.ID), entry.Category, entry.Date)
	if entry.Impact == "" {
		fmt.Println(output.StyleMuted.Render("Tip: record the outcome with --impact to make this entry count."))
	}
	return nil
}
