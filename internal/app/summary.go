package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/config"
	"github.com/blackwell-systems/trackrecord/internal/insights"
	"github.com/blackwell-systems/trackrecord/internal/output"
)

var summaryFile string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "At-a-glance career dashboard",
	Long: `Print the compact dashboard: top skills, recent wins, current pace, and
the next actions worth taking.

  trackrecord summary
  trackrecord summary --json`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFile, "file", "", "Analyze a JSON export instead of the database")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entries, err := loadEntries(cfg, summaryFile)
	if err != nil {
		return err
	}

	bundle := insights.BuildSimplified(entries, time.Now())

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	}

	renderSummary(bundle)
	return nil
}

func renderSummary(b insights.SimplifiedInsights) {
	fmt.Println(output.Section("Career Summary"))
	fmt.Println()

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Total entries"),
		output.StyleValue.Render(fmt.Sprintf("%d", b.TotalEntries)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("This month"),
		output.StyleValue.Render(fmt.Sprintf("%d", b.EntriesThisMonth)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Unique skills"),
		output.StyleValue.Render(fmt.Sprintf("%d", b.UniqueSkills)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Pace"),
		output.LevelStyle(b.Momentum).Render(b.Momentum))

	if len(b.TopSkills) > 0 {
		fmt.Printf(" %s %s\n",
			output.StyleLabel.Render("Top skills"),
			strings.Join(b.TopSkills, ", "))
	}
	fmt.Println()

	if len(b.RecentWins) > 0 {
		fmt.Println(output.Section("Recent Wins"))
		fmt.Println()
		for _, w := range b.RecentWins {
			fmt.Printf(" %s %s\n", output.StyleSuccess.Render("✓"), w)
		}
		fmt.Println()
	}

	if len(b.PriorityActions) > 0 {
		fmt.Println(output.Section("Priority Actions"))
		fmt.Println()
		for i, a := range b.PriorityActions {
			label := output.PriorityStyle(a.Priority).Render("[" + strings.ToUpper(a.Priority) + "]")
			fmt.Printf(" #%d %s %s\n", i+1, label, output.StyleBold.Render(a.Title))
			fmt.Printf("    %s %s\n", a.Description, output.StyleMuted.Render("("+a.EstimatedTime+")"))
			fmt.Println()
		}
	}
}
