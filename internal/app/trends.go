package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/config"
)

var (
	trendsMonths int
	trendsFile   string
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Monthly activity trends",
	Long: `Bucket the activity log by calendar month, newest first, and grade each
month's momentum from its entry count and documented impact.

  trackrecord trends
  trackrecord trends --months 6`,
	RunE: runTrends,
}

func init() {
	trendsCmd.Flags().IntVar(&trendsMonths, "months", 0, "Show at most N months (0 = all)")
	trendsCmd.Flags().StringVar(&trendsFile, "file", "", "Analyze a JSON export instead of the database")
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entries, err := loadEntries(cfg, trendsFile)
	if err != nil {
		return err
	}

	trends := analyzer.AnalyzeTrends(entries)
	if trendsMonths > 0 && len(trends) > trendsMonths {
		trends = trends[:trendsMonths]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(trends)
	}

	renderTrendsTable(trends)
	return nil
}
