package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/career"
	"github.com/blackwell-systems/trackrecord/internal/config"
	"github.com/blackwell-systems/trackrecord/internal/suggest"
)

var suggestFile string

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Quick wins for the activity log",
	Long: `Run the quick-win rules over the activity log and suggest small, concrete
improvements: entries missing impact, rare skills worth showcasing, and
in-demand skills worth picking up.

  trackrecord suggest
  trackrecord suggest --json`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&suggestFile, "file", "", "Analyze a JSON export instead of the database")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entries, err := loadEntries(cfg, suggestFile)
	if err != nil {
		return err
	}

	wins := buildQuickWins(entries, time.Now(), cfg)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(wins)
	}

	renderQuickWins(wins)
	return nil
}

// buildQuickWins runs the analysis passes the rules depend on and hands the
// results to the engine.
func buildQuickWins(entries []career.Entry, now time.Time, cfg *config.Config) []suggest.QuickWin {
	return suggest.NewEngine().Run(&suggest.AnalysisContext{
		Entries:        entries,
		Skills:         analyzer.AnalyzeSkills(entries, now, cfg.Analysis.TrendingSkills),
		Achievements:   analyzer.ScoreAchievements(entries, cfg.Analysis.ImpactKeywords),
		InDemandSkills: cfg.Analysis.InDemandSkills,
	})
}
