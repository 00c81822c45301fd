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
	achievementsLimit int
	achievementsTier  string
	achievementsFile  string
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Score documented achievements",
	Long: `Score every entry with a documented impact, best first. Scores favor
impact keyword matches and quantifiable results: numbers, percentages,
and timeframes.

  trackrecord achievements
  trackrecord achievements --tier high
  trackrecord achievements --limit 5 --json`,
	RunE: runAchievements,
}

func init() {
	achievementsCmd.Flags().IntVar(&achievementsLimit, "limit", 0, "Show at most N achievements (0 = all)")
	achievementsCmd.Flags().StringVar(&achievementsTier, "tier", "", "Only achievements of this tier (high, medium, low)")
	achievementsCmd.Flags().StringVar(&achievementsFile, "file", "", "Analyze a JSON export instead of the database")
	rootCmd.AddCommand(achievementsCmd)
}

func runAchievements(cmd *cobra.Command, args []string) error {
	switch achievementsTier {
	case "", analyzer.TierHigh, analyzer.TierMedium, analyzer.TierLow:
	default:
		return fmt.Errorf("unknown tier %q, want high, medium, or low", achievementsTier)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entries, err := loadEntries(cfg, achievementsFile)
	if err != nil {
		return err
	}

	achievements := analyzer.ScoreAchievements(entries, cfg.Analysis.ImpactKeywords)

	if achievementsTier != "" {
		var kept []analyzer.AchievementInsight
		for _, a := range achievements {
			if a.Tier == achievementsTier {
				kept = append(kept, a)
			}
		}
		achievements = kept
	}
	if achievementsLimit > 0 && len(achievements) > achievementsLimit {
		achievements = achievements[:achievementsLimit]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(achievements)
	}

	renderAchievements(achievements)
	return nil
}
