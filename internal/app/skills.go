package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/config"
)

var (
	skillsLimit    int
	skillsRarity   string
	skillsTrending bool
	skillsFile     string
)

var skillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Skill usage, rarity, and growth",
	Long: `Analyze how skills show up across the activity log: how often each one is
used, how recently, how rare it is among your entries, and whether its use
is growing.

  trackrecord skills
  trackrecord skills --rarity unique
  trackrecord skills --trending --json`,
	RunE: runSkills,
}

func init() {
	skillsCmd.Flags().IntVar(&skillsLimit, "limit", 0, "Show at most N skills (0 = all)")
	skillsCmd.Flags().StringVar(&skillsRarity, "rarity", "", "Only skills of this rarity (unique, rare, common)")
	skillsCmd.Flags().BoolVar(&skillsTrending, "trending", false, "Only trending skills")
	skillsCmd.Flags().StringVar(&skillsFile, "file", "", "Analyze a JSON export instead of the database")
	rootCmd.AddCommand(skillsCmd)
}

func runSkills(cmd *cobra.Command, args []string) error {
	switch skillsRarity {
	case "", analyzer.RarityUnique, analyzer.RarityRare, analyzer.RarityCommon:
	default:
		return fmt.Errorf("unknown rarity %q, want unique, rare, or common", skillsRarity)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entries, err := loadEntries(cfg, skillsFile)
	if err != nil {
		return err
	}

	skills := analyzer.AnalyzeSkills(entries, time.Now(), cfg.Analysis.TrendingSkills)

	if skillsRarity != "" {
		var kept []analyzer.SkillInsight
		for _, s := range skills {
			if s.Rarity == skillsRarity {
				kept = append(kept, s)
			}
		}
		skills = kept
	}
	if skillsTrending {
		var kept []analyzer.SkillInsight
		for _, s := range skills {
			if s.Trending {
				kept = append(kept, s)
			}
		}
		skills = kept
	}
	if skillsLimit > 0 && len(skills) > skillsLimit {
		skills = skills[:skillsLimit]
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(skills)
	}

	renderSkillsTable(skills)
	return nil
}
