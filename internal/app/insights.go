package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/career"
	"github.com/blackwell-systems/trackrecord/internal/config"
	"github.com/blackwell-systems/trackrecord/internal/insights"
	"github.com/blackwell-systems/trackrecord/internal/output"
	"github.com/blackwell-systems/trackrecord/internal/store"
	"github.com/blackwell-systems/trackrecord/internal/suggest"
)

var insightsFile string

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Full career analysis report",
	Long: `Run every analysis pass over the activity log and print the full report:
top skills, scored achievements, monthly trends, quick wins, and recent
highlights.

  trackrecord insights
  trackrecord insights --json
  trackrecord insights --file export.json`,
	RunE: runInsights,
}

func init() {
	insightsCmd.Flags().StringVar(&insightsFile, "file", "", "Analyze a JSON export instead of the database")
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entries, err := loadEntries(cfg, insightsFile)
	if err != nil {
		return err
	}

	bundle := insights.Build(entries, time.Now(), analysisOptions(cfg))

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(bundle)
	}

	renderOverview(bundle, len(entries))
	renderSkillsTable(bundle.TopSkills)
	renderAchievements(bundle.TopAchievements)
	renderTrendsTable(bundle.Trends)
	renderQuickWins(bundle.QuickWins)
	renderHighlights(bundle.RecentHighlights)
	return nil
}

// loadEntries reads the full activity log from the database, or from a JSON
// export when file is set.
func loadEntries(cfg *config.Config, file string) ([]career.Entry, error) {
	if file != "" {
		return loadPath(file)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return db.ListEntries(store.Filter{})
}

// analysisOptions carries the configured keyword lists into a build.
func analysisOptions(cfg *config.Config) insights.Options {
	return insights.Options{
		TrendingSkills: cfg.Analysis.TrendingSkills,
		ImpactKeywords: cfg.Analysis.ImpactKeywords,
		InDemandSkills: cfg.Analysis.InDemandSkills,
	}
}

func renderOverview(b insights.CareerInsights, total int) {
	fmt.Println(output.Section("Career Overview"))
	fmt.Println()

	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Entries analyzed"),
		output.StyleValue.Render(fmt.Sprintf("%d", total)))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Overall momentum"),
		output.LevelStyle(b.OverallMomentum).Render(b.OverallMomentum))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Skill diversity"),
		output.ScoreBar(float64(b.SkillDiversityScore), 20))
	fmt.Printf(" %s %s\n",
		output.StyleLabel.Render("Impact consistency"),
		output.ScoreBar(b.ImpactConsistency, 20))
	fmt.Println()
}

func renderSkillsTable(skills []analyzer.SkillInsight) {
	fmt.Println(output.Section("Top Skills"))
	fmt.Println()

	if len(skills) == 0 {
		fmt.Println(output.StyleMuted.Render(" No skills recorded yet. Tag entries with --skills to build this view."))
		fmt.Println()
		return
	}

	tbl := output.NewTable("Skill", "Uses", "Recency", "Rarity", "Growth", "Hot")
	for _, s := range skills {
		hot := ""
		if s.Trending {
			hot = output.StyleWarning.Render("★")
		}
		tbl.AddRow(
			s.Skill,
			fmt.Sprintf("%d", s.Frequency),
			fmt.Sprintf("%d", s.RecencyScore),
			styleRarity(s.Rarity),
			output.LevelStyle(s.GrowthTrend).Render(s.GrowthTrend),
			hot,
		)
	}
	tbl.Print()
	fmt.Println()
}

func renderAchievements(achievements []analyzer.AchievementInsight) {
	fmt.Println(output.Section("Top Achievements"))
	fmt.Println()

	if len(achievements) == 0 {
		fmt.Println(output.StyleMuted.Render(" No documented achievements yet. Add --impact to your entries."))
		fmt.Println()
		return
	}

	for i, a := range achievements {
		tier := output.LevelStyle(a.Tier).Render("[" + strings.ToUpper(a.Tier) + "]")
		fmt.Printf(" #%d %s %s\n", i+1, tier, output.StyleBold.Render(clip(a.Entry.Description, 60)))
		fmt.Printf("    %s\n", output.ScoreBar(float64(a.Score), 20))

		detail := displayDate(a.Entry.Date)
		if figures := summarizeMetrics(a.Metrics); figures != "" {
			detail += "  ·  " + figures
		}
		fmt.Printf("    %s\n", output.StyleMuted.Render(detail))
		fmt.Println()
	}
}

func renderTrendsTable(trends []analyzer.CareerTrend) {
	fmt.Println(output.Section("Monthly Trends"))
	fmt.Println()

	if len(trends) == 0 {
		fmt.Println(output.StyleMuted.Render(" Not enough dated entries for a trend line."))
		fmt.Println()
		return
	}

	tbl := output.NewTable("Month", "Entries", "Impactful", "Momentum", "New Skills")
	for _, tr := range trends {
		tbl.AddRow(
			tr.Period,
			fmt.Sprintf("%d", tr.ActivityCount),
			fmt.Sprintf("%d", tr.ImpactfulEntries),
			output.LevelStyle(tr.Momentum).Render(tr.Momentum),
			joinLimited(tr.SkillsLearned, 3),
		)
	}
	tbl.Print()
	fmt.Println()
}

func renderQuickWins(wins []suggest.QuickWin) {
	if len(wins) == 0 {
		fmt.Println(output.Section("Quick Wins"))
		fmt.Println()
		fmt.Println(" No quick wins. Your log is in good shape!")
		fmt.Println()
		return
	}

	fmt.Println(output.Section("Quick Wins"))
	fmt.Println()

	for i, w := range wins {
		label := output.PriorityStyle(w.Priority).Render("[" + strings.ToUpper(w.Priority) + "]")
		fmt.Printf(" #%d %s %s\n", i+1, label, output.StyleBold.Render(w.Title))
		fmt.Printf("    %s\n", w.Description)
		if w.SuggestedAction != "" {
			fmt.Printf("    %s\n", output.StyleMuted.Render("Try: "+w.SuggestedAction))
		}
		fmt.Println()
	}
}

func renderHighlights(entries []career.Entry) {
	if len(entries) == 0 {
		return
	}

	fmt.Println(output.Section("Recent Highlights"))
	fmt.Println()

	for _, e := range entries {
		fmt.Printf(" %s  %s\n", output.StyleMuted.Render(displayDate(e.Date)), e.Description)
		fmt.Printf("             %s\n", output.StyleSuccess.Render(e.Impact))
	}
	fmt.Println()
}

// styleRarity colors a rarity tier. Scarce skills are the valuable ones, so
// unique reads as green rather than red.
func styleRarity(rarity string) string {
	switch rarity {
	case analyzer.RarityUnique:
		return output.StyleSuccess.Render(rarity)
	case analyzer.RarityRare:
		return output.StyleWarning.Render(rarity)
	default:
		return output.StyleMuted.Render(rarity)
	}
}

// summarizeMetrics joins the extracted figures into one short line.
func summarizeMetrics(m analyzer.MetricSet) string {
	var parts []string
	parts = append(parts, m.Percentages...)
	parts = append(parts, m.Timeframes...)
	parts = append(parts, m.Numbers...)
	return strings.Join(parts, ", ")
}

// joinLimited joins up to n values, noting how many were left out.
func joinLimited(vals []string, n int) string {
	if len(vals) == 0 {
		return ""
	}
	if len(vals) <= n {
		return strings.Join(vals, ", ")
	}
	return fmt.Sprintf("%s +%d", strings.Join(vals[:n], ", "), len(vals)-n)
}
