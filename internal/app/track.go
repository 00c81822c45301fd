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
	"github.com/blackwell-systems/trackrecord/internal/output"
	"github.com/blackwell-systems/trackrecord/internal/store"
	"github.com/blackwell-systems/trackrecord/internal/suggest"
)

var (
	trackCompare int
	trackHistory int
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Snapshot and compare metrics over time",
	Long: `Run the analysis passes, store a snapshot of the headline metrics, and
compare against a previous snapshot to show what moved.

  trackrecord track
  trackrecord track --compare 3
  trackrecord track --history 5`,
	RunE: runTrack,
}

func init() {
	trackCmd.Flags().IntVar(&trackCompare, "compare", 1, "Compare against Nth previous snapshot (1 = most recent)")
	trackCmd.Flags().IntVar(&trackHistory, "history", 0, "Show metric trends across N most recent snapshots")
	rootCmd.AddCommand(trackCmd)
}

func runTrack(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() { _ = db.Close() }()

	entries, err := db.ListEntries(store.Filter{})
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}

	now := time.Now()
	skills := analyzer.AnalyzeSkills(entries, now, cfg.Analysis.TrendingSkills)
	achievements := analyzer.ScoreAchievements(entries, cfg.Analysis.ImpactKeywords)
	trends := analyzer.AnalyzeTrends(entries)
	wins := suggest.NewEngine().Run(&suggest.AnalysisContext{
		Entries:        entries,
		Skills:         skills,
		Achievements:   achievements,
		InDemandSkills: cfg.Analysis.InDemandSkills,
	})

	snapshotID, err := db.CreateSnapshot("track", appVersion, len(entries))
	if err != nil {
		return fmt.Errorf("creating snapshot: %w", err)
	}

	for _, m := range buildSnapshotMetrics(entries, skills, achievements, trends, wins, now) {
		if err := db.InsertInsightMetric(snapshotID, m.name, m.value, m.detail); err != nil {
			return fmt.Errorf("inserting metric %s: %w", m.name, err)
		}
	}

	if trackHistory > 0 {
		if flagJSON {
			return outputHistoryJSON(db, trackHistory)
		}
		return renderHistory(db, trackHistory)
	}

	// trackCompare=1 means the immediate predecessor, which sits at offset 2
	// from the newest now that this run's snapshot is stored.
	prevSnapshot, err := db.GetSnapshotN(trackCompare + 1)
	if err != nil {
		return fmt.Errorf("loading previous snapshot: %w", err)
	}

	currentSnapshot, err := db.GetSnapshot(snapshotID)
	if err != nil {
		return fmt.Errorf("loading current snapshot: %w", err)
	}

	var diff *store.SnapshotDiff
	if prevSnapshot != nil {
		prevMetrics, err := db.GetInsightMetrics(prevSnapshot.ID)
		if err != nil {
			return fmt.Errorf("loading previous metrics: %w", err)
		}

		currMetrics, err := db.GetInsightMetrics(snapshotID)
		if err != nil {
			return fmt.Errorf("loading current metrics: %w", err)
		}

		diff = &store.SnapshotDiff{
			Previous: prevSnapshot,
			Current:  currentSnapshot,
			Deltas:   computeDeltas(prevMetrics, currMetrics),
		}
	}

	if flagJSON {
		return outputTrackJSON(currentSnapshot, diff)
	}

	renderTrackOutput(currentSnapshot, diff)
	return nil
}

// insightMetric is one snapshot metric. Metrics are held in a slice so
// insertion order, and therefore delta order, is stable run to run.
type insightMetric struct {
	name   string
	value  float64
	detail string
}

func buildSnapshotMetrics(
	entries []career.Entry,
	skills []analyzer.SkillInsight,
	achievements []analyzer.AchievementInsight,
	trends []analyzer.CareerTrend,
	wins []suggest.QuickWin,
	now time.Time,
) []insightMetric {
	cutoff := now.AddDate(0, 0, -30)
	recent := 0
	impactful := 0
	for _, e := range entries {
		if career.ParseDate(e.Date).After(cutoff) {
			recent++
		}
		if e.HasImpact() {
			impactful++
		}
	}
	consistency := 0.0
	if len(entries) > 0 {
		consistency = float64(impactful) / float64(len(entries)) * 100
	}

	topSkill := ""
	trending := 0
	for _, s := range skills {
		if s.Trending {
			trending++
		}
	}
	if len(skills) > 0 {
		top := skills[0]
		for _, s := range skills[1:] {
			if s.Frequency > top.Frequency {
				top = s
			}
		}
		topSkill = "top: " + top.Skill
	}

	highTier := 0
	totalScore := 0
	for _, a := range achievements {
		if a.Tier == analyzer.TierHigh {
			highTier++
		}
		totalScore += a.Score
	}
	avgScore := 0.0
	if len(achievements) > 0 {
		avgScore = float64(totalScore) / float64(len(achievements))
	}

	return []insightMetric{
		{"total_entries", float64(len(entries)), ""},
		{"entries_last_30d", float64(recent), ""},
		{"impact_consistency", consistency, ""},
		{"unique_skills", float64(len(skills)), topSkill},
		{"trending_skills", float64(trending), ""},
		{"achievements_scored", float64(len(achievements)), ""},
		{"achievements_high_tier", float64(highTier), ""},
		{"avg_achievement_score", avgScore, ""},
		{"active_months", float64(len(trends)), ""},
		{"quick_wins_open", float64(len(wins)), ""},
	}
}

// metricDirection maps metric names to whether higher values are better.
var metricDirection = map[string]bool{
	"total_entries":          true,
	"entries_last_30d":       true,
	"impact_consistency":     true,
	"unique_skills":          true,
	"trending_skills":        true,
	"achievements_scored":    true,
	"achievements_high_tier": true,
	"avg_achievement_score":  true,
	"active_months":          true,
	"quick_wins_open":        false, // open wins are unfinished work
}

// metricSuffix returns the unit rendered after a metric's trend arrow.
func metricSuffix(name string) string {
	if name == "impact_consistency" {
		return "%"
	}
	return ""
}

// metricPrecision returns how many decimals a metric value is shown with.
// Counts stay whole, percentages and averages keep one decimal.
func metricPrecision(name string) int {
	switch name {
	case "impact_consistency", "avg_achievement_score":
		return 1
	}
	return 0
}

// computeDeltas compares two sets of snapshot metrics, in current order.
func computeDeltas(prev, curr []store.InsightMetric) []store.MetricDelta {
	prevMap := make(map[string]float64)
	for _, m := range prev {
		prevMap[m.MetricName] = m.MetricValue
	}

	var deltas []store.MetricDelta
	for _, m := range curr {
		prevVal := prevMap[m.MetricName]
		delta := m.MetricValue - prevVal

		direction := "unchanged"
		if delta != 0 {
			higherIsBetter, known := metricDirection[m.MetricName]
			if !known {
				higherIsBetter = true
			}
			isPositive := delta > 0
			if (isPositive && higherIsBetter) || (!isPositive && !higherIsBetter) {
				direction = "improved"
			} else {
				direction = "regressed"
			}
		}

		deltas = append(deltas, store.MetricDelta{
			Name:      m.MetricName,
			Previous:  prevVal,
			Current:   m.MetricValue,
			Delta:     delta,
			Direction: direction,
		})
	}

	return deltas
}

func outputTrackJSON(current *store.Snapshot, diff *store.SnapshotDiff) error {
	result := map[string]any{
		"snapshot": current,
	}
	if diff != nil {
		result["diff"] = diff
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func renderTrackOutput(current *store.Snapshot, diff *store.SnapshotDiff) {
	fmt.Println(output.Section("Career Snapshot"))
	fmt.Println()
	fmt.Printf(" Snapshot #%d taken at %s\n\n", current.ID, current.TakenAt.Format("2006-01-02 15:04:05"))

	if diff == nil {
		fmt.Println(" First snapshot recorded. Run 'trackrecord track' again later to see trends.")
		return
	}

	fmt.Printf(" Comparing against snapshot #%d (%s)\n\n",
		diff.Previous.ID, diff.Previous.TakenAt.Format("2006-01-02 15:04:05"))

	tbl := output.NewTable("Metric", "Previous", "Current", "Delta", "Trend")

	for _, d := range diff.Deltas {
		higherIsBetter, known := metricDirection[d.Name]
		if !known {
			higherIsBetter = true
		}
		prec := metricPrecision(d.Name)

		tbl.AddRow(
			d.Name,
			fmt.Sprintf("%.*f", prec, d.Previous),
			fmt.Sprintf("%.*f", prec, d.Current),
			fmt.Sprintf("%+.*f", prec, d.Delta),
			output.TrendArrow(d.Delta, metricSuffix(d.Name), higherIsBetter),
		)
	}

	tbl.Print()
}

// metricDisplayOrder defines the order metrics appear in history output.
var metricDisplayOrder = []string{
	"total_entries",
	"entries_last_30d",
	"impact_consistency",
	"unique_skills",
	"trending_skills",
	"achievements_scored",
	"achievements_high_tier",
	"avg_achievement_score",
	"active_months",
	"quick_wins_open",
}

// metricShortName returns a compact label for the history table.
func metricShortName(name string) string {
	short := map[string]string{
		"total_entries":          "Entries",
		"entries_last_30d":       "Entries (30d)",
		"impact_consistency":     "Impact %",
		"unique_skills":          "Skills",
		"trending_skills":        "Trending",
		"achievements_scored":    "Achievements",
		"achievements_high_tier": "High Tier",
		"avg_achievement_score":  "Avg Score",
		"active_months":          "Active Months",
		"quick_wins_open":        "Quick Wins",
	}
	if s, ok := short[name]; ok {
		return s
	}
	return name
}

// renderHistory shows a multi-snapshot timeline table.
func renderHistory(db *store.DB, n int) error {
	snapshots, err := db.GetRecentSnapshots(n)
	if err != nil {
		return fmt.Errorf("loading snapshots: %w", err)
	}

	if len(snapshots) == 0 {
		fmt.Println(" No snapshots found. Run 'trackrecord track' to create one.")
		return nil
	}

	// Reverse so oldest is first (left to right = chronological).
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	type snapshotMetrics struct {
		snapshot store.Snapshot
		metrics  map[string]float64
	}
	var timeline []snapshotMetrics
	for _, s := range snapshots {
		metrics, err := db.GetInsightMetrics(s.ID)
		if err != nil {
			return fmt.Errorf("loading metrics for snapshot #%d: %w", s.ID, err)
		}
		m := make(map[string]float64)
		for _, im := range metrics {
			m[im.MetricName] = im.MetricValue
		}
		timeline = append(timeline, snapshotMetrics{snapshot: s, metrics: m})
	}

	fmt.Println(output.Section("Metric History"))
	fmt.Println()
	fmt.Printf(" Showing %d most recent snapshots\n\n", len(timeline))

	headers := []string{"Metric"}
	for _, sm := range timeline {
		headers = append(headers, fmt.Sprintf("#%d %s", sm.snapshot.ID, sm.snapshot.TakenAt.Format("Jan 02")))
	}
	headers = append(headers, "Trend")
	tbl := output.NewTable(headers...)

	for _, name := range metricDisplayOrder {
		prec := metricPrecision(name)
		row := []string{metricShortName(name)}
		var vals []float64
		for _, sm := range timeline {
			v := sm.metrics[name]
			vals = append(vals, v)
			row = append(row, fmt.Sprintf("%.*f", prec, v))
		}

		// Trend from first to last.
		trend := ""
		if len(vals) >= 2 {
			delta := vals[len(vals)-1] - vals[0]
			higherIsBetter, known := metricDirection[name]
			if !known {
				higherIsBetter = true
			}
			trend = output.TrendArrow(delta, metricSuffix(name), higherIsBetter)
		}
		row = append(row, trend)
		tbl.AddRow(row...)
	}

	tbl.Print()
	return nil
}

// outputHistoryJSON writes the history data as JSON.
func outputHistoryJSON(db *store.DB, n int) error {
	snapshots, err := db.GetRecentSnapshots(n)
	if err != nil {
		return fmt.Errorf("loading snapshots: %w", err)
	}

	// Reverse to chronological order.
	for i, j := 0, len(snapshots)-1; i < j; i, j = i+1, j-1 {
		snapshots[i], snapshots[j] = snapshots[j], snapshots[i]
	}

	type snapshotEntry struct {
		Snapshot store.Snapshot        `json:"snapshot"`
		Metrics  []store.InsightMetric `json:"metrics"`
	}

	var history []snapshotEntry
	for _, s := range snapshots {
		metrics, err := db.GetInsightMetrics(s.ID)
		if err != nil {
			return fmt.Errorf("loading metrics for snapshot #%d: %w", s.ID, err)
		}
		history = append(history, snapshotEntry{Snapshot: s, Metrics: metrics})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"history": history})
}
