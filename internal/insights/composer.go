package insights

import (
	"sort"
	"time"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/career"
	"github.com/blackwell-systems/trackrecord/internal/suggest"
)

// Limits on the detailed bundle.
const (
	maxTopSkills       = 10
	maxTopAchievements = 8
	maxHighlights      = 5
	highlightDays      = 30
	momentumWindow     = 3
)

// Build runs every analysis pass over the entries and composes the detailed
// insight bundle. now anchors the recency windows and is echoed back as
// GeneratedAt, so two builds over the same entries and the same now are
// identical.
func Build(entries []career.Entry, now time.Time, opts Options) CareerInsights {
	skills := analyzer.AnalyzeSkills(entries, now, opts.TrendingSkills)
	achievements := analyzer.ScoreAchievements(entries, opts.ImpactKeywords)
	trends := analyzer.AnalyzeTrends(entries)

	wins := suggest.NewEngine().Run(&suggest.AnalysisContext{
		Entries:        entries,
		Skills:         skills,
		Achievements:   achievements,
		InDemandSkills: opts.InDemandSkills,
	})

	result := CareerInsights{
		TopSkills:           skills,
		TopAchievements:     achievements,
		Trends:              trends,
		QuickWins:           wins,
		RecentHighlights:    recentHighlights(entries, now),
		OverallMomentum:     overallMomentum(trends),
		SkillDiversityScore: diversityScore(len(skills)),
		ImpactConsistency:   impactConsistency(entries),
		GeneratedAt:         now,
	}
	if len(result.TopSkills) > maxTopSkills {
		result.TopSkills = result.TopSkills[:maxTopSkills]
	}
	if len(result.TopAchievements) > maxTopAchievements {
		result.TopAchievements = result.TopAchievements[:maxTopAchievements]
	}
	return result
}

// diversityScore doubles the distinct skill count, capped at 100.
func diversityScore(distinct int) int {
	score := distinct * 2
	if score > 100 {
		score = 100
	}
	return score
}

// impactConsistency is the percentage of entries carrying a documented
// impact, 0 for an empty log.
func impactConsistency(entries []career.Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	impactful := 0
	for _, e := range entries {
		if e.HasImpact() {
			impactful++
		}
	}
	return float64(impactful) / float64(len(entries)) * 100
}

// recentHighlights picks impactful entries from the last thirty days, newest
// first, at most five.
func recentHighlights(entries []career.Entry, now time.Time) []career.Entry {
	type dated struct {
		entry career.Entry
		date  time.Time
	}

	cutoff := now.AddDate(0, 0, -highlightDays)
	var recent []dated
	for _, e := range entries {
		if !e.HasImpact() {
			continue
		}
		if d := career.ParseDate(e.Date); d.After(cutoff) {
			recent = append(recent, dated{e, d})
		}
	}
	if len(recent) == 0 {
		return nil
	}

	sort.SliceStable(recent, func(i, j int) bool { return recent[i].date.After(recent[j].date) })
	if len(recent) > maxHighlights {
		recent = recent[:maxHighlights]
	}

	out := make([]career.Entry, len(recent))
	for i, r := range recent {
		out[i] = r.entry
	}
	return out
}

// overallMomentum grades the most recent trend buckets. Two or more high
// months out of the last three reads as accelerating; all low reads as
// declining; anything else, including no data at all, is steady.
func overallMomentum(trends []analyzer.CareerTrend) string {
	recent := trends
	if len(recent) > momentumWindow {
		recent = recent[:momentumWindow]
	}
	if len(recent) == 0 {
		return MomentumSteady
	}

	high, low := 0, 0
	for _, tr := range recent {
		switch tr.Momentum {
		case analyzer.MomentumHigh:
			high++
		case analyzer.MomentumLow:
			low++
		}
	}

	switch {
	case high >= 2:
		return MomentumAccelerating
	case low == len(recent):
		return MomentumDeclining
	default:
		return MomentumSteady
	}
}
