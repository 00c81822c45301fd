// Package insights composes the analysis passes into ready-to-render
// bundles: a detailed one for the full report views and a simplified one
// for the at-a-glance summary.
package insights

import (
	"time"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/career"
	"github.com/blackwell-systems/trackrecord/internal/suggest"
)

// Overall momentum labels for the detailed bundle.
const (
	MomentumAccelerating = "accelerating"
	MomentumSteady       = "steady"
	MomentumDeclining    = "declining"
)

// Pace labels for the simplified bundle's momentum field.
const (
	PaceGrowing        = "growing"
	PaceSteady         = "steady"
	PaceNeedsAttention = "needs-attention"
)

// CareerInsights is the detailed insight bundle.
type CareerInsights struct {
	TopSkills           []analyzer.SkillInsight       `json:"top_skills"`
	TopAchievements     []analyzer.AchievementInsight `json:"top_achievements"`
	Trends              []analyzer.CareerTrend        `json:"trends"`
	QuickWins           []suggest.QuickWin            `json:"quick_wins"`
	RecentHighlights    []career.Entry                `json:"recent_highlights"`
	OverallMomentum     string                        `json:"overall_momentum"`
	SkillDiversityScore int                           `json:"skill_diversity_score"`
	ImpactConsistency   float64                       `json:"impact_consistency"`
	GeneratedAt         time.Time                     `json:"generated_at"`
}

// SimplifiedInsights is the compact dashboard view.
type SimplifiedInsights struct {
	TopSkills        []string         `json:"top_skills"`
	RecentWins       []string         `json:"recent_wins"`
	Momentum         string           `json:"momentum"`
	PriorityActions  []PriorityAction `json:"priority_actions"`
	TotalEntries     int              `json:"total_entries"`
	EntriesThisMonth int              `json:"entries_this_month"`
	UniqueSkills     int              `json:"unique_skills"`
}

// PriorityAction is one concrete next step in the simplified bundle.
type PriorityAction struct {
	Type          string `json:"type"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	EstimatedTime string `json:"estimated_time"`
}

// Options carries the configurable keyword lists into a build. The zero value
// selects the built-in defaults for every list.
type Options struct {
	TrendingSkills []string
	ImpactKeywords []string
	InDemandSkills []string
}
