// Package analyzer holds the pure analysis passes over a career activity
// log: skill aggregation, achievement scoring, and monthly trend detection.
// Passes take their inputs and a reference time as parameters, never touch
// the clock or disk, and return the same output for the same input.
package analyzer

import (
	"time"

	"github.com/blackwell-systems/trackrecord/internal/career"
)

// Skill rarity tiers, scarcest first.
const (
	RarityUnique = "unique"
	RarityRare   = "rare"
	RarityCommon = "common"
)

// Skill growth trends.
const (
	GrowthIncreasing = "increasing"
	GrowthStable     = "stable"
	GrowthDecreasing = "decreasing"
)

// Achievement score tiers.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
)

// Monthly momentum levels.
const (
	MomentumHigh   = "high"
	MomentumMedium = "medium"
	MomentumLow    = "low"
)

// SkillInsight describes how one skill shows up across the activity log.
type SkillInsight struct {
	Skill          string    `json:"skill"`
	Frequency      int       `json:"frequency"`
	RecencyScore   int       `json:"recency_score"`
	Rarity         string    `json:"rarity"`
	Trending       bool      `json:"trending"`
	FirstUsed      time.Time `json:"first_used"`
	LastUsed       time.Time `json:"last_used"`
	RelatedEntries []string  `json:"related_entries"`
	GrowthTrend    string    `json:"growth_trend"`
}

// MetricSet holds the quantifiable figures extracted from an entry's text,
// bucketed by kind.
type MetricSet struct {
	Numbers     []string `json:"numbers,omitempty"`
	Percentages []string `json:"percentages,omitempty"`
	Timeframes  []string `json:"timeframes,omitempty"`
}

// Any reports whether at least one figure was extracted.
func (m MetricSet) Any() bool {
	return len(m.Numbers)+len(m.Percentages)+len(m.Timeframes) > 0
}

// AchievementInsight scores a single entry with a documented impact.
type AchievementInsight struct {
	Entry          career.Entry `json:"entry"`
	Score          int          `json:"score"`
	Tier           string       `json:"tier"`
	KeywordMatches int          `json:"keyword_matches"`
	Metrics        MetricSet    `json:"metrics"`

	HasQuantifiableResults bool `json:"has_quantifiable_results"`
}

// CareerTrend summarizes one calendar month of activity.
type CareerTrend struct {
	Period           string   `json:"period"`
	ActivityCount    int      `json:"activity_count"`
	SkillsLearned    []string `json:"skills_learned"`
	CategoriesActive []string `json:"categories_active"`
	ImpactfulEntries int      `json:"impactful_entries"`
	Momentum         string   `json:"momentum"`
}
