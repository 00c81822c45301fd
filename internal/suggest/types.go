// Package suggest provides the quick-win recommendation engine and its rules.
package suggest

import (
	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/career"
)

// Priority labels for quick wins.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// MaxQuickWins caps how many wins a single run returns.
const MaxQuickWins = 5

// QuickWin represents one small, concrete improvement to the activity log or
// to how skills are being invested.
type QuickWin struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        string   `json:"priority"`
	Actionable      bool     `json:"actionable"`
	RelatedEntries  []string `json:"related_entries,omitempty"`
	SuggestedAction string   `json:"suggested_action,omitempty"`
}

// AnalysisContext provides all data quick-win rules need. It is populated
// from the analyzer passes before being handed to the engine.
type AnalysisContext struct {
	// Entries is the full activity log under analysis.
	Entries []career.Entry `json:"entries"`

	// Skills is the skill analysis for the same entries, scarcest first.
	Skills []analyzer.SkillInsight `json:"skills"`

	// Achievements is the scored achievement list, best first.
	Achievements []analyzer.AchievementInsight `json:"achievements"`

	// InDemandSkills overrides DefaultInDemandSkills when non-nil.
	InDemandSkills []string `json:"in_demand_skills,omitempty"`
}

// Rule is a function that examines the analysis context and produces zero or
// more quick wins.
type Rule func(ctx *AnalysisContext) []QuickWin
