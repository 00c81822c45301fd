package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/career"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func TestBuild_EmptyLog(t *testing.T) {
	result := Build(nil, testNow, Options{})

	assert.Empty(t, result.TopSkills)
	assert.Empty(t, result.TopAchievements)
	assert.Empty(t, result.Trends)
	assert.Empty(t, result.QuickWins)
	assert.Empty(t, result.RecentHighlights)
	assert.Equal(t, 0, result.SkillDiversityScore)
	assert.Equal(t, 0.0, result.ImpactConsistency)
	assert.Equal(t, MomentumSteady, result.OverallMomentum)
	assert.Equal(t, testNow, result.GeneratedAt)
}

func TestBuild_Deterministic(t *testing.T) {
	entries := []career.Entry{
		{ID: "e1", Date: "2026-03-01", Description: "Migrated the billing service", Impact: "Reduced invoice errors 30%", Skills: []string{"Go", "SQL"}, Category: career.CategoryProject},
		{ID: "e2", Date: "2026-03-05", Description: "Ran the platform onboarding", Skills: []string{"Mentoring"}, Category: career.CategoryLeadership},
		{ID: "e3", Date: "2026-02-10", Description: "Studied stream processing", Skills: []string{"Kafka"}, Category: career.CategoryLearning},
	}

	first := Build(entries, testNow, Options{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Build(entries, testNow, Options{}))
	}
}

func TestBuild_TopListLimits(t *testing.T) {
	var entries []career.Entry
	// Twelve distinct skills across twelve entries, nine of them impactful.
	for i := 0; i < 12; i++ {
		e := career.Entry{
			ID:          fmt.Sprintf("e%d", i),
			Date:        fmt.Sprintf("2026-03-%02d", i+1),
			Description: "Worked across the stack",
			Skills:      []string{fmt.Sprintf("Skill-%d", i)},
			Category:    career.CategoryProject,
		}
		if i < 9 {
			e.Impact = "Improved delivery"
		}
		entries = append(entries, e)
	}

	result := Build(entries, testNow, Options{})

	assert.Len(t, result.TopSkills, 10)
	assert.Len(t, result.TopAchievements, 8)
	// Diversity counts all twelve skills, not just the ten shown.
	assert.Equal(t, 24, result.SkillDiversityScore)
}

func TestBuild_ImpactConsistency(t *testing.T) {
	entries := []career.Entry{
		{ID: "e1", Date: "2026-03-01", Description: "a", Impact: "Delivered ahead of plan", Category: career.CategoryProject},
		{ID: "e2", Date: "2026-03-02", Description: "b", Category: career.CategoryProject},
		{ID: "e3", Date: "2026-03-03", Description: "c", Impact: "Saved 3 hours weekly", Category: career.CategoryProject},
		{ID: "e4", Date: "2026-03-04", Description: "d", Category: career.CategoryProject},
	}

	result := Build(entries, testNow, Options{})

	assert.Equal(t, 50.0, result.ImpactConsistency)
}

func TestBuild_RecentHighlights(t *testing.T) {
	entries := []career.Entry{
		{ID: "old", Date: "2025-11-01", Description: "a", Impact: "Improved uptime", Category: career.CategoryProject},
		{ID: "new1", Date: "2026-03-10", Description: "b", Impact: "Reduced costs", Category: career.CategoryProject},
		{ID: "new2", Date: "2026-03-12", Description: "c", Impact: "Increased adoption", Category: career.CategoryProject},
		{ID: "undoc", Date: "2026-03-13", Description: "d", Category: career.CategoryProject},
	}

	result := Build(entries, testNow, Options{})

	require.Len(t, result.RecentHighlights, 2)
	assert.Equal(t, "new2", result.RecentHighlights[0].ID)
	assert.Equal(t, "new1", result.RecentHighlights[1].ID)
}

func TestOverallMomentum(t *testing.T) {
	trend := func(momentum string) analyzer.CareerTrend {
		return analyzer.CareerTrend{Momentum: momentum}
	}

	tests := []struct {
		name   string
		trends []analyzer.CareerTrend
		want   string
	}{
		{"no buckets", nil, MomentumSteady},
		{"two high of three", []analyzer.CareerTrend{trend(analyzer.MomentumHigh), trend(analyzer.MomentumLow), trend(analyzer.MomentumHigh)}, MomentumAccelerating},
		{"all low", []analyzer.CareerTrend{trend(analyzer.MomentumLow), trend(analyzer.MomentumLow), trend(analyzer.MomentumLow)}, MomentumDeclining},
		{"single low month", []analyzer.CareerTrend{trend(analyzer.MomentumLow)}, MomentumDeclining},
		{"single high month", []analyzer.CareerTrend{trend(analyzer.MomentumHigh)}, MomentumSteady},
		{"mixed", []analyzer.CareerTrend{trend(analyzer.MomentumMedium), trend(analyzer.MomentumLow), trend(analyzer.MomentumHigh)}, MomentumSteady},
		{"older buckets ignored", []analyzer.CareerTrend{
			trend(analyzer.MomentumLow), trend(analyzer.MomentumLow), trend(analyzer.MomentumLow),
			trend(analyzer.MomentumHigh), trend(analyzer.MomentumHigh),
		}, MomentumDeclining},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overallMomentum(tt.trends))
		})
	}
}

func TestBuild_EndToEnd(t *testing.T) {
	entries := []career.Entry{
		{
			ID:          "react-1",
			Date:        "2026-03-10",
			Description: "Shipped the new checkout flow",
			Impact:      "Increased conversion 20%",
			Skills:      []string{"React"},
			Category:    career.CategoryAchievement,
		},
		{
			ID:          "react-2",
			Date:        "2026-03-12",
			Description: "Refactored the shared component library",
			Skills:      []string{"React"},
			Category:    career.CategoryProject,
		},
	}

	result := Build(entries, testNow, Options{})

	// One skill, used in both entries: frequency 2 out of 2 entries puts it
	// deep into common territory, and React is on the trending list.
	require.Len(t, result.TopSkills, 1)
	react := result.TopSkills[0]
	assert.Equal(t, "React", react.Skill)
	assert.Equal(t, 2, react.Frequency)
	assert.Equal(t, analyzer.RarityCommon, react.Rarity)
	assert.True(t, react.Trending)

	// Only the documented entry scores: increased + percentage + metric +
	// achievement category lands in the high tier.
	require.Len(t, result.TopAchievements, 1)
	top := result.TopAchievements[0]
	assert.Equal(t, "react-1", top.Entry.ID)
	assert.Equal(t, 75, top.Score)
	assert.Equal(t, analyzer.TierHigh, top.Tier)

	// The undocumented entry drives a documentation win.
	require.NotEmpty(t, result.QuickWins)
	assert.Equal(t, "missing_documentation", result.QuickWins[0].Type)
	assert.Equal(t, []string{"react-2"}, result.QuickWins[0].RelatedEntries)

	assert.Equal(t, 50.0, result.ImpactConsistency)
	assert.Equal(t, 2, result.SkillDiversityScore)

	require.Len(t, result.RecentHighlights, 1)
	assert.Equal(t, "react-1", result.RecentHighlights[0].ID)
}
