package suggest

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
	"github.com/blackwell-systems/trackrecord/internal/career"
)

// --- UnderutilizedSkills ---

func TestUnderutilizedSkills_FiresOnRareLowUse(t *testing.T) {
	ctx := &AnalysisContext{
		Skills: []analyzer.SkillInsight{
			{Skill: "Erlang", Rarity: analyzer.RarityUnique, Frequency: 2},
			{Skill: "Python", Rarity: analyzer.RarityCommon, Frequency: 9},
		},
	}

	wins := UnderutilizedSkills(ctx)

	if len(wins) != 1 {
		t.Fatalf("expected 1 win, got %d", len(wins))
	}
	w := wins[0]
	if w.Type != "underutilized_skill" {
		t.Errorf("type = %q", w.Type)
	}
	if w.Priority != PriorityMedium {
		t.Errorf("priority = %q, want medium", w.Priority)
	}
	if !w.Actionable {
		t.Error("expected an actionable win")
	}
	if !strings.Contains(w.Description, "Erlang") {
		t.Errorf("description should name the skill: %q", w.Description)
	}
	if strings.Contains(w.Description, "Python") {
		t.Errorf("common skill should not be named: %q", w.Description)
	}
}

func TestUnderutilizedSkills_FrequencyBoundary(t *testing.T) {
	// Frequency 2 qualifies, 3 does not.
	ctx := &AnalysisContext{
		Skills: []analyzer.SkillInsight{
			{Skill: "Elm", Rarity: analyzer.RarityUnique, Frequency: 3},
		},
	}
	if wins := UnderutilizedSkills(ctx); len(wins) != 0 {
		t.Fatalf("frequency 3 should not fire, got %d wins", len(wins))
	}

	ctx.Skills[0].Frequency = 2
	if wins := UnderutilizedSkills(ctx); len(wins) != 1 {
		t.Fatalf("frequency 2 should fire, got %d wins", len(wins))
	}
}

func TestUnderutilizedSkills_RequiresUniqueRarity(t *testing.T) {
	ctx := &AnalysisContext{
		Skills: []analyzer.SkillInsight{
			{Skill: "Kafka", Rarity: analyzer.RarityRare, Frequency: 1},
		},
	}

	if wins := UnderutilizedSkills(ctx); len(wins) != 0 {
		t.Fatalf("rare tier should not fire, got %d wins", len(wins))
	}
}

func TestUnderutilizedSkills_NamesAtMostThree(t *testing.T) {
	ctx := &AnalysisContext{
		Skills: []analyzer.SkillInsight{
			{Skill: "Erlang", Rarity: analyzer.RarityUnique, Frequency: 1},
			{Skill: "Elm", Rarity: analyzer.RarityUnique, Frequency: 1},
			{Skill: "Prolog", Rarity: analyzer.RarityUnique, Frequency: 1},
			{Skill: "Forth", Rarity: analyzer.RarityUnique, Frequency: 1},
		},
	}

	wins := UnderutilizedSkills(ctx)

	if len(wins) != 1 {
		t.Fatalf("expected 1 win, got %d", len(wins))
	}
	for _, name := range []string{"Erlang", "Elm", "Prolog"} {
		if !strings.Contains(wins[0].Description, name) {
			t.Errorf("description should name %s: %q", name, wins[0].Description)
		}
	}
	if strings.Contains(wins[0].Description, "Forth") {
		t.Errorf("only three skills should be named: %q", wins[0].Description)
	}
}

// --- MissingImpactDocs ---

func TestMissingImpactDocs_AllDocumented(t *testing.T) {
	ctx := &AnalysisContext{
		Entries: []career.Entry{
			{ID: "e1", Description: "x", Impact: "Reduced build time"},
			{ID: "e2", Description: "y", Impact: "Improved onboarding"},
		},
	}

	if wins := MissingImpactDocs(ctx); len(wins) != 0 {
		t.Fatalf("expected no wins, got %d", len(wins))
	}
}

func TestMissingImpactDocs_CountsAndReferences(t *testing.T) {
	entries := []career.Entry{
		{ID: "ok", Description: "x", Impact: "Saved a day a week"},
	}
	for _, id := range []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7"} {
		entries = append(entries, career.Entry{ID: id, Description: "x", Impact: "  "})
	}
	ctx := &AnalysisContext{Entries: entries}

	wins := MissingImpactDocs(ctx)

	if len(wins) != 1 {
		t.Fatalf("expected 1 win, got %d", len(wins))
	}
	w := wins[0]
	if w.Type != "missing_documentation" || w.Priority != PriorityHigh {
		t.Errorf("unexpected type/priority: %q/%q", w.Type, w.Priority)
	}
	if !strings.Contains(w.Description, "7 of 8") {
		t.Errorf("description should count 7 of 8: %q", w.Description)
	}
	// Only the first five undocumented entries are referenced.
	if len(w.RelatedEntries) != 5 {
		t.Fatalf("expected 5 related entries, got %d", len(w.RelatedEntries))
	}
	if w.RelatedEntries[0] != "u1" || w.RelatedEntries[4] != "u5" {
		t.Errorf("unexpected related entries: %v", w.RelatedEntries)
	}
}

// --- SkillGaps ---

func TestSkillGaps_AllCovered(t *testing.T) {
	ctx := &AnalysisContext{
		Skills: []analyzer.SkillInsight{
			{Skill: "Explainable AI"},
			{Skill: "Machine Learning"},
			{Skill: "Cloud Computing"},
			{Skill: "DevOps"},
			{Skill: "TypeScript"},
		},
	}

	if wins := SkillGaps(ctx); len(wins) != 0 {
		t.Fatalf("expected no wins with full coverage, got %d", len(wins))
	}
}

func TestSkillGaps_NamesFirstThreeMissing(t *testing.T) {
	ctx := &AnalysisContext{
		Skills: []analyzer.SkillInsight{
			{Skill: "Rust"},
			{Skill: "Embedded Firmware"},
		},
	}

	wins := SkillGaps(ctx)

	if len(wins) != 1 {
		t.Fatalf("expected 1 win, got %d", len(wins))
	}
	w := wins[0]
	if w.Type != "skill_gap" || w.Priority != PriorityLow {
		t.Errorf("unexpected type/priority: %q/%q", w.Type, w.Priority)
	}
	for _, name := range []string{"AI", "Machine Learning", "Cloud Computing"} {
		if !strings.Contains(w.Description, name) {
			t.Errorf("description should name %s: %q", name, w.Description)
		}
	}
	if strings.Contains(w.Description, "DevOps") {
		t.Errorf("only the first three gaps should be named: %q", w.Description)
	}
}

func TestSkillGaps_ContainmentEitherWay(t *testing.T) {
	// "typescript expert" covers TypeScript; bare "cloud" is covered by
	// Cloud Computing containing it.
	ctx := &AnalysisContext{
		Skills: []analyzer.SkillInsight{
			{Skill: "typescript expert"},
			{Skill: "cloud"},
		},
	}

	wins := SkillGaps(ctx)

	if len(wins) != 1 {
		t.Fatalf("expected 1 win, got %d", len(wins))
	}
	desc := wins[0].Description
	if strings.Contains(desc, "TypeScript") || strings.Contains(desc, "Cloud Computing") {
		t.Errorf("covered skills should not be listed: %q", desc)
	}
}

func TestSkillGaps_CustomList(t *testing.T) {
	ctx := &AnalysisContext{
		Skills:         []analyzer.SkillInsight{{Skill: "Go"}},
		InDemandSkills: []string{"Go", "Zig"},
	}

	wins := SkillGaps(ctx)

	if len(wins) != 1 {
		t.Fatalf("expected 1 win, got %d", len(wins))
	}
	if !strings.Contains(wins[0].Description, "Zig") {
		t.Errorf("description should name Zig: %q", wins[0].Description)
	}
}
