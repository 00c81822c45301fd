package analyzer

import (
	"testing"
	"time"

	"github.com/blackwell-systems/trackrecord/internal/career"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func skillEntry(id, date string, skills ...string) career.Entry {
	return career.Entry{
		ID:          id,
		Date:        date,
		Description: "logged activity",
		Skills:      skills,
		Category:    career.CategorySkill,
	}
}

func TestAnalyzeSkills_Empty(t *testing.T) {
	if got := AnalyzeSkills(nil, testNow, nil); got != nil {
		t.Errorf("expected nil insights, got %d", len(got))
	}
}

func TestAnalyzeSkills_FrequencyCountsEveryOccurrence(t *testing.T) {
	entries := []career.Entry{
		skillEntry("e1", "2026-03-01", "Go", "Go"),
		skillEntry("e2", "2026-03-02", " Go "),
		skillEntry("e3", "2026-03-03", "go"),
	}

	insights := AnalyzeSkills(entries, testNow, nil)

	byLabel := make(map[string]SkillInsight)
	for _, in := range insights {
		byLabel[in.Skill] = in
	}

	// Labels are trimmed but case-preserving: "Go" and "go" stay distinct.
	if len(byLabel) != 2 {
		t.Fatalf("expected 2 distinct labels, got %d", len(byLabel))
	}
	if byLabel["Go"].Frequency != 3 {
		t.Errorf("expected frequency 3 for Go, got %d", byLabel["Go"].Frequency)
	}
	if byLabel["go"].Frequency != 1 {
		t.Errorf("expected frequency 1 for go, got %d", byLabel["go"].Frequency)
	}

	// The duplicate within e1 contributes its ID twice.
	related := byLabel["Go"].RelatedEntries
	if len(related) != 3 || related[0] != "e1" || related[1] != "e1" || related[2] != "e2" {
		t.Errorf("unexpected related entries: %v", related)
	}
}

func TestAnalyzeSkills_FirstAndLastUsed(t *testing.T) {
	entries := []career.Entry{
		skillEntry("e1", "2026-03-10", "SQL"),
		skillEntry("e2", "2026-01-05", "SQL"),
		skillEntry("e3", "2026-02-20", "SQL"),
	}

	insights := AnalyzeSkills(entries, testNow, nil)

	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	want := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if !insights[0].FirstUsed.Equal(want) {
		t.Errorf("FirstUsed = %v, want %v", insights[0].FirstUsed, want)
	}
	want = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !insights[0].LastUsed.Equal(want) {
		t.Errorf("LastUsed = %v, want %v", insights[0].LastUsed, want)
	}
}

func TestRecencyScore(t *testing.T) {
	tests := []struct {
		name     string
		lastUsed time.Time
		want     int
	}{
		{"today", testNow, 100},
		{"thirty days ago", testNow.AddDate(0, 0, -30), 70},
		{"hundred days ago", testNow.AddDate(0, 0, -100), 0},
		{"long gone", testNow.AddDate(-2, 0, 0), 0},
		{"future dated", testNow.AddDate(0, 0, 3), 100},
		{"never parsed", time.Time{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := recencyScore(testNow, tt.lastUsed); got != tt.want {
				t.Errorf("recencyScore = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAnalyzeSkills_RarityBoundaries(t *testing.T) {
	// 10 entries: 1 occurrence sits exactly on the unique boundary and
	// 3 exactly on the rare boundary.
	entries := make([]career.Entry, 0, 10)
	entries = append(entries, skillEntry("e0", "2026-03-01", "Erlang"))
	entries = append(entries, skillEntry("e1", "2026-03-02", "Terraform"))
	entries = append(entries, skillEntry("e2", "2026-03-03", "Terraform"))
	entries = append(entries, skillEntry("e3", "2026-03-04", "Terraform"))
	for i := 4; i < 10; i++ {
		entries = append(entries, skillEntry("f", "2026-03-05", "SQL"))
	}

	insights := AnalyzeSkills(entries, testNow, nil)
	rarity := make(map[string]string)
	for _, in := range insights {
		rarity[in.Skill] = in.Rarity
	}

	if rarity["Erlang"] != RarityUnique {
		t.Errorf("1/10 should be unique, got %q", rarity["Erlang"])
	}
	if rarity["Terraform"] != RarityRare {
		t.Errorf("3/10 should be rare, got %q", rarity["Terraform"])
	}
	if rarity["SQL"] != RarityCommon {
		t.Errorf("6/10 should be common, got %q", rarity["SQL"])
	}
}

func TestAnalyzeSkills_RarityBoundariesTwenty(t *testing.T) {
	// 20 entries: 2/20 == 0.10 and 6/20 == 0.30 still land inside their
	// tiers; 7/20 tips over into common.
	entries := make([]career.Entry, 0, 20)
	entries = append(entries, skillEntry("a1", "2026-03-01", "Elm"))
	entries = append(entries, skillEntry("a2", "2026-03-01", "Elm"))
	for i := 0; i < 6; i++ {
		entries = append(entries, skillEntry("b", "2026-03-02", "Kafka"))
	}
	for i := 0; i < 7; i++ {
		entries = append(entries, skillEntry("c", "2026-03-03", "SQL"))
	}
	for i := 0; i < 5; i++ {
		entries = append(entries, skillEntry("d", "2026-03-04"))
	}

	insights := AnalyzeSkills(entries, testNow, nil)
	rarity := make(map[string]string)
	for _, in := range insights {
		rarity[in.Skill] = in.Rarity
	}

	if rarity["Elm"] != RarityUnique {
		t.Errorf("2/20 should be unique, got %q", rarity["Elm"])
	}
	if rarity["Kafka"] != RarityRare {
		t.Errorf("6/20 should be rare, got %q", rarity["Kafka"])
	}
	if rarity["SQL"] != RarityCommon {
		t.Errorf("7/20 should be common, got %q", rarity["SQL"])
	}
}

func TestAnalyzeSkills_Trending(t *testing.T) {
	entries := []career.Entry{
		skillEntry("e1", "2026-03-01", "React Native", "Embedded C", "kubernetes"),
	}

	insights := AnalyzeSkills(entries, testNow, nil)
	trending := make(map[string]bool)
	for _, in := range insights {
		trending[in.Skill] = in.Trending
	}

	if !trending["React Native"] {
		t.Error("React Native should match the React trend")
	}
	if !trending["kubernetes"] {
		t.Error("kubernetes should match case-insensitively")
	}
	if trending["Embedded C"] {
		t.Error("Embedded C should not be trending")
	}
}

func TestAnalyzeSkills_TrendingCustomList(t *testing.T) {
	entries := []career.Entry{
		skillEntry("e1", "2026-03-01", "COBOL", "React"),
	}

	insights := AnalyzeSkills(entries, testNow, []string{"COBOL"})
	trending := make(map[string]bool)
	for _, in := range insights {
		trending[in.Skill] = in.Trending
	}

	if !trending["COBOL"] {
		t.Error("COBOL should be trending under the custom list")
	}
	if trending["React"] {
		t.Error("React should not be trending under the custom list")
	}
}

func TestGrowthTrend(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
	}

	tests := []struct {
		name  string
		dates []time.Time
		want  string
	}{
		{"no uses", nil, GrowthStable},
		{"single use", []time.Time{day(0)}, GrowthStable},
		{"two spread uses", []time.Time{day(0), day(20)}, GrowthStable},
		{"same day repeats", []time.Time{day(5), day(5), day(5)}, GrowthStable},
		{"clustered late", []time.Time{day(0), day(80), day(90), day(100)}, GrowthIncreasing},
		{"clustered early", []time.Time{day(0), day(10), day(20), day(100)}, GrowthDecreasing},
		{"even spread", []time.Time{day(0), day(50), day(100)}, GrowthStable},
		{"undated uses ignored", []time.Time{{}, {}, day(0)}, GrowthStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := growthTrend(tt.dates); got != tt.want {
				t.Errorf("growthTrend = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnalyzeSkills_SortOrder(t *testing.T) {
	// 10 entries total. Python appears 5 times (common), Kafka and Redis
	// twice each (rare), Erlang once (unique). Scarcest tier first, then
	// frequency, then first-encountered for the Kafka/Redis tie.
	entries := []career.Entry{
		skillEntry("e1", "2026-03-01", "Python", "Kafka"),
		skillEntry("e2", "2026-03-02", "Python", "Redis"),
		skillEntry("e3", "2026-03-03", "Python", "Kafka"),
		skillEntry("e4", "2026-03-04", "Python", "Redis"),
		skillEntry("e5", "2026-03-05", "Python", "Erlang"),
		skillEntry("e6", "2026-03-06"),
		skillEntry("e7", "2026-03-07"),
		skillEntry("e8", "2026-03-08"),
		skillEntry("e9", "2026-03-09"),
		skillEntry("e10", "2026-03-10"),
	}

	insights := AnalyzeSkills(entries, testNow, nil)

	got := make([]string, len(insights))
	for i, in := range insights {
		got[i] = in.Skill
	}
	want := []string{"Erlang", "Kafka", "Redis", "Python"}
	if len(got) != len(want) {
		t.Fatalf("expected %d skills, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sort order %v, want %v", got, want)
		}
	}
}

func TestAnalyzeSkills_Deterministic(t *testing.T) {
	entries := []career.Entry{
		skillEntry("e1", "2026-01-10", "Go", "SQL", "Terraform"),
		skillEntry("e2", "2026-02-11", "SQL", "Go"),
		skillEntry("e3", "2026-03-12", "Terraform", "SQL"),
	}

	first := AnalyzeSkills(entries, testNow, nil)
	for run := 0; run < 10; run++ {
		again := AnalyzeSkills(entries, testNow, nil)
		if len(again) != len(first) {
			t.Fatalf("run %d: length changed from %d to %d", run, len(first), len(again))
		}
		for i := range first {
			if again[i].Skill != first[i].Skill || again[i].Frequency != first[i].Frequency {
				t.Fatalf("run %d: order changed at %d: %q vs %q", run, i, again[i].Skill, first[i].Skill)
			}
		}
	}
}
