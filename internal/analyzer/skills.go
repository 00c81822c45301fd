package analyzer

import (
	"sort"
	"strings"
	"time"

	"github.com/blackwell-systems/trackrecord/internal/career"
)

// DefaultTrendingSkills is the built-in list of market-trending skills.
// Callers can pass their own list to AnalyzeSkills; nil selects this one.
var DefaultTrendingSkills = []string{
	"AI", "Machine Learning", "React", "TypeScript", "Python", "Cloud",
	"DevOps", "Kubernetes", "GraphQL", "Next.js", "Rust", "Go",
}

// rarityRank orders rarity tiers for sorting, scarcest highest.
var rarityRank = map[string]int{
	RarityUnique: 3,
	RarityRare:   2,
	RarityCommon: 1,
}

// AnalyzeSkills aggregates every skill occurrence across entries into one
// insight per distinct label. Labels are trimmed but case-preserving, and
// every occurrence counts toward frequency, including repeats within a single
// entry. Results are sorted scarcest rarity first, then frequency descending,
// with first-encountered order breaking ties. now anchors the recency score;
// trending may be nil to use DefaultTrendingSkills.
func AnalyzeSkills(entries []career.Entry, now time.Time, trending []string) []SkillInsight {
	if len(entries) == 0 {
		return nil
	}
	if trending == nil {
		trending = DefaultTrendingSkills
	}

	type accum struct {
		frequency int
		entryIDs  []string
		dates     []time.Time
		first     time.Time
		last      time.Time
	}

	byLabel := make(map[string]*accum)
	var order []string

	for _, e := range entries {
		date := career.ParseDate(e.Date)
		for _, raw := range e.Skills {
			label := strings.TrimSpace(raw)
			if label == "" {
				continue
			}
			a, ok := byLabel[label]
			if !ok {
				a = &accum{first: date, last: date}
				byLabel[label] = a
				order = append(order, label)
			}
			a.frequency++
			a.entryIDs = append(a.entryIDs, e.ID)
			a.dates = append(a.dates, date)
			if date.Before(a.first) {
				a.first = date
			}
			if date.After(a.last) {
				a.last = date
			}
		}
	}

	total := len(entries)
	insights := make([]SkillInsight, 0, len(order))
	for _, label := range order {
		a := byLabel[label]
		insights = append(insights, SkillInsight{
			Skill:          label,
			Frequency:      a.frequency,
			RecencyScore:   recencyScore(now, a.last),
			Rarity:         rarityTier(a.frequency, total),
			Trending:       isTrending(label, trending),
			FirstUsed:      a.first,
			LastUsed:       a.last,
			RelatedEntries: a.entryIDs,
			GrowthTrend:    growthTrend(a.dates),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		if rarityRank[insights[i].Rarity] != rarityRank[insights[j].Rarity] {
			return rarityRank[insights[i].Rarity] > rarityRank[insights[j].Rarity]
		}
		return insights[i].Frequency > insights[j].Frequency
	})

	return insights
}

// SkillMatches reports whether a skill label and a keyword match by
// case-insensitive containment in either direction, so "React Native"
// matches "React" and "go" matches "Go".
func SkillMatches(label, keyword string) bool {
	l, k := strings.ToLower(label), strings.ToLower(keyword)
	return strings.Contains(l, k) || strings.Contains(k, l)
}

// recencyScore maps days since last use onto 0-100, losing one point per
// whole day. Future-dated usage counts as today.
func recencyScore(now, lastUsed time.Time) int {
	days := int(now.Sub(lastUsed).Hours() / 24)
	if days < 0 {
		days = 0
	}
	if days > 100 {
		return 0
	}
	return 100 - days
}

// rarityTier classifies how concentrated a skill is in the log. The ratio is
// occurrences over total entries, so a skill repeated within entries can
// exceed 1.0.
func rarityTier(frequency, totalEntries int) string {
	ratio := float64(frequency) / float64(totalEntries)
	switch {
	case ratio <= 0.10:
		return RarityUnique
	case ratio <= 0.30:
		return RarityRare
	default:
		return RarityCommon
	}
}

func isTrending(label string, trending []string) bool {
	for _, tr := range trending {
		if SkillMatches(label, tr) {
			return true
		}
	}
	return false
}

// growthTrend classifies usage direction by splitting the dated uses at the
// temporal midpoint of their range. Uses dated exactly on the midpoint count
// for neither half, so an even spread reads as stable. Fewer than two dated
// uses, or a zero-width range, is stable; decreasing additionally requires
// more than two uses.
func growthTrend(dates []time.Time) string {
	dated := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		if !d.IsZero() {
			dated = append(dated, d)
		}
	}
	if len(dated) < 2 {
		return GrowthStable
	}
	sort.Slice(dated, func(i, j int) bool { return dated[i].Before(dated[j]) })

	first, last := dated[0], dated[len(dated)-1]
	if !last.After(first) {
		return GrowthStable
	}
	mid := first.Add(last.Sub(first) / 2)

	var earlier, later int
	for _, d := range dated {
		switch {
		case d.Before(mid):
			earlier++
		case d.After(mid):
			later++
		}
	}

	switch {
	case later > earlier:
		return GrowthIncreasing
	case earlier > later && len(dated) > 2:
		return GrowthDecreasing
	default:
		return GrowthStable
	}
}
