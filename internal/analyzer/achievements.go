package analyzer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/blackwell-systems/trackrecord/internal/career"
)

// DefaultImpactKeywords is the built-in list of verbs that signal a
// documented result. Callers can pass their own list to ScoreAchievements;
// nil selects this one.
var DefaultImpactKeywords = []string{
	"increased", "decreased", "improved", "reduced", "achieved", "delivered",
	"saved", "generated", "optimized", "streamlined", "accelerated", "enhanced",
}

// Metric patterns, claimed in priority order. A span already taken by an
// earlier pattern is dropped, so "$10k" reads as one currency figure rather
// than a currency plus a magnitude.
var metricPatterns = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"percentage", regexp.MustCompile(`\d+%`)},
	{"timeframe", regexp.MustCompile(`(?i)\b\d+\s*(?:hour|day|week|month|year)s?\b`)},
	{"currency", regexp.MustCompile(`\$[\d,]+`)},
	{"magnitude", regexp.MustCompile(`\b\d+[kKmMbB]\b`)},
	{"people", regexp.MustCompile(`(?i)\b\d+\s*(?:user|customer|client)s?\b`)},
}

// ScoreAchievements scores every entry that documents an impact. Entries with
// blank impact text are not achievements and are skipped entirely. Each
// distinct keyword found in the combined impact and description text adds 10
// points; any extracted metric adds 30, with another 20 on top when one of
// them is a percentage; the achievement category adds 15. Scores clamp to
// 100. Results are sorted by score descending, ties keeping input order.
func ScoreAchievements(entries []career.Entry, keywords []string) []AchievementInsight {
	if keywords == nil {
		keywords = DefaultImpactKeywords
	}

	var insights []AchievementInsight
	for _, e := range entries {
		if !e.HasImpact() {
			continue
		}

		text := e.Impact + " " + e.Description
		lower := strings.ToLower(text)
		matches := 0
		for _, kw := range keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				matches++
			}
		}

		metrics := ExtractMetrics(text)

		score := matches * 10
		if metrics.Any() {
			score += 30
		}
		if len(metrics.Percentages) > 0 {
			score += 20
		}
		if e.Category == career.CategoryAchievement {
			score += 15
		}
		if score > 100 {
			score = 100
		}

		insights = append(insights, AchievementInsight{
			Entry:                  e,
			Score:                  score,
			Tier:                   scoreTier(score),
			KeywordMatches:         matches,
			Metrics:                metrics,
			HasQuantifiableResults: metrics.Any(),
		})
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Score > insights[j].Score
	})

	return insights
}

// ExtractMetrics pulls quantifiable figures out of free text. Percentages and
// timeframes land in their own buckets; currency amounts, order-of-magnitude
// counts, and people counts land in Numbers. Each character of the text is
// claimed by at most one figure.
func ExtractMetrics(text string) MetricSet {
	var set MetricSet
	var claimed [][]int

	for _, p := range metricPatterns {
		for _, span := range p.re.FindAllStringIndex(text, -1) {
			if overlapsAny(span, claimed) {
				continue
			}
			claimed = append(claimed, span)
			value := text[span[0]:span[1]]
			switch p.kind {
			case "percentage":
				set.Percentages = append(set.Percentages, value)
			case "timeframe":
				set.Timeframes = append(set.Timeframes, value)
			default:
				set.Numbers = append(set.Numbers, value)
			}
		}
	}

	return set
}

// overlapsAny reports whether span intersects any already-claimed span.
func overlapsAny(span []int, claimed [][]int) bool {
	for _, c := range claimed {
		if span[0] < c[1] && c[0] < span[1] {
			return true
		}
	}
	return false
}

// scoreTier buckets a 0-100 achievement score.
func scoreTier(score int) string {
	switch {
	case score >= 70:
		return TierHigh
	case score >= 40:
		return TierMedium
	default:
		return TierLow
	}
}
