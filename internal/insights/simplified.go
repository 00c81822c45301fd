package insights

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/blackwell-systems/trackrecord/internal/career"
	"github.com/blackwell-systems/trackrecord/internal/suggest"
)

// Windows and caps for the simplified bundle.
const (
	maxSimpleSkills = 5
	maxRecentWins   = 3
	maxActions      = 4
	winDays         = 60
	recentDays      = 30
	truncateAt      = 80
)

// BuildSimplified computes the compact dashboard view straight from the
// entries. It shares nothing with Build beyond the log itself: top skills
// here are a raw tally, with no rarity or recency weighting.
func BuildSimplified(entries []career.Entry, now time.Time) SimplifiedInsights {
	return SimplifiedInsights{
		TopSkills:        topSkillLabels(entries),
		RecentWins:       recentWinLines(entries, now),
		Momentum:         pace(entries, now),
		PriorityActions:  priorityActions(entries, now),
		TotalEntries:     len(entries),
		EntriesThisMonth: countThisMonth(entries, now),
		UniqueSkills:     countDistinctSkills(entries),
	}
}

// topSkillLabels tallies skill labels and returns the five most frequent,
// first-encountered order breaking ties.
func topSkillLabels(entries []career.Entry) []string {
	counts := make(map[string]int)
	var order []string
	for _, e := range entries {
		for _, raw := range e.Skills {
			label := strings.TrimSpace(raw)
			if label == "" {
				continue
			}
			if _, ok := counts[label]; !ok {
				order = append(order, label)
			}
			counts[label]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > maxSimpleSkills {
		order = order[:maxSimpleSkills]
	}
	return order
}

// recentWinLines lists the latest documented wins, newest first, each
// truncated for dashboard width.
func recentWinLines(entries []career.Entry, now time.Time) []string {
	type dated struct {
		description string
		date        time.Time
	}

	cutoff := now.AddDate(0, 0, -winDays)
	var wins []dated
	for _, e := range entries {
		if !e.HasImpact() {
			continue
		}
		if d := career.ParseDate(e.Date); d.After(cutoff) {
			wins = append(wins, dated{e.Description, d})
		}
	}
	if len(wins) == 0 {
		return nil
	}

	sort.SliceStable(wins, func(i, j int) bool { return wins[i].date.After(wins[j].date) })
	if len(wins) > maxRecentWins {
		wins = wins[:maxRecentWins]
	}

	lines := make([]string, len(wins))
	for i, w := range wins {
		lines[i] = truncate(w.description, truncateAt)
	}
	return lines
}

// truncate shortens s to limit runes with a trailing ellipsis marker.
// Strings at or under the limit come back untouched.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// pace grades the last thirty days against the thirty before them. Growth
// needs rising volume and enough documented impact behind it.
func pace(entries []career.Entry, now time.Time) string {
	if len(entries) < 3 {
		return PaceNeedsAttention
	}

	recentCutoff := now.AddDate(0, 0, -recentDays)
	prevCutoff := now.AddDate(0, 0, -2*recentDays)

	var recentCount, recentImpactful, prevCount int
	for _, e := range entries {
		d := career.ParseDate(e.Date)
		switch {
		case d.After(recentCutoff):
			recentCount++
			if e.HasImpact() {
				recentImpactful++
			}
		case d.After(prevCutoff):
			prevCount++
		}
	}

	impactFloor := float64(recentCount) * 0.3
	if impactFloor < 1 {
		impactFloor = 1
	}

	switch {
	case recentCount > prevCount && float64(recentImpactful) >= impactFloor:
		return PaceGrowing
	case recentCount < 2 || recentImpactful == 0:
		return PaceNeedsAttention
	default:
		return PaceSteady
	}
}

// priorityActions builds up to four next steps in fixed rule order.
func priorityActions(entries []career.Entry, now time.Time) []PriorityAction {
	var actions []PriorityAction

	undocumented := 0
	for _, e := range entries {
		if !e.HasImpact() {
			undocumented++
		}
	}
	if undocumented > 0 {
		actions = append(actions, PriorityAction{
			Type:          "add-impact",
			Title:         "Add impact to your entries",
			Description:   fmt.Sprintf("%d of your entries record no outcome.", undocumented),
			Priority:      suggest.PriorityHigh,
			EstimatedTime: "5 minutes per entry",
		})
	}

	recentCutoff := now.AddDate(0, 0, -recentDays)
	recentSkills := make(map[string]bool)
	recentCount := 0
	for _, e := range entries {
		if !career.ParseDate(e.Date).After(recentCutoff) {
			continue
		}
		recentCount++
		for _, raw := range e.Skills {
			if label := strings.TrimSpace(raw); label != "" {
				recentSkills[label] = true
			}
		}
	}
	if len(recentSkills) < 3 {
		actions = append(actions, PriorityAction{
			Type:          "document-skills",
			Title:         "Tag the skills you are using",
			Description:   fmt.Sprintf("Only %d distinct skills tagged in the last %d days.", len(recentSkills), recentDays),
			Priority:      suggest.PriorityMedium,
			EstimatedTime: "10 minutes",
		})
	}
	if recentCount < 3 {
		actions = append(actions, PriorityAction{
			Type:          "log-activities",
			Title:         "Log what you have been doing",
			Description:   fmt.Sprintf("Only %d entries in the last %d days.", recentCount, recentDays),
			Priority:      suggest.PriorityHigh,
			EstimatedTime: "5 minutes",
		})
	}

	if len(entries) > 0 {
		networking := 0
		for _, e := range entries {
			if e.Category == career.CategoryNetworking {
				networking++
			}
		}
		if float64(networking) < float64(len(entries))*0.1 {
			actions = append(actions, PriorityAction{
				Type:          "networking",
				Title:         "Make time for networking",
				Description:   "Networking activity is under a tenth of your log.",
				Priority:      suggest.PriorityMedium,
				EstimatedTime: "15 minutes",
			})
		}
	}

	if len(actions) > maxActions {
		actions = actions[:maxActions]
	}
	return actions
}

// countThisMonth counts entries dated in now's calendar month.
func countThisMonth(entries []career.Entry, now time.Time) int {
	month := now.Format("2006-01")
	count := 0
	for _, e := range entries {
		if career.ParseDate(e.Date).Format("2006-01") == month {
			count++
		}
	}
	return count
}

// countDistinctSkills counts distinct trimmed skill labels across the log.
func countDistinctSkills(entries []career.Entry) int {
	seen := make(map[string]bool)
	for _, e := range entries {
		for _, raw := range e.Skills {
			if label := strings.TrimSpace(raw); label != "" {
				seen[label] = true
			}
		}
	}
	return len(seen)
}
