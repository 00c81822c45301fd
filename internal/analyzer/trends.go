package analyzer

import (
	"sort"
	"strings"

	"github.com/blackwell-systems/trackrecord/internal/career"
)

// maxTrendMonths caps how many monthly buckets AnalyzeTrends returns.
const maxTrendMonths = 12

// AnalyzeTrends buckets entries by calendar month and grades each month's
// momentum. Months are keyed YYYY-MM from the parsed entry date; entries with
// unparseable dates collect under the zero month, which sorts oldest. Most
// recent month first, at most twelve months.
func AnalyzeTrends(entries []career.Entry) []CareerTrend {
	if len(entries) == 0 {
		return nil
	}

	type accum struct {
		count      int
		impactful  int
		skills     []string
		skillSeen  map[string]bool
		categories []string
		catSeen    map[string]bool
	}

	byPeriod := make(map[string]*accum)
	for _, e := range entries {
		period := career.ParseDate(e.Date).Format("2006-01")
		a, ok := byPeriod[period]
		if !ok {
			a = &accum{
				skillSeen: make(map[string]bool),
				catSeen:   make(map[string]bool),
			}
			byPeriod[period] = a
		}
		a.count++
		if e.HasImpact() {
			a.impactful++
		}
		for _, raw := range e.Skills {
			label := strings.TrimSpace(raw)
			if label == "" || a.skillSeen[label] {
				continue
			}
			a.skillSeen[label] = true
			a.skills = append(a.skills, label)
		}
		if e.Category != "" && !a.catSeen[e.Category] {
			a.catSeen[e.Category] = true
			a.categories = append(a.categories, e.Category)
		}
	}

	trends := make([]CareerTrend, 0, len(byPeriod))
	for period, a := range byPeriod {
		trends = append(trends, CareerTrend{
			Period:           period,
			ActivityCount:    a.count,
			SkillsLearned:    a.skills,
			CategoriesActive: a.categories,
			ImpactfulEntries: a.impactful,
			Momentum:         monthMomentum(a.count, a.impactful),
		})
	}

	// Zero-padded YYYY-MM compares correctly as a string.
	sort.Slice(trends, func(i, j int) bool { return trends[i].Period > trends[j].Period })

	if len(trends) > maxTrendMonths {
		trends = trends[:maxTrendMonths]
	}
	return trends
}

// monthMomentum grades a month by volume and by how much of it was impactful.
func monthMomentum(count, impactful int) string {
	ratio := float64(impactful) / float64(count)
	switch {
	case count >= 5 && ratio >= 0.6:
		return MomentumHigh
	case count >= 3 && ratio >= 0.4:
		return MomentumMedium
	default:
		return MomentumLow
	}
}
