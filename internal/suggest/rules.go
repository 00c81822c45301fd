package suggest

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/trackrecord/internal/analyzer"
)

// DefaultInDemandSkills is the built-in market-demand list the skill gap rule
// checks against. AnalysisContext.InDemandSkills overrides it.
var DefaultInDemandSkills = []string{
	"AI", "Machine Learning", "Cloud Computing", "DevOps", "TypeScript",
}

// UnderutilizedSkills flags unique-rarity skills that hardly get exercised.
// Skills is already sorted scarcest first, so the first three qualifying
// labels are also the most interesting ones.
func UnderutilizedSkills(ctx *AnalysisContext) []QuickWin {
	var names []string
	for _, s := range ctx.Skills {
		if s.Rarity == analyzer.RarityUnique && s.Frequency <= 2 {
			names = append(names, s.Skill)
			if len(names) == 3 {
				break
			}
		}
	}
	if len(names) == 0 {
		return nil
	}

	return []QuickWin{{
		Type:       "underutilized_skill",
		Title:      "Put your rare skills back to work",
		Priority:   PriorityMedium,
		Actionable: true,
		Description: fmt.Sprintf(
			"%s barely appear in your log. Rare skills are differentiators, and "+
				"they fade without use.",
			strings.Join(names, ", "),
		),
		SuggestedAction: "Pick one activity this month that exercises them, then log it.",
	}}
}

// MissingImpactDocs flags entries that record what happened but not what it
// changed.
func MissingImpactDocs(ctx *AnalysisContext) []QuickWin {
	var ids []string
	count := 0
	for _, e := range ctx.Entries {
		if e.HasImpact() {
			continue
		}
		count++
		if len(ids) < 5 {
			ids = append(ids, e.ID)
		}
	}
	if count == 0 {
		return nil
	}

	return []QuickWin{{
		Type:       "missing_documentation",
		Title:      "Document the impact of your work",
		Priority:   PriorityHigh,
		Actionable: true,
		Description: fmt.Sprintf(
			"Impact is missing on %d of %d entries. An entry without a recorded "+
				"outcome reads as activity, not achievement.",
			count, len(ctx.Entries),
		),
		RelatedEntries:  ids,
		SuggestedAction: "Add one sentence to each: what changed, and by how much.",
	}}
}

// SkillGaps compares the log against the in-demand list and flags skills with
// no coverage at all. Coverage means any logged skill matches the in-demand
// label by containment in either direction.
func SkillGaps(ctx *AnalysisContext) []QuickWin {
	demand := ctx.InDemandSkills
	if demand == nil {
		demand = DefaultInDemandSkills
	}

	var missing []string
	for _, want := range demand {
		covered := false
		for _, s := range ctx.Skills {
			if analyzer.SkillMatches(s.Skill, want) {
				covered = true
				break
			}
		}
		if !covered {
			missing = append(missing, want)
			if len(missing) == 3 {
				break
			}
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return []QuickWin{{
		Type:       "skill_gap",
		Title:      "Close a market skill gap",
		Priority:   PriorityLow,
		Actionable: true,
		Description: fmt.Sprintf(
			"Nothing in your log touches %s. Even a small learning entry starts "+
				"the record.",
			strings.Join(missing, ", "),
		),
		SuggestedAction: "Queue a learning activity for one of these and log it when done.",
	}}
}
