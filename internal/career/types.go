// Package career defines the activity log domain: entries, their categories,
// and loading of entry exports from disk.
package career

import (
	"fmt"
	"strings"
)

// Entry categories.
const (
	CategoryAchievement = "achievement"
	CategorySkill       = "skill"
	CategoryProject     = "project"
	CategoryLeadership  = "leadership"
	CategoryLearning    = "learning"
	CategoryNetworking  = "networking"
)

// Categories lists every valid entry category.
var Categories = []string{
	CategoryAchievement,
	CategorySkill,
	CategoryProject,
	CategoryLeadership,
	CategoryLearning,
	CategoryNetworking,
}

// Entry represents a single logged career activity.
type Entry struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	Impact      string   `json:"impact,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Project     string   `json:"project,omitempty"`
	Category    string   `json:"category"`
}

// HasImpact reports whether the entry documents a concrete impact.
// Whitespace-only impact text counts as undocumented.
func (e Entry) HasImpact() bool {
	return strings.TrimSpace(e.Impact) != ""
}

// ValidCategory reports whether cat is one of the known entry categories.
func ValidCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Validate checks the fields required to store an entry. Analysis is more
// forgiving than storage: the analyzers accept anything, the store does not.
func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("entry is missing an id")
	}
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("entry %s has no description", e.ID)
	}
	if !ValidCategory(e.Category) {
		return fmt.Errorf("entry %s has unknown category %q", e.ID, e.Category)
	}
	return nil
}
