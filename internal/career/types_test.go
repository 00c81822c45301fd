package career

import (
	"strings"
	"testing"
)

func TestValidCategory(t *testing.T) {
	for _, cat := range Categories {
		if !ValidCategory(cat) {
			t.Errorf("ValidCategory(%q) = false, want true", cat)
		}
	}
	for _, cat := range []string{"", "Achievement", "hobby"} {
		if ValidCategory(cat) {
			t.Errorf("ValidCategory(%q) = true, want false", cat)
		}
	}
}

func TestHasImpact(t *testing.T) {
	tests := []struct {
		impact string
		want   bool
	}{
		{"", false},
		{"   ", false},
		{"\t\n", false},
		{"cut p95 latency by 30%", true},
	}
	for _, tt := range tests {
		e := Entry{Impact: tt.impact}
		if got := e.HasImpact(); got != tt.want {
			t.Errorf("HasImpact(%q) = %v, want %v", tt.impact, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	valid := Entry{ID: "e1", Description: "Shipped the billing migration", Category: CategoryProject}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on valid entry: %v", err)
	}

	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{"missing id", Entry{Description: "x", Category: CategorySkill}, "missing an id"},
		{"blank description", Entry{ID: "e2", Description: "   ", Category: CategorySkill}, "no description"},
		{"unknown category", Entry{ID: "e3", Description: "x", Category: "hobby"}, "unknown category"},
	}
	for _, tt := range tests {
		err := tt.entry.Validate()
		if err == nil {
			t.Fatalf("%s: Validate() = nil, want error", tt.name)
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: Validate() = %q, want it to mention %q", tt.name, err, tt.want)
		}
	}
}
