package output

import (
	"strings"
	"testing"
)

func TestScoreBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	bar := ScoreBar(50, 10)
	if !strings.Contains(bar, "█████░░░░░") {
		t.Errorf("bar = %q, want half filled", bar)
	}
	if !strings.Contains(bar, "50/100") {
		t.Errorf("bar = %q, want the numeric score", bar)
	}
}

func TestScoreBar_Clamps(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if bar := ScoreBar(150, 10); !strings.Contains(bar, strings.Repeat("█", 10)) {
		t.Errorf("over-range bar = %q, want fully filled", bar)
	}
	if bar := ScoreBar(-5, 10); !strings.Contains(bar, strings.Repeat("░", 10)) {
		t.Errorf("under-range bar = %q, want fully empty", bar)
	}
}

func TestTrendArrow(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := []struct {
		name           string
		delta          float64
		suffix         string
		higherIsBetter bool
		want           string
	}{
		{"up", 4, "", true, "▲ +4.0"},
		{"down", -2.5, "", true, "▼ -2.5"},
		{"flat", 0, "", true, "─"},
		{"percent", 12, "%", true, "▲ +12.0%"},
		{"lower is better", -3, "", false, "▼ -3.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TrendArrow(tc.delta, tc.suffix, tc.higherIsBetter); got != tc.want {
				t.Errorf("TrendArrow(%v) = %q, want %q", tc.delta, got, tc.want)
			}
		})
	}
}

func TestSection(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	s := Section("Top Skills")
	if !strings.Contains(s, "Top Skills") {
		t.Errorf("section = %q", s)
	}
	if !strings.Contains(s, "─") {
		t.Errorf("section = %q, want a rule", s)
	}
}
