package fuzzy

import (
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		keyPath  string
		minScore int
		maxScore int
	}{
		{name: "exact", pattern: "text.primary", keyPath: "text.primary", minScore: 100, maxScore: 100},
		{name: "exact mixed case", pattern: "Text.Primary", keyPath: "text.primary", minScore: 100, maxScore: 100},
		{name: "leaf only", pattern: "primary", keyPath: "text.primary", minScore: 80, maxScore: 99},
		{name: "typo subsequence", pattern: "brnd.primry", keyPath: "brand.primary", minScore: 50, maxScore: 99},
		{name: "out of order", pattern: "yrp", keyPath: "text.primary", minScore: 0, maxScore: 0},
		{name: "no match", pattern: "xyz", keyPath: "text.primary", minScore: 0, maxScore: 0},
		{name: "empty pattern", pattern: "", keyPath: "text.primary", minScore: 0, maxScore: 0},
		{name: "pattern longer than key", pattern: "metrics.padding", keyPath: "metrics", minScore: 0, maxScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(tt.pattern, tt.keyPath)
			if score < tt.minScore || score > tt.maxScore {
				t.Errorf("Score(%q, %q) = %d, want between %d and %d",
					tt.pattern, tt.keyPath, score, tt.minScore, tt.maxScore)
			}
		})
	}
}

func TestScore_ShorterPathRanksHigher(t *testing.T) {
	short := Score("primary", "text.primary")
	long := Score("primary", "semantic.primary")
	partialLeaf := Score("primary", "ui.primary_bg")

	if short <= long {
		t.Errorf("expected text.primary (%d) to beat semantic.primary (%d)", short, long)
	}
	if long <= partialLeaf {
		t.Errorf("expected exact leaf semantic.primary (%d) to beat ui.primary_bg (%d)", long, partialLeaf)
	}
}

func TestSuggest(t *testing.T) {
	keys := []string{
		"ui.primary_bg",
		"semantic.primary",
		"metrics.padding",
		"text.primary",
	}

	got := Suggest("primary", keys, 0, 0)
	want := []string{"text.primary", "semantic.primary", "ui.primary_bg"}

	if len(got) != len(want) {
		t.Fatalf("Suggest returned %d results, want %d: %+v", len(got), len(want), got)
	}
	for i, s := range got {
		if s.KeyPath != want[i] {
			t.Errorf("result %d = %s, want %s", i, s.KeyPath, want[i])
		}
		if i > 0 && s.Score > got[i-1].Score {
			t.Errorf("results not sorted by score: %+v", got)
		}
	}
}

func TestSuggest_ThresholdAndLimit(t *testing.T) {
	keys := []string{"text.primary", "semantic.primary", "ui.primary_bg"}

	filtered := Suggest("primary", keys, 75, 0)
	if len(filtered) != 2 {
		t.Errorf("expected threshold to drop ui.primary_bg, got %+v", filtered)
	}

	limited := Suggest("primary", keys, 0, 1)
	if len(limited) != 1 || limited[0].KeyPath != "text.primary" {
		t.Errorf("expected only text.primary, got %+v", limited)
	}

	if none := Suggest("zzz", keys, 0, 0); len(none) != 0 {
		t.Errorf("expected no suggestions, got %+v", none)
	}
}

func BenchmarkSuggest(b *testing.B) {
	keys := []string{
		"semantic.primary", "semantic.secondary", "semantic.success", "semantic.error",
		"text.primary", "text.secondary", "text.muted",
		"ui.border", "ui.selected_bg", "ui.selected_fg", "ui.header_bg", "ui.header_fg",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Suggest("selfg", keys, 40, 3)
	}
}
