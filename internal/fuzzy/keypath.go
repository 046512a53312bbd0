// Package fuzzy ranks dotted theme key paths against a loosely typed pattern.
package fuzzy

import (
	"sort"
	"strings"
)

type Suggestion struct {
	KeyPath string
	Score   int
}

// Score rates how well pattern matches keyPath, from 0 (no match) to 100
// (case-insensitive equality). Pattern runes must appear in order.
func Score(pattern, keyPath string) int {
	if pattern == "" || keyPath == "" {
		return 0
	}

	p := []rune(strings.ToLower(pattern))
	k := []rune(strings.ToLower(keyPath))

	if string(p) == string(k) {
		return 100
	}

	positions := subsequence(p, k)
	if positions == nil {
		return 0
	}

	score := 40.0
	score += 30.0 * float64(len(p)) / float64(len(k))

	boundaries := 0
	for _, pos := range positions {
		if isSegmentStart(k, pos) {
			boundaries++
		}
	}
	score += 15.0 * float64(boundaries) / float64(len(p))

	score += 15.0 * float64(longestRun(positions)) / float64(len(p))

	// a pattern naming the leaf key exactly is almost always what was meant
	if leaf := k[lastSegment(k):]; string(leaf) == string(p) {
		score += 10.0
	}

	switch {
	case score > 99:
		return 99
	case score < 1:
		return 1
	}
	return int(score)
}

// Suggest returns the key paths scoring at least threshold, best first.
// A limit of zero returns every match.
func Suggest(pattern string, keyPaths []string, threshold, limit int) []Suggestion {
	out := make([]Suggestion, 0, len(keyPaths))
	for _, kp := range keyPaths {
		if s := Score(pattern, kp); s > 0 && s >= threshold {
			out = append(out, Suggestion{KeyPath: kp, Score: s})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].KeyPath < out[j].KeyPath
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func subsequence(pattern, text []rune) []int {
	positions := make([]int, 0, len(pattern))
	pi := 0
	for ti := 0; ti < len(text) && pi < len(pattern); ti++ {
		if pattern[pi] == text[ti] {
			positions = append(positions, ti)
			pi++
		}
	}
	if pi < len(pattern) {
		return nil
	}
	return positions
}

func isSegmentStart(text []rune, pos int) bool {
	if pos == 0 {
		return true
	}
	switch text[pos-1] {
	case '.', '_', '-':
		return true
	}
	return false
}

func longestRun(positions []int) int {
	best, run := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

func lastSegment(text []rune) int {
	for i := len(text) - 1; i >= 0; i-- {
		if text[i] == '.' {
			return i + 1
		}
	}
	return 0
}
