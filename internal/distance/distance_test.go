package distance_test

import (
	"testing"

	"github.com/dekarrin/wrangle/internal/distance"
	"github.com/stretchr/testify/assert"
)

func TestDamerauLevenshtein(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		w    distance.Weights
		want int
	}{
		{"identical", "foo", "foo", distance.Unweighted, 0},
		{"single substitution", "foo", "fog", distance.Unweighted, 1},
		{"single insertion", "foo", "fooo", distance.Unweighted, 1},
		{"single deletion", "foo", "fo", distance.Unweighted, 1},
		{"adjacent transposition", "ab", "ba", distance.Unweighted, 1},
		{"transposition costs more when weighted", "ab", "ba", distance.Weights{Insertion: 1, Deletion: 1, Substitution: 1, Transposition: 3}, 2},
		{"empty to non-empty", "", "abc", distance.Unweighted, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := distance.DamerauLevenshtein(tt.a, tt.b, tt.w)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCorrections(t *testing.T) {
	candidates := []string{"status", "start", "stop", "restart"}

	got := distance.Corrections("sttus", candidates, distance.Unweighted, 2)
	assert.Equal(t, []string{"status"}, got)
}

func TestCorrections_TieBreakPrefixThenLexicographic(t *testing.T) {
	candidates := []string{"bar", "baz"}
	got := distance.Corrections("ba", candidates, distance.Unweighted, 2)
	assert.Equal(t, []string{"bar", "baz"}, got)
}

func TestCorrections_NoneWithinThreshold(t *testing.T) {
	got := distance.Corrections("xyz", []string{"status"}, distance.Unweighted, 1)
	assert.Empty(t, got)
}

func TestCorrectionsCI_IgnoresCaseDifference(t *testing.T) {
	got := distance.CorrectionsCI("FOo", []string{"foo", "bar"}, distance.Unweighted, 2)
	assert.Equal(t, []string{"foo"}, got)
}

func TestCorrectionsCI_PreservesOriginalSpelling(t *testing.T) {
	got := distance.CorrectionsCI("STATUS", []string{"Status", "stop"}, distance.Unweighted, 2)
	assert.Equal(t, []string{"Status"}, got)
}
