// Package distance implements the weighted Damerau-Levenshtein edit
// distance used for "did you mean" corrections on mistyped route names and
// flag names. No pack dependency exposes configurable per-operation weights
// with a transposition term and an early cutoff, so this is hand-rolled
// against the exact rules the scanner needs; see DESIGN.md for the libraries
// considered and rejected.
package distance

import "sort"

// Weights assigns a cost to each of the four edit operations. A zero value
// for any field is treated as zero cost, not "use the default" — callers
// that want the classic unweighted distance should pass Weights{1,1,1,1}.
type Weights struct {
	Insertion     int
	Deletion      int
	Substitution  int
	Transposition int
}

// Unweighted is the classic cost assignment: every operation costs 1.
var Unweighted = Weights{Insertion: 1, Deletion: 1, Substitution: 1, Transposition: 1}

// DamerauLevenshtein computes the weighted Damerau-Levenshtein distance
// between a and b: the minimum total cost of insertions, deletions,
// substitutions, and adjacent transpositions needed to turn a into b.
func DamerauLevenshtein(a, b string, w Weights) int {
	d, _ := damerauLevenshteinCutoff(a, b, w, -1)
	return d
}

// damerauLevenshteinCutoff computes the distance same as DamerauLevenshtein,
// but if threshold >= 0 and every entry in two consecutive rows of the cost
// matrix already exceeds threshold (a transposition reaches back two rows),
// it stops early and returns (threshold+1, true)
// to signal "distance exceeds threshold, exact value not computed". The
// bool return is false when the exact distance was computed.
func damerauLevenshteinCutoff(a, b string, w Weights, threshold int) (int, bool) {
	ra := []rune(a)
	rb := []rune(b)
	n, m := len(ra), len(rb)

	if n == 0 {
		return m * w.Insertion, false
	}
	if m == 0 {
		return n * w.Deletion, false
	}

	// d[i][j] = distance between ra[:i] and rb[:j]
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
	}
	for i := 0; i <= n; i++ {
		d[i][0] = i * w.Deletion
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j * w.Insertion
	}

	prevRowMin := 0
	for i := 1; i <= n; i++ {
		rowMin := d[i][0]
		for j := 1; j <= m; j++ {
			cost := w.Substitution
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			best := d[i-1][j] + w.Deletion
			if v := d[i][j-1] + w.Insertion; v < best {
				best = v
			}
			if v := d[i-1][j-1] + cost; v < best {
				best = v
			}
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if v := d[i-2][j-2] + w.Transposition; v < best {
					best = v
				}
			}

			d[i][j] = best
			if best < rowMin {
				rowMin = best
			}
		}

		if threshold >= 0 && rowMin > threshold && prevRowMin > threshold {
			return threshold + 1, true
		}
		prevRowMin = rowMin
	}

	return d[n][m], false
}

// Corrections returns the subset of candidates within threshold distance of
// target, limited to those tied at the minimum distance achieved. Ties are
// broken by: candidates that start with target first, then lexicographic
// order. An empty slice (never nil) is returned when no candidate qualifies.
func Corrections(target string, candidates []string, w Weights, threshold int) []string {
	type scored struct {
		candidate string
		dist      int
	}

	var inRange []scored
	best := threshold + 1

	for _, c := range candidates {
		d, exceeded := damerauLevenshteinCutoff(target, c, w, threshold)
		if exceeded || d > threshold {
			continue
		}
		inRange = append(inRange, scored{candidate: c, dist: d})
		if d < best {
			best = d
		}
	}

	result := make([]string, 0, len(inRange))
	for _, s := range inRange {
		if s.dist == best {
			result = append(result, s.candidate)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		iPrefix := hasPrefixFold(result[i], target)
		jPrefix := hasPrefixFold(result[j], target)
		if iPrefix != jPrefix {
			return iPrefix
		}
		return result[i] < result[j]
	})

	return result
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return s[:len(prefix)] == prefix
}

// CorrectionsCI is the case-insensitive counterpart of Corrections: target
// and every candidate are folded to lowercase before scoring, but the
// original candidate spelling is what's returned. Used when the caller is
// matching under a case-insensitive route/flag style, so a typo like "FOo"
// still suggests "foo" instead of scoring a spurious case-difference edit
// against every candidate.
func CorrectionsCI(target string, candidates []string, w Weights, threshold int) []string {
	lowered := make([]string, len(candidates))
	byLower := make(map[string]string, len(candidates))
	for i, c := range candidates {
		lc := toLower(c)
		lowered[i] = lc
		if _, exists := byLower[lc]; !exists {
			byLower[lc] = c
		}
	}

	got := Corrections(toLower(target), lowered, w, threshold)

	result := make([]string, 0, len(got))
	seen := map[string]bool{}
	for _, lc := range got {
		orig := byLower[lc]
		if seen[orig] {
			continue
		}
		seen[orig] = true
		result = append(result, orig)
	}
	return result
}

func toLower(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r = r + ('a' - 'A')
		}
		out = append(out, r)
	}
	return string(out)
}
