// Package match implements fuzzy answer matching.
package match

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultThreshold is the minimum similarity ratio accepted by IsClose.
const DefaultThreshold = 0.8

// IsClose reports whether answer is close to correct at DefaultThreshold.
func IsClose(answer, correct string) bool {
	return IsCloseMatch(answer, correct, DefaultThreshold)
}

// IsCloseMatch reports whether answer is close enough to correct. Both sides
// are trimmed and lowercased; an exact match short-circuits, otherwise the
// similarity ratio must reach threshold.
func IsCloseMatch(answer, correct string, threshold float64) bool {
	a := Normalize(answer)
	b := Normalize(correct)
	if a == b {
		return true
	}
	return Ratio(a, b) >= threshold
}

// Normalize trims surrounding whitespace and lowercases s.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}

// Ratio returns the Ratcliff/Obershelp similarity of a and b in [0, 1]:
// twice the number of matched runes over the total rune count.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchedRunes(ra, rb)) / float64(total)
}

// matchedRunes sums the sizes of the non-overlapping matching blocks found by
// taking the longest common block and recursing on both sides of it.
func matchedRunes(a, b []rune) int {
	type span struct{ alo, ahi, blo, bhi int }
	matched := 0
	queue := []span{{0, len(a), 0, len(b)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		i, j, k := longestMatch(a, b, s.alo, s.ahi, s.blo, s.bhi)
		if k == 0 {
			continue
		}
		matched += k
		if s.alo < i && s.blo < j {
			queue = append(queue, span{s.alo, i, s.blo, j})
		}
		if i+k < s.ahi && j+k < s.bhi {
			queue = append(queue, span{i + k, s.ahi, j + k, s.bhi})
		}
	}
	return matched
}

// longestMatch finds the longest block a[i:i+k] == b[j:j+k] inside
// a[alo:ahi] and b[blo:bhi]. Ties go to the block starting earliest in a,
// then earliest in b.
func longestMatch(a, b []rune, alo, ahi, blo, bhi int) (besti, bestj, bestk int) {
	besti, bestj = alo, blo
	// prev[j-blo+1] is the length of the match ending at a[i-1], b[j].
	prev := make([]int, bhi-blo+1)
	cur := make([]int, bhi-blo+1)
	for i := alo; i < ahi; i++ {
		for j := blo; j < bhi; j++ {
			col := j - blo + 1
			if a[i] != b[j] {
				cur[col] = 0
				continue
			}
			k := prev[col-1] + 1
			cur[col] = k
			if k > bestk {
				besti, bestj, bestk = i-k+1, j-k+1, k
			}
		}
		prev, cur = cur, prev
	}
	return besti, bestj, bestk
}
