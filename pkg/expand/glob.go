package expand

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sdejongh/wfam/internal/platform"
)

// HasWildcard reports whether s contains a * or ? wildcard
func HasWildcard(s string) bool {
	return strings.ContainsAny(s, "*?")
}

// Match reports whether path matches pattern segment by segment.
// Both are split on directory separators and must have the same number of
// segments. Within a segment * matches any run of characters and ? matches
// exactly one; every other character is literal and compared without regard
// to case.
func Match(pattern, path string) bool {
	patSegs := platform.SplitSegments(pattern)
	pathSegs := platform.SplitSegments(path)
	if len(patSegs) != len(pathSegs) {
		return false
	}
	for i := range patSegs {
		if !MatchSegment(patSegs[i], pathSegs[i]) {
			return false
		}
	}
	return true
}

// MatchSegment matches a single path segment against a glob segment
func MatchSegment(pattern, name string) bool {
	// Backtracking over the most recent star only; this is linear for
	// patterns without stars and quadratic in the worst case.
	var starPat, starName = -1, -1
	p, n := 0, 0
	for n < len(name) {
		if p < len(pattern) {
			pc, pw := utf8.DecodeRuneInString(pattern[p:])
			switch pc {
			case '*':
				starPat, starName = p, n
				p += pw
				continue
			case '?':
				_, nw := utf8.DecodeRuneInString(name[n:])
				p += pw
				n += nw
				continue
			default:
				nc, nw := utf8.DecodeRuneInString(name[n:])
				if equalFold(pc, nc) {
					p += pw
					n += nw
					continue
				}
			}
		}
		if starPat < 0 {
			return false
		}
		// Let the last star swallow one more character
		_, nw := utf8.DecodeRuneInString(name[starName:])
		starName += nw
		p, n = starPat+1, starName
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}

func equalFold(a, b rune) bool {
	if a == b {
		return true
	}
	return unicode.SimpleFold(a) == b || unicode.ToLower(a) == unicode.ToLower(b)
}
