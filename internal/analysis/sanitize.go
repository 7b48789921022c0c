package analysis

import "strings"

const (
	thinkOpen  = "<think>"
	thinkClose = "</think>"
)

// SanitizeCompletion removes <think>...</think> reasoning regions from raw
// model output. Markers are matched case-insensitively; nested and repeated
// regions are all removed, and an unterminated opening marker strips the rest
// of the text. Total function: anything without markers passes through
// unchanged.
func SanitizeCompletion(raw string) string {
	var out strings.Builder
	out.Grow(len(raw))

	depth := 0
	i := 0
	for i < len(raw) {
		if markerAt(raw, i, thinkOpen) {
			depth++
			i += len(thinkOpen)
			continue
		}
		if depth > 0 && markerAt(raw, i, thinkClose) {
			depth--
			i += len(thinkClose)
			continue
		}
		if depth == 0 {
			out.WriteByte(raw[i])
		}
		i++
	}

	return out.String()
}

// markerAt reports whether the ASCII marker appears at byte offset i,
// ignoring case. Matching in place keeps byte offsets honest; lowercasing
// the whole string would shift them wherever Unicode folding changes a
// rune's encoded length.
func markerAt(s string, i int, marker string) bool {
	return i+len(marker) <= len(s) && strings.EqualFold(s[i:i+len(marker)], marker)
}
