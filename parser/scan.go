package parser

import "strings"

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_'
}

// firstWord returns the leading run of non-whitespace characters.
func firstWord(s string) string {
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			return s[:i]
		}
	}
	return s
}

// word skips whitespace from offset and returns the following run of
// identifier characters plus the offset just past it. An empty word
// means no identifier was found.
func word(s string, from int) (string, int) {
	i := from
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	start := i
	for i < len(s) && isWordByte(s[i]) {
		i++
	}
	return s[start:i], i
}

// findKeyword locates the first occurrence of a keyword (one or more
// whitespace-separated words, case-insensitive, at word boundaries)
// outside quoted spans. It returns the start offset and the offset
// just past the last word, or -1, -1 when the keyword does not occur.
func findKeyword(s string, words ...string) (int, int) {
	inQuotes := false
	var quote byte

	for i := 0; i < len(s); i++ {
		c := s[i]
		if inQuotes {
			if c == quote {
				inQuotes = false
			}
			continue
		}
		if c == '\'' || c == '"' {
			inQuotes = true
			quote = c
			continue
		}
		if i > 0 && isWordByte(s[i-1]) {
			continue
		}
		if end, ok := matchWords(s, i, words); ok {
			return i, end
		}
	}
	return -1, -1
}

// matchWords matches a sequence of words starting exactly at offset i,
// requiring whitespace between words and a word boundary after the
// last one.
func matchWords(s string, i int, words []string) (int, bool) {
	pos := i
	for wi, w := range words {
		if wi > 0 {
			start := pos
			for pos < len(s) && isSpace(s[pos]) {
				pos++
			}
			if pos == start {
				return 0, false
			}
		}
		if pos+len(w) > len(s) || !strings.EqualFold(s[pos:pos+len(w)], w) {
			return 0, false
		}
		pos += len(w)
		if pos < len(s) && isWordByte(s[pos]) {
			return 0, false
		}
	}
	return pos, true
}
