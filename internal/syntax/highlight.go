package syntax

import "bytes"

// Highlight classifies one rendered byte for display.
type Highlight uint8

const (
	// HighlightNormal is unclassified text.
	HighlightNormal Highlight = iota
	// HighlightComment is a single-line comment.
	HighlightComment
	// HighlightMLComment is a multi-line comment.
	HighlightMLComment
	// HighlightKeyword1 through HighlightKeyword4 are the keyword groups.
	HighlightKeyword1
	HighlightKeyword2
	HighlightKeyword3
	HighlightKeyword4
	// HighlightString is a string literal.
	HighlightString
	// HighlightNumber is a numeric literal.
	HighlightNumber
	// HighlightMatch marks the current search match.
	HighlightMatch
)

// Keyword group marker bytes. A keyword's trailing marker selects the
// group it highlights as; the marker is not part of the matched text.
const (
	markerKeyword2 = '|'
	markerKeyword3 = '&'
	markerKeyword4 = '~'
)

// separators delimit tokens for keyword and number matching.
const separators = ",.()+-/*=~%<>[];"

// IsSeparator reports whether c delimits a token: whitespace, NUL, or
// one of a fixed punctuation set.
func IsSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return bytes.IndexByte([]byte(separators), c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// keywordGroup splits a keyword entry into its bare text and the
// highlight group its marker selects.
func keywordGroup(keyword string) (string, Highlight) {
	if keyword == "" {
		return keyword, HighlightKeyword1
	}
	switch keyword[len(keyword)-1] {
	case markerKeyword2:
		return keyword[:len(keyword)-1], HighlightKeyword2
	case markerKeyword3:
		return keyword[:len(keyword)-1], HighlightKeyword3
	case markerKeyword4:
		return keyword[:len(keyword)-1], HighlightKeyword4
	}
	return keyword, HighlightKeyword1
}

// ScanLine classifies every byte of one rendered row in a single
// forward pass. inComment seeds the scanner with the previous row's
// trailing block-comment state (false for row 0). It returns one tag
// per input byte and whether a block comment is still open at the end
// of the row. Unterminated strings and comments simply highlight to the
// end of the row; that is a valid outcome, not an error.
func ScanLine(render []byte, lang *Language, inComment bool) ([]Highlight, bool) {
	hl := make([]Highlight, len(render))
	if lang == nil {
		return hl, false
	}

	lineComment := []byte(lang.LineComment)
	blockStart := []byte(lang.BlockCommentStart)
	blockEnd := []byte(lang.BlockCommentEnd)

	prevSep := true
	var inString byte

	i := 0
	for i < len(render) {
		c := render[i]
		prevHl := HighlightNormal
		if i > 0 {
			prevHl = hl[i-1]
		}

		if len(lineComment) > 0 && inString == 0 && !inComment {
			if bytes.HasPrefix(render[i:], lineComment) {
				fill(hl[i:], HighlightComment)
				break
			}
		}

		if len(blockStart) > 0 && len(blockEnd) > 0 && inString == 0 {
			if inComment {
				hl[i] = HighlightMLComment
				if bytes.HasPrefix(render[i:], blockEnd) {
					fill(hl[i:i+len(blockEnd)], HighlightMLComment)
					i += len(blockEnd)
					inComment = false
					prevSep = true
					continue
				}
				i++
				continue
			} else if bytes.HasPrefix(render[i:], blockStart) {
				fill(hl[i:i+len(blockStart)], HighlightMLComment)
				i += len(blockStart)
				inComment = true
				continue
			}
		}

		if lang.Flags.Has(HighlightStrings) {
			if inString != 0 {
				hl[i] = HighlightString
				// A backslash escapes the next byte without closing
				// the string.
				if c == '\\' && i+1 < len(render) {
					hl[i+1] = HighlightString
					i += 2
					continue
				}
				if c == inString {
					inString = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				inString = c
				hl[i] = HighlightString
				i++
				continue
			}
		}

		if lang.Flags.Has(HighlightNumbers) {
			if (isDigit(c) && (prevSep || prevHl == HighlightNumber)) ||
				(c == '.' && prevHl == HighlightNumber) {
				hl[i] = HighlightNumber
				i++
				prevSep = false
				continue
			}
		}

		if prevSep {
			if n, group := matchKeyword(render[i:], lang.Keywords); n > 0 {
				fill(hl[i:i+n], group)
				i += n
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}

	return hl, inComment
}

// matchKeyword returns the length and group of the longest keyword
// matching at the start of rest. A keyword only matches when the byte
// following it is a separator (end of row counts as one).
func matchKeyword(rest []byte, keywords []string) (int, Highlight) {
	best := 0
	group := HighlightNormal
	for _, entry := range keywords {
		word, g := keywordGroup(entry)
		if len(word) <= best || !bytes.HasPrefix(rest, []byte(word)) {
			continue
		}
		if len(rest) > len(word) && !IsSeparator(rest[len(word)]) {
			continue
		}
		best = len(word)
		group = g
	}
	return best, group
}

func fill(hl []Highlight, h Highlight) {
	for i := range hl {
		hl[i] = h
	}
}
