package syntax

import "testing"

// testLang is a small language exercising every highlighter feature.
var testLang = &Language{
	Name:              "Test",
	FileMatch:         []string{".tst"},
	Keywords:          []string{"if", "return", "func|", "chan&", "go~", "in", "int|"},
	LineComment:       "%",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	Flags:             HighlightNumbers | HighlightStrings,
}

func tagsEqual(got []Highlight, want []Highlight) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func repeat(h Highlight, n int) []Highlight {
	out := make([]Highlight, n)
	for i := range out {
		out[i] = h
	}
	return out
}

func TestScanLine_Length(t *testing.T) {
	lines := []string{"", "plain text", "if x % comment", `"unterminated`}
	for _, line := range lines {
		hl, _ := ScanLine([]byte(line), testLang, false)
		if len(hl) != len(line) {
			t.Errorf("ScanLine(%q) returned %d tags, expected %d", line, len(hl), len(line))
		}
	}
}

func TestScanLine_NilLanguage(t *testing.T) {
	hl, open := ScanLine([]byte("if 123 % x"), nil, false)
	if open {
		t.Error("expected no open comment without a language")
	}
	if !tagsEqual(hl, repeat(HighlightNormal, 10)) {
		t.Errorf("expected all-normal tags, got %v", hl)
	}
}

func TestScanLine_LineComment(t *testing.T) {
	// "func" is a group-2 keyword, "main" plain text, and everything
	// from the comment token onward is comment.
	hl, open := ScanLine([]byte("func main % trailing"), testLang, false)
	if open {
		t.Fatal("line comment must not open a block comment")
	}

	want := repeat(HighlightKeyword2, 4)
	want = append(want, repeat(HighlightNormal, 6)...) // " main "
	want = append(want, repeat(HighlightComment, 10)...)
	if !tagsEqual(hl, want) {
		t.Errorf("tags = %v, expected %v", hl, want)
	}
}

func TestScanLine_KeywordGroups(t *testing.T) {
	tests := []struct {
		line     string
		expected Highlight
	}{
		{"if", HighlightKeyword1},
		{"func", HighlightKeyword2},
		{"chan", HighlightKeyword3},
		{"go", HighlightKeyword4},
	}
	for _, tt := range tests {
		hl, _ := ScanLine([]byte(tt.line), testLang, false)
		if !tagsEqual(hl, repeat(tt.expected, len(tt.line))) {
			t.Errorf("ScanLine(%q) = %v, expected group %d", tt.line, hl, tt.expected)
		}
	}
}

func TestScanLine_KeywordNeedsSeparators(t *testing.T) {
	// "iffy" must not light up even though it starts with a keyword,
	// and a keyword directly after a non-separator stays normal.
	hl, _ := ScanLine([]byte("iffy xif"), testLang, false)
	if !tagsEqual(hl, repeat(HighlightNormal, 8)) {
		t.Errorf("expected all-normal tags, got %v", hl)
	}
}

func TestScanLine_LongestKeywordWins(t *testing.T) {
	// Both "in" and "int|" are declared; "int" must match the longer
	// entry and take its group.
	hl, _ := ScanLine([]byte("int x"), testLang, false)
	want := append(repeat(HighlightKeyword2, 3), HighlightNormal, HighlightNormal)
	if !tagsEqual(hl, want) {
		t.Errorf("tags = %v, expected %v", hl, want)
	}
}

func TestScanLine_Strings(t *testing.T) {
	hl, _ := ScanLine([]byte(`x "a\"b" y`), testLang, false)
	want := []Highlight{
		HighlightNormal, HighlightNormal, // x space
		HighlightString, HighlightString, HighlightString, HighlightString,
		HighlightString, HighlightString, // "a\"b"
		HighlightNormal, HighlightNormal, // space y
	}
	if !tagsEqual(hl, want) {
		t.Errorf("tags = %v, expected %v", hl, want)
	}
}

func TestScanLine_UnterminatedString(t *testing.T) {
	hl, open := ScanLine([]byte(`"never closed`), testLang, false)
	if open {
		t.Fatal("a string must not open a block comment")
	}
	if !tagsEqual(hl, repeat(HighlightString, 13)) {
		t.Errorf("expected the whole row tagged String, got %v", hl)
	}
}

func TestScanLine_Numbers(t *testing.T) {
	// Digits only count after a separator or another number byte, and
	// '.' only inside a number.
	hl, _ := ScanLine([]byte("a1 12.5"), testLang, false)
	want := []Highlight{
		HighlightNormal, HighlightNormal, HighlightNormal, // a1 space
		HighlightNumber, HighlightNumber, HighlightNumber, HighlightNumber,
	}
	if !tagsEqual(hl, want) {
		t.Errorf("tags = %v, expected %v", hl, want)
	}
}

func TestScanLine_BlockCommentOpens(t *testing.T) {
	hl, open := ScanLine([]byte("x /* open"), testLang, false)
	if !open {
		t.Fatal("expected the block comment to stay open")
	}
	want := append(repeat(HighlightNormal, 2), repeat(HighlightMLComment, 7)...)
	if !tagsEqual(hl, want) {
		t.Errorf("tags = %v, expected %v", hl, want)
	}
}

func TestScanLine_BlockCommentSeed(t *testing.T) {
	// The same row scans differently depending on the seed from the
	// previous row.
	line := []byte("still */ done")

	hl, open := ScanLine(line, testLang, true)
	if open {
		t.Fatal("expected the seeded comment to close")
	}
	want := append(repeat(HighlightMLComment, 8), repeat(HighlightNormal, 5)...)
	if !tagsEqual(hl, want) {
		t.Errorf("seeded tags = %v, expected %v", hl, want)
	}

	hl, open = ScanLine(line, testLang, false)
	if open {
		t.Fatal("unseeded row must not open a comment")
	}
	if !tagsEqual(hl, repeat(HighlightNormal, len(line))) {
		t.Errorf("unseeded tags = %v, expected all normal", hl)
	}
}

func TestScanLine_LineCommentIgnoredInsideBlock(t *testing.T) {
	hl, open := ScanLine([]byte("% not a comment"), testLang, true)
	if !open {
		t.Fatal("expected the block comment to stay open")
	}
	if !tagsEqual(hl, repeat(HighlightMLComment, 15)) {
		t.Errorf("tags = %v, expected all MLComment", hl)
	}
}

func TestScanLine_CommentTokenInString(t *testing.T) {
	hl, _ := ScanLine([]byte(`"%" x`), testLang, false)
	want := []Highlight{
		HighlightString, HighlightString, HighlightString,
		HighlightNormal, HighlightNormal,
	}
	if !tagsEqual(hl, want) {
		t.Errorf("tags = %v, expected %v", hl, want)
	}
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []byte(",.()+-/*=~%<>[]; \t") {
		if !IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = false, expected true", c)
		}
	}
	if !IsSeparator(0) {
		t.Error("IsSeparator(NUL) = false, expected true")
	}
	for _, c := range []byte("aZ0_\"'") {
		if IsSeparator(c) {
			t.Errorf("IsSeparator(%q) = true, expected false", c)
		}
	}
}
