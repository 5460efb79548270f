package syntax

import (
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Color is a 24-bit display color for one highlight tag. Background
// selects whether the color applies to the cell background instead of
// the foreground (used by the search-match tag).
type Color struct {
	R, G, B    uint8
	Background bool
}

// Hex returns the #RRGGBB form of the color.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Theme maps highlight tags to display colors. HighlightNormal has no
// entry: normal text renders in the terminal's default colors.
type Theme struct {
	colors map[Highlight]Color
}

// themeKeys maps theme file keys to highlight tags.
var themeKeys = []struct {
	key string
	tag Highlight
}{
	{"comment", HighlightComment},
	{"mlcomment", HighlightMLComment},
	{"keyword1", HighlightKeyword1},
	{"keyword2", HighlightKeyword2},
	{"keyword3", HighlightKeyword3},
	{"keyword4", HighlightKeyword4},
	{"string", HighlightString},
	{"number", HighlightNumber},
	{"match", HighlightMatch},
}

// DefaultTheme returns the built-in color scheme.
func DefaultTheme() *Theme {
	return &Theme{colors: map[Highlight]Color{
		HighlightComment:   {R: 90, G: 90, B: 90},
		HighlightMLComment: {R: 90, G: 90, B: 90},
		HighlightKeyword1:  {R: 211, G: 33, B: 45},
		HighlightKeyword2:  {R: 55, G: 187, B: 255},
		HighlightKeyword3:  {R: 128, G: 255, B: 128},
		HighlightKeyword4:  {R: 230, G: 38, B: 0},
		HighlightString:    {R: 255, G: 166, B: 77},
		HighlightNumber:    {R: 196, G: 77, B: 255},
		HighlightMatch:     {R: 150, G: 150, B: 150, Background: true},
	}}
}

// Color returns the display color for a tag. ok is false for tags that
// render in the terminal's default colors.
func (t *Theme) Color(h Highlight) (Color, bool) {
	c, ok := t.colors[h]
	return c, ok
}

// LoadTheme returns the default theme with any overrides from the JSON
// file at path applied. A missing or unreadable file yields the default
// theme; individual entries that fail to parse are skipped.
func LoadTheme(path string) *Theme {
	t := DefaultTheme()
	data, err := os.ReadFile(path)
	if err != nil {
		return t
	}
	for _, entry := range themeKeys {
		v := gjson.GetBytes(data, entry.key)
		if !v.Exists() {
			continue
		}
		parsed, err := colorful.Hex(v.String())
		if err != nil {
			continue
		}
		c := t.colors[entry.tag]
		c.R = uint8(parsed.R*255 + 0.5)
		c.G = uint8(parsed.G*255 + 0.5)
		c.B = uint8(parsed.B*255 + 0.5)
		t.colors[entry.tag] = c
	}
	return t
}

// DefaultThemeJSON renders the built-in color scheme as a theme file,
// giving users a complete starting point for overrides.
func DefaultThemeJSON() ([]byte, error) {
	t := DefaultTheme()
	out := []byte("{}")
	var err error
	for _, entry := range themeKeys {
		out, err = sjson.SetBytes(out, entry.key, t.colors[entry.tag].Hex())
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// WriteDefaultTheme writes the default theme file to path unless a file
// already exists there.
func WriteDefaultTheme(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	data, err := DefaultThemeJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
