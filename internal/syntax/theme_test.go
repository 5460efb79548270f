package syntax

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	c, ok := theme.Color(HighlightString)
	if !ok {
		t.Fatal("expected a color for the String tag")
	}
	if c.R != 255 || c.G != 166 || c.B != 77 || c.Background {
		t.Errorf("String color = %+v, expected foreground 255/166/77", c)
	}

	c, ok = theme.Color(HighlightMatch)
	if !ok {
		t.Fatal("expected a color for the Match tag")
	}
	if !c.Background {
		t.Error("the Match tag must color the background")
	}

	if _, ok := theme.Color(HighlightNormal); ok {
		t.Error("Normal must render in the terminal's default colors")
	}
}

func TestLoadTheme_MissingFile(t *testing.T) {
	theme := LoadTheme(filepath.Join(t.TempDir(), "nope.json"))

	want, _ := DefaultTheme().Color(HighlightComment)
	got, ok := theme.Color(HighlightComment)
	if !ok || got != want {
		t.Errorf("Comment color = %+v, expected default %+v", got, want)
	}
}

func TestLoadTheme_Overrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	content := `{"string": "#FF0000", "number": "not a color"}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	theme := LoadTheme(path)

	c, _ := theme.Color(HighlightString)
	if c.R != 255 || c.G != 0 || c.B != 0 {
		t.Errorf("String color = %+v, expected 255/0/0", c)
	}

	// The malformed entry is skipped, not fatal.
	want, _ := DefaultTheme().Color(HighlightNumber)
	if got, _ := theme.Color(HighlightNumber); got != want {
		t.Errorf("Number color = %+v, expected default %+v", got, want)
	}

	// The Match override keeps its background attribute.
	if c, _ := theme.Color(HighlightMatch); !c.Background {
		t.Error("Match must stay a background color after loading")
	}
}

func TestDefaultThemeJSON_RoundTrip(t *testing.T) {
	data, err := DefaultThemeJSON()
	if err != nil {
		t.Fatalf("DefaultThemeJSON() error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	theme := LoadTheme(path)
	def := DefaultTheme()
	for _, entry := range themeKeys {
		want, _ := def.Color(entry.tag)
		got, _ := theme.Color(entry.tag)
		if got != want {
			t.Errorf("%s = %+v, expected %+v", entry.key, got, want)
		}
	}
}

func TestWriteDefaultTheme_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.json")
	if err := os.WriteFile(path, []byte(`{"string":"#010203"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := WriteDefaultTheme(path); err != nil {
		t.Fatalf("WriteDefaultTheme() error: %v", err)
	}

	theme := LoadTheme(path)
	if c, _ := theme.Color(HighlightString); c.R != 1 || c.G != 2 || c.B != 3 {
		t.Errorf("String color = %+v, expected the existing file kept", c)
	}
}
