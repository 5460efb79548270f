package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/yate/internal/syntax"
)

func writeInit(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "init.lua")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadInit_MissingScript(t *testing.T) {
	cfg := Default()
	langs, err := LoadInit(filepath.Join(t.TempDir(), "init.lua"), &cfg)
	if err != nil {
		t.Fatalf("LoadInit() error: %v", err)
	}
	if langs != nil {
		t.Errorf("langs = %v, expected none", langs)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, expected untouched defaults", cfg)
	}
}

func TestLoadInit_Globals(t *testing.T) {
	path := writeInit(t, "tab_stop = 2\nstatus_message_duration = 10\n")
	cfg := Default()
	if _, err := LoadInit(path, &cfg); err != nil {
		t.Fatalf("LoadInit() error: %v", err)
	}

	if cfg.TabStop != 2 {
		t.Errorf("TabStop = %d, expected 2", cfg.TabStop)
	}
	if cfg.StatusMessageDuration != 10 {
		t.Errorf("StatusMessageDuration = %d, expected 10", cfg.StatusMessageDuration)
	}
}

func TestLoadInit_InvalidGlobalsIgnored(t *testing.T) {
	path := writeInit(t, "tab_stop = 0\nstatus_message_duration = -1\n")
	cfg := Default()
	if _, err := LoadInit(path, &cfg); err != nil {
		t.Fatalf("LoadInit() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, expected out-of-range values ignored", cfg)
	}
}

func TestLoadInit_Languages(t *testing.T) {
	path := writeInit(t, `
languages = {
  {
    name = "Zig",
    extensions = { ".zig" },
    keywords = { "fn", "pub", "u8|" },
    line_comment = "//",
    highlight_numbers = true,
    highlight_strings = true,
  },
  { name = "Broken" }, -- no extensions: skipped
  "not a table",
}
`)
	cfg := Default()
	langs, err := LoadInit(path, &cfg)
	if err != nil {
		t.Fatalf("LoadInit() error: %v", err)
	}

	if len(langs) != 1 {
		t.Fatalf("got %d languages, expected 1", len(langs))
	}
	lang := langs[0]
	if lang.Name != "Zig" {
		t.Errorf("Name = %q, expected Zig", lang.Name)
	}
	if len(lang.FileMatch) != 1 || lang.FileMatch[0] != ".zig" {
		t.Errorf("FileMatch = %v, expected [.zig]", lang.FileMatch)
	}
	if len(lang.Keywords) != 3 {
		t.Errorf("Keywords = %v, expected 3 entries", lang.Keywords)
	}
	if lang.LineComment != "//" {
		t.Errorf("LineComment = %q, expected //", lang.LineComment)
	}
	if !lang.Flags.Has(syntax.HighlightNumbers | syntax.HighlightStrings) {
		t.Errorf("Flags = %v, expected numbers and strings enabled", lang.Flags)
	}
}

func TestLoadInit_ScriptError(t *testing.T) {
	path := writeInit(t, "this is not lua")
	cfg := Default()
	if _, err := LoadInit(path, &cfg); err == nil {
		t.Error("expected an error from a broken script")
	}
}
