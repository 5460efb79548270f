package config

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/yate/internal/syntax"
)

// LoadInit runs the optional Lua init script at path. The script may
// set the globals tab_stop and status_message_duration, and may define
// a languages table whose entries become syntax descriptors registered
// ahead of the builtins:
//
//	languages = {
//	  { name = "Zig", extensions = { ".zig" },
//	    keywords = { "fn", "pub", "u8|" },
//	    line_comment = "//",
//	    block_comment_start = "", block_comment_end = "",
//	    highlight_numbers = true, highlight_strings = true },
//	}
//
// A missing script is not an error. A script error is returned so the
// caller can log it, but cfg keeps whatever values were applied before
// the failure.
func LoadInit(path string, cfg *Config) ([]*syntax.Language, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}

	state := lua.NewState()
	defer state.Close()

	if err := state.DoFile(path); err != nil {
		return nil, fmt.Errorf("init script: %w", err)
	}

	if n, ok := state.GetGlobal("tab_stop").(lua.LNumber); ok && int(n) >= 1 {
		cfg.TabStop = int(n)
	}
	if n, ok := state.GetGlobal("status_message_duration").(lua.LNumber); ok && int(n) >= 0 {
		cfg.StatusMessageDuration = int(n)
	}

	tbl, ok := state.GetGlobal("languages").(*lua.LTable)
	if !ok {
		return nil, nil
	}

	var langs []*syntax.Language
	tbl.ForEach(func(_, v lua.LValue) {
		entry, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		if lang := languageFromTable(entry); lang != nil {
			langs = append(langs, lang)
		}
	})
	return langs, nil
}

// languageFromTable builds a syntax descriptor from one languages
// entry. Entries without a name or file patterns are skipped.
func languageFromTable(entry *lua.LTable) *syntax.Language {
	lang := &syntax.Language{
		Name:              tableString(entry, "name"),
		FileMatch:         tableStrings(entry, "extensions"),
		Keywords:          tableStrings(entry, "keywords"),
		LineComment:       tableString(entry, "line_comment"),
		BlockCommentStart: tableString(entry, "block_comment_start"),
		BlockCommentEnd:   tableString(entry, "block_comment_end"),
	}
	if tableBool(entry, "highlight_numbers") {
		lang.Flags |= syntax.HighlightNumbers
	}
	if tableBool(entry, "highlight_strings") {
		lang.Flags |= syntax.HighlightStrings
	}
	if lang.Name == "" || len(lang.FileMatch) == 0 {
		return nil
	}
	return lang
}

func tableString(t *lua.LTable, key string) string {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

func tableStrings(t *lua.LTable, key string) []string {
	arr, ok := t.RawGetString(key).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	arr.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			out = append(out, string(s))
		}
	})
	return out
}

func tableBool(t *lua.LTable, key string) bool {
	if b, ok := t.RawGetString(key).(lua.LBool); ok {
		return bool(b)
	}
	return false
}
