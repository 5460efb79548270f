package syntax

// Builtin languages in detection priority order.

var langC = &Language{
	Name:      "C",
	FileMatch: []string{".c", ".h"},
	Keywords: []string{
		"switch", "if", "while", "for", "break", "continue", "return", "else",
		"struct", "union", "typedef", "static", "enum", "case",
		"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
		"void|",
	},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	Flags:             HighlightNumbers | HighlightStrings,
}

var langCPP = &Language{
	Name:      "C++",
	FileMatch: []string{".cpp", ".hpp", ".cc", ".hh"},
	Keywords: []string{
		"switch", "if", "while", "for", "break", "continue", "return", "else",
		"struct", "union", "typedef", "static", "enum", "class", "case",
		"private", "public",
		"int|", "long|", "double|", "float|", "char|", "unsigned|", "signed|",
		"void|",
	},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	Flags:             HighlightNumbers | HighlightStrings,
}

var langCellox = &Language{
	Name:      "Cellox",
	FileMatch: []string{".clx"},
	Keywords: []string{
		"if", "else", "for", "while", "return", "and", "or", "null", "this",
		"super", "false", "true",
		"fun|", "class|", "var|",
	},
	LineComment:       "//",
	BlockCommentStart: "/*",
	BlockCommentEnd:   "*/",
	Flags:             HighlightNumbers | HighlightStrings,
}

var langGo = &Language{
	Name:      "Go",
	FileMatch: []string{".go"},
	Keywords: []string{
		"if", "for", "range", "while", "defer", "switch", "case", "else",
		"func", "package", "import", "type", "struct", "const", "var",
		"nil|", "true|", "false|", "error|", "err|", "int|", "int32|",
		"int64|", "uint|", "uint32|", "uint64|", "string|", "bool|",
	},
	// The descriptor is configuration data; the token is used as
	// declared even where it looks unusual for the language.
	LineComment: "#",
	Flags:       HighlightNumbers | HighlightStrings,
}

var langLua = &Language{
	Name:      "Lua",
	FileMatch: []string{".lua"},
	Keywords: []string{
		"and", "break", "do", "else", "elseif", "end", "false", "for",
		"function", "if", "in", "local|", "nil", "not", "or", "repeat",
		"return", "then", "true", "until", "while",
	},
	LineComment:       "--",
	BlockCommentStart: "--[[",
	BlockCommentEnd:   "--]]",
	Flags:             HighlightNumbers | HighlightStrings,
}

var langPython = &Language{
	Name:      "Python",
	FileMatch: []string{".py"},
	Keywords: []string{
		"and", "as", "assert", "break", "class", "continue", "def", "del",
		"elif", "else", "except", "exec", "finally", "for", "from", "global",
		"if", "import", "in", "is", "lambda", "not", "or", "pass", "print",
		"raise", "return", "try", "while", "with", "yield",
		"buffer|", "bytearray|", "complex|", "False|", "float|", "frozenset|",
		"int|", "list|", "long|", "None|", "set|", "str|", "tuple|", "True|",
		"type|", "unicode|", "xrange|",
	},
	LineComment: "//",
	Flags:       HighlightNumbers | HighlightStrings,
}

// RegisterBuiltins registers the compiled-in language table.
func RegisterBuiltins(r *Registry) {
	r.Register(langC)
	r.Register(langCPP)
	r.Register(langCellox)
	r.Register(langGo)
	r.Register(langLua)
	r.Register(langPython)
}
