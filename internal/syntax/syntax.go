// Package syntax provides the per-language descriptors and the row
// highlighting engine for the editor. Languages are static declarative
// data: keyword lists, comment delimiters, and feature flags. The
// highlighter classifies every rendered byte of a row and threads
// multi-line comment state from one row to the next.
package syntax

import (
	"path/filepath"
	"strings"
)

// Flags control optional highlighting features of a language.
type Flags uint8

const (
	// HighlightNumbers enables numeric literal highlighting.
	HighlightNumbers Flags = 1 << iota
	// HighlightStrings enables string literal highlighting.
	HighlightStrings
)

// Has reports whether all bits in f are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Language describes syntax highlighting for one language.
// Keyword entries may carry a trailing marker byte selecting the
// highlight group: '|' for group 2, '&' for group 3, '~' for group 4;
// unmarked keywords belong to group 1. The descriptor is configuration
// data: comment tokens are used exactly as declared.
type Language struct {
	// Name is the display name shown in the status bar.
	Name string

	// FileMatch patterns select this language by file name. A pattern
	// starting with '.' matches the file extension exactly; any other
	// pattern matches as a substring of the file name.
	FileMatch []string

	// Keywords in match priority order, with optional group markers.
	Keywords []string

	// LineComment is the single-line comment start token ("" disables).
	LineComment string

	// BlockCommentStart and BlockCommentEnd delimit multi-line
	// comments. Both must be non-empty for block comments to apply.
	BlockCommentStart string
	BlockCommentEnd   string

	// Flags gates number and string highlighting.
	Flags Flags
}

// Registry holds languages in declaration order. Detection returns the
// first language whose pattern matches, so languages registered earlier
// take priority.
type Registry struct {
	languages []*Language
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a language to the registry.
func (r *Registry) Register(l *Language) {
	r.languages = append(r.languages, l)
}

// Languages returns the registered languages in declaration order.
func (r *Registry) Languages() []*Language {
	return r.languages
}

// Detect selects the language for a file name, or nil when no pattern
// matches. Detection runs once per file-open; a match forces the caller
// to re-highlight every row.
func (r *Registry) Detect(fileName string) *Language {
	if fileName == "" {
		return nil
	}
	ext := filepath.Ext(fileName)
	for _, l := range r.languages {
		for _, pattern := range l.FileMatch {
			if strings.HasPrefix(pattern, ".") {
				if ext == pattern {
					return l
				}
			} else if strings.Contains(fileName, pattern) {
				return l
			}
		}
	}
	return nil
}
