package jsonfmt

import (
	"fmt"
	"strings"
)

// canonicalIndent is the per-level indent of the codec's default pretty
// layout, the only layout Reindent accepts as canonical input.
const canonicalIndent = "  "

// IndentUnit selects the character used for one level of indentation.
type IndentUnit int

const (
	// Space indents with space characters.
	Space IndentUnit = iota
	// Tab indents with tab characters.
	Tab
)

func (u IndentUnit) String() string {
	if u == Tab {
		return "tab"
	}
	return "space"
}

// ParseIndentUnit resolves a unit name from a flag or config file.
func ParseIndentUnit(s string) (IndentUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "space", "spaces", " ":
		return Space, nil
	case "tab", "tabs", "\t":
		return Tab, nil
	}
	return Space, fmt.Errorf("unknown indent unit %q (use space or tab)", s)
}

// Indent is the indentation policy: Unit repeated Size times per nesting
// level. Size 0 is legal and produces no leading whitespace on any line
// while keeping the multi-line layout.
type Indent struct {
	Unit IndentUnit
	Size int
}

// DefaultIndent matches the codec's canonical layout: two spaces per level.
var DefaultIndent = Indent{Unit: Space, Size: 2}

// String returns the indent string for one nesting level.
func (in Indent) String() string {
	if in.Size <= 0 {
		return ""
	}
	if in.Unit == Tab {
		return strings.Repeat("\t", in.Size)
	}
	return strings.Repeat(" ", in.Size)
}
