package jsonfmt

import (
	"strings"
	"testing"
)

const canonicalNested = `{
  "a": 1,
  "b": {
    "c": 2
  }
}`

func TestReindent_FourSpaces(t *testing.T) {
	const expected = `{
    "a": 1,
    "b": {
        "c": 2
    }
}`
	got := Reindent(canonicalNested, Indent{Unit: Space, Size: 4})
	if got != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, got)
	}
}

func TestReindent_Tabs(t *testing.T) {
	const expected = "{\n\t\"a\": 1,\n\t\"b\": {\n\t\t\"c\": 2\n\t}\n}"
	got := Reindent(canonicalNested, Indent{Unit: Tab, Size: 1})
	if got != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, got)
	}
}

func TestReindent_ZeroSize(t *testing.T) {
	const expected = "{\n\"a\": 1,\n\"b\": {\n\"c\": 2\n}\n}"
	got := Reindent(canonicalNested, Indent{Unit: Space, Size: 0})
	if got != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, got)
	}
	for i, line := range strings.Split(got, "\n") {
		if line != strings.TrimLeft(line, " \t") {
			t.Fatalf("line %d starts with whitespace: %q", i, line)
		}
	}
}

func TestReindent_DepthPerLine(t *testing.T) {
	const input = "[\n  [\n    [\n      1\n    ]\n  ]\n]"
	got := Reindent(input, Indent{Unit: Tab, Size: 2})
	expectedDepths := []int{0, 1, 2, 3, 2, 1, 0}
	lines := strings.Split(got, "\n")
	if len(lines) != len(expectedDepths) {
		t.Fatalf("expected %d lines, got %d: %q", len(expectedDepths), len(lines), got)
	}
	for i, line := range lines {
		depth := len(line) - len(strings.TrimLeft(line, "\t"))
		if depth != expectedDepths[i]*2 {
			t.Fatalf("line %d: expected %d tabs, got %d: %q", i, expectedDepths[i]*2, depth, line)
		}
	}
}

func TestReindent_PreservesLineCount(t *testing.T) {
	inputs := []string{
		"",
		"{}",
		canonicalNested,
		"not json at all",
		"{\n\"a\": [\n1,\n2\n]\n}",
		"]\n]\n]",
	}
	for _, input := range inputs {
		got := Reindent(input, Indent{Unit: Space, Size: 3})
		if strings.Count(got, "\n") != strings.Count(input, "\n") {
			t.Fatalf("line count changed for %q: got %q", input, got)
		}
	}
}

func TestReindent_LevelNeverNegative(t *testing.T) {
	// Unbalanced closers must clamp at zero, so the trailing content stays
	// at the left margin instead of panicking or drifting.
	const input = "]\n]\n{\n\"a\": 1\n}"
	const expected = "]\n]\n{\n   \"a\": 1\n}"
	got := Reindent(input, Indent{Unit: Space, Size: 3})
	if got != expected {
		t.Fatalf("unexpected output\nexpected:\n%q\nactual:\n%q", expected, got)
	}
}

func TestReindent_MinifiedPassesThrough(t *testing.T) {
	const input = `{"a":1,"b":{"c":2}}`
	got := Reindent(input, Indent{Unit: Space, Size: 2})
	if got != input {
		t.Fatalf("single-line input should be unchanged, got %q", got)
	}
}

func TestReindent_BareCloserIsNotAnOpener(t *testing.T) {
	if opensContainer("},") || opensContainer("]") || opensContainer("}") {
		t.Fatal("bare closers must not increase the nesting level")
	}
	if !opensContainer("{") || !opensContainer(`"key": [`) || !opensContainer(`"obj": {`) {
		t.Fatal("opener lines must increase the nesting level")
	}
	if opensContainer(`"s": "ends in quote"`) {
		t.Fatal("scalar lines must not change the nesting level")
	}
}

func TestIndent_String(t *testing.T) {
	cases := []struct {
		in       Indent
		expected string
	}{
		{Indent{Unit: Space, Size: 2}, "  "},
		{Indent{Unit: Tab, Size: 1}, "\t"},
		{Indent{Unit: Tab, Size: 3}, "\t\t\t"},
		{Indent{Unit: Space, Size: 0}, ""},
		{Indent{Unit: Tab, Size: -1}, ""},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.expected {
			t.Fatalf("%v: expected %q, got %q", c.in, c.expected, got)
		}
	}
}

func TestParseIndentUnit(t *testing.T) {
	for _, name := range []string{"", "space", "Spaces", " "} {
		unit, err := ParseIndentUnit(name)
		if err != nil || unit != Space {
			t.Fatalf("ParseIndentUnit(%q) = %v, %v", name, unit, err)
		}
	}
	for _, name := range []string{"tab", "TABS", "\t"} {
		unit, err := ParseIndentUnit(name)
		if err != nil || unit != Tab {
			t.Fatalf("ParseIndentUnit(%q) = %v, %v", name, unit, err)
		}
	}
	if _, err := ParseIndentUnit("banana"); err == nil {
		t.Fatal("expected error for unknown unit")
	}
}
