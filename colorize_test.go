package jsonfmt

import (
	"strings"
	"testing"

	"pkt.systems/jsonfmt/internal/ansi"
)

func TestColorize_NoColorPassthrough(t *testing.T) {
	const input = "{\n  \"a\": [1, true, null, \"s\"]\n}"
	if got := Colorize(input, NoColorPalette()); got != input {
		t.Fatalf("no-color palette must not change the text\nexpected:\n%q\nactual:\n%q", input, got)
	}
}

func TestColorize_KeysAndStringsDiffer(t *testing.T) {
	pal := ColorPalette{Key: ansi.Cyan, String: ansi.BrightBlue}
	got := Colorize(`{"k":"v"}`, pal)

	if !strings.Contains(got, ansi.Cyan+`"k"`+ansi.Reset) {
		t.Fatalf("object key not styled as key: %q", got)
	}
	if !strings.Contains(got, ansi.BrightBlue+`"v"`+ansi.Reset) {
		t.Fatalf("string value not styled as string: %q", got)
	}
}

func TestColorize_ArrayStringsAreValues(t *testing.T) {
	pal := ColorPalette{Key: ansi.Cyan, String: ansi.BrightBlue}
	got := Colorize(`["a","b"]`, pal)
	if strings.Contains(got, ansi.Cyan) {
		t.Fatalf("array elements must not use the key style: %q", got)
	}
}

func TestColorize_LiteralsAndNumbers(t *testing.T) {
	pal := ColorPalette{
		Number: ansi.Magenta,
		True:   ansi.Yellow,
		False:  ansi.Yellow,
		Null:   ansi.Faint,
	}
	got := Colorize(`[-1.5e3, true, false, null]`, pal)
	for _, want := range []string{
		ansi.Magenta + "-1.5e3" + ansi.Reset,
		ansi.Yellow + "true" + ansi.Reset,
		ansi.Yellow + "false" + ansi.Reset,
		ansi.Faint + "null" + ansi.Reset,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing styled token %q in %q", want, got)
		}
	}
}

func TestColorize_EscapedQuotesStayInOneToken(t *testing.T) {
	pal := ColorPalette{String: ansi.BrightBlue}
	got := Colorize(`"a \" b"`, pal)
	const expected = ansi.BrightBlue + `"a \" b"` + ansi.Reset
	if got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestResolvePalette(t *testing.T) {
	pal, err := ResolvePalette("", true)
	if err != nil {
		t.Fatalf("default palette failed: %v", err)
	}
	if pal == (ColorPalette{}) {
		t.Fatal("default palette should carry styles")
	}

	pal, err = ResolvePalette("none", true)
	if err != nil || pal != NoColorPalette() {
		t.Fatalf("palette none should disable styling, got %v, %v", pal, err)
	}

	pal, err = ResolvePalette("classic", false)
	if err != nil || pal != NoColorPalette() {
		t.Fatalf("disabled color should yield no styling, got %v, %v", pal, err)
	}

	if _, err = ResolvePalette("no-such-theme", true); err == nil {
		t.Fatal("expected error for unknown palette name")
	}
}

func TestPaletteNames(t *testing.T) {
	names := PaletteNames()
	for _, want := range []string{"default", "jq", "classic", "none"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("palette %q missing from %v", want, names)
		}
	}
	if !sortedStrings(names) {
		t.Fatalf("palette names not sorted: %v", names)
	}
}

func sortedStrings(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
