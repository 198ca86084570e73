package jsonfmt

import "strings"

// Reindent rewrites the leading whitespace of canonical pretty JSON text so
// that every line is indented per ind. The input must follow the codec's
// default multi-line layout: one structural token group per line, openers at
// line end, closers at line start. Nesting depth is tracked from the
// structural brackets alone; the text is never re-parsed.
//
// Reindent is total: any string goes in, the same number of lines comes out.
// Text that does not satisfy the layout convention (minified documents,
// string values spanning physical lines) is re-prefixed the same mechanical
// way and may end up visually misindented, never truncated.
func Reindent(text string, ind Indent) string {
	unit := ind.String()
	lines := strings.Split(text, "\n")

	var b strings.Builder
	b.Grow(len(text) + len(lines)*len(unit))

	level := 0
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if closesContainer(trimmed) && level > 0 {
			level--
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		for range level {
			b.WriteString(unit)
		}
		b.WriteString(trimmed)
		if opensContainer(trimmed) {
			level++
		}
	}
	return b.String()
}

func closesContainer(trimmed string) bool {
	return strings.HasPrefix(trimmed, "}") || strings.HasPrefix(trimmed, "]")
}

// opensContainer reports whether the line leaves the cursor inside a new
// container. A line that is only a closer (optionally with a trailing comma)
// never counts, so a closing line is a decrement-only event.
func opensContainer(trimmed string) bool {
	if !strings.HasSuffix(trimmed, "{") && !strings.HasSuffix(trimmed, "[") {
		return false
	}
	return !isBareCloser(trimmed)
}

func isBareCloser(trimmed string) bool {
	if trimmed == "" || (trimmed[0] != '}' && trimmed[0] != ']') {
		return false
	}
	rest := trimmed[1:]
	return rest == "" || rest == ","
}
