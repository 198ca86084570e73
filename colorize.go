package jsonfmt

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/jsonfmt/internal/ansi"
)

// ColorPalette holds the ANSI style sequence for each JSON token class. The
// zero value styles nothing and leaves text untouched.
type ColorPalette struct {
	Key         string
	String      string
	Number      string
	True        string
	False       string
	Null        string
	Brackets    string
	Punctuation string
}

// NoColorPalette disables all styling.
func NoColorPalette() ColorPalette {
	return ColorPalette{}
}

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteJQDefault,
	"jq":               ansi.PaletteJQDefault,
	"classic":          ansi.PaletteClassic,
	"tokyo-night":      ansi.PaletteTokyoNight,
	"gruvbox-light":    ansi.PaletteGruvboxLight,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ResolvePalette looks up a palette by name, defaulting to "default" when
// name is empty. The name "none" disables colouring. When enableColor is
// false the returned palette is colourless but the name is still validated.
func ResolvePalette(name string, enableColor bool) (ColorPalette, error) {
	key := paletteDefaultName
	if strings.TrimSpace(name) != "" {
		key = strings.ToLower(strings.TrimSpace(name))
	}
	if key == paletteNoneName {
		return NoColorPalette(), nil
	}
	ap, ok := paletteRegistry[key]
	if !ok {
		return ColorPalette{}, fmt.Errorf("unknown palette %q (use one of: %s)", name, strings.Join(PaletteNames(), ", "))
	}
	if !enableColor {
		return NoColorPalette(), nil
	}
	return ColorPalette{
		Key:         ap.Key,
		String:      ap.String,
		Number:      ap.Num,
		True:        ap.Bool,
		False:       ap.Bool,
		Null:        ap.Nil,
		Brackets:    ap.Brackets,
		Punctuation: ap.Punctuation,
	}, nil
}

// Colorize walks formatted JSON text and wraps each token in its palette
// style. The walk is structural, not a re-parse: object keys are told apart
// from string values by tracking whether the enclosing container expects a
// key. Input that is not JSON passes through with best-effort styling.
func Colorize(src string, pal ColorPalette) string {
	if pal == (ColorPalette{}) {
		return src
	}

	var sb strings.Builder
	sb.Grow(len(src) + len(src)/2)

	type frame struct {
		kind      byte
		expectKey bool
	}
	stack := make([]frame, 0, 8)

	for i := 0; i < len(src); {
		ch := src[i]
		switch ch {
		case '{':
			stack = append(stack, frame{kind: '{', expectKey: true})
			styled(&sb, pal.Brackets, "{")
			i++
		case '[':
			stack = append(stack, frame{kind: '['})
			styled(&sb, pal.Brackets, "[")
			i++
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			styled(&sb, pal.Brackets, src[i:i+1])
			i++
		case ':':
			styled(&sb, pal.Punctuation, ":")
			if len(stack) > 0 && stack[len(stack)-1].kind == '{' {
				stack[len(stack)-1].expectKey = false
			}
			i++
		case ',':
			styled(&sb, pal.Punctuation, ",")
			if len(stack) > 0 && stack[len(stack)-1].kind == '{' {
				stack[len(stack)-1].expectKey = true
			}
			i++
		case '"':
			start := i
			i++
			for i < len(src) {
				if src[i] == '\\' && i+1 < len(src) {
					i += 2
					continue
				}
				if src[i] == '"' {
					i++
					break
				}
				i++
			}
			segment := src[start:i]
			if len(stack) > 0 && stack[len(stack)-1].kind == '{' && stack[len(stack)-1].expectKey {
				styled(&sb, pal.Key, segment)
			} else {
				styled(&sb, pal.String, segment)
			}
		default:
			if (ch >= '0' && ch <= '9') || ch == '-' {
				start := i
				i++
				for i < len(src) && isNumberByte(src[i]) {
					i++
				}
				styled(&sb, pal.Number, src[start:i])
				continue
			}
			if strings.HasPrefix(src[i:], "true") {
				styled(&sb, pal.True, "true")
				i += 4
				continue
			}
			if strings.HasPrefix(src[i:], "false") {
				styled(&sb, pal.False, "false")
				i += 5
				continue
			}
			if strings.HasPrefix(src[i:], "null") {
				styled(&sb, pal.Null, "null")
				i += 4
				continue
			}
			sb.WriteByte(ch)
			i++
		}
	}
	return sb.String()
}

func styled(sb *strings.Builder, style, s string) {
	if style == "" {
		sb.WriteString(s)
		return
	}
	sb.WriteString(style)
	sb.WriteString(s)
	sb.WriteString(ansi.Reset)
}

func isNumberByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.' || b == 'e' || b == 'E' || b == '+' || b == '-'
}
