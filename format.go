package jsonfmt

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Format renders src as JSON text. src is treated as raw JSON text when it is
// a string, []byte or json.RawMessage, and as a value to serialize otherwise.
// When compact is true the result is minified and ind is ignored; otherwise
// the codec's canonical layout is produced and re-indented per ind.
//
// Text that the codec cannot parse fails with ErrInvalidJSON. Empty or
// all-whitespace text fails with the non-fatal ErrEmptyInput. Neither case
// produces partial output.
func Format(src any, compact bool, ind Indent) (string, error) {
	if text, ok := textSource(src); ok {
		return formatText(text, compact, ind)
	}
	return formatValue(src, compact, ind)
}

// Compact returns the minified rendering of src. For text sources the
// rewrite is byte level: key order and numeric literals pass through exactly
// as written.
func Compact(src any) (string, error) {
	return Format(src, true, Indent{})
}

// Pretty returns the indented rendering of src per ind.
func Pretty(src any, ind Indent) (string, error) {
	return Format(src, false, ind)
}

func textSource(src any) ([]byte, bool) {
	switch s := src.(type) {
	case string:
		return []byte(s), true
	case []byte:
		return s, true
	case json.RawMessage:
		return []byte(s), true
	}
	return nil, false
}

func formatText(text []byte, compact bool, ind Indent) (string, error) {
	trimmed := bytes.TrimSpace(text)
	if len(trimmed) == 0 {
		return "", ErrEmptyInput
	}
	if !json.Valid(trimmed) {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, syntaxDetail(trimmed))
	}
	if compact {
		out, err := CompactToBuffer(bytes.NewReader(trimmed))
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return string(bytes.TrimSuffix(out, newlineBytes)), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", canonicalIndent); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return Reindent(buf.String(), ind), nil
}

func formatValue(v any, compact bool, ind Indent) (string, error) {
	if compact {
		out, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("serialize value: %w", err)
		}
		return string(out), nil
	}
	out, err := json.MarshalIndent(v, "", canonicalIndent)
	if err != nil {
		return "", fmt.Errorf("serialize value: %w", err)
	}
	return Reindent(string(out), ind), nil
}

// syntaxDetail recovers the codec's error message for text json.Valid
// rejected. Unmarshal stops at the first syntax error; when it accepts the
// prefix, the rejection was trailing data after the top-level value.
func syntaxDetail(text []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber() // avoid float64 surprises
	if err := dec.Decode(&v); err != nil {
		return err
	}
	return fmt.Errorf("trailing data after top-level value")
}
