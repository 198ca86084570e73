package jsonfmt

import (
	"errors"
	"io"
)

// docReader exposes exactly one JSON document from an underlying stream as an
// io.Reader, returning io.EOF at the document boundary. It delimits by
// bracket depth (respecting strings and escapes) for containers, by the
// closing quote for strings, and by the next terminator for bare scalars. It
// does not validate the document; the consumer does.
type docReader struct {
	scanner scanner

	started bool
	done    bool
	mode    docMode

	depth  int
	inStr  bool
	escape bool

	held    byte
	hasHeld bool
}

type docMode int

const (
	docScalar docMode = iota
	docString
	docContainer
)

func (d *docReader) Reset() {
	d.started = false
	d.done = false
	d.mode = docScalar
	d.depth = 0
	d.inStr = false
	d.escape = false
	d.held = 0
	d.hasHeld = false
}

// Start positions the reader at the next document, skipping inter-document
// whitespace. io.EOF means the stream holds no further documents.
func (d *docReader) Start() error {
	if d.started {
		return nil
	}
	b, err := d.scanner.readNonSpace()
	if err != nil {
		return err
	}
	d.started = true
	d.held = b
	d.hasHeld = true
	switch b {
	case '{', '[':
		d.mode = docContainer
		d.depth = 1
	case '"':
		d.mode = docString
		d.inStr = true
	default:
		d.mode = docScalar
	}
	return nil
}

func (d *docReader) Read(p []byte) (int, error) {
	if d.done {
		return 0, io.EOF
	}
	if !d.started {
		if err := d.Start(); err != nil {
			if errors.Is(err, io.EOF) {
				return 0, io.EOF
			}
			return 0, err
		}
	}
	n := 0
	for n < len(p) {
		b, err := d.next()
		if err != nil {
			if errors.Is(err, io.EOF) && n > 0 {
				return n, nil
			}
			return n, err
		}
		p[n] = b
		n++
	}
	return n, nil
}

func (d *docReader) next() (byte, error) {
	if d.done {
		return 0, io.EOF
	}
	if d.hasHeld {
		d.hasHeld = false
		return d.held, nil
	}
	switch d.mode {
	case docString:
		b, err := d.scanner.readByte()
		if err != nil {
			return 0, err
		}
		switch {
		case d.escape:
			d.escape = false
		case b == '\\':
			d.escape = true
		case b == '"':
			d.done = true
		}
		return b, nil
	case docContainer:
		b, err := d.scanner.readByte()
		if err != nil {
			return 0, err
		}
		if d.inStr {
			switch {
			case d.escape:
				d.escape = false
			case b == '\\':
				d.escape = true
			case b == '"':
				d.inStr = false
			}
			return b, nil
		}
		switch b {
		case '"':
			d.inStr = true
		case '{', '[':
			d.depth++
		case '}', ']':
			d.depth--
			if d.depth == 0 {
				d.done = true
			}
		}
		return b, nil
	default:
		b, err := d.scanner.peekByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.done = true
			}
			return 0, err
		}
		if isTerminator(b) {
			d.done = true
			return 0, io.EOF
		}
		_, _ = d.scanner.readByte()
		return b, nil
	}
}
