package jsonfmt

import (
	"bytes"
	"errors"
	"io"

	"pkt.systems/jpact"
)

// CompactTo streams compacted JSON to w. The input may hold multiple JSON
// documents; each is emitted on its own line with all insignificant
// whitespace outside string literals removed.
func CompactTo(w io.Writer, r io.Reader) error {
	dr := acquireDocReader(r)
	defer releaseDocReader(dr)

	for {
		if err := dr.Start(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if err := jpact.CompactWriter(w, dr, 0); err != nil {
			return err
		}
		if err := writeNewline(w); err != nil {
			return err
		}
		dr.Reset()
	}
}

// CompactToBuffer compacts JSON into memory, preserving the
// one-document-per-line behavior of CompactTo.
func CompactToBuffer(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if err := CompactTo(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PrettyTo streams re-indented JSON to w, one output document per input
// document. Each document is laid out canonically and re-indented per ind.
func PrettyTo(w io.Writer, r io.Reader, ind Indent) error {
	dr := acquireDocReader(r)
	defer releaseDocReader(dr)

	var doc bytes.Buffer
	for {
		if err := dr.Start(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		doc.Reset()
		if _, err := doc.ReadFrom(dr); err != nil {
			return err
		}
		out, err := formatText(doc.Bytes(), false, ind)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
		if err := writeNewline(w); err != nil {
			return err
		}
		dr.Reset()
	}
}

var newlineBytes = []byte{'\n'}

func writeNewline(w io.Writer) error {
	if bw, ok := w.(io.ByteWriter); ok {
		return bw.WriteByte('\n')
	}
	_, err := w.Write(newlineBytes)
	return err
}
