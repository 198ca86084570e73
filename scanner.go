package jsonfmt

import "io"

const scannerBufSize = 4096

// scanner is a small buffered byte reader used by the stream document
// splitter. It avoids bufio so pooled readers carry no per-use allocation.
type scanner struct {
	r   io.Reader
	buf [scannerBufSize]byte
	pos int
	n   int
}

func (s *scanner) Reset(r io.Reader) {
	s.r = r
	s.pos = 0
	s.n = 0
}

func (s *scanner) fill() error {
	n, err := s.r.Read(s.buf[:])
	if n == 0 {
		if err == nil {
			return io.EOF
		}
		return err
	}
	s.pos = 0
	s.n = n
	return nil
}

func (s *scanner) readByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	b := s.buf[s.pos]
	s.pos++
	return b, nil
}

func (s *scanner) peekByte() (byte, error) {
	if s.pos >= s.n {
		if err := s.fill(); err != nil {
			return 0, err
		}
	}
	return s.buf[s.pos], nil
}

func (s *scanner) readNonSpace() (byte, error) {
	for {
		b, err := s.readByte()
		if err != nil {
			return 0, err
		}
		if b > ' ' {
			return b, nil
		}
	}
}

// isTerminator reports a byte that ends an unquoted scalar token.
func isTerminator(b byte) bool {
	return b <= ' ' || b == ',' || b == '}' || b == ']'
}
