package jsonfmt

import (
	"io"
	"sync"
)

var docReaderPool = sync.Pool{
	New: func() any {
		return &docReader{}
	},
}

func acquireDocReader(r io.Reader) *docReader {
	d := docReaderPool.Get().(*docReader)
	d.scanner.Reset(r)
	d.Reset()
	return d
}

func releaseDocReader(d *docReader) {
	if d == nil {
		return
	}
	d.scanner.Reset(nil)
	d.Reset()
	docReaderPool.Put(d)
}
