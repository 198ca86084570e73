// Package jsonfmt reformats textual JSON.
//
// The package accepts either raw JSON text or an in-memory Go value and
// produces a compact (whitespace-free) rendering or a pretty rendering with a
// caller-chosen indentation unit and size. Pretty output is built in two
// steps: the codec's canonical two-space layout is produced first, then
// Reindent rewrites every line's leading whitespace by tracking nesting depth
// from the structural brackets. Compact output never touches Reindent.
//
// Basic usage:
//
//	out, err := jsonfmt.Pretty(`{"a":1,"b":{"c":2}}`, jsonfmt.Indent{Unit: jsonfmt.Space, Size: 4})
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Compacting:
//
//	out, err := jsonfmt.Compact(`{ "a": 1 }`)
//
// Streams holding multiple JSON documents can be processed with CompactTo and
// PrettyTo, which emit one output document per input document. Formatted text
// can be styled for a terminal with Colorize and one of the registered
// palettes.
//
// All operations are pure transformations over in-memory text with no shared
// state; concurrent calls are safe. File resolution, reading and writing live
// in the fileio subpackage.
package jsonfmt
