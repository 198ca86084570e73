package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// IndexPlaceholder in an export target is replaced with the zero-based item
// index, so one target can name every output of a batch.
const IndexPlaceholder = "{}"

// ExpandTarget substitutes the index placeholder in a batch export target:
// ExpandTarget("out/item-{}.json", 2) is "out/item-2.json". Targets without
// the placeholder pass through unchanged.
func ExpandTarget(target string, index int) string {
	return strings.ReplaceAll(target, IndexPlaceholder, strconv.Itoa(index))
}

// WriteOptions control WriteText.
type WriteOptions struct {
	// Force permits overwriting an existing file.
	Force bool
	// Encoding selects the on-disk encoding; zero value is plain UTF-8.
	Encoding Encoding
	// MakeParents creates missing parent directories.
	MakeParents bool
}

// WriteText encodes text with opts.Encoding and writes it to path. Without
// opts.Force an existing file fails with ErrAlreadyExists before anything is
// written.
func WriteText(path, text string, opts WriteOptions) error {
	if !opts.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use force to overwrite)", ErrAlreadyExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if opts.MakeParents {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
	}
	encoded, err := opts.Encoding.encoder().Bytes([]byte(text))
	if err != nil {
		return fmt.Errorf("encode %s as %s: %w", path, opts.Encoding, err)
	}
	return os.WriteFile(path, encoded, 0o644)
}
