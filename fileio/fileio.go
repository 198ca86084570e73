// Package fileio resolves, reads and writes the files the formatter operates
// on. It is the file-system collaborator of the core: path and wildcard
// resolution, text decoding with provenance, and guarded writes with
// encoding selection. All formatting stays in the parent package.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNotFound reports a path or pattern that resolves to no file.
	ErrNotFound = errors.New("file not found")
	// ErrAlreadyExists reports a refusal to overwrite without Force.
	ErrAlreadyExists = errors.New("file already exists")
)

// Document is one imported input and the path it came from.
type Document struct {
	Text       string
	SourceFile string
}

// ResolvePaths expands a glob-style pattern into concrete file paths, sorted
// lexically. A pattern without wildcards must name an existing file.
func ResolvePaths(pattern string) ([]string, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		if _, err := os.Stat(pattern); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, pattern)
			}
			return nil, err
		}
		return []string{pattern}, nil
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad pattern %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no files match %s", ErrNotFound, pattern)
	}
	return matches, nil
}

// ReadText reads path and decodes its bytes with enc.
func ReadText(path string, enc Encoding) (Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Document{}, err
	}
	decoded, err := enc.decoder().Bytes(raw)
	if err != nil {
		return Document{}, fmt.Errorf("decode %s as %s: %w", path, enc, err)
	}
	return Document{Text: string(decoded), SourceFile: path}, nil
}
