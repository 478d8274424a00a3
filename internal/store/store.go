// Package store persists the bookmark collection as a single JSON file.
//
// Every call loads the file from disk; mutations rewrite the whole file.
// Nothing is cached between calls and the file is not locked.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kennyg/bm/internal/bookmark"
)

// Store reads and writes the bookmark file at a fixed path.
// It knows nothing about name uniqueness beyond what Insert checks.
type Store struct {
	path string
}

// New returns a store backed by the file at path.
// The file does not need to exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the entire collection.
// A missing file yields an empty collection.
func (s *Store) Load() ([]bookmark.Bookmark, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("bookmark file not found, starting empty", "path", s.path)
			return []bookmark.Bookmark{}, nil
		}
		return nil, &bookmark.IOError{Op: "read", Path: s.path, Err: err}
	}

	bookmarks, err := decode(data)
	if err != nil {
		return nil, &bookmark.DecodeError{Path: s.path, Err: err}
	}

	slog.Debug("loaded bookmarks", "path", s.path, "count", len(bookmarks))
	return bookmarks, nil
}

// Save overwrites the file with the full collection.
// The data goes to a temp file in the same directory first and is renamed
// into place, so readers see either the old or the new collection.
func (s *Store) Save(bookmarks []bookmark.Bookmark) error {
	data, err := encode(bookmarks)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &bookmark.IOError{Op: "mkdir", Path: dir, Err: err}
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return &bookmark.IOError{Op: "write", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &bookmark.IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return &bookmark.IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &bookmark.IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return &bookmark.IOError{Op: "write", Path: s.path, Err: err}
	}

	slog.Debug("saved bookmarks", "path", s.path, "count", len(bookmarks))
	return nil
}

// Find returns the first bookmark named name, or nil if there is none.
// Names match exactly and case-sensitively.
func (s *Store) Find(name string) (*bookmark.Bookmark, error) {
	bookmarks, err := s.Load()
	if err != nil {
		return nil, err
	}
	i := bookmark.Index(bookmarks, name)
	if i < 0 {
		return nil, nil
	}
	return &bookmarks[i], nil
}

// Insert appends a bookmark and saves.
// It fails with a DuplicateNameError if name is already registered.
func (s *Store) Insert(name, path string) error {
	bookmarks, err := s.Load()
	if err != nil {
		return err
	}
	if i := bookmark.Index(bookmarks, name); i >= 0 {
		return &bookmark.DuplicateNameError{Name: name, Path: bookmarks[i].Path}
	}
	return s.Save(append(bookmarks, bookmark.New(name, path)))
}

// Delete removes the bookmark named name and saves, keeping the order of
// the remaining entries. It fails with a NotFoundError if there is none.
func (s *Store) Delete(name string) error {
	bookmarks, err := s.Load()
	if err != nil {
		return err
	}
	i := bookmark.Index(bookmarks, name)
	if i < 0 {
		return &bookmark.NotFoundError{Name: name}
	}
	return s.Save(append(bookmarks[:i], bookmarks[i+1:]...))
}

// decode parses the on-disk form. Keys match exactly and both fields are
// required; encoding/json alone would accept missing or differently cased keys.
func decode(data []byte) ([]bookmark.Bookmark, error) {
	var entries []map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	bookmarks := make([]bookmark.Bookmark, 0, len(entries))
	for i, fields := range entries {
		var b bookmark.Bookmark
		if err := stringField(fields, "name", &b.Name); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := stringField(fields, "path", &b.Path); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, nil
}

func stringField(fields map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := fields[key]
	if !ok {
		return fmt.Errorf("missing field %q", key)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("field %q: %w", key, err)
	}
	return nil
}

// encode renders the compact on-disk form: no HTML escaping, raw U+2028 and
// U+2029, and no trailing newline.
func encode(bookmarks []bookmark.Bookmark) ([]byte, error) {
	if bookmarks == nil {
		bookmarks = []bookmark.Bookmark{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(bookmarks); err != nil {
		return nil, err
	}
	return unescapeLineSeparators(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

var (
	escapedLS = []byte(`\u2028`)
	escapedPS = []byte(`\u2029`)
)

// unescapeLineSeparators turns the \u2028 and \u2029 escapes that
// encoding/json always emits back into raw UTF-8. Escape sequences are
// walked pairwise so an escaped backslash followed by "u2028" is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, escapedLS) && !bytes.Contains(data, escapedPS) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 == len(data) {
			out = append(out, data[i])
			continue
		}
		switch rest := data[i:]; {
		case bytes.HasPrefix(rest, escapedLS):
			out = append(out, "\u2028"...)
			i += len(escapedLS) - 1
		case bytes.HasPrefix(rest, escapedPS):
			out = append(out, "\u2029"...)
			i += len(escapedPS) - 1
		default:
			out = append(out, data[i], data[i+1])
			i++
		}
	}
	return out
}
