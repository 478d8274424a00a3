// Package manager validates bookmark paths and orchestrates store operations.
package manager

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/kennyg/bm/internal/bookmark"
)

// Store is the persistence the manager needs. *store.Store satisfies it.
type Store interface {
	Load() ([]bookmark.Bookmark, error)
	Find(name string) (*bookmark.Bookmark, error)
	Insert(name, path string) error
	Delete(name string) error
}

// Manager validates inputs and delegates persistence to a Store.
type Manager struct {
	store Store
}

// New creates a manager on top of s
func New(s Store) *Manager {
	return &Manager{store: s}
}

// Resolve returns the directory bookmarked as name.
// The stored path must still be an existing directory.
func (m *Manager) Resolve(name string) (string, error) {
	b, err := m.store.Find(name)
	if err != nil {
		return "", err
	}
	if b == nil {
		return "", &bookmark.NotFoundError{Name: name}
	}
	if !isDir(b.Path) {
		return "", &bookmark.InvalidPathError{Name: name, Path: b.Path}
	}
	return b.Path, nil
}

// List returns every bookmark in insertion order
func (m *Manager) List() ([]bookmark.Bookmark, error) {
	return m.store.Load()
}

// Add registers path under name. The path is made absolute with symlinks
// resolved before it is stored.
func (m *Manager) Add(name, path string) error {
	if path == "" {
		return &bookmark.InvalidPathError{Name: name, Path: path}
	}
	canonical, err := canonicalize(path)
	if err != nil || !isDir(canonical) {
		return &bookmark.InvalidPathError{Name: name, Path: path}
	}
	// JSON cannot hold arbitrary bytes; the stored path would not resolve.
	if !utf8.ValidString(canonical) {
		return &bookmark.InvalidPathError{Name: name, Path: path}
	}

	b := bookmark.New(name, canonical)
	if err := b.Validate(); err != nil {
		return fmt.Errorf("invalid bookmark: %w", err)
	}
	return m.store.Insert(b.Name, b.Path)
}

// Remove unregisters name
func (m *Manager) Remove(name string) error {
	return m.store.Delete(name)
}

// Status is the health of a single bookmark
type Status struct {
	Bookmark bookmark.Bookmark
	Valid    bool
}

// Check reports, for every bookmark, whether its directory still exists
func (m *Manager) Check() ([]Status, error) {
	bookmarks, err := m.store.Load()
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(bookmarks))
	for _, b := range bookmarks {
		statuses = append(statuses, Status{Bookmark: b, Valid: isDir(b.Path)})
	}
	return statuses, nil
}

// Stale returns the bookmarks whose directory is gone
func Stale(statuses []Status) []bookmark.Bookmark {
	var stale []bookmark.Bookmark
	for _, s := range statuses {
		if !s.Valid {
			stale = append(stale, s.Bookmark)
		}
	}
	return stale
}

// Bookmarks extracts the bookmarks from statuses, keeping order
func Bookmarks(statuses []Status) []bookmark.Bookmark {
	out := make([]bookmark.Bookmark, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.Bookmark)
	}
	return out
}

// Format renders one aligned line per bookmark: the name padded to the
// widest name, a space, then the path.
func Format(bookmarks []bookmark.Bookmark) []string {
	width := NameWidth(bookmarks)

	lines := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		lines = append(lines, PadName(b.Name, width)+" "+b.Path)
	}
	return lines
}

// NameWidth returns the display width of the longest name
func NameWidth(bookmarks []bookmark.Bookmark) int {
	width := 0
	for _, b := range bookmarks {
		if w := lipgloss.Width(b.Name); w > width {
			width = w
		}
	}
	return width
}

// PadName right-pads name with spaces to width display cells
func PadName(name string, width int) string {
	if pad := width - lipgloss.Width(name); pad > 0 {
		return name + strings.Repeat(" ", pad)
	}
	return name
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
