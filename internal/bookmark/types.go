package bookmark

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Bookmark is a named reference to a directory.
// Field order matters: the storage format writes name before path.
type Bookmark struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// New creates a bookmark
func New(name, path string) Bookmark {
	return Bookmark{Name: name, Path: path}
}

// Validate checks that both fields are set.
// Whether Path points at a directory is checked by the manager, not here.
func (b Bookmark) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required),
		validation.Field(&b.Path, validation.Required),
	)
}

// Index returns the position of the first bookmark named name, or -1
func Index(bookmarks []Bookmark, name string) int {
	for i := range bookmarks {
		if bookmarks[i].Name == name {
			return i
		}
	}
	return -1
}
