package bookmark

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when no bookmark has the requested name.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s is not found", e.Name)
}

// DuplicateNameError is returned when adding a name that is already registered.
// Path is the directory the existing bookmark points at.
type DuplicateNameError struct {
	Name string
	Path string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s is already registered (%s = %s)", e.Name, e.Name, e.Path)
}

// InvalidPathError is returned when a path does not exist or is not a
// directory, either at add time or when resolving a stale bookmark.
type InvalidPathError struct {
	Name string
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%s (%s) is invalid directory path", e.Name, e.Path)
}

// IOError wraps a filesystem failure on the storage file.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError is returned when the storage file is not a valid bookmark list.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("corrupt bookmark file %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsDuplicate reports whether err is a DuplicateNameError
func IsDuplicate(err error) bool {
	var target *DuplicateNameError
	return errors.As(err, &target)
}

// IsInvalidPath reports whether err is an InvalidPathError
func IsInvalidPath(err error) bool {
	var target *InvalidPathError
	return errors.As(err, &target)
}
