// Package mtree resolves paths inside the mutable tree representation
// of a repository checkout.
package mtree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath is returned when no path segments were given.
	ErrEmptyPath = errors.New("no path given")
	// ErrSubdirNotFound is returned when an intermediate path segment
	// does not name a subtree.
	ErrSubdirNotFound = errors.New("subdirectory not found")
	// ErrFileNotFound is returned by LookupFile when the final path
	// segment does not name a file.
	ErrFileNotFound = errors.New("file not found")
)

// Tree is a mutable tree node. Lookup resolves a single child name to a
// file checksum, a subtree, both, or neither; an empty checksum and a
// nil subtree mean the name does not exist.
type Tree interface {
	Lookup(name string) (checksum string, subtree Tree, err error)
}

// Lookup descends into tree along path and returns whatever the final
// segment resolves to.
func Lookup(tree Tree, path []string) (string, Tree, error) {
	switch len(path) {
	case 0:
		return "", nil, ErrEmptyPath
	case 1:
		return tree.Lookup(path[0])
	default:
		_, subtree, err := tree.Lookup(path[0])
		if err != nil {
			return "", nil, err
		}
		if subtree == nil {
			return "", nil, fmt.Errorf("%w: %q", ErrSubdirNotFound, path[0])
		}
		return Lookup(subtree, path[1:])
	}
}

// LookupFile resolves path to the checksum of a file.
func LookupFile(tree Tree, path []string) (string, error) {
	checksum, _, err := Lookup(tree, path)
	if err != nil {
		return "", err
	}
	if checksum == "" {
		return "", fmt.Errorf("%w: %q", ErrFileNotFound, path[len(path)-1])
	}
	return checksum, nil
}
