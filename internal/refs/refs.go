// Package refs extracts identifiers from flatpak-style ref strings of
// the shape kind/id/arch/branch, e.g. "app/org.example.App/x86_64/stable".
package refs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedRef is returned for ref strings that do not have the
// expected four segments.
var ErrMalformedRef = errors.New("malformed ref")

// Extension ref suffixes that are not part of the application id.
var idSuffixes = []string{"Sources", "Debug", "Locale"}

func segments(ref string) ([]string, error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedRef, ref)
	}
	return parts, nil
}

// Arch returns the architecture segment of ref.
func Arch(ref string) (string, error) {
	parts, err := segments(ref)
	if err != nil {
		return "", err
	}
	return parts[2], nil
}

// AppID returns the application id segment of ref. A trailing extension
// component such as "Sources" is stripped, so the ref of an extension
// yields the id of the application it extends.
func AppID(ref string) (string, error) {
	parts, err := segments(ref)
	if err != nil {
		return "", err
	}

	id := parts[1]
	idParts := strings.Split(id, ".")
	for _, suffix := range idSuffixes {
		if idParts[len(idParts)-1] == suffix {
			return strings.Join(idParts[:len(idParts)-1], "."), nil
		}
	}
	return id, nil
}
