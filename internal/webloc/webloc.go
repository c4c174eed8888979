// Package webloc reads the single URL stored inside an Apple .webloc link file.
package webloc

import (
	"errors"

	"howett.net/plist"
)

// ErrNoURL indicates that a link file decoded successfully but carries no URL.
var ErrNoURL = errors.New("webloc: property list has no URL entry")

// Parser extracts the URL from raw link-file bytes. Implementations return an
// error when the bytes do not decode or hold no URL string; callers treat
// either outcome as a droppable entry, never a fatal condition.
type Parser interface {
	Parse(data []byte) (string, error)
}

// linkDocument mirrors the one meaningful field of the .webloc schema.
type linkDocument struct {
	URL string `plist:"URL"`
}

// PlistParser implements Parser for XML and binary property lists.
type PlistParser struct{}

// NewPlistParser constructs the property-list backed Parser.
func NewPlistParser() *PlistParser {
	return &PlistParser{}
}

// Parse decodes data as a property list and returns its URL field.
func (parser *PlistParser) Parse(data []byte) (string, error) {
	var decodedDocument linkDocument
	if _, decodeError := plist.Unmarshal(data, &decodedDocument); decodeError != nil {
		return "", decodeError
	}
	if decodedDocument.URL == "" {
		return "", ErrNoURL
	}
	return decodedDocument.URL, nil
}

var _ Parser = (*PlistParser)(nil)
