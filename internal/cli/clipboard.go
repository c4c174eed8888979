package cli

import (
	"github.com/atotto/clipboard"
)

// Copier places rendered text on the system clipboard.
type Copier interface {
	Copy(text string) error
}

// systemClipboard implements Copier using github.com/atotto/clipboard.
type systemClipboard struct{}

// Copy writes text to the system clipboard.
func (systemClipboard) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ Copier = systemClipboard{}
