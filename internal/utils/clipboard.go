package utils

import "github.com/atotto/clipboard"

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the operating system clipboard.
type SystemClipboard struct{}

// NewSystemClipboard returns the operating system clipboard.
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// WriteAll implements Clipboard. It fails when no clipboard utility
// (xclip, xsel, wl-copy, pbcopy, ...) is available.
func (c *SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
