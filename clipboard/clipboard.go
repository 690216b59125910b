// Package clipboard provides access to a copy/paste clipboard and converts
// between clipboard text (UTF-8) and buffer bytes (Latin-1).
//
// If available it uses the system clipboard,
// but if unavailable it falls back to a simple, memory buffer.
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// A Clipboard stores and fetches UTF-8 text.
// Implementations should support concurrent access.
type Clipboard interface {
	// Store replaces the clipboard contents.
	Store(text string) error
	// Fetch returns the clipboard contents.
	Fetch() (string, error)
}

// New returns the system clipboard, or an empty memory clipboard when the
// system clipboard is unavailable.
func New() Clipboard {
	if clipboard.Unsupported {
		return NewMem()
	}
	return sysClipboard{}
}

// NewMem returns a new, empty, memory-based clipboard.
func NewMem() Clipboard {
	return &memClipboard{}
}

type sysClipboard struct{}

func (sysClipboard) Store(text string) error {
	return clipboard.WriteAll(text)
}

func (sysClipboard) Fetch() (string, error) {
	return clipboard.ReadAll()
}

type memClipboard struct {
	mu   sync.Mutex
	text string
}

func (m *memClipboard) Store(text string) error {
	m.mu.Lock()
	m.text = text
	m.mu.Unlock()
	return nil
}

func (m *memClipboard) Fetch() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}
