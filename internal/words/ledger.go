package words

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Ledger is the persisted list of approved ("blessed") words.
// Words are uppercase and sorted in memory and lowercase on disk.
type Ledger struct {
	path  string
	words []string
}

// NewLedger returns an empty ledger backed by path. Nothing is read.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// OpenLedger creates a ledger backed by path and loads it.
func OpenLedger(path string) (*Ledger, error) {
	l := NewLedger(path)
	if err := l.Load(); err != nil {
		return nil, err
	}
	return l, nil
}

// Path returns the backing file path.
func (l *Ledger) Path() string {
	return l.path
}

// Load replaces the in-memory words with the file contents.
// A missing file loads as an empty ledger; it is created on the first Save.
func (l *Ledger) Load() error {
	data, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		l.words = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("words: cannot read ledger %s: %w", l.path, err)
	}

	l.words = normalize(strings.Split(string(data), "\n"))
	return nil
}

// Save overwrites the backing file with the current words, lowercase, one
// per line. The file is replaced atomically.
func (l *Ledger) Save() error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("words: cannot create directory %s: %w", dir, err)
	}

	var sb strings.Builder
	for _, w := range l.words {
		sb.WriteString(strings.ToLower(w))
		sb.WriteByte('\n')
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*")
	if err != nil {
		return fmt.Errorf("words: cannot write ledger: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(sb.String()); err != nil {
		tmp.Close()
		return fmt.Errorf("words: cannot write ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("words: cannot write ledger: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return fmt.Errorf("words: cannot replace ledger %s: %w", l.path, err)
	}
	return nil
}

// Contains reports whether word has been approved.
func (l *Ledger) Contains(word string) bool {
	_, found := slices.BinarySearch(l.words, strings.ToUpper(word))
	return found
}

// Insert adds word in sorted position. It returns false if the word was
// already present.
func (l *Ledger) Insert(word string) bool {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return false
	}
	pos, found := slices.BinarySearch(l.words, word)
	if found {
		return false
	}
	l.words = slices.Insert(l.words, pos, word)
	return true
}

// Approve inserts word and immediately saves the ledger.
func (l *Ledger) Approve(word string) error {
	l.Insert(word)
	return l.Save()
}

// Remove deletes word from the ledger. It returns false if it was absent.
// The caller is responsible for saving.
func (l *Ledger) Remove(word string) bool {
	pos, found := slices.BinarySearch(l.words, strings.ToUpper(word))
	if !found {
		return false
	}
	l.words = slices.Delete(l.words, pos, pos+1)
	return true
}

// Words returns a copy of the approved words in sorted order.
func (l *Ledger) Words() []string {
	return slices.Clone(l.words)
}

// Len returns the number of approved words.
func (l *Ledger) Len() int {
	return len(l.words)
}
