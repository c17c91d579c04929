// Package words provides the word lists used by the puzzle: the dictionary
// that decides what counts as a word, and the ledger of words a curator has
// approved for use in levels.
package words

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"
)

//go:embed defaults/words.txt
var defaultWords string

// Dictionary is a sorted, deduplicated, uppercase word list.
// It also remembers the last word passed to IsWord so that a curator can
// forget it (or re-admit it) without repeating the word.
type Dictionary struct {
	mu        sync.RWMutex
	words     []string
	lastTried string
}

// NewDictionary builds a dictionary from arbitrary-case words.
func NewDictionary(list []string) *Dictionary {
	return &Dictionary{words: normalize(list)}
}

// DefaultDictionary returns the dictionary embedded in the binary.
func DefaultDictionary() *Dictionary {
	return mustReadDictionary(defaultWords)
}

func mustReadDictionary(list string) *Dictionary {
	d, err := ReadDictionary(strings.NewReader(list))
	if err != nil {
		panic(fmt.Sprintf("words: embedded dictionary: %v", err))
	}
	return d
}

// LoadDictionary reads a word list file, one word per line.
// An empty path loads the embedded default list.
func LoadDictionary(path string) (*Dictionary, error) {
	if path == "" {
		return DefaultDictionary(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open dictionary: %w", err)
	}
	defer f.Close()

	d, err := ReadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("words: cannot read dictionary %s: %w", path, err)
	}
	return d, nil
}

// ReadDictionary reads one word per line from r.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	return NewDictionary(lines), nil
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.words)
}

// IsWord reports whether s is in the dictionary and records s as the
// last word tried. s must already be uppercase, as grid letters are.
func (d *Dictionary) IsWord(s string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lastTried = s
	_, found := slices.BinarySearch(d.words, s)
	return found
}

// Contains reports whether s is in the dictionary without touching the
// last-tried marker.
func (d *Dictionary) Contains(s string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, found := slices.BinarySearch(d.words, strings.ToUpper(s))
	return found
}

// HasPrefix reports whether some word is strictly longer than s and starts
// with s. When s is itself a word, only the entry after it can extend it,
// since all extensions of s sort directly after s.
func (d *Dictionary) HasPrefix(s string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	pos, found := slices.BinarySearch(d.words, s)
	if found {
		pos++
	}
	return pos < len(d.words) && strings.HasPrefix(d.words[pos], s)
}

// LastTried returns the most recent word passed to IsWord.
func (d *Dictionary) LastTried() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.lastTried
}

// ForgetLast removes the last word tried from the dictionary.
// It returns the forgotten word, or "" if it was not present.
func (d *Dictionary) ForgetLast() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.remove(d.lastTried) {
		return d.lastTried
	}
	return ""
}

// AddLast puts the last word tried back into the dictionary.
func (d *Dictionary) AddLast() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.insert(d.lastTried)
}

// Forget removes word from the dictionary for the rest of the run.
func (d *Dictionary) Forget(word string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.remove(strings.ToUpper(word))
}

// Add inserts word into the dictionary.
func (d *Dictionary) Add(word string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.insert(strings.ToUpper(word))
}

func (d *Dictionary) insert(word string) bool {
	if word == "" {
		return false
	}
	pos, found := slices.BinarySearch(d.words, word)
	if found {
		return false
	}
	d.words = slices.Insert(d.words, pos, word)
	return true
}

func (d *Dictionary) remove(word string) bool {
	pos, found := slices.BinarySearch(d.words, word)
	if !found {
		return false
	}
	d.words = slices.Delete(d.words, pos, pos+1)
	return true
}

// normalize uppercases, trims, sorts and deduplicates a word list.
// Blank lines are dropped.
func normalize(list []string) []string {
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
