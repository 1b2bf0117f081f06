// Package translit derives pronunciation keys from a transliteration table.
package translit

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/verte-zerg/flashcards/internal/corpus"
)

//go:embed katakana.json
var defaultTable []byte

// digraphMarkers are the small kana that combine with the preceding character.
const digraphMarkers = "ャュョァィゥェォ"

// Table maps single characters and digraphs to their transliteration.
type Table struct {
	entries map[string]string
}

// Entry is a single table row.
type Entry struct {
	Text    string
	Reading string
}

// Default returns the embedded katakana table.
func Default() (*Table, error) {
	var entries map[string]string
	if err := corpus.Decode("embedded katakana table", defaultTable, corpus.TableSchema, &entries); err != nil {
		return nil, err
	}
	return &Table{entries: entries}, nil
}

// Load reads a table from path, or returns the embedded default when path is empty.
func Load(path string) (*Table, error) {
	if path == "" {
		return Default()
	}
	var entries map[string]string
	if err := corpus.DecodeFile(path, corpus.TableSchema, &entries); err != nil {
		return nil, err
	}
	return &Table{entries: entries}, nil
}

// Key splits word into table units, checking digraphs before single
// characters. Characters missing from the table are kept as-is.
func (t *Table) Key(word string) []string {
	runes := []rune(word)
	key := make([]string, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if i+1 < len(runes) && strings.ContainsRune(digraphMarkers, runes[i+1]) {
			if v, ok := t.entries[string(runes[i:i+2])]; ok {
				key = append(key, v)
				i++
				continue
			}
		}
		ch := string(runes[i])
		if v, ok := t.entries[ch]; ok {
			key = append(key, v)
			continue
		}
		key = append(key, ch)
	}
	return key
}

// Entries returns the table rows ordered by text.
func (t *Table) Entries() []Entry {
	out := make([]Entry, 0, len(t.entries))
	for k, v := range t.entries {
		out = append(out, Entry{Text: k, Reading: v})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Text < out[j].Text
	})
	return out
}

// Index caches the pronunciation key of every corpus word. It is built once
// per load and read-only afterwards.
type Index struct {
	table *Table
	keys  map[string][]string
}

// NewIndex precomputes keys for words.
func NewIndex(table *Table, words []string) *Index {
	ix := &Index{table: table, keys: make(map[string][]string, len(words))}
	for _, w := range words {
		ix.keys[w] = table.Key(w)
	}
	return ix
}

// Key returns the cached key for word, computing it for unknown words.
func (ix *Index) Key(word string) []string {
	if key, ok := ix.keys[word]; ok {
		return key
	}
	return ix.table.Key(word)
}

// Format renders a key for display.
func Format(key []string) string {
	return strings.Join(key, " ")
}
