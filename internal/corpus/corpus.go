// Package corpus loads question corpora from JSON files.
package corpus

import (
	"fmt"
	"sort"

	"github.com/verte-zerg/flashcards/internal/model"
)

// Corpus is an immutable term -> definition lookup.
type Corpus struct {
	entries map[string]string
	keys    []string
}

// New builds a Corpus from entries. The map is copied.
func New(entries map[string]string) *Corpus {
	c := &Corpus{entries: make(map[string]string, len(entries))}
	for k, v := range entries {
		c.entries[k] = v
	}
	c.keys = make([]string, 0, len(c.entries))
	for k := range c.entries {
		c.keys = append(c.keys, k)
	}
	sort.Strings(c.keys)
	return c
}

// LoadWords merges the term -> definition objects stored at paths. Later
// files override earlier ones on key collision.
func LoadWords(paths []string) (*Corpus, error) {
	if len(paths) == 0 {
		return nil, &DataLoadError{Err: fmt.Errorf("no corpus files given")}
	}
	merged := map[string]string{}
	for _, path := range paths {
		var entries map[string]string
		if err := DecodeFile(path, WordsSchema, &entries); err != nil {
			return nil, err
		}
		for k, v := range entries {
			merged[k] = v
		}
	}
	if len(merged) == 0 {
		return nil, &DataLoadError{Path: paths[len(paths)-1], Err: fmt.Errorf("corpus is empty")}
	}
	return New(merged), nil
}

// Keys returns the distinct question keys in sorted order. Callers must not modify it.
func (c *Corpus) Keys() []string {
	return c.keys
}

// Answer returns the definition stored for key.
func (c *Corpus) Answer(key string) (string, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (c *Corpus) Len() int {
	return len(c.keys)
}

type countryRecord struct {
	Country    string   `json:"country"`
	Population *float64 `json:"population"`
}

// LoadCountries reads the country dataset, drops records without a
// population and returns the rest sorted by descending population. At least
// minSize usable records are required.
func LoadCountries(path string, minSize int) ([]model.Country, error) {
	var records []countryRecord
	if err := DecodeFile(path, CountriesSchema, &records); err != nil {
		return nil, err
	}
	countries := make([]model.Country, 0, len(records))
	for _, r := range records {
		if r.Population == nil {
			continue
		}
		countries = append(countries, model.Country{Name: r.Country, Population: *r.Population})
	}
	if len(countries) < minSize {
		return nil, &DataLoadError{
			Path: path,
			Err:  fmt.Errorf("need at least %d countries with a population, found %d", minSize, len(countries)),
		}
	}
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Population > countries[j].Population
	})
	return countries, nil
}
