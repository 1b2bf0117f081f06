package corpus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWordsMergesSources(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"cat": "neko"}`)
	b := writeFile(t, dir, "b.json", `{"dog": "inu"}`)

	c, err := LoadWords([]string{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"cat", "dog"}, c.Keys())
	answer, ok := c.Answer("cat")
	require.True(t, ok)
	assert.Equal(t, "neko", answer)
}

func TestLoadWordsLastFileWins(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.json", `{"cat": "neko", "fish": "sakana"}`)
	b := writeFile(t, dir, "b.json", `{"cat": "nyanko"}`)

	c, err := LoadWords([]string{a, b})
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())
	answer, _ := c.Answer("cat")
	assert.Equal(t, "nyanko", answer)
}

func TestLoadWordsErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name  string
		paths []string
	}{
		{"no files", nil},
		{"missing file", []string{filepath.Join(dir, "absent.json")}},
		{"malformed json", []string{writeFile(t, dir, "bad.json", `{"cat": "neko"`)}},
		{"array instead of object", []string{writeFile(t, dir, "array.json", `["cat"]`)}},
		{"non-string answer", []string{writeFile(t, dir, "num.json", `{"cat": 3}`)}},
		{"empty key", []string{writeFile(t, dir, "emptykey.json", `{"": "neko"}`)}},
		{"empty corpus", []string{writeFile(t, dir, "empty.json", `{}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWords(tt.paths)
			require.Error(t, err)
			var loadErr *DataLoadError
			require.True(t, errors.As(err, &loadErr), "expected DataLoadError, got %T", err)
		})
	}
}

func TestLoadWordsErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")
	_, err := LoadWords([]string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadCountriesFiltersAndSorts(t *testing.T) {
	path := writeFile(t, t.TempDir(), "countries.json", `[
		{"country": "Spain", "population": 47000000},
		{"country": "Atlantis", "population": null},
		{"country": "France", "population": 68000000},
		{"country": "Lemuria"},
		{"country": "Italy", "population": 59000000, "continent": "Europe"}
	]`)

	countries, err := LoadCountries(path, 3)
	require.NoError(t, err)
	require.Len(t, countries, 3)
	assert.Equal(t, "France", countries[0].Name)
	assert.Equal(t, "Italy", countries[1].Name)
	assert.Equal(t, "Spain", countries[2].Name)
	assert.Equal(t, 68000000.0, countries[0].Population)
}

func TestLoadCountriesErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"object instead of array", `{"country": "France"}`},
		{"missing country", `[{"population": 1}]`},
		{"string population", `[{"country": "France", "population": "many"}]`},
		{"negative population", `[{"country": "France", "population": -1}]`},
		{"too few", `[{"country": "France", "population": 1}, {"country": "Spain", "population": null}]`},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, filepath.Base(t.Name())+string(rune('a'+i))+".json", tt.content)
			_, err := LoadCountries(path, 2)
			require.Error(t, err)
			var loadErr *DataLoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, path, loadErr.Path)
		})
	}
}

func TestDecodeUsesNameInError(t *testing.T) {
	var out map[string]string
	err := Decode("embedded", []byte(`{"a": 1}`), TableSchema, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedded")
}
