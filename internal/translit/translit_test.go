package translit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableKey(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	tests := []struct {
		word string
		want []string
	}{
		{"ネコ", []string{"ne", "ko"}},
		{"キャット", []string{"kya", "'", "to"}},
		{"コーヒー", []string{"ko", "-", "hi", "-"}},
		{"パーティー", []string{"pa", "-", "ti", "-"}},
		{"ジュース", []string{"ju", "-", "su"}},
		{"TV", []string{"T", "V"}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Key(tt.word))
		})
	}
}

func TestKeyFallsBackWhenDigraphMissing(t *testing.T) {
	table := &Table{entries: map[string]string{"ア": "a", "ャ": "ya"}}
	assert.Equal(t, []string{"a", "ya"}, table.Key("アャ"))
}

func TestLoadTableFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ね": "ne", "こ": "ko"}`), 0o644))
	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ne", "ko"}, table.Key("ねこ"))
}

func TestLoadTableRejectsLongKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ねこ!": "neko"}`), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	table, err := Load("")
	require.NoError(t, err)
	assert.NotEmpty(t, table.Entries())
}

func TestEntriesSorted(t *testing.T) {
	table := &Table{entries: map[string]string{"イ": "i", "ア": "a", "ウ": "u"}}
	entries := table.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "ア", entries[0].Text)
	assert.Equal(t, "イ", entries[1].Text)
	assert.Equal(t, "ウ", entries[2].Text)
}

func TestIndexCachesKeys(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	ix := NewIndex(table, []string{"ネコ", "イヌ"})
	assert.Equal(t, "ne ko", Format(ix.Key("ネコ")))
	assert.Equal(t, "i nu", Format(ix.Key("イヌ")))
	assert.Equal(t, "sa ka na", Format(ix.Key("サカナ")))
}
