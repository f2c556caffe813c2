package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSet_NormalizesAndDedupes(t *testing.T) {
	s := NewSet([]string{" Password ", "password", "QWERTY", "", "  "})

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("password"))
	assert.True(t, s.Contains("qwerty"))
	assert.False(t, s.Contains("Password"), "lookups are lowercase only")
}

func TestSet_NilIsEmpty(t *testing.T) {
	var s *Set

	assert.False(t, s.Contains("anything"))
	assert.False(t, s.ContainsSubstringOf("anything", 3))
	assert.Equal(t, 0, s.Len())
}

func TestSet_ContainsSubstringOf(t *testing.T) {
	s := NewSet([]string{"cat", "dragon"})

	// Entries must be longer than minLen to match.
	assert.False(t, s.ContainsSubstringOf("concatenate", 3))
	assert.True(t, s.ContainsSubstringOf("mydragonpass", 3))
	assert.False(t, s.ContainsSubstringOf("", 3))
	assert.False(t, s.ContainsSubstringOf("unrelated", 3))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nBeta\n\nalpha\n"), 0o644))

	s, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("alpha"))
	assert.True(t, s.Contains("beta"))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestLoadCommon_FallsBackToEmbedded(t *testing.T) {
	s := LoadCommon("")
	require.NotNil(t, s)

	assert.Equal(t, len(defaultCommonSecrets), s.Len())
	assert.True(t, s.Contains("letmein"))

	// An unreadable path degrades to the embedded list too.
	s = LoadCommon(filepath.Join(t.TempDir(), "absent.txt"))
	assert.Equal(t, len(defaultCommonSecrets), s.Len())
}

func TestLoadCommon_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "common.txt")
	require.NoError(t, os.WriteFile(path, []byte("hunter2\n"), 0o644))

	s := LoadCommon(path)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.Contains("hunter2"))
}

func TestLoadDictionary_NilOnUnavailable(t *testing.T) {
	assert.Nil(t, LoadDictionary(""))
	assert.Nil(t, LoadDictionary(filepath.Join(t.TempDir(), "absent.txt")))
}

func TestLoadDictionary_CustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("dragon\nhorse\n"), 0o644))

	s := LoadDictionary(path)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.Len())
}
