package weave

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDictionaryYAML = `
greeting:
  en: Hello
  ru: Привет
units:
  1: one
  2: two
nested:
  list:
    - en: first
      ru: первый
`

func TestLoadDictionary_YAML(t *testing.T) {
	dict, err := LoadDictionary(strings.NewReader(testDictionaryYAML))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"en": "Hello", "ru": "Привет"}, dict["greeting"])
	assert.Equal(t, map[string]any{"1": "one", "2": "two"}, dict["units"])

	ru := Translate(dict, "ru")
	assert.Equal(t, "Привет", ru["greeting"])
	assert.Equal(t, map[string]any{"list": []any{"первый"}}, ru["nested"])
}

func TestLoadData_JSON(t *testing.T) {
	data, err := LoadData(strings.NewReader(`{"user": {"name": "Ann", "tags": ["a", "b"]}, "n": 3}`))
	require.NoError(t, err)

	engine := MustNew()
	out, err := engine.Render("${user.name}:${user.tags|join(/)}:${n}", data)
	require.NoError(t, err)
	assert.Equal(t, "Ann:a/b:3", out)
}

func TestLoadData_Edges(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		data, err := LoadData(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, data)
	})

	t.Run("root is a list", func(t *testing.T) {
		_, err := LoadData(strings.NewReader("- a\n- b\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDictionaryNotTree)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := LoadData(strings.NewReader("a: [1, 2"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgDictionaryDecode)
	})
}

func TestLoadDictionaryFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDictionaryYAML), 0o644))

	dict, err := LoadDictionaryFile(path)
	require.NoError(t, err)

	engine := MustNew(WithLanguage("ru"), WithDictionary(dict))
	out, err := engine.Render("_{greeting}", nil)
	require.NoError(t, err)
	assert.Equal(t, "Привет", out)
}

func TestLoadDictionaryFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := LoadDictionaryFile(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	file, ok := customErr.GetMetadata(MetaKeyFile)
	assert.True(t, ok)
	assert.Equal(t, path, file)
}

func TestLoadDictionaryFile_DecodeErrorCarriesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("greeting: [1,"), 0o644))

	_, err := LoadDictionaryFile(path)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), ErrMsgDictionaryDecode))

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	file, ok := customErr.GetMetadata(MetaKeyFile)
	assert.True(t, ok)
	assert.Equal(t, path, file)
}

func TestDefaultDictionary(t *testing.T) {
	tests := []struct {
		lang    string
		month   string
		weekday string
	}{
		{"en", "January", "Mon"},
		{"ru", "январь", "пн"},
		{"de", "January", "Mon"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			dict := DefaultDictionary(tt.lang)
			months := dict["month"].(map[string]any)
			weekdays := dict["weekday"].(map[string]any)
			assert.Equal(t, tt.month, months["1"].(map[string]any)["full"])
			assert.Equal(t, tt.weekday, weekdays["1"].(map[string]any)["short"])
		})
	}
}

func TestMergeData(t *testing.T) {
	base := map[string]any{"a": map[string]any{"x": 1}}
	out := MergeData(base, map[string]any{"a": map[string]any{"y": 2}})

	assert.Equal(t, map[string]any{"a": map[string]any{"x": 1, "y": 2}}, out)
	assert.Equal(t, map[string]any{"x": 1}, base["a"])
}
