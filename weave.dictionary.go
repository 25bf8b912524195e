package weave

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-weave/internal"
	"gopkg.in/yaml.v3"
)

// Translate collapses every language-keyed leaf of dict, such as
// {"en": "Hello", "ru": "Привет"}, to its entry for lang. Nodes without
// an entry for lang are kept and their children translated. The result is
// a new structure; dict is not modified.
func Translate(dict map[string]any, lang string) map[string]any {
	return internal.Translate(dict, lang)
}

// DefaultDictionary returns the built-in month and weekday names collapsed
// to lang, with English for languages that have no names of their own.
// The date filter reads month.<1-12>.<short|full|genitive> and
// weekday.<0-6>.<short|full> from it.
func DefaultDictionary(lang string) map[string]any {
	return Translate(Translate(internal.CalendarDictionary(), lang), calendarFallbackLanguage)
}

// LoadData decodes a YAML or JSON document whose root is a mapping. Keys
// of nested mappings are converted to strings so paths can address them.
// An empty document yields an empty map.
func LoadData(r io.Reader) (map[string]any, error) {
	var raw any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, NewDictionaryError(ErrMsgDictionaryDecode, "", err)
	}
	if raw == nil {
		return map[string]any{}, nil
	}
	m, ok := normalizeKeys(raw).(map[string]any)
	if !ok {
		return nil, NewDictionaryError(ErrMsgDictionaryNotTree, "", nil)
	}
	return m, nil
}

// LoadDictionary decodes a dictionary document. Leaves may be plain
// strings or language-keyed mappings; collapse them with Translate or pass
// the result to WithDictionary.
func LoadDictionary(r io.Reader) (map[string]any, error) {
	return LoadData(r)
}

// LoadDictionaryFile reads and decodes a dictionary file.
func LoadDictionaryFile(path string) (map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewDictionaryError(ErrMsgDictionaryRead, path, err)
	}
	defer f.Close()

	dict, err := LoadDictionary(f)
	if err != nil {
		var customErr *cuserr.CustomError
		if errors.As(err, &customErr) {
			return nil, customErr.WithMetadata(MetaKeyFile, path)
		}
		return nil, NewDictionaryError(ErrMsgDictionaryDecode, path, err)
	}
	return dict, nil
}

// normalizeKeys converts map[any]any nodes produced by yaml.v3 for
// non-string keys into map[string]any, recursively.
func normalizeKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalizeKeys(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeKeys(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeKeys(item)
		}
		return out
	default:
		return v
	}
}
