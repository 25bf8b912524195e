package internal

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRegistry_Register(t *testing.T) {
	r := NewFilterRegistry()

	f := &Filter{
		Name: "echo",
		Fn:   func(_ *Renderer, call *FilterCall) (any, error) { return call.Value, nil },
	}

	require.NoError(t, r.Register(f))
	got, ok := r.Get("echo")
	assert.True(t, ok)
	assert.Same(t, f, got)
	assert.Equal(t, []string{"echo"}, r.List())

	err := r.Register(f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFilterExists)
}

func TestFilterRegistry_Register_Invalid(t *testing.T) {
	r := NewFilterRegistry()

	err := r.Register(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFilterNilFilter)

	err = r.Register(&Filter{Fn: func(*Renderer, *FilterCall) (any, error) { return nil, nil }})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFilterEmptyName)

	assert.Panics(t, func() { r.MustRegister(nil) })
}

func TestRegisterBuiltinFilters(t *testing.T) {
	r := NewFilterRegistry()
	RegisterBuiltinFilters(r)

	expected := []string{
		FilterNameDate, FilterNameDefault, FilterNameDigit, FilterNameEscapeHTML,
		FilterNameExtra, FilterNameFixed, FilterNameFT, FilterNameHash,
		FilterNameJoin, FilterNameJSON, FilterNameLength, FilterNameLower,
		FilterNamePlural, FilterNameRound, FilterNameSubstr, FilterNameUpper,
		FilterNameZero,
	}
	assert.Equal(t, expected, r.List())
}

func TestParseFilterSpec(t *testing.T) {
	tests := []struct {
		spec string
		name string
		args []string
		ok   bool
	}{
		{"upper", "upper", nil, true},
		{" upper ", "upper", nil, true},
		{"substr(1, 3)", "substr", []string{"1", "3"}, true},
		{"plural(a,b,  c)", "plural", []string{"a", "b", "c"}, true},
		{"join( - )", "join", []string{" - "}, true},
		{"join()", "", nil, false},
		{"f(a(b))", "", nil, false},
		{"", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			name, args, ok := parseFilterSpec(tt.spec)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilter_Plural(t *testing.T) {
	forms := []string{"one", "few", "many"}
	tests := []struct {
		n        float64
		expected string
	}{
		{1, "one"},
		{11, "many"},
		{21, "one"},
		{4, "few"},
		{14, "many"},
		{22, "few"},
		{112, "many"},
		{0, "many"},
		{5, "many"},
		{101, "one"},
		{-3, "few"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, pluralForm(tt.n, forms), "n=%v", tt.n)
	}

	assert.Equal(t, "few", pluralForm(5, []string{"one", "few"}))
	assert.Equal(t, "", pluralForm(5, []string{"one"}))
	assert.Equal(t, "", pluralForm(3, []string{"one"}))

	r, _ := newTestRenderer(t)
	assert.Equal(t, "яблока", mustResolve(t, r, "n|plural(яблоко, яблока, яблок)", map[string]any{"n": 3}))
	assert.Equal(t, "яблок", mustResolve(t, r, "n|plural(яблоко, яблока, яблок)", map[string]any{"n": "25"}))
}

func TestFilter_Hash(t *testing.T) {
	assert.Equal(t, "000061", hashValue("a", 6))
	assert.Equal(t, "000c83", hashValue("ab", 6))
	assert.Equal(t, "000000000c83", hashValue("ab", 50))
	assert.Equal(t, "c83", hashValue("ab", 3))

	assert.Equal(t, hashValue("abc", 6), hashValue("abc", 6))
	assert.NotEqual(t, hashValue("abc", 6), hashValue("abd", 6))
	assert.Equal(t, hashValue(map[string]any{"a": 1}, 8), hashValue(map[string]any{"a": 1}, 8))

	r, _ := newTestRenderer(t)
	v := mustResolve(t, r, "x|hash", map[string]any{"x": "a"})
	assert.Equal(t, "000061", v)
	v = mustResolve(t, r, "x|hash(12)", map[string]any{"x": []any{1, 2}})
	assert.Len(t, v, HashMaxLength)
}

func TestFilter_Digit(t *testing.T) {
	r, _ := newTestRenderer(t)
	tests := []struct {
		token    string
		value    any
		expected any
	}{
		{"n|digit", 1234567, "1 234 567"},
		{"n|digit", 999, "999"},
		{"n|digit", -1234, "-1 234"},
		{"n|digit", 1234.5, "1 234,5"},
		{"n|digit(2)", 1234.5, "1 234,50"},
		{"n|digit(0)", 1234.5, "1 234"},
		{"n|digit", "1000", "1 000"},
		{"n|digit", "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustResolve(t, r, tt.token, map[string]any{"n": tt.value}))
		})
	}
}

func TestFilter_FixedRoundZero(t *testing.T) {
	r, _ := newTestRenderer(t)
	tests := []struct {
		token    string
		value    any
		expected any
	}{
		{"n|fixed(2)", 3.14159, "3.14"},
		{"n|fixed", 2, "2.0"},
		{"n|fixed(2, true)", 2.5, 2.5},
		{"n|fixed(2, false)", 2.5, "2.50"},
		{"n|fixed", "abc", "abc"},
		{"n|round", 2.5, 3.0},
		{"n|round", 2.4, 2.0},
		{"n|round", -2.5, -2.0},
		{"n|round", "2.5", "2.5"},
		{"n|zero", 5, "05"},
		{"n|zero", 5.5, "05.5"},
		{"n|zero", "7", "07"},
		{"n|zero", 12, 12},
		{"n|zero", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustResolve(t, r, tt.token, map[string]any{"n": tt.value}))
		})
	}
}

func TestFilter_TextFilters(t *testing.T) {
	r, _ := newTestRenderer(t)
	tests := []struct {
		token    string
		value    any
		expected any
	}{
		{"s|substr(1, 3)", "hello", "ell"},
		{"s|substr(2)", "hello", "llo"},
		{"s|substr(-3)", "hello", "llo"},
		{"s|substr(1, 0)", "hello", ""},
		{"s|substr(9)", "hello", ""},
		{"s|substr(1, 2)", "привет", "ри"},
		{"s|substr(1)", 12345, 12345},
		{"s|length", "héllo", 5},
		{"s|length", 12345, 5},
		{"s|length", []any{1, 2}, 2},
		{"s|length", map[string]any{"a": 1, "b": 2}, 2},
		{"s|lower", "ÀB", "àb"},
		{"s|upper", 12, "12"},
		{"s|json", map[string]any{"a": 1}, `{"a":1}`},
		{"s|json", "<b>", `"<b>"`},
		{"s|extra", map[string]any{"role": "tab", "data-id": 1}, `data-id="1" role="tab"`},
		{"s|extra", "plain", "plain"},
		{"s|join", []any{"a", "b"}, "a,b"},
		{"s|join(-)", []string{"a", "b"}, "a-b"},
		{"s|join(-)", "ab", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustResolve(t, r, tt.token, map[string]any{"s": tt.value}))
		})
	}
}

func TestFilter_JSONFailurePassesThrough(t *testing.T) {
	r, _ := newTestRenderer(t)
	ch := make(chan int)

	v := mustResolve(t, r, "c|json", map[string]any{"c": ch})
	assert.Equal(t, ch, v)

	v = mustResolve(t, r, "f|json", map[string]any{"f": math.Inf(1)})
	assert.Equal(t, math.Inf(1), v)
}

func TestFilter_EscapeHTML(t *testing.T) {
	r, _ := newTestRenderer(t)
	tests := []struct {
		in       string
		expected string
	}{
		{"&", "&amp"},
		{"<", "&lt"},
		{">", "&gt"},
		{`"`, "&quot"},
		{"'", "&apos"},
		{`<a href="x">'&'</a>`, "&lta href=&quotx&quot&gt&apos&amp&apos&lt/a&gt"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustResolve(t, r, "s|escapeHTML", map[string]any{"s": tt.in}))
		})
	}
}

func TestFilter_FT(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"dimensions", "10x20", "10×20"},
		{"spaced dimensions", "10 x 20", "10×20"},
		{"cyrillic x", "10 х 20", "10×20"},
		{"dash", "a - b", "a" + NBSP + "— b"},
		{"guillemets after tag", `<p>"Hi"</p>`, "<p>«Hi»</p>"},
		{"short word", "в лесу", "в" + NBSP + "лесу"},
		{"long words", "forest trees", "forest trees"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, typograph(tt.in))
		})
	}

	r, _ := newTestRenderer(t)
	assert.Equal(t, 10, mustResolve(t, r, "n|ft", map[string]any{"n": 10}))
}

func TestFilter_Default(t *testing.T) {
	r, _ := newTestRenderer(t)
	tests := []struct {
		name     string
		token    string
		data     map[string]any
		expected any
	}{
		{"truthy passes", "a|default(x)", map[string]any{"a": "set"}, "set"},
		{"path fallback", "a|default(b)", map[string]any{"a": "", "b": "B"}, "B"},
		{"number literal", "a|default(42)", map[string]any{"a": nil}, 42.0},
		{"bool literal", "a|default(true)", map[string]any{"a": 0}, true},
		{"string literal", "a|default(hello)", map[string]any{"a": false}, "hello"},
		{"no fallback", "a|default", map[string]any{"a": []any{}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mustResolve(t, r, tt.token, tt.data))
		})
	}
}

func TestFilter_Date(t *testing.T) {
	r, _ := newTestRenderer(t)
	ts := time.Date(2024, time.March, 5, 7, 8, 9, 0, time.UTC)

	tests := []struct {
		format   string
		expected string
	}{
		{"d.m.Y H:i:s", "05.03.2024 07:08:09"},
		{"j n y", "5 3 24"},
		{"D, M", "Tue, Mar"},
		{"l F", "Tuesday March"},
		{"N w", "2 2"},
		{`\Y Y`, "Y 2024"},
		{"Y-m-d", "2024-03-05"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := r.formatDate(ts, tt.format, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestFilter_Date_Sunday(t *testing.T) {
	r, _ := newTestRenderer(t)
	sunday := time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC)

	out, err := r.formatDate(sunday, "N w l", 0)
	require.NoError(t, err)
	assert.Equal(t, "7 0 Sunday", out)
}

func TestFilter_Date_Inputs(t *testing.T) {
	r, _ := newTestRenderer(t)

	assert.Equal(t, "2024-03-05", mustResolve(t, r, "d|date", map[string]any{"d": time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)}))
	assert.Equal(t, "1970-01-01", mustResolve(t, r, "d|date", map[string]any{"d": 0}))
	assert.Equal(t, "05.03.2024", mustResolve(t, r, "d|date(d.m.Y)", map[string]any{"d": "2024-03-05"}))
	assert.Equal(t, "not a date", mustResolve(t, r, "d|date", map[string]any{"d": "not a date"}))
}

func TestFilter_Date_Russian(t *testing.T) {
	r, _ := newTestRenderer(t, withLanguage(LanguageRussian))
	ts := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	out, err := r.formatDate(ts, "j E Y, l", 0)
	require.NoError(t, err)
	assert.Equal(t, "5 марта 2024, вторник", out)

	out, err = r.formatDate(ts, "F", 0)
	require.NoError(t, err)
	assert.Equal(t, "март", out)
}

func TestFilter_Date_FallsBackToEnglishNames(t *testing.T) {
	r, _ := newTestRenderer(t, withLanguage("de"))
	ts := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	out, err := r.formatDate(ts, "F", 0)
	require.NoError(t, err)
	assert.Equal(t, "March", out)
}
