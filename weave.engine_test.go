package weave

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-weave/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Defaults(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)

	assert.Equal(t, DefaultLanguage, engine.Language())
	assert.Equal(t, BuiltinFilters(), engine.Filters())
	assert.Len(t, engine.Filters(), 17)
	assert.Equal(t, DefaultMaxDepth, engine.config.maxDepth)
	assert.Equal(t, DefaultMaxIterations, engine.config.maxIterations)
	assert.Equal(t, DefaultLoopAdvisoryThreshold, engine.config.loopAdvisoryThreshold)
}

func TestNew_Language(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"RU", "ru"},
		{"pt-BR", "pt"},
		{"", DefaultLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			engine, err := New(WithLanguage(tt.code))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, engine.Language())
		})
	}
}

func TestNew_InvalidLanguage(t *testing.T) {
	_, err := New(WithLanguage("!!"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidLanguage)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(err, &customErr))
	lang, ok := customErr.GetMetadata(MetaKeyLanguage)
	assert.True(t, ok)
	assert.Equal(t, "!!", lang)

	assert.Panics(t, func() { MustNew(WithLanguage("!!")) })
}

func TestNew_NegativeLimits(t *testing.T) {
	tests := []struct {
		option Option
		name   string
	}{
		{WithMaxDepth(-1), OptionMaxDepth},
		{WithMaxIterations(-1), OptionMaxIterations},
		{WithLoopAdvisoryThreshold(-1), OptionLoopAdvisoryThreshold},
		{WithMaxRangeSize(-1), OptionMaxRangeSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.option)
			require.Error(t, err)

			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))
			option, ok := customErr.GetMetadata(MetaKeyOption)
			assert.True(t, ok)
			assert.Equal(t, tt.name, option)
		})
	}
}

func TestNew_ZeroLimitsMeanUnlimited(t *testing.T) {
	engine, err := New(WithMaxDepth(0), WithMaxIterations(0), WithLoopAdvisoryThreshold(0))
	require.NoError(t, err)

	out, err := engine.Render("#{if a}#{if a}#{if a}x#{endif}#{endif}#{endif}", map[string]any{"a": true})
	require.NoError(t, err)
	assert.Equal(t, "x", out)
}

func TestWithMaxRangeSize(t *testing.T) {
	var diags []Diagnostic
	engine, err := New(
		WithMaxRangeSize(3),
		WithDiagnosticHandler(func(d Diagnostic) { diags = append(diags, d) }),
	)
	require.NoError(t, err)

	assert.Equal(t, "123", engine.MustRender("#{for i in 1..3}${i}#{endfor}", nil))
	assert.Empty(t, diags)

	tmpl := "#{for i in 1..4}${i}#{endfor}"
	assert.Equal(t, tmpl, engine.MustRender(tmpl, nil))
	require.Len(t, diags, 1)
	assert.Equal(t, DiagnosticPerformanceAdvisory, diags[0].Kind)
	assert.Equal(t, 3, diags[0].Count)
}

func TestWithDictionary(t *testing.T) {
	dict := map[string]any{
		"greeting": map[string]any{"en": "Hello", "ru": "Привет"},
		"month":    map[string]any{"1": map[string]any{"full": "Январь!"}},
	}

	engine, err := New(WithLanguage("ru"), WithDictionary(dict))
	require.NoError(t, err)

	out, err := engine.Render("_{greeting} _{month.1.full} _{month.2.full}", nil)
	require.NoError(t, err)
	assert.Equal(t, "Привет Январь! февраль", out)

	// the caller's dictionary is not collapsed in place
	assert.Equal(t, map[string]any{"en": "Hello", "ru": "Привет"}, dict["greeting"])
}

func TestWithDictionary_Merges(t *testing.T) {
	engine, err := New(
		WithDictionary(map[string]any{"a": "A", "nav": map[string]any{"home": "Home"}}),
		WithDictionary(map[string]any{"b": "B", "nav": map[string]any{"back": "Back"}}),
	)
	require.NoError(t, err)

	out, err := engine.Render("_{a}_{b}_{nav.home}_{nav.back}", nil)
	require.NoError(t, err)
	assert.Equal(t, "ABHomeBack", out)
}

func TestEngine_Dictionary_ReturnsCopy(t *testing.T) {
	engine := MustNew(WithDictionary(map[string]any{"nav": map[string]any{"home": "Home"}}))

	dict := engine.Dictionary()
	dict["nav"].(map[string]any)["home"] = "changed"
	dict["new"] = "x"

	text, err := engine.GetText("nav.home", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Home", text)
	assert.NotContains(t, engine.Dictionary(), "new")
}

func TestWithLogger_Diagnostics(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	engine := MustNew(WithLogger(zap.New(core)))

	out, err := engine.Render("#{if a}x", map[string]any{"a": true})
	require.NoError(t, err)
	assert.Equal(t, "#{if a}x", out)

	entries := logs.FilterMessage(internal.LogMsgDiagnostic).All()
	require.Len(t, entries, 1)
	assert.Equal(t, string(DiagnosticGrammarMismatch), entries[0].ContextMap()[internal.LogFieldKind])
	assert.Equal(t, "#{if a}", entries[0].ContextMap()[internal.LogFieldTag])
}

func TestWrapRenderError(t *testing.T) {
	t.Run("argument", func(t *testing.T) {
		err := wrapRenderError(internal.NewArgumentError(ErrMsgEmptyTemplate, "template"))

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		arg, ok := customErr.GetMetadata(MetaKeyArgument)
		assert.True(t, ok)
		assert.Equal(t, "template", arg)
	})

	t.Run("iteration keeps cause", func(t *testing.T) {
		cause := internal.NewIterationError(internal.PassLoops, 3)
		err := wrapRenderError(cause)

		var iterErr *internal.IterationError
		require.True(t, errors.As(err, &iterErr))
		assert.Equal(t, internal.PassLoops, iterErr.Pass)
	})

	t.Run("other", func(t *testing.T) {
		cause := errors.New("boom")
		err := wrapRenderError(cause)
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), ErrMsgRenderFailed)
	})
}
