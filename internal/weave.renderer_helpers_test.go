package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRenderer returns a renderer with the calendar names in its default
// dictionary and a slice collecting every diagnostic it emits.
func newTestRenderer(t *testing.T, mutate ...func(*RendererConfig)) (*Renderer, *[]Diagnostic) {
	t.Helper()

	config := DefaultRendererConfig()
	config.Dictionary = Translate(CalendarDictionary(), DefaultLanguage)
	for _, m := range mutate {
		m(&config)
	}

	diags := &[]Diagnostic{}
	r := NewRenderer(config, zap.NewNop(), func(d Diagnostic) {
		*diags = append(*diags, d)
	})
	return r, diags
}

func withLanguage(lang string) func(*RendererConfig) {
	return func(c *RendererConfig) {
		c.Language = lang
		c.Dictionary = Translate(Translate(CalendarDictionary(), lang), LanguageEnglish)
	}
}

func mustRender(t *testing.T, r *Renderer, template string, data map[string]any) string {
	t.Helper()
	out, err := r.Render(template, data)
	require.NoError(t, err)
	return out
}

func mustResolve(t *testing.T, r *Renderer, token string, data map[string]any) any {
	t.Helper()
	v, ok, err := r.ResolveToken(token, data)
	require.NoError(t, err)
	require.True(t, ok, "token %q did not resolve", token)
	return v
}

func diagnosticsOfKind(diags []Diagnostic, kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
