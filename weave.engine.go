package weave

import (
	"github.com/itsatony/go-weave/internal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Engine renders templates. It is immutable after creation and safe for
// concurrent use.
type Engine struct {
	config   *engineConfig
	language string
	renderer *internal.Renderer
	logger   *zap.Logger
}

// New creates a new weave Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	lang, err := NormalizeLanguage(config.language)
	if err != nil {
		return nil, err
	}
	if err := validateLimits(config); err != nil {
		return nil, err
	}

	dict := DefaultDictionary(lang)
	if config.dictionary != nil {
		dict = MergeData(dict, Translate(config.dictionary, lang))
	}

	renderer := internal.NewRenderer(internal.RendererConfig{
		Language:              lang,
		Dictionary:            dict,
		MaxDepth:              config.maxDepth,
		MaxIterations:         config.maxIterations,
		LoopAdvisoryThreshold: config.loopAdvisoryThreshold,
		MaxRangeSize:          config.maxRangeSize,
	}, logger, config.diagnosticHandler)

	logger.Debug(LogMsgEngineCreated, zap.String(LogFieldLanguage, lang))

	return &Engine{
		config:   config,
		language: lang,
		renderer: renderer,
		logger:   logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Render expands template against data. An empty template is an argument
// error and exceeding the depth or iteration limits is a limit error;
// everything else renders, leaving malformed tags in place.
func (e *Engine) Render(template string, data map[string]any) (string, error) {
	out, err := e.renderer.Render(template, data)
	if err != nil {
		return "", wrapRenderError(err)
	}
	return out, nil
}

// MustRender is like Render but panics on error.
func (e *Engine) MustRender(template string, data map[string]any) string {
	out, err := e.Render(template, data)
	if err != nil {
		panic(err)
	}
	return out
}

// ResolveToken resolves the contents of a ${...} token, such as
// "user.name|upper", against data. The bool is false when the path does
// not resolve.
func (e *Engine) ResolveToken(token string, data map[string]any) (any, bool) {
	v, ok, err := e.renderer.ResolveToken(token, data)
	if err != nil {
		e.logger.Warn(ErrMsgRenderFailed, zap.Error(err))
		return nil, false
	}
	return v, ok
}

// GetText resolves a dictionary path, trying fallback when it misses. A
// nil dict means the engine's default dictionary.
func (e *Engine) GetText(path, fallback string, dict map[string]any) (string, error) {
	if path == "" {
		e.renderer.Report(internal.Diagnostic{
			Kind:    DiagnosticArgumentError,
			Message: ErrMsgEmptyTextPath,
		})
		return "", NewArgumentError(ErrMsgEmptyTextPath, MetaKeyPath)
	}
	v, ok := e.renderer.Lookup(path, fallback, dict)
	if !ok {
		return "", NewTextNotFoundError(path, fallback)
	}
	return internal.Stringify(v), nil
}

// Language returns the active base language code.
func (e *Engine) Language() string {
	return e.language
}

// Dictionary returns a copy of the default dictionary, already collapsed
// to the active language.
func (e *Engine) Dictionary() map[string]any {
	return Translate(e.renderer.Config().Dictionary, e.language)
}

// Filters returns the names of the filters available to templates, sorted.
func (e *Engine) Filters() []string {
	return e.renderer.Filters().List()
}

// NormalizeLanguage parses a BCP 47 tag and returns its base language,
// such as "en" for "en-US".
func NormalizeLanguage(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", NewInvalidLanguageError(code, err)
	}
	base, _ := tag.Base()
	return base.String(), nil
}

func validateLimits(c *engineConfig) error {
	limits := []struct {
		option string
		value  int
	}{
		{OptionMaxDepth, c.maxDepth},
		{OptionMaxIterations, c.maxIterations},
		{OptionLoopAdvisoryThreshold, c.loopAdvisoryThreshold},
		{OptionMaxRangeSize, c.maxRangeSize},
	}
	for _, l := range limits {
		if l.value < 0 {
			return NewInvalidLimitError(l.option, l.value)
		}
	}
	return nil
}
