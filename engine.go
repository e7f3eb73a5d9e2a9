package orthography

// Engine owns the loaded resources, a frequency model and an optional
// trained classifier, and offers all text operations on top of them.
//
// An Engine is immutable after NewEngine returns and may be shared between
// goroutines. Resources are loaded by the caller, see package config for a
// ready-made setup from a configuration file.
type Engine struct {
	freq       FrequencyCounter
	exceptions *Exceptions
	predictor  Predictor
	threshold  float64
	variant    Variant
	converter  *Converter
	classifier *Classifier
	cleaner    *Cleaner
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithFrequencyModel sets the context frequencies for vowel resolution
// (default: an empty model).
func WithFrequencyModel(freq FrequencyCounter) EngineOption {
	return func(e *Engine) {
		e.freq = freq
	}
}

// WithExceptions sets a lexicon of words with fixed central vowels
// (default: none).
func WithExceptions(ex *Exceptions) EngineOption {
	return func(e *Engine) {
		e.exceptions = ex
	}
}

// WithPredictor sets a trained classifier (default: none, heuristics only).
func WithPredictor(p Predictor) EngineOption {
	return func(e *Engine) {
		e.predictor = p
	}
}

// WithThreshold sets the confidence a predictor must exceed to override the
// heuristics (default: DefaultThreshold).
func WithThreshold(threshold float64) EngineOption {
	return func(e *Engine) {
		e.threshold = threshold
	}
}

// WithVariant sets the language variant for cleaning (default: Aromanian).
func WithVariant(v Variant) EngineOption {
	return func(e *Engine) {
		e.variant = v
	}
}

// NewEngine creates an engine. Without options it runs in degraded mode:
// vowels resolve by position and default rule only, classification uses
// heuristics only.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		threshold: DefaultThreshold,
		variant:   VariantAromanian,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.freq == nil {
		tracer().Infof("no frequency model, vowel resolution uses default rule only")
	}
	if e.predictor == nil {
		tracer().Infof("no trained classifier, classification uses heuristics only")
	}
	e.converter = NewConverter(NewVowelResolver(e.freq).WithExceptions(e.exceptions))
	e.classifier = NewClassifier(e.predictor, e.threshold)
	e.cleaner = NewCleaner(e.variant)
	return e
}

// ToUnified converts text to the unified spelling of Standard B.
func (e *Engine) ToUnified(text string) string {
	return e.converter.ToUnified(text)
}

// ToStandardB converts text to Standard B.
func (e *Engine) ToStandardB(text string) string {
	return e.converter.ToStandardB(text)
}

// ToStandardA converts text to Standard A.
func (e *Engine) ToStandardA(text string) string {
	return e.converter.ToStandardA(text)
}

// Convert converts text to the standard named by target, see ParseStandard.
// Unknown targets and targets other than Standard A or B yield an error
// wrapping ErrInvalidArgument.
func (e *Engine) Convert(text, target string) (string, error) {
	std, err := ParseStandard(target)
	if err != nil {
		return "", err
	}
	return e.converter.Convert(text, std)
}

// Classify returns the orthographic standard of text.
func (e *Engine) Classify(text string) Standard {
	return e.classifier.Classify(text)
}

// Explain classifies text and reports the single stages.
func (e *Engine) Explain(text string) Classification {
	return e.classifier.Explain(text)
}

// Clean prepares raw text for the configured language variant.
func (e *Engine) Clean(text string) string {
	return e.cleaner.Clean(text)
}

// Normalize cleans text and converts it to target.
func (e *Engine) Normalize(text, target string) (string, error) {
	std, err := ParseStandard(target)
	if err != nil {
		return "", err
	}
	return e.converter.Convert(e.cleaner.Clean(text), std)
}

// Variant returns the language variant the engine cleans for.
func (e *Engine) Variant() Variant {
	return e.variant
}
