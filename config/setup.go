package config

import (
	"github.com/npillmayer/orthography"
	"github.com/npillmayer/orthography/exceptions"
	"github.com/npillmayer/orthography/freqtable"
	"github.com/npillmayer/orthography/nbclassifier"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer traces with key 'orthography'.
func tracer() tracing.Trace {
	return tracing.Select("orthography")
}

// ConfigureTracing installs trace2go as the tracer selector, configured by
// the [tracing] and [tracelevel] sections of cfg.
func ConfigureTracing(cfg *Config) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(cfg, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// NewEngine loads the resources named by cfg and creates an engine.
//
// Missing resources put the engine into degraded mode. Corrupt resources do
// the same, unless cfg.Resources.Strict is set, in which case the
// *orthography.ResourceError is returned.
func NewEngine(cfg *Config) (*orthography.Engine, error) {
	variant, err := orthography.ParseVariant(cfg.Cleaner.Variant)
	if err != nil {
		return nil, err
	}
	opts := []orthography.EngineOption{
		orthography.WithThreshold(cfg.Classifier.Threshold),
		orthography.WithVariant(variant),
	}
	freq, err := freqtable.LoadFiles(cfg.Resources.FreqSchwa, cfg.Resources.FreqCircumflex)
	if err != nil {
		if cfg.Resources.Strict {
			return nil, err
		}
		tracer().Errorf("%v, continuing without frequencies", err)
	} else {
		opts = append(opts, orthography.WithFrequencyModel(freq))
	}
	ex, err := exceptions.LoadFile(cfg.Resources.Exceptions)
	switch {
	case err != nil && cfg.Resources.Strict:
		return nil, err
	case err != nil:
		tracer().Errorf("%v, continuing without exception lexicon", err)
	case ex != nil:
		opts = append(opts, orthography.WithExceptions(ex))
	}
	model, err := nbclassifier.LoadFile(cfg.Resources.Classifier)
	switch {
	case err != nil && cfg.Resources.Strict:
		return nil, err
	case err != nil:
		tracer().Errorf("%v, continuing without classifier", err)
	case model != nil:
		opts = append(opts, orthography.WithPredictor(model))
	}
	return orthography.NewEngine(opts...), nil
}
