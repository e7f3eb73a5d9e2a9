package orthography

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultThreshold is the probability a trained classifier must exceed to
// override the character heuristics.
const DefaultThreshold = 0.8

// Predictor is a trained classifier, e.g. an nbclassifier.Model.
type Predictor interface {
	Predict(text string) (Standard, error)
	PredictProba(text string) (map[Standard]float64, error)
}

// Classification explains how a label has been found.
type Classification struct {
	Heuristic   Standard // verdict of the character heuristics
	Label       Standard // final label
	Probability float64  // probability of the predicted label, 0 without a predictor
	Overridden  bool     // the predictor has overridden the heuristic verdict
}

// Classifier labels texts by orthographic standard.
//
// Markers exclusive to either standard are looked for first. If a Predictor
// is present and its confidence for a label is strictly greater than the
// threshold, its label wins over the markers, including a verdict of
// Unknown or Mixed. Predictor failures are treated as if no predictor were
// present.
type Classifier struct {
	predictor Predictor
	threshold float64
}

// NewClassifier creates a classifier. p may be nil. A threshold outside of
// [0…1] is replaced by DefaultThreshold.
func NewClassifier(p Predictor, threshold float64) *Classifier {
	if threshold < 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Classifier{predictor: p, threshold: threshold}
}

// Classify returns the orthographic standard of text.
func (c *Classifier) Classify(text string) Standard {
	return c.Explain(text).Label
}

// Explain classifies text and reports the single stages.
func (c *Classifier) Explain(text string) Classification {
	heuristic := Heuristic(text)
	result := Classification{Heuristic: heuristic, Label: heuristic}
	if c == nil || c.predictor == nil {
		return result
	}
	label, err := c.predictor.Predict(text)
	if err != nil {
		tracer().Errorf("classifier failed, using heuristics: %v", err)
		return result
	}
	proba, err := c.predictor.PredictProba(text)
	if err != nil {
		tracer().Errorf("classifier failed, using heuristics: %v", err)
		return result
	}
	result.Probability = proba[label]
	if result.Probability > c.threshold {
		result.Label = label
		result.Overridden = label != heuristic
	}
	tracer().Debugf("classify: heuristic=%s predicted=%s p=%.3f label=%s",
		heuristic, label, result.Probability, result.Label)
	return result
}

// standardBDigraphs are looked for case-insensitively.
var standardBDigraphs = []string{"sh", "ts", "lj", "nj", "dz"}

// Heuristic classifies text by exclusive markers alone:
// composed diacritics for Standard A, digraphs and ã for Standard B.
// Text is NFC-composed first, so decomposed input is labelled alike.
func Heuristic(text string) Standard {
	text = norm.NFC.String(text)
	hasA, hasBChar := false, false
	for _, r := range text {
		switch {
		case isStandardAMarker(r):
			hasA = true
		case isUnifiedVowel(r):
			hasBChar = true
		}
	}
	hasBPattern := false
	lower := strings.ToLower(text)
	for _, d := range standardBDigraphs {
		if strings.Contains(lower, d) {
			hasBPattern = true
			break
		}
	}
	hasB := hasBChar || hasBPattern
	switch {
	case hasA && hasB:
		return Mixed
	case hasA:
		return StandardA
	case hasB:
		return StandardB
	}
	return Unknown
}

// isStandardAMarker is true for characters which occur in Standard A only.
// U+0326 is the comma below of d̦, which has no precomposed form.
func isStandardAMarker(r rune) bool {
	switch r {
	case 'ș', 'ț', 'ă', 'â', 'î', 'ľ', 'ń',
		'Ș', 'Ț', 'Ă', 'Â', 'Î', 'Ľ', 'Ń',
		'ş', 'ţ', 'Ş', 'Ţ',
		'\u0326':
		return true
	}
	return false
}
