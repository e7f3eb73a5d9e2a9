/*
Package nbclassifier is a character n-gram Naive Bayes classifier telling
apart the orthographic standards.

Texts are lower-cased, white space is collapsed, and the text is split into
grapheme clusters. Every run of NGramMin to NGramMax clusters is a feature.
Feature counts are weighted by smoothed inverse document frequency and
normalized to unit length, then scored by a multinomial Naive Bayes model.

A Model is trained by Train, persisted by Save as a JSON document and read
back by Load. It implements orthography.Predictor.
*/
package nbclassifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strings"

	"github.com/npillmayer/orthography"
	"github.com/npillmayer/schuko/tracing"
	"github.com/rivo/uniseg"
)

// FormatVersion is the version of the persisted model format.
// Models with a different version are rejected by Load.
const FormatVersion = 1

// tracer writes to trace with key 'orthography'
func tracer() tracing.Trace {
	return tracing.Select("orthography")
}

// Model is a trained classifier. It is read-only after training or loading.
type Model struct {
	Format         int            `json:"format"`
	NGramMin       int            `json:"ngram_min"`
	NGramMax       int            `json:"ngram_max"`
	Labels         []string       `json:"labels"`
	Vocabulary     map[string]int `json:"vocabulary"`
	IDF            []float64      `json:"idf"`
	ClassLogPrior  []float64      `json:"class_log_prior"`
	FeatureLogProb [][]float64    `json:"feature_log_prob"`
	standards      []orthography.Standard
}

var errNoModel = errors.New("no classifier model")

var _ orthography.Predictor = (*Model)(nil)

// Predict returns the most probable label for text.
func (m *Model) Predict(text string) (orthography.Standard, error) {
	jll, err := m.jointLogLikelihood(text)
	if err != nil {
		return orthography.Unknown, err
	}
	best := 0
	for c := range jll {
		if jll[c] > jll[best] {
			best = c
		}
	}
	return m.standards[best], nil
}

// PredictProba returns the probability of every label for text.
func (m *Model) PredictProba(text string) (map[orthography.Standard]float64, error) {
	jll, err := m.jointLogLikelihood(text)
	if err != nil {
		return nil, err
	}
	maxLL := math.Inf(-1)
	for _, ll := range jll {
		maxLL = math.Max(maxLL, ll)
	}
	sum := 0.0
	for _, ll := range jll {
		sum += math.Exp(ll - maxLL)
	}
	proba := make(map[orthography.Standard]float64, len(jll))
	for c, ll := range jll {
		proba[m.standards[c]] = math.Exp(ll-maxLL) / sum
	}
	return proba, nil
}

func (m *Model) jointLogLikelihood(text string) ([]float64, error) {
	if m == nil || len(m.standards) == 0 {
		return nil, errNoModel
	}
	x := m.vectorize(text)
	jll := make([]float64, len(m.standards))
	for c := range jll {
		jll[c] = m.ClassLogPrior[c]
		for j, v := range x {
			jll[c] += v * m.FeatureLogProb[c][j]
		}
	}
	return jll, nil
}

// vectorize maps text to its sparse, unit-length tf-idf vector.
func (m *Model) vectorize(text string) map[int]float64 {
	x := make(map[int]float64)
	for _, g := range ngrams(text, m.NGramMin, m.NGramMax) {
		if j, ok := m.Vocabulary[g]; ok {
			x[j]++
		}
	}
	return m.normalize(x)
}

// normalize weighs term counts x by idf and scales x to unit length, in place.
func (m *Model) normalize(x map[int]float64) map[int]float64 {
	norm := 0.0
	for j, tf := range x {
		x[j] = tf * m.IDF[j]
		norm += x[j] * x[j]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for j := range x {
			x[j] /= norm
		}
	}
	return x
}

// ngrams returns all grapheme n-grams of the pre-processed text, n from lo
// to hi.
func ngrams(text string, lo, hi int) []string {
	text = strings.Join(strings.Fields(strings.ToLower(text)), " ")
	clusters := make([]string, 0, len(text))
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		clusters = append(clusters, g.Str())
	}
	var grams []string
	for n := lo; n <= hi; n++ {
		for i := 0; i+n <= len(clusters); i++ {
			grams = append(grams, strings.Join(clusters[i:i+n], ""))
		}
	}
	return grams
}

// Save writes m as JSON to w.
func (m *Model) Save(w io.Writer) error {
	if m == nil {
		return errNoModel
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(m)
}

// Load reads a model written by Save. Undecodable input, a different format
// version or inconsistent dimensions yield an *orthography.ResourceError.
func Load(name string, r io.Reader) (*Model, error) {
	m := &Model{}
	if err := json.NewDecoder(r).Decode(m); err != nil {
		return nil, &orthography.ResourceError{Resource: name, Err: err}
	}
	if m.Format != FormatVersion {
		return nil, &orthography.ResourceError{Resource: name,
			Err: fmt.Errorf("incompatible model format %d, expected %d", m.Format, FormatVersion)}
	}
	if err := m.init(); err != nil {
		return nil, &orthography.ResourceError{Resource: name, Err: err}
	}
	tracer().Infof("classifier %s: %d labels, %d features, n-grams %d…%d",
		name, len(m.Labels), len(m.Vocabulary), m.NGramMin, m.NGramMax)
	return m, nil
}

// LoadFile reads a model from path. If the file does not exist, LoadFile
// returns a nil model and no error: classification continues on heuristics.
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Infof("classifier %s not found, running degraded", path)
		return nil, nil
	}
	if err != nil {
		return nil, &orthography.ResourceError{Resource: path, Err: err}
	}
	defer f.Close()
	return Load(path, f)
}

// init checks dimensions and resolves the labels.
func (m *Model) init() error {
	if m.NGramMin < 1 || m.NGramMax < m.NGramMin {
		return fmt.Errorf("invalid n-gram range %d…%d", m.NGramMin, m.NGramMax)
	}
	if len(m.Labels) < 2 {
		return fmt.Errorf("model needs at least 2 labels, has %d", len(m.Labels))
	}
	nf := len(m.Vocabulary)
	if len(m.IDF) != nf {
		return fmt.Errorf("idf has %d entries for %d features", len(m.IDF), nf)
	}
	if len(m.ClassLogPrior) != len(m.Labels) || len(m.FeatureLogProb) != len(m.Labels) {
		return fmt.Errorf("class dimensions do not match %d labels", len(m.Labels))
	}
	for c, row := range m.FeatureLogProb {
		if len(row) != nf {
			return fmt.Errorf("class %d has %d feature weights for %d features", c, len(row), nf)
		}
	}
	for g, j := range m.Vocabulary {
		if j < 0 || j >= nf {
			return fmt.Errorf("feature %q has index %d out of range", g, j)
		}
	}
	m.standards = make([]orthography.Standard, len(m.Labels))
	for c, l := range m.Labels {
		std, err := orthography.ParseStandard(l)
		if err != nil {
			return err
		}
		m.standards[c] = std
	}
	return nil
}
