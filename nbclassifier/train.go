package nbclassifier

import (
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/orthography"
)

// Sample is one labeled training text.
type Sample struct {
	Text  string
	Label orthography.Standard
}

// TrainOptions control feature extraction and smoothing.
type TrainOptions struct {
	NGramMin int     // shortest n-gram, in grapheme clusters
	NGramMax int     // longest n-gram
	MinDF    int     // features occurring in fewer samples are dropped
	Alpha    float64 // additive smoothing
}

// DefaultTrainOptions returns n-grams of 1 to 3 clusters, a minimum document
// frequency of 2 and Laplace smoothing.
func DefaultTrainOptions() TrainOptions {
	return TrainOptions{NGramMin: 1, NGramMax: 3, MinDF: 2, Alpha: 1.0}
}

// Train fits a model to samples. At least two distinct labels are required.
func Train(samples []Sample, opts TrainOptions) (*Model, error) {
	if opts.NGramMin < 1 || opts.NGramMax < opts.NGramMin {
		return nil, fmt.Errorf("%w: n-gram range %d…%d", orthography.ErrInvalidArgument, opts.NGramMin, opts.NGramMax)
	}
	if opts.Alpha <= 0 {
		opts.Alpha = 1.0
	}
	classIndex := make(map[orthography.Standard]int)
	var labels []orthography.Standard
	for _, s := range samples {
		if _, ok := classIndex[s.Label]; !ok {
			classIndex[s.Label] = -1
			labels = append(labels, s.Label)
		}
	}
	if len(labels) < 2 {
		return nil, fmt.Errorf("%w: need samples of at least 2 labels, have %d",
			orthography.ErrInvalidArgument, len(labels))
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	for c, l := range labels {
		classIndex[l] = c
	}
	// document frequencies
	docs := make([]map[string]int, len(samples))
	df := make(map[string]int)
	for i, s := range samples {
		tf := make(map[string]int)
		for _, g := range ngrams(s.Text, opts.NGramMin, opts.NGramMax) {
			tf[g]++
		}
		for g := range tf {
			df[g]++
		}
		docs[i] = tf
	}
	terms := make([]string, 0, len(df))
	for g, n := range df {
		if n >= opts.MinDF {
			terms = append(terms, g)
		}
	}
	sort.Strings(terms)
	m := &Model{
		Format:     FormatVersion,
		NGramMin:   opts.NGramMin,
		NGramMax:   opts.NGramMax,
		Labels:     make([]string, len(labels)),
		Vocabulary: make(map[string]int, len(terms)),
		IDF:        make([]float64, len(terms)),
		standards:  labels,
	}
	for c, l := range labels {
		m.Labels[c] = l.String()
	}
	n := float64(len(samples))
	for j, g := range terms {
		m.Vocabulary[g] = j
		m.IDF[j] = math.Log((1+n)/(1+float64(df[g]))) + 1
	}
	// accumulate weighted features per class
	featureCount := make([][]float64, len(labels))
	for c := range featureCount {
		featureCount[c] = make([]float64, len(terms))
	}
	classCount := make([]float64, len(labels))
	for i, s := range samples {
		c := classIndex[s.Label]
		classCount[c]++
		x := m.weigh(docs[i])
		for j, v := range x {
			featureCount[c][j] += v
		}
	}
	m.ClassLogPrior = make([]float64, len(labels))
	m.FeatureLogProb = make([][]float64, len(labels))
	for c := range labels {
		m.ClassLogPrior[c] = math.Log(classCount[c] / n)
		total := 0.0
		for _, v := range featureCount[c] {
			total += v + opts.Alpha
		}
		m.FeatureLogProb[c] = make([]float64, len(terms))
		for j, v := range featureCount[c] {
			m.FeatureLogProb[c][j] = math.Log((v + opts.Alpha) / total)
		}
	}
	tracer().Infof("trained classifier on %d samples: %d labels, %d features", len(samples), len(labels), len(terms))
	return m, nil
}

// weigh turns raw n-gram counts into a unit-length tf-idf vector over the
// vocabulary of m.
func (m *Model) weigh(tf map[string]int) map[int]float64 {
	x := make(map[int]float64, len(tf))
	for g, count := range tf {
		if j, ok := m.Vocabulary[g]; ok {
			x[j] = float64(count)
		}
	}
	return m.normalize(x)
}
