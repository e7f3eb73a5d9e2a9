/*
Package corpus builds the artifacts the orthography engine loads: context
frequency tables from a Standard A corpus, and labeled samples for training
the classifier from two single-standard corpora.
*/
package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/orthography"
	"github.com/npillmayer/orthography/freqtable"
	"github.com/npillmayer/orthography/nbclassifier"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/norm"
)

// tracer writes to trace with key 'orthography'
func tracer() tracing.Trace {
	return tracing.Select("orthography")
}

const maxLineLength = 1024 * 1024

// Builder counts the contexts of ă and â in Standard A text.
//
// Words are brought into unified spelling before windows are cut, so the
// keys match the windows the vowel resolver looks up. Word-initial vowels
// are not counted, as they are resolved by position alone.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	schwa       map[string]int
	circumflex  map[string]int
	words       int
	occurrences [2]int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		schwa:      make(map[string]int),
		circumflex: make(map[string]int),
	}
}

// AddText scans text for words containing ă or â and counts their contexts.
func (b *Builder) AddText(text string) {
	text = strings.ToLower(norm.NFC.String(text))
	for _, word := range strings.FieldsFunc(text, isNotWordRune) {
		b.addWord(word)
	}
}

// AddReader calls AddText for every line of r.
func (b *Builder) AddReader(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	for scanner.Scan() {
		b.AddText(scanner.Text())
	}
	return scanner.Err()
}

func (b *Builder) addWord(word string) {
	if !strings.ContainsAny(word, "ăâ") {
		return
	}
	b.words++
	consonants := []rune(orthography.NormalizeMisc(orthography.ToUnifiedConsonants(word)))
	unified := make([]rune, len(consonants))
	for i, r := range consonants {
		unified[i] = collapse(r)
	}
	for i := 1; i < len(consonants); i++ {
		switch consonants[i] {
		case 'ă':
			b.schwa[orthography.ContextWindow(unified, i)]++
			b.occurrences[orthography.Schwa]++
		case 'â':
			b.circumflex[orthography.ContextWindow(unified, i)]++
			b.occurrences[orthography.Circumflex]++
		}
	}
}

// collapse maps a single central vowel to the unified vowel.
func collapse(r rune) rune {
	c := []rune(orthography.CollapseVowels(string(r)))
	if len(c) != 1 {
		return r
	}
	return c[0]
}

func isNotWordRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r)
}

// Tables returns the context counts for ă (schwa) and â (circumflex).
// The maps are owned by the builder.
func (b *Builder) Tables() (schwa, circumflex map[string]int) {
	return b.schwa, b.circumflex
}

// Reader returns the counts of res as a context stream, sorted by context.
func (b *Builder) Reader(res orthography.Resolution) orthography.ContextReader {
	counts := b.schwa
	if res == orthography.Circumflex {
		counts = b.circumflex
	}
	return newMapReader(counts)
}

// Model compiles the current counts into a frequency model.
func (b *Builder) Model(name string) (*orthography.FrequencyModel, error) {
	return orthography.LoadFrequencyModel(name, b.Reader(orthography.Schwa), b.Reader(orthography.Circumflex))
}

// WriteDir writes both tables to directory dir under their conventional
// names, creating dir if necessary.
func (b *Builder) WriteDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tables := []struct {
		name   string
		counts map[string]int
	}{
		{freqtable.SchwaFile, b.schwa},
		{freqtable.CircumflexFile, b.circumflex},
	}
	for _, t := range tables {
		if err := writeTableFile(filepath.Join(dir, t.name), t.counts); err != nil {
			return err
		}
	}
	tracer().Infof("corpus: %d words, %d contexts for ă (%d occurrences), %d contexts for â (%d occurrences)",
		b.words, len(b.schwa), b.occurrences[orthography.Schwa],
		len(b.circumflex), b.occurrences[orthography.Circumflex])
	return nil
}

func writeTableFile(path string, counts map[string]int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTable(f, counts); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// WriteTable writes counts as a JSON object with sorted keys, in the format
// read by package freqtable.
func WriteTable(w io.Writer, counts map[string]int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(counts) // maps are encoded with sorted keys
}

// mapReader streams a count map in key order.
type mapReader struct {
	keys   []string
	counts map[string]int
	index  int
}

func newMapReader(counts map[string]int) *mapReader {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &mapReader{keys: keys, counts: counts}
}

func (r *mapReader) Next() (string, int, error) {
	if r.index >= len(r.keys) {
		return "", 0, io.EOF
	}
	k := r.keys[r.index]
	r.index++
	return k, r.counts[k], nil
}

// TrainingPairs reads two single-standard corpora line by line and labels
// every non-empty line with its standard. Either reader may be nil.
func TrainingPairs(standardA, standardB io.Reader) ([]nbclassifier.Sample, error) {
	var samples []nbclassifier.Sample
	sources := []struct {
		r     io.Reader
		label orthography.Standard
	}{
		{standardA, orthography.StandardA},
		{standardB, orthography.StandardB},
	}
	for _, src := range sources {
		if src.r == nil {
			tracer().Infof("no %s corpus given", src.label)
			continue
		}
		scanner := bufio.NewScanner(src.r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
		n := 0
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			samples = append(samples, nbclassifier.Sample{Text: line, Label: src.label})
			n++
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s corpus: %w", src.label, err)
		}
		tracer().Infof("%s corpus: %d samples", src.label, n)
	}
	return samples, nil
}
