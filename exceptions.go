package orthography

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ExceptionReader yields Standard A spellings of exception words one by one.
// It returns io.EOF when exhausted.
type ExceptionReader interface {
	Next() (string, error)
}

// Exceptions is a lexicon of words whose central vowels are not left to the
// frequency model. Each entry is keyed by the unified lower-case spelling
// and holds the resolution of every unified vowel of the word, in order.
//
// Exceptions are consulted before any other rule, including the word-initial
// rule. An Exceptions value must not be modified once it is in use by a
// VowelResolver.
type Exceptions struct {
	words map[string][]Resolution // e.g., "cãndu" => [circumflex]
}

// NewExceptions creates an empty lexicon.
func NewExceptions() *Exceptions {
	return &Exceptions{words: make(map[string][]Resolution)}
}

// LoadExceptions reads all entries from reader. Read errors and entries
// rejected by Add yield an *ResourceError.
func LoadExceptions(name string, reader ExceptionReader) (*Exceptions, error) {
	ex := NewExceptions()
	for {
		word, err := reader.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, &ResourceError{Resource: name, Err: err}
		}
		if err = ex.Add(word); err != nil {
			return nil, &ResourceError{Resource: name, Err: err}
		}
	}
	tracer().Infof("exceptions %s: %d words", name, ex.Len())
	return ex, nil
}

// Add registers a word given in Standard A spelling. Every central vowel of
// the word must be one of ă, â or î. A later entry for the same unified
// spelling replaces an earlier one.
func (ex *Exceptions) Add(word string) error {
	word = strings.ToLower(norm.NFC.String(strings.TrimSpace(word)))
	if word == "" {
		return fmt.Errorf("%w: empty exception word", ErrInvalidArgument)
	}
	var resolutions []Resolution
	for _, r := range word {
		switch r {
		case 'ă':
			resolutions = append(resolutions, Schwa)
		case 'â':
			resolutions = append(resolutions, Circumflex)
		case 'î':
			resolutions = append(resolutions, WordInitial)
		}
	}
	key := toUnified(word)
	if n := strings.Count(key, string(UnifiedVowel)); n != len(resolutions) {
		return fmt.Errorf("%w: exception %q has %d unresolved central vowels",
			ErrInvalidArgument, word, n-len(resolutions))
	}
	if ex.words == nil {
		ex.words = make(map[string][]Resolution)
	}
	ex.words[key] = resolutions
	return nil
}

// Lookup returns the resolution of the unified vowel at rune index at of
// word, if word is in the lexicon.
func (ex *Exceptions) Lookup(word []rune, at int) (Resolution, bool) {
	if ex == nil || len(ex.words) == 0 || at < 0 || at >= len(word) {
		return DefaultResolution, false
	}
	lower := make([]rune, len(word))
	k := 0
	for i, r := range word {
		lower[i] = unicode.ToLower(r)
		if i < at && lower[i] == UnifiedVowel {
			k++
		}
	}
	resolutions, found := ex.words[string(lower)]
	if !found || k >= len(resolutions) {
		return DefaultResolution, false
	}
	return resolutions[k], true
}

// Len returns the number of words in the lexicon.
func (ex *Exceptions) Len() int {
	if ex == nil {
		return 0
	}
	return len(ex.words)
}
