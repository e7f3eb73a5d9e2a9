/*
Package freqtable reads persisted context frequency tables.

A table is a flat JSON object mapping a context window to a non-negative
integer count, as written by package corpus:

	{
	  "rmãn": 1408,
	  "ãnã": 17,
	  ...
	}

Two tables make up a frequency model: one for contexts of the schwa ă
(conventionally freq_uh.json) and one for the circumflex â (freq_ah.json).
*/
package freqtable

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/npillmayer/orthography"
	"github.com/npillmayer/schuko/tracing"
)

// Conventional file names of the two tables.
const (
	SchwaFile      = "freq_uh.json"
	CircumflexFile = "freq_ah.json"
)

// tracer writes to trace with key 'orthography'
func tracer() tracing.Trace {
	return tracing.Select("orthography")
}

// Reader streams the entries of one JSON table in file order.
// It implements orthography.ContextReader.
type Reader struct {
	dec     *json.Decoder
	started bool
	done    bool
}

// NewReader creates a table reader on r.
func NewReader(r io.Reader) *Reader {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &Reader{dec: dec}
}

// Next returns the next context and its count.
// It returns io.EOF after the closing brace of the table.
func (r *Reader) Next() (string, int, error) {
	if r.done {
		return "", 0, io.EOF
	}
	if !r.started {
		if err := r.expectDelim('{'); err != nil {
			return "", 0, err
		}
		r.started = true
	}
	if !r.dec.More() {
		if err := r.expectDelim('}'); err != nil {
			return "", 0, err
		}
		r.done = true
		return "", 0, io.EOF
	}
	tok, err := r.dec.Token()
	if err != nil {
		return "", 0, unexpected(err)
	}
	context, ok := tok.(string)
	if !ok {
		return "", 0, fmt.Errorf("expected context string, have %v", tok)
	}
	var n json.Number
	if err := r.dec.Decode(&n); err != nil {
		return "", 0, fmt.Errorf("count for context %q: %w", context, unexpected(err))
	}
	count, err := n.Int64()
	if err != nil {
		return "", 0, fmt.Errorf("count for context %q is not an integer: %s", context, n)
	}
	return context, int(count), nil
}

func (r *Reader) expectDelim(d json.Delim) error {
	tok, err := r.dec.Token()
	if err != nil {
		return unexpected(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != d {
		return fmt.Errorf("expected %q, have %v", d, tok)
	}
	return nil
}

// unexpected turns a premature end of input into an error.
func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}

// Load compiles a frequency model from two table streams. Either reader may
// be nil for an absent table.
func Load(name string, schwa, circumflex io.Reader) (*orthography.FrequencyModel, error) {
	var s, c orthography.ContextReader
	if schwa != nil {
		s = NewReader(schwa)
	}
	if circumflex != nil {
		c = NewReader(circumflex)
	}
	return orthography.LoadFrequencyModel(name, s, c)
}

// LoadFiles compiles a frequency model from two table files.
//
// A missing file is not an error: its table stays empty and a degraded-mode
// notice is traced. A file which exists but cannot be read or decoded yields
// an *orthography.ResourceError.
func LoadFiles(schwaPath, circumflexPath string) (*orthography.FrequencyModel, error) {
	schwa, err := openTable(schwaPath)
	if err != nil {
		return nil, err
	}
	if schwa != nil {
		defer schwa.Close()
	}
	circumflex, err := openTable(circumflexPath)
	if err != nil {
		return nil, err
	}
	if circumflex != nil {
		defer circumflex.Close()
	}
	name := fmt.Sprintf("%s+%s", filepath.Base(schwaPath), filepath.Base(circumflexPath))
	var s, c io.Reader
	if schwa != nil {
		s = schwa
	}
	if circumflex != nil {
		c = circumflex
	}
	return Load(name, s, c)
}

// LoadDir loads the conventionally named tables from directory dir.
func LoadDir(dir string) (*orthography.FrequencyModel, error) {
	return LoadFiles(filepath.Join(dir, SchwaFile), filepath.Join(dir, CircumflexFile))
}

func openTable(path string) (*os.File, error) {
	if path == "" {
		tracer().Infof("no frequency table configured, running degraded")
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Infof("frequency table %s not found, running degraded", path)
		return nil, nil
	}
	if err != nil {
		return nil, &orthography.ResourceError{Resource: path, Err: err}
	}
	return f, nil
}
