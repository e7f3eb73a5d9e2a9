/*
Package exceptions reads word lexicons in plain text, for words whose
central vowels are fixed instead of being left to frequency tables.

A lexicon file lists words in Standard A spelling, separated by white space.
Text from '#' to the end of a line is a comment:

	# vowels against the statistics
	cându  mână
	îmbar
*/
package exceptions

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/npillmayer/orthography"
	"github.com/npillmayer/schuko/tracing"
)

// File is the conventional file name of a lexicon in a resource directory.
const File = "exceptions.txt"

const maxLineLength = 1 << 20

// tracer traces with key 'orthography'.
func tracer() tracing.Trace {
	return tracing.Select("orthography")
}

// Reader streams lexicon words. It implements orthography.ExceptionReader.
type Reader struct {
	scanner *bufio.Scanner
	pending []string
}

var _ orthography.ExceptionReader = (*Reader)(nil)

// NewReader creates a Reader for lexicon text.
func NewReader(reader io.Reader) *Reader {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &Reader{scanner: scanner}
}

// Next returns the next word. It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for len(r.pending) == 0 {
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		line := r.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		r.pending = strings.Fields(line)
	}
	word := r.pending[0]
	r.pending = r.pending[1:]
	return word, nil
}

// Load reads a lexicon from reader.
func Load(name string, reader io.Reader) (*orthography.Exceptions, error) {
	return orthography.LoadExceptions(name, NewReader(reader))
}

// LoadFile reads a lexicon from path. If the file does not exist, LoadFile
// returns a nil lexicon and no error.
func LoadFile(path string) (*orthography.Exceptions, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Infof("exception lexicon %s not found", path)
		return nil, nil
	}
	if err != nil {
		return nil, &orthography.ResourceError{Resource: path, Err: err}
	}
	defer f.Close()
	return Load(path, f)
}
