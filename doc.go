/*
Package orthography converts Aromanian text between its two competing writing
standards and tells them apart.

Standard A is the DIARO (Caragiu-Marioțeanu) orthography, using composed
diacritics: ă â î for the central vowels, ș ț ľ ń d̦ for consonants.
Standard B is the Cunia orthography, using digraphs sh ts lj nj dz and a
single unified central vowel ã.

Going from A to B is a deterministic table lookup. Going from B to A is
lossy at the vowel: ã may stand for ă, â or î. The VowelResolver decides
using an optional lexicon of exception words, a word-initial rule, then
corpus-derived context frequencies, then a fixed default. Context frequencies are compiled into a frozen double-array
trie (see package dat), as are all glyph tables.

Classification scans for markers exclusive to either standard and may
consult an optional trained classifier (see package nbclassifier), which
overrides the markers when it is confident.

All resources are loaded once and held by an Engine; after construction
nothing is mutated, so an Engine may be shared between goroutines.

Further Reading

	https://github.com/senisioi/aromanian
	https://github.com/arotranslate/AroTranslate

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package orthography

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'orthography'
func tracer() tracing.Trace {
	return tracing.Select("orthography")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
