// C++ Polyscope compiles its matcap images straight into the library:
// each src/render/bindata/bindata_*.cpp file declares one or more
// std::array<unsigned char, N> literals whose 0xNN tokens are the raw
// bytes of a RADIANCE HDR image. Package bindata finds those
// declarations and turns them back into bytes, so the images can be
// shipped as ordinary files instead.
package bindata

import (
	"regexp"
	"strconv"
	"strings"
)

// Only one declaration shape is recognized: a const std::array of
// unsigned char with a brace-delimited literal body. The body may span
// any number of lines; commas, whitespace and comments inside it are
// skipped because only hexToken matches contribute bytes. This is not
// a C++ parser and does not try to be.
var (
	declToken = regexp.MustCompile(`const\s+std::array<unsigned\s+char,\s*\d+>\s+(\w+)\s*=\s*\{([^}]+)\}`)
	hexToken  = regexp.MustCompile(`0x([0-9a-fA-F]{2})`)
)

// Array is one decoded declaration: the identifier it was declared
// under and the bytes its literal body encodes.
type Array struct {
	Name string
	Data []byte
}

// Arrays holds every array found in one source document, ordered by
// first appearance. The order matters: channel selection tie-breaks on
// it.
type Arrays []Array

// Extract scans a bindata source document and decodes every
// declaration it recognizes. A document with no declarations yields an
// empty result; that is a normal outcome, not an error. If the same
// name is declared twice, the later body wins but the name keeps its
// original position.
//
// The declared array size is never checked against the decoded byte
// count; a mismatch is accepted silently.
func Extract(doc []byte) Arrays {
	var found Arrays
	for _, m := range declToken.FindAllSubmatch(doc, -1) {
		name := string(m[1])
		data := decodeBody(m[2])
		if i := found.index(name); i >= 0 {
			found[i].Data = data
			continue
		}
		found = append(found, Array{Name: name, Data: data})
	}
	return found
}

// decodeBody collects every two-digit hex token in a literal body, in
// order of occurrence. Anything that is not exactly 0x plus two hex
// digits does not match and contributes nothing.
func decodeBody(body []byte) []byte {
	tokens := hexToken.FindAllSubmatch(body, -1)
	data := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		// The pattern admits exactly two hex digits, so this
		// cannot fail.
		v, _ := strconv.ParseUint(string(tok[1]), 16, 8)
		data = append(data, byte(v))
	}
	return data
}

// Select picks the array for one output channel. A non-empty suffix
// selects the first array whose name ends with it; an empty suffix
// selects the first array outright. A suffix that matches nothing
// falls back to the empty-suffix rule, which covers the static
// materials whose single array carries no channel marker. Selecting
// from an empty Arrays reports failure.
func (as Arrays) Select(suffix string) (Array, bool) {
	if len(as) == 0 {
		return Array{}, false
	}
	if suffix != "" {
		for _, a := range as {
			if strings.HasSuffix(a.Name, suffix) {
				return a, true
			}
		}
	}
	return as[0], true
}

// Get returns the data declared under name.
func (as Arrays) Get(name string) ([]byte, bool) {
	if i := as.index(name); i >= 0 {
		return as[i].Data, true
	}
	return nil, false
}

// Names lists the declaration names in document order.
func (as Arrays) Names() []string {
	names := make([]string, len(as))
	for i, a := range as {
		names[i] = a.Name
	}
	return names
}

func (as Arrays) index(name string) int {
	for i, a := range as {
		if a.Name == name {
			return i
		}
	}
	return -1
}
