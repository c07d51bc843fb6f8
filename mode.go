package staticfmt

import "strings"

// delimMode locates the next delimiter in the remaining pattern text. It is
// the seam a second pattern syntax would plug into; percentMode is the only
// implementation. The two-character dispatch in the parser is still specific
// to <delim><verb> pairs, so a new mode also needs its own dispatch step.
type delimMode interface {
	// indexDelim returns the index of the next delimiter byte in s, or
	// len(s) if there is none.
	indexDelim(s string) int
	// delim returns the byte that introduces a conversion.
	delim() byte
}

type percentMode struct{}

func (percentMode) indexDelim(s string) int {
	if i := strings.IndexByte(s, '%'); i >= 0 {
		return i
	}
	return len(s)
}

func (percentMode) delim() byte { return '%' }
