package staticfmt

import "io"

// noArg marks a specifier that consumes no positional argument.
const noArg = -1

// specifier is one parsed conversion: either a positional conversion bound
// to an argument index, or a literal escape that renders fixed text.
type specifier struct {
	conv    Conversion
	arg     int    // positional index, or noArg
	literal string // rendered text when arg == noArg
}

// Pattern is the parsed form of a format string: N+1 literal spans
// interleaved with N specifiers, in source order. A Pattern is immutable
// after [Parse] and safe for concurrent use; parse once, render many times.
type Pattern struct {
	src      string
	literals []string
	specs    []specifier
	numArgs  int
}

// String returns the original pattern text.
func (p *Pattern) String() string { return p.src }

// NumArgs returns the number of positional arguments the pattern consumes.
func (p *Pattern) NumArgs() int { return p.numArgs }

// Format validates args against the pattern and renders the result.
func (p *Pattern) Format(args ...any) (string, error) {
	if err := p.Validate(args...); err != nil {
		return "", err
	}
	return p.Render(args...), nil
}

// Format parses pattern, validates args against it, and renders the result.
// It returns the first failure encountered in that order.
func Format(pattern string, args ...any) (string, error) {
	p, err := Parse(pattern)
	if err != nil {
		return "", err
	}
	return p.Format(args...)
}

// Write formats pattern with args and writes the result to w.
func Write(w io.Writer, pattern string, args ...any) error {
	s, err := Format(pattern, args...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
