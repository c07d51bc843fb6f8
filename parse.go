package staticfmt

import "fmt"

// Parse parses a printf-style pattern using the built-in verbs (%d, %s).
// The doubled delimiter %% renders a literal percent sign and consumes no
// argument. Parse fails with [ErrUnknownVerb] when a verb has no registry
// entry and with [ErrTruncatedPattern] when the pattern ends on a lone
// delimiter.
func Parse(pattern string) (*Pattern, error) {
	return ParseWith(pattern, defaultRegistry)
}

// ParseWith parses a pattern against a custom [Registry].
func ParseWith(pattern string, reg *Registry) (*Pattern, error) {
	return parse(pattern, percentMode{}, reg)
}

// parse is a single left-to-right pass. Each step either ends on the final
// literal span or emits one literal span plus one specifier and advances
// past the two-character conversion, so the loop always terminates.
func parse(pattern string, mode delimMode, reg *Registry) (*Pattern, error) {
	p := &Pattern{src: pattern}
	rest := pattern
	offset := 0
	for {
		i := mode.indexDelim(rest)
		if i == len(rest) {
			p.literals = append(p.literals, rest)
			return p, nil
		}
		if i+1 == len(rest) {
			return nil, fmt.Errorf("%w at offset %d", ErrTruncatedPattern, offset+i)
		}
		p.literals = append(p.literals, rest[:i])
		verb := rest[i+1]
		if verb == mode.delim() {
			p.specs = append(p.specs, specifier{arg: noArg, literal: string(mode.delim())})
		} else {
			conv, ok := reg.conversion(verb)
			if !ok {
				return nil, &VerbError{Verb: verb, Offset: offset + i}
			}
			sp := specifier{conv: conv, arg: noArg, literal: conv.Literal}
			if conv.Consumes {
				sp.arg = p.numArgs
				p.numArgs++
			}
			p.specs = append(p.specs, sp)
		}
		rest = rest[i+2:]
		offset += i + 2
	}
}
