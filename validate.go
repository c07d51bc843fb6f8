package staticfmt

import (
	"errors"
	"reflect"
)

// Validate checks args against the pattern: the count must equal
// [Pattern.NumArgs] exactly, and each argument must satisfy its specifier's
// requirement. A count mismatch is reported alone as a [CountError]; type
// failures are checked for every position and joined, so the returned error
// can carry one [TypeError] per offending argument.
func (p *Pattern) Validate(args ...any) error {
	if len(args) != p.numArgs {
		return &CountError{Want: p.numArgs, Got: len(args)}
	}
	var errs []error
	for _, sp := range p.specs {
		if sp.arg == noArg {
			continue
		}
		if !sp.conv.Arg.Matches(args[sp.arg]) {
			errs = append(errs, &TypeError{
				Index: sp.arg,
				Verb:  sp.conv.Verb,
				Want:  sp.conv.Arg.String(),
				Got:   reflect.TypeOf(args[sp.arg]),
			})
		}
	}
	return errors.Join(errs...)
}
