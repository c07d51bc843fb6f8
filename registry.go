package staticfmt

import "fmt"

// Requirement is the compatibility check a conversion imposes on the argument
// bound to it. Use [Exact] or [Predicate] to build requirements for custom
// conversions; [Integer] and [Text] cover the built-in verbs.
type Requirement interface {
	// Matches reports whether arg satisfies the requirement.
	Matches(arg any) bool
	// String returns a short description used in error messages.
	String() string
}

// Exact returns a [Requirement] satisfied only by arguments of type T.
// The name appears in [TypeError] messages.
func Exact[T any](name string) Requirement {
	return Predicate(name, func(arg any) bool {
		_, ok := arg.(T)
		return ok
	})
}

// Predicate returns a [Requirement] satisfied when fn reports true.
func Predicate(name string, fn func(any) bool) Requirement {
	return predicateReq{name: name, fn: fn}
}

type predicateReq struct {
	name string
	fn   func(any) bool
}

func (r predicateReq) Matches(arg any) bool { return r.fn(arg) }
func (r predicateReq) String() string       { return r.name }

// Built-in requirements.
var (
	// Integer matches any built-in integer type, regardless of width or
	// signedness.
	Integer = Predicate("integer", func(arg any) bool {
		_, _, ok := intMagnitude(arg)
		return ok
	})

	// Text matches string and []byte arguments.
	Text = Predicate("string", func(arg any) bool {
		switch arg.(type) {
		case string, []byte:
			return true
		}
		return false
	})
)

// Conversion describes a single verb: the requirement its argument must
// satisfy and whether it consumes a positional argument at all.
type Conversion struct {
	// Verb is the single character following the delimiter.
	Verb byte

	// Arg is the requirement on the bound argument. Required when
	// Consumes is true, ignored otherwise.
	Arg Requirement

	// Consumes reports whether the conversion takes a positional argument.
	// Non-consuming conversions render Literal instead.
	Consumes bool

	// Literal is the fixed text a non-consuming conversion renders.
	Literal string

	// Render overrides the built-in formatters for a consuming conversion.
	// The built-ins handle integers and string-like values; any other
	// argument type needs a Render func.
	Render func(arg any) string
}

// Registry maps conversion verbs to their descriptors. The zero value is not
// usable; call [NewRegistry], which starts from the built-in verbs.
type Registry struct {
	convs map[byte]Conversion
}

var defaultConversions = map[byte]Conversion{
	'd': {Verb: 'd', Arg: Integer, Consumes: true},
	's': {Verb: 's', Arg: Text, Consumes: true},
}

var defaultRegistry = &Registry{convs: defaultConversions}

// NewRegistry returns a registry pre-populated with the built-in verbs
// (%d and %s). Additional verbs can be added with [Registry.Register].
func NewRegistry() *Registry {
	r := &Registry{convs: make(map[byte]Conversion, len(defaultConversions))}
	for verb, c := range defaultConversions {
		r.convs[verb] = c
	}
	return r
}

// Register adds or replaces a conversion. The delimiter itself cannot be
// registered: the doubled-delimiter escape is handled by the parser.
func (r *Registry) Register(c Conversion) error {
	switch {
	case c.Verb == '%':
		return fmt.Errorf("%w: %q is the delimiter", ErrInvalidConversion, c.Verb)
	case c.Consumes && c.Arg == nil:
		return fmt.Errorf("%w: %q consumes an argument but has no requirement", ErrInvalidConversion, c.Verb)
	case !c.Consumes && c.Literal == "":
		return fmt.Errorf("%w: %q consumes no argument and renders nothing", ErrInvalidConversion, c.Verb)
	}
	r.convs[c.Verb] = c
	return nil
}

func (r *Registry) conversion(verb byte) (Conversion, bool) {
	c, ok := r.convs[verb]
	return c, ok
}
