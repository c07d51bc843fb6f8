// Package staticfmt renders printf-style patterns that are known ahead of
// execution: a pattern is parsed once into literal spans and typed
// specifiers, argument lists are validated against it before any rendering,
// and the output buffer is sized exactly before the first byte is written.
//
// The central entry points are [Format] and [Write] for one-shot use, and
// [Parse] when the same pattern is rendered many times:
//
//	p, err := staticfmt.Parse("Hello %s, you are %d")
//	if err != nil { ... }
//	out, err := p.Format("Ada", 36)
//
// # Pattern Syntax
//
// A pattern is literal text interleaved with two-character conversions:
//
//   - %d — consumes one argument of any integer type, rendered as decimal
//     with an optional leading minus; no padding, no leading zeros
//   - %s — consumes one string or []byte argument, copied verbatim
//   - %% — renders a literal percent sign, consumes no argument
//
// Any other verb fails [Parse] with [ErrUnknownVerb]; a pattern ending on a
// lone % fails with [ErrTruncatedPattern]. Width, precision, and padding
// options are not supported.
//
// # Validation
//
// [Pattern.Validate] checks an argument list without rendering: the count
// must match [Pattern.NumArgs] exactly, and each argument must satisfy its
// verb's [Requirement]. Type failures are reported for every position at
// once via errors.Join, each as a [TypeError]:
//
//	var te *staticfmt.TypeError
//	if errors.As(p.Validate(args...), &te) {
//		log.Printf("argument %d is wrong", te.Index)
//	}
//
// [Pattern.Render] assumes validated input and panics otherwise; use
// [Pattern.Format] to get the validate-then-render pair.
//
// # Custom Verbs
//
// [NewRegistry] starts from the built-in verbs; [Registry.Register] adds
// more, and [ParseWith] parses against the result. A [Conversion] pairs a
// verb with a [Requirement] ([Exact], [Predicate], or the built-in [Integer]
// and [Text]) and, for argument types the built-in formatters don't cover,
// a Render func:
//
//	reg := staticfmt.NewRegistry()
//	reg.Register(staticfmt.Conversion{
//		Verb:     'f',
//		Arg:      staticfmt.Exact[float64]("float64"),
//		Consumes: true,
//		Render:   func(a any) string { return strconv.FormatFloat(a.(float64), 'g', -1, 64) },
//	})
//
// # Catalogs
//
// A [Catalog] holds named patterns decoded from a YAML, JSON, or TOML
// document and parses all of them at load, so every verb error surfaces
// before the first render:
//
//	c, err := staticfmt.LoadCatalog(r, staticfmt.YAML)
//	out, err := c.Format("greeting", "Ada")
//
// Use [ParseCatalogFormat] to convert a flag or file extension into a
// [CatalogFormat].
//
// # Concurrency
//
// Patterns and catalogs are immutable after construction. All rendering is
// a pure function of the pattern and its arguments, so a single [Pattern]
// may be validated and rendered from any number of goroutines without
// coordination.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnknownVerb] — a verb with no registry entry ([VerbError])
//   - [ErrTruncatedPattern] — pattern ends on a lone delimiter
//   - [ErrArgCount] — wrong number of arguments ([CountError])
//   - [ErrArgType] — argument fails its requirement ([TypeError])
//   - [ErrInvalidConversion] — rejected [Registry.Register] call
//   - [ErrUnsupportedCatalog] — unknown catalog format string
//   - [ErrUnknownPattern] — no catalog entry with that name
package staticfmt
