package staticfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// CatalogFormat identifies the wire format of a pattern catalog document.
type CatalogFormat string

const (
	YAML CatalogFormat = "yaml"
	JSON CatalogFormat = "json"
	TOML CatalogFormat = "toml"
)

var catalogFormats = []CatalogFormat{YAML, JSON, TOML}

// String returns the format name.
func (f CatalogFormat) String() string { return string(f) }

// CatalogFormats returns all supported catalog format names.
func CatalogFormats() []CatalogFormat {
	out := make([]CatalogFormat, len(catalogFormats))
	copy(out, catalogFormats)
	return out
}

// ParseCatalogFormat parses a catalog format string.
func ParseCatalogFormat(s string) (CatalogFormat, error) {
	for _, f := range catalogFormats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedCatalog, s)
}

// Catalog is a set of named patterns, all parsed and verb-checked at load.
// A Catalog is immutable after [LoadCatalog] and safe for concurrent use.
type Catalog struct {
	patterns map[string]*Pattern
}

// LoadCatalog decodes a flat name-to-pattern document from r and parses
// every pattern eagerly with the built-in verbs. A pattern that fails to
// parse fails the whole load, naming the offending entry.
func LoadCatalog(r io.Reader, f CatalogFormat) (*Catalog, error) {
	return LoadCatalogWith(r, f, defaultRegistry)
}

// LoadCatalogWith is [LoadCatalog] with a custom [Registry].
func LoadCatalogWith(r io.Reader, f CatalogFormat, reg *Registry) (*Catalog, error) {
	raw := map[string]string{}
	var err error
	switch f {
	case YAML:
		err = yaml.NewDecoder(r).Decode(&raw)
	case JSON:
		err = json.NewDecoder(r).Decode(&raw)
	case TOML:
		_, err = toml.NewDecoder(r).Decode(&raw)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCatalog, f)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	c := &Catalog{patterns: make(map[string]*Pattern, len(raw))}
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		p, perr := ParseWith(raw[name], reg)
		if perr != nil {
			return nil, fmt.Errorf("catalog entry %q: %w", name, perr)
		}
		c.patterns[name] = p
	}
	return c, nil
}

// Pattern returns the named pattern.
func (c *Catalog) Pattern(name string) (*Pattern, bool) {
	p, ok := c.patterns[name]
	return p, ok
}

// Names returns the catalog's pattern names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.patterns))
	for name := range c.patterns {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Format renders the named pattern with args. It fails with
// [ErrUnknownPattern] when no pattern has that name, and otherwise behaves
// like [Pattern.Format].
func (c *Catalog) Format(name string, args ...any) (string, error) {
	p, ok := c.patterns[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p.Format(args...)
}
