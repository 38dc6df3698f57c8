package units

import (
	"fmt"
	"slices"

	"github.com/Goldziher/go-utils/maputils"

	"github.com/ethwu/rn/internal/timefmt"
)

// Registry resolves format names to formatters. It is assembled once
// at startup and read-only afterwards, so lookups need no locking.
type Registry struct {
	formats map[string]*timefmt.Formatter
}

// NewRegistry returns a registry seeded with the built-in systems.
func NewRegistry() *Registry {
	return &Registry{formats: map[string]*timefmt.Formatter{
		NameExtended: Extended(),
		NameSpan:     Span(),
		NameSnap:     Snap(),
		NameCivil:    Civil(),
	}}
}

// Register adds a named formatter. Empty and duplicate names are
// rejected so a definition file cannot silently shadow a built-in.
func (r *Registry) Register(name string, f *timefmt.Formatter) error {
	if name == "" {
		return fmt.Errorf("format name must not be empty")
	}
	if _, ok := r.formats[name]; ok {
		return fmt.Errorf("format %q is already registered", name)
	}
	r.formats[name] = f
	return nil
}

// Lookup returns the formatter registered under name.
func (r *Registry) Lookup(name string) (*timefmt.Formatter, bool) {
	f, ok := r.formats[name]
	return f, ok
}

// Names lists every registered format in sorted order.
func (r *Registry) Names() []string {
	names := maputils.Keys(r.formats)
	slices.Sort(names)
	return names
}
