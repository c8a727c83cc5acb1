package interp

// Resolver looks up the value of a placeholder name. A false second
// result means the name has no value; the engine substitutes empty text.
type Resolver interface {
	Lookup(name string) (string, bool)
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(name string) (string, bool)

// Lookup calls f(name).
func (f ResolverFunc) Lookup(name string) (string, bool) {
	return f(name)
}

// MapResolver resolves names from a fixed map.
type MapResolver map[string]string

// Lookup returns m[name].
func (m MapResolver) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Chain consults each resolver in order and returns the first value found.
// Nil entries are skipped.
type Chain []Resolver

// Lookup implements Resolver.
func (c Chain) Lookup(name string) (string, bool) {
	for _, r := range c {
		if r == nil {
			continue
		}
		if v, ok := r.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}
