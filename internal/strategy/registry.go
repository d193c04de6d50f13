// Package strategy maps symbolic backend keys to concrete persistence
// strategies implementing the scaffold capability contract. Lookup is
// case-insensitive and an unknown key is always an error, never a silent
// fallback to a default.
package strategy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/anandhu-here/ethakka/internal/scaffold"
)

// UnsupportedStrategyError reports an unknown strategy key together with
// the set of valid keys.
type UnsupportedStrategyError struct {
	Key   string
	Valid []string
}

func (e *UnsupportedStrategyError) Error() string {
	return fmt.Sprintf("unsupported strategy %q: valid strategies are %s",
		e.Key, strings.Join(e.Valid, ", "))
}

// Registry resolves symbolic keys to Strategy implementations.
type Registry struct {
	strategies map[string]scaffold.Strategy
}

// NewRegistry creates a Registry with the built-in strategy set registered.
func NewRegistry(catalog *scaffold.Catalog) (*Registry, error) {
	fsys, err := scaffold.EmbeddedTemplates()
	if err != nil {
		return nil, err
	}
	renderer := scaffold.NewRenderer(fsys)

	r := &Registry{strategies: map[string]scaffold.Strategy{}}
	r.register(&memoryStrategy{catalog: catalog})
	r.register(&mongoStrategy{renderer: renderer})
	return r, nil
}

func (r *Registry) register(s scaffold.Strategy) {
	r.strategies[strings.ToLower(s.Name())] = s
}

// Resolve returns the Strategy registered under key, case-insensitively.
// An unregistered key yields an *UnsupportedStrategyError.
func (r *Registry) Resolve(key string) (scaffold.Strategy, error) {
	s, ok := r.strategies[strings.ToLower(key)]
	if !ok {
		return nil, &UnsupportedStrategyError{Key: key, Valid: r.Keys()}
	}
	return s, nil
}

// Keys returns the sorted set of registered strategy keys.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.strategies))
	for k := range r.strategies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
