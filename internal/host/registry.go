// Package host is a minimal in-process host for visualizations: it keeps a registry of visualizations, mounts them into containers and displays their errors.
package host

import (
	"fmt"

	"github.com/tdewolff/pivotline"
)

// Registry holds visualization definitions by ID.
type Registry struct {
	defs  map[string]pivotline.Definition
	order []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defs: map[string]pivotline.Definition{},
	}
}

// Add registers a definition; IDs must be unique.
func (r *Registry) Add(def pivotline.Definition) error {
	if def.ID == "" {
		return fmt.Errorf("visualization %q has no ID", def.Label)
	} else if def.New == nil {
		return fmt.Errorf("visualization %q has no constructor", def.ID)
	} else if _, ok := r.defs[def.ID]; ok {
		return fmt.Errorf("visualization %q already registered", def.ID)
	}
	r.defs[def.ID] = def
	r.order = append(r.order, def.ID)
	return nil
}

// Lookup returns the definition of id.
func (r *Registry) Lookup(id string) (pivotline.Definition, bool) {
	def, ok := r.defs[id]
	return def, ok
}

// Definitions returns all definitions in registration order.
func (r *Registry) Definitions() []pivotline.Definition {
	defs := make([]pivotline.Definition, 0, len(r.order))
	for _, id := range r.order {
		defs = append(defs, r.defs[id])
	}
	return defs
}
