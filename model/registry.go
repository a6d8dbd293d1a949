package model

import (
	"sort"

	"github.com/gogf/gf/v2/container/gmap"
)

// Registry holds type descriptors registered by full and short name.
type Registry struct {
	types *gmap.StrAnyMap
	short *gmap.StrStrMap
}

func NewRegistry(types ...TypeDescriptor) *Registry {
	r := &Registry{
		types: gmap.NewStrAnyMap(true),
		short: gmap.NewStrStrMap(true),
	}
	for _, t := range types {
		r.Register(t)
	}
	return r
}

// Register adds or replaces a descriptor.
func (r *Registry) Register(t TypeDescriptor) {
	r.types.Set(t.Name, t)
	r.short.Set(t.ShortName(), t.Name)
}

// Lookup resolves a descriptor by full name, then by short name.
func (r *Registry) Lookup(name string) (TypeDescriptor, bool) {
	if r == nil {
		return TypeDescriptor{}, false
	}
	if v, found := r.types.Search(name); found {
		return v.(TypeDescriptor), true
	}
	if full, found := r.short.Search(ShortName(name)); found {
		if v, found := r.types.Search(full); found {
			return v.(TypeDescriptor), true
		}
	}
	return TypeDescriptor{}, false
}

// Resolvable reports whether name refers to a registered complex type.
func (r *Registry) Resolvable(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := r.types.Keys()
	sort.Strings(names)
	return names
}
