package domain

import (
	"iter"
	"slices"
)

// NameIndex maps unit names to absolute directory paths.
// The first path recorded for a name wins; later ones are ignored.
// Names are kept in discovery order.
type NameIndex struct {
	paths map[string]string
	order []string
}

// NewNameIndex creates an empty NameIndex.
func NewNameIndex() *NameIndex {
	return &NameIndex{
		paths: make(map[string]string),
	}
}

// Add records path for name unless name is already present.
// It reports whether the entry was added.
func (x *NameIndex) Add(name, path string) bool {
	if _, exists := x.paths[name]; exists {
		return false
	}
	x.paths[name] = path
	x.order = append(x.order, name)
	return true
}

// Merge folds other into x. Entries already in x take precedence.
func (x *NameIndex) Merge(other *NameIndex) {
	if other == nil {
		return
	}
	for _, name := range other.order {
		x.Add(name, other.paths[name])
	}
}

// Lookup returns the path recorded for name.
func (x *NameIndex) Lookup(name string) (string, bool) {
	p, ok := x.paths[name]
	return p, ok
}

// Names returns a copy of all names in discovery order.
func (x *NameIndex) Names() []string {
	return slices.Clone(x.order)
}

// Len returns the number of entries.
func (x *NameIndex) Len() int {
	return len(x.order)
}

// All yields name/path pairs in discovery order.
func (x *NameIndex) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range x.order {
			if !yield(name, x.paths[name]) {
				return
			}
		}
	}
}
