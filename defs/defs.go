/*
File    : lambda/defs/defs.go
Author  : akashmaji946
*/

// Package defs implements the top-level definitions environment: the
// case-preserving, exact-match mapping from identifier names to their
// parsed expression, consulted by the reducer when it resolves a Name.
package defs

import (
	"sort"

	"github.com/akashmaji946/lambda/ast"
)

// Definition is a single named binding. It is a struct (rather than a bare
// ast.Expr) so a richer definition record — provenance, doc text — can be
// added later without changing Definitions' map value type.
type Definition struct {
	Value ast.Expr
}

// Definitions is the environment consulted by the reducer. Insertion order
// is irrelevant; a later Insert with an existing name overwrites it, which
// is exactly what repeated top-level `Name = expr;` statements rely on.
type Definitions struct {
	table map[string]*Definition
}

// New creates an empty Definitions environment.
func New() *Definitions {
	return &Definitions{table: make(map[string]*Definition)}
}

// Insert binds name to value, overwriting any previous definition.
func (d *Definitions) Insert(name string, value ast.Expr) {
	if d.table == nil {
		d.table = make(map[string]*Definition)
	}
	d.table[name] = &Definition{Value: value}
}

// Get looks up name, returning its definition and whether it was found.
func (d *Definitions) Get(name string) (*Definition, bool) {
	if d.table == nil {
		return nil, false
	}
	def, ok := d.table[name]
	return def, ok
}

// Merge copies every binding from other into d, overwriting collisions.
// Used by the REPL and by `lambda repl FILE...` to accumulate definitions
// loaded from several sources.
func (d *Definitions) Merge(other *Definitions) {
	if other == nil {
		return
	}
	for name, def := range other.table {
		d.Insert(name, def.Value)
	}
}

// Names returns every defined name in sorted order, for deterministic
// :names/:defs REPL output.
func (d *Definitions) Names() []string {
	names := make([]string, 0, len(d.table))
	for name := range d.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports how many definitions are present.
func (d *Definitions) Len() int {
	return len(d.table)
}
