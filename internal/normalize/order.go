package normalize

import (
	"errors"
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"schema-normalizer/internal/diagnostic"
	"schema-normalizer/internal/schema"
)

// Dependencies returns the declarations referenced by name's body and
// parameter constraints, in registration order. References to undeclared
// names are left out; normalization reports them.
func (t *Table) Dependencies(name string) ([]string, error) {
	d, err := t.Lookup(name)
	if err != nil {
		return nil, err
	}

	refs := set.New[string](0)
	collect := func(e schema.Expr) bool {
		if r, ok := e.(*schema.Reference); ok {
			if _, known := t.decls[r.Name]; known {
				refs.Insert(r.Name)
			}
		}

		return true
	}

	schema.Walk(d.Body, collect)

	for _, p := range d.Params {
		schema.Walk(p.Constraint, collect)
	}

	var deps []string

	for _, n := range t.order {
		if refs.Contains(n) {
			deps = append(deps, n)
		}
	}

	return deps, nil
}

// Order returns every declaration after the declarations it depends on.
// Among independent declarations, registration order is kept. A group of
// declarations that reference each other is a RecursiveDefinition.
func (t *Table) Order() ([]string, error) {
	index := make(map[string]int, len(t.order))
	for i, n := range t.order {
		index[n] = i
	}

	order, err := topoSort(len(t.order), func(i int) []int {
		deps, _ := t.Dependencies(t.order[i])

		out := make([]int, 0, len(deps))
		for _, d := range deps {
			out = append(out, index[d])
		}

		return out
	})

	names := make([]string, 0, len(order))
	for _, i := range order {
		names = append(names, t.order[i])
	}

	if err != nil {
		var stuck []string

		for _, n := range t.order {
			if !slices.Contains(names, n) {
				stuck = append(stuck, n)
			}
		}

		return nil, diagnostic.Errorf(diagnostic.KindRecursiveDefinition, stuck[0],
			"declarations reference each other: %s", strings.Join(stuck, ", "))
	}

	return names, nil
}

var errCycle = errors.New("cycle detected")

// topoSort returns node indices in dependency order; depsFn(i) yields the
// nodes that must come before i. When several nodes are ready the smallest
// index goes first. On a cycle the partial order is returned with an error.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = slices.Insert(ready, k, j)
			}
		}
	}

	if len(order) != n {
		return order, errCycle
	}

	return order, nil
}
