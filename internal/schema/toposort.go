package schema

import (
	"errors"
	"fmt"
	"sort"
)

// errCycle is returned by topoSort when the graph is not acyclic.
var errCycle = errors.New("cycle detected")

// topoSort returns node indices in dependency order.
//
// depsFn(i) yields indices that must come before i. When several nodes are
// available the smallest index is picked, so the order is deterministic.
func topoSort(n int, depsFn func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("dependency index out of range: %d depends on %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
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
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, errCycle
	}

	return order, nil
}

// CascadeOrder returns the entity kinds in an order where every kind comes
// after the kinds whose deletion cascades into it. An error is returned when
// cascade relations form a cycle, which would make deletion unbounded.
func (f *File) CascadeOrder() ([]string, error) {
	index := make(map[string]int, len(f.Entities))
	for i, e := range f.Entities {
		index[e.Name] = i
	}

	deps := make([][]int, len(f.Entities))

	for _, r := range f.Relations {
		if r.OnDelete != Cascade {
			continue
		}

		from, ok := index[r.From]
		if !ok {
			continue
		}

		for _, to := range r.To {
			if t, ok := index[to]; ok {
				deps[from] = append(deps[from], t)
			}
		}
	}

	order, err := topoSort(len(f.Entities), func(i int) []int { return deps[i] })
	if err != nil {
		return nil, fmt.Errorf("cascade relations: %w", err)
	}

	kinds := make([]string, 0, len(order))
	for _, i := range order {
		kinds = append(kinds, f.Entities[i].Name)
	}

	return kinds, nil
}
