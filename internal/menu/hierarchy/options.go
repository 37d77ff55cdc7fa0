package hierarchy

import (
	"fmt"
	"reflect"
	"strconv"
)

// Option is one selectable row derived from a hierarchy node.
type Option struct {
	// ID is unique among the option's siblings and stable across renders.
	ID       string
	Label    string
	Value    any
	Node     any
	Depth    int
	Index    int
	Branch   bool
	Disabled bool
}

// OptionsAt converts a sibling list at depth into options.
func (w *Walker) OptionsAt(nodes []any, depth int) []Option {
	out := make([]Option, 0, len(nodes))
	seen := make(map[string]int, len(nodes))
	for idx, node := range nodes {
		value := w.ValueOf(node)
		id := optionID(value, idx)
		if n, dup := seen[id]; dup {
			base := id
			for {
				n++
				id = base + "#" + strconv.Itoa(n)
				if _, used := seen[id]; !used {
					break
				}
			}
			seen[base] = n
		}
		seen[id] = 0
		out = append(out, Option{
			ID:       id,
			Label:    w.LabelOf(node),
			Value:    value,
			Node:     node,
			Depth:    depth,
			Index:    idx,
			Branch:   w.HasChildKey(node, depth),
			Disabled: w.DisabledOf(node),
		})
	}
	return out
}

// Options returns the options visible after following path, a list of sibling
// indices starting at the roots. An index that falls outside its list stops
// the walk at the deepest valid level.
func (w *Walker) Options(roots []any, path []int) []Option {
	siblings := roots
	depth := 0
	for _, idx := range path {
		if idx < 0 || idx >= len(siblings) {
			break
		}
		if !w.HasChildKey(siblings[idx], depth) {
			break
		}
		siblings = w.ChildrenAt(siblings[idx], depth)
		depth++
	}
	return w.OptionsAt(siblings, depth)
}

// Resolve maps an index path to node references. ok is false when an index is
// out of range.
func (w *Walker) Resolve(roots []any, path []int) ([]any, bool) {
	nodes := make([]any, 0, len(path))
	siblings := roots
	for depth, idx := range path {
		if idx < 0 || idx >= len(siblings) {
			return nodes, false
		}
		node := siblings[idx]
		nodes = append(nodes, node)
		siblings = w.ChildrenAt(node, depth)
	}
	return nodes, true
}

// PathTo finds the first node, depth first, whose value equals value and
// returns both the node path and the index path leading to it.
func (w *Walker) PathTo(roots []any, value any) ([]any, []int, bool) {
	var (
		nodes   []any
		indices []int
	)
	var visit func(siblings []any, depth int) bool
	visit = func(siblings []any, depth int) bool {
		for idx, node := range siblings {
			nodes = append(nodes, node)
			indices = append(indices, idx)
			if ValuesEqual(w.ValueOf(node), value) {
				return true
			}
			if visit(w.ChildrenAt(node, depth), depth+1) {
				return true
			}
			nodes = nodes[:len(nodes)-1]
			indices = indices[:len(indices)-1]
		}
		return false
	}
	if !visit(roots, 0) {
		return nil, nil, false
	}
	return nodes, indices, true
}

// ValuesEqual compares option values, tolerating uncomparable types.
func ValuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() == vb.Type() && va.Comparable() && vb.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}

func optionID(value any, idx int) string {
	switch v := value.(type) {
	case string:
		if v != "" {
			return v
		}
	case int, int64, int32, uint, uint64, uint32, float64, float32, bool:
		return fmt.Sprint(v)
	}
	return "opt-" + strconv.Itoa(idx)
}
