// Package hierarchy walks caller-owned nested data whose child collection is
// found under a different key at every depth.
//
// Nodes are opaque values. The walker reads them through accessors built once
// from the configured field names, so the data may be decoded YAML/JSON maps,
// structs, or any type implementing Fielder. Traversal assumes a finite tree or
// DAG; cyclic data is a caller error and is not detected.
package hierarchy

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Fielder lets a node expose named fields without reflection.
type Fielder interface {
	Field(name string) (any, bool)
}

// Config names the per-depth child keys and the label/value fields.
type Config struct {
	// ChildKeys[d] holds the children of a node at depth d. Its length is the
	// maximum depth; the same name may repeat.
	ChildKeys     []string
	LabelField    string
	ValueField    string
	DisabledField string
}

type accessor func(node any) (any, bool)

// Walker answers traversal queries over hierarchical options.
type Walker struct {
	childKeys []string
	children  []accessor
	label     accessor
	value     accessor
	disabled  accessor

	mu        sync.Mutex
	fallbacks map[string]struct{}
}

// New synthesises the accessors for cfg. Empty field names always fall back
// to the node itself.
func New(cfg Config) *Walker {
	w := &Walker{
		childKeys: append([]string(nil), cfg.ChildKeys...),
		label:     fieldAccessor(cfg.LabelField),
		value:     fieldAccessor(cfg.ValueField),
		disabled:  fieldAccessor(cfg.DisabledField),
		fallbacks: make(map[string]struct{}),
	}
	w.children = make([]accessor, len(cfg.ChildKeys))
	for i, key := range cfg.ChildKeys {
		w.children[i] = fieldAccessor(key)
	}
	return w
}

// MaxDepth is the number of configured child levels.
func (w *Walker) MaxDepth() int {
	return len(w.childKeys)
}

// ChildrenAt returns the children of node found under ChildKeys[depth]. A
// missing key, a non-list value, or a depth past the configured levels all
// yield no children.
func (w *Walker) ChildrenAt(node any, depth int) []any {
	if node == nil || depth < 0 || depth >= len(w.children) {
		return nil
	}
	raw, ok := w.children[depth](node)
	if !ok {
		return nil
	}
	return toSlice(raw)
}

// HasChildKey reports whether node carries the child key for depth, even if
// the list under it is empty.
func (w *Walker) HasChildKey(node any, depth int) bool {
	if node == nil || depth < 0 || depth >= len(w.children) {
		return false
	}
	raw, ok := w.children[depth](node)
	if !ok || raw == nil {
		return false
	}
	return isList(raw)
}

// IsLeaf reports whether node terminates the hierarchy at depth.
func (w *Walker) IsLeaf(node any, depth int) bool {
	return !w.HasChildKey(node, depth)
}

// LabelOf reads the label field, falling back to the node itself.
func (w *Walker) LabelOf(node any) string {
	raw, ok := w.label(node)
	if !ok {
		w.noteFallback("label")
		raw = node
	}
	switch v := raw.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// ValueOf reads the value field, falling back to the node itself.
func (w *Walker) ValueOf(node any) any {
	raw, ok := w.value(node)
	if !ok {
		w.noteFallback("value")
		return node
	}
	return raw
}

// DisabledOf reads the optional disabled field. Absent or non-bool values
// count as enabled.
func (w *Walker) DisabledOf(node any) bool {
	raw, ok := w.disabled(node)
	if !ok {
		return false
	}
	b, isBool := raw.(bool)
	return isBool && b
}

// Fallbacks lists the accessors that had to fall back to the node itself.
func (w *Walker) Fallbacks() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.fallbacks))
	for name := range w.fallbacks {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (w *Walker) noteFallback(name string) {
	w.mu.Lock()
	w.fallbacks[name] = struct{}{}
	w.mu.Unlock()
}

func fieldAccessor(name string) accessor {
	if name == "" {
		return func(any) (any, bool) { return nil, false }
	}
	var cache sync.Map // reflect.Type -> []int (field index), nil when absent
	return func(node any) (any, bool) {
		switch n := node.(type) {
		case nil:
			return nil, false
		case Fielder:
			return n.Field(name)
		case map[string]any:
			v, ok := n[name]
			return v, ok
		case map[any]any:
			v, ok := n[name]
			return v, ok
		}
		return reflectField(node, name, &cache)
	}
}

func reflectField(node any, name string, cache *sync.Map) (any, bool) {
	rv := reflect.ValueOf(node)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
	default:
		return nil, false
	}

	t := rv.Type()
	var index []int
	if cached, ok := cache.Load(t); ok {
		index, _ = cached.([]int)
	} else {
		index = lookupField(t, name)
		cache.Store(t, index)
	}
	if index == nil {
		return nil, false
	}
	field := rv.FieldByIndex(index)
	if !field.CanInterface() {
		return nil, false
	}
	return field.Interface(), true
}

func lookupField(t reflect.Type, name string) []int {
	var byName []int
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		for _, tagKey := range []string{"menu", "yaml", "json"} {
			tag, _, _ := strings.Cut(f.Tag.Get(tagKey), ",")
			if tag == name {
				return f.Index
			}
		}
		if byName == nil && strings.EqualFold(f.Name, name) {
			byName = f.Index
		}
	}
	return byName
}

func isList(raw any) bool {
	switch raw.(type) {
	case []any:
		return true
	}
	kind := reflect.TypeOf(raw).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

func toSlice(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
