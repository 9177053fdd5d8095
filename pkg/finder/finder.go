// Package finder implements discovery of paths to nodes matching a predicate
// inside arbitrarily nested data.
//
// The walk is depth-first and pre-order: a node is examined before its
// children, mapping entries are visited in ascending order of their rendered
// keys and sequence elements in index order, so results are deterministic for
// deterministic inputs. Self-referential structures are pruned instead of
// looping: every composite reached on the way down is remembered by identity,
// and a branch stops as soon as it reaches a composite already seen on that
// branch. Distinct branches keep independent histories, so a node reachable
// via several non-cyclic routes is reported once per route.
package finder

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/pawelWritesCode/dsearch/pkg/datakind"
	"github.com/pawelWritesCode/dsearch/pkg/pathexpr"
	"github.com/pawelWritesCode/dsearch/pkg/reflectutils"
)

// Predicate describes ability to decide whether a single node matches.
// It must be total: it is invoked for every visited node, including nil.
type Predicate func(value any) bool

// Options alter descent policy of the walk. Zero value holds the defaults.
type Options struct {
	// InsideObjects makes the walk descend into tagged containers
	// (structs and defined composite types). Default false: tagged
	// containers are matched as a whole but their fields stay unvisited.
	InsideObjects bool

	// InsideMatches makes the walk continue below a node that already
	// matched. Default false: a match terminates its branch.
	InsideMatches bool
}

// identity distinguishes composite instances on the current branch.
// Kind is paired with the address so a map and a slice that happen to
// share a numeric address never shadow each other.
type identity struct {
	addr uintptr
	kind reflect.Kind
}

// visited is the branch-local set of composite identities between the root
// and the current node. Augmenting copies instead of mutating, so sibling
// branches never suppress each other.
type visited map[identity]struct{}

func (s visited) with(id identity) visited {
	next := make(visited, len(s)+1)
	for k := range s {
		next[k] = struct{}{}
	}

	next[id] = struct{}{}

	return next
}

// Find reports paths to all nodes of data matching the predicate, in
// traversal order. A matching non-composite root yields a single empty
// path; when nothing matches the result is empty, never nil.
func Find(match Predicate, data any, o Options) []string {
	w := walker{match: match, options: o, mapper: datakind.NewGoKindMapper()}

	found := make([]string, 0)

	return w.walk(data, nil, visited{}, found)
}

type walker struct {
	match   Predicate
	options Options
	mapper  datakind.GoKindMapper
}

func (w walker) walk(node any, path pathexpr.Path, seen visited, found []string) []string {
	kind := w.mapper.Map(node)

	if kind.IsComposite() {
		if id, ok := compositeIdentity(node); ok {
			if _, cyclic := seen[id]; cyclic {
				return found
			}

			seen = seen.with(id)
		}
	}

	if w.match(node) {
		found = append(found, path.String())

		if !w.options.InsideMatches {
			return found
		}
	}

	if !kind.IsComposite() {
		return found
	}

	if kind.IsTagged() && !w.options.InsideObjects {
		return found
	}

	v := baseValue(reflect.ValueOf(node))

	if kind.IsMapping() {
		return w.walkMapping(v, path, seen, found)
	}

	return w.walkSequence(v, path, seen, found)
}

// walkMapping visits entries of a map or exported fields of a struct
// in ascending order of their rendered keys.
func (w walker) walkMapping(v reflect.Value, path pathexpr.Path, seen visited, found []string) []string {
	if v.Kind() == reflect.Struct {
		names := exportedFieldNames(v)
		sort.Strings(names)

		for _, name := range names {
			found = w.walk(v.FieldByName(name).Interface(), append(path, pathexpr.Key(name)), seen, found)
		}

		return found
	}

	type entry struct {
		rendered string
		key      reflect.Value
	}

	entries := make([]entry, 0, v.Len())
	for _, k := range v.MapKeys() {
		entries = append(entries, entry{rendered: fmt.Sprint(k.Interface()), key: k})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].rendered < entries[j].rendered })

	for _, e := range entries {
		found = w.walk(v.MapIndex(e.key).Interface(), append(path, pathexpr.Key(e.rendered)), seen, found)
	}

	return found
}

func (w walker) walkSequence(v reflect.Value, path pathexpr.Path, seen visited, found []string) []string {
	for i := 0; i < v.Len(); i++ {
		found = w.walk(v.Index(i).Interface(), append(path, pathexpr.Index(i)), seen, found)
	}

	return found
}

// compositeIdentity obtains branch-tracking identity of a composite node.
// Maps and slices are identified by their own address, structs and arrays by
// the address of the innermost pointer leading to them. Struct and array
// values reached without a pointer are copies and cannot close a cycle.
func compositeIdentity(node any) (identity, bool) {
	v := reflect.ValueOf(node)
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	var lastPtr reflect.Value
	for v.Kind() == reflect.Ptr && !v.IsNil() {
		lastPtr = v
		v = v.Elem()
	}

	if addr, ok := reflectutils.Identity(v); ok {
		return identity{addr: addr, kind: v.Kind()}, true
	}

	if (v.Kind() == reflect.Struct || v.Kind() == reflect.Array) && lastPtr.IsValid() {
		return identity{addr: lastPtr.Pointer(), kind: v.Kind()}, true
	}

	return identity{}, false
}

// baseValue unwraps interfaces and pointers down to the traversable container.
func baseValue(v reflect.Value) reflect.Value {
	for {
		k := v.Kind()
		if k != reflect.Interface && k != reflect.Ptr {
			return v
		}

		if reflectutils.IsValueNil(v) {
			return v
		}

		v = v.Elem()
	}
}

func exportedFieldNames(v reflect.Value) []string {
	t := v.Type()

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).PkgPath == "" {
			names = append(names, t.Field(i).Name)
		}
	}

	return names
}
