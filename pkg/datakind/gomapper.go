package datakind

import (
	"reflect"

	"github.com/pawelWritesCode/dsearch/pkg/reflectutils"
)

// GoKindMapper is entity that has ability to map underlying Go value into corresponding Kind.
//
// Structs and pointers to structs are tagged mappings over their exported fields.
// Defined (named) types whose underlying kind is map, slice or array are tagged as well,
// while plain maps, slices and arrays stay untagged.
type GoKindMapper struct{}

func NewGoKindMapper() GoKindMapper {
	return GoKindMapper{}
}

// Map maps data underlying structure into Kind.
func (g GoKindMapper) Map(data any) Kind {
	if data == nil {
		return Scalar
	}

	return g.mapValue(reflect.ValueOf(data))
}

func (g GoKindMapper) mapValue(v reflect.Value) Kind {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return Scalar
		}

		v = v.Elem()
	}

	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return Scalar
		}

		if v.Elem().Kind() == reflect.Struct {
			return TaggedMapping
		}

		return g.mapValue(v.Elem())
	}

	k := v.Kind()

	if k == reflect.Struct {
		return TaggedMapping
	}

	if k == reflect.Map {
		if reflectutils.IsValueNil(v) {
			return Scalar
		}

		if isDefinedType(v.Type()) {
			return TaggedMapping
		}

		return Mapping
	}

	if k == reflect.Slice {
		if reflectutils.IsValueNil(v) {
			return Scalar
		}

		if isDefinedType(v.Type()) {
			return TaggedSequence
		}

		return Sequence
	}

	if k == reflect.Array {
		if isDefinedType(v.Type()) {
			return TaggedSequence
		}

		return Sequence
	}

	if !v.IsValid() {
		return Unknown
	}

	return Scalar
}

// isDefinedType tells whether t was declared with a type definition,
// as opposed to unnamed composite literals like map[string]any or []any.
func isDefinedType(t reflect.Type) bool {
	return t.Name() != ""
}
