package finder

import (
	"encoding/json"
	"reflect"
	"strconv"
)

// Equals builds a predicate matching nodes structurally equal to target.
//
// Fixed convention for absent values: nil equals only nil. A nil node never
// equals an empty string or any other zero value, and a nil target matches
// only nil nodes.
func Equals(target any) Predicate {
	return func(value any) bool {
		if value == nil || target == nil {
			return value == nil && target == nil
		}

		return reflect.DeepEqual(value, target)
	}
}

// NumericEquals builds a predicate matching nodes numerically equal to target.
//
// Ints, uints, floats, json.Number and strings holding a number coerce before
// comparison. Nodes outside that domain never match; the predicate stays
// total and raises nothing.
func NumericEquals(target float64) Predicate {
	return func(value any) bool {
		n, ok := asNumber(value)

		return ok && n == target
	}
}

func asNumber(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}

	if n, ok := value.(json.Number); ok {
		f, err := n.Float64()

		return f, err == nil
	}

	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(s, 64)

		return f, err == nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}

	return 0, false
}
