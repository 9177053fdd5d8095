// Package reflectutils holds utility methods related with reflect package.
package reflectutils

import "reflect"

// IsValueNil checks whether provided Value is nil.
func IsValueNil(v reflect.Value) bool {
	nodeKind := v.Kind()
	if nodeKind == reflect.Ptr || nodeKind == reflect.Map || nodeKind == reflect.Array ||
		nodeKind == reflect.Chan || nodeKind == reflect.Slice {
		return v.IsNil()
	}

	return false
}

// Identity obtains address-based identity of pointer-bearing value.
// Second return value tells whether the value carries such identity at all;
// structs and arrays are copied by value and have none.
func Identity(v reflect.Value) (uintptr, bool) {
	k := v.Kind()
	if k == reflect.Ptr || k == reflect.Map || k == reflect.Slice {
		if v.IsNil() {
			return 0, false
		}

		return v.Pointer(), true
	}

	return 0, false
}
