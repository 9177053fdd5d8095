package pathexpr

import (
	"fmt"
	"reflect"
)

// Resolve looks the addressed node up inside data. It is the inverse of path
// discovery: resolving an emitted path over the same data returns the value
// that matched. Mapping keys are compared by their rendered text, so a key
// step {'1'} addresses both the string key "1" and the integer key 1.
func (p Path) Resolve(data any) (any, error) {
	current := data
	for _, s := range p {
		next, err := child(current, s)
		if err != nil {
			return nil, err
		}

		current = next
	}

	return current, nil
}

func child(data any, s Step) (any, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: step %s descends into nil", ErrNodeNotFound, s)
	}

	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, fmt.Errorf("%w: step %s descends into nil", ErrNodeNotFound, s)
		}

		v = v.Elem()
	}

	if s.IsKey() {
		return childByKey(v, s)
	}

	return childByIndex(v, s)
}

func childByKey(v reflect.Value, s Step) (any, error) {
	switch v.Kind() {
	case reflect.Map:
		for _, k := range v.MapKeys() {
			if fmt.Sprint(k.Interface()) == s.Name() {
				return v.MapIndex(k).Interface(), nil
			}
		}
	case reflect.Struct:
		f := v.FieldByName(s.Name())
		if f.IsValid() && f.CanInterface() {
			return f.Interface(), nil
		}
	default:
		return nil, fmt.Errorf("%w: step %s applied to non-mapping node", ErrNodeNotFound, s)
	}

	return nil, fmt.Errorf("%w: no entry under key %s", ErrNodeNotFound, s)
}

func childByIndex(v reflect.Value, s Step) (any, error) {
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, fmt.Errorf("%w: step %s applied to non-sequence node", ErrNodeNotFound, s)
	}

	if s.Ordinal() >= v.Len() {
		return nil, fmt.Errorf("%w: index %s out of range of sequence with %d elements", ErrNodeNotFound, s, v.Len())
	}

	return v.Index(s.Ordinal()).Interface(), nil
}
