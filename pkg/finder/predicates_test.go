package finder

import (
	"encoding/json"
	"testing"
)

func TestEquals(t *testing.T) {
	type args struct {
		target any
		value  any
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{name: "equal strings", args: args{target: "fred", value: "fred"}, want: true},
		{name: "different strings", args: args{target: "fred", value: "bob"}, want: false},
		{name: "equal ints", args: args{target: 42, value: 42}, want: true},
		{name: "int against float", args: args{target: 42, value: 42.0}, want: false},
		{name: "equal slices", args: args{target: []any{1, 2}, value: []any{1, 2}}, want: true},
		{name: "nil equals nil", args: args{target: nil, value: nil}, want: true},
		{name: "nil never equals empty string", args: args{target: "", value: nil}, want: false},
		{name: "empty string never equals nil", args: args{target: nil, value: ""}, want: false},
		{name: "nil never equals zero", args: args{target: 0, value: nil}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equals(tt.args.target)(tt.args.value); got != tt.want {
				t.Errorf("Equals()() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNumericEquals(t *testing.T) {
	type args struct {
		target float64
		value  any
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{name: "int", args: args{target: 42, value: 42}, want: true},
		{name: "int64", args: args{target: 42, value: int64(42)}, want: true},
		{name: "uint64", args: args{target: 42, value: uint64(42)}, want: true},
		{name: "float64", args: args{target: 42, value: 42.0}, want: true},
		{name: "float32", args: args{target: 42, value: float32(42)}, want: true},
		{name: "json number", args: args{target: 42, value: json.Number("42")}, want: true},
		{name: "numeric string", args: args{target: 42, value: "42"}, want: true},
		{name: "numeric string with fraction", args: args{target: 42.5, value: "42.5"}, want: true},
		{name: "different number", args: args{target: 42, value: 41}, want: false},
		{name: "non numeric string", args: args{target: 42, value: "fred"}, want: false},
		{name: "nil", args: args{target: 42, value: nil}, want: false},
		{name: "bool", args: args{target: 1, value: true}, want: false},
		{name: "mapping", args: args{target: 42, value: map[string]any{}}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumericEquals(tt.args.target)(tt.args.value); got != tt.want {
				t.Errorf("NumericEquals()() = %v, want %v", got, tt.want)
			}
		})
	}
}
