package pathexpr

import (
	"strconv"
	"strings"
)

// gjsonSpecials are characters with meaning in tidwall/gjson path syntax.
const gjsonSpecials = `\.*?|#@`

// GJSONPath renders path in tidwall/gjson dot syntax, e.g. bob.3.foo,
// so nodes discovered inside decoded JSON can be fetched back with gjson.
func (p Path) GJSONPath() string {
	parts := make([]string, 0, len(p))
	for _, s := range p {
		if !s.IsKey() {
			parts = append(parts, strconv.Itoa(s.Ordinal()))
			continue
		}

		var b strings.Builder
		for _, r := range s.Name() {
			if strings.ContainsRune(gjsonSpecials, r) {
				b.WriteByte('\\')
			}

			b.WriteRune(r)
		}

		parts = append(parts, b.String())
	}

	return strings.Join(parts, ".")
}

// JSONPath renders path in $-rooted JSONPath syntax, e.g. $.bob[3].foo,
// accepted by the oliveagle/jsonpath library. Keys containing characters
// outside plain identifiers may not be addressable in that syntax.
func (p Path) JSONPath() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range p {
		if s.IsKey() {
			b.WriteByte('.')
			b.WriteString(s.Name())
			continue
		}

		b.WriteByte('[')
		b.WriteString(strconv.Itoa(s.Ordinal()))
		b.WriteByte(']')
	}

	return b.String()
}
