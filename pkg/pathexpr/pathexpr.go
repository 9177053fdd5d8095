// Package pathexpr holds the path expression model used to address nodes inside nested data.
//
// A path is a concatenation of steps without any separator. An index step renders
// as [i], a key step as {'k'} with backslash and single quote escaped inside k,
// so a path may look like {'bob'}[3]{'foo'}. The path of a root node is the empty string.
package pathexpr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrPathSyntax tells that path expression violates the {'key'}[index] grammar.
var ErrPathSyntax = errors.New("invalid path expression syntax")

// ErrNodeNotFound tells that path expression does not address any node in given data.
var ErrNodeNotFound = errors.New("node not found")

// Step is a single path component: either a mapping key or a sequence index.
type Step struct {
	name    string
	ordinal int
	isKey   bool
}

// Path is an ordered sequence of steps addressing a single node.
type Path []Step

// Index creates a step addressing i-th element of a sequence.
func Index(i int) Step {
	return Step{ordinal: i}
}

// Key creates a step addressing value under k inside a mapping.
func Key(k string) Step {
	return Step{name: k, isKey: true}
}

// IsKey tells whether step addresses a mapping entry rather than a sequence element.
func (s Step) IsKey() bool { return s.isKey }

// Name returns the unescaped mapping key of a key step.
func (s Step) Name() string { return s.name }

// Ordinal returns the element index of an index step.
func (s Step) Ordinal() int { return s.ordinal }

// String renders a single step in the native grammar.
func (s Step) String() string {
	if s.isKey {
		return "{'" + Escape(s.name) + "'}"
	}

	return "[" + strconv.Itoa(s.ordinal) + "]"
}

// String renders whole path in the native grammar. Empty path renders as empty string.
func (p Path) String() string {
	var b strings.Builder
	for _, s := range p {
		b.WriteString(s.String())
	}

	return b.String()
}

// Escape prepares a mapping key for embedding between single quotes:
// every backslash becomes a double backslash, then every single quote
// gains a backslash. Backslashes go first, otherwise quote escapes
// would get escaped twice.
func Escape(key string) string {
	escaped := strings.ReplaceAll(key, `\`, `\\`)

	return strings.ReplaceAll(escaped, `'`, `\'`)
}

// Unescape reverses Escape. A backslash followed by anything other
// than a backslash or a single quote is a syntax error.
func Unescape(text string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(text); i++ {
		if text[i] != '\\' {
			b.WriteByte(text[i])
			continue
		}

		i++
		if i >= len(text) || (text[i] != '\\' && text[i] != '\'') {
			return "", fmt.Errorf("%w: stray backslash in key %q", ErrPathSyntax, text)
		}

		b.WriteByte(text[i])
	}

	return b.String(), nil
}

// Parse turns a rendered path expression back into a Path.
func Parse(expr string) (Path, error) {
	var p Path
	for len(expr) > 0 {
		switch expr[0] {
		case '[':
			end := strings.IndexByte(expr, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated index step in %q", ErrPathSyntax, expr)
			}

			i, err := strconv.Atoi(expr[1:end])
			if err != nil || i < 0 {
				return nil, fmt.Errorf("%w: index step %q must hold a non-negative integer", ErrPathSyntax, expr[:end+1])
			}

			p = append(p, Index(i))
			expr = expr[end+1:]
		case '{':
			if len(expr) < 2 || expr[1] != '\'' {
				return nil, fmt.Errorf("%w: key step must open with {' in %q", ErrPathSyntax, expr)
			}

			end := keyEnd(expr[2:])
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated key step in %q", ErrPathSyntax, expr)
			}

			key, err := Unescape(expr[2 : 2+end])
			if err != nil {
				return nil, err
			}

			p = append(p, Key(key))
			expr = expr[2+end+2:]
		default:
			return nil, fmt.Errorf("%w: unexpected character %q", ErrPathSyntax, expr[0])
		}
	}

	return p, nil
}

// keyEnd finds offset of the closing '} of a key step body, skipping escaped characters.
func keyEnd(text string) int {
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' {
			i++
			continue
		}

		if text[i] == '\'' && i+1 < len(text) && text[i+1] == '}' {
			return i
		}
	}

	return -1
}
