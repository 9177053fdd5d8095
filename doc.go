// Package dsearch locates nodes inside arbitrarily nested data and reports them
// as reusable path expressions.
//
// The search walks any combination of maps, slices, arrays and structs
// depth-first and hands every visited node to a predicate. Positions of
// matching nodes come back as path expressions like:
//
//	{'bob'}[3]{'foo'}
//
// where {'key'} addresses a mapping entry (backslash and single quote escaped
// inside the quotes) and [i] addresses a sequence element. The path of a
// matching root is the empty string.
//
// Searching is done with one of:
//
//	func FindPaths(match Predicate, data any, o Options) []string
//	func FindPathsToValue(target any, data any, o Options) []string
//	func FindPathsToNumber(target float64, data any, o Options) []string
//	func FindPathsInDocument(df dataformat.DataFormat, match Predicate, doc []byte, o Options) ([]string, error)
//
// Options hold two switches, both off by default:
//
//	InsideObjects - descend into tagged containers (structs and defined composite types)
//	InsideMatches - keep descending below a node that already matched
//
// Results are deterministic: mapping entries are visited in ascending order of
// their rendered keys, sequence elements in index order. Self-referential data
// does not loop - a branch is pruned as soon as it revisits a composite already
// seen between the root and the current node, while the same node reachable via
// several distinct routes is still reported once per route.
//
// Emitted paths can be parsed and looked back up with the pathexpr package:
//
//	func pathexpr.Parse(expr string) (pathexpr.Path, error)
//	func (p pathexpr.Path) Resolve(data any) (any, error)
//
// or rendered for third-party engines with pathexpr.Path methods GJSONPath and JSONPath.
//
// Serialized documents are decoded before searching with the dataformat package,
// which understands JSON, YAML and XML.
package dsearch
