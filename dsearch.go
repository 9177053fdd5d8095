package dsearch

import (
	"github.com/pawelWritesCode/dsearch/pkg/dataformat"
	"github.com/pawelWritesCode/dsearch/pkg/finder"
)

// Options alter descent policy of the search. See finder.Options for details.
type Options = finder.Options

// Predicate decides whether a single visited node matches.
type Predicate = finder.Predicate

// FindPaths reports path expressions of all nodes inside data matching given predicate.
// Paths come back in traversal order: depth-first, mapping keys ascending, sequence
// elements by index. A matching non-composite root is reported as a single empty path.
func FindPaths(match Predicate, data any, o Options) []string {
	return finder.Find(match, data, o)
}

// FindPathsToValue reports path expressions of all nodes structurally equal to target.
// A nil node equals only a nil target, never an empty string or other zero value.
func FindPathsToValue(target any, data any, o Options) []string {
	return finder.Find(finder.Equals(target), data, o)
}

// FindPathsToNumber reports path expressions of all nodes numerically equal to target.
// Ints, uints, floats, json.Number and numeric strings coerce before comparison;
// other nodes never match.
func FindPathsToNumber(target float64, data any, o Options) []string {
	return finder.Find(finder.NumericEquals(target), data, o)
}

// FindPathsInDocument decodes document bytes of given format and reports path
// expressions of all nodes matching given predicate inside the decoded tree.
func FindPathsInDocument(df dataformat.DataFormat, match Predicate, doc []byte, o Options) ([]string, error) {
	data, err := dataformat.Decode(df, doc)
	if err != nil {
		return nil, err
	}

	return finder.Find(match, data, o), nil
}
