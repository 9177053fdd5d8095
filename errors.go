package dsearch

import (
	"github.com/pawelWritesCode/dsearch/pkg/dataformat"
	"github.com/pawelWritesCode/dsearch/pkg/pathexpr"
)

//ErrPathSyntax tells that path expression violates the {'key'}[index] grammar.
var ErrPathSyntax = pathexpr.ErrPathSyntax

//ErrNodeNotFound tells that path expression does not address any node in given data.
var ErrNodeNotFound = pathexpr.ErrNodeNotFound

//ErrFormat tells that document bytes do not hold data in expected format.
var ErrFormat = dataformat.ErrFormat
