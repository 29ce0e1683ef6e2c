package statement

import (
	"github.com/adamluzsi/rdfstream/pkg/datastruct"
	"github.com/adamluzsi/rdfstream/stream"
)

// Distinct returns a Mapper that suppresses statements already seen by it.
// The returned Mapper is stateful, use one per stream.
func Distinct() stream.Mapper[Statement] {
	var seen datastruct.OrderedSet[Statement]
	return stream.MapperFunc[Statement](func(s Statement) (Statement, bool) {
		if !seen.Add(s) {
			return Statement{}, false
		}
		return s, true
	})
}

// Matching returns a Mapper that only lets through statements matching the pattern.
func Matching(pattern Statement) stream.Mapper[Statement] {
	return stream.Filter(func(s Statement) bool {
		return s.Match(pattern)
	})
}
