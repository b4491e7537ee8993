package check

import "github.com/example/standardcheck/pkg/pyast"

// DefaultLocator matches a parameter to its default value. The positional
// defaults of a Python function are stored as a bare sequence aligned to the
// trailing parameters, so the pairing has to be recovered. The interface
// exists so the heuristic below can be swapped for an explicit pairing when
// the parser provides one.
type DefaultLocator interface {
	// Locate returns the default belonging to the parameter ending at end,
	// or nil when the parameter has none.
	Locate(end pyast.Position, defaults []*pyast.Default) *pyast.Default
}

// AdjacencyLocator pairs a parameter with its default by source-position
// adjacency. A default matches when it starts exactly one column after the
// parameter's end (`name=value`) or exactly three (`name = value`) and ends
// on the parameter's end line. Parameter/default pairs split across lines
// are not matched; that is a documented limitation of the heuristic, not a
// bug to fix here.
type AdjacencyLocator struct{}

// Locate implements DefaultLocator.
func (AdjacencyLocator) Locate(end pyast.Position, defaults []*pyast.Default) *pyast.Default {
	if end.Col == -1 {
		return nil
	}
	for _, def := range defaults {
		diff := def.Start.Col - end.Col
		if (diff == 1 || diff == 3) && def.End.Line == end.Line {
			return def
		}
	}
	return nil
}
