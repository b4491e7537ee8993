package check

import (
	"strings"

	"github.com/example/standardcheck/pkg/pyast"
)

// TypeString reconstructs the canonical textual form of a type annotation.
// It is a pure function of the expression shape. The second return value is
// false when the shape cannot be expressed; callers report that as its own
// finding rather than silently skipping the comparison.
//
// The rules, by shape:
//
//	X | Y       ->  "X|Y" (recursively, no spaces)
//	(X, Y)      ->  "X, Y" (no enclosing brackets)
//	Outer[X]    ->  "Outer[X]"; undeterminable unless Outer is a dotted name
//	a.b.C       ->  "a.b.C"
//	[X, Y]      ->  "[X,Y]"
//	literal     ->  its value text (None, numeric, string)
func TypeString(e pyast.Expr) (string, bool) {
	switch t := e.(type) {
	case *pyast.BinOp:
		left, lok := TypeString(t.Left)
		right, rok := TypeString(t.Right)
		if !lok || !rok {
			return "", false
		}
		return left + "|" + right, true
	case *pyast.Tuple:
		parts, ok := typeStrings(t.Elts)
		if !ok {
			return "", false
		}
		return strings.Join(parts, ", "), true
	case *pyast.Subscript:
		outer, ok := dottedName(t.Value)
		if !ok {
			return "", false
		}
		inner, ok := TypeString(t.Slice)
		if !ok {
			return "", false
		}
		return outer + "[" + inner + "]", true
	case *pyast.Constant:
		return t.Value, true
	case *pyast.Name, *pyast.Attribute:
		return dottedName(e)
	case *pyast.List:
		parts, ok := typeStrings(t.Elts)
		if !ok {
			return "", false
		}
		return "[" + strings.Join(parts, ",") + "]", true
	}
	return "", false
}

func typeStrings(elts []pyast.Expr) ([]string, bool) {
	parts := make([]string, 0, len(elts))
	for _, e := range elts {
		s, ok := TypeString(e)
		if !ok {
			return nil, false
		}
		parts = append(parts, s)
	}
	return parts, true
}

// dottedName walks an attribute chain from the outermost access down to the
// root name and re-emits it root-first. Chains not ending in a bare name are
// undeterminable.
func dottedName(e pyast.Expr) (string, bool) {
	var parts []string
	for {
		switch t := e.(type) {
		case *pyast.Attribute:
			parts = append(parts, t.Attr)
			e = t.Value
		case *pyast.Name:
			parts = append(parts, t.ID)
			for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
				parts[i], parts[j] = parts[j], parts[i]
			}
			return strings.Join(parts, "."), true
		default:
			return "", false
		}
	}
}
