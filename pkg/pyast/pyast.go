// Package pyast parses Python source files into a small typed declaration
// tree. It exposes only what the style checker consumes: functions, classes,
// parameters with annotations and defaults, docstrings, and store-context
// identifiers. The heavy lifting is done by tree-sitter's Python grammar.
package pyast

// Position is a source location. Line is 1-based, Col is a 0-based byte
// offset within the line, matching Python's own ast column offsets.
type Position struct {
	Line int
	Col  int
}

// NoPosition marks a missing location.
var NoPosition = Position{Line: -1, Col: -1}

// Expr is a parsed annotation or default-value expression. The concrete
// types form a closed variant set; consumers dispatch with a type switch.
// A nil Expr means the shape was not representable.
type Expr interface {
	expr()
}

// Name is a bare identifier, e.g. `int`.
type Name struct {
	ID string
}

// Attribute is a dotted access, e.g. the `b.C` part of `a.b.C`.
type Attribute struct {
	Value Expr
	Attr  string
}

// Subscript is a generic application, e.g. `list[int]`.
type Subscript struct {
	Value Expr
	Slice Expr
}

// BinOp is a binary operator expression. In annotation position the only
// operator of interest is `|`, the union type syntax.
type BinOp struct {
	Left  Expr
	Op    string
	Right Expr
}

// Unary is a unary operator expression, e.g. a negated default value.
type Unary struct {
	Op      string
	Operand Expr
}

// Tuple is a parenthesized element sequence.
type Tuple struct {
	Elts []Expr
}

// List is a list display, e.g. `[int, str]`.
type List struct {
	Elts []Expr
}

// Dict is a dict display. Only its mutability matters to the checker, so
// keys and values are not retained.
type Dict struct{}

// Set is a set display. Like Dict, only its shape is retained.
type Set struct{}

// Constant is a literal. Value holds the Python str() rendering: string
// literals lose their quotes, True/False/None keep their spelling, and
// numbers keep their source text.
type Constant struct {
	Value string
}

func (*Name) expr()      {}
func (*Attribute) expr() {}
func (*Subscript) expr() {}
func (*BinOp) expr()     {}
func (*Unary) expr()     {}
func (*Tuple) expr()     {}
func (*List) expr()      {}
func (*Dict) expr()      {}
func (*Set) expr()       {}
func (*Constant) expr()  {}

// Parameter is a single formal parameter of a function.
type Parameter struct {
	Name       string
	Annotation Expr // nil when unannotated
	End        Position
	Starred    bool // *args or **kwargs
}

// Default is one positional default value. Defaults are stored as a flat
// ordered list aligned to the trailing parameters, the way Python's own ast
// stores them; Start and End locate the value expression in the source.
type Default struct {
	Value Expr
	Text  string // raw source text of the value
	Start Position
	End   Position
}

// IsMutable reports whether the default value is a list, dict, or set
// display.
func (d *Default) IsMutable() bool {
	switch d.Value.(type) {
	case *List, *Dict, *Set:
		return true
	}
	return false
}

// Declaration is a function or class definition.
type Declaration struct {
	Name         string
	Line         int
	Class        bool
	Params       []Parameter // functions only
	Defaults     []*Default  // functions only
	Returns      Expr        // nil when no return annotation
	Bases        []string    // classes only
	Docstring    string
	HasDocstring bool
	Body         []*Declaration // nested definitions, in source order
}

// StoreName is an identifier appearing in store context: an assignment
// target, a for-loop target, or a with-as binding.
type StoreName struct {
	Name string
	Line int
}

// Module is the parsed representation of one source file.
type Module struct {
	Path   string
	Decls  []*Declaration // top-level definitions, in source order
	Stores []StoreName    // store-context identifiers, in source order
}
