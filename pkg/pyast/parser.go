package pyast

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ErrSyntax reports that a source file did not parse as valid Python.
// Analysis of such a file is all-or-nothing: no partial results are returned.
var ErrSyntax = errors.New("syntax error")

// ParseFile parses Python source into a Module. The path is recorded for
// reporting only; the file is not read here. A source tree containing syntax
// errors fails with ErrSyntax.
func ParseFile(src []byte, path string) (*Module, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.HasError() {
		return nil, fmt.Errorf("%w in %s", ErrSyntax, path)
	}

	m := &Module{Path: path}
	collectDecls(root, src, &m.Decls)
	collectStores(root, src, &m.Stores)
	return m, nil
}

// collectDecls gathers the definitions under a node, descending into
// compound statements so a function defined inside an if, try, for, with, or
// match body is still seen. Definition bodies are not descended here; their
// members hang off the Declaration instead.
func collectDecls(node *sitter.Node, src []byte, out *[]*Declaration) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if decl := convertDecl(child, src); decl != nil {
			*out = append(*out, decl)
			continue
		}
		switch child.Type() {
		case "if_statement", "elif_clause", "else_clause",
			"for_statement", "while_statement", "with_statement",
			"try_statement", "except_clause", "finally_clause",
			"match_statement", "case_clause", "block":
			collectDecls(child, src, out)
		}
	}
}

// convertDecl converts a definition node, unwrapping decorators. Non-definition
// nodes yield nil.
func convertDecl(node *sitter.Node, src []byte) *Declaration {
	switch node.Type() {
	case "decorated_definition":
		if def := node.ChildByFieldName("definition"); def != nil {
			return convertDecl(def, src)
		}
		return nil
	case "function_definition":
		return convertFunction(node, src)
	case "class_definition":
		return convertClass(node, src)
	}
	return nil
}

func convertFunction(node *sitter.Node, src []byte) *Declaration {
	name := node.ChildByFieldName("name")
	if name == nil {
		return nil
	}

	d := &Declaration{
		Name: name.Content(src),
		Line: int(node.StartPoint().Row) + 1,
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		convertParameters(params, src, d)
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		d.Returns = convertExpr(ret, src)
	}
	if body := node.ChildByFieldName("body"); body != nil {
		d.Docstring, d.HasDocstring = extractDocstring(body, src)
		convertBody(body, src, d)
	}
	return d
}

func convertClass(node *sitter.Node, src []byte) *Declaration {
	name := node.ChildByFieldName("name")
	if name == nil {
		return nil
	}

	d := &Declaration{
		Name:  name.Content(src),
		Line:  int(node.StartPoint().Row) + 1,
		Class: true,
	}

	if bases := node.ChildByFieldName("superclasses"); bases != nil {
		for i := 0; i < int(bases.NamedChildCount()); i++ {
			arg := bases.NamedChild(i)
			switch arg.Type() {
			case "identifier", "attribute":
				d.Bases = append(d.Bases, arg.Content(src))
			}
		}
	}
	if body := node.ChildByFieldName("body"); body != nil {
		d.Docstring, d.HasDocstring = extractDocstring(body, src)
		convertBody(body, src, d)
	}
	return d
}

// convertBody collects nested definitions from a block, compound statements
// included.
func convertBody(block *sitter.Node, src []byte, parent *Declaration) {
	collectDecls(block, src, &parent.Body)
}

// convertParameters fills in Params and the flat positional Defaults list.
// A parameter's end position covers its annotation when one is present, the
// way Python's ast reports arg.end_col_offset; the default-value locator
// depends on this.
func convertParameters(params *sitter.Node, src []byte, d *Declaration) {
	for i := 0; i < int(params.NamedChildCount()); i++ {
		child := params.NamedChild(i)
		switch child.Type() {
		case "identifier":
			d.Params = append(d.Params, Parameter{
				Name: child.Content(src),
				End:  endOf(child),
			})
		case "typed_parameter":
			p := Parameter{End: endOf(child)}
			for j := 0; j < int(child.NamedChildCount()); j++ {
				inner := child.NamedChild(j)
				if inner.Type() == "identifier" {
					p.Name = inner.Content(src)
					break
				}
			}
			if typ := child.ChildByFieldName("type"); typ != nil {
				p.Annotation = convertExpr(typ, src)
				p.End = endOf(typ)
			}
			if p.Name != "" {
				d.Params = append(d.Params, p)
			}
		case "default_parameter":
			name := child.ChildByFieldName("name")
			if name == nil || name.Type() != "identifier" {
				continue
			}
			d.Params = append(d.Params, Parameter{
				Name: name.Content(src),
				End:  endOf(name),
			})
			appendDefault(child, src, d)
		case "typed_default_parameter":
			name := child.ChildByFieldName("name")
			if name == nil {
				continue
			}
			p := Parameter{Name: name.Content(src), End: endOf(name)}
			if typ := child.ChildByFieldName("type"); typ != nil {
				p.Annotation = convertExpr(typ, src)
				p.End = endOf(typ)
			}
			d.Params = append(d.Params, p)
			appendDefault(child, src, d)
		case "list_splat_pattern", "dictionary_splat_pattern":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				inner := child.NamedChild(j)
				if inner.Type() == "identifier" {
					d.Params = append(d.Params, Parameter{
						Name:    inner.Content(src),
						End:     endOf(child),
						Starred: true,
					})
					break
				}
			}
		}
	}
}

func appendDefault(param *sitter.Node, src []byte, d *Declaration) {
	value := param.ChildByFieldName("value")
	if value == nil {
		return
	}
	d.Defaults = append(d.Defaults, &Default{
		Value: convertExpr(value, src),
		Text:  value.Content(src),
		Start: startOf(value),
		End:   endOf(value),
	})
}

// convertExpr maps a tree-sitter expression node onto the Expr variant set.
// Shapes outside the set convert to nil, which the type reconstructor
// treats as undeterminable.
func convertExpr(node *sitter.Node, src []byte) Expr {
	switch node.Type() {
	case "type", "parenthesized_expression":
		if node.NamedChildCount() > 0 {
			return convertExpr(node.NamedChild(0), src)
		}
		return nil
	case "identifier":
		return &Name{ID: node.Content(src)}
	case "attribute":
		obj := node.ChildByFieldName("object")
		attr := node.ChildByFieldName("attribute")
		if obj == nil || attr == nil {
			return nil
		}
		return &Attribute{Value: convertExpr(obj, src), Attr: attr.Content(src)}
	case "subscript":
		value := node.ChildByFieldName("value")
		if value == nil {
			return nil
		}
		var slices []Expr
		for i := 0; i < int(node.ChildCount()); i++ {
			if node.FieldNameForChild(i) == "subscript" {
				slices = append(slices, convertExpr(node.Child(i), src))
			}
		}
		sub := &Subscript{Value: convertExpr(value, src)}
		switch len(slices) {
		case 0:
			return nil
		case 1:
			sub.Slice = slices[0]
		default:
			// a[b, c] carries an implicit tuple slice, as in Python's ast.
			sub.Slice = &Tuple{Elts: slices}
		}
		return sub
	case "binary_operator":
		left := node.ChildByFieldName("left")
		op := node.ChildByFieldName("operator")
		right := node.ChildByFieldName("right")
		if left == nil || op == nil || right == nil {
			return nil
		}
		return &BinOp{
			Left:  convertExpr(left, src),
			Op:    op.Content(src),
			Right: convertExpr(right, src),
		}
	case "unary_operator":
		op := node.ChildByFieldName("operator")
		arg := node.ChildByFieldName("argument")
		if op == nil || arg == nil {
			return nil
		}
		return &Unary{Op: op.Content(src), Operand: convertExpr(arg, src)}
	case "tuple":
		return &Tuple{Elts: convertElts(node, src)}
	case "list":
		return &List{Elts: convertElts(node, src)}
	case "dictionary":
		return &Dict{}
	case "set":
		return &Set{}
	case "string":
		return &Constant{Value: unquoteString(node.Content(src))}
	case "integer", "float":
		return &Constant{Value: node.Content(src)}
	case "true":
		return &Constant{Value: "True"}
	case "false":
		return &Constant{Value: "False"}
	case "none":
		return &Constant{Value: "None"}
	}
	return nil
}

func convertElts(node *sitter.Node, src []byte) []Expr {
	elts := make([]Expr, 0, node.NamedChildCount())
	for i := 0; i < int(node.NamedChildCount()); i++ {
		elts = append(elts, convertExpr(node.NamedChild(i), src))
	}
	return elts
}

// extractDocstring returns the cleaned docstring when the first statement of
// a body is a string expression.
func extractDocstring(body *sitter.Node, src []byte) (string, bool) {
	if body.NamedChildCount() == 0 {
		return "", false
	}
	first := body.NamedChild(0)
	if first.Type() != "expression_statement" || first.NamedChildCount() == 0 {
		return "", false
	}
	str := first.NamedChild(0)
	if str.Type() != "string" {
		return "", false
	}
	return cleanDocstring(unquoteString(str.Content(src))), true
}

// unquoteString strips an optional literal prefix and the surrounding quotes
// from a Python string literal, mirroring what str() of the value shows.
func unquoteString(text string) string {
	for len(text) > 0 {
		switch text[0] {
		case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
			text = text[1:]
			continue
		}
		break
	}
	for _, q := range []string{`"""`, `'''`, `"`, `'`} {
		if strings.HasPrefix(text, q) && strings.HasSuffix(text, q) && len(text) >= 2*len(q) {
			return text[len(q) : len(text)-len(q)]
		}
	}
	return text
}

func startOf(node *sitter.Node) Position {
	return Position{Line: int(node.StartPoint().Row) + 1, Col: int(node.StartPoint().Column)}
}

func endOf(node *sitter.Node) Position {
	return Position{Line: int(node.EndPoint().Row) + 1, Col: int(node.EndPoint().Column)}
}
