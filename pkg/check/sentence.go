package check

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/example/standardcheck/pkg/pyast"
)

// defaultsToPhrase marks a clause as documenting the parameter's default.
const defaultsToPhrase = "defaults to"

// checkClauses enforces the sentence rules on each semicolon-delimited
// clause of a documented parameter's description: lowercase start, no
// trailing period, no colons, and agreement between documented and actual
// default values.
func (c *Checker) checkClauses(d *pyast.Declaration, doc DocumentedParameter, def *pyast.Default) {
	foundDefault := false
	for _, raw := range doc.Clauses {
		clause := strings.TrimSpace(raw)
		if clause == "" {
			c.report(d.Line, d.Name, "empty section provided in documentation for arg '%s'", doc.Name)
			continue
		}

		if first, _ := utf8.DecodeRuneInString(clause); unicode.IsUpper(first) {
			c.report(d.Line, d.Name,
				"capital letter in beginning of a section for documentation of arg '%s'", doc.Name)
		}
		if strings.HasSuffix(clause, ".") {
			c.report(d.Line, d.Name, "section of documentation for arg '%s' ends with .", doc.Name)
		}
		if strings.Contains(clause, ":") {
			c.report(d.Line, d.Name,
				"section of documentation for arg '%s' contains disallowed character ':'", doc.Name)
		}

		if strings.Contains(clause, defaultsToPhrase) {
			foundDefault = true
			if def == nil {
				c.report(d.Line, d.Name,
					"contains default documentation for arg '%s' which has no default", doc.Name)
			} else if lit, ok := literalValue(def.Value); ok && !strings.Contains(clause, lit) {
				c.report(d.Line, d.Name,
					"the default value '(%s)' for arg '%s' is not reflected in the docstring", lit, doc.Name)
			}
		}
	}

	if !foundDefault && def != nil {
		c.report(d.Line, d.Name,
			"the default value '%s' for arg '%s' is not reflected in the docstring",
			defaultText(def), doc.Name)
	}
}

// literalValue renders a default value the way Python's str() would, so the
// rendered text can be searched for inside a clause. A unary minus negates
// its numeric operand; other unary operators fall through to the operand.
func literalValue(e pyast.Expr) (string, bool) {
	switch t := e.(type) {
	case *pyast.Constant:
		return t.Value, true
	case *pyast.Unary:
		operand, ok := t.Operand.(*pyast.Constant)
		if !ok {
			return "", false
		}
		if t.Op == "-" {
			return "-" + operand.Value, true
		}
		return operand.Value, true
	}
	return "", false
}

// defaultText prefers the computed literal and falls back to the raw source
// text for non-literal defaults.
func defaultText(def *pyast.Default) string {
	if lit, ok := literalValue(def.Value); ok {
		return lit
	}
	return def.Text
}
