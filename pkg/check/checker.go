package check

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/example/standardcheck/pkg/pyast"
)

// Option configures a Checker.
type Option func(*Checker)

// WithIgnoreSet injects the set of identifier names exempt from checks.
func WithIgnoreSet(s IgnoreSet) Option {
	return func(c *Checker) {
		if s != nil {
			c.ignore = s
		}
	}
}

// WithDefaultLocator replaces the default-value pairing strategy.
func WithDefaultLocator(l DefaultLocator) Option {
	return func(c *Checker) {
		if l != nil {
			c.locator = l
		}
	}
}

// Checker walks one parsed module and accumulates findings. It holds no
// state between files; construct one per file.
type Checker struct {
	file     string
	ignore   IgnoreSet
	locator  DefaultLocator
	findings []Finding
}

// New creates a Checker for the named file.
func New(file string, opts ...Option) *Checker {
	c := &Checker{
		file:    file,
		ignore:  IgnoreSet{},
		locator: AdjacencyLocator{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check runs every check over the module and returns the findings in
// visitation order: declarations depth-first, then store-context names.
// Running Check twice on the same input yields identical output.
func (c *Checker) Check(m *pyast.Module) []Finding {
	c.findings = nil
	for _, d := range m.Decls {
		c.checkDecl(d)
	}
	for _, s := range m.Stores {
		c.checkStore(s)
	}
	return c.findings
}

func (c *Checker) report(line int, decl, format string, args ...interface{}) {
	c.findings = append(c.findings, Finding{
		File:    c.file,
		Line:    line,
		Decl:    decl,
		Message: fmt.Sprintf(format, args...),
	})
}

// declTag returns the Finding.Decl value for a declaration. Only
// function-scoped findings carry the declaration name.
func declTag(d *pyast.Declaration) string {
	if d.Class {
		return ""
	}
	return d.Name
}

func (c *Checker) checkDecl(d *pyast.Declaration) {
	if d.Class {
		c.checkClass(d)
	} else {
		c.checkFunction(d)
	}
	for _, child := range d.Body {
		c.checkDecl(child)
	}
}

func (c *Checker) checkFunction(d *pyast.Declaration) {
	c.verifyDocstring(d)

	if !c.validName(d.Name, false) {
		c.report(d.Line, d.Name, "Function '%s' is not in snake case.", d.Name)
	}
	if strings.Contains(d.Name, nameMangle) && !isSpecialMethod(d.Name) && !c.ignore.Has(d.Name) {
		c.report(d.Line, d.Name, "Function '%s' uses '%s' inappropriately.", d.Name, nameMangle)
	}

	for _, p := range d.Params {
		if p.Starred {
			continue
		}
		if p.Annotation == nil && !isSpecialVariable(p.Name) {
			c.report(d.Line, d.Name, "Function '%s' has parameter '%s' without type annotation.", d.Name, p.Name)
		}
		if !c.validName(p.Name, false) {
			c.report(d.Line, d.Name, "Function '%s' has parameter '%s' that is not in snake case.", d.Name, p.Name)
		}
	}

	for _, def := range d.Defaults {
		if def.IsMutable() {
			c.report(d.Line, d.Name, "Function '%s' has a mutable default argument.", d.Name)
		}
	}

	if d.Returns == nil {
		c.report(d.Line, d.Name, "Function '%s' is missing a return type annotation.", d.Name)
	}
}

func (c *Checker) checkClass(d *pyast.Declaration) {
	if !c.validName(d.Name, true) {
		c.report(d.Line, "", "Class '%s' is not in Pascal case.", d.Name)
	}
	c.verifyDocstring(d)
}

func (c *Checker) checkStore(s pyast.StoreName) {
	if strings.Contains(s.Name, nameMangle) && !isSpecialMethod(s.Name) && !c.ignore.Has(s.Name) {
		c.report(s.Line, "", "Variable '%s' uses '%s' inappropriately.", s.Name, nameMangle)
	}
	if !c.validName(s.Name, false) {
		c.report(s.Line, "", "Variable '%s' is not in snake case.", s.Name)
	}
}

// validName reports whether a name passes the casing conventions. Names in
// the ignore set, ALL_CAPS constants, and underscore-prefixed names are
// always accepted.
func (c *Checker) validName(name string, class bool) bool {
	if c.ignore.Has(name) {
		return true
	}
	if isUpperName(name) {
		return true
	}
	if strings.HasPrefix(name, "_") {
		return true
	}
	if class {
		return isPascalCase(name)
	}
	return isSnakeCase(name)
}

// verifyDocstring checks docstring presence, description formatting, and the
// labeled sections against the declaration's actual signature.
func (c *Checker) verifyDocstring(d *pyast.Declaration) {
	tag := declTag(d)
	if !d.HasDocstring || d.Docstring == "" {
		c.report(d.Line, tag, "'%s' is missing a docstring.", d.Name)
		return
	}

	sections := splitSections(d.Docstring)
	c.checkDescription(d, sections.Description)

	for _, block := range sections.Args {
		c.checkArgsSection(d, block)
	}
	for _, block := range sections.Returns {
		c.checkReturnsSection(d, block)
	}

	if d.Class {
		return
	}

	if len(sections.Args) == 0 && documentableParams(d) > 0 {
		c.report(d.Line, tag, "arguments not documented in docstring")
	}
	if rt, ok := TypeString(d.Returns); ok && len(sections.Returns) == 0 && rt != "None" {
		c.report(d.Line, tag, "return type not documented in docstring")
	}
}

// documentableParams counts the parameters a docstring must cover:
// everything but self-like names and variadic markers.
func documentableParams(d *pyast.Declaration) int {
	n := 0
	for _, p := range d.Params {
		if !p.Starred && !isSpecialVariable(p.Name) {
			n++
		}
	}
	return n
}

// checkDescription enforces the description paragraph rules: present, begins
// with a capital letter, ends with a period.
func (c *Checker) checkDescription(d *pyast.Declaration, section string) {
	tag := declTag(d)

	section = strings.ReplaceAll(section, "\n", " ")
	section = strings.ReplaceAll(section, "\t", " ")
	section = normalizeSection(section)

	if section == "" {
		c.report(d.Line, tag, "'%s' docstring description is missing", d.Name)
		return
	}

	first := []rune(section)[0]
	if unicode.IsLetter(first) && !unicode.IsUpper(first) {
		c.report(d.Line, tag, "'%s' docstring description must begin with a capital letter", d.Name)
	}
	if !strings.HasSuffix(section, ".") {
		c.report(d.Line, tag, "'%s' docstring description must end with a period", d.Name)
	}
}

// checkArgsSection cross-validates one Args section against the function's
// actual parameter list.
func (c *Checker) checkArgsSection(d *pyast.Declaration, block string) {
	if d.Class {
		c.report(d.Line, "", "Args Section found for non function: '%s'", d.Name)
		return
	}

	entries, err := parseArgEntries(block)
	if err != nil {
		c.report(d.Line, d.Name, "Function '%s' docstring Args section is empty", d.Name)
		return
	}

	documented := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		doc, ok := parseArgEntry(entry)
		if !ok {
			c.report(d.Line, d.Name, "an argument in the docstring does not have a type definition")
			continue
		}
		documented[doc.Name] = struct{}{}
		c.checkArgEntry(d, doc)
	}

	for _, p := range d.Params {
		if p.Starred || isSpecialVariable(p.Name) {
			continue
		}
		if _, ok := documented[p.Name]; !ok {
			c.report(d.Line, d.Name, "argument '%s' not documented", p.Name)
		}
	}
}

// checkArgEntry validates a single documented parameter: the name must match
// a real parameter, the documented type must match the reconstructed one
// (with ", optional" appended when a default exists), and the description
// must follow the sentence rules.
func (c *Checker) checkArgEntry(d *pyast.Declaration, doc DocumentedParameter) {
	param := findParam(d, doc.Name)
	if param == nil {
		c.report(d.Line, d.Name, "docstring arg '%s' does not appear in '%s' arguments", doc.Name, d.Name)
		return
	}

	def := c.locator.Locate(param.End, d.Defaults)

	if realType, ok := TypeString(param.Annotation); !ok {
		c.report(d.Line, d.Name, "type for arg '%s' could not be constructed", doc.Name)
	} else {
		if def != nil {
			realType += ", optional"
		}
		realType = strings.ReplaceAll(realType, " ", "")
		if realType != doc.Type {
			c.report(d.Line, d.Name,
				"type for arg '%s (%s)' in documentation does not match with '%s (%s)' definition",
				doc.Name, doc.Type, doc.Name, realType)
		}
	}

	if doc.Description == "" {
		c.report(d.Line, d.Name, "description sentence for arg '%s' not provided in docstring", doc.Name)
	}
	c.checkClauses(d, doc, def)
}

// findParam returns the parameter matching a documented name. Self-like and
// variadic parameters never match; documenting them is itself an error.
func findParam(d *pyast.Declaration, name string) *pyast.Parameter {
	for i := range d.Params {
		p := &d.Params[i]
		if p.Name == name && !p.Starred && !isSpecialVariable(p.Name) {
			return p
		}
	}
	return nil
}

// checkReturnsSection cross-validates a Returns section against the declared
// return type.
func (c *Checker) checkReturnsSection(d *pyast.Declaration, block string) {
	if d.Class {
		c.report(d.Line, "", "Returns Section found for non function: '%s'", d.Name)
		return
	}

	ret, err := parseReturnsSection(block)
	switch err {
	case errReturnsMissing:
		c.report(d.Line, d.Name, "'%s' docstring return section is missing", d.Name)
		return
	case errReturnsNoType:
		c.report(d.Line, d.Name, "'%s' docstring return section is missing a type definition", d.Name)
		return
	}

	funcType, ok := TypeString(d.Returns)
	if !ok {
		c.report(d.Line, d.Name, "return type for '%s' either is not defined or could not be constructed", d.Name)
		return
	}

	funcType = strings.ReplaceAll(funcType, " ", "")
	if funcType != ret.Type {
		c.report(d.Line, d.Name,
			"the documentation of the return type (%s) does not match with function return type (%s)",
			ret.Type, funcType)
	}
}
