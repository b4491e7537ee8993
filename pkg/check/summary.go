package check

import (
	"fmt"

	"github.com/example/standardcheck/pkg/pyast"
)

// FunctionSummary condenses the signature-level facts about one function:
// which parameters lack type hints, which defaults are mutable, and whether
// a docstring exists at all.
type FunctionSummary struct {
	Name                      string   `json:"name" yaml:"name"`
	Line                      int      `json:"line" yaml:"line"`
	ReturnHintMissing         bool     `json:"returnHintMissing" yaml:"returnHintMissing"`
	ParamsMissingHints        []string `json:"paramsMissingHints,omitempty" yaml:"paramsMissingHints,omitempty"`
	ParamsWithMutableDefaults []string `json:"paramsWithMutableDefaults,omitempty" yaml:"paramsWithMutableDefaults,omitempty"`
	HasDocstring              bool     `json:"hasDocstring" yaml:"hasDocstring"`
	Docstring                 string   `json:"docstring,omitempty" yaml:"docstring,omitempty"`
}

// ClassSummary condenses one class and its methods.
type ClassSummary struct {
	Name         string            `json:"name" yaml:"name"`
	Line         int               `json:"line" yaml:"line"`
	Bases        []string          `json:"bases,omitempty" yaml:"bases,omitempty"`
	Functions    []FunctionSummary `json:"functions,omitempty" yaml:"functions,omitempty"`
	HasDocstring bool              `json:"hasDocstring" yaml:"hasDocstring"`
	Docstring    string            `json:"docstring,omitempty" yaml:"docstring,omitempty"`
}

// ModuleSummary is the per-file summary of all top-level declarations.
type ModuleSummary struct {
	Path      string            `json:"path" yaml:"path"`
	Functions []FunctionSummary `json:"functions,omitempty" yaml:"functions,omitempty"`
	Classes   []ClassSummary    `json:"classes,omitempty" yaml:"classes,omitempty"`
}

// Summarize builds the summary of a parsed module.
func Summarize(m *pyast.Module) *ModuleSummary {
	s := &ModuleSummary{Path: m.Path}
	for _, d := range m.Decls {
		if d.Class {
			s.Classes = append(s.Classes, summarizeClass(d))
		} else {
			s.Functions = append(s.Functions, summarizeFunction(d))
		}
	}
	return s
}

func summarizeFunction(d *pyast.Declaration) FunctionSummary {
	s := FunctionSummary{
		Name:              d.Name,
		Line:              d.Line,
		ReturnHintMissing: d.Returns == nil,
		HasDocstring:      d.HasDocstring,
		Docstring:         d.Docstring,
	}
	for _, p := range d.Params {
		if p.Starred || isSpecialVariable(p.Name) {
			continue
		}
		if p.Annotation == nil {
			s.ParamsMissingHints = append(s.ParamsMissingHints, p.Name)
		}
	}
	// Positional defaults align to the trailing parameters, so walk both
	// lists from the back.
	offset := len(d.Params) - len(d.Defaults)
	for i, def := range d.Defaults {
		if !def.IsMutable() {
			continue
		}
		if idx := offset + i; idx >= 0 && idx < len(d.Params) {
			s.ParamsWithMutableDefaults = append(s.ParamsWithMutableDefaults, d.Params[idx].Name)
		}
	}
	return s
}

func summarizeClass(d *pyast.Declaration) ClassSummary {
	s := ClassSummary{
		Name:         d.Name,
		Line:         d.Line,
		Bases:        d.Bases,
		HasDocstring: d.HasDocstring,
		Docstring:    d.Docstring,
	}
	for _, child := range d.Body {
		if !child.Class {
			s.Functions = append(s.Functions, summarizeFunction(child))
		}
	}
	return s
}

// Problems derives human-readable problem lines from a function summary.
func (s FunctionSummary) Problems() []string {
	var problems []string
	for _, p := range s.ParamsMissingHints {
		problems = append(problems, fmt.Sprintf("Function %s needs type annotation for the parameter %s.", s.Name, p))
	}
	for _, p := range s.ParamsWithMutableDefaults {
		problems = append(problems, fmt.Sprintf("Function %s's parameter %s defaults to a mutable object.", s.Name, p))
	}
	if s.ReturnHintMissing {
		problems = append(problems, fmt.Sprintf("Function %s is missing a return type annotation.", s.Name))
	}
	if !s.HasDocstring {
		problems = append(problems, fmt.Sprintf("Function %s is missing a docstring.", s.Name))
	}
	return problems
}

// Problems derives problem lines for the class and each of its methods.
func (s ClassSummary) Problems() []string {
	var problems []string
	if !s.HasDocstring {
		problems = append(problems, fmt.Sprintf("Class %s is missing a docstring.", s.Name))
	}
	for _, f := range s.Functions {
		problems = append(problems, f.Problems()...)
	}
	return problems
}
