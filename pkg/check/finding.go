// Package check implements the style and docstring checks for parsed Python
// declarations. The core of the package is the docstring cross-validator:
// it reconstructs declared types from annotation expressions, parses the
// structured Args and Returns sections of a docstring, and reports every
// disagreement between the two as a Finding.
package check

import "fmt"

// Finding is one reported violation. Findings are immutable once created and
// accumulate in visitation order; they are never sorted.
type Finding struct {
	File    string `json:"file" yaml:"file"`
	Line    int    `json:"line" yaml:"line"`
	Decl    string `json:"function,omitempty" yaml:"function,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// String renders the finding the way the reporter prints it. The declaration
// prefix appears only for function-scoped findings.
func (f Finding) String() string {
	if f.Decl != "" {
		return fmt.Sprintf("%s:%d: Function %s: %s", f.File, f.Line, f.Decl, f.Message)
	}
	return fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Message)
}
