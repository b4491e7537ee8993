package check

import (
	"reflect"
	"strings"
	"testing"

	"github.com/example/standardcheck/pkg/pyast"
)

func TestCheckClauses(t *testing.T) {
	decl := &pyast.Declaration{Name: "f", Line: 3}
	intDefault := &pyast.Default{Value: &pyast.Constant{Value: "5"}, Text: "5"}
	listDefault := &pyast.Default{Value: &pyast.List{}, Text: "[1, 2]"}

	tests := []struct {
		name string
		desc string
		def  *pyast.Default
		want []string
	}{
		{"clean clause", "a value", nil, nil},
		{
			"empty clause",
			"a value; ",
			nil,
			[]string{"empty section provided in documentation for arg 'x'"},
		},
		{
			"capitalized clause",
			"A value",
			nil,
			[]string{"capital letter in beginning of a section for documentation of arg 'x'"},
		},
		{
			"trailing period",
			"a value.",
			nil,
			[]string{"section of documentation for arg 'x' ends with ."},
		},
		{
			"colon in clause",
			"a value: yes",
			nil,
			[]string{"section of documentation for arg 'x' contains disallowed character ':'"},
		},
		{
			"defaults clause without default",
			"defaults to 5",
			nil,
			[]string{"contains default documentation for arg 'x' which has no default"},
		},
		{
			"documented default disagrees",
			"defaults to 7",
			intDefault,
			[]string{"the default value '(5)' for arg 'x' is not reflected in the docstring"},
		},
		{"documented default agrees", "defaults to 5", intDefault, nil},
		{
			"default never mentioned",
			"a value",
			intDefault,
			[]string{"the default value '5' for arg 'x' is not reflected in the docstring"},
		},
		{
			"non-literal default never mentioned",
			"a value",
			listDefault,
			[]string{"the default value '[1, 2]' for arg 'x' is not reflected in the docstring"},
		},
		{"non-literal default with defaults clause", "defaults to an empty list", listDefault, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("test.py")
			doc := DocumentedParameter{Name: "x", Clauses: strings.Split(tt.desc, ";")}
			c.checkClauses(decl, doc, tt.def)
			got := findingMessages(c.findings)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("findings = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLiteralValue(t *testing.T) {
	tests := []struct {
		name string
		expr pyast.Expr
		want string
		ok   bool
	}{
		{"constant", &pyast.Constant{Value: "5"}, "5", true},
		{"negated constant", &pyast.Unary{Op: "-", Operand: &pyast.Constant{Value: "1"}}, "-1", true},
		{"other unary", &pyast.Unary{Op: "not ", Operand: &pyast.Constant{Value: "True"}}, "True", true},
		{"list display", &pyast.List{}, "", false},
		{"name", &pyast.Name{ID: "sentinel"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := literalValue(tt.expr)
			if got != tt.want || ok != tt.ok {
				t.Errorf("literalValue() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}
