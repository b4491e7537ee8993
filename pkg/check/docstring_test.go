package check

import (
	"reflect"
	"testing"
)

func TestSplitSections(t *testing.T) {
	doc := "Does a thing.\n\nArgs:\n    x (int): a value\n\nReturns:\n    bool: whether it worked"

	sections := splitSections(doc)
	if sections.Description != "Does a thing." {
		t.Errorf("description = %q", sections.Description)
	}
	if len(sections.Args) != 1 || len(sections.Returns) != 1 {
		t.Fatalf("got %d args sections, %d returns sections", len(sections.Args), len(sections.Returns))
	}
}

func TestSplitSectionsExactHeading(t *testing.T) {
	// A paragraph merely mentioning "Args:" is not a section.
	doc := "Does a thing.\n\nSee the Args: convention for details.\n\nReturns:\n    bool: done"

	sections := splitSections(doc)
	if len(sections.Args) != 0 {
		t.Errorf("prose mentioning Args: misdetected as a section")
	}
	if len(sections.Returns) != 1 {
		t.Errorf("Returns section not detected")
	}
}

func TestParseArgEntries(t *testing.T) {
	tests := []struct {
		name    string
		section string
		want    []string
		wantErr bool
	}{
		{
			"single entry",
			"Args:\n    x (int): a value",
			[]string{" x (int): a value"},
			false,
		},
		{
			"two entries",
			"Args:\n    x (int): a value\n    y (str): another",
			[]string{" x (int): a value", " y (str): another"},
			false,
		},
		{
			"wrapped description rejoined",
			"Args:\n    x (int): a value that\n        keeps going\n    y (str): another",
			[]string{" x (int): a value that keeps going", " y (str): another"},
			false,
		},
		{
			"trailing wrapped description",
			"Args:\n    x (int): a value that\n        wraps",
			[]string{" x (int): a value that wraps"},
			false,
		},
		{"heading only", "Args:", nil, true},
		{"first content line malformed", "Args:\n    just some text", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseArgEntries(tt.section)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseArgEntries() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseArgEntries() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseArgEntry(t *testing.T) {
	tests := []struct {
		name     string
		entry    string
		wantName string
		wantType string
		wantOpt  bool
		wantDesc string
		ok       bool
	}{
		{
			"plain entry",
			"x (int): a value",
			"x", "int", false, " a value", true,
		},
		{
			"optional entry",
			"x (int, optional): a value; defaults to 5",
			"x", "int,optional", true, " a value; defaults to 5", true,
		},
		{
			"union type with spaces",
			"x (str | None): maybe text",
			"x", "str|None", false, " maybe text", true,
		},
		{
			"empty description",
			"x (int):",
			"x", "int", false, "", true,
		},
		{"no type definition", "x: a value", "", "", false, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseArgEntry(tt.entry)
			if ok != tt.ok {
				t.Fatalf("parseArgEntry(%q) ok = %v, want %v", tt.entry, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Name != tt.wantName || got.Type != tt.wantType || got.Optional != tt.wantOpt || got.Description != tt.wantDesc {
				t.Errorf("parseArgEntry(%q) = %+v", tt.entry, got)
			}
		})
	}
}

func TestParseReturnsSection(t *testing.T) {
	tests := []struct {
		name     string
		section  string
		wantType string
		wantErr  error
	}{
		{"valid", "Returns:\n    bool: True if valid", "bool", nil},
		{"dotted type", "Returns:\n    pd.DataFrame: the frame", "pd.DataFrame", nil},
		{"heading only", "Returns:", "", errReturnsMissing},
		{"missing type separator", "Returns:\n    just a description", "", errReturnsNoType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseReturnsSection(tt.section)
			if err != tt.wantErr {
				t.Fatalf("parseReturnsSection() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got.Type != tt.wantType {
				t.Errorf("type = %q, want %q", got.Type, tt.wantType)
			}
		})
	}
}
