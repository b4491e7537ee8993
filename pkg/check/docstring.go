package check

import (
	"errors"
	"strings"
)

// Docstring section headings. A blank-line-delimited block belongs to a
// section iff its first non-blank line, trimmed, is exactly the heading.
// Substring detection would false-positive on prose that merely mentions
// "Args:", so it is deliberately not used.
const (
	argsHeading    = "Args:"
	returnsHeading = "Returns:"
)

var (
	errMalformedArgs  = errors.New("malformed args section")
	errReturnsMissing = errors.New("returns section content missing")
	errReturnsNoType  = errors.New("returns section missing type definition")
)

// DocumentedParameter is one logical `name (type): description` entry parsed
// from a docstring Args section. Type keeps the documented text with interior
// spaces stripped, including any ", optional" suffix; Clauses are the
// semicolon-delimited pieces of the description.
type DocumentedParameter struct {
	Name        string
	Type        string
	Optional    bool
	Description string
	Clauses     []string
}

// DocumentedReturn is the type documented in a Returns section.
type DocumentedReturn struct {
	Type string
}

// docSections is a docstring split on blank-line boundaries: the leading
// description paragraph plus any labeled sections.
type docSections struct {
	Description string
	Args        []string
	Returns     []string
}

// splitSections splits a docstring into its description and labeled
// sections.
func splitSections(doc string) docSections {
	blocks := strings.Split(doc, "\n\n")
	sections := docSections{Description: blocks[0]}
	for _, block := range blocks[1:] {
		switch sectionHeading(block) {
		case argsHeading:
			sections.Args = append(sections.Args, block)
		case returnsHeading:
			sections.Returns = append(sections.Returns, block)
		}
	}
	return sections
}

// sectionHeading returns the heading the block opens with, or "".
func sectionHeading(block string) string {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == argsHeading || line == returnsHeading {
			return line
		}
		return ""
	}
	return ""
}

// normalizeSection collapses repeated interior spaces to single spaces and
// strips surrounding whitespace. Docstring indentation carries no meaning
// for entry parsing, so it is flattened before line splitting.
func normalizeSection(section string) string {
	for strings.Contains(section, "  ") {
		section = strings.ReplaceAll(section, "  ", " ")
	}
	return strings.TrimSpace(section)
}

// parseArgEntries splits a normalized Args section into logical entries. An
// entry header ends with the `):` delimiter; a continuation line lacking it
// is concatenated, without separator, onto the current entry — that is how
// wrapped descriptions come back together. A section whose first content
// line lacks the delimiter is rejected as malformed.
func parseArgEntries(section string) ([]string, error) {
	lines := strings.Split(normalizeSection(section), "\n")
	if len(lines) < 2 {
		return nil, errMalformedArgs
	}

	var entries []string
	i := 1 // line 0 is the heading
	for i < len(lines) {
		cur := lines[i]
		if !strings.Contains(cur, "):") {
			return nil, errMalformedArgs
		}
		j := i + 1
		for j < len(lines) && !strings.Contains(lines[j], "):") {
			cur += lines[j]
			j++
		}
		entries = append(entries, cur)
		i = j
	}
	return entries, nil
}

// parseArgEntry splits one logical entry into its documented parameter. The
// second return value is false when the entry has no `(type)` header at all.
func parseArgEntry(entry string) (DocumentedParameter, bool) {
	open := strings.SplitN(entry, " (", 2)
	if len(open) < 2 {
		return DocumentedParameter{}, false
	}

	doc := DocumentedParameter{Name: strings.TrimSpace(open[0])}

	mid := strings.SplitN(open[1], "):", 2)
	doc.Type = strings.ReplaceAll(mid[0], " ", "")
	doc.Optional = strings.HasSuffix(doc.Type, ",optional")
	if len(mid) > 1 {
		doc.Description = mid[1]
	}
	doc.Clauses = strings.Split(doc.Description, ";")
	return doc, true
}

// parseReturnsSection extracts the documented return type. The section needs
// at least a heading line and one content line, and the content line must
// carry a `:` separating type from description.
func parseReturnsSection(section string) (DocumentedReturn, error) {
	lines := strings.Split(normalizeSection(section), "\n")
	if len(lines) < 2 {
		return DocumentedReturn{}, errReturnsMissing
	}

	parts := strings.SplitN(lines[1], ":", 2)
	if len(parts) < 2 {
		return DocumentedReturn{}, errReturnsNoType
	}
	typ := strings.ReplaceAll(strings.TrimSpace(parts[0]), " ", "")
	return DocumentedReturn{Type: typ}, nil
}
