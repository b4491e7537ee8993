package check

import (
	"regexp"
	"strings"
	"unicode"
)

// nameMangle is the double-underscore sequence Python uses for name mangling.
// Outside the special-method table its presence in an identifier is a finding.
const nameMangle = "__"

// specialMethods are the dunder names that legitimately carry double
// underscores.
var specialMethods = map[string]struct{}{
	"__init__": {}, "__del__": {}, "__repr__": {}, "__str__": {}, "__bytes__": {},
	"__format__": {}, "__lt__": {}, "__le__": {}, "__eq__": {}, "__ne__": {},
	"__gt__": {}, "__ge__": {}, "__hash__": {}, "__bool__": {}, "__call__": {},
	"__len__": {}, "__getitem__": {}, "__setitem__": {}, "__delitem__": {},
	"__iter__": {}, "__next__": {}, "__reversed__": {}, "__contains__": {},
	"__add__": {}, "__sub__": {}, "__mul__": {}, "__matmul__": {},
	"__truediv__": {}, "__floordiv__": {}, "__mod__": {}, "__divmod__": {},
	"__pow__": {}, "__lshift__": {}, "__rshift__": {}, "__and__": {},
	"__xor__": {}, "__or__": {}, "__iadd__": {}, "__isub__": {}, "__imul__": {},
	"__imatmul__": {}, "__itruediv__": {}, "__ifloordiv__": {}, "__imod__": {},
	"__ipow__": {}, "__ilshift__": {}, "__irshift__": {}, "__iand__": {},
	"__ixor__": {}, "__ior__": {}, "__neg__": {}, "__pos__": {}, "__abs__": {},
	"__invert__": {}, "__complex__": {}, "__int__": {}, "__float__": {},
	"__round__": {}, "__index__": {}, "__enter__": {}, "__exit__": {},
	"__await__": {}, "__aiter__": {}, "__anext__": {}, "__aenter__": {},
	"__aexit__": {}, "__version__": {}, "__new__": {},
}

// specialVariables are parameter names exempt from annotation and
// documentation requirements.
var specialVariables = map[string]struct{}{
	"self": {},
	"cls":  {},
}

func isSpecialMethod(name string) bool {
	_, ok := specialMethods[name]
	return ok
}

func isSpecialVariable(name string) bool {
	_, ok := specialVariables[name]
	return ok
}

var pascalCaseRe = regexp.MustCompile(`^[A-Z][A-Za-z0-9]+(?:[A-Z][a-z0-9]*)*$`)

// isPascalCase reports whether a name is in PascalCase.
func isPascalCase(name string) bool {
	return pascalCaseRe.MatchString(name)
}

// isSnakeCase reports whether a name is in snake_case. Underscore-separated
// parts must each be lowercase; a bare name must be lowercase and
// alphanumeric. Double underscores never qualify.
func isSnakeCase(name string) bool {
	if strings.Contains(name, "_") {
		if strings.Contains(name, nameMangle) {
			return false
		}
		for _, part := range strings.Split(name, "_") {
			if part != "" && !isLowerWord(part) {
				return false
			}
		}
		return true
	}
	return isLowerWord(name) && isAlnum(name)
}

// isLowerWord mirrors Python's str.islower: the string must contain at least
// one cased character and no uppercase ones.
func isLowerWord(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
		if unicode.IsLower(r) {
			cased = true
		}
	}
	return cased
}

// isUpperName mirrors Python's str.isupper, used to exempt ALL_CAPS
// constants from case findings.
func isUpperName(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
