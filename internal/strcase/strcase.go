// Package strcase converts identifiers between kebab-case and camelCase for
// the scanner's allow-kebab-for-camel case style. It is a thin wrapper over
// github.com/iancoleman/strcase that adds the one rule the scanner actually
// relies on: a name already in the target style round-trips unchanged.
package strcase

import "github.com/iancoleman/strcase"

// ToKebab converts a camelCase (or already-kebab) name to kebab-case.
// "colorOutput" -> "color-output"; "no-color-output" -> "no-color-output".
func ToKebab(name string) string {
	return strcase.ToKebab(name)
}

// ToCamel converts a kebab-case (or already-camel) name to camelCase.
// "color-output" -> "colorOutput"; "colorOutput" -> "colorOutput".
func ToCamel(name string) string {
	if name == "" {
		return name
	}
	return strcase.ToLowerCamel(name)
}

// NegatedForms returns the two spellings a negated boolean flag named name
// may take: the camelCase form ("noColorOutput") and the kebab-case form
// ("no-color-output"). Both are produced regardless of the input's own
// casing so callers can check either against an incoming token.
func NegatedForms(name string) (camel, kebab string) {
	kebabBase := ToKebab(name)
	camelBase := ToCamel(name)
	return "no" + upperFirst(camelBase), "no-" + kebabBase
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	b := []byte(s)
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
