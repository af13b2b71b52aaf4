package jsonx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
)

// camelCaseExtension renames snake_case and PascalCase fields to lowerCamelCase on output.
// Both names are accepted on input.
type camelCaseExtension struct {
	jsoniter.DummyExtension
}

func (e *camelCaseExtension) UpdateStructDescriptor(desc *jsoniter.StructDescriptor) {
	for _, binding := range desc.Fields {
		name, _ := parseTag(binding.Field.Tag().Get("json"))
		if name == "-" {
			continue
		}
		if name == "" {
			name = binding.Field.Name()
		}
		if !strings.Contains(name, "_") && !startsUpper(name) {
			continue
		}
		camel := toLowerFirstCamel(name)
		binding.ToNames = []string{camel}
		binding.FromNames = []string{camel, name}
	}
}

func toLowerFirstCamel(s string) string {
	var sb strings.Builder
	for _, p := range strings.Split(s, "_") {
		if p == "" {
			continue
		}
		if sb.Len() == 0 {
			sb.WriteString(strings.ToLower(p[:1]))
		} else {
			sb.WriteString(strings.ToUpper(p[:1]))
		}
		sb.WriteString(p[1:])
	}
	return sb.String()
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

type tagOptions []string

func (o tagOptions) has(opt string) bool {
	for _, s := range o {
		if s == opt {
			return true
		}
	}
	return false
}

// parseTag splits a json struct tag into its name and options.
func parseTag(tag string) (string, tagOptions) {
	parts := strings.Split(tag, ",")
	return parts[0], tagOptions(parts[1:])
}
