package hello_world

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
)

type StringMap map[string]string

var templateFunctions = template.FuncMap{
	"trim":  func(input string) string { return strings.Trim(input, " \r\n\t") },
	"upper": func(input string) string { return strings.ToUpper(input) },
	"lower": func(input string) string { return strings.ToLower(input) },
}

// ExpandVariables takes a string with template variables like {{.var}} and expands them
// with the given map. Invalid templates are logged and returned unexpanded.
func ExpandVariables(str string, variables StringMap) (expanded string) {
	if !strings.Contains(str, "{{") {
		return str
	}
	templ, err := template.New("").Funcs(templateFunctions).Option("missingkey=zero").Parse(str)
	if err != nil {
		logrus.Warnf("Invalid string template: '%s'", err)
		return str
	}
	var buf bytes.Buffer
	err = templ.Execute(&buf, map[string]string(variables))
	if err != nil {
		logrus.Warnf("Error executing template: '%s'", err)
		return str
	}
	return buf.String()
}

// MergeVariables combines several variable maps into a single one. Duplicate keys will
// be overridden by the value in the last map which has the key.
func MergeVariables(varMaps ...StringMap) StringMap {
	merged := make(StringMap)
	for _, vars := range varMaps {
		for k, v := range vars {
			merged[k] = v
		}
	}
	return merged
}
