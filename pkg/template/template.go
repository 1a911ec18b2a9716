// Package template wraps a logic-less mustache engine behind a narrow
// compile/render interface. Templates cannot execute code or reach the
// filesystem or network; rendering is pure substitution over the
// request-derived data.
package template

import (
	"github.com/cbroglie/mustache"
)

type Template struct {
	source   string
	compiled *mustache.Template
}

// Compile parses source once. Rules call this at startup; a failure here
// is fatal to the process, never a per-request error. Variables are
// substituted raw: the output is JSON, not HTML, so entity escaping
// would corrupt payloads.
func Compile(source string) (*Template, error) {
	compiled, err := mustache.ParseStringRaw(source, true)
	if err != nil {
		return nil, err
	}
	return &Template{source: source, compiled: compiled}, nil
}

// Render substitutes data into the template. The output is an arbitrary
// string; callers own the check that it is well-formed JSON.
func (t *Template) Render(data map[string]interface{}) (string, error) {
	return t.compiled.Render(data)
}

func (t *Template) Source() string {
	return t.source
}

// TemplateData merges root-level object fields into the template
// namespace. Non-object values are wrapped as {"data": <value>} so every
// template can assume an object at the top level.
func TemplateData(value interface{}) map[string]interface{} {
	if m, ok := value.(map[string]interface{}); ok {
		return m
	}
	return map[string]interface{}{"data": value}
}
