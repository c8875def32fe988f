package confmap

import (
	"fmt"
	"sort"

	"github.com/sxwebdev/confmap/check"
)

// Template describes the expected structure of a Config. Each entry maps
// a field name to either a nested Template (validated against a nested
// Config) or a leaf check: a check.Check, or any plain value compared
// literally.
type Template map[string]any

// Report carries the context of a single validation failure.
type Report struct {
	// Path of the enclosing Config, relative to where Validate was
	// called; empty at the root.
	Path string

	// Name of the failing field as spelled in the template.
	Name string

	// Value that failed the check; nil when the field was missing.
	Value any

	// Missing is true when the field was absent (or a nested template
	// found no nested Config), false when a check failed.
	Missing bool
}

// Reporter receives one formatted message per validation failure.
// Substituting it is the designed extension point of Validate: collect
// into a slice, log, or raise as the host sees fit. See the reporters
// package for ready-made hooks.
type Reporter func(message string, report Report)

func defaultReporter(message string, _ Report) {
	fmt.Println(message)
}

// Validate reports whether the Config follows the template. Every field
// of the template at every depth is visited regardless of earlier
// failures; each missing field or failed check produces exactly one
// reporter call, and the result is true only when nothing was reported.
//
// Fields at each level are visited in sorted name order, so the report
// sequence is deterministic.
//
// Validation failures are outcomes, not errors. Panics raised by checks
// themselves are not recovered and reach the caller.
func (c *Config) Validate(tmpl Template, opts ...ValidateOption) bool {
	o := validateOptions{reporter: defaultReporter}
	for _, opt := range opts {
		opt(&o)
	}

	return c.validate(tmpl, prepare(o.messages, generalErrors), "", o.reporter)
}

func (c *Config) validate(tmpl Template, msgs *msgNode, path string, report Reporter) bool {
	res := true

	names := make([]string, 0, len(tmpl))
	for name := range tmpl {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, err := c.Get(name)
		if err != nil {
			res = false
			report(msgs.resolve(name, situationMissing, path), Report{
				Path:    path,
				Name:    name,
				Missing: true,
			})
			continue
		}

		if childTmpl, ok := asTemplate(tmpl[name]); ok {
			sub, ok := value.(*Config)
			if !ok {
				// A scalar where a subtree is required reads as a
				// missing subtree, not an invalid value.
				res = false
				report(msgs.resolve(name, situationMissing, path), Report{
					Path:    path,
					Name:    name,
					Missing: true,
				})
				continue
			}

			if !sub.validate(childTmpl, msgs.child(name), joinPath(path, name), report) {
				res = false
			}
			continue
		}

		if !check.Eval(value, check.From(tmpl[name])) {
			res = false
			report(msgs.resolve(name, situationInvalid, path), Report{
				Path:  path,
				Name:  name,
				Value: value,
			})
		}
	}

	return res
}

func asTemplate(v any) (Template, bool) {
	switch t := v.(type) {
	case Template:
		return t, true
	case map[string]any:
		return t, true
	}
	return nil, false
}

func joinPath(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
