package confmap

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"
)

// Flatten returns a flat view of the tree: dotted field paths mapped to
// their scalar values. Nested Configs contribute their fields, not
// themselves. Incidental state recorded by Set is not part of the view.
func (c *Config) Flatten() map[string]any {
	out := make(map[string]any)
	c.flatten("", out)
	return out
}

func (c *Config) flatten(prefix string, out map[string]any) {
	for name, value := range c.fields {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}

		if sub, ok := value.(*Config); ok {
			sub.flatten(key, out)
			continue
		}

		out[key] = value
	}
}

// Usage renders the current fields with their types and values as a
// plain text table, one row per scalar field in path order.
func (c *Config) Usage() (string, error) {
	flat := c.Flatten()

	names := make([]string, 0, len(flat))
	for name := range flat {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := []string{"field", "type", "value"}

	buf := bytes.NewBuffer(nil)
	w := tabwriter.NewWriter(buf, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "\nConfigured Fields:\n")
	fmt.Fprintln(w, strings.ToUpper(strings.Join(headers, "\t")))

	dashes := make([]string, len(headers))
	for i, h := range headers {
		n := len(h)
		if n < 5 {
			n = 5
		}
		dashes[i] = strings.Repeat("-", n)
	}
	fmt.Fprintln(w, strings.Join(dashes, "\t"))

	for _, name := range names {
		fmt.Fprintf(w, "%s\t%T\t%v\n", name, flat[name], flat[name])
	}

	if err := w.Flush(); err != nil {
		return "", err
	}

	return buf.String(), nil
}
