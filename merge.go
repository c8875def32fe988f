package confmap

import (
	"fmt"

	"github.com/sxwebdev/confmap/internal/utils"
)

// entry is one key/value pair drawn from a nested mapping input.
type entry struct {
	key   any
	value any
}

// entries flattens the supported mapping shapes into a single iteration
// form. nil is an empty mapping; anything else unsupported fails with
// ErrUnexpectedType.
func entries(values any) ([]entry, error) {
	switch m := values.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		es := make([]entry, 0, len(m))
		for k, v := range m {
			es = append(es, entry{key: k, value: v})
		}
		return es, nil
	case map[any]any:
		es := make([]entry, 0, len(m))
		for k, v := range m {
			es = append(es, entry{key: k, value: v})
		}
		return es, nil
	case *Config:
		es := make([]entry, 0, len(m.fields))
		for k, v := range m.fields {
			es = append(es, entry{key: k, value: v})
		}
		return es, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnexpectedType, values)
}

// isMapping reports whether v is one of the nested mapping shapes
// entries understands.
func isMapping(v any) bool {
	switch v.(type) {
	case map[string]any, map[any]any, *Config:
		return true
	}
	return false
}

// Update inserts values into the Config, replacing whatever is already
// stored. Keys are normalized; nested mappings become nested Configs,
// replacing any previous value wholesale. A key that is neither text nor
// an integer fails the whole call with ErrInvalidKeyType.
//
// Update returns the Config itself so merges can be chained.
func (c *Config) Update(values any) (*Config, error) {
	es, err := entries(values)
	if err != nil {
		return c, err
	}

	for _, e := range es {
		name, err := keyName(e.key)
		if err != nil {
			return c, err
		}
		name = utils.Identifier(name)

		if isMapping(e.value) {
			sub := newConfig()
			if _, err := sub.Update(e.value); err != nil {
				return c, err
			}
			c.fields[name] = sub
			continue
		}

		c.fields[name] = e.value
	}

	return c, nil
}

// SetDefaults is like Update but only fills fields that are absent.
// An existing scalar is never overwritten. An existing nested Config is
// descended into with the same mode, so gaps deep inside the tree are
// filled without replacing what is already there. Applying the same
// defaults twice is a no-op the second time.
func (c *Config) SetDefaults(defaults any) (*Config, error) {
	es, err := entries(defaults)
	if err != nil {
		return c, err
	}

	for _, e := range es {
		name, err := keyName(e.key)
		if err != nil {
			return c, err
		}
		name = utils.Identifier(name)

		if isMapping(e.value) {
			cur, ok := c.fields[name]
			if !ok {
				sub := newConfig()
				if _, err := sub.Update(e.value); err != nil {
					return c, err
				}
				c.fields[name] = sub
				continue
			}

			if sub, ok := cur.(*Config); ok {
				if _, err := sub.SetDefaults(e.value); err != nil {
					return c, err
				}
			}
			// A scalar shadowing a nested default stays untouched.
			continue
		}

		if _, ok := c.fields[name]; !ok {
			c.fields[name] = e.value
		}
	}

	return c, nil
}
