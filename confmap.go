package confmap

import (
	"errors"
	"fmt"

	"github.com/sxwebdev/confmap/internal/utils"
)

var (
	// ErrInvalidKeyType is returned when a mapping key is neither text nor
	// an integer.
	ErrInvalidKeyType = errors.New("invalid key type, expecting a string or integer")

	// ErrKeyNotFound is returned by Get for keys that resolve to no field,
	// even after normalization.
	ErrKeyNotFound = errors.New("key not found")

	// ErrFieldNotFound is returned by Field for names that are neither
	// fields nor incidental state. It is distinct from ErrKeyNotFound so
	// callers can tell a structural miss from a plain lookup miss.
	ErrFieldNotFound = errors.New("field not found")

	// ErrUnexpectedType is returned when a nested mapping was expected.
	ErrUnexpectedType = errors.New("unexpected type, expecting a nested mapping")
)

// Config is a recursive key/value container. Keys are normalized to safe
// field names on every write, and lookups retry with the normalized form,
// so a raw key and its normalized name always observe the same value.
// Nested mappings are materialized as nested Configs; a Config exclusively
// owns its children, values always form a tree.
//
// A Config is not safe for concurrent use; callers embedding it in a
// concurrent host must serialize access themselves.
type Config struct {
	fields map[string]any

	// extra holds member-style assignments to names that were never
	// fields. They are readable through Field but invisible to Get.
	// See Set for the rationale.
	extra map[string]any
}

// New builds a Config from values, then fills the gaps from defaults.
// Both arguments accept a nested mapping (map[string]any, map[any]any or
// another Config) or nil.
func New(values, defaults any) (*Config, error) {
	c := newConfig()

	if _, err := c.Update(values); err != nil {
		return nil, err
	}

	if _, err := c.SetDefaults(defaults); err != nil {
		return nil, err
	}

	return c, nil
}

func newConfig() *Config {
	return &Config{fields: make(map[string]any)}
}

// Get returns the value stored for key. The raw key is tried first, then
// its normalized form, so Get(1337) and Get("_1337") resolve to the same
// field. Returns ErrKeyNotFound when both misses, ErrInvalidKeyType when
// key is neither text nor an integer.
func (c *Config) Get(key any) (any, error) {
	name, err := keyName(key)
	if err != nil {
		return nil, err
	}

	if v, ok := c.fields[name]; ok {
		return v, nil
	}

	if v, ok := c.fields[utils.Identifier(name)]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Field is the member-style read. It delegates to Get and falls back to
// incidental state recorded by Set. Returns ErrFieldNotFound when the
// name is completely unknown.
func (c *Config) Field(name string) (any, error) {
	if v, err := c.Get(name); err == nil {
		return v, nil
	}

	if v, ok := c.extra[name]; ok {
		return v, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrFieldNotFound, name)
}

// Set is the member-style write. Assigning to an existing field
// overwrites the stored value in place, keeping key-style and
// member-style access consistent. Assigning to a name that is not a
// field does NOT create one: the value becomes incidental state, visible
// to Field but never to Get. The asymmetry is deliberate and preserved
// from the observed behavior of the stores this package models; do not
// "fix" it by inserting unknown names into the mapping.
func (c *Config) Set(name string, value any) {
	if _, ok := c.fields[name]; ok {
		c.fields[name] = value
		return
	}

	if c.extra == nil {
		c.extra = make(map[string]any)
	}
	c.extra[name] = value
}

// Sub returns the nested Config stored for key. Returns ErrUnexpectedType
// when the field holds a scalar.
func (c *Config) Sub(key any) (*Config, error) {
	v, err := c.Get(key)
	if err != nil {
		return nil, err
	}

	sub, ok := v.(*Config)
	if !ok {
		return nil, fmt.Errorf("%w: field %v holds %T", ErrUnexpectedType, key, v)
	}

	return sub, nil
}

// Len returns the number of fields at this level.
func (c *Config) Len() int {
	return len(c.fields)
}

// keyName renders a text or integer key as text. Any other type fails
// with ErrInvalidKeyType; keys double as field names, so nothing else is
// allowed in a key position.
func keyName(key any) (string, error) {
	switch k := key.(type) {
	case string:
		return k, nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", k), nil
	}

	return "", fmt.Errorf("%w: %T", ErrInvalidKeyType, key)
}
