package confmap

import "strings"

// Messages customizes the errors reported by Validate. Its shape mirrors
// the template: a field name maps to a nested Messages for a nested
// template, to a Descriptor overriding parts of the message for that
// field only, or to a bare string. A bare string on a leaf replaces the
// invalid body for that field; a bare string on a subtree becomes the
// subtree's blanket invalid message.
//
// The reserved "_" key holds the general Descriptor for the subtree. It
// is inherited by every descendant that does not redefine it, and never
// leaks upward or to siblings.
type Messages map[string]any

// Descriptor carries the pieces of an error message under the keys
// "prefix", "invalid", "missing" and "suffix". Absent keys inherit from
// the nearest enclosing general Descriptor. Prefix and suffix may
// reference {path} and {name}; the invalid and missing bodies are used
// verbatim.
type Descriptor map[string]string

const (
	situationInvalid = "invalid"
	situationMissing = "missing"

	partPrefix = "prefix"
	partSuffix = "suffix"
)

// generalErrors is the outermost fallback for every message part.
// Treated as read-only; scoped overrides are layered over copies of it.
var generalErrors = Descriptor{
	partPrefix:       "{path}.{name} ",
	situationInvalid: "is invalid",
	situationMissing: "is missing",
	partSuffix:       ".",
}

// msgNode is one scope of the prepared message tree: the effective
// general Descriptor for this subtree plus the raw per-field entries.
type msgNode struct {
	general Descriptor
	fields  Messages
}

// prepare layers the local "_" Descriptor of msgs over the inherited one
// and keeps the remaining entries for per-field resolution.
func prepare(msgs Messages, inherited Descriptor) *msgNode {
	general := make(Descriptor, len(inherited))
	for k, v := range inherited {
		general[k] = v
	}

	if msgs != nil {
		for k, v := range asDescriptor(msgs["_"]) {
			general[k] = v
		}
	}

	return &msgNode{general: general, fields: msgs}
}

// blanket turns a bare string into a subtree-wide invalid message.
func blanket(msg string) Messages {
	return Messages{"_": Descriptor{situationInvalid: msg}}
}

// child returns the message scope for a nested template field. The
// child's entry may be a nested Messages, a bare string (blanket invalid
// for the whole subtree) or absent; either way the parent's effective
// general Descriptor is what the child inherits.
func (n *msgNode) child(name string) *msgNode {
	switch m := n.fields[name].(type) {
	case Messages:
		return prepare(m, n.general)
	case map[string]any:
		return prepare(Messages(m), n.general)
	case string:
		return prepare(blanket(m), n.general)
	}

	return prepare(nil, n.general)
}

// resolve builds the full message for a field in the given situation
// ("invalid" or "missing"). The field's own entry may override any part;
// whatever it omits falls back to the scope's general Descriptor. Prefix
// and suffix have {path} and {name} expanded, the body stays verbatim.
func (n *msgNode) resolve(name, situation, path string) string {
	prefix := n.general[partPrefix]
	suffix := n.general[partSuffix]
	body := n.general[situation]

	if ov, ok := n.fields[name]; ok {
		if s, isStr := ov.(string); isStr {
			// A bare string only replaces the invalid body.
			if situation == situationInvalid {
				body = s
			}
		} else {
			d := asDescriptor(ov)
			if v, ok := d[partPrefix]; ok {
				prefix = v
			}
			if v, ok := d[situation]; ok {
				body = v
			}
			if v, ok := d[partSuffix]; ok {
				suffix = v
			}
		}
	}

	return expand(prefix, path, name) + body + expand(suffix, path, name)
}

// asDescriptor views the supported override shapes as a Descriptor. A
// nested Messages node doubles as the descriptor for its own field, so
// its string-valued entries are picked up too.
func asDescriptor(v any) Descriptor {
	switch d := v.(type) {
	case Descriptor:
		return d
	case map[string]string:
		return d
	case Messages:
		return descriptorFromAny(d)
	case map[string]any:
		return descriptorFromAny(d)
	}

	return nil
}

func descriptorFromAny(m map[string]any) Descriptor {
	d := make(Descriptor, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			d[k] = s
		}
	}
	return d
}

func expand(s, path, name string) string {
	s = strings.ReplaceAll(s, "{path}", path)
	return strings.ReplaceAll(s, "{name}", name)
}
