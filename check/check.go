// Package check describes the leaf checks a confmap template is made of.
//
// A Check is one node of a tagged union with six variants: an instance-of
// test (Type), a bare predicate (Func), a predicate with extra arguments
// (Call), an ordered any-of combinator (AnyOf), an all-of combinator
// (AllOf) and a literal equality test (Eq). Combinators nest freely.
//
// Checks are built once, through the constructors below, and evaluated
// many times with Eval. The union is sealed: nothing outside this package
// can implement Check.
package check

import "reflect"

// Check is one node of a template's check tree.
type Check interface {
	eval(value any) bool
}

// Eval reports whether value satisfies c.
//
// Panics raised by user-supplied predicates are not recovered here: a
// broken predicate is a programming error, not a data error, and must
// surface at the call site instead of being absorbed into a verdict.
func Eval(value any, c Check) bool {
	return c.eval(value)
}

// From returns v unchanged when it is already a Check and wraps anything
// else into an equality check. Template leaves go through From, so plain
// values double as literal checks.
func From(v any) Check {
	if c, ok := v.(Check); ok {
		return c
	}

	return Eq(v)
}

type typeCheck struct {
	t reflect.Type
}

// Type builds an instance-of check: a value passes when its dynamic type
// is assignable to T, or implements T when T is an interface. A nil value
// never passes.
func Type[T any]() Check {
	return typeCheck{t: reflect.TypeOf((*T)(nil)).Elem()}
}

func (c typeCheck) eval(value any) bool {
	vt := reflect.TypeOf(value)
	if vt == nil {
		return false
	}

	if c.t.Kind() == reflect.Interface {
		return vt.Implements(c.t)
	}

	return vt.AssignableTo(c.t)
}

type funcCheck func(any) bool

// Func wraps a unary predicate into a check.
func Func(fn func(any) bool) Check {
	return funcCheck(fn)
}

func (c funcCheck) eval(value any) bool {
	return c(value)
}

// Args holds the positional arguments of a Call check.
type Args []any

// Kwargs holds the keyword arguments of a Call check.
type Kwargs map[string]any

// CallFunc is invoked with the checked value followed by the configured
// positional and keyword arguments.
type CallFunc func(value any, args Args, kwargs Kwargs) bool

type callCheck struct {
	fn     CallFunc
	args   Args
	kwargs Kwargs
}

// Call builds a check around fn and the arguments it will receive after
// the value. rest may carry an Args, a Kwargs, or both; a bare keyword
// map in the first slot is accepted and lands in the kwargs slot, so the
// positional arguments can be omitted entirely.
//
// A Call with a nil fn never passes.
func Call(fn CallFunc, rest ...any) Check {
	c := callCheck{fn: fn}

	for _, r := range rest {
		switch a := r.(type) {
		case Args:
			c.args = a
		case []any:
			c.args = a
		case Kwargs:
			c.kwargs = a
		case map[string]any:
			c.kwargs = Kwargs(a)
		}
	}

	return c
}

func (c callCheck) eval(value any) bool {
	if c.fn == nil {
		return false
	}

	return c.fn(value, c.args, c.kwargs)
}

type anyOf []Check

// AnyOf passes when at least one member passes. Members are tried in
// order and evaluation stops at the first success. An empty AnyOf never
// passes. Loose values are wrapped through From.
func AnyOf(vs ...any) Check {
	cs := make(anyOf, len(vs))
	for i, v := range vs {
		cs[i] = From(v)
	}
	return cs
}

func (c anyOf) eval(value any) bool {
	for _, sub := range c {
		if sub.eval(value) {
			return true
		}
	}
	return false
}

type allOf []Check

// AllOf passes only when every member passes, stopping at the first
// failure. An empty AllOf passes vacuously. The early exit lets later
// members assume what earlier ones established, e.g. a type check before
// a predicate that relies on that type. Loose values are wrapped through
// From; duplicate members are pointless, not harmful.
func AllOf(vs ...any) Check {
	cs := make(allOf, len(vs))
	for i, v := range vs {
		cs[i] = From(v)
	}
	return cs
}

func (c allOf) eval(value any) bool {
	for _, sub := range c {
		if !sub.eval(value) {
			return false
		}
	}
	return true
}

type eqCheck struct {
	want any
}

// Eq builds a literal check comparing by value, via reflect.DeepEqual.
func Eq(v any) Check {
	return eqCheck{want: v}
}

func (c eqCheck) eval(value any) bool {
	return reflect.DeepEqual(value, c.want)
}
