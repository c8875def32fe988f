package check_test

import (
	"testing"

	"github.com/sxwebdev/confmap/check"
)

func TestType(t *testing.T) {
	c := check.Type[int]()

	if !check.Eval(65, c) {
		t.Error("65 should be an int")
	}
	if check.Eval("65", c) {
		t.Error("a string is not an int")
	}
	if check.Eval(nil, c) {
		t.Error("nil is not an int")
	}
}

func TestTypeInterface(t *testing.T) {
	c := check.Type[error]()

	if !check.Eval(check.Eval, check.Type[any]()) {
		t.Error("everything satisfies any")
	}
	if check.Eval("boom", c) {
		t.Error("a string does not implement error")
	}
}

func TestFunc(t *testing.T) {
	inRange := check.Func(func(v any) bool {
		n, ok := v.(int)
		return ok && 65 <= n && n <= 90
	})

	if !check.Eval(89, inRange) {
		t.Error("89 is in range")
	}
	if check.Eval(660, inRange) {
		t.Error("660 is out of range")
	}
	if check.Eval("A", inRange) {
		t.Error("a non-int never passes")
	}
}

func TestCall(t *testing.T) {
	seen := struct {
		args   check.Args
		kwargs check.Kwargs
	}{}

	fn := func(value any, args check.Args, kwargs check.Kwargs) bool {
		seen.args = args
		seen.kwargs = kwargs
		return true
	}

	c := check.Call(fn, check.Args{0, 1}, check.Kwargs{"a": "b"})
	if !check.Eval("x", c) {
		t.Fatal("check should pass")
	}

	if len(seen.args) != 2 || seen.args[0] != 0 || seen.args[1] != 1 {
		t.Errorf("positional args not forwarded: %v", seen.args)
	}
	if seen.kwargs["a"] != "b" {
		t.Errorf("keyword args not forwarded: %v", seen.kwargs)
	}
}

func TestCallBareKwargs(t *testing.T) {
	var got check.Kwargs

	fn := func(value any, args check.Args, kwargs check.Kwargs) bool {
		if len(args) != 0 {
			t.Errorf("expected no positional args, got %v", args)
		}
		got = kwargs
		return true
	}

	// The positional slot is omitted; the bare map lands in kwargs.
	c := check.Call(fn, check.Kwargs{"a": "b"})
	if !check.Eval("x", c) {
		t.Fatal("check should pass")
	}
	if got["a"] != "b" {
		t.Errorf("bare map should be reinterpreted as kwargs, got %v", got)
	}
}

func TestCallNilFunc(t *testing.T) {
	if check.Eval("x", check.Call(nil)) {
		t.Error("a Call without a callable never passes")
	}
}

func TestAnyOf(t *testing.T) {
	isBool := check.Type[bool]()
	inRange := check.Func(func(v any) bool {
		n, ok := v.(int)
		return ok && 65 <= n && n <= 90
	})

	// 89 is not a bool, but it is in range: one success is enough.
	if !check.Eval(89, check.AnyOf(isBool, inRange)) {
		t.Error("AnyOf should pass on a single success")
	}
	if check.Eval(660, check.AnyOf(isBool, inRange)) {
		t.Error("AnyOf should fail when every member fails")
	}
	if check.Eval(89, check.AnyOf()) {
		t.Error("an empty AnyOf never passes")
	}
}

func TestAnyOfShortCircuits(t *testing.T) {
	calls := 0
	counting := check.Func(func(any) bool {
		calls++
		return false
	})

	check.Eval(1, check.AnyOf(check.Eq(1), counting))

	if calls != 0 {
		t.Errorf("later members must not run after a success, got %d calls", calls)
	}
}

func TestAllOf(t *testing.T) {
	isString := check.Type[string]()
	hasPrefix := check.Func(func(v any) bool {
		// Safe: AllOf stops before this when the type check fails.
		s := v.(string)
		return len(s) >= 3 && s[:3] == "abc"
	})

	if !check.Eval("abcdef", check.AllOf(isString, hasPrefix)) {
		t.Error("AllOf should pass when every member passes")
	}
	if check.Eval("alpha", check.AllOf(isString, hasPrefix)) {
		t.Error("AllOf should fail on any failure")
	}
	if check.Eval(42, check.AllOf(isString, hasPrefix)) {
		t.Error("the type check must guard the predicate")
	}
	if !check.Eval(42, check.AllOf()) {
		t.Error("an empty AllOf passes vacuously")
	}
}

func TestEq(t *testing.T) {
	if !check.Eval(97, check.Eq(97)) {
		t.Error("equal values should pass")
	}
	if check.Eval(97, check.Eq("97")) {
		t.Error("no coercion across types")
	}
	if !check.Eval([]int{1, 2}, check.Eq([]int{1, 2})) {
		t.Error("comparison is by value, not identity")
	}
}

func TestFrom(t *testing.T) {
	c := check.Eq(1)
	if check.From(c) != c {
		t.Error("From must pass a Check through unchanged")
	}

	if !check.Eval("alpha", check.From("alpha")) {
		t.Error("From should wrap plain values into equality checks")
	}
}

func TestNestedCombinators(t *testing.T) {
	c := check.AnyOf(
		check.AllOf(check.Type[int](), check.Func(func(v any) bool { return v.(int) > 0 })),
		check.Eq("none"),
	)

	if !check.Eval(5, c) {
		t.Error("positive int should pass via the AllOf branch")
	}
	if !check.Eval("none", c) {
		t.Error("literal should pass via the Eq branch")
	}
	if check.Eval(-5, c) {
		t.Error("negative int matches no branch")
	}
}
