package check

import "github.com/go-playground/validator/v10"

var vd = validator.New()

// Tag builds a check from a go-playground/validator rule set, e.g.
// "gte=65,lte=90" or "required,email". The rules are evaluated against
// the value alone, like validator.Var. A malformed rule set panics at
// evaluation time, consistent with the policy on broken predicates.
func Tag(rules string) Check {
	return Func(func(value any) bool {
		return vd.Var(value, rules) == nil
	})
}
