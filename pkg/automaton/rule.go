package automaton

import "fmt"

// Rule decides the next state of the cell at (x, y, z) from its
// neighborhood. It returns NoChange to leave the cell as it is.
type Rule interface {
	Status(n Neighborhood, x, y, z int) State
}

// RuleFunc adapts a plain function to the Rule interface.
type RuleFunc func(n Neighborhood, x, y, z int) State

// Status calls f.
func (f RuleFunc) Status(n Neighborhood, x, y, z int) State { return f(n, x, y, z) }

// composite is implemented by rules that delegate to other rules.
type composite interface {
	Children() []Rule
}

// validator is implemented by rules whose own fields can be malformed.
type validator interface {
	Validate() error
}

// Check validates a whole rule tree and reports the first malformed rule.
// Trees assembled from struct literals should be checked before use; the
// New* constructors already check the rule they build.
func Check(r Rule) error {
	if r == nil {
		return fmt.Errorf("%w: nil rule", ErrMalformedRule)
	}
	if v, ok := r.(validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	if c, ok := r.(composite); ok {
		for i, child := range c.Children() {
			if err := Check(child); err != nil {
				return fmt.Errorf("%T child %d: %w", r, i, err)
			}
		}
	}
	return nil
}

// mustRule panics when r is malformed. Children are assumed to have been
// checked by their own constructors.
func mustRule[R Rule](r R) R {
	if v, ok := any(r).(validator); ok {
		if err := v.Validate(); err != nil {
			panic(err)
		}
	}
	return r
}

func malformed(rule, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrMalformedRule, rule, fmt.Sprintf(format, args...))
}

func requireChildren(rule string, rules []Rule) error {
	if len(rules) == 0 {
		return malformed(rule, "needs at least one child rule")
	}
	for i, r := range rules {
		if r == nil {
			return malformed(rule, "child %d is nil", i)
		}
	}
	return nil
}

func requireChild(rule string, r Rule) error {
	if r == nil {
		return malformed(rule, "missing child rule")
	}
	return nil
}

func requireResult(rule string, v State) error {
	if v.OutOfBounds() {
		return malformed(rule, "result cannot be %s", v)
	}
	return nil
}
