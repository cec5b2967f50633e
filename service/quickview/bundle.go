package quickview

import "fmt"

// DefaultBundleHandle is the product added alongside a Black/Medium choice.
const DefaultBundleHandle = "soft-winter-jacket"

// BundlePredicate decides whether a rule fires for the chosen values.
type BundlePredicate interface {
	Matches(sel ResolvedSelection) (bool, error)
}

// PredicateFunc adapts a plain function to BundlePredicate.
type PredicateFunc func(sel ResolvedSelection) bool

func (f PredicateFunc) Matches(sel ResolvedSelection) (bool, error) {
	return f(sel), nil
}

// RoleValues fires when every listed role was chosen with exactly the given
// value. An empty RoleValues never fires.
type RoleValues map[OptionRole]string

func (p RoleValues) Matches(sel ResolvedSelection) (bool, error) {
	if len(p) == 0 {
		return false, nil
	}
	for role, want := range p {
		got, ok := sel.ValueFor(role)
		if !ok || got != want {
			return false, nil
		}
	}
	return true, nil
}

// BundleRule adds the first variant of Handle when When matches.
type BundleRule struct {
	Name     string
	When     BundlePredicate
	Handle   string
	Quantity int
}

// BundleRules are evaluated in order after a successful resolve.
type BundleRules []BundleRule

// Evaluate returns the rules that fire for sel, in configuration order.
func (rules BundleRules) Evaluate(sel ResolvedSelection) ([]BundleRule, error) {
	var fired []BundleRule
	for _, r := range rules {
		if r.When == nil {
			continue
		}
		ok, err := r.When.Matches(sel)
		if err != nil {
			return nil, fmt.Errorf("bundle rule %s: %w", r.Name, err)
		}
		if ok {
			fired = append(fired, r)
		}
	}
	return fired, nil
}

// DefaultBundleRules is the storefront's configured rule: a Black, Medium
// choice also adds one unit of the bundle product.
func DefaultBundleRules(handle string) BundleRules {
	if handle == "" {
		handle = DefaultBundleHandle
	}
	return BundleRules{{
		Name:     "black-medium",
		When:     RoleValues{RoleColor: "Black", RoleSize: "Medium"},
		Handle:   handle,
		Quantity: 1,
	}}
}
