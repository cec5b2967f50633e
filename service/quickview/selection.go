package quickview

import (
	"fmt"
	"slices"
)

// SelectionState is the shape of a Selection.
type SelectionState int

const (
	StateEmpty SelectionState = iota
	StatePartial
	StateComplete
	StateResolved
	StateUnresolved
)

func (s SelectionState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePartial:
		return "partial"
	case StateComplete:
		return "complete"
	case StateResolved:
		return "resolved"
	case StateUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// MarshalText encodes the state as its lowercase name.
func (s SelectionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Selection holds the shopper's in-progress choices for one product. It is
// owned by a single popup session and is not safe for concurrent use.
type Selection struct {
	product    Product
	roles      []OptionRole
	values     map[int]string
	resolved   *Variant
	unresolved bool
}

// NewSelection starts a selection for product, seeded with the controls'
// defaults.
func NewSelection(product Product, controls []OptionControl) *Selection {
	s := &Selection{
		product: product,
		roles:   make([]OptionRole, len(product.Options)),
		values:  make(map[int]string, len(product.Options)),
	}
	for i, opt := range product.Options {
		s.roles[i] = ClassifyOption(opt.Name)
	}
	for _, c := range controls {
		if c.Default != "" && c.Position >= 0 && c.Position < len(product.Options) {
			s.values[c.Position] = c.Default
		}
	}
	return s
}

// Product returns the product this selection belongs to.
func (s *Selection) Product() Product {
	return s.product
}

func (s *Selection) State() SelectionState {
	switch {
	case s.resolved != nil:
		return StateResolved
	case s.unresolved:
		return StateUnresolved
	case len(s.values) == len(s.product.Options):
		return StateComplete
	case len(s.values) == 0:
		return StateEmpty
	default:
		return StatePartial
	}
}

// Set records value for the option at position. Last write wins.
func (s *Selection) Set(position int, value string) error {
	if s.resolved != nil {
		return ErrAlreadyResolved
	}
	if position < 0 || position >= len(s.product.Options) {
		return fmt.Errorf("%w: %d", ErrUnknownPosition, position)
	}
	opt := s.product.Options[position]
	if !slices.Contains(opt.Values, value) {
		return fmt.Errorf("%w: %q for %s", ErrInvalidValue, value, opt.Name)
	}
	s.values[position] = value
	s.unresolved = false
	return nil
}

// Missing lists the positions that have no value yet, in position order.
func (s *Selection) Missing() []MissingOption {
	var missing []MissingOption
	for i, opt := range s.product.Options {
		if _, ok := s.values[i]; !ok {
			missing = append(missing, MissingOption{Position: i, Name: opt.Name, Role: s.roles[i]})
		}
	}
	return missing
}

// Resolve maps the complete selection to the variant whose options equal the
// chosen values in position order. Comparison is exact.
func (s *Selection) Resolve() (Variant, error) {
	if s.resolved != nil {
		return *s.resolved, nil
	}
	if missing := s.Missing(); len(missing) > 0 {
		return Variant{}, &IncompleteSelectionError{Missing: missing}
	}
	chosen := s.Chosen().Values
	for _, v := range s.product.Variants {
		if slices.Equal(v.Options, chosen) {
			s.resolved = &v
			return v, nil
		}
	}
	s.unresolved = true
	return Variant{}, fmt.Errorf("%w: %v", ErrVariantNotFound, chosen)
}

// Chosen snapshots the current values by position. Unset positions hold "".
func (s *Selection) Chosen() ResolvedSelection {
	n := len(s.product.Options)
	rs := ResolvedSelection{
		Names:  make([]string, n),
		Roles:  make([]OptionRole, n),
		Values: make([]string, n),
	}
	for i, opt := range s.product.Options {
		rs.Names[i] = opt.Name
		rs.Roles[i] = s.roles[i]
		rs.Values[i] = s.values[i]
	}
	return rs
}

// ResolvedSelection is a read-only view of chosen values used by bundle rules.
type ResolvedSelection struct {
	Names  []string
	Roles  []OptionRole
	Values []string
}

// ValueFor returns the value chosen for the first option with role.
func (r ResolvedSelection) ValueFor(role OptionRole) (string, bool) {
	for i, rl := range r.Roles {
		if rl == role && r.Values[i] != "" {
			return r.Values[i], true
		}
	}
	return "", false
}

// ByName returns chosen values keyed by option name.
func (r ResolvedSelection) ByName() map[string]string {
	m := make(map[string]string, len(r.Names))
	for i, name := range r.Names {
		m[name] = r.Values[i]
	}
	return m
}
