package quickview

import "strings"

// OptionRole is the semantic role of an option, derived from its name.
type OptionRole int

const (
	RoleOther OptionRole = iota
	RoleColor
	RoleSize
)

func (r OptionRole) String() string {
	switch r {
	case RoleColor:
		return "color"
	case RoleSize:
		return "size"
	default:
		return "other"
	}
}

// MarshalText encodes the role as its lowercase name.
func (r OptionRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// ClassifyOption maps an option name to its role. Matching is
// case-insensitive and exact: "color"/"colour" and "size".
func ClassifyOption(name string) OptionRole {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "color", "colour":
		return RoleColor
	case "size":
		return RoleSize
	default:
		return RoleOther
	}
}

// OptionValue is a selectable value. Swatch is only set for color options.
type OptionValue struct {
	Value  string `json:"value"`
	Swatch string `json:"swatch,omitempty"`
}

// OptionControl is everything the presentation layer needs to draw one
// option. Default is pre-selected when the popup opens; empty means unselected.
type OptionControl struct {
	Position int           `json:"position"`
	Name     string        `json:"name"`
	Role     OptionRole    `json:"role"`
	Values   []OptionValue `json:"values"`
	Default  string        `json:"default,omitempty"`
	Rendered bool          `json:"rendered"`
}

// Normalize classifies options in their original order.
//
// Color starts on its first value. Size never has a default: the shopper
// must pick one. Other options are not rendered and start on their first
// value so that products with a third dimension stay resolvable.
func Normalize(options []ProductOption) []OptionControl {
	controls := make([]OptionControl, 0, len(options))
	for _, opt := range options {
		role := ClassifyOption(opt.Name)
		c := OptionControl{
			Position: opt.Position,
			Name:     opt.Name,
			Role:     role,
			Values:   make([]OptionValue, len(opt.Values)),
			Rendered: role != RoleOther,
		}
		for i, v := range opt.Values {
			c.Values[i] = OptionValue{Value: v}
			if role == RoleColor {
				c.Values[i].Swatch = strings.ToLower(v)
			}
		}
		if role != RoleSize && len(opt.Values) > 0 {
			c.Default = opt.Values[0]
		}
		controls = append(controls, c)
	}
	return controls
}
