package quickview

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ruleFile is the YAML layout of a bundle rules file:
//
//	rules:
//	  - name: black-medium
//	    when: {color: Black, size: Medium}
//	    handle: soft-winter-jacket
//	  - name: gift-wrap
//	    expr: '"Gift" in values'
//	    handle: gift-wrap
//	    quantity: 2
type ruleFile struct {
	Rules []struct {
		Name     string            `yaml:"name"`
		When     map[string]string `yaml:"when"`
		Expr     string            `yaml:"expr"`
		Handle   string            `yaml:"handle"`
		Quantity int               `yaml:"quantity"`
	} `yaml:"rules"`
}

// ParseBundleRules reads rules in the YAML layout above. Each rule needs a
// handle and exactly one of when or expr; when keys are option roles.
func ParseBundleRules(r io.Reader) (BundleRules, error) {
	var f ruleFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode bundle rules: %w", err)
	}
	rules := make(BundleRules, 0, len(f.Rules))
	for i, raw := range f.Rules {
		name := raw.Name
		if name == "" {
			name = fmt.Sprintf("rule-%d", i+1)
		}
		if raw.Handle == "" {
			return nil, fmt.Errorf("bundle rule %s: handle is required", name)
		}
		rule := BundleRule{Name: name, Handle: raw.Handle, Quantity: raw.Quantity}
		switch {
		case len(raw.When) > 0 && raw.Expr != "":
			return nil, fmt.Errorf("bundle rule %s: use either when or expr", name)
		case len(raw.When) > 0:
			when := make(RoleValues, len(raw.When))
			for key, value := range raw.When {
				role := ClassifyOption(key)
				if role == RoleOther && !strings.EqualFold(strings.TrimSpace(key), "other") {
					return nil, fmt.Errorf("bundle rule %s: unknown role %q", name, key)
				}
				when[role] = value
			}
			rule.When = when
		case raw.Expr != "":
			pred, err := CompileExprPredicate(raw.Expr)
			if err != nil {
				return nil, fmt.Errorf("bundle rule %s: %w", name, err)
			}
			rule.When = pred
		default:
			return nil, fmt.Errorf("bundle rule %s: when or expr is required", name)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// LoadBundleRules reads a rules file from disk.
func LoadBundleRules(path string) (BundleRules, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseBundleRules(f)
}
