package quickview

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprEnv is the environment bundle expressions run against, e.g.
//
//	color == "Black" && size == "Medium"
//	"Gift" in values
//	options["Material"] == "Wool"
type exprEnv struct {
	Color   string            `expr:"color"`
	Size    string            `expr:"size"`
	Values  []string          `expr:"values"`
	Options map[string]string `expr:"options"`
}

// ExprPredicate is a BundlePredicate compiled from an expr-lang expression.
type ExprPredicate struct {
	expression string
	program    *vm.Program
}

// CompileExprPredicate compiles expression; it must evaluate to a bool.
func CompileExprPredicate(expression string) (*ExprPredicate, error) {
	if expression == "" {
		return nil, fmt.Errorf("bundle expression must not be empty")
	}
	program, err := expr.Compile(expression, expr.Env(exprEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile bundle expression %q: %w", expression, err)
	}
	return &ExprPredicate{expression: expression, program: program}, nil
}

func (p *ExprPredicate) String() string { return p.expression }

func (p *ExprPredicate) Matches(sel ResolvedSelection) (bool, error) {
	env := exprEnv{Values: sel.Values, Options: sel.ByName()}
	env.Color, _ = sel.ValueFor(RoleColor)
	env.Size, _ = sel.ValueFor(RoleSize)
	out, err := expr.Run(p.program, env)
	if err != nil {
		return false, fmt.Errorf("run bundle expression %q: %w", p.expression, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}
