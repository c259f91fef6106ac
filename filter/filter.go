// Package filter compiles expr expressions into predicates over catalog
// movies, powering the --filter flag of the movies list command.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/adenw/flixctl/myflix"
)

// Filter is a compiled movie filter expression.
type Filter struct {
	program *vm.Program
	expr    string
}

// helperFunctions returns the static helpers available inside expressions.
func helperFunctions() map[string]any {
	return map[string]any{
		// String helpers, all case-insensitive
		"contains": func(str, substr string) bool {
			return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
		},
		"startsWith": func(str, prefix string) bool {
			return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
		},
		"endsWith": func(str, suffix string) bool {
			return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
		},
		"lower": strings.ToLower,
		"upper": strings.ToUpper,
	}
}

// Compile compiles a filter expression. Movie properties are bound at match
// time, so undefined variables are allowed here; the expression must still
// produce a boolean.
func Compile(expression string) (*Filter, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, fmt.Errorf("empty filter expression")
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile filter %q: %w", expression, err)
	}

	return &Filter{
		program: program,
		expr:    expression,
	}, nil
}

// String returns the original expression.
func (f *Filter) String() string {
	return f.expr
}

// Matches evaluates the filter against a movie. The favorite flag is supplied
// by the caller from the cached session so the filter itself stays free of
// session access.
func (f *Filter) Matches(movie myflix.Movie, favorite bool) (bool, error) {
	env := helperFunctions()

	env["title"] = movie.Title
	env["description"] = movie.Description
	env["genre"] = movie.Genre.Name
	env["director"] = movie.Director.Name
	env["actors"] = movie.Actors
	env["featured"] = movie.Featured
	env["favorite"] = favorite

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("failed to evaluate filter %q: %w", f.expr, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not return a boolean", f.expr)
	}

	return matched, nil
}
