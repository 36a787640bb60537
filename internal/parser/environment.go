package parser

import (
	"fmt"

	"github.com/brooklang/brook/internal/ast"
)

// Environment is one scope in the chain built up while parsing. Bindings
// map names to the expressions committed for them; inner scopes see outer
// bindings through the enclosing pointer.
type Environment struct {
	enclosing *Environment
	ids       *idSource
	values    map[string]ast.Expr
}

// NewEnvironment creates a scope nested inside enclosing, or a root scope
// when enclosing is nil. Nested scopes mint node ids from the same source as
// their root.
func NewEnvironment(enclosing *Environment) *Environment {
	ids := new(idSource)
	if enclosing != nil {
		ids = enclosing.ids
	}
	return &Environment{enclosing, ids, make(map[string]ast.Expr)}
}

// Define binds name to value in this scope and returns the named-binding
// literal minted for it. Shadowing an outer binding is legal; a name already
// bound in this same scope is a redeclaration error.
func (env *Environment) Define(name string, value ast.Expr) (ast.Expr, error) {
	if _, ok := env.values[name]; ok {
		msg := fmt.Sprintf("Variable '%s' has already been declared in this scope.", name)
		return nil, NewError(Redeclared, nil, msg)
	}
	env.values[name] = value
	return ast.NewNamedLiteral(env.ids.next(), name, value), nil
}

// Assign replaces the nearest binding of name along the chain and returns
// the named-binding literal minted for the new value. Assigning an unbound
// name is an error.
func (env *Environment) Assign(name string, value ast.Expr) (ast.Expr, error) {
	if _, ok := env.values[name]; ok {
		env.values[name] = value
		return ast.NewNamedLiteral(env.ids.next(), name, value), nil
	}
	if env.enclosing != nil {
		return env.enclosing.Assign(name, value)
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name)
	return nil, NewError(Undefined, nil, msg)
}

// Lookup resolves name against this scope and then the chain, returning the
// expression bound to it. Nodes are immutable once built, so the stored
// expression is returned as is.
func (env *Environment) Lookup(name string) (ast.Expr, error) {
	if value, ok := env.values[name]; ok {
		return value, nil
	}
	if env.enclosing != nil {
		return env.enclosing.Lookup(name)
	}
	msg := fmt.Sprintf("Undefined variable '%s'.", name)
	return nil, NewError(Undefined, nil, msg)
}
