package parser

import "github.com/brooklang/brook/internal/ast"

// Statement wraps one top-level expression of a parsed program.
type Statement struct {
	Expr ast.Expr
}

// Program is the result of one parse: the statements in source order and the
// root scope their names were resolved against.
type Program struct {
	Statements []Statement
	Env        *Environment
	ids        *idSource
}

// NewProgram creates an empty program with a fresh root scope.
func NewProgram() *Program {
	env := NewEnvironment(nil)
	return &Program{Env: env, ids: env.ids}
}

func (program *Program) push(expr ast.Expr) {
	program.Statements = append(program.Statements, Statement{expr})
}

// idSource mints the node ids for one parse. The parser and every scope in
// the chain share a single source, so ids are unique and increasing across
// the whole program.
type idSource struct {
	count int
}

func (ids *idSource) next() int {
	ids.count++
	return ids.count
}
