package ast

import (
	"fmt"
	"strings"
)

// Sprint renders an expression tree as an s-expression, mainly for the REPL
// and for debugging failed parses.
func Sprint(expr Expr) string {
	switch e := expr.(type) {
	case *Literal:
		if e.Token.Lexeme != "" {
			return e.Token.Lexeme
		}
		return fmt.Sprintf("%v", e.Token.Literal)
	case *NamedLiteral:
		return fmt.Sprintf("(bind %s %s)", e.Name, Sprint(e.Value))
	case *Assign:
		return fmt.Sprintf("(= %s %s)", e.Name, Sprint(e.Value))
	case *Print:
		return fmt.Sprintf("(print %q)", e.Text)
	case *Block:
		if len(e.Statements) == 0 {
			return "(block)"
		}
		inner := make([]string, len(e.Statements))
		for i, stmt := range e.Statements {
			inner[i] = Sprint(stmt)
		}
		return fmt.Sprintf("(block %s)", strings.Join(inner, " "))
	case *Var:
		return fmt.Sprintf("(var %s %s)", e.Type(), Sprint(e.Value))
	case *Const:
		return fmt.Sprintf("(const %s %s)", e.Type(), Sprint(e.Value))
	case *Unary:
		return fmt.Sprintf("(%s %s)", e.Op.Lexeme, Sprint(e.Operand))
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", e.Op.Lexeme, Sprint(e.Left), Sprint(e.Right))
	case *Conditional:
		return fmt.Sprintf("(if %s %s)", Sprint(e.Condition), Sprint(e.Then))
	case *Loop:
		return fmt.Sprintf("(loop %s)", Sprint(e.Body))
	case *FunctionHeader:
		var sb strings.Builder
		fmt.Fprintf(&sb, "(fn %s %s", e.Name, e.Return)
		for _, arg := range e.Args {
			fmt.Fprintf(&sb, " (%s %s)", arg.Type, arg.Name)
		}
		sb.WriteString(")")
		return sb.String()
	case *Function:
		return fmt.Sprintf("(function %s %s)", Sprint(e.Header), Sprint(e.Body))
	}
	return ""
}
