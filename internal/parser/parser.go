package parser

import (
	"fmt"

	"github.com/brooklang/brook/internal/ast"
	"github.com/brooklang/brook/internal/token"
)

// Parser composes a type-checked syntax tree from a token sequence held in
// reverse logical order. Consuming pops from the end of the slice, which is
// always the logically-next unconsumed token; peeking never advances. Type
// compatibility and name binding happen during the same pass, so a parser is
// tied to the program and scope chain it was created with.
type Parser struct {
	program *Program
	env     *Environment
	tokens  []*token.Token
}

// New creates a parser over tokens given in reverse logical order: the end
// marker is the first element and the logically-next token is always the
// last. Reverse turns a scanner's output into this shape.
func New(tokens []*token.Token) *Parser {
	program := NewProgram()
	return &Parser{program, program.Env, tokens}
}

// Reverse returns a copy of tokens in reverse order, the shape New expects.
func Reverse(tokens []*token.Token) []*token.Token {
	reversed := make([]*token.Token, len(tokens))
	for i, tok := range tokens {
		reversed[len(tokens)-1-i] = tok
	}
	return reversed
}

// Globals exposes the root scope so callers can seed bindings before the
// parse begins.
func (parser *Parser) Globals() *Environment {
	return parser.program.Env
}

// Parse drives the statement loop until the stream is exhausted or the end
// marker is met. A bare identifier resolves directly against the scope chain
// and its bound expression is pushed as a statement; any other token enters
// the declaration grammar. The first failure aborts the remaining parse: the
// returned program keeps every statement completed before the failure, and
// the error describes the failure itself.
func (parser *Parser) Parse() (*Program, error) {
	for {
		tok := parser.peek()
		if tok == nil || tok.Typ == token.EOF {
			return parser.program, nil
		}
		if tok.Typ == token.IDENT {
			parser.pop()
			expr, err := parser.env.Lookup(tok.Lexeme)
			if err != nil {
				return parser.program, errAt(err, tok)
			}
			parser.program.push(expr)
			continue
		}
		expr, err := parser.declaration()
		if err != nil {
			return parser.program, err
		}
		parser.program.push(expr)
	}
}

// decl --> varDecl | fnHeader | stmt ;
func (parser *Parser) declaration() (ast.Expr, error) {
	switch parser.peek().Typ {
	case token.VAR_DECL:
		parser.pop()
		return parser.varDeclaration()
	case token.FUNCTION_DECL:
		parser.pop()
		return parser.functionHeader()
	}
	return parser.statement()
}

// stmt --> printStmt | block | exprStmt ;
func (parser *Parser) statement() (ast.Expr, error) {
	switch parser.peek().Typ {
	case token.PRINT:
		parser.pop()
		return parser.printStatement()
	case token.L_BRACE:
		parser.pop()
		return parser.block()
	}
	return parser.expressionStatement()
}

// varDecl --> "var" IDENT "=" expr ";" ;
//
// The identifier must already resolve through the scope chain; this grammar
// does not introduce new names with var. The initializer's type must match
// the existing binding's.
func (parser *Parser) varDeclaration() (ast.Expr, error) {
	name := parser.pop()
	if name == nil || name.Typ != token.IDENT {
		return nil, failedAt(name, "Expect variable name.")
	}
	bound, err := parser.env.Lookup(name.Lexeme)
	if err != nil {
		return nil, errAt(err, name)
	}
	if err := parser.expect(token.ASSIGN, "Expect '=' after variable name."); err != nil {
		return nil, err
	}
	value, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if value.Type() != bound.Type() {
		msg := fmt.Sprintf(
			"Cannot initialize a '%s' binding with '%s'.",
			bound.Type(),
			value.Type(),
		)
		return nil, NewError(TypeMismatch, name, msg)
	}
	if err := parser.expect(token.SEMICOLON, "Expect ';' after declaration."); err != nil {
		return nil, err
	}
	return ast.NewVar(parser.nextID(), bound.Type(), value), nil
}

// fnHeader --> "fn" IDENT ":" TYPE "(" args ")" ;
//
// The header does not bind its name into any scope, and no body follows: the
// grammar recognizes headers only.
func (parser *Parser) functionHeader() (ast.Expr, error) {
	name := parser.pop()
	if name == nil || name.Typ != token.IDENT {
		return nil, failedAt(name, "Expect function name.")
	}
	if err := parser.expect(token.COLON, "Expect ':' after function name."); err != nil {
		return nil, err
	}
	ret := parser.pop()
	if ret == nil {
		return nil, NewError(EndOfInput, nil, "Expect return type after ':'.")
	}
	retType := ast.ValueTypeOf(ret)
	if retType == ast.TypeInvalid {
		return nil, NewError(UnexpectedToken, ret, "Expect return type after ':'.")
	}
	if err := parser.expect(token.L_PAREN, "Expect '(' after return type."); err != nil {
		return nil, err
	}
	return parser.argumentList(name.Lexeme, retType)
}

// args --> "void" | arg ( "," arg )* ;
// arg  --> TYPE ":" IDENT ;
//
// The list is driven by re-interpreting each consumed token through the
// total token mapping. A void entry is legal only as the sole element and
// declares zero arguments; a void-returning header takes no arguments at
// all, so its list may also be left empty. Every other header needs at least
// one argument.
func (parser *Parser) argumentList(name string, ret ast.ValueType) (ast.Expr, error) {
	var args []ast.Argument
	for {
		tok := parser.pop()
		if tok == nil {
			return nil, NewError(EndOfInput, nil, "Expect ')' after arguments.")
		}
		switch typ := ast.ValueTypeOf(tok); typ {
		case ast.TypeVoid:
			if len(args) > 0 {
				return nil, NewError(UnexpectedToken, tok, "'void' must be the only argument.")
			}
			if err := parser.expect(token.R_PAREN, "Expect ')' after arguments."); err != nil {
				return nil, err
			}
			return ast.NewFunctionHeader(parser.nextID(), name, ret, args), nil
		case ast.TypeBool, ast.TypeString, ast.TypeFloat, ast.TypeInteger,
			ast.TypeCollection, ast.TypeStruct:
			if ret == ast.TypeVoid {
				return nil, NewError(UnexpectedToken, tok, "A 'void' function cannot declare arguments.")
			}
			if err := parser.expect(token.COLON, "Expect ':' after argument type."); err != nil {
				return nil, err
			}
			argName := parser.pop()
			if argName == nil || argName.Typ != token.IDENT {
				return nil, failedAt(argName, "Expect argument name after ':'.")
			}
			args = append(args, ast.Argument{Type: typ, Name: argName.Lexeme})
		case ast.TypeContinue:
			// separator between arguments
		case ast.TypeEndOfStream:
			return nil, NewError(EndOfInput, tok, "Expect ')' after arguments.")
		case ast.TypeArguments:
			if len(args) == 0 && ret != ast.TypeVoid {
				return nil, NewError(UnexpectedToken, tok, "Expect argument list.")
			}
			return ast.NewFunctionHeader(parser.nextID(), name, ret, args), nil
		default:
			return nil, NewError(UnexpectedToken, tok, "Unexpected argument.")
		}
	}
}

// printStmt --> "print" STRING ";" ;
func (parser *Parser) printStatement() (ast.Expr, error) {
	tok := parser.pop()
	if tok == nil || tok.Typ != token.STRING_LIT {
		return nil, failedAt(tok, "Expect string after 'print'.")
	}
	if err := parser.expect(token.SEMICOLON, "Expect ';' after statement."); err != nil {
		return nil, err
	}
	text, _ := tok.Literal.(string)
	return ast.NewPrint(parser.nextID(), text), nil
}

// block --> "{" decl* "}" ;
//
// A block's statements accumulate into the block only and resolve names
// against a child scope that is dropped when the block closes. The block
// itself has the distinguished block type regardless of its members.
func (parser *Parser) block() (ast.Expr, error) {
	parser.env = NewEnvironment(parser.env)
	defer func() { parser.env = parser.env.enclosing }()

	var statements []ast.Expr
	for {
		tok := parser.peek()
		if tok == nil {
			return nil, NewError(EndOfInput, nil, "Expect '}' after block.")
		}
		switch tok.Typ {
		case token.R_BRACE:
			parser.pop()
			return ast.NewBlock(parser.nextID(), statements), nil
		case token.EOF:
			return nil, NewError(EndOfInput, tok, "Expect '}' after block.")
		}
		stmt, err := parser.declaration()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
}

// exprStmt --> expr ";" ;
func (parser *Parser) expressionStatement() (ast.Expr, error) {
	expr, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.expect(token.SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return expr, nil
}

// expr --> assign ;
func (parser *Parser) expression() (ast.Expr, error) {
	tok := parser.peek()
	if tok == nil {
		return nil, NewError(EndOfInput, nil, "Expect expression.")
	}
	if tok.Typ == token.EOF {
		return nil, NewError(EndOfInput, tok, "Expect expression.")
	}
	return parser.assignment()
}

// assign --> equality ( "=" assign )? ;
//
// Assignment is right-associative. The right-hand side's type must equal the
// left-hand side's, and the left-hand side must be a named-binding literal,
// the product of an earlier commit into some scope. A successful assignment
// commits into the nearest scope through Define, so assigning a name already
// bound in that exact scope fails as a redeclaration.
func (parser *Parser) assignment() (ast.Expr, error) {
	lhs, err := parser.equality()
	if err != nil {
		return nil, err
	}
	tok := parser.peek()
	if tok == nil || tok.Typ != token.ASSIGN {
		return lhs, nil
	}
	parser.pop()
	rhs, err := parser.assignment()
	if err != nil {
		return nil, err
	}
	if rhs.Type() != lhs.Type() {
		msg := fmt.Sprintf(
			"Cannot assign '%s' to a '%s' binding.",
			rhs.Type(),
			lhs.Type(),
		)
		return nil, NewError(TypeMismatch, tok, msg)
	}
	target, ok := lhs.(*ast.NamedLiteral)
	if !ok {
		return nil, NewError(UnexpectedToken, tok, "Invalid assignment target.")
	}
	value := ast.NewAssign(parser.nextID(), target.Name, rhs)
	bound, err := parser.env.Define(target.Name, value)
	if err != nil {
		return nil, errAt(err, tok)
	}
	return bound, nil
}

// equality --> comparison ( ( "!=" | "==" ) comparison )* ;
func (parser *Parser) equality() (ast.Expr, error) {
	return parser.binary(parser.comparison, token.BANG_EQUAL, token.EQUAL_EQUAL)
}

// comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
func (parser *Parser) comparison() (ast.Expr, error) {
	return parser.binary(parser.term, token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL)
}

// term --> factor ( ( "-" | "+" ) factor )* ;
func (parser *Parser) term() (ast.Expr, error) {
	return parser.binary(parser.factor, token.MINUS, token.PLUS)
}

// factor --> unary ( ( "/" | "*" ) unary )* ;
func (parser *Parser) factor() (ast.Expr, error) {
	return parser.binary(parser.unary, token.SLASH, token.STAR)
}

// binary folds a left-associative run of operators from one precedence
// level, parsing each operand with the next tighter rule. The operand types
// must be equal at every fold; there is no coercion. Folding stops as soon
// as the lookahead is not one of the level's operators or the stream is
// exhausted.
func (parser *Parser) binary(operand func() (ast.Expr, error), types ...token.Type) (ast.Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for parser.peekIs(types...) {
		op := parser.pop()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		if right.Type() != expr.Type() {
			msg := fmt.Sprintf(
				"Cannot apply '%s' to '%s' and '%s'.",
				op.Lexeme,
				expr.Type(),
				right.Type(),
			)
			return nil, NewError(TypeMismatch, op, msg)
		}
		expr = ast.NewBinary(parser.nextID(), op, expr, right)
	}
	return expr, nil
}

// unary --> ( "!" | "-" ) unary | primary ;
//
// The node's type follows the operator token through the total mapping, not
// the operand, so every unary node is invalid-typed.
func (parser *Parser) unary() (ast.Expr, error) {
	if parser.peekIs(token.BANG, token.MINUS) {
		op := parser.pop()
		operand, err := parser.unary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnary(parser.nextID(), op, operand), nil
	}
	return parser.primary()
}

// primary --> INTEGER | FLOAT | STRING | BOOL | COLLECTION | RANGE
//           | IDENT | "null"
//           | "{" expr "}" ;
func (parser *Parser) primary() (ast.Expr, error) {
	tok := parser.pop()
	if tok == nil {
		return nil, NewError(EndOfInput, nil, "Expect expression.")
	}
	switch tok.Typ {
	case token.STRING_LIT, token.INTEGER_LIT, token.FLOAT_LIT, token.BOOL_LIT,
		token.COLLECTION_LIT, token.RANGE_LIT, token.IDENT, token.NULL:
		return ast.NewLiteral(parser.nextID(), tok), nil
	case token.L_BRACE:
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.expect(token.R_BRACE, "Expect '}' after expression."); err != nil {
			return nil, err
		}
		return expr, nil
	case token.EOF:
		return nil, NewError(EndOfInput, tok, "Expect expression.")
	}
	return nil, NewError(UnexpectedToken, tok, "Expect expression.")
}

func (parser *Parser) expect(typ token.Type, message string) error {
	tok := parser.pop()
	if tok == nil || tok.Typ != typ {
		return failedAt(tok, message)
	}
	return nil
}

// failedAt classifies a failed consume: exhaustion and meeting the end
// marker are both premature ends of input, anything else is an unexpected
// token.
func failedAt(tok *token.Token, message string) error {
	if tok == nil || tok.Typ == token.EOF {
		return NewError(EndOfInput, tok, message)
	}
	return NewError(UnexpectedToken, tok, message)
}

func (parser *Parser) peekIs(types ...token.Type) bool {
	tok := parser.peek()
	if tok == nil {
		return false
	}
	for _, typ := range types {
		if tok.Typ == typ {
			return true
		}
	}
	return false
}

func (parser *Parser) peek() *token.Token {
	if len(parser.tokens) == 0 {
		return nil
	}
	return parser.tokens[len(parser.tokens)-1]
}

func (parser *Parser) pop() *token.Token {
	if len(parser.tokens) == 0 {
		return nil
	}
	tok := parser.tokens[len(parser.tokens)-1]
	parser.tokens = parser.tokens[:len(parser.tokens)-1]
	return tok
}

func (parser *Parser) nextID() int {
	return parser.program.ids.next()
}

// errAt attaches tok to scope-chain errors, which carry no token of their
// own.
func errAt(err error, tok *token.Token) error {
	if perr, ok := err.(*Error); ok && perr.Token == nil {
		perr.Token = tok
	}
	return err
}
