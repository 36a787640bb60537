package ast

import "github.com/brooklang/brook/internal/token"

// Expr is one node of the syntax tree. Every node carries the unique id it
// was minted with and the static type assigned during parsing.
type Expr interface {
	ID() int
	Type() ValueType
	expr()
}

// node holds the identity shared by every expression variant.
type node struct {
	id  int
	typ ValueType
}

func (n node) ID() int         { return n.id }
func (n node) Type() ValueType { return n.typ }
func (n node) expr()           {}

// Literal is a single-token leaf. Its type follows the token through the
// total mapping, so identifier, null, collection and range leaves are
// invalid-typed.
type Literal struct {
	node
	Token *token.Token
}

func NewLiteral(id int, tok *token.Token) *Literal {
	return &Literal{node{id, ValueTypeOf(tok)}, tok}
}

// NamedLiteral associates a name with the expression bound to it. These
// nodes are only minted by the environment when a binding is committed.
type NamedLiteral struct {
	node
	Name  string
	Value Expr
}

func NewNamedLiteral(id int, name string, value Expr) *NamedLiteral {
	return &NamedLiteral{node{id, value.Type()}, name, value}
}

// Assign carries the right-hand side committed to an existing binding.
type Assign struct {
	node
	Name  string
	Value Expr
}

func NewAssign(id int, name string, value Expr) *Assign {
	return &Assign{node{id, value.Type()}, name, value}
}

// Print holds the string payload of a print statement.
type Print struct {
	node
	Text string
}

func NewPrint(id int, text string) *Print {
	return &Print{node{id, TypeString}, text}
}

// Block is a brace-delimited statement sequence.
type Block struct {
	node
	Statements []Expr
}

func NewBlock(id int, statements []Expr) *Block {
	return &Block{node{id, TypeBlock}, statements}
}

// Var is a var-declaration's initializer, typed with the declared
// expectation. The binding's name lives in the environment, not the node.
type Var struct {
	node
	Value Expr
}

func NewVar(id int, typ ValueType, value Expr) *Var {
	return &Var{node{id, typ}, value}
}

// Const mirrors Var for const declarations. The statement grammar does not
// produce it yet.
type Const struct {
	node
	Value Expr
}

func NewConst(id int, typ ValueType, value Expr) *Const {
	return &Const{node{id, typ}, value}
}

// Unary applies a prefix operator. The node's type follows the operator
// token through the total mapping and is therefore invalid.
type Unary struct {
	node
	Op      *token.Token
	Operand Expr
}

func NewUnary(id int, op *token.Token, operand Expr) *Unary {
	return &Unary{node{id, ValueTypeOf(op)}, op, operand}
}

// Binary applies an infix operator. Both operands have the same type by the
// time the node exists; the node takes its type from the left one.
type Binary struct {
	node
	Op    *token.Token
	Left  Expr
	Right Expr
}

func NewBinary(id int, op *token.Token, left, right Expr) *Binary {
	return &Binary{node{id, left.Type()}, op, left, right}
}

// Conditional is declared for completeness; the statement grammar does not
// produce it.
type Conditional struct {
	node
	Condition Expr
	Then      Expr
}

func NewConditional(id int, condition, then Expr) *Conditional {
	return &Conditional{node{id, TypeInvalid}, condition, then}
}

// Loop is declared for completeness; the statement grammar does not produce
// it.
type Loop struct {
	node
	Body Expr
}

func NewLoop(id int, body Expr) *Loop {
	return &Loop{node{id, TypeInvalid}, body}
}

// Argument is one "type: name" entry of a function header.
type Argument struct {
	Type ValueType
	Name string
}

// FunctionHeader declares a function's name, return type, and arguments.
type FunctionHeader struct {
	node
	Name   string
	Return ValueType
	Args   []Argument
}

func NewFunctionHeader(id int, name string, ret ValueType, args []Argument) *FunctionHeader {
	return &FunctionHeader{node{id, TypeFunctionHeader}, name, ret, args}
}

// Function pairs a header with a body. No grammar rule produces it yet.
type Function struct {
	node
	Header *FunctionHeader
	Body   *Block
}

func NewFunction(id int, header *FunctionHeader, body *Block) *Function {
	return &Function{node{id, TypeFunction}, header, body}
}
