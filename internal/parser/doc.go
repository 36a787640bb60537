/*
Package parser turns a token sequence into a type-checked syntax tree while
resolving names through nested lexical scopes. Parsing, static type checking,
and name binding are fused into one pass: there is no separate semantic
analysis stage and no error recovery, so the first failure aborts the
remaining parse and yields the statements completed before it.

Grammar

	program    --> ( decl | IDENT )* EOF ;
	decl       --> varDecl
	             | fnHeader
	             | stmt ;
	varDecl    --> "var" IDENT "=" expr ";" ;
	fnHeader   --> "fn" IDENT ":" TYPE "(" args ")" ;
	args       --> "void" | arg ( "," arg )* ;
	arg        --> TYPE ":" IDENT ;
	stmt       --> printStmt
	             | block
	             | exprStmt ;
	printStmt  --> "print" STRING ";" ;
	block      --> "{" decl* "}" ;
	exprStmt   --> expr ";" ;
	expr       --> assign ;
	assign     --> equality ( "=" assign )? ;
	equality   --> comparison ( ( "!=" | "==" ) comparison )* ;
	comparison --> term ( ( ">" | ">=" | "<" | "<=" ) term )* ;
	term       --> factor ( ( "-" | "+" ) factor )* ;
	factor     --> unary ( ( "/" | "*" ) unary )* ;
	unary      --> ( "!" | "-" ) unary
	             | primary ;
	primary    --> INTEGER | FLOAT | STRING | BOOL
	             | COLLECTION | RANGE | IDENT | "null"
	             | "{" expr "}" ;

A bare IDENT at the top level resolves directly against the scope chain and
its bound expression becomes the statement, bypassing the expression grammar.

The parser consumes tokens in reverse logical order: the slice handed to New
holds the end marker first and the logically-next token last. Every binary
fold checks that both operand types are equal, a var initializer must match
its binding's type, and an assignment's right-hand side must match its
target's, so the produced tree never mixes types across an operator.
*/
package parser
