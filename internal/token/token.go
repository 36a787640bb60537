package token

import "fmt"

// Token represents a group of characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ     Type
	Lexeme  string
	Literal interface{}
	Line    int
}

// New creates a new token
func New(typ Type, lexeme string, literal interface{}, line int) *Token {
	return &Token{typ, lexeme, literal, line}
}

func (t *Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%s %s", t.Typ, t.Lexeme)
	}
	return fmt.Sprintf("%s %s %v", t.Typ, t.Lexeme, t.Literal)
}

// Type is just a wrapped string used to represent a token's type
type Type string

const (
	ILLEGAL Type = "illegal"
	EOF     Type = "eof"

	// Operators
	ASSIGN      Type = "="
	PLUS        Type = "+"
	MINUS       Type = "-"
	STAR        Type = "*"
	SLASH       Type = "/"
	PIPE        Type = "|"
	AMPERSAND   Type = "&"
	PIPE_PIPE   Type = "||"
	AMP_AMP     Type = "&&"
	SHIFT_LEFT  Type = "<<"
	SHIFT_RIGHT Type = ">>"
	CARET       Type = "^"
	PERCENT     Type = "%"

	// Comparisons
	LESS          Type = "<"
	GREATER       Type = ">"
	LESS_EQUAL    Type = "<="
	GREATER_EQUAL Type = ">="
	BANG          Type = "!"
	EQUAL_EQUAL   Type = "=="
	BANG_EQUAL    Type = "!="

	// Delimiters
	DOT         Type = "."
	DOT_DOT     Type = ".."
	COMMA       Type = ","
	L_PAREN     Type = "("
	R_PAREN     Type = ")"
	L_BRACE     Type = "{"
	R_BRACE     Type = "}"
	SEMICOLON   Type = ";"
	COLON       Type = ":"

	// Control flow keywords, recognised but outside the statement grammar
	IF     Type = "if"
	ELSE   Type = "else"
	RETURN Type = "return"
	MATCH  Type = "match"
	FOR    Type = "for"
	WHILE  Type = "while"
	SUPER  Type = "super"

	// Literals
	IDENT          Type = "identifier"
	STRING_LIT     Type = "string literal"
	INTEGER_LIT    Type = "integer literal"
	FLOAT_LIT      Type = "float literal"
	BOOL_LIT       Type = "boolean literal"
	COLLECTION_LIT Type = "collection literal"
	RANGE_LIT      Type = "range literal"
	NULL           Type = "null"

	// Declaration keywords
	STRING_DECL     Type = "string"
	INTEGER_DECL    Type = "int"
	FLOAT_DECL      Type = "float"
	BOOL_DECL       Type = "bool"
	COLLECTION_DECL Type = "collection"
	STRUCT_DECL     Type = "struct"
	FUNCTION_DECL   Type = "fn"
	VAR_DECL        Type = "var"
	CONST_DECL      Type = "const"
	VOID_DECL       Type = "void"

	PRINT Type = "print"
)

// Keywords maps the exact spelling of every reserved word to its token type.
// Note that "true" and "false" scan as boolean literals, not keywords.
var Keywords = map[string]Type{
	"fn":         FUNCTION_DECL,
	"const":      CONST_DECL,
	"var":        VAR_DECL,
	"match":      MATCH,
	"return":     RETURN,
	"super":      SUPER,
	"if":         IF,
	"else":       ELSE,
	"null":       NULL,
	"for":        FOR,
	"while":      WHILE,
	"true":       BOOL_LIT,
	"false":      BOOL_LIT,
	"void":       VOID_DECL,
	"collection": COLLECTION_DECL,
	"int":        INTEGER_DECL,
	"float":      FLOAT_DECL,
	"string":     STRING_DECL,
	"bool":       BOOL_DECL,
	"struct":     STRUCT_DECL,
	"print":      PRINT,
}

// Lookup resolves an identifier's spelling against the keyword table, falling
// back to IDENT for anything unreserved.
func Lookup(ident string) Type {
	if typ, isKeyword := Keywords[ident]; isKeyword {
		return typ
	}
	return IDENT
}
