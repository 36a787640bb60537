package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brooklang/brook/internal/token"
)

func tokEOF(line int) *token.Token {
	return token.New(token.EOF, "", nil, line)
}

func TestScanSingleToken(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		// single character token
		{"(", []*token.Token{{Typ: token.L_PAREN, Lexeme: "(", Literal: nil, Line: 0}, tokEOF(0)}},
		{")", []*token.Token{{Typ: token.R_PAREN, Lexeme: ")", Literal: nil, Line: 0}, tokEOF(0)}},
		{"{", []*token.Token{{Typ: token.L_BRACE, Lexeme: "{", Literal: nil, Line: 0}, tokEOF(0)}},
		{"}", []*token.Token{{Typ: token.R_BRACE, Lexeme: "}", Literal: nil, Line: 0}, tokEOF(0)}},
		{",", []*token.Token{{Typ: token.COMMA, Lexeme: ",", Literal: nil, Line: 0}, tokEOF(0)}},
		{";", []*token.Token{{Typ: token.SEMICOLON, Lexeme: ";", Literal: nil, Line: 0}, tokEOF(0)}},
		{":", []*token.Token{{Typ: token.COLON, Lexeme: ":", Literal: nil, Line: 0}, tokEOF(0)}},
		{"+", []*token.Token{{Typ: token.PLUS, Lexeme: "+", Literal: nil, Line: 0}, tokEOF(0)}},
		{"-", []*token.Token{{Typ: token.MINUS, Lexeme: "-", Literal: nil, Line: 0}, tokEOF(0)}},
		{"*", []*token.Token{{Typ: token.STAR, Lexeme: "*", Literal: nil, Line: 0}, tokEOF(0)}},
		{"/", []*token.Token{{Typ: token.SLASH, Lexeme: "/", Literal: nil, Line: 0}, tokEOF(0)}},
		{"^", []*token.Token{{Typ: token.CARET, Lexeme: "^", Literal: nil, Line: 0}, tokEOF(0)}},
		{"%", []*token.Token{{Typ: token.PERCENT, Lexeme: "%", Literal: nil, Line: 0}, tokEOF(0)}},
		// single-/double-character token
		{".", []*token.Token{{Typ: token.DOT, Lexeme: ".", Literal: nil, Line: 0}, tokEOF(0)}},
		{"..", []*token.Token{{Typ: token.DOT_DOT, Lexeme: "..", Literal: nil, Line: 0}, tokEOF(0)}},
		{"|", []*token.Token{{Typ: token.PIPE, Lexeme: "|", Literal: nil, Line: 0}, tokEOF(0)}},
		{"||", []*token.Token{{Typ: token.PIPE_PIPE, Lexeme: "||", Literal: nil, Line: 0}, tokEOF(0)}},
		{"&", []*token.Token{{Typ: token.AMPERSAND, Lexeme: "&", Literal: nil, Line: 0}, tokEOF(0)}},
		{"&&", []*token.Token{{Typ: token.AMP_AMP, Lexeme: "&&", Literal: nil, Line: 0}, tokEOF(0)}},
		{"!", []*token.Token{{Typ: token.BANG, Lexeme: "!", Literal: nil, Line: 0}, tokEOF(0)}},
		{"!=", []*token.Token{{Typ: token.BANG_EQUAL, Lexeme: "!=", Literal: nil, Line: 0}, tokEOF(0)}},
		{"=", []*token.Token{{Typ: token.ASSIGN, Lexeme: "=", Literal: nil, Line: 0}, tokEOF(0)}},
		{"==", []*token.Token{{Typ: token.EQUAL_EQUAL, Lexeme: "==", Literal: nil, Line: 0}, tokEOF(0)}},
		{">", []*token.Token{{Typ: token.GREATER, Lexeme: ">", Literal: nil, Line: 0}, tokEOF(0)}},
		{">=", []*token.Token{{Typ: token.GREATER_EQUAL, Lexeme: ">=", Literal: nil, Line: 0}, tokEOF(0)}},
		{">>", []*token.Token{{Typ: token.SHIFT_RIGHT, Lexeme: ">>", Literal: nil, Line: 0}, tokEOF(0)}},
		{"<", []*token.Token{{Typ: token.LESS, Lexeme: "<", Literal: nil, Line: 0}, tokEOF(0)}},
		{"<=", []*token.Token{{Typ: token.LESS_EQUAL, Lexeme: "<=", Literal: nil, Line: 0}, tokEOF(0)}},
		{"<<", []*token.Token{{Typ: token.SHIFT_LEFT, Lexeme: "<<", Literal: nil, Line: 0}, tokEOF(0)}},
		// literals
		{"a", []*token.Token{{Typ: token.IDENT, Lexeme: "a", Literal: nil, Line: 0}, tokEOF(0)}},
		{"abc123", []*token.Token{{Typ: token.IDENT, Lexeme: "abc123", Literal: nil, Line: 0}, tokEOF(0)}},
		{"_abc123", []*token.Token{{Typ: token.IDENT, Lexeme: "_abc123", Literal: nil, Line: 0}, tokEOF(0)}},
		{"\"\"", []*token.Token{{Typ: token.STRING_LIT, Lexeme: "\"\"", Literal: "", Line: 0}, tokEOF(0)}},
		{"\"123\"", []*token.Token{{Typ: token.STRING_LIT, Lexeme: "\"123\"", Literal: "123", Line: 0}, tokEOF(0)}},
		{"\"abc\n123\"", []*token.Token{{Typ: token.STRING_LIT, Lexeme: "\"abc\n123\"", Literal: "abc\n123", Line: 1}, tokEOF(1)}},
		{"10", []*token.Token{{Typ: token.INTEGER_LIT, Lexeme: "10", Literal: int64(10), Line: 0}, tokEOF(0)}},
		{"007", []*token.Token{{Typ: token.INTEGER_LIT, Lexeme: "007", Literal: int64(7), Line: 0}, tokEOF(0)}},
		{"0.1", []*token.Token{{Typ: token.FLOAT_LIT, Lexeme: "0.1", Literal: 0.1, Line: 0}, tokEOF(0)}},
		{"123.456", []*token.Token{{Typ: token.FLOAT_LIT, Lexeme: "123.456", Literal: 123.456, Line: 0}, tokEOF(0)}},
		{"1.", []*token.Token{{Typ: token.FLOAT_LIT, Lexeme: "1.", Literal: 1.0, Line: 0}, tokEOF(0)}},
		{"true", []*token.Token{{Typ: token.BOOL_LIT, Lexeme: "true", Literal: true, Line: 0}, tokEOF(0)}},
		{"false", []*token.Token{{Typ: token.BOOL_LIT, Lexeme: "false", Literal: false, Line: 0}, tokEOF(0)}},
		// keywords
		{"fn", []*token.Token{{Typ: token.FUNCTION_DECL, Lexeme: "fn", Literal: nil, Line: 0}, tokEOF(0)}},
		{"const", []*token.Token{{Typ: token.CONST_DECL, Lexeme: "const", Literal: nil, Line: 0}, tokEOF(0)}},
		{"var", []*token.Token{{Typ: token.VAR_DECL, Lexeme: "var", Literal: nil, Line: 0}, tokEOF(0)}},
		{"match", []*token.Token{{Typ: token.MATCH, Lexeme: "match", Literal: nil, Line: 0}, tokEOF(0)}},
		{"return", []*token.Token{{Typ: token.RETURN, Lexeme: "return", Literal: nil, Line: 0}, tokEOF(0)}},
		{"super", []*token.Token{{Typ: token.SUPER, Lexeme: "super", Literal: nil, Line: 0}, tokEOF(0)}},
		{"if", []*token.Token{{Typ: token.IF, Lexeme: "if", Literal: nil, Line: 0}, tokEOF(0)}},
		{"else", []*token.Token{{Typ: token.ELSE, Lexeme: "else", Literal: nil, Line: 0}, tokEOF(0)}},
		{"null", []*token.Token{{Typ: token.NULL, Lexeme: "null", Literal: nil, Line: 0}, tokEOF(0)}},
		{"for", []*token.Token{{Typ: token.FOR, Lexeme: "for", Literal: nil, Line: 0}, tokEOF(0)}},
		{"while", []*token.Token{{Typ: token.WHILE, Lexeme: "while", Literal: nil, Line: 0}, tokEOF(0)}},
		{"void", []*token.Token{{Typ: token.VOID_DECL, Lexeme: "void", Literal: nil, Line: 0}, tokEOF(0)}},
		{"collection", []*token.Token{{Typ: token.COLLECTION_DECL, Lexeme: "collection", Literal: nil, Line: 0}, tokEOF(0)}},
		{"int", []*token.Token{{Typ: token.INTEGER_DECL, Lexeme: "int", Literal: nil, Line: 0}, tokEOF(0)}},
		{"float", []*token.Token{{Typ: token.FLOAT_DECL, Lexeme: "float", Literal: nil, Line: 0}, tokEOF(0)}},
		{"string", []*token.Token{{Typ: token.STRING_DECL, Lexeme: "string", Literal: nil, Line: 0}, tokEOF(0)}},
		{"bool", []*token.Token{{Typ: token.BOOL_DECL, Lexeme: "bool", Literal: nil, Line: 0}, tokEOF(0)}},
		{"struct", []*token.Token{{Typ: token.STRUCT_DECL, Lexeme: "struct", Literal: nil, Line: 0}, tokEOF(0)}},
		{"print", []*token.Token{{Typ: token.PRINT, Lexeme: "print", Literal: nil, Line: 0}, tokEOF(0)}},
		{"", []*token.Token{tokEOF(0)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.toks, Scan(tc.src), "source %q", tc.src)
	}
}

func TestScanWhiteSpaces(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		{"        ", []*token.Token{tokEOF(0)}},
		{"\r\r\r\r", []*token.Token{tokEOF(0)}},
		{"\t\t\t\t", []*token.Token{tokEOF(0)}},
		{"\n\n\n\n", []*token.Token{tokEOF(4)}},
		{"  \r\t\n", []*token.Token{tokEOF(1)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.toks, Scan(tc.src))
	}
}

func TestScanComments(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		{"// a single-line comment", []*token.Token{tokEOF(0)}},
		{"// comment\n42", []*token.Token{{Typ: token.INTEGER_LIT, Lexeme: "42", Literal: int64(42), Line: 1}, tokEOF(1)}},
		{"1 // trailing\n", []*token.Token{{Typ: token.INTEGER_LIT, Lexeme: "1", Literal: int64(1), Line: 0}, tokEOF(1)}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.toks, Scan(tc.src), "source %q", tc.src)
	}
}

func TestScanValidTokensSequence(t *testing.T) {
	lexemes := []string{
		"fn", "add", ":", "int", "(", "int", ":", "a", ",", "int", ":", "b", ")",
		"var", "x", "=", "1", "+", "2.5", ";",
		"print", "\"hi\"", ";",
	}
	toksWant := []*token.Token{
		{Typ: token.FUNCTION_DECL, Lexeme: "fn", Literal: nil, Line: 0},
		{Typ: token.IDENT, Lexeme: "add", Literal: nil, Line: 0},
		{Typ: token.COLON, Lexeme: ":", Literal: nil, Line: 0},
		{Typ: token.INTEGER_DECL, Lexeme: "int", Literal: nil, Line: 0},
		{Typ: token.L_PAREN, Lexeme: "(", Literal: nil, Line: 0},
		{Typ: token.INTEGER_DECL, Lexeme: "int", Literal: nil, Line: 0},
		{Typ: token.COLON, Lexeme: ":", Literal: nil, Line: 0},
		{Typ: token.IDENT, Lexeme: "a", Literal: nil, Line: 0},
		{Typ: token.COMMA, Lexeme: ",", Literal: nil, Line: 0},
		{Typ: token.INTEGER_DECL, Lexeme: "int", Literal: nil, Line: 0},
		{Typ: token.COLON, Lexeme: ":", Literal: nil, Line: 0},
		{Typ: token.IDENT, Lexeme: "b", Literal: nil, Line: 0},
		{Typ: token.R_PAREN, Lexeme: ")", Literal: nil, Line: 0},
		{Typ: token.VAR_DECL, Lexeme: "var", Literal: nil, Line: 0},
		{Typ: token.IDENT, Lexeme: "x", Literal: nil, Line: 0},
		{Typ: token.ASSIGN, Lexeme: "=", Literal: nil, Line: 0},
		{Typ: token.INTEGER_LIT, Lexeme: "1", Literal: int64(1), Line: 0},
		{Typ: token.PLUS, Lexeme: "+", Literal: nil, Line: 0},
		{Typ: token.FLOAT_LIT, Lexeme: "2.5", Literal: 2.5, Line: 0},
		{Typ: token.SEMICOLON, Lexeme: ";", Literal: nil, Line: 0},
		{Typ: token.PRINT, Lexeme: "print", Literal: nil, Line: 0},
		{Typ: token.STRING_LIT, Lexeme: "\"hi\"", Literal: "hi", Line: 0},
		{Typ: token.SEMICOLON, Lexeme: ";", Literal: nil, Line: 0},
		tokEOF(0),
	}

	assert := assert.New(t)
	assert.Equal(toksWant, Scan(strings.Join(lexemes, " ")))
}

func TestScanIllegal(t *testing.T) {
	testCases := []struct {
		src  string
		toks []*token.Token
	}{
		{"@", []*token.Token{{Typ: token.ILLEGAL, Lexeme: "@", Literal: nil, Line: 0}, tokEOF(0)}},
		{"#$", []*token.Token{
			{Typ: token.ILLEGAL, Lexeme: "#", Literal: nil, Line: 0},
			{Typ: token.ILLEGAL, Lexeme: "$", Literal: nil, Line: 0},
			tokEOF(0),
		}},
		{"\"no closing quote", []*token.Token{
			{Typ: token.ILLEGAL, Lexeme: "\"no closing quote", Literal: nil, Line: 0},
			tokEOF(0),
		}},
		{"@ 1", []*token.Token{
			{Typ: token.ILLEGAL, Lexeme: "@", Literal: nil, Line: 0},
			{Typ: token.INTEGER_LIT, Lexeme: "1", Literal: int64(1), Line: 0},
			tokEOF(0),
		}},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		assert.Equal(tc.toks, Scan(tc.src), "source %q", tc.src)
	}
}
