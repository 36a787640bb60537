package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert := assert.New(t)
	keywords := map[string]Type{
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
	for spelling, expected := range keywords {
		assert.Equal(expected, Lookup(spelling), "keyword %q", spelling)
	}
}

func TestLookupIdentifier(t *testing.T) {
	assert := assert.New(t)
	for _, spelling := range []string{"x", "add", "printx", "Int", "_tmp", "fn_"} {
		assert.Equal(IDENT, Lookup(spelling), "identifier %q", spelling)
	}
}

func TestTokenString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("int int", New(INTEGER_DECL, "int", nil, 0).String())
	assert.Equal("integer literal 42 42", New(INTEGER_LIT, "42", int64(42), 0).String())
	assert.Equal("boolean literal true true", New(BOOL_LIT, "true", true, 3).String())
}
