package ast

import "github.com/brooklang/brook/internal/token"

// ValueType is the static type tag attached to every expression node. Beyond
// the language's value types it includes the structural signals the grammar
// folds with while it walks a token stream: TypeArguments closes an argument
// list, TypeContinue separates its entries, TypeEndOfStream marks the end
// marker, and TypeBlock and TypeFunctionHeader tag the corresponding
// statement forms.
type ValueType uint8

const (
	TypeInvalid ValueType = iota
	TypeVoid
	TypeBool
	TypeString
	TypeFloat
	TypeInteger
	TypeCollection
	TypeStruct
	TypeArguments
	TypeContinue
	TypeFunction
	TypeFunctionHeader
	TypeBlock
	TypeEndOfStream
)

func (v ValueType) String() string {
	switch v {
	case TypeVoid:
		return "void"
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeFloat:
		return "float"
	case TypeInteger:
		return "int"
	case TypeCollection:
		return "collection"
	case TypeStruct:
		return "struct"
	case TypeArguments:
		return "arguments"
	case TypeContinue:
		return "continue"
	case TypeFunction:
		return "function"
	case TypeFunctionHeader:
		return "function header"
	case TypeBlock:
		return "block"
	case TypeEndOfStream:
		return "end of stream"
	}
	return "invalid"
}

// DeclaredType is a type as named in source text: the "int" in "int: a".
type DeclaredType uint8

const (
	DeclareInvalid DeclaredType = iota
	DeclareVoid
	DeclareBool
	DeclareString
	DeclareFloat
	DeclareInteger
	DeclareCollection
	DeclareStruct
)

func (d DeclaredType) String() string {
	return d.Value().String()
}

// Value returns the type of values held by bindings declared with d. The
// mapping is total: a declared type and the literals it covers share one
// ValueType.
func (d DeclaredType) Value() ValueType {
	switch d {
	case DeclareVoid:
		return TypeVoid
	case DeclareBool:
		return TypeBool
	case DeclareString:
		return TypeString
	case DeclareFloat:
		return TypeFloat
	case DeclareInteger:
		return TypeInteger
	case DeclareCollection:
		return TypeCollection
	case DeclareStruct:
		return TypeStruct
	}
	return TypeInvalid
}

// DeclaredTypeOf classifies declared-type keyword tokens; every other token
// is DeclareInvalid.
func DeclaredTypeOf(tok *token.Token) DeclaredType {
	switch tok.Typ {
	case token.VOID_DECL:
		return DeclareVoid
	case token.BOOL_DECL:
		return DeclareBool
	case token.STRING_DECL:
		return DeclareString
	case token.FLOAT_DECL:
		return DeclareFloat
	case token.INTEGER_DECL:
		return DeclareInteger
	case token.COLLECTION_DECL:
		return DeclareCollection
	case token.STRUCT_DECL:
		return DeclareStruct
	}
	return DeclareInvalid
}

// ValueTypeOf maps any token to a ValueType. The mapping is total: literal
// tokens map to the type of their value, declared-type keywords map through
// DeclaredTypeOf, the structural tokens map to their signals, and everything
// else is TypeInvalid. Collection literals have no value representation yet
// and stay invalid, as do identifiers, null, and range literals.
func ValueTypeOf(tok *token.Token) ValueType {
	switch tok.Typ {
	case token.BOOL_LIT:
		return TypeBool
	case token.INTEGER_LIT:
		return TypeInteger
	case token.STRING_LIT:
		return TypeString
	case token.FLOAT_LIT:
		return TypeFloat
	case token.R_PAREN:
		return TypeArguments
	case token.COMMA:
		return TypeContinue
	case token.EOF:
		return TypeEndOfStream
	}
	return DeclaredTypeOf(tok).Value()
}
