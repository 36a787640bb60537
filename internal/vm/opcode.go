package vm

import "strings"

// Opcode identifies one machine instruction. The byte values are part of the
// wire format and must not be reordered.
type Opcode byte

const (
	Load Opcode = iota
	Add
	Sub
	Mul
	Div
	Hlt
	Jmp
	Jmpf
	Jmpb
	Eq
	Jeq
	Jne
	Neq
	Gte
	Lte
	Gt
	Lt
	Nop
	Aloc
	Lbl
	// Igl is the decode result for any byte outside the table.
	Igl
)

// Decode maps an instruction byte to its opcode, with Igl standing in for
// anything outside the table.
func Decode(b byte) Opcode {
	if b >= byte(Igl) {
		return Igl
	}
	return Opcode(b)
}

// FromMnemonic resolves a case-insensitive mnemonic, with Igl standing in
// for anything unrecognized.
func FromMnemonic(mnemonic string) Opcode {
	switch strings.ToLower(mnemonic) {
	case "load":
		return Load
	case "add":
		return Add
	case "sub":
		return Sub
	case "mul":
		return Mul
	case "div":
		return Div
	case "hlt":
		return Hlt
	case "jmp":
		return Jmp
	case "jmpf":
		return Jmpf
	case "jmpb":
		return Jmpb
	case "eq":
		return Eq
	case "jeq":
		return Jeq
	case "jne":
		return Jne
	case "neq":
		return Neq
	case "gte":
		return Gte
	case "lte":
		return Lte
	case "gt":
		return Gt
	case "lt":
		return Lt
	case "nop":
		return Nop
	case "aloc":
		return Aloc
	case "lbl":
		return Lbl
	}
	return Igl
}

func (op Opcode) String() string {
	switch op {
	case Load:
		return "LOAD"
	case Add:
		return "ADD"
	case Sub:
		return "SUB"
	case Mul:
		return "MUL"
	case Div:
		return "DIV"
	case Hlt:
		return "HLT"
	case Jmp:
		return "JMP"
	case Jmpf:
		return "JMPF"
	case Jmpb:
		return "JMPB"
	case Eq:
		return "EQ"
	case Jeq:
		return "JEQ"
	case Jne:
		return "JNE"
	case Neq:
		return "NEQ"
	case Gte:
		return "GTE"
	case Lte:
		return "LTE"
	case Gt:
		return "GT"
	case Lt:
		return "LT"
	case Nop:
		return "NOP"
	case Aloc:
		return "ALOC"
	case Lbl:
		return "LBL"
	}
	return "IGL"
}
