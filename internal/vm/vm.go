// Package vm is a register-based bytecode machine, the downstream consumer
// the front end will eventually lower programs into. No lowering pass exists
// yet, so the machine only runs byte programs loaded directly.
//
// Instructions are four bytes wide: one opcode byte and up to three operand
// bytes. LOAD takes a register and a big-endian 16-bit immediate; the
// arithmetic ops take two source registers and a destination; the comparison
// ops set the equal flag and skip their padding byte; the jumps go through a
// register, absolute for JMP and relative for JMPF/JMPB.
package vm

// RegisterCount is the size of the machine's register file.
const RegisterCount = 32

// VM is the register machine. It is not safe for concurrent use.
type VM struct {
	registers [RegisterCount]int32
	pc        int
	program   []byte
	heap      []byte
	remainder uint32
	equalFlag bool
}

// New creates a machine with zeroed registers and an empty program.
func New() *VM {
	return new(VM)
}

// Run executes instructions until the machine halts or the program counter
// runs off the end of the program.
func (machine *VM) Run() {
	for !machine.step() {
	}
}

// RunOnce executes a single instruction.
func (machine *VM) RunOnce() {
	machine.step()
}

// step executes one instruction and reports whether the machine is done.
func (machine *VM) step() bool {
	if machine.pc >= len(machine.program) {
		return true
	}
	switch machine.decode() {
	case Load:
		register := machine.next8()
		machine.registers[register] = int32(machine.next16())
	case Add:
		left := machine.registers[machine.next8()]
		right := machine.registers[machine.next8()]
		machine.registers[machine.next8()] = left + right
	case Sub:
		left := machine.registers[machine.next8()]
		right := machine.registers[machine.next8()]
		machine.registers[machine.next8()] = left - right
	case Mul:
		left := machine.registers[machine.next8()]
		right := machine.registers[machine.next8()]
		machine.registers[machine.next8()] = left * right
	case Div:
		left := machine.registers[machine.next8()]
		right := machine.registers[machine.next8()]
		machine.registers[machine.next8()] = left / right
		machine.remainder = uint32(left % right)
	case Jmp:
		machine.pc = int(machine.registers[machine.next8()])
	case Jmpf:
		machine.pc += int(machine.registers[machine.next8()])
	case Jmpb:
		machine.pc -= int(machine.registers[machine.next8()])
	case Eq:
		machine.equalFlag = machine.registers[machine.next8()] == machine.registers[machine.next8()]
		machine.pc++
	case Neq:
		machine.equalFlag = machine.registers[machine.next8()] != machine.registers[machine.next8()]
		machine.pc++
	case Gte:
		machine.equalFlag = machine.registers[machine.next8()] >= machine.registers[machine.next8()]
		machine.pc++
	case Lte:
		machine.equalFlag = machine.registers[machine.next8()] <= machine.registers[machine.next8()]
		machine.pc++
	case Gt:
		machine.equalFlag = machine.registers[machine.next8()] > machine.registers[machine.next8()]
		machine.pc++
	case Lt:
		machine.equalFlag = machine.registers[machine.next8()] < machine.registers[machine.next8()]
		machine.pc++
	case Jeq:
		// consumes its operand only when the flag is set
		if machine.equalFlag {
			machine.pc = int(machine.registers[machine.next8()])
		}
	case Jne:
		target := machine.registers[machine.next8()]
		if !machine.equalFlag {
			machine.pc = int(target)
		}
	case Nop:
		machine.pc += 3
	case Aloc:
		bytes := machine.registers[machine.next8()]
		machine.heap = append(machine.heap, make([]byte, bytes)...)
		machine.pc += 2
	default:
		// Hlt, Lbl and anything illegal stop the machine
		return true
	}
	return false
}

func (machine *VM) decode() Opcode {
	op := Decode(machine.program[machine.pc])
	machine.pc++
	return op
}

func (machine *VM) next8() byte {
	b := machine.program[machine.pc]
	machine.pc++
	return b
}

func (machine *VM) next16() uint16 {
	result := uint16(machine.program[machine.pc])<<8 | uint16(machine.program[machine.pc+1])
	machine.pc += 2
	return result
}

// LoadProgram replaces the byte program and rewinds the program counter.
func (machine *VM) LoadProgram(program []byte) {
	machine.program = program
	machine.pc = 0
}

// Program returns the loaded byte program.
func (machine *VM) Program() []byte {
	return machine.program
}

// PC returns the current program counter.
func (machine *VM) PC() int {
	return machine.pc
}

// Registers returns a copy of the register file.
func (machine *VM) Registers() [RegisterCount]int32 {
	return machine.registers
}

// SetRegister stores value in the given register.
func (machine *VM) SetRegister(register int, value int32) {
	machine.registers[register] = value
}

// ClearRegisters zeroes the register file.
func (machine *VM) ClearRegisters() {
	machine.registers = [RegisterCount]int32{}
}

// Reset drops the program, heap and registers, returning the machine to its
// freshly created state.
func (machine *VM) Reset() {
	*machine = VM{}
}

// HeapSize returns the number of heap bytes allocated so far.
func (machine *VM) HeapSize() int {
	return len(machine.heap)
}
