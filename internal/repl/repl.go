// Package repl is the interactive front end: a line loop that scans and
// parses every input, echoing the syntax tree or the parse diagnostic, plus
// dot-commands for inspecting the register machine and the session.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/brooklang/brook/internal/ast"
	"github.com/brooklang/brook/internal/config"
	"github.com/brooklang/brook/internal/parser"
	"github.com/brooklang/brook/internal/scanner"
	"github.com/brooklang/brook/internal/token"
	"github.com/brooklang/brook/internal/vm"
)

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	tokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// REPL reads lines from in and writes everything to out. Each line parses
// with a fresh parser, so bindings do not persist between lines.
type REPL struct {
	config     *config.Config
	version    string
	in         *bufio.Scanner
	out        io.Writer
	session    string
	history    []string
	machine    *vm.VM
	showTokens bool
}

// New creates a session over the given reader and writer.
func New(cfg *config.Config, version string, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		config:     cfg,
		version:    version,
		in:         bufio.NewScanner(in),
		out:        out,
		session:    uuid.NewString(),
		machine:    vm.New(),
		showTokens: cfg.ShowTokens,
	}
}

// Run loops until the input is exhausted or the session is quit.
func (repl *REPL) Run() error {
	repl.banner()
	for {
		fmt.Fprint(repl.out, repl.styled(promptStyle, repl.config.Prompt))
		if !repl.in.Scan() {
			fmt.Fprintln(repl.out)
			return repl.in.Err()
		}
		line := strings.TrimSpace(repl.in.Text())
		if line == "" {
			continue
		}
		repl.remember(line)
		if strings.HasPrefix(line, ".") {
			if quit := repl.command(line); quit {
				return nil
			}
			continue
		}
		repl.eval(line)
	}
}

func (repl *REPL) banner() {
	heading := fmt.Sprintf("brook %s (session %s)", repl.version, repl.session)
	fmt.Fprintln(repl.out, repl.styled(bannerStyle, heading))
	fmt.Fprintln(repl.out, `Type ".help" for available commands.`)
}

// command dispatches a dot-command and reports whether the session should
// end.
func (repl *REPL) command(line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case ".quit":
		fmt.Fprintln(repl.out, "Exiting...")
		return true
	case ".help":
		repl.help()
	case ".history":
		for _, entry := range repl.history {
			fmt.Fprintln(repl.out, entry)
		}
	case ".load":
		if len(fields) != 2 {
			repl.errorf("usage: .load <path>")
			break
		}
		repl.load(fields[1])
	case ".program":
		repl.listProgram()
	case ".registers":
		repl.listRegisters()
	case ".clear":
		repl.machine.ClearRegisters()
		fmt.Fprintln(repl.out, "Registers cleared.")
	case ".reset":
		repl.machine.Reset()
		fmt.Fprintln(repl.out, "Machine reset.")
	case ".tokens":
		if len(fields) != 2 || (fields[1] != "on" && fields[1] != "off") {
			repl.errorf("usage: .tokens on|off")
			break
		}
		repl.showTokens = fields[1] == "on"
	default:
		repl.errorf("unknown command %q, try .help", fields[0])
	}
	return false
}

func (repl *REPL) help() {
	fmt.Fprint(repl.out, `Available commands:
  .help           show this list
  .history        show the session history
  .load <path>    scan and parse a source file
  .tokens on|off  echo scanned tokens before parsing
  .program        list the machine's program
  .registers      list the machine's registers
  .clear          zero the machine's registers
  .reset          drop the machine's program and registers
  .quit           end the session
`)
}

// eval scans and parses one input line.
func (repl *REPL) eval(line string) {
	tokens := scanner.Scan(line)
	if repl.showTokens {
		repl.echoTokens(tokens)
	}
	repl.parse(tokens)
}

// load scans and parses a whole source file, always echoing its tokens.
func (repl *REPL) load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		repl.errorf("unable to load %s: %v", path, err)
		return
	}
	tokens := scanner.Scan(string(data))
	repl.echoTokens(tokens)
	repl.parse(tokens)
}

// parse runs the parser over the tokens in reverse logical order, printing
// the tree of every completed statement and then the diagnostic that aborted
// the parse, if any.
func (repl *REPL) parse(tokens []*token.Token) {
	program, err := parser.New(parser.Reverse(tokens)).Parse()
	for _, stmt := range program.Statements {
		fmt.Fprintln(repl.out, repl.styled(resultStyle, ast.Sprint(stmt.Expr)))
	}
	if err != nil {
		repl.errorf("%v", err)
	}
}

func (repl *REPL) echoTokens(tokens []*token.Token) {
	for _, tok := range tokens {
		fmt.Fprintln(repl.out, repl.styled(tokenStyle, tok.String()))
	}
}

func (repl *REPL) listProgram() {
	program := repl.machine.Program()
	if len(program) == 0 {
		fmt.Fprintln(repl.out, "(no program loaded)")
		return
	}
	for i := 0; i < len(program); i += 4 {
		end := i + 4
		if end > len(program) {
			end = len(program)
		}
		operands := make([]string, 0, 3)
		for _, b := range program[i+1 : end] {
			operands = append(operands, strconv.Itoa(int(b)))
		}
		fmt.Fprintf(repl.out, "%04d  %-4s %s\n", i, vm.Decode(program[i]), strings.Join(operands, " "))
	}
}

func (repl *REPL) listRegisters() {
	registers := repl.machine.Registers()
	for i := 0; i < len(registers); i += 8 {
		row := make([]string, 0, 8)
		for j := i; j < i+8; j++ {
			row = append(row, fmt.Sprintf("r%02d=%d", j, registers[j]))
		}
		fmt.Fprintln(repl.out, strings.Join(row, " "))
	}
}

func (repl *REPL) remember(line string) {
	repl.history = append(repl.history, line)
	if limit := repl.config.HistoryLimit; limit > 0 && len(repl.history) > limit {
		repl.history = repl.history[len(repl.history)-limit:]
	}
}

func (repl *REPL) errorf(format string, args ...interface{}) {
	fmt.Fprintln(repl.out, repl.styled(errorStyle, fmt.Sprintf(format, args...)))
}

func (repl *REPL) styled(style lipgloss.Style, s string) string {
	if !repl.config.Color {
		return s
	}
	return style.Render(s)
}
