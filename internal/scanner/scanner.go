package scanner

import (
	"strconv"
	"unicode"

	"github.com/brooklang/brook/internal/token"
)

// Scanner reads the input source and collects all the tokens that can be
// found. Lexical errors do not stop the scan; the offending characters are
// kept as ILLEGAL tokens for the parser to reject.
type Scanner struct {
	line    int
	start   int
	current int
	source  []rune
	tokens  []*token.Token
}

// New creates a scanner over the given source text.
func New(source string) *Scanner {
	scanner := new(Scanner)
	scanner.line = 0
	scanner.source = []rune(source)
	scanner.tokens = make([]*token.Token, 0)
	return scanner
}

// Scan reads the source and collects every token found, terminated by an EOF
// token.
func (scanner *Scanner) Scan() []*token.Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); r {
		// Whitespaces
		case ' ', '\r', '\t':
		case '\n':
			scanner.line++
		// Single character tokens
		case '(':
			scanner.addToken(token.L_PAREN, nil)
		case ')':
			scanner.addToken(token.R_PAREN, nil)
		case '{':
			scanner.addToken(token.L_BRACE, nil)
		case '}':
			scanner.addToken(token.R_BRACE, nil)
		case ',':
			scanner.addToken(token.COMMA, nil)
		case ';':
			scanner.addToken(token.SEMICOLON, nil)
		case ':':
			scanner.addToken(token.COLON, nil)
		case '+':
			scanner.addToken(token.PLUS, nil)
		case '-':
			scanner.addToken(token.MINUS, nil)
		case '*':
			scanner.addToken(token.STAR, nil)
		case '^':
			scanner.addToken(token.CARET, nil)
		case '%':
			scanner.addToken(token.PERCENT, nil)
		// Double character tokens
		case '.':
			if scanner.match('.') {
				scanner.addToken(token.DOT_DOT, nil)
			} else {
				scanner.addToken(token.DOT, nil)
			}
		case '|':
			if scanner.match('|') {
				scanner.addToken(token.PIPE_PIPE, nil)
			} else {
				scanner.addToken(token.PIPE, nil)
			}
		case '&':
			if scanner.match('&') {
				scanner.addToken(token.AMP_AMP, nil)
			} else {
				scanner.addToken(token.AMPERSAND, nil)
			}
		case '=':
			if scanner.match('=') {
				scanner.addToken(token.EQUAL_EQUAL, nil)
			} else {
				scanner.addToken(token.ASSIGN, nil)
			}
		case '!':
			if scanner.match('=') {
				scanner.addToken(token.BANG_EQUAL, nil)
			} else {
				scanner.addToken(token.BANG, nil)
			}
		case '<':
			if scanner.match('=') {
				scanner.addToken(token.LESS_EQUAL, nil)
			} else if scanner.match('<') {
				scanner.addToken(token.SHIFT_LEFT, nil)
			} else {
				scanner.addToken(token.LESS, nil)
			}
		case '>':
			if scanner.match('=') {
				scanner.addToken(token.GREATER_EQUAL, nil)
			} else if scanner.match('>') {
				scanner.addToken(token.SHIFT_RIGHT, nil)
			} else {
				scanner.addToken(token.GREATER, nil)
			}
		// Long lexemes
		case '/':
			if scanner.match('/') {
				// consume the comment, but keep the \n at the end of line so
				// line counting can work correctly
				for scanner.peek() != '\n' && scanner.hasNext() {
					scanner.advance()
				}
			} else {
				scanner.addToken(token.SLASH, nil)
			}
		case '"':
			scanner.scanString()
		default:
			if unicode.IsDigit(r) {
				scanner.scanNumber()
			} else if isBeginIdent(r) {
				scanner.scanIdentifier()
			} else {
				scanner.addToken(token.ILLEGAL, nil)
			}
		}
	}
	scanner.tokens = append(
		scanner.tokens,
		token.New(token.EOF, "", nil, scanner.line),
	)
	return scanner.tokens
}

func (scanner *Scanner) scanString() {
	// read until EOF or found a matching '"' --> our string includes \n
	for scanner.peek() != '"' && scanner.hasNext() {
		if scanner.peek() == '\n' {
			scanner.line++
		}
		scanner.advance()
	}

	if scanner.hasNext() {
		// consume '"'
		scanner.advance()
		// content between '"' pair; there are no escape sequences
		literal := string(scanner.source[scanner.start+1 : scanner.current-1])
		scanner.addToken(token.STRING_LIT, literal)
	} else {
		scanner.addToken(token.ILLEGAL, nil)
	}
}

func (scanner *Scanner) scanNumber() {
	// go through continuous digits
	for unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	// a '.' directly after the integer part switches to floating point, with
	// or without fractional digits
	if scanner.peek() == '.' {
		scanner.advance()
		for unicode.IsDigit(scanner.peek()) {
			scanner.advance()
		}
		lexeme := string(scanner.source[scanner.start:scanner.current])
		literal, _ := strconv.ParseFloat(lexeme, 64)
		scanner.addToken(token.FLOAT_LIT, literal)
		return
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	literal, _ := strconv.ParseInt(lexeme, 10, 64)
	scanner.addToken(token.INTEGER_LIT, literal)
}

func (scanner *Scanner) scanIdentifier() {
	for isAlphanumeric(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	typ := token.Lookup(lexeme)
	if typ == token.BOOL_LIT {
		scanner.addToken(typ, lexeme == "true")
	} else {
		scanner.addToken(typ, nil)
	}
}

// addToken appends the lexeme from `start` to `current` as a token of the
// given type carrying the given literal
func (scanner *Scanner) addToken(typ token.Type, literal interface{}) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := token.New(typ, lexeme, literal, scanner.line)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read past the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current position is equal to the given
// rune, and consumes it when they are equal.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isAlphanumeric(r rune) bool {
	return isBeginIdent(r) || unicode.IsDigit(r)
}

// Scan tokenizes the whole source in one call.
func Scan(source string) []*token.Token {
	return New(source).Scan()
}
