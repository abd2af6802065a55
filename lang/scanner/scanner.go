// Package scanner converts source text into a stream of lang/token.Token
// values for the parser to consume.
package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mna/rlox/lang/token"
)

// Scanner tokenizes a single source string. The zero value is not usable;
// construct one with New.
type Scanner struct {
	src []byte
	err func(line int, msg string)

	start   int // byte offset of the start of the lexeme being scanned
	current int // byte offset of the next unread byte
	line    int // current 1-based line number
	nextID  int // monotonic token id counter
}

// New returns a Scanner ready to tokenize src. errHandler is called once per
// scan error encountered; scanning always continues afterwards.
func New(src []byte, errHandler func(line int, msg string)) *Scanner {
	return &Scanner{src: src, err: errHandler, line: 1}
}

// ScanAll tokenizes the entire source and returns every token, the last of
// which is always EOF, plus any accumulated errors.
func ScanAll(src []byte) ([]token.Token, error) {
	var errs ErrorList
	s := New(src, errs.Add)

	var toks []token.Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	errs.Sort()
	return toks, errs.Err()
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.src) }

func (s *Scanner) advance() byte {
	b := s.src[s.current]
	s.current++
	return b
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

// match consumes the current byte and returns true if it equals want,
// otherwise it leaves the scanner position untouched.
func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.current] != want {
		return false
	}
	s.current++
	return true
}

// Scan returns the next token in the source, terminating with EOF once the
// source is exhausted. Unexpected characters and unterminated strings are
// reported through the error handler but never stop the scan.
func (s *Scanner) Scan() token.Token {
	s.skipWhitespaceAndComments()
	s.start = s.current

	if s.atEnd() {
		return s.emit(token.EOF)
	}

	c := s.advance()
	switch {
	case isDigit(c):
		return s.number()
	case isAlpha(c):
		return s.identifier()
	}

	switch c {
	case '(':
		return s.emit(token.LPAREN)
	case ')':
		return s.emit(token.RPAREN)
	case '{':
		return s.emit(token.LBRACE)
	case '}':
		return s.emit(token.RBRACE)
	case ',':
		return s.emit(token.COMMA)
	case '.':
		return s.emit(token.DOT)
	case '-':
		return s.emit(token.MINUS)
	case '+':
		return s.emit(token.PLUS)
	case ';':
		return s.emit(token.SEMI)
	case '*':
		return s.emit(token.STAR)
	case '?':
		return s.emit(token.QUESTION)
	case ':':
		return s.emit(token.COLON)
	case '!':
		if s.match('=') {
			return s.emit(token.BANG_EQ)
		}
		return s.emit(token.BANG)
	case '=':
		if s.match('=') {
			return s.emit(token.EQ_EQ)
		}
		return s.emit(token.EQ)
	case '<':
		if s.match('=') {
			return s.emit(token.LT_EQ)
		}
		return s.emit(token.LT)
	case '>':
		if s.match('=') {
			return s.emit(token.GT_EQ)
		}
		return s.emit(token.GT)
	case '/':
		return s.emit(token.SLASH)
	case '"':
		return s.string()
	}

	line := s.line
	s.errorAt(line, "Unexpected character: %q", c)
	return s.emit(token.ILLEGAL)
}

func (s *Scanner) errorAt(line int, format string, args ...any) {
	if s.err != nil {
		s.err(line, fmt.Sprintf(format, args...))
	}
}

func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.atEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lit := string(s.src[s.start:s.current])
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		s.errorAt(s.line, "Invalid number literal: %s", lit)
	}
	tok := s.emit(token.NUMBER)
	tok.Literal = token.Literal{IsNumber: true, Number: v}
	return tok
}

func (s *Scanner) identifier() token.Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lit := string(s.src[s.start:s.current])
	return s.emit(token.LookupIdent(lit))
}

func (s *Scanner) string() token.Token {
	startLine := s.line
	var sb strings.Builder
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		sb.WriteByte(s.advance())
	}

	if s.atEnd() {
		s.errorAt(startLine, "Unterminated string")
		tok := s.emit(token.ILLEGAL)
		tok.Line = startLine
		return tok
	}

	s.advance() // closing quote
	tok := s.emit(token.STRING)
	tok.Line = startLine
	tok.Literal = token.Literal{IsString: true, Str: sb.String()}
	return tok
}

func (s *Scanner) emit(kind token.Kind) token.Token {
	id := s.nextID
	s.nextID++
	return token.Token{
		Kind:   kind,
		Lexeme: string(s.src[s.start:s.current]),
		Line:   s.line,
		ID:     id,
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
