package lexer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nukilabs/unicodeid"
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-esparse/token"
)

const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
	byteOrderMark      = '\uFEFF'
)

// Error is a lexing failure at the position where it was detected.
type Error struct {
	Message string
	Pos     Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, col %d", e.Message, e.Pos.Line, e.Pos.Col)
}

// Lookup tables for ASCII identifier characters.
// Non-ASCII bytes (>= 128) are always false, branching to the Unicode path.
var asciiStart, asciiContinue [256]bool

func init() {
	for i := 0; i < 128; i++ {
		if i >= 'a' && i <= 'z' || i >= 'A' && i <= 'Z' || i == '$' || i == '_' {
			asciiStart[i] = true
			asciiContinue[i] = true
		}
		if i >= '0' && i <= '9' {
			asciiContinue[i] = true
		}
	}
}

// Fast path for checking "start" of an identifier.
func isIdentifierStart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return asciiStart[chr]
	}
	return unicodeid.IsIDStartUnicode(chr)
}

// Fast path for checking "continuation" of an identifier.
func isIdentifierPart(chr rune) bool {
	if chr < utf8.RuneSelf {
		return asciiContinue[chr]
	}
	return unicodeid.IsIDContinueUnicode(chr)
}

// IsIdentifierName reports whether s is lexically a complete identifier
// name. Reserved words qualify; they are valid property keys.
func IsIdentifierName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if !isIdentifierStart(r) {
				return false
			}
		} else if !isIdentifierPart(r) {
			return false
		}
	}
	return true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func digitValue(chr rune) int {
	switch {
	case '0' <= chr && chr <= '9':
		return int(chr - '0')
	case 'a' <= chr && chr <= 'f':
		return int(chr - 'a' + 10)
	case 'A' <= chr && chr <= 'F':
		return int(chr - 'A' + 10)
	}
	return 16
}

// Lexer scans JavaScript source text into tokens. Once the input is
// exhausted it returns Eof tokens forever.
type Lexer struct {
	src string
	pos int

	line      int
	lineStart int

	regexAllowed bool
	sawNewline   bool
}

func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, regexAllowed: true}
}

// SetGoal forces how the next `/` in the input is scanned. The lexer
// rederives the goal from every token it produces, so a forced goal only
// covers the immediately following token.
func (l *Lexer) SetGoal(goal Goal) {
	l.regexAllowed = goal == GoalRegExp
}

// position is the position of the next unread byte.
func (l *Lexer) position() Position {
	return Position{Line: l.line, Col: l.pos - l.lineStart + 1}
}

// bumpLine records a line terminator for position bookkeeping only.
func (l *Lexer) bumpLine() {
	l.line++
	l.lineStart = l.pos
}

// newline records a line terminator between tokens.
func (l *Lexer) newline() {
	l.bumpLine()
	l.sawNewline = true
}

func (l *Lexer) errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Pos: l.position()}
}

// Next scans and returns the next token. A non-nil error reports a
// malformed lexeme; the accompanying token is Illegal and marks where the
// failure was detected.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipSpace(); err != nil {
		return Token{Kind: token.Illegal, Pos: err.Pos, OnNewLine: l.sawNewline}, err
	}

	tok := Token{Pos: l.position(), OnNewLine: l.sawNewline}
	l.sawNewline = false

	if l.pos >= len(l.src) {
		tok.Kind = token.Eof
		tok.EndPos = tok.Pos
		return tok, nil
	}

	var err *Error
	switch b := l.src[l.pos]; {
	case asciiStart[b]:
		l.scanIdentifier(&tok)
	case isDigit(b):
		err = l.scanNumber(&tok)
	case b == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]):
		err = l.scanNumber(&tok)
	case b == '"' || b == '\'':
		err = l.scanString(&tok)
	case b >= utf8.RuneSelf:
		r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
		if unicodeid.IsIDStartUnicode(r) {
			l.scanIdentifier(&tok)
		} else {
			err = l.errorf("unexpected character %q", r)
		}
	default:
		err = l.scanPunctuator(&tok)
	}

	if err != nil {
		tok.Kind = token.Illegal
		tok.EndPos = l.position()
		return tok, err
	}

	tok.EndPos = l.position()
	l.regexAllowed = regexAllowedAfter(tok.Kind)
	return tok, nil
}

// regexAllowedAfter rederives the lexical goal from the token just
// produced: after a value a `/` divides, elsewhere it opens a regular
// expression literal.
func regexAllowedAfter(kind token.Token) bool {
	switch kind {
	case token.Identifier, token.Number, token.String, token.RegExp,
		token.Boolean, token.Null, token.This, token.Super,
		token.RightParenthesis, token.RightBracket,
		token.Increment, token.Decrement:
		return false
	}
	return true
}

func (l *Lexer) skipSpace() *Error {
	for l.pos < len(l.src) {
		switch b := l.src[l.pos]; {
		case b == ' ' || b == '\t' || b == '\v' || b == '\f':
			l.pos++
		case b == '\n':
			l.pos++
			l.newline()
		case b == '\r':
			l.pos++
			if l.pos < len(l.src) && l.src[l.pos] == '\n' {
				l.pos++
			}
			l.newline()
		case b == '/':
			if l.pos+1 < len(l.src) {
				switch l.src[l.pos+1] {
				case '/':
					l.skipLineComment()
					continue
				case '*':
					if err := l.skipBlockComment(); err != nil {
						return err
					}
					continue
				}
			}
			return nil
		case b >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			switch {
			case r == lineSeparator || r == paragraphSeparator:
				l.pos += size
				l.newline()
			case r == byteOrderMark || unicode.IsSpace(r):
				l.pos += size
			default:
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) skipLineComment() {
	l.pos += 2
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if b == '\n' || b == '\r' {
			return
		}
		if b >= utf8.RuneSelf {
			if r, _ := utf8.DecodeRuneInString(l.src[l.pos:]); r == lineSeparator || r == paragraphSeparator {
				return
			}
		}
		l.pos++
	}
}

func (l *Lexer) skipBlockComment() *Error {
	l.pos += 2
	for l.pos < len(l.src) {
		switch b := l.src[l.pos]; {
		case b == '*' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			l.pos += 2
			return nil
		case b == '\n':
			l.pos++
			l.newline()
		case b == '\r':
			l.pos++
			if l.pos < len(l.src) && l.src[l.pos] == '\n' {
				l.pos++
			}
			l.newline()
		case b >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			l.pos += size
			if r == lineSeparator || r == paragraphSeparator {
				l.newline()
			}
		default:
			l.pos++
		}
	}
	return l.errorf("unterminated comment")
}

func (l *Lexer) scanIdentifier(tok *Token) {
	start := l.pos
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if asciiContinue[b] {
			l.pos++
			continue
		}
		if b < utf8.RuneSelf {
			break
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicodeid.IsIDContinueUnicode(r) {
			break
		}
		l.pos += size
	}
	name := l.src[start:l.pos]
	tok.Literal = name
	if kind, _ := token.LiteralKeyword(name); kind != 0 {
		tok.Kind = kind
	} else {
		tok.Kind = token.Identifier
	}
}

func (l *Lexer) scanNumber(tok *Token) *Error {
	start := l.pos
	if l.src[l.pos] == '0' && l.pos+1 < len(l.src) {
		switch l.src[l.pos+1] {
		case 'x', 'X':
			return l.scanRadix(tok, start, 16)
		case 'o', 'O':
			return l.scanRadix(tok, start, 8)
		case 'b', 'B':
			return l.scanRadix(tok, start, 2)
		}
	}
	for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '.' {
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
			l.pos++
		}
		if l.pos >= len(l.src) || !isDigit(l.src[l.pos]) {
			return l.errorf("malformed numeric literal")
		}
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	return l.finishNumber(tok, start)
}

func (l *Lexer) scanRadix(tok *Token, start, radix int) *Error {
	l.pos += 2
	begin := l.pos
	for l.pos < len(l.src) && digitValue(rune(l.src[l.pos])) < radix {
		l.pos++
	}
	if l.pos == begin {
		return l.errorf("malformed numeric literal")
	}
	return l.finishNumber(tok, start)
}

func (l *Lexer) finishNumber(tok *Token, start int) *Error {
	if l.pos < len(l.src) {
		b := l.src[l.pos]
		if asciiContinue[b] {
			return l.errorf("identifier starts immediately after numeric literal")
		}
		if b >= utf8.RuneSelf {
			if r, _ := utf8.DecodeRuneInString(l.src[l.pos:]); unicodeid.IsIDStartUnicode(r) {
				return l.errorf("identifier starts immediately after numeric literal")
			}
		}
	}
	tok.Kind = token.Number
	tok.Literal = l.src[start:l.pos]
	return nil
}

func (l *Lexer) scanString(tok *Token) *Error {
	delim := l.src[l.pos]
	l.pos++
	table := []byte{delim, '\r', '\n', '\\'}

	var sb strings.Builder
	for {
		if l.pos >= len(l.src) {
			return l.errorf("unterminated string literal")
		}
		b := l.src[l.pos]
		if !slices.Contains(table, b) {
			sb.WriteByte(b)
			l.pos++
			continue
		}
		switch b {
		case delim:
			l.pos++
			tok.Kind = token.String
			tok.Literal = sb.String()
			return nil
		case '\\':
			if err := l.scanEscape(&sb); err != nil {
				return err
			}
		default:
			return l.errorf("unterminated string literal")
		}
	}
}

func (l *Lexer) scanEscape(sb *strings.Builder) *Error {
	l.pos++ // backslash
	if l.pos >= len(l.src) {
		return l.errorf("unterminated string literal")
	}
	switch b := l.src[l.pos]; b {
	case 'n':
		sb.WriteByte('\n')
		l.pos++
	case 't':
		sb.WriteByte('\t')
		l.pos++
	case 'r':
		sb.WriteByte('\r')
		l.pos++
	case 'b':
		sb.WriteByte('\b')
		l.pos++
	case 'f':
		sb.WriteByte('\f')
		l.pos++
	case 'v':
		sb.WriteByte('\v')
		l.pos++
	case '0':
		if l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
			return l.errorf("octal escape sequences are not allowed")
		}
		sb.WriteByte(0)
		l.pos++
	case '1', '2', '3', '4', '5', '6', '7':
		return l.errorf("octal escape sequences are not allowed")
	case 'x':
		l.pos++
		v, ok := l.scanHexValue(2)
		if !ok {
			return l.errorf("invalid hexadecimal escape sequence")
		}
		sb.WriteRune(v)
	case 'u':
		l.pos++
		v, err := l.scanUnicodeEscape()
		if err != nil {
			return err
		}
		sb.WriteRune(v)
	case '\n':
		l.pos++
		l.bumpLine()
	case '\r':
		l.pos++
		if l.pos < len(l.src) && l.src[l.pos] == '\n' {
			l.pos++
		}
		l.bumpLine()
	default:
		if b < utf8.RuneSelf {
			sb.WriteByte(b)
			l.pos++
			break
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		l.pos += size
		if r != lineSeparator && r != paragraphSeparator {
			sb.WriteRune(r)
		}
	}
	return nil
}

func (l *Lexer) scanHexValue(n int) (rune, bool) {
	var v rune
	for i := 0; i < n; i++ {
		if l.pos >= len(l.src) {
			return 0, false
		}
		d := digitValue(rune(l.src[l.pos]))
		if d >= 16 {
			return 0, false
		}
		v = v*16 + rune(d)
		l.pos++
	}
	return v, true
}

func (l *Lexer) scanUnicodeEscape() (rune, *Error) {
	if l.pos < len(l.src) && l.src[l.pos] == '{' {
		l.pos++
		begin := l.pos
		var v rune
		for l.pos < len(l.src) && l.src[l.pos] != '}' {
			d := digitValue(rune(l.src[l.pos]))
			if d >= 16 || v > unicode.MaxRune {
				return 0, l.errorf("invalid Unicode escape sequence")
			}
			v = v*16 + rune(d)
			l.pos++
		}
		if l.pos == begin || l.pos >= len(l.src) || v > unicode.MaxRune {
			return 0, l.errorf("invalid Unicode escape sequence")
		}
		l.pos++ // closing brace
		return v, nil
	}
	v, ok := l.scanHexValue(4)
	if !ok {
		return 0, l.errorf("invalid Unicode escape sequence")
	}
	return v, nil
}

func (l *Lexer) scanRegExp(tok *Token) *Error {
	start := l.pos
	l.pos++ // leading slash
	inClass := false
	for {
		if l.pos >= len(l.src) {
			return l.errorf("unterminated regular expression literal")
		}
		switch b := l.src[l.pos]; {
		case b == '\\':
			l.pos++
			if l.pos >= len(l.src) || l.src[l.pos] == '\n' || l.src[l.pos] == '\r' {
				return l.errorf("unterminated regular expression literal")
			}
			l.pos++
		case b == '[':
			inClass = true
			l.pos++
		case b == ']':
			inClass = false
			l.pos++
		case b == '/' && !inClass:
			l.pos++
			l.scanRegExpFlags()
			tok.Kind = token.RegExp
			tok.Literal = l.src[start:l.pos]
			return nil
		case b == '\n' || b == '\r':
			return l.errorf("unterminated regular expression literal")
		case b >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if r == lineSeparator || r == paragraphSeparator {
				return l.errorf("unterminated regular expression literal")
			}
			l.pos += size
		default:
			l.pos++
		}
	}
}

func (l *Lexer) scanRegExpFlags() {
	for l.pos < len(l.src) {
		b := l.src[l.pos]
		if asciiContinue[b] {
			l.pos++
			continue
		}
		if b < utf8.RuneSelf {
			return
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicodeid.IsIDContinueUnicode(r) {
			return
		}
		l.pos += size
	}
}

func (l *Lexer) scanPunctuator(tok *Token) *Error {
	next := func(b byte) bool {
		if l.pos < len(l.src) && l.src[l.pos] == b {
			l.pos++
			return true
		}
		return false
	}

	b := l.src[l.pos]
	l.pos++
	switch b {
	case '(':
		tok.Kind = token.LeftParenthesis
	case ')':
		tok.Kind = token.RightParenthesis
	case '[':
		tok.Kind = token.LeftBracket
	case ']':
		tok.Kind = token.RightBracket
	case '{':
		tok.Kind = token.LeftBrace
	case '}':
		tok.Kind = token.RightBrace
	case ',':
		tok.Kind = token.Comma
	case ';':
		tok.Kind = token.Semicolon
	case ':':
		tok.Kind = token.Colon
	case '?':
		tok.Kind = token.QuestionMark
	case '~':
		tok.Kind = token.BitwiseNot
	case '.':
		if l.pos+1 < len(l.src) && l.src[l.pos] == '.' && l.src[l.pos+1] == '.' {
			l.pos += 2
			tok.Kind = token.Ellipsis
		} else {
			tok.Kind = token.Period
		}
	case '+':
		switch {
		case next('+'):
			tok.Kind = token.Increment
		case next('='):
			tok.Kind = token.AddAssign
		default:
			tok.Kind = token.Plus
		}
	case '-':
		switch {
		case next('-'):
			tok.Kind = token.Decrement
		case next('='):
			tok.Kind = token.SubtractAssign
		default:
			tok.Kind = token.Minus
		}
	case '*':
		switch {
		case next('*'):
			if next('=') {
				tok.Kind = token.ExponentAssign
			} else {
				tok.Kind = token.Exponent
			}
		case next('='):
			tok.Kind = token.MultiplyAssign
		default:
			tok.Kind = token.Multiply
		}
	case '/':
		if l.regexAllowed {
			l.pos--
			return l.scanRegExp(tok)
		}
		if next('=') {
			tok.Kind = token.QuotientAssign
		} else {
			tok.Kind = token.Slash
		}
	case '%':
		if next('=') {
			tok.Kind = token.RemainderAssign
		} else {
			tok.Kind = token.Remainder
		}
	case '&':
		switch {
		case next('&'):
			tok.Kind = token.LogicalAnd
		case next('='):
			tok.Kind = token.AndAssign
		default:
			tok.Kind = token.And
		}
	case '|':
		switch {
		case next('|'):
			tok.Kind = token.LogicalOr
		case next('='):
			tok.Kind = token.OrAssign
		default:
			tok.Kind = token.Or
		}
	case '^':
		if next('=') {
			tok.Kind = token.ExclusiveOrAssign
		} else {
			tok.Kind = token.ExclusiveOr
		}
	case '<':
		switch {
		case next('<'):
			if next('=') {
				tok.Kind = token.ShiftLeftAssign
			} else {
				tok.Kind = token.ShiftLeft
			}
		case next('='):
			tok.Kind = token.LessOrEqual
		default:
			tok.Kind = token.Less
		}
	case '>':
		switch {
		case next('>'):
			switch {
			case next('>'):
				if next('=') {
					tok.Kind = token.UnsignedShiftRightAssign
				} else {
					tok.Kind = token.UnsignedShiftRight
				}
			case next('='):
				tok.Kind = token.ShiftRightAssign
			default:
				tok.Kind = token.ShiftRight
			}
		case next('='):
			tok.Kind = token.GreaterOrEqual
		default:
			tok.Kind = token.Greater
		}
	case '=':
		switch {
		case next('='):
			if next('=') {
				tok.Kind = token.StrictEqual
			} else {
				tok.Kind = token.Equal
			}
		case next('>'):
			tok.Kind = token.Arrow
		default:
			tok.Kind = token.Assign
		}
	case '!':
		if next('=') {
			if next('=') {
				tok.Kind = token.StrictNotEqual
			} else {
				tok.Kind = token.NotEqual
			}
		} else {
			tok.Kind = token.Not
		}
	default:
		l.pos--
		return l.errorf("unexpected character %q", rune(b))
	}
	return nil
}
