// Copyright 2026 The jsonkit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package json

// This file implements the character-driven tokenizer: a 28-state FSM
// encoded as a table of state-handler functions indexed by a small
// integer, a stateFn machine pulled one token at a time instead of
// fed through a channel (a JSON lexer needs only one character of
// lookahead, so multi-token buffering would be unused machinery).

// stateFn is one FSM state. It consumes characters from l via next/
// peek/unread until it can either designate the next state, or flush
// the accumulated buffer and yield a token.
type stateFn func(l *Lexer) (next int, yield bool)

// State indices, numbered 1..28 per spec §3/§4.1. 0 is never a valid
// table index: a handler returns it to stop the machine, at end of
// input or after an error.
const (
	stGround = 1 + iota
	stNumSign
	stNumZero
	stNumDigits
	stNumDotStart
	stNumFrac
	stNumExpSign
	stNumExpDigits
	stTrueR
	stTrueU
	stTrueE
	stFalseA
	stFalseL
	stFalseS
	stFalseE
	stNullU
	stNullL1
	stNullL2
	stDQBody
	stDQCloseQuote
	stDQEscape
	stDQUnicode
	stSQBody
	stSQCloseQuote
	stSlashDispatch
	stLineComment
	stBlockComment
	stBlockCommentStar
)

const numStates = stBlockCommentStar + 1

var stateTable [numStates]stateFn

func init() {
	stateTable[stGround] = lexGround
	stateTable[stNumSign] = lexNumSign
	stateTable[stNumZero] = lexNumZero
	stateTable[stNumDigits] = lexNumDigits
	stateTable[stNumDotStart] = lexNumDotStart
	stateTable[stNumFrac] = lexNumFrac
	stateTable[stNumExpSign] = lexNumExpSign
	stateTable[stNumExpDigits] = lexNumExpDigits
	stateTable[stTrueR] = lexLiteralChar('r', stTrueU)
	stateTable[stTrueU] = lexLiteralChar('u', stTrueE)
	stateTable[stTrueE] = lexLiteralCharYield('e', codeTrue)
	stateTable[stFalseA] = lexLiteralChar('a', stFalseL)
	stateTable[stFalseL] = lexLiteralChar('l', stFalseS)
	stateTable[stFalseS] = lexLiteralChar('s', stFalseE)
	stateTable[stFalseE] = lexLiteralCharYield('e', codeFalse)
	stateTable[stNullU] = lexLiteralChar('u', stNullL1)
	stateTable[stNullL1] = lexLiteralChar('l', stNullL2)
	stateTable[stNullL2] = lexLiteralCharYield('l', codeNull)
	stateTable[stDQBody] = lexQuotedBody
	stateTable[stDQCloseQuote] = lexCloseQuote
	stateTable[stDQEscape] = lexEscape
	stateTable[stDQUnicode] = lexUnicodeEscape
	stateTable[stSQBody] = lexQuotedBody
	stateTable[stSQCloseQuote] = lexCloseQuote
	stateTable[stSlashDispatch] = lexSlashDispatch
	stateTable[stLineComment] = lexLineComment
	stateTable[stBlockComment] = lexBlockComment
	stateTable[stBlockCommentStar] = lexBlockCommentStar
}

// Lexer scans a CharSource into a stream of JSON lexemes. A single
// one-character pushback slot is all the grammar ever needs, since
// every terminal is decided by exactly one character of lookahead.
type Lexer struct {
	src     CharSource
	offset  int
	hasBack bool
	back    rune

	state int
	buf   []rune

	quote        rune // the quote character of the string currently being scanned
	escapeReturn int  // state to resume to once an escape sequence completes
	unicodeAccum rune
	unicodeLeft  int

	token code
	value string
	err   error
	done  bool

	// AllowComments enables the `// line` and `/* block */` input
	// extensions. Default true.
	AllowComments bool
	// AllowSingleQuotedStrings enables single-quoted string literals
	// on input. Default true.
	AllowSingleQuotedStrings bool
}

// NewLexer returns a Lexer reading from an arbitrary CharSource.
func NewLexer(src CharSource) *Lexer {
	return &Lexer{
		src:                      src,
		state:                    stGround,
		AllowComments:            true,
		AllowSingleQuotedStrings: true,
	}
}

// NewLexerString returns a Lexer scanning s.
func NewLexerString(s string) *Lexer {
	return NewLexer(newStringSource(s))
}

// Token returns the terminal published by the most recent successful
// call to Next.
func (l *Lexer) Token() code { return l.token }

// StringValue returns the accumulated text of the most recent token:
// the unescaped contents of a string, or the literal digits of a
// number, keyword text, or single-character punctuation.
func (l *Lexer) StringValue() string { return l.value }

// EndOfInput reports whether the source has been fully consumed.
func (l *Lexer) EndOfInput() bool { return l.done }

// Err returns the first lexical error encountered, if any.
func (l *Lexer) Err() error { return l.err }

// Next advances the lexer to the next token. It returns false at end
// of input or on error; callers distinguish the two via Err.
func (l *Lexer) Next() bool {
	if l.err != nil {
		return false
	}
	l.buf = l.buf[:0]
	for {
		fn := stateTable[l.state]
		next, yield := fn(l)
		if l.err != nil {
			return false
		}
		if next == 0 {
			l.done = true
			return false
		}
		l.state = next
		if yield {
			return true
		}
	}
}

// --- character primitives ---

func (l *Lexer) next() rune {
	if l.hasBack {
		l.hasBack = false
		return l.back
	}
	r := l.src.ReadChar()
	if r != eof {
		l.offset++
	}
	return r
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.unread(r)
	return r
}

// unread restores r as the next character Next will see. Only one
// character may be pending at a time, matching the grammar's LL(1)
// lookahead requirement.
func (l *Lexer) unread(r rune) {
	l.back = r
	l.hasBack = true
}

func (l *Lexer) appendRune(r rune) { l.buf = append(l.buf, r) }

func (l *Lexer) fail(err error) (int, bool) {
	l.err = err
	return 0, false
}

// finish flushes the accumulated buffer as token kind c and requests
// a yield back to Next's caller.
func (l *Lexer) finish(c code) (int, bool) {
	l.token = c
	l.value = string(l.buf)
	return stGround, true
}

// finishChar finishes a single-character structural token. Per spec
// §4.1 the return-table entry for these states is a CHAR sentinel
// substituted with the literal character; representing the token
// itself as code(r) is that substitution.
func (l *Lexer) finishChar(r rune) (int, bool) {
	l.token = code(r)
	l.value = string(r)
	return stGround, true
}

func isWhitespace(r rune) bool {
	return r == ' ' || (r >= '\t' && r <= '\r')
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHex(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexVal(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - 'A' + 10
	}
}

// --- state 1: top-level dispatch ---

func lexGround(l *Lexer) (int, bool) {
	for {
		c := l.next()
		switch {
		case c == eof:
			return 0, false
		case isWhitespace(c):
			continue
		case c == '{', c == '}', c == '[', c == ']', c == ',', c == ':':
			return l.finishChar(c)
		case c == '-':
			l.appendRune(c)
			return stNumSign, false
		case c == '0':
			l.appendRune(c)
			return stNumZero, false
		case c >= '1' && c <= '9':
			l.appendRune(c)
			return stNumDigits, false
		case c == '"':
			l.quote = '"'
			return stDQBody, false
		case c == '\'':
			if !l.AllowSingleQuotedStrings {
				return l.fail(newLexError(l.offset, c))
			}
			l.quote = '\''
			return stSQBody, false
		case c == 't':
			l.appendRune(c)
			return stTrueR, false
		case c == 'f':
			l.appendRune(c)
			return stFalseA, false
		case c == 'n':
			l.appendRune(c)
			return stNullU, false
		case c == '/':
			if !l.AllowComments {
				return l.fail(newLexError(l.offset, c))
			}
			return stSlashDispatch, false
		default:
			return l.fail(newLexError(l.offset, c))
		}
	}
}

// --- states 2-8: number recognition ---

func lexNumSign(l *Lexer) (int, bool) {
	c := l.next()
	switch {
	case c == '0':
		l.appendRune(c)
		return stNumZero, false
	case c >= '1' && c <= '9':
		l.appendRune(c)
		return stNumDigits, false
	default:
		return l.fail(newLexError(l.offset, c))
	}
}

func lexNumZero(l *Lexer) (int, bool) {
	return lexNumAfterDigits(l)
}

func lexNumDigits(l *Lexer) (int, bool) {
	for {
		c := l.peek()
		if !isDigit(c) {
			return lexNumAfterDigits(l)
		}
		l.next()
		l.appendRune(c)
	}
}

// lexNumAfterDigits decides what follows a complete integer part:
// a fraction, an exponent, or the end of the lexeme.
func lexNumAfterDigits(l *Lexer) (int, bool) {
	switch l.peek() {
	case '.':
		l.next()
		l.appendRune('.')
		return stNumDotStart, false
	case 'e', 'E':
		c := l.next()
		l.appendRune(c)
		return stNumExpSign, false
	default:
		return l.finish(codeNumber)
	}
}

func lexNumDotStart(l *Lexer) (int, bool) {
	c := l.next()
	if !isDigit(c) {
		return l.fail(newLexError(l.offset, c))
	}
	l.appendRune(c)
	return stNumFrac, false
}

func lexNumFrac(l *Lexer) (int, bool) {
	for {
		c := l.peek()
		if !isDigit(c) {
			break
		}
		l.next()
		l.appendRune(c)
	}
	switch l.peek() {
	case 'e', 'E':
		c := l.next()
		l.appendRune(c)
		return stNumExpSign, false
	default:
		return l.finish(codeNumber)
	}
}

func lexNumExpSign(l *Lexer) (int, bool) {
	c := l.peek()
	if c == '+' || c == '-' {
		l.next()
		l.appendRune(c)
		c = l.next()
	} else {
		c = l.next()
	}
	if !isDigit(c) {
		return l.fail(newLexError(l.offset, c))
	}
	l.appendRune(c)
	return stNumExpDigits, false
}

func lexNumExpDigits(l *Lexer) (int, bool) {
	for {
		c := l.peek()
		if !isDigit(c) {
			return l.finish(codeNumber)
		}
		l.next()
		l.appendRune(c)
	}
}

// --- states 9-18: keyword literals ---

// lexLiteralChar returns a stateFn requiring the next character to be
// want, appending it and moving to next on success.
func lexLiteralChar(want rune, next int) stateFn {
	return func(l *Lexer) (int, bool) {
		c := l.next()
		if c != want {
			return l.fail(newLexError(l.offset, c))
		}
		l.appendRune(c)
		return next, false
	}
}

// lexLiteralCharYield is like lexLiteralChar but the matched character
// completes the keyword, so it finishes the token instead of moving on.
func lexLiteralCharYield(want rune, tok code) stateFn {
	return func(l *Lexer) (int, bool) {
		c := l.next()
		if c != want {
			return l.fail(newLexError(l.offset, c))
		}
		l.appendRune(c)
		return l.finish(tok)
	}
}

// --- states 19-22: double-quoted strings, and the escape states
// shared with single-quoted strings (23-24) via escapeReturn ---

func lexQuotedBody(l *Lexer) (int, bool) {
	for {
		c := l.next()
		switch {
		case c == eof:
			return l.fail(newLexErrorf(l.offset, "unterminated string"))
		case c == l.quote:
			if l.quote == '"' {
				return stDQCloseQuote, false
			}
			return stSQCloseQuote, false
		case c == '\\':
			if l.quote == '"' {
				l.escapeReturn = stDQBody
			} else {
				l.escapeReturn = stSQBody
			}
			return stDQEscape, false
		default:
			l.appendRune(c)
		}
	}
}

func lexCloseQuote(l *Lexer) (int, bool) {
	return l.finish(codeString)
}

func lexEscape(l *Lexer) (int, bool) {
	c := l.next()
	switch c {
	case eof:
		return l.fail(newLexErrorf(l.offset, "unterminated escape sequence"))
	case 'n':
		l.appendRune('\n')
	case 't':
		l.appendRune('\t')
	case 'r':
		l.appendRune('\r')
	case 'f':
		l.appendRune('\f')
	case 'b':
		l.appendRune('\b')
	case '"':
		l.appendRune('"')
	case '\'':
		l.appendRune('\'')
	case '\\':
		l.appendRune('\\')
	case '/':
		l.appendRune('/')
	case 'u':
		l.unicodeAccum = 0
		l.unicodeLeft = 4
		return stDQUnicode, false
	default:
		return l.fail(newLexErrorf(l.offset, "invalid escape sequence \\%c", c))
	}
	return l.escapeReturn, false
}

func lexUnicodeEscape(l *Lexer) (int, bool) {
	for l.unicodeLeft > 0 {
		c := l.next()
		if !isHex(c) {
			return l.fail(newLexErrorf(l.offset, "malformed \\u escape"))
		}
		l.unicodeAccum = l.unicodeAccum<<4 | hexVal(c)
		l.unicodeLeft--
	}
	l.appendRune(l.unicodeAccum)
	return l.escapeReturn, false
}

// --- states 25-28: comments ---

func lexSlashDispatch(l *Lexer) (int, bool) {
	c := l.next()
	switch c {
	case '/':
		return stLineComment, false
	case '*':
		return stBlockComment, false
	default:
		return l.fail(newLexError(l.offset, c))
	}
}

func lexLineComment(l *Lexer) (int, bool) {
	for {
		c := l.next()
		if c == eof || c == '\n' {
			return stGround, false
		}
	}
}

func lexBlockComment(l *Lexer) (int, bool) {
	for {
		c := l.next()
		switch c {
		case eof:
			return l.fail(newLexErrorf(l.offset, "unterminated block comment"))
		case '*':
			return stBlockCommentStar, false
		}
	}
}

func lexBlockCommentStar(l *Lexer) (int, bool) {
	for {
		c := l.next()
		switch c {
		case eof:
			return l.fail(newLexErrorf(l.offset, "unterminated block comment"))
		case '/':
			return stGround, false
		case '*':
			continue
		default:
			return stBlockComment, false
		}
	}
}
