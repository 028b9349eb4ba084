// Package lexer splits an Objective-C type encoding into tokens.
package lexer

import (
	"strings"

	"github.com/appsworld/go-objctype/types"
)

// ref - https://developer.apple.com/library/archive/documentation/Cocoa/Conceptual/ObjCRuntimeGuide/Articles/ocrtTypeEncodings.html

var markers = map[byte]Kind{
	'v': Void,
	'c': Basic, // char
	'i': Basic, // int
	's': Basic, // short
	'l': Basic, // long
	'q': Basic, // long long
	'C': Basic, // unsigned char
	'I': Basic, // unsigned int
	'S': Basic, // unsigned short
	'L': Basic, // unsigned long
	'Q': Basic, // unsigned long long
	'f': Basic, // float
	'd': Basic, // double
	'B': Basic, // C++ bool or C99 _Bool
	'*': CharString,
	'@': Object,
	'#': Class,
	':': Selector,
	'[': ArrayOpen,
	']': ArrayClose,
	'{': StructOpen,
	'}': StructClose,
	'(': UnionOpen,
	')': UnionClose,
	'b': BitField,
	'^': Pointer,
	'?': Unknown,
}

// Lexer produces tokens lazily from an encoding. The zero value is not
// usable; call New.
type Lexer struct {
	src    string
	index  int
	last   byte
	peek   byte
	lexeme types.Range
}

// New returns a lexer over src. A NUL byte terminates the input.
func New(src string) *Lexer {
	if i := strings.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	l := &Lexer{src: src}
	l.peek = l.at(0)
	return l
}

// Source returns the input, truncated at the first NUL.
func (l *Lexer) Source() string { return l.src }

// Pos returns the offset of the next unread byte.
func (l *Lexer) Pos() uint { return uint(l.index) }

func (l *Lexer) at(i int) byte {
	if i < len(l.src) {
		return l.src[i]
	}
	return 0
}

// next moves one byte into the current lexeme. It reports false, without
// moving, at end of input.
func (l *Lexer) next() bool {
	if l.index >= len(l.src) {
		l.last = 0
		l.peek = 0
		return false
	}
	l.last = l.src[l.index]
	l.index++
	l.lexeme.Length++
	l.peek = l.at(l.index)
	return true
}

// extendThrough grows the lexeme up to and including the next ch, or to end
// of input.
func (l *Lexer) extendThrough(ch byte) {
	for l.next() {
		if l.last == ch {
			return
		}
	}
}

func (l *Lexer) consumeNumber() {
	for isDigit(l.peek) {
		l.next()
	}
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// Next returns the next token. At end of input it returns an EOF token and
// keeps returning it on every later call.
func (l *Lexer) Next() Token {
	l.lexeme = types.Range{Offset: uint(l.index)}
	if !l.next() {
		return Token{Kind: EOF, Range: l.lexeme}
	}

	kind, ok := markers[l.last]
	if !ok {
		return Token{Kind: Invalid, Range: l.lexeme}
	}
	switch kind {
	case ArrayOpen, BitField:
		l.consumeNumber()
	case StructOpen, UnionOpen:
		l.extendThrough('=')
	case Object:
		if l.peek == '"' {
			l.next()
			l.extendThrough('"')
		}
	}
	return Token{Kind: kind, Range: l.lexeme}
}

// All lexes src to completion. The trailing EOF token is not included.
func All(src string) []Token {
	l := New(src)
	var toks []Token
	for {
		t := l.Next()
		if t.Kind == EOF {
			return toks
		}
		toks = append(toks, t)
	}
}
