// Package parser builds a type tree from the token stream of an
// Objective-C type encoding.
package parser

import (
	"errors"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/appsworld/go-objctype/internal/lexer"
	"github.com/appsworld/go-objctype/types"
)

type parser struct {
	lex     *lexer.Lexer
	src     string
	log     *zap.Logger
	pending *lexer.Token
	diags   []*Diagnostic
}

// Parse decodes every type in src. A single outermost type is returned as
// is; zero or several are wrapped in a TopLevel node. Malformed fragments are
// dropped from the tree and reported as diagnostics. log may be nil, in
// which case the package logger is used.
func Parse(src string, log *zap.Logger) (*types.Node, []*Diagnostic) {
	if log == nil {
		log = Logger()
	}
	l := lexer.New(src)
	p := &parser{
		lex: l,
		src: l.Source(),
		log: log,
	}
	root := p.parseComposite(0, nil)
	return root, p.diags
}

func (p *parser) next() lexer.Token {
	if p.pending != nil {
		t := *p.pending
		p.pending = nil
		return t
	}
	return p.lex.Next()
}

func (p *parser) unread(t lexer.Token) {
	p.pending = &t
}

func (p *parser) text(r types.Range) string {
	return r.Slice(p.src)
}

func (p *parser) report(kind DiagnosticKind, r types.Range, msg string) {
	p.diags = append(p.diags, &Diagnostic{
		Kind:   kind,
		Range:  r,
		Lexeme: p.text(r),
		Msg:    msg,
	})
}

func (p *parser) unexpected(t lexer.Token, msg string) {
	p.log.Debug("unexpected token",
		zap.Stringer("token", t.Kind),
		zap.Uint("offset", t.Range.Offset),
		zap.Uint("length", t.Range.Length),
		zap.String("lexeme", p.text(t.Range)))
	p.report(UnexpectedToken, t.Range, msg)
}

// number parses the digit run that follows the marker byte of t.
func (p *parser) number(t lexer.Token) uint64 {
	digits := p.text(t.Range)[1:]
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			p.report(NumberOverflow, t.Range, "clamped to max uint64")
			return math.MaxUint64
		}
		return 0
	}
	return n
}

// element parses the type following a pointer or array marker. A closing
// marker is left for the enclosing construct.
func (p *parser) element(owner lexer.Token) *types.Node {
	t := p.next()
	switch {
	case t.Kind == lexer.EOF:
		p.report(MissingType, owner.Range, "no element type before end of input")
		return nil
	case t.Kind.IsClose():
		p.unread(t)
		p.report(MissingType, owner.Range, "no element type")
		return nil
	}
	n := p.parseType(t)
	if n == nil {
		p.unexpected(t, "expected element type")
	}
	return n
}

func (p *parser) parseType(t lexer.Token) *types.Node {
	switch t.Kind {
	case lexer.Basic:
		return types.NewBasic(types.BasicCategory(p.src[t.Range.Offset]), t.Range)
	case lexer.Unknown:
		return types.NewBasic(types.CategoryUnknown, t.Range)
	case lexer.Void:
		return types.NewBasic(types.CategoryVoid, t.Range)
	case lexer.CharString:
		return types.NewLeaf(types.CategoryCharacterString, t.Range)
	case lexer.Class:
		return types.NewLeaf(types.CategoryClass, t.Range)
	case lexer.Selector:
		return types.NewLeaf(types.CategorySelector, t.Range)
	case lexer.StructOpen, lexer.UnionOpen:
		return p.parseComposite(t.Range.Offset, &t)
	case lexer.Pointer:
		elem := p.element(t)
		r := t.Range
		if elem != nil {
			r = r.Union(elem.Range())
		}
		return types.NewPointer(r, elem)
	case lexer.BitField:
		return types.NewBitField(t.Range, p.number(t))
	case lexer.ArrayOpen:
		return p.parseArray(t)
	case lexer.Object:
		return types.NewObject(t.Range, p.objectName(t.Range))
	}
	return nil
}

func (p *parser) parseArray(open lexer.Token) *types.Node {
	count := p.number(open)
	elem := p.element(open)
	r := open.Range
	if elem != nil {
		r = r.Union(elem.Range())
	}
	switch end := p.next(); end.Kind {
	case lexer.ArrayClose:
		r = r.Union(end.Range)
	case lexer.EOF:
		p.report(Unterminated, open.Range, "missing ']'")
	default:
		r = r.Union(end.Range)
		p.unexpected(end, "expected ']'")
	}
	return types.NewArray(r, elem, count)
}

// objectName returns the interior of the quotes in `@"Name"`.
func (p *parser) objectName(r types.Range) types.Range {
	if r.Length <= 3 {
		return types.NoRange
	}
	name := types.MakeRange(r.Offset+2, r.Length-2)
	if p.src[r.End()-1] == '"' {
		name.Length--
	}
	return name
}

// compositeName trims one byte from each side of a struct or union lexeme:
// the opener and the trailing '='. Without an '=' the lexeme ran to end of
// input and its last byte is trimmed all the same.
func (p *parser) compositeName(r types.Range) types.Range {
	if r.Length < 2 {
		return types.MakeRange(r.Offset+1, 0)
	}
	return types.MakeRange(r.Offset+1, r.Length-2)
}

func (p *parser) parseComposite(start uint, open *lexer.Token) *types.Node {
	term := lexer.EOF
	category := types.CategoryTopLevel
	name := types.NoRange
	if open != nil {
		name = p.compositeName(open.Range)
		switch open.Kind {
		case lexer.StructOpen:
			term, category = lexer.StructClose, types.CategoryStruct
		case lexer.UnionOpen:
			term, category = lexer.UnionClose, types.CategoryUnion
		}
	}

	var members []*types.Node
	for {
		t := p.next()
		if t.Kind == term {
			break
		}
		if t.Kind == lexer.EOF {
			if open != nil {
				p.report(Unterminated, open.Range, "missing closing marker")
			}
			break
		}
		if n := p.parseType(t); n != nil {
			members = append(members, n)
			continue
		}
		p.unexpected(t, "")
	}

	if open == nil && len(members) == 1 {
		return members[0]
	}
	r := types.MakeRange(start, p.lex.Pos()-start)
	return types.NewComposite(category, r, name, members)
}
