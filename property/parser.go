package property

import (
	"strconv"
	"strings"

	"github.com/formalcore/tvmc/bv"
)

type parser struct {
	raw  string
	toks []token
	pos  int
}

func parseAST(raw string) (*astNode, error) {
	toks, err := lex(raw)
	if err != nil {
		return nil, err
	}

	p := &parser{raw: raw, toks: toks}
	n, ok := p.parseOr()
	if !ok || p.pos != len(p.toks) {
		return nil, ErrNotParseable{Raw: raw}
	}

	return n, nil
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}

	return p.toks[p.pos], true
}

func (p *parser) advance() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}

	return t, ok
}

func (p *parser) parseOr() (*astNode, bool) {
	l, ok := p.parseAnd()
	if !ok {
		return nil, false
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokOr {
			return l, true
		}
		p.pos++
		r, ok := p.parseAnd()
		if !ok {
			return nil, false
		}
		l = &astNode{op: astOr, l: l, r: r}
	}
}

func (p *parser) parseAnd() (*astNode, bool) {
	l, ok := p.parseUnary()
	if !ok {
		return nil, false
	}
	for {
		t, ok := p.peek()
		if !ok || t.kind != tokAnd {
			return l, true
		}
		p.pos++
		r, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		l = &astNode{op: astAnd, l: l, r: r}
	}
}

func (p *parser) parseUnary() (*astNode, bool) {
	t, ok := p.peek()
	if !ok {
		return nil, false
	}
	if t.kind == tokNot {
		p.pos++
		inner, ok := p.parseUnary()
		if !ok {
			return nil, false
		}

		return &astNode{op: astNot, l: inner}, true
	}

	return p.parsePrimary()
}

var unaryTemporal = map[string]astOp{
	"EX": astEX, "AX": astAX, "EF": astEF, "AF": astAF, "EG": astEG, "AG": astAG,
}

func (p *parser) parsePrimary() (*astNode, bool) {
	t, ok := p.peek()
	if !ok {
		return nil, false
	}

	switch t.kind {
	case tokLParen:
		p.pos++
		inner, ok := p.parseOr()
		if !ok {
			return nil, false
		}
		if rp, ok := p.advance(); !ok || rp.kind != tokRParen {
			return nil, false
		}

		return inner, true

	case tokIdent:
		upper := strings.ToUpper(t.text)
		if op, ok := unaryTemporal[upper]; ok && t.text == upper {
			p.pos++
			inner, ok := p.parseUnary()
			if !ok {
				return nil, false
			}

			return &astNode{op: op, l: inner}, true
		}
		if (t.text == "E" || t.text == "A") && isKeyword(t.text) {
			return p.parseBinaryTemporal(t.text)
		}

		return p.parseAtomic()
	}

	return nil, false
}

func (p *parser) parseBinaryTemporal(which string) (*astNode, bool) {
	p.pos++ // consume E or A
	if lb, ok := p.advance(); !ok || lb.kind != tokLBracket {
		return nil, false
	}
	l, ok := p.parseOr()
	if !ok {
		return nil, false
	}
	sep, ok := p.advance()
	if !ok || sep.kind != tokIdent || (sep.text != "U" && sep.text != "R") {
		return nil, false
	}
	r, ok := p.parseOr()
	if !ok {
		return nil, false
	}
	if rb, ok := p.advance(); !ok || rb.kind != tokRBracket {
		return nil, false
	}

	var op astOp
	switch {
	case which == "E" && sep.text == "U":
		op = astEU
	case which == "A" && sep.text == "U":
		op = astAU
	case which == "E" && sep.text == "R":
		op = astER
	default:
		op = astAR
	}

	return &astNode{op: op, l: l, r: r}, true
}

func (p *parser) parseAtomic() (*astNode, bool) {
	name, ok := p.advance()
	if !ok || name.kind != tokIdent || isKeyword(name.text) {
		return nil, false
	}
	if lb, ok := p.advance(); !ok || lb.kind != tokLBracket {
		return nil, false
	}
	num, ok := p.advance()
	if !ok || num.kind != tokNumber {
		return nil, false
	}
	bit, err := strconv.ParseUint(num.text, 10, 32)
	if err != nil {
		return nil, false
	}
	if rb, ok := p.advance(); !ok || rb.kind != tokRBracket {
		return nil, false
	}

	node := &astNode{op: astAtomic, field: name.text, bit: bv.Width(bit), want: bv.Bit1}
	if t, ok := p.peek(); ok && t.kind == tokEqEq {
		p.pos++
		val, ok := p.advance()
		if !ok || val.kind != tokNumber || (val.text != "0" && val.text != "1") {
			return nil, false
		}
		node.want = bv.Bit0
		if val.text == "1" {
			node.want = bv.Bit1
		}
		node.hasWant = true
	}

	return node, true
}
