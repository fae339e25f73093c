package syntax

import "github.com/dnastrand/geoenum/domain"

// parser walks a token stream produced by lex, implementing the
// recursive-descent grammar of spec.md §6 (sgparser.py's structure,
// restricted to the process/strand/domain productions).
type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token  { return p.toks[p.pos] }
func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	t := p.peek()
	if t.kind != k {
		return token{}, syntaxErrorf(t.line, "expected %s, found %q", what, t.text)
	}
	return p.advance(), nil
}

// ParseProcess parses src as a Process: "(" strand {"|" strand}* ")" or a
// bare strand (spec.md §6).
func ParseProcess(src string) (domain.Process, error) {
	toks, err := lex(src)
	if err != nil {
		return domain.Process{}, err
	}
	p := &parser{toks: toks}
	proc, err := p.parseProcess()
	if err != nil {
		return domain.Process{}, err
	}
	if p.peek().kind != tokEOF {
		return domain.Process{}, syntaxErrorf(p.peek().line, "unexpected trailing input %q", p.peek().text)
	}
	return proc, nil
}

func (p *parser) parseProcess() (domain.Process, error) {
	if p.peek().kind == tokLParen {
		p.advance()
		strands := make([]domain.Strand, 0, 2)
		s, err := p.parseStrand()
		if err != nil {
			return domain.Process{}, err
		}
		strands = append(strands, s)
		for p.peek().kind == tokPipe {
			p.advance()
			s, err := p.parseStrand()
			if err != nil {
				return domain.Process{}, err
			}
			strands = append(strands, s)
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return domain.Process{}, err
		}
		return domain.NewProcess(strands), nil
	}

	s, err := p.parseStrand()
	if err != nil {
		return domain.Process{}, err
	}
	return domain.NewProcess([]domain.Strand{s}), nil
}

func (p *parser) parseStrand() (domain.Strand, error) {
	if _, err := p.expect(tokLAngle, "'<'"); err != nil {
		return domain.Strand{}, err
	}
	ds := make([]domain.Domain, 0, 4)
	d, err := p.parseDomain()
	if err != nil {
		return domain.Strand{}, err
	}
	ds = append(ds, d)
	for p.peek().kind == tokIdent {
		d, err := p.parseDomain()
		if err != nil {
			return domain.Strand{}, err
		}
		ds = append(ds, d)
	}
	if _, err := p.expect(tokRAngle, "'>'"); err != nil {
		return domain.Strand{}, err
	}
	strand, err := domain.NewStrand(ds)
	if err != nil {
		return domain.Strand{}, syntaxErrorf(p.peek().line, "%v", err)
	}
	return strand, nil
}

func (p *parser) parseDomain() (domain.Domain, error) {
	name, err := p.expect(tokIdent, "domain name")
	if err != nil {
		return domain.Domain{}, err
	}
	d := domain.Domain{Name: name.text}
	if p.peek().kind == tokCaret {
		p.advance()
		d.Toehold = true
	}
	if p.peek().kind == tokAsterisk {
		p.advance()
		d.Complement = true
	}
	if p.peek().kind == tokBang {
		p.advance()
		bond, err := p.expect(tokIdent, "bond label")
		if err != nil {
			return domain.Domain{}, err
		}
		d.Bond = bond.text
	}
	return d, nil
}
