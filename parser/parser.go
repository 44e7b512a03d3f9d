// Package parser parses the concrete syntax of ACrQ formulas into
// formula trees.
//
// Grammar, loosest-binding first ('->' is right-associative):
//
//	formula := or ( '->' formula )?
//	or      := and ( '|' and )*
//	and     := unary ( '&' unary )*
//	unary   := '~' unary | '(' formula ')' | atom
//	atom    := ident '*'? ( '(' term ( ',' term )* ')' )?
//	term    := ident        // capitalised idents are variables
//
// The ASCII connectives ~ & | -> and their unicode forms ¬ ∧ ∨ → are
// interchangeable. An atom with a '*' suffix is the negative half of a
// bilateral predicate pair.
package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/cottand/acrq/acrqerr"
	"github.com/cottand/acrq/formula"
	"github.com/cottand/acrq/internal/log"
)

var parserLogger = log.DefaultLogger.With("section", "parser")

// Parse parses input as a single formula. The whole input must be
// consumed; trailing tokens are an error.
func Parse(input string) (formula.Formula, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: tokens}
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, p.unexpected("end of input")
	}
	parserLogger.Debug("parsed formula", "input", input, "formula", f.String())
	return f, nil
}

type parser struct {
	tokens []lexToken
	at     int
}

func (p *parser) peek() lexToken {
	return p.tokens[p.at]
}

func (p *parser) next() lexToken {
	t := p.tokens[p.at]
	if t.kind != tokEOF {
		p.at++
	}
	return t
}

func (p *parser) unexpected(expected string) error {
	t := p.peek()
	if t.kind == tokEOF {
		return acrqerr.New(acrqerr.NewUnexpectedEnd{Positioner: t.Range, Expected: expected})
	}
	return acrqerr.New(acrqerr.NewUnexpectedToken{Positioner: t.Range, Got: t.text, Expected: expected})
}

func (p *parser) formula() (formula.Formula, error) {
	left, err := p.or()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokArrow {
		return left, nil
	}
	p.next()
	right, err := p.formula() // right-associative
	if err != nil {
		return nil, err
	}
	return &formula.Compound{
		Range:       formula.RangeBetween(left, right),
		Connective:  formula.IMPLIES,
		Subformulas: []formula.Formula{left, right},
	}, nil
}

func (p *parser) or() (formula.Formula, error) {
	return p.binaryChain(formula.OR, tokPipe, p.and)
}

func (p *parser) and() (formula.Formula, error) {
	return p.binaryChain(formula.AND, tokAmp, p.unary)
}

// binaryChain parses operand (op operand)*, associating to the left.
func (p *parser) binaryChain(conn formula.Connective, op tokenKind, operand func() (formula.Formula, error)) (formula.Formula, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == op {
		p.next()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &formula.Compound{
			Range:       formula.RangeBetween(left, right),
			Connective:  conn,
			Subformulas: []formula.Formula{left, right},
		}
	}
	return left, nil
}

func (p *parser) unary() (formula.Formula, error) {
	switch p.peek().kind {
	case tokTilde:
		not := p.next()
		inner, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &formula.Compound{
			Range:       formula.RangeBetween(not.Range, inner),
			Connective:  formula.NOT,
			Subformulas: []formula.Formula{inner},
		}, nil
	case tokLParen:
		p.next()
		inner, err := p.formula()
		if err != nil {
			return nil, err
		}
		if p.peek().kind != tokRParen {
			return nil, p.unexpected("')'")
		}
		p.next()
		return inner, nil
	case tokIdent:
		return p.atom()
	default:
		return nil, p.unexpected("a formula")
	}
}

func (p *parser) atom() (formula.Formula, error) {
	name := p.next()
	rng := name.Range
	negative := false
	if p.peek().kind == tokStar {
		star := p.next()
		negative = true
		rng = formula.RangeBetween(rng, star.Range)
	}
	var args []formula.Term
	if p.peek().kind == tokLParen {
		p.next()
		for {
			arg, err := p.term()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.peek().kind != tokComma {
				break
			}
			p.next()
		}
		if p.peek().kind != tokRParen {
			return nil, p.unexpected("')' or ','")
		}
		closing := p.next()
		rng = formula.RangeBetween(rng, closing.Range)
	}
	if negative {
		return &formula.BilateralPred{Range: rng, Name: name.text, Args: args, Negative: true}, nil
	}
	return &formula.Pred{Range: rng, Name: name.text, Args: args}, nil
}

func (p *parser) term() (formula.Term, error) {
	if p.peek().kind != tokIdent {
		return nil, p.unexpected("a constant or variable")
	}
	t := p.next()
	first, _ := utf8.DecodeRuneInString(t.text)
	if unicode.IsUpper(first) {
		return &formula.Variable{Range: t.Range, Name: t.text}, nil
	}
	return &formula.Constant{Range: t.Range, Name: t.text}, nil
}
