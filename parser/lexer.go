package parser

import (
	"go/token"
	"unicode"
	"unicode/utf8"

	"github.com/cottand/acrq/acrqerr"
	"github.com/cottand/acrq/formula"
)

type tokenKind int8

const (
	tokEOF tokenKind = iota
	tokIdent
	tokStar
	tokLParen
	tokRParen
	tokComma
	tokTilde
	tokAmp
	tokPipe
	tokArrow
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokStar:
		return "'*'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokTilde:
		return "'~'"
	case tokAmp:
		return "'&'"
	case tokPipe:
		return "'|'"
	case tokArrow:
		return "'->'"
	}
	return "unknown token"
}

type lexToken struct {
	kind tokenKind
	text string
	formula.Range
}

// lex turns input into a token stream, or fails on the first rune that
// belongs to no token. Positions are 1-based byte offsets, go/token style.
func lex(input string) ([]lexToken, error) {
	var tokens []lexToken
	pos := 0
	emit := func(kind tokenKind, text string) {
		tokens = append(tokens, lexToken{
			kind: kind,
			text: text,
			Range: formula.Range{
				PosStart: token.Pos(pos + 1),
				PosEnd:   token.Pos(pos + 1 + len(text)),
			},
		})
		pos += len(text)
	}
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += size
		case r == '*':
			emit(tokStar, "*")
		case r == '(':
			emit(tokLParen, "(")
		case r == ')':
			emit(tokRParen, ")")
		case r == ',':
			emit(tokComma, ",")
		case r == '~' || r == '¬':
			emit(tokTilde, input[pos:pos+size])
		case r == '&' || r == '∧':
			emit(tokAmp, input[pos:pos+size])
		case r == '|' || r == '∨':
			emit(tokPipe, input[pos:pos+size])
		case r == '-' && pos+1 < len(input) && input[pos+1] == '>':
			emit(tokArrow, "->")
		case r == '→':
			emit(tokArrow, input[pos:pos+size])
		case isIdentStart(r):
			end := pos + size
			for end < len(input) {
				r, size := utf8.DecodeRuneInString(input[end:])
				if !isIdentPart(r) {
					break
				}
				end += size
			}
			emit(tokIdent, input[pos:end])
		default:
			at := formula.Range{PosStart: token.Pos(pos + 1), PosEnd: token.Pos(pos + 1 + size)}
			return nil, acrqerr.New(acrqerr.NewParse{
				Positioner: at,
				Message:    "unexpected character '" + string(r) + "'",
			})
		}
	}
	tokens = append(tokens, lexToken{
		kind:  tokEOF,
		Range: formula.Range{PosStart: token.Pos(pos + 1), PosEnd: token.Pos(pos + 1)},
	})
	return tokens, nil
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
