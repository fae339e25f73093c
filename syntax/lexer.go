package syntax

import "strings"

// tokenKind discriminates the process grammar's terminals (dsdlex.py's
// token set, restricted to what the process/domain grammar of spec.md §6
// actually uses — the simulation-directive keywords of dsdlex.py have no
// home here since kinetic simulation is out of scope).
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokLAngle
	tokRAngle
	tokPipe
	tokCaret
	tokAsterisk
	tokBang
	tokIdent
)

type token struct {
	kind tokenKind
	text string
	line int
}

// lex tokenizes src, stripping nestable "(* ... *)" and "(*# ... #*)"
// comments (dsdlex.py's comment-state rules) and tracking line numbers.
// Returns a syntax error for an unterminated comment or an unrecognized
// character.
func lex(src string) ([]token, error) {
	var toks []token
	line := 1
	runes := []rune(src)
	i := 0
	for i < len(runes) {
		r := runes[i]
		switch {
		case r == '\n':
			line++
			i++
		case r == ' ' || r == '\t' || r == '\r':
			i++
		case strings.HasPrefix(string(runes[i:]), "(*"):
			startLine := line
			depth := 1
			i += 2
			for depth > 0 {
				if i >= len(runes) {
					return nil, syntaxErrorf(startLine, "unterminated comment")
				}
				switch {
				case strings.HasPrefix(string(runes[i:]), "(*"):
					depth++
					i += 2
				case strings.HasPrefix(string(runes[i:]), "*)"):
					depth--
					i += 2
				case runes[i] == '\n':
					line++
					i++
				default:
					i++
				}
			}
		case r == '(':
			toks = append(toks, token{tokLParen, "(", line})
			i++
		case r == ')':
			toks = append(toks, token{tokRParen, ")", line})
			i++
		case r == '<':
			toks = append(toks, token{tokLAngle, "<", line})
			i++
		case r == '>':
			toks = append(toks, token{tokRAngle, ">", line})
			i++
		case r == '|':
			toks = append(toks, token{tokPipe, "|", line})
			i++
		case r == '^':
			toks = append(toks, token{tokCaret, "^", line})
			i++
		case r == '*':
			toks = append(toks, token{tokAsterisk, "*", line})
			i++
		case r == '!':
			toks = append(toks, token{tokBang, "!", line})
			i++
		case isAlphaNumeric(r):
			start := i
			for i < len(runes) && isAlphaNumeric(runes[i]) {
				i++
			}
			toks = append(toks, token{tokIdent, string(runes[start:i]), line})
		default:
			return nil, syntaxErrorf(line, "illegal character %q", r)
		}
	}
	toks = append(toks, token{tokEOF, "", line})
	return toks, nil
}

func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
