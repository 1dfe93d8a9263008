package cparse

import "unicode"

type Type int

const (
	Ident Type = iota
	Number
	String
	CharLit
	Punct
	Directive // one full preprocessor line, value includes the '#'
)

func (t Type) String() string {
	switch t {
	case Ident:
		return "identifier"
	case Number:
		return "number"
	case String:
		return "string"
	case CharLit:
		return "character"
	case Punct:
		return "punctuation"
	case Directive:
		return "directive"
	}
	return "unknown"
}

type Token struct {
	Value string
	Type  Type
	Line  int
}

// Tokenize splits C header source into the token stream the declaration
// scanner consumes. Comments are dropped; preprocessor lines (with
// continuations folded) come back as single Directive tokens so #define
// constants survive.
func Tokenize(input string) []Token {
	var tokens []Token
	line := 1
	runes := []rune(input)

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if r == '\n' {
			line++
			continue
		}
		if unicode.IsSpace(r) {
			continue
		}

		// Line comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '/' {
			for i < len(runes) && runes[i] != '\n' {
				i++
			}
			line++
			continue
		}

		// Block comment
		if r == '/' && i+1 < len(runes) && runes[i+1] == '*' {
			i += 2
			for i+1 < len(runes) && !(runes[i] == '*' && runes[i+1] == '/') {
				if runes[i] == '\n' {
					line++
				}
				i++
			}
			i++
			continue
		}

		// Preprocessor line, folding backslash continuations
		if r == '#' {
			start := i
			for i < len(runes) {
				if runes[i] == '\n' {
					if i > 0 && runes[i-1] == '\\' {
						line++
						i++
						continue
					}
					break
				}
				i++
			}
			tokens = append(tokens, Token{string(runes[start:i]), Directive, line})
			line++
			continue
		}

		if r == '"' {
			start := i
			i++
			for i < len(runes) && runes[i] != '"' {
				if runes[i] == '\\' {
					i++
				}
				i++
			}
			tokens = append(tokens, Token{string(runes[start : i+1]), String, line})
			continue
		}

		if r == '\'' {
			start := i
			i++
			for i < len(runes) && runes[i] != '\'' {
				if runes[i] == '\\' {
					i++
				}
				i++
			}
			tokens = append(tokens, Token{string(runes[start : i+1]), CharLit, line})
			continue
		}

		if unicode.IsLetter(r) || r == '_' {
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '_') {
				i++
			}
			tokens = append(tokens, Token{string(runes[start:i]), Ident, line})
			i--
			continue
		}

		if unicode.IsDigit(r) {
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i]) || runes[i] == '.') {
				i++
			}
			tokens = append(tokens, Token{string(runes[start:i]), Number, line})
			i--
			continue
		}

		tokens = append(tokens, Token{string(r), Punct, line})
	}

	return tokens
}
