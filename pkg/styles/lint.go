package styles

import (
	"errors"
	"fmt"

	"github.com/gorilla/css/scanner"
)

// ErrUnbalancedBraces 花括号不配对
var ErrUnbalancedBraces = errors.New("styles: unbalanced braces")

// Lint tokenizes css and reports the first scanner error or brace imbalance.
// It does not validate property names or values.
func Lint(css string) error {
	s := scanner.New(css)
	depth := 0
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if depth != 0 {
				return fmt.Errorf("%w: %d unclosed", ErrUnbalancedBraces, depth)
			}
			return nil
		case scanner.TokenError:
			return fmt.Errorf("styles: invalid token at line %d, column %d: %q", tok.Line, tok.Column, tok.Value)
		case scanner.TokenChar:
			switch tok.Value {
			case "{":
				depth++
			case "}":
				depth--
				if depth < 0 {
					return fmt.Errorf("%w: unexpected '}' at line %d, column %d", ErrUnbalancedBraces, tok.Line, tok.Column)
				}
			}
		}
	}
}

// ErrUnsafeValue 属性值会跳出所在的规则
var ErrUnsafeValue = errors.New("styles: unsafe declaration value")

// CheckValue reports whether value can be written as a single declaration
// value. Empty values, statement separators, braces, at-keywords, comments,
// strings, url() and markup characters are rejected.
func CheckValue(value string) error {
	if value == "" {
		return fmt.Errorf("%w: empty", ErrUnsafeValue)
	}
	s := scanner.New(value)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return nil
		case scanner.TokenError, scanner.TokenAtKeyword, scanner.TokenComment,
			scanner.TokenCDO, scanner.TokenCDC, scanner.TokenBOM, scanner.TokenURI, scanner.TokenString:
			return fmt.Errorf("%w: %q at column %d", ErrUnsafeValue, tok.Value, tok.Column)
		case scanner.TokenChar:
			switch tok.Value {
			case ";", "{", "}", "<", ">", "\\", "!":
				return fmt.Errorf("%w: %q at column %d", ErrUnsafeValue, tok.Value, tok.Column)
			}
		}
	}
}
