/*
Package pegboot is the bootstrap stage of a PEG parser generator: it reads a grammar
written in the generator's own meta-grammar notation and builds the grammar syntax tree
without any pre-existing parser for that notation.

Consists of subpackages:
  - cmd/pegboot: console utility converting grammar description to text, JSON, YAML, TOML, or Go source;
  - grammar: grammar syntax tree (rules, alternatives, items, meta-directives);
  - langdef: bootstrap parser converting grammar description to grammar syntax tree;
  - lexer: lexical analyzer producing indentation-aware token stream;
  - parser: backtracking token buffer and parsing combinators (expect, repeat, lookahead);
  - source: source file and position information used by lexer.

Typical usage is:

	g, e := langdef.ParseString("rules.gram", content)

The resulting grammar is handed to a code generation stage, which is not a part of this module.
*/
package pegboot

import (
	"fmt"
)

// Error classes, codes of a class are numbered from the class constant:
const (
	LangDefErrors = 1   // langdef
	LexicalErrors = 101 // lexer
)

// Error is returned by lexer and langdef; Code identifies the failure.
type Error struct {
	Code int

	// Message ends with source position when the position is known.
	Message string

	SourceName string
	Line, Col  int
}

// SourcePos locates an error; source.Pos and lexer.Token implement it.
// Zero line or column means unknown position.
type SourcePos interface {
	SourceName() string
	Line() int
	Col() int
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is an *Error with the same code, so errors.Is
// can match against a code-only template like &Error{Code: c}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// ErrorAt creates an error located at pos, pos must not be nil.
// format is used as is when no args are given.
func ErrorAt(pos SourcePos, code int, format string, args ...any) *Error {
	e := &Error{
		Code:       code,
		SourceName: pos.SourceName(),
		Line:       pos.Line(),
		Col:        pos.Col(),
	}
	e.Message = sprintf(format, args) + e.location()
	return e
}

func (e *Error) location() string {
	switch {
	case e.Line == 0 || e.Col == 0:
		return ""
	case e.SourceName == "":
		return fmt.Sprintf(" at line %d col %d", e.Line, e.Col)
	default:
		return fmt.Sprintf(" in %s at line %d col %d", e.SourceName, e.Line, e.Col)
	}
}

func sprintf(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
