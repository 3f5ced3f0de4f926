package lexer

import (
	"github.com/ava12/pegboot"
	"github.com/ava12/pegboot/source"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	WrongCharError = pegboot.LexicalErrors + iota

	// BadTokenError indicates an unterminated string literal.
	BadTokenError

	// InvalidIndentError indicates a line indentation matching no enclosing indentation level.
	InvalidIndentError
)

func wrongCharError(pos source.Pos, r rune) *pegboot.Error {
	return pegboot.ErrorAt(pos, WrongCharError, "wrong char %q (u+%x)", r, r)
}

func badTokenError(pos source.Pos, text string) *pegboot.Error {
	return pegboot.ErrorAt(pos, BadTokenError, "bad token %q", text)
}

func invalidIndentError(pos source.Pos) *pegboot.Error {
	return pegboot.ErrorAt(pos, InvalidIndentError, "invalid indentation")
}
