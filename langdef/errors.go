package langdef

import (
	"github.com/ava12/pegboot"
	"github.com/ava12/pegboot/lexer"
)

// Error codes used by langdef:
const (
	// UnterminatedActionError indicates that input ends before the action block is closed.
	// Error position is the position of opening curly bracket.
	UnterminatedActionError = pegboot.LangDefErrors + iota

	// RemainingSourceError indicates unparsed tokens left after the last recognized line.
	// Used only with WithFullSource option.
	RemainingSourceError
)

func unterminatedActionError(open lexer.Token) *pegboot.Error {
	return pegboot.ErrorAt(open, UnterminatedActionError, "unterminated action block")
}

func remainingSourceError(t lexer.Token) *pegboot.Error {
	return pegboot.ErrorAt(t, RemainingSourceError, "unexpected %s", t)
}
