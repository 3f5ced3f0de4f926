package lexer

import (
	"fmt"

	"github.com/ava12/pegboot"
)

// Kind is a token kind.
type Kind int

const (
	Comment Kind = iota
	Indent
	Dedent
	EndMarker
	Name
	Newline
	NL // line break in blank or comment-only line, or inside brackets
	Number
	String
	Op // operator or punctuation, the lexeme itself is the token text
)

var kindNames = [...]string{
	Comment:   "COMMENT",
	Indent:    "INDENT",
	Dedent:    "DEDENT",
	EndMarker: "ENDMARKER",
	Name:      "NAME",
	Newline:   "NEWLINE",
	NL:        "NL",
	Number:    "NUMBER",
	String:    "STRING",
	Op:        "OP",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is an immutable comparable token value.
type Token struct {
	kind       Kind
	text       string
	sourceName string
	line, col  int
}

// NewToken creates a token, sp may be nil.
func NewToken(kind Kind, text string, sp pegboot.SourcePos) Token {
	if sp == nil {
		return Token{kind: kind, text: text}
	}

	return Token{kind, text, sp.SourceName(), sp.Line(), sp.Col()}
}

func (t Token) Kind() Kind {
	return t.kind
}

func (t Token) Text() string {
	return t.text
}

func (t Token) SourceName() string {
	return t.sourceName
}

func (t Token) Line() int {
	return t.line
}

func (t Token) Col() int {
	return t.col
}

// Is reports whether the token is of kind k and, for Op tokens, has text op.
func (t Token) Is(k Kind, op ...string) bool {
	if t.kind != k {
		return false
	}

	for _, text := range op {
		if t.text == text {
			return true
		}
	}
	return len(op) == 0
}

func (t Token) String() string {
	if t.text == "" {
		return t.kind.String()
	}

	return fmt.Sprintf("%s %q", t.kind, t.text)
}
