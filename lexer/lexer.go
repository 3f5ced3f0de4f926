/*
Package lexer converts grammar description source into a token stream.

The stream follows line structure of the source:
a line containing tokens ends with a NEWLINE token, an empty or comment-only line
yields COMMENT (if any) and NL tokens, line breaks inside unclosed brackets yield NL tokens.
A closing bracket also closes all unclosed brackets following its matching open bracket.
Indentation changes of non-empty lines emit INDENT and DEDENT tokens.
Comments following other tokens on the same line are skipped.
The stream always ends with ENDMARKER token unless there is a lexical error.
*/
package lexer

import (
	"bytes"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/pegboot/internal/queue"
	"github.com/ava12/pegboot/source"
)

// capturing group index to token kind
var groupKinds = []Kind{Name, Number, String, Op}

const badStringGroup = 5

var (
	tokenRe = regexp.MustCompile(`^(?:` +
		`([A-Za-z_][A-Za-z0-9_]*)|` +
		`((?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?)|` +
		`('(?:[^'\\\n]|\\.)*'|"(?:[^"\\\n]|\\.)*")|` +
		"(->|&&|\\*\\*|[!$%&()*+,\\-./:;<=>?@\\[\\]^`{|}~])|" +
		`(['"][^\n]*))`)
	spaceRe   = regexp.MustCompile(`^(?:[ \t\f]|\\\r?\n)+`)
	indentRe  = regexp.MustCompile(`^[ \t\f]*`)
	commentRe = regexp.MustCompile(`^#[^\r\n]*`)
	newlineRe = regexp.MustCompile(`^\r?\n`)
)

// Lexer fetches tokens from a single source. Lexer implements parser.Producer.
type Lexer struct {
	src       *source.Source
	content   []byte
	pos       int
	brackets  []byte
	lineStart bool
	indents   indentStack
	pending   *queue.Queue[Token]
	done      bool
	e         error
}

// New creates a lexer for source s.
func New(s *source.Source) *Lexer {
	return &Lexer{
		src:       s,
		content:   s.Content(),
		lineStart: true,
		pending:   queue.New[Token](),
	}
}

// Next returns the next token.
// Returns false after ENDMARKER token or after a lexical error, Err returns the error then.
func (l *Lexer) Next() (Token, bool) {
	for {
		t, ok := l.pending.First()
		if ok {
			return t, true
		}

		if l.done {
			return Token{}, false
		}

		e := l.scan()
		if e != nil {
			l.e = e
			l.done = true
		}
	}
}

// Err returns lexical error, if any.
func (l *Lexer) Err() error {
	return l.e
}

// Tokenize returns all tokens of source s.
func Tokenize(s *source.Source) ([]Token, error) {
	l := New(s)
	var result []Token
	for t, ok := l.Next(); ok; t, ok = l.Next() {
		result = append(result, t)
	}
	return result, l.Err()
}

func (l *Lexer) emit(kind Kind, text []byte, pos int) {
	l.pending.Append(NewToken(kind, string(text), source.NewPos(l.src, pos)))
}

func (l *Lexer) match(re *regexp.Regexp) []byte {
	return re.Find(l.content[l.pos:])
}

func (l *Lexer) scan() error {
	if l.lineStart && len(l.brackets) == 0 {
		return l.scanLineStart()
	}

	return l.scanToken()
}

func (l *Lexer) scanLineStart() error {
	indent := l.match(indentRe)
	l.pos += len(indent)
	if l.pos >= len(l.content) {
		l.finish()
		return nil
	}

	if comment := l.match(commentRe); comment != nil {
		l.emit(Comment, comment, l.pos)
		l.pos += len(comment)
	}
	if l.pos >= len(l.content) {
		l.emit(NL, nil, l.pos)
		return nil
	}
	if nl := l.match(newlineRe); nl != nil {
		l.emit(NL, nl, l.pos)
		l.pos += len(nl)
		return nil
	}

	l.lineStart = false
	return l.indents.Adjust(indent, func(kind Kind, text []byte) {
		l.emit(kind, text, l.pos)
	}, func() error {
		return invalidIndentError(source.NewPos(l.src, l.pos))
	})
}

func (l *Lexer) scanToken() error {
	l.pos += len(l.match(spaceRe))
	if l.pos >= len(l.content) {
		l.finish()
		return nil
	}

	if nl := l.match(newlineRe); nl != nil {
		if len(l.brackets) > 0 {
			l.emit(NL, nl, l.pos)
		} else {
			l.emit(Newline, nl, l.pos)
			l.lineStart = true
		}
		l.pos += len(nl)
		return nil
	}

	if comment := l.match(commentRe); comment != nil {
		l.pos += len(comment)
		return nil
	}

	m := tokenRe.FindSubmatchIndex(l.content[l.pos:])
	if m == nil {
		r, _ := utf8.DecodeRune(l.content[l.pos:])
		return wrongCharError(source.NewPos(l.src, l.pos), r)
	}

	if m[badStringGroup*2] >= 0 {
		return badTokenError(source.NewPos(l.src, l.pos), string(l.content[l.pos:l.pos+m[1]]))
	}

	for i, kind := range groupKinds {
		start, end := m[i*2+2], m[i*2+3]
		if start < 0 {
			continue
		}

		text := l.content[l.pos+start : l.pos+end]
		l.emit(kind, text, l.pos)
		if kind == Op {
			l.trackBrackets(text)
		}
		break
	}
	l.pos += m[1]
	return nil
}

var closingBrackets = map[byte]byte{')': '(', ']': '[', '}': '{'}

// trackBrackets maintains the stack of open brackets.
// A closing bracket closes the nearest matching open one along with all unclosed brackets inside it,
// a closing bracket matching no open one is ignored.
func (l *Lexer) trackBrackets(text []byte) {
	if len(text) != 1 {
		return
	}

	switch c := text[0]; c {
	case '(', '[', '{':
		l.brackets = append(l.brackets, c)
	case ')', ']', '}':
		i := bytes.LastIndexByte(l.brackets, closingBrackets[c])
		if i >= 0 {
			l.brackets = l.brackets[:i]
		}
	}
}

func (l *Lexer) finish() {
	if !l.lineStart {
		l.emit(Newline, nil, l.pos)
	}
	l.indents.Close(func(kind Kind, text []byte) {
		l.emit(kind, text, l.pos)
	})
	l.emit(EndMarker, nil, l.pos)
	l.done = true
}
