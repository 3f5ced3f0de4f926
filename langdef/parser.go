package langdef

import (
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ava12/pegboot/grammar"
	"github.com/ava12/pegboot/lexer"
	"github.com/ava12/pegboot/parser"
	"github.com/ava12/pegboot/source"
)

const (
	metaOp   = "@"
	colonOp  = ":"
	pipeOp   = "|"
	lCurlyOp = "{"
	rCurlyOp = "}"
)

// Option configures Parse.
type Option func(*parseContext)

// WithFullSource makes Parse fail with RemainingSourceError
// unless all tokens up to the end marker are consumed.
func WithFullSource() Option {
	return func(c *parseContext) {
		c.fullSource = true
	}
}

// WithLogger sets the logger receiving parse trace at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *parseContext) {
		if l != nil {
			c.log = l
		}
	}
}

// ParseString parses grammar description and returns a grammar on success.
// Returns nil and pegboot.Error on error.
func ParseString(name, content string, opts ...Option) (*grammar.Grammar, error) {
	return ParseSource(source.New(name, []byte(content)), opts...)
}

// ParseBytes parses grammar description and returns a grammar on success.
// Returns nil and pegboot.Error on error.
func ParseBytes(name string, content []byte, opts ...Option) (*grammar.Grammar, error) {
	return ParseSource(source.New(name, content), opts...)
}

// ParseSource tokenizes and parses grammar description.
// The whole source is tokenized even if parsing stops early,
// a lexical error anywhere in the source takes precedence over parse result.
func ParseSource(s *source.Source, opts ...Option) (*grammar.Grammar, error) {
	l := lexer.New(s)
	g, e := Parse(l, opts...)
	for _, ok := l.Next(); ok; _, ok = l.Next() {
	}
	if le := l.Err(); le != nil {
		return nil, le
	}

	return g, e
}

// Parse builds a grammar from token stream.
// Returns nil and pegboot.Error on error.
func Parse(tokens parser.Producer[lexer.Token], opts ...Option) (*grammar.Grammar, error) {
	c := newParseContext(tokens, opts...)
	g := c.grammar()
	if c.e == nil && c.fullSource && !parser.Lookahead(c.cur, true, c.end) {
		t, _ := c.cur.Peek()
		c.e = remainingSourceError(t)
	}
	if c.e != nil {
		c.log.WithError(c.e).Debug("parse failed")
		return nil, c.e
	}

	return g, nil
}

type parseContext struct {
	cur        *parser.Cursor[lexer.Token]
	e          error
	log        logrus.FieldLogger
	fullSource bool
}

func newParseContext(tokens parser.Producer[lexer.Token], opts ...Option) *parseContext {
	c := &parseContext{
		cur: parser.NewCursor(tokens),
		log: discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func kindIs(kinds ...lexer.Kind) parser.Predicate[lexer.Token] {
	return func(t lexer.Token) bool {
		for _, k := range kinds {
			if t.Kind() == k {
				return true
			}
		}
		return false
	}
}

func opIs(text string) parser.Predicate[lexer.Token] {
	return func(t lexer.Token) bool {
		return t.Is(lexer.Op, text)
	}
}

func (c *parseContext) kind(k lexer.Kind) (lexer.Token, bool) {
	return c.cur.Expect(kindIs(k))
}

func (c *parseContext) op(text string) (lexer.Token, bool) {
	return c.cur.Expect(opIs(text))
}

func (c *parseContext) fields(t lexer.Token) logrus.Fields {
	return logrus.Fields{"line": t.Line(), "col": t.Col()}
}

func (c *parseContext) grammar() *grammar.Grammar {
	g := &grammar.Grammar{}
	parser.Repeat(c.cur, 0, parser.Unbounded, func() (struct{}, bool) {
		if c.e != nil {
			return struct{}{}, false
		}

		if r, ok := c.rule(); ok {
			g.Rules = append(g.Rules, r)
			return struct{}{}, true
		}
		if c.e != nil {
			return struct{}{}, false
		}

		if m, ok := c.meta(); ok {
			g.Metas = append(g.Metas, m)
			return struct{}{}, true
		}

		_, ok := c.cur.Expect(kindIs(lexer.Newline, lexer.NL, lexer.Comment))
		return struct{}{}, ok
	})
	return g
}

func (c *parseContext) end() (lexer.Token, bool) {
	t, ok := c.cur.Peek()
	if !ok {
		return t, true
	}

	return c.kind(lexer.EndMarker)
}

func (c *parseContext) meta() (grammar.Meta, bool) {
	pos := c.cur.Mark()
	at, ok := c.op(metaOp)
	if !ok {
		return grammar.Meta{}, false
	}

	key, ok := c.kind(lexer.Name)
	if !ok {
		c.cur.Reset(pos)
		return grammar.Meta{}, false
	}

	afterKey := c.cur.Mark()
	values := []func() (grammar.MetaValue, bool){c.bareMeta, c.stringMeta, c.nameMeta, c.numberMeta}
	for _, value := range values {
		v, ok := value()
		if ok {
			_, ok = c.kind(lexer.Newline)
		}
		if ok {
			c.log.WithFields(c.fields(at)).WithField("meta", key.Text()).Debug("meta accepted")
			return grammar.Meta{Key: key.Text(), Value: v}, true
		}

		c.cur.Reset(afterKey)
	}

	c.cur.Reset(pos)
	return grammar.Meta{}, false
}

func (c *parseContext) bareMeta() (grammar.MetaValue, bool) {
	return grammar.NoValue{}, true
}

// Quoted string values are reserved.
func (c *parseContext) stringMeta() (grammar.MetaValue, bool) {
	return nil, false
}

func (c *parseContext) nameMeta() (grammar.MetaValue, bool) {
	t, ok := c.kind(lexer.Name)
	if !ok {
		return nil, false
	}

	return grammar.StringValue{Value: t.Text()}, true
}

func (c *parseContext) numberMeta() (grammar.MetaValue, bool) {
	pos := c.cur.Mark()
	t, ok := c.kind(lexer.Number)
	if !ok {
		return nil, false
	}

	value, e := strconv.ParseFloat(t.Text(), 64)
	if e != nil {
		c.log.WithFields(c.fields(t)).WithError(e).Debug("malformed number")
		c.cur.Reset(pos)
		return nil, false
	}

	return grammar.NumberValue{Value: value}, true
}

func (c *parseContext) rule() (grammar.Rule, bool) {
	pos := c.cur.Mark()
	name, ok := c.kind(lexer.Name)
	if ok {
		_, ok = c.op(colonOp)
	}
	if !ok {
		c.cur.Reset(pos)
		return grammar.Rule{}, false
	}

	alts, ok := c.altsNewline()
	if !ok && c.e == nil {
		_, ok = c.kind(lexer.Newline)
	}
	if ok {
		more, _ := c.indentedAlts()
		alts = append(alts, more...)
	}
	if c.e != nil || len(alts) == 0 {
		c.cur.Reset(pos)
		return grammar.Rule{}, false
	}

	c.log.WithFields(c.fields(name)).WithField("rule", name.Text()).Debug("rule accepted")
	return grammar.Rule{Name: name.Text(), Alts: alts}, true
}

func (c *parseContext) altsNewline() ([]grammar.Alt, bool) {
	pos := c.cur.Mark()
	alts, ok := c.alts()
	if ok {
		_, ok = c.kind(lexer.Newline)
	}
	if !ok {
		c.cur.Reset(pos)
		return nil, false
	}

	return alts, true
}

func (c *parseContext) alts() ([]grammar.Alt, bool) {
	first, ok := c.alternative()
	if !ok {
		return nil, false
	}

	rest, _ := parser.Repeat(c.cur, 0, parser.Unbounded, c.barAlt)
	return append([]grammar.Alt{first}, rest...), true
}

func (c *parseContext) barAlt() (grammar.Alt, bool) {
	pos := c.cur.Mark()
	if _, ok := c.op(pipeOp); ok {
		if alt, ok := c.alternative(); ok {
			return alt, true
		}
	}

	c.cur.Reset(pos)
	return grammar.Alt{}, false
}

func (c *parseContext) barAltsNewline() ([]grammar.Alt, bool) {
	pos := c.cur.Mark()
	if _, ok := c.op(pipeOp); ok {
		if alts, ok := c.altsNewline(); ok {
			return alts, true
		}
	}

	c.cur.Reset(pos)
	return nil, false
}

func (c *parseContext) indentedAlts() ([]grammar.Alt, bool) {
	pos := c.cur.Mark()
	if _, ok := c.kind(lexer.Indent); !ok {
		return nil, false
	}

	lines, _ := parser.Repeat(c.cur, 0, parser.Unbounded, func() ([]grammar.Alt, bool) {
		if c.e != nil {
			return nil, false
		}

		if alts, ok := c.barAltsNewline(); ok {
			return alts, true
		}
		if c.e != nil {
			return nil, false
		}

		_, ok := c.cur.Expect(kindIs(lexer.NL, lexer.Comment))
		return nil, ok
	})

	if c.e == nil {
		if _, ok := c.kind(lexer.Dedent); ok {
			var result []grammar.Alt
			for _, alts := range lines {
				result = append(result, alts...)
			}
			return result, true
		}
	}

	c.cur.Reset(pos)
	return nil, false
}

func (c *parseContext) alternative() (grammar.Alt, bool) {
	items, ok := parser.Repeat(c.cur, 1, parser.Unbounded, c.item)
	if !ok {
		return grammar.Alt{}, false
	}

	alt := grammar.Alt{Items: items}
	if open, ok := c.op(lCurlyOp); ok {
		alt.Action, ok = c.action(open)
		if !ok {
			return grammar.Alt{}, false
		}
	}
	return alt, true
}

func (c *parseContext) item() (grammar.Item, bool) {
	t, ok := c.cur.Expect(kindIs(lexer.Name, lexer.String))
	if !ok {
		return nil, false
	}

	return grammar.Raw{Text: t.Text()}, true
}

// action consumes tokens up to the curly bracket matching open one.
// Sets fatal error if input ends first.
func (c *parseContext) action(open lexer.Token) (string, bool) {
	depth := 0
	var texts []string
	for {
		t, ok := c.cur.Next()
		if !ok || t.Kind() == lexer.EndMarker {
			c.e = unterminatedActionError(open)
			c.log.WithFields(c.fields(open)).Debug("unterminated action")
			return "", false
		}

		if t.Is(lexer.Op, lCurlyOp) {
			depth++
		} else if t.Is(lexer.Op, rCurlyOp) {
			if depth == 0 {
				return strings.Join(texts, " "), true
			}
			depth--
		}
		texts = append(texts, t.Text())
	}
}
