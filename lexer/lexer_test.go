package lexer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ava12/pegboot/internal/test"
	"github.com/ava12/pegboot/source"
)

type tok struct {
	Kind Kind
	Text string
}

func tokenize(t *testing.T, src string) []tok {
	t.Helper()
	tokens, e := Tokenize(source.New("", []byte(src)))
	test.ExpectNoError(t, e)
	result := make([]tok, len(tokens))
	for i, token := range tokens {
		result[i] = tok{token.Kind(), token.Text()}
	}
	return result
}

func TestTokenStreams(t *testing.T) {
	samples := []struct {
		src      string
		expected []tok
	}{
		{"", []tok{{EndMarker, ""}}},
		{" \t ", []tok{{EndMarker, ""}}},
		{"start: a | b\n", []tok{
			{Name, "start"}, {Op, ":"}, {Name, "a"}, {Op, "|"}, {Name, "b"}, {Newline, "\n"},
			{EndMarker, ""},
		}},
		{"start:\n    | a\n", []tok{
			{Name, "start"}, {Op, ":"}, {Newline, "\n"},
			{Indent, "    "}, {Op, "|"}, {Name, "a"}, {Newline, "\n"},
			{Dedent, ""}, {EndMarker, ""},
		}},
		{"@x 5", []tok{
			{Op, "@"}, {Name, "x"}, {Number, "5"}, {Newline, ""}, {EndMarker, ""},
		}},
		{"# c\n\nr: a # tail\n", []tok{
			{Comment, "# c"}, {NL, "\n"}, {NL, "\n"},
			{Name, "r"}, {Op, ":"}, {Name, "a"}, {Newline, "\n"},
			{EndMarker, ""},
		}},
		{"r: a\n  # c\n", []tok{
			{Name, "r"}, {Op, ":"}, {Name, "a"}, {Newline, "\n"},
			{Comment, "# c"}, {NL, "\n"},
			{EndMarker, ""},
		}},
		{"r: a\n# c", []tok{
			{Name, "r"}, {Op, ":"}, {Name, "a"}, {Newline, "\n"},
			{Comment, "# c"}, {NL, ""},
			{EndMarker, ""},
		}},
		{"r: a { x\n  y }\n", []tok{
			{Name, "r"}, {Op, ":"}, {Name, "a"}, {Op, "{"}, {Name, "x"}, {NL, "\n"},
			{Name, "y"}, {Op, "}"}, {Newline, "\n"},
			{EndMarker, ""},
		}},
		{"a\n  b\n    c\n  d\ne", []tok{
			{Name, "a"}, {Newline, "\n"},
			{Indent, "  "}, {Name, "b"}, {Newline, "\n"},
			{Indent, "    "}, {Name, "c"}, {Newline, "\n"},
			{Dedent, ""}, {Name, "d"}, {Newline, "\n"},
			{Dedent, ""}, {Name, "e"}, {Newline, ""},
			{EndMarker, ""},
		}},
		{"a\n  b\n    c\n", []tok{
			{Name, "a"}, {Newline, "\n"},
			{Indent, "  "}, {Name, "b"}, {Newline, "\n"},
			{Indent, "    "}, {Name, "c"}, {Newline, "\n"},
			{Dedent, ""}, {Dedent, ""},
			{EndMarker, ""},
		}},
		{"a\n  b\n\n    \nc\n", []tok{
			{Name, "a"}, {Newline, "\n"},
			{Indent, "  "}, {Name, "b"}, {Newline, "\n"},
			{NL, "\n"}, {NL, "\n"},
			{Dedent, ""}, {Name, "c"}, {Newline, "\n"},
			{EndMarker, ""},
		}},
		{"a \\\n b\r\n", []tok{
			{Name, "a"}, {Name, "b"}, {Newline, "\r\n"}, {EndMarker, ""},
		}},
		{`r: "x\"y" 'z' '#'`, []tok{
			{Name, "r"}, {Op, ":"}, {String, `"x\"y"`}, {String, "'z'"}, {String, "'#'"},
			{Newline, ""}, {EndMarker, ""},
		}},
		{"1 2.5 .5 1e3 3. x1", []tok{
			{Number, "1"}, {Number, "2.5"}, {Number, ".5"}, {Number, "1e3"}, {Number, "3."}, {Name, "x1"},
			{Newline, ""}, {EndMarker, ""},
		}},
		{"r: a { f( }\nq: b\n", []tok{
			{Name, "r"}, {Op, ":"}, {Name, "a"}, {Op, "{"}, {Name, "f"}, {Op, "("}, {Op, "}"}, {Newline, "\n"},
			{Name, "q"}, {Op, ":"}, {Name, "b"}, {Newline, "\n"},
			{EndMarker, ""},
		}},
		{"( ] ]\n)\n", []tok{
			{Op, "("}, {Op, "]"}, {Op, "]"}, {NL, "\n"}, {Op, ")"}, {Newline, "\n"},
			{EndMarker, ""},
		}},
		{"-> && ** ~ ! . &", []tok{
			{Op, "->"}, {Op, "&&"}, {Op, "**"}, {Op, "~"}, {Op, "!"}, {Op, "."}, {Op, "&"},
			{Newline, ""}, {EndMarker, ""},
		}},
	}

	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func(t *testing.T) {
			test.ExpectEqual(t, s.expected, tokenize(t, s.src))
		})
	}
}

func TestErrors(t *testing.T) {
	samples := []struct {
		src             string
		code, line, col int
	}{
		{"a\n    b\n  c\n", InvalidIndentError, 3, 3},
		{"a\n\tb\n    c\n", InvalidIndentError, 3, 5},
		{"a 'foo\n", BadTokenError, 1, 3},
		{"a \"foo'\n", BadTokenError, 1, 3},
		{"a \\ b", WrongCharError, 1, 3},
		{"a\n ж", WrongCharError, 2, 2},
	}

	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func(t *testing.T) {
			_, e := Tokenize(source.New("src", []byte(s.src)))
			test.ExpectErrorCode(t, s.code, e)
			tail := fmt.Sprintf("in src at line %d col %d", s.line, s.col)
			test.Assert(t, strings.HasSuffix(e.Error(), tail), "expecting error at %q, got %q", tail, e.Error())
		})
	}
}

func TestStopsAfterError(t *testing.T) {
	l := New(source.New("", []byte("a b\n'c")))
	var got []Kind
	for token, ok := l.Next(); ok; token, ok = l.Next() {
		got = append(got, token.Kind())
	}
	test.ExpectEqual(t, []Kind{Name, Name, Newline}, got)
	test.ExpectErrorCode(t, BadTokenError, l.Err())
	_, ok := l.Next()
	test.ExpectBool(t, false, ok)
}

func TestStopsAfterEndMarker(t *testing.T) {
	l := New(source.New("", []byte("a")))
	for _, ok := l.Next(); ok; _, ok = l.Next() {
	}
	_, ok := l.Next()
	test.ExpectBool(t, false, ok)
	test.ExpectNoError(t, l.Err())
}

func TestTokenPositions(t *testing.T) {
	tokens, e := Tokenize(source.New("src", []byte("a\n  bc { d }\n")))
	test.ExpectNoError(t, e)
	expected := []struct {
		kind      Kind
		line, col int
	}{
		{Name, 1, 1},
		{Newline, 1, 2},
		{Indent, 2, 3},
		{Name, 2, 3},
		{Op, 2, 6},
		{Name, 2, 8},
		{Op, 2, 10},
		{Newline, 2, 11},
		{Dedent, 3, 1},
		{EndMarker, 3, 1},
	}

	test.ExpectInt(t, len(expected), len(tokens))
	for i, ex := range expected {
		token := tokens[i]
		test.Assert(t, token.Kind() == ex.kind && token.Line() == ex.line && token.Col() == ex.col,
			"token #%d: expecting %s at %d:%d, got %s at %d:%d",
			i, ex.kind, ex.line, ex.col, token.Kind(), token.Line(), token.Col())
		test.ExpectString(t, "src", token.SourceName())
	}
}

func TestIndentStack(t *testing.T) {
	var s indentStack
	var emitted []Kind
	emit := func(k Kind, _ []byte) {
		emitted = append(emitted, k)
	}
	invalid := func() error {
		return fmt.Errorf("invalid")
	}

	test.ExpectNoError(t, s.Adjust([]byte("  "), emit, invalid))
	test.ExpectNoError(t, s.Adjust([]byte("  \t"), emit, invalid))
	test.ExpectInt(t, 2, len(s.stack))
	test.Assert(t, s.Adjust([]byte(" \t"), emit, invalid) != nil, "expecting invalid indentation")
	test.Assert(t, s.Adjust([]byte(" "), emit, invalid) != nil, "expecting invalid indentation")
	test.ExpectNoError(t, s.Adjust(nil, emit, invalid))
	test.ExpectInt(t, 0, len(s.stack))
	test.ExpectEqual(t, []Kind{Indent, Indent, Dedent, Dedent}, emitted)
}

func TestKindString(t *testing.T) {
	test.ExpectString(t, "NEWLINE", Newline.String())
	test.ExpectString(t, "Kind(42)", Kind(42).String())
	test.ExpectString(t, `OP ":"`, NewToken(Op, ":", nil).String())
	test.ExpectString(t, "DEDENT", NewToken(Dedent, "", nil).String())
}

func TestTokenIs(t *testing.T) {
	colon := NewToken(Op, ":", nil)
	test.ExpectBool(t, true, colon.Is(Op))
	test.ExpectBool(t, true, colon.Is(Op, "|", ":"))
	test.ExpectBool(t, false, colon.Is(Op, "|"))
	test.ExpectBool(t, false, colon.Is(Name))
}
