package grammar

import (
	"fmt"
	"testing"

	"github.com/ava12/pegboot/internal/test"
)

func TestItemStrings(t *testing.T) {
	samples := []struct {
		item     Item
		expected string
	}{
		{Raw{"expr"}, "expr"},
		{Raw{"'+'"}, "'+'"},
		{Cut{}, "~"},
		{NamedItem{"a", Raw{"expr"}}, "a=expr"},
		{Repeat{0, Unbounded, Raw{"x"}}, "x*"},
		{Repeat{1, Unbounded, Raw{"x"}}, "x+"},
		{Repeat{0, 1, Raw{"x"}}, "x?"},
		{Repeat{2, 5, Raw{"x"}}, "x{2,5}"},
		{Repeat{2, Unbounded, Raw{"x"}}, "x{2,}"},
		{Lookahead{true, Raw{"x"}}, "&x"},
		{Lookahead{false, Raw{"';'"}}, "!';'"},
		{NamedItem{"xs", Repeat{0, Unbounded, Raw{"x"}}}, "xs=(x*)"},
		{Lookahead{false, Repeat{1, Unbounded, Cut{}}}, "!(~+)"},
	}

	for i, s := range samples {
		name := fmt.Sprintf("sample #%d", i)
		t.Run(name, func(t *testing.T) {
			test.ExpectString(t, s.expected, s.item.String())
		})
	}
}

func TestMetaStrings(t *testing.T) {
	samples := []struct {
		meta     Meta
		expected string
	}{
		{Meta{"x", NoValue{}}, "@x"},
		{Meta{"x", nil}, "@x"},
		{Meta{"x", StringValue{"y"}}, "@x y"},
		{Meta{"x", NumberValue{5}}, "@x 5"},
		{Meta{"x", NumberValue{2.5}}, "@x 2.5"},
	}

	for _, s := range samples {
		test.ExpectString(t, s.expected, s.meta.String())
	}
}

func TestGrammarString(t *testing.T) {
	g := &Grammar{
		Metas: []Meta{{"class", StringValue{"Parser"}}, {"trailer", NoValue{}}},
		Rules: []Rule{
			{"start", []Alt{{Items: []Item{Raw{"a"}, Raw{"b"}}, Action: "foo { 1 } bar"}}},
			{"a", []Alt{{Items: []Item{Raw{"NAME"}}}, {Items: []Item{Raw{"'x'"}}}}},
		},
	}

	expected := "@class Parser\n@trailer\n\n" +
		"start:\n    | a b { foo { 1 } bar }\n" +
		"a:\n    | NAME\n    | 'x'\n"
	test.ExpectString(t, expected, g.String())
	test.ExpectString(t, "", (&Grammar{}).String())
}

func TestRuleNames(t *testing.T) {
	g := &Grammar{Rules: []Rule{{Name: "a"}, {Name: "b"}, {Name: "a"}}}
	test.ExpectEqual(t, []string{"a", "b", "a"}, g.RuleNames())
}

func TestMetaLookup(t *testing.T) {
	g := &Grammar{Metas: []Meta{{"x", NumberValue{1}}, {"y", NoValue{}}, {"x", NumberValue{2}}}}
	v, found := g.Meta("x")
	test.ExpectBool(t, true, found)
	test.ExpectEqual(t, MetaValue(NumberValue{2}), v)
	_, found = g.Meta("z")
	test.ExpectBool(t, false, found)
}

type variantCounter map[string]int

func (c variantCounter) VisitRaw(Raw)             { c["raw"]++ }
func (c variantCounter) VisitNamedItem(NamedItem) { c["named"]++ }
func (c variantCounter) VisitRepeat(Repeat)       { c["repeat"]++ }
func (c variantCounter) VisitLookahead(Lookahead) { c["lookahead"]++ }
func (c variantCounter) VisitCut(Cut)             { c["cut"]++ }
func (c variantCounter) VisitNoValue(NoValue)     { c["none"]++ }
func (c variantCounter) VisitNumberValue(NumberValue) {
	c["number"]++
}
func (c variantCounter) VisitStringValue(StringValue) {
	c["string"]++
}

func TestVisitors(t *testing.T) {
	c := variantCounter{}
	items := []Item{Raw{"a"}, NamedItem{"n", Raw{"a"}}, Repeat{0, 1, Raw{"a"}}, Lookahead{true, Raw{"a"}}, Cut{}, Raw{"b"}}
	for _, i := range items {
		i.Accept(c)
	}
	for _, v := range []MetaValue{NoValue{}, NumberValue{1}, StringValue{"s"}, StringValue{"t"}} {
		v.Accept(c)
	}

	test.ExpectEqual(t, variantCounter{
		"raw": 2, "named": 1, "repeat": 1, "lookahead": 1, "cut": 1,
		"none": 1, "number": 1, "string": 2,
	}, c)
}
