// Package grammar defines grammar syntax tree built by langdef and consumed by code generators.
//
// Item and MetaValue are closed variant sets. Consumers dispatch on variants through
// ItemVisitor and MetaValueVisitor, so a new variant is a compile-time change for every consumer.
package grammar

import (
	"strconv"
	"strings"
)

// Unbounded is used as Repeat.AtMost when the number of repetitions is not limited.
const Unbounded = -1

// Grammar is the root of grammar syntax tree.
// Rules and Metas keep declaration order, duplicate names and keys are retained.
type Grammar struct {
	Rules []Rule
	Metas []Meta
}

// Rule is a named list of alternatives, non-empty for parsed grammars.
type Rule struct {
	Name string
	Alts []Alt
}

// Alt is a non-empty sequence of items with optional action text.
type Alt struct {
	Items  []Item
	Action string
}

// Meta is a grammar-wide directive.
type Meta struct {
	Key   string
	Value MetaValue
}

// Item is one of Raw, NamedItem, Repeat, Lookahead, Cut.
type Item interface {
	Accept(v ItemVisitor)
	String() string
}

// ItemVisitor handles each Item variant.
type ItemVisitor interface {
	VisitRaw(Raw)
	VisitNamedItem(NamedItem)
	VisitRepeat(Repeat)
	VisitLookahead(Lookahead)
	VisitCut(Cut)
}

// Raw is a grammar symbol (rule name, token name, or quoted literal) as written in grammar source.
type Raw struct {
	Text string
}

// NamedItem binds an item to a variable name usable in action text.
type NamedItem struct {
	Name string
	Item Item
}

// Repeat matches Item from AtLeast to AtMost times, AtMost may be Unbounded.
type Repeat struct {
	AtLeast int
	AtMost  int
	Item    Item
}

// Lookahead checks whether Item matches (Positive) or does not match, consuming nothing.
type Lookahead struct {
	Positive bool
	Item     Item
}

// Cut commits the alternative: no other alternatives are tried after it is passed.
type Cut struct{}

func (i Raw) Accept(v ItemVisitor)       { v.VisitRaw(i) }
func (i NamedItem) Accept(v ItemVisitor) { v.VisitNamedItem(i) }
func (i Repeat) Accept(v ItemVisitor)    { v.VisitRepeat(i) }
func (i Lookahead) Accept(v ItemVisitor) { v.VisitLookahead(i) }
func (i Cut) Accept(v ItemVisitor)       { v.VisitCut(i) }

func (i Raw) String() string       { return renderItem(i) }
func (i NamedItem) String() string { return renderItem(i) }
func (i Repeat) String() string    { return renderItem(i) }
func (i Lookahead) String() string { return renderItem(i) }
func (i Cut) String() string       { return renderItem(i) }

// MetaValue is one of NoValue, NumberValue, StringValue.
type MetaValue interface {
	Accept(v MetaValueVisitor)
	String() string
}

// MetaValueVisitor handles each MetaValue variant.
type MetaValueVisitor interface {
	VisitNoValue(NoValue)
	VisitNumberValue(NumberValue)
	VisitStringValue(StringValue)
}

// NoValue is the value of a directive having no payload.
type NoValue struct{}

type NumberValue struct {
	Value float64
}

type StringValue struct {
	Value string
}

func (v NoValue) Accept(mv MetaValueVisitor)     { mv.VisitNoValue(v) }
func (v NumberValue) Accept(mv MetaValueVisitor) { mv.VisitNumberValue(v) }
func (v StringValue) Accept(mv MetaValueVisitor) { mv.VisitStringValue(v) }

func (v NoValue) String() string {
	return ""
}

func (v NumberValue) String() string {
	return strconv.FormatFloat(v.Value, 'g', -1, 64)
}

func (v StringValue) String() string {
	return v.Value
}

func (m Meta) String() string {
	if m.Value == nil {
		return "@" + m.Key
	}

	value := m.Value.String()
	if value == "" {
		return "@" + m.Key
	}

	return "@" + m.Key + " " + value
}

func (a Alt) String() string {
	var sb strings.Builder
	for i, item := range a.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(item.String())
	}
	if a.Action != "" {
		sb.WriteString(" { ")
		sb.WriteString(a.Action)
		sb.WriteString(" }")
	}
	return sb.String()
}

// String renders the rule with one alternative per indented line.
func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.Name)
	sb.WriteString(":\n")
	for _, alt := range r.Alts {
		sb.WriteString("    | ")
		sb.WriteString(alt.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String renders the grammar in the notation langdef parses: metas first, then rules.
func (g *Grammar) String() string {
	var sb strings.Builder
	for _, m := range g.Metas {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	if len(g.Metas) > 0 && len(g.Rules) > 0 {
		sb.WriteByte('\n')
	}
	for _, r := range g.Rules {
		sb.WriteString(r.String())
	}
	return sb.String()
}

// RuleNames returns rule names in declaration order.
func (g *Grammar) RuleNames() []string {
	result := make([]string, len(g.Rules))
	for i, r := range g.Rules {
		result[i] = r.Name
	}
	return result
}

// Meta returns the value of the last directive with given key.
func (g *Grammar) Meta(key string) (MetaValue, bool) {
	for i := len(g.Metas) - 1; i >= 0; i-- {
		if g.Metas[i].Key == key {
			return g.Metas[i].Value, true
		}
	}
	return nil, false
}
