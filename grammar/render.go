package grammar

import (
	"strconv"
	"strings"
)

type itemPrinter struct {
	sb strings.Builder
}

func renderItem(i Item) string {
	p := &itemPrinter{}
	i.Accept(p)
	return p.sb.String()
}

// nested items that are not atoms get parenthesized
func (p *itemPrinter) nested(i Item) {
	switch i.(type) {
	case Raw, Cut:
		i.Accept(p)
	default:
		p.sb.WriteByte('(')
		i.Accept(p)
		p.sb.WriteByte(')')
	}
}

func (p *itemPrinter) VisitRaw(i Raw) {
	p.sb.WriteString(i.Text)
}

func (p *itemPrinter) VisitNamedItem(i NamedItem) {
	p.sb.WriteString(i.Name)
	p.sb.WriteByte('=')
	p.nested(i.Item)
}

func (p *itemPrinter) VisitRepeat(i Repeat) {
	p.nested(i.Item)
	switch {
	case i.AtLeast == 0 && i.AtMost == Unbounded:
		p.sb.WriteByte('*')
	case i.AtLeast == 1 && i.AtMost == Unbounded:
		p.sb.WriteByte('+')
	case i.AtLeast == 0 && i.AtMost == 1:
		p.sb.WriteByte('?')
	default:
		p.sb.WriteByte('{')
		p.sb.WriteString(strconv.Itoa(i.AtLeast))
		p.sb.WriteByte(',')
		if i.AtMost != Unbounded {
			p.sb.WriteString(strconv.Itoa(i.AtMost))
		}
		p.sb.WriteByte('}')
	}
}

func (p *itemPrinter) VisitLookahead(i Lookahead) {
	if i.Positive {
		p.sb.WriteByte('&')
	} else {
		p.sb.WriteByte('!')
	}
	p.nested(i.Item)
}

func (p *itemPrinter) VisitCut(Cut) {
	p.sb.WriteByte('~')
}
