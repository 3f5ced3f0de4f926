package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ava12/pegboot/grammar"
)

var identRe = regexp.MustCompile("^[A-Za-z_][A-Za-z_0-9]*$")

// grammarPackage is the name generated Go source refers to grammar package with.
const grammarPackage = "grammar"

type grammarDump struct {
	Metas []metaDump `json:"metas" yaml:"metas" toml:"metas"`
	Rules []ruleDump `json:"rules" yaml:"rules" toml:"rules"`
}

type ruleDump struct {
	Name string    `json:"name" yaml:"name" toml:"name"`
	Alts []altDump `json:"alts" yaml:"alts" toml:"alts"`
}

type altDump struct {
	Items  []*itemDump `json:"items" yaml:"items" toml:"items"`
	Action string      `json:"action,omitempty" yaml:"action,omitempty" toml:"action,omitempty"`
}

// itemDump is a tagged form of grammar.Item, Kind is one of raw, named, repeat, lookahead, cut.
type itemDump struct {
	Kind     string    `json:"kind" yaml:"kind" toml:"kind"`
	Text     string    `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Name     string    `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	AtLeast  *int      `json:"atLeast,omitempty" yaml:"atLeast,omitempty" toml:"atLeast,omitempty"`
	AtMost   *int      `json:"atMost,omitempty" yaml:"atMost,omitempty" toml:"atMost,omitempty"`
	Positive *bool     `json:"positive,omitempty" yaml:"positive,omitempty" toml:"positive,omitempty"`
	Item     *itemDump `json:"item,omitempty" yaml:"item,omitempty" toml:"item,omitempty"`
}

// metaDump is a tagged form of grammar.Meta, Kind is one of none, number, string.
type metaDump struct {
	Key    string   `json:"key" yaml:"key" toml:"key"`
	Kind   string   `json:"kind" yaml:"kind" toml:"kind"`
	Number *float64 `json:"number,omitempty" yaml:"number,omitempty" toml:"number,omitempty"`
	String *string  `json:"string,omitempty" yaml:"string,omitempty" toml:"string,omitempty"`
}

type itemDumper struct {
	result *itemDump
}

func dumpItem(i grammar.Item) *itemDump {
	d := &itemDumper{}
	i.Accept(d)
	return d.result
}

func (d *itemDumper) VisitRaw(i grammar.Raw) {
	d.result = &itemDump{Kind: "raw", Text: i.Text}
}

func (d *itemDumper) VisitNamedItem(i grammar.NamedItem) {
	d.result = &itemDump{Kind: "named", Name: i.Name, Item: dumpItem(i.Item)}
}

func (d *itemDumper) VisitRepeat(i grammar.Repeat) {
	d.result = &itemDump{Kind: "repeat", AtLeast: &i.AtLeast, Item: dumpItem(i.Item)}
	if i.AtMost != grammar.Unbounded {
		d.result.AtMost = &i.AtMost
	}
}

func (d *itemDumper) VisitLookahead(i grammar.Lookahead) {
	d.result = &itemDump{Kind: "lookahead", Positive: &i.Positive, Item: dumpItem(i.Item)}
}

func (d *itemDumper) VisitCut(grammar.Cut) {
	d.result = &itemDump{Kind: "cut"}
}

type metaDumper struct {
	result *metaDump
}

func (d *metaDumper) VisitNoValue(grammar.NoValue) {
	d.result.Kind = "none"
}

func (d *metaDumper) VisitNumberValue(v grammar.NumberValue) {
	d.result.Kind = "number"
	d.result.Number = &v.Value
}

func (d *metaDumper) VisitStringValue(v grammar.StringValue) {
	d.result.Kind = "string"
	d.result.String = &v.Value
}

func dumpGrammar(gr *grammar.Grammar) grammarDump {
	result := grammarDump{
		Metas: make([]metaDump, len(gr.Metas)),
		Rules: make([]ruleDump, len(gr.Rules)),
	}

	for i, m := range gr.Metas {
		result.Metas[i] = metaDump{Key: m.Key, Kind: "none"}
		if m.Value != nil {
			m.Value.Accept(&metaDumper{&result.Metas[i]})
		}
	}

	for i, r := range gr.Rules {
		rd := ruleDump{Name: r.Name, Alts: make([]altDump, len(r.Alts))}
		for j, a := range r.Alts {
			ad := altDump{Items: make([]*itemDump, len(a.Items)), Action: a.Action}
			for k, item := range a.Items {
				ad.Items[k] = dumpItem(item)
			}
			rd.Alts[j] = ad
		}
		result.Rules[i] = rd
	}

	return result
}

func makeJSON(gr *grammar.Grammar) ([]byte, error) {
	content, e := json.MarshalIndent(dumpGrammar(gr), "", "  ")
	if e != nil {
		return nil, errors.Wrap(e, "cannot encode JSON")
	}

	return append(content, '\n'), nil
}

func makeYAML(gr *grammar.Grammar) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(2)
	if e := encoder.Encode(dumpGrammar(gr)); e != nil {
		return nil, errors.Wrap(e, "cannot encode YAML")
	}
	if e := encoder.Close(); e != nil {
		return nil, errors.Wrap(e, "cannot encode YAML")
	}

	return buffer.Bytes(), nil
}

func makeTOML(gr *grammar.Grammar) ([]byte, error) {
	var buffer bytes.Buffer
	if e := toml.NewEncoder(&buffer).Encode(dumpGrammar(gr)); e != nil {
		return nil, errors.Wrap(e, "cannot encode TOML")
	}

	return buffer.Bytes(), nil
}

// goItemWriter writes Go expression constructing visited item.
type goItemWriter struct {
	buffer *bytes.Buffer
}

func (w goItemWriter) write(i grammar.Item) {
	i.Accept(w)
}

func (w goItemWriter) VisitRaw(i grammar.Raw) {
	fmt.Fprintf(w.buffer, "grammar.Raw{Text: %q}", i.Text)
}

func (w goItemWriter) VisitNamedItem(i grammar.NamedItem) {
	fmt.Fprintf(w.buffer, "grammar.NamedItem{Name: %q, Item: ", i.Name)
	w.write(i.Item)
	w.buffer.WriteString("}")
}

func (w goItemWriter) VisitRepeat(i grammar.Repeat) {
	atMost := strconv.Itoa(i.AtMost)
	if i.AtMost == grammar.Unbounded {
		atMost = "grammar.Unbounded"
	}
	fmt.Fprintf(w.buffer, "grammar.Repeat{AtLeast: %d, AtMost: %s, Item: ", i.AtLeast, atMost)
	w.write(i.Item)
	w.buffer.WriteString("}")
}

func (w goItemWriter) VisitLookahead(i grammar.Lookahead) {
	fmt.Fprintf(w.buffer, "grammar.Lookahead{Positive: %t, Item: ", i.Positive)
	w.write(i.Item)
	w.buffer.WriteString("}")
}

func (w goItemWriter) VisitCut(grammar.Cut) {
	w.buffer.WriteString("grammar.Cut{}")
}

func (w goItemWriter) VisitNoValue(grammar.NoValue) {
	w.buffer.WriteString("grammar.NoValue{}")
}

func (w goItemWriter) VisitNumberValue(v grammar.NumberValue) {
	fmt.Fprintf(w.buffer, "grammar.NumberValue{Value: %s}", strconv.FormatFloat(v.Value, 'g', -1, 64))
}

func (w goItemWriter) VisitStringValue(v grammar.StringValue) {
	fmt.Fprintf(w.buffer, "grammar.StringValue{Value: %q}", v.Value)
}

func makeGo(gr *grammar.Grammar, p *params) ([]byte, error) {
	if e := defaultNames(gr, p); e != nil {
		return nil, e
	}

	var buffer bytes.Buffer
	w := goItemWriter{&buffer}

	buffer.WriteString("// Code generated with pegboot.\n\n" +
		"package " + p.packageName + "\n\n" +
		"import \"github.com/ava12/pegboot/grammar\"\n\n" +
		"var " + p.varName + " = &grammar.Grammar{\n")

	buffer.WriteString("\tRules: []grammar.Rule{\n")
	for _, r := range gr.Rules {
		fmt.Fprintf(&buffer, "\t\t{Name: %q, Alts: []grammar.Alt{\n", r.Name)
		for _, a := range r.Alts {
			buffer.WriteString("\t\t\t{Items: []grammar.Item{")
			for i, item := range a.Items {
				if i > 0 {
					buffer.WriteString(", ")
				}
				w.write(item)
			}
			buffer.WriteString("}")
			if a.Action != "" {
				fmt.Fprintf(&buffer, ", Action: %q", a.Action)
			}
			buffer.WriteString("},\n")
		}
		buffer.WriteString("\t\t}},\n")
	}
	buffer.WriteString("\t},\n")

	if len(gr.Metas) != 0 {
		buffer.WriteString("\tMetas: []grammar.Meta{\n")
		for _, m := range gr.Metas {
			fmt.Fprintf(&buffer, "\t\t{Key: %q, Value: ", m.Key)
			if m.Value == nil {
				w.VisitNoValue(grammar.NoValue{})
			} else {
				m.Value.Accept(w)
			}
			buffer.WriteString("},\n")
		}
		buffer.WriteString("\t},\n")
	}

	buffer.WriteString("}\n")
	return buffer.Bytes(), nil
}
