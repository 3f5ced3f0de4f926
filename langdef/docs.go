/*
Package langdef converts textual grammar description to grammar.Grammar structure.

Grammar is described using a line-oriented PEG-like notation. Self-definition of this notation is:

	grammar       := (rule | meta | NEWLINE | NL | COMMENT)*
	meta          := '@' NAME (NEWLINE | NAME NEWLINE | NUMBER NEWLINE)
	rule          := NAME ':' (alts NEWLINE | NEWLINE) indented_alts?
	alts          := alternative ('|' alternative)*
	alternative   := item+ ('{' action '}')?
	item          := NAME | STRING
	indented_alts := INDENT ('|' alts NEWLINE | NL | COMMENT)* DEDENT

Description must be a valid UTF-8 text. Token kinds are described in lexer package.

A meta-directive is a line starting with @ followed by the directive key and an optional value.
A name value is stored as grammar.StringValue, a number value as grammar.NumberValue,
a directive with no value gets grammar.NoValue. Quoted string values are not supported,
such a directive is not recognized.

A rule is a name followed by a colon and a list of alternatives separated with |.
The list may continue on the following indented lines, each of them starting with |:

	expr: term '+' expr { add(term, expr) }
	    | term '-' expr { sub(term, expr) }
	    | term

A rule must contain at least one alternative.

Every alternative is a non-empty sequence of names and quoted strings,
optionally followed by an action enclosed in curly brackets.
Action text may contain balanced curly brackets, its tokens are joined with single spaces.

Parsing stops at the first line that is neither a rule, a directive, nor a blank or comment line.
Remaining tokens are ignored unless WithFullSource option is used,
though the rest of the source is still checked for lexical errors.

Rule names and directive keys need not be unique, all declarations are kept in the order of appearance.
No rule references are resolved.
*/
package langdef
