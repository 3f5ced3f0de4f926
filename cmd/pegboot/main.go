/*
pegboot is a console utility translating grammar description to text, JSON, YAML, TOML, or Go file.
Usage is

	pegboot [-f <format>] [-o <name>] [-p <name>] [-v <name>] [--full-source=false] [--log-level <level>] <file>

-f <format> defines output format: text (default), json, yaml, toml, or go;

-o <name> defines output file name, default is standard output for text, json, yaml, and toml formats
and the name of input file with .go suffix for go format;

-p <name> defines Go package name, default is directory name of output file;

-v <name> defines generated Go variable name of type *grammar.Grammar, default is the name of the first rule;

--full-source=false allows unparsed lines at the end of grammar description;

--log-level <level> defines logging level for messages written to standard error output;

<file> defines grammar definition file parsable by langdef.Parse().

Every flag may also be set with PEGBOOT_<FLAG> environment variable, e.g. PEGBOOT_LOG_LEVEL=debug.
*/
package main

import (
	"os"
)

func main() {
	if e := newRootCommand(os.Stdout, os.Stderr).Execute(); e != nil {
		os.Exit(3)
	}
}
