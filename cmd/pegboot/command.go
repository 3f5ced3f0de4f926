package main

import (
	"fmt"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava12/pegboot/grammar"
	"github.com/ava12/pegboot/langdef"
)

const envPrefix = "pegboot"

const (
	textFormat = "text"
	jsonFormat = "json"
	yamlFormat = "yaml"
	tomlFormat = "toml"
	goFormat   = "go"
)

type params struct {
	inFileName  string
	outFileName string
	format      *enumFlag
	packageName string
	varName     string
	fullSource  bool
	logLevel    string
}

func newParams() *params {
	return &params{
		format:     newEnumFlag(textFormat, []string{textFormat, jsonFormat, yamlFormat, tomlFormat, goFormat}),
		fullSource: true,
		logLevel:   "warn",
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	p := newParams()
	command := &cobra.Command{
		Use:   "pegboot [flags] <file>",
		Short: "Convert grammar description to text, JSON, YAML, TOML, or Go source",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return checkEnvironmentVariables(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p.inFileName = args[0]
			return run(p, stdout, stderr)
		},
	}
	command.SetOut(stdout)
	command.SetErr(stderr)

	flags := command.Flags()
	flags.VarP(p.format, "format", "f", "output format: "+p.format.Allowed())
	flags.StringVarP(&p.outFileName, "output", "o", "", "output file name, default is stdout or input file name with .go suffix for go format")
	flags.StringVarP(&p.packageName, "package", "p", "", "Go package name, default is dir name of output file")
	flags.StringVarP(&p.varName, "var", "v", "", "Go variable name, default is the first rule name")
	flags.BoolVar(&p.fullSource, "full-source", p.fullSource, "fail if grammar description contains unparsed lines")
	flags.StringVar(&p.logLevel, "log-level", p.logLevel, "log level: panic, fatal, error, warn, info, debug, trace")
	return command
}

// checkEnvironmentVariables sets flags not given on command line from PEGBOOT_* environment variables.
func checkEnvironmentVariables(command *cobra.Command) error {
	var errs []string
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	command.Flags().VisitAll(func(f *pflag.Flag) {
		configName := strings.ReplaceAll(f.Name, "-", "_")
		if !f.Changed && v.IsSet(configName) {
			e := command.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(configName)))
			if e != nil {
				errs = append(errs, e.Error())
			}
		}
	})

	if len(errs) == 0 {
		return nil
	}
	return errors.Errorf("error mapping environment variables to command flags: %s", strings.Join(errs, "; "))
}

func newLogger(level string, out io.Writer) (*logrus.Logger, error) {
	lvl, e := logrus.ParseLevel(level)
	if e != nil {
		return nil, errors.Wrap(e, "invalid log level")
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return logger, nil
}

func run(p *params, stdout, stderr io.Writer) error {
	logger, e := newLogger(p.logLevel, stderr)
	if e != nil {
		return e
	}

	format := p.format.String()
	if p.outFileName == "" && format == goFormat {
		ext := filepath.Ext(p.inFileName)
		p.outFileName = p.inFileName[:len(p.inFileName)-len(ext)] + ".go"
	}
	log := logger.WithFields(logrus.Fields{"input": p.inFileName, "format": format})

	src, e := os.ReadFile(p.inFileName)
	if e != nil {
		return errors.Wrapf(e, "cannot read %s", p.inFileName)
	}

	opts := []langdef.Option{langdef.WithLogger(log)}
	if p.fullSource {
		opts = append(opts, langdef.WithFullSource())
	}
	gr, e := langdef.ParseBytes(p.inFileName, src, opts...)
	if e != nil {
		log.WithError(e).Error("cannot parse grammar")
		return e
	}
	log.WithFields(logrus.Fields{"rules": len(gr.Rules), "metas": len(gr.Metas)}).Info("grammar parsed")

	var content []byte
	switch format {
	case jsonFormat:
		content, e = makeJSON(gr)
	case yamlFormat:
		content, e = makeYAML(gr)
	case tomlFormat:
		content, e = makeTOML(gr)
	case goFormat:
		content, e = makeGo(gr, p)
	default:
		content = []byte(gr.String())
	}
	if e != nil {
		return e
	}

	if p.outFileName == "" || p.outFileName == "-" {
		_, e = stdout.Write(content)
		return errors.Wrap(e, "cannot write output")
	}

	e = os.WriteFile(p.outFileName, content, 0o666)
	if e != nil {
		return errors.Wrapf(e, "cannot write %s", p.outFileName)
	}
	log.WithField("output", p.outFileName).Info("output written")
	return nil
}

func defaultNames(gr *grammar.Grammar, p *params) error {
	if p.packageName == "" {
		dir, e := filepath.Abs(p.outFileName)
		if e != nil {
			return errors.Wrap(e, "cannot resolve output directory")
		}

		p.packageName = filepath.Base(filepath.Dir(dir))
	}
	if p.varName == "" && len(gr.Rules) > 0 {
		p.varName = gr.Rules[0].Name
		if reservedName(p.varName) {
			p.varName += "Grammar"
		}
	}

	if !identRe.MatchString(p.packageName) || token.IsKeyword(p.packageName) {
		return errors.Errorf("invalid package name: %q", p.packageName)
	}
	if !identRe.MatchString(p.varName) || reservedName(p.varName) {
		return errors.Errorf("invalid variable name: %q", p.varName)
	}
	return nil
}

// reservedName reports whether name cannot be declared in generated file scope.
func reservedName(name string) bool {
	return token.IsKeyword(name) || name == grammarPackage
}
