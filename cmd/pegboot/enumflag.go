package main

import (
	"strings"

	"github.com/pkg/errors"
)

// enumFlag implements pflag.Value accepting one of enumerated values.
type enumFlag struct {
	value  string
	values []string
}

func newEnumFlag(defaultValue string, values []string) *enumFlag {
	return &enumFlag{defaultValue, values}
}

func (f *enumFlag) Type() string {
	return "{" + strings.Join(f.values, ",") + "}"
}

func (f *enumFlag) String() string {
	return f.value
}

func (f *enumFlag) Set(value string) error {
	for _, v := range f.values {
		if v == value {
			f.value = value
			return nil
		}
	}
	return errors.Errorf("must be one of %s", f.Allowed())
}

// Allowed returns comma separated list of accepted values.
func (f *enumFlag) Allowed() string {
	return strings.Join(f.values, ", ")
}
