package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// AddFlagValidation wraps a flag's value so bad input is rejected at
// parse time with a flag-specific message instead of surfacing later as
// a config error.
func AddFlagValidation(cmd *cobra.Command, flagName string, validator func(string) error) {
	flag := cmd.PersistentFlags().Lookup(flagName)
	if flag == nil {
		return
	}

	flag.Value = &validatingValue{
		Value:     flag.Value,
		validator: validator,
	}
}

type validatingValue struct {
	pflag.Value
	validator func(string) error
}

func (v *validatingValue) Set(val string) error {
	if v.validator != nil {
		if err := v.validator(val); err != nil {
			return err
		}
	}

	return v.Value.Set(val)
}

// oneOf builds a validator accepting only the listed values.
func oneOf(what string, allowed ...string) func(string) error {
	return func(val string) error {
		for _, a := range allowed {
			if val == a {
				return nil
			}
		}

		return fmt.Errorf("invalid %s %q, must be one of: %s",
			what, val, strings.Join(allowed, ", "))
	}
}
