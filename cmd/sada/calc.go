package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/pkg/models"
)

type CalcOptions struct {
	Output string
	Fields map[string]*string
	keys   []string
}

func DefaultCalcOptions() *CalcOptions {
	return &CalcOptions{
		Output: textFormat,
		Fields: make(map[string]*string),
	}
}

// newCalcCmd exposes one calculator as a subcommand with a string flag per input field
func newCalcCmd(a *app, c engine.Calculator) *cobra.Command {
	o := DefaultCalcOptions()
	cmd := &cobra.Command{
		Use:   c.Name(),
		Short: "Calculate sound levels with the " + c.Title(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(o.Output); err != nil {
				return err
			}
			calc, err := a.svc.Calculate(cmd.Context(), c.Name(), o.Raw())
			if err != nil {
				return err
			}
			return printCalculation(cmd.OutOrStdout(), o.Output, calc)
		},
	}
	o.Bind(cmd.Flags(), c.Fields())
	return cmd
}

func (o *CalcOptions) Bind(fs *pflag.FlagSet, fields []models.Field) {
	for _, f := range fields {
		o.Fields[f.Name] = fs.String(f.Name, "", f.Description)
		o.keys = append(o.keys, f.Name)
	}
	fs.StringVarP(&o.Output, "output", "o", o.Output, outputUsage())
}

// Raw returns the flag text of every field, "" for flags not given
func (o *CalcOptions) Raw() map[string]string {
	raw := make(map[string]string, len(o.keys))
	for _, k := range o.keys {
		raw[k] = *o.Fields[k]
	}
	return raw
}
