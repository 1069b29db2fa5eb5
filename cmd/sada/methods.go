package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RMahshie/sada/pkg/models"
)

func newMethodsCmd(a *app) *cobra.Command {
	output := textFormat
	cmd := &cobra.Command{
		Use:   "methods",
		Short: "Describe the calculation methods, their fields and references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			infos := a.svc.Methods()
			if output != textFormat {
				return printStructured(cmd.OutOrStdout(), output, infos)
			}
			return printMethods(cmd.OutOrStdout(), infos)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", output, outputUsage())
	return cmd
}

func printMethods(out io.Writer, infos []models.MethodInfo) error {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s\t%s\n", info.Name, info.Title)
		for _, f := range info.Fields {
			fmt.Fprintf(w, "  %s\t%s\n", f.Name, f.Description)
		}
		fmt.Fprintf(w, "  outputs\t%s\n", strings.Join(info.Outputs, ", "))
		if info.Criterion != "" {
			fmt.Fprintf(w, "  criterion\t%s\n", info.Criterion)
		}
		for _, ref := range info.References {
			fmt.Fprintf(w, "  reference\t%s\n", ref.Citation)
			fmt.Fprintf(w, "  \t%s\n", ref.URL)
		}
	}
	return w.Flush()
}
