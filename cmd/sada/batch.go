package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RMahshie/sada/internal/batch"
	"github.com/RMahshie/sada/pkg/models"
)

type batchEntry struct {
	Name        string              `json:"name"`
	Method      string              `json:"method"`
	Calculation *models.Calculation `json:"calculation,omitempty"`
	Error       string              `json:"error,omitempty"`
}

func newBatchCmd(a *app) *cobra.Command {
	output := textFormat
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Calculate every scenario of a TOML batch file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}

			f, err := batch.Load(args[0])
			if err != nil {
				return err
			}

			results, err := batch.Run(cmd.Context(), a.svc, f)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output == textFormat {
				for i, r := range results {
					if i > 0 {
						fmt.Fprintln(w)
					}
					fmt.Fprintf(w, "== %s (%s)\n", r.Scenario.Name, r.Scenario.Method)
					if r.Err != nil {
						fmt.Fprintf(w, "error: %v\n", r.Err)
						continue
					}
					for _, line := range r.Calculation.Lines {
						fmt.Fprintln(w, line)
					}
					printAssessment(w, r.Calculation.Assessment)
				}
			} else {
				entries := make([]batchEntry, 0, len(results))
				for _, r := range results {
					e := batchEntry{Name: r.Scenario.Name, Method: r.Scenario.Method, Calculation: r.Calculation}
					if r.Err != nil {
						e.Error = r.Err.Error()
					}
					entries = append(entries, e)
				}
				if err := printStructured(w, output, entries); err != nil {
					return err
				}
			}

			if n := batch.Failed(results); n > 0 {
				return fmt.Errorf("%d of %d scenarios failed", n, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", output, outputUsage())
	return cmd
}
