package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"sigs.k8s.io/yaml"

	"github.com/RMahshie/sada/pkg/models"
)

const (
	textFormat = "text"
	jsonFormat = "json"
	yamlFormat = "yaml"
)

var (
	legalOutputTypes = []string{textFormat, jsonFormat, yamlFormat}
)

func outputUsage() string {
	return fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", "))
}

func validateOutput(output string) error {
	if !slices.Contains(legalOutputTypes, output) {
		return fmt.Errorf("output format must be one of %s", strings.Join(legalOutputTypes, ", "))
	}
	return nil
}

// printStructured writes v as JSON or YAML
func printStructured(w io.Writer, output string, v any) error {
	var (
		marshalled []byte
		err        error
	)
	switch output {
	case jsonFormat:
		marshalled, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			marshalled = append(marshalled, '\n')
		}
	case yamlFormat:
		marshalled, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unsupported structured output %q", output)
	}
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = w.Write(marshalled)
	return err
}

func printCalculation(w io.Writer, output string, calc *models.Calculation) error {
	if output != textFormat {
		return printStructured(w, output, calc)
	}

	for _, line := range calc.Lines {
		fmt.Fprintln(w, line)
	}
	printAssessment(w, calc.Assessment)
	return nil
}

func printAssessment(w io.Writer, a *models.Assessment) {
	if a == nil {
		return
	}
	verdict := "not audible"
	if a.Audible {
		verdict = "audible"
	}
	fmt.Fprintf(w, "Criterion %s: %s\n", a.Criterion, verdict)
}
