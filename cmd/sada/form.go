package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RMahshie/sada/internal/form"
)

const (
	clipboardSystem = "system"
	clipboardStdout = "stdout"
)

// newFormCmd runs a line-oriented editor over one method's form.
// Input lines are field=value assignments or one of calc, show, clear, copy and quit.
func newFormCmd(a *app) *cobra.Command {
	target := clipboardSystem
	cmd := &cobra.Command{
		Use:   "form METHOD",
		Short: "Fill in a method's fields interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, err := a.engine.Lookup(args[0])
			if err != nil {
				return err
			}

			var cb form.Clipboard = form.SystemClipboard{}
			switch target {
			case clipboardSystem:
			case clipboardStdout:
				cb = form.WriterClipboard{W: cmd.OutOrStdout()}
			default:
				return fmt.Errorf("clipboard must be %s or %s", clipboardSystem, clipboardStdout)
			}

			return runForm(cmd, form.New(calc), cb, calc.Title())
		},
	}
	cmd.Flags().StringVar(&target, "clipboard", target, "Where copy writes results: system or stdout")
	return cmd
}

func runForm(cmd *cobra.Command, f *form.Form, cb form.Clipboard, title string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: enter field=value, calc, show, clear, copy or quit\n", title)

	printLines := func() {
		for _, line := range f.Lines() {
			if line != "" {
				fmt.Fprintln(out, line)
			}
		}
	}

	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
		case "quit", "exit":
			return nil
		case "calc":
			if err := f.Calculate(); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			printLines()
		case "show":
			for _, key := range f.Keys() {
				fmt.Fprintf(out, "%s=%s\n", key, f.Value(key))
			}
			printLines()
		case "clear":
			f.Clear()
			fmt.Fprintln(out, "cleared")
		case "copy":
			if _, err := f.Copy(cb); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "Results copied to clipboard")
		default:
			name, value, ok := strings.Cut(line, "=")
			if !ok {
				fmt.Fprintf(out, "unknown command %q\n", line)
				continue
			}
			if err := f.Set(strings.TrimSpace(name), value); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		}
	}
	return sc.Err()
}
