package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/RMahshie/sada/internal/config"
	"github.com/RMahshie/sada/internal/criteria"
	"github.com/RMahshie/sada/internal/engine"
	"github.com/RMahshie/sada/internal/engine/methods"
	"github.com/RMahshie/sada/internal/logging"
	"github.com/RMahshie/sada/internal/processing"
)

// app carries what every subcommand needs once configuration is loaded
type app struct {
	cfg      *config.Config
	engine   *engine.Engine
	svc      processing.CalculationService
	logLevel string
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	a := &app{engine: methods.NewEngine()}

	cmd := &cobra.Command{
		Use:   "sada",
		Short: "Sound attenuation calculations for fire alarm sounders",
		Long: "sada computes the sound levels reaching a room from a fire alarm sounder using the\n" +
			"Butler, Bowyer and Kew or the Halliwell and Sultan method.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level, overrides LOG_LEVEL")

	for _, c := range a.engine.Calculators() {
		cmd.AddCommand(newCalcCmd(a, c))
	}
	cmd.AddCommand(newBatchCmd(a))
	cmd.AddCommand(newMethodsCmd(a))
	cmd.AddCommand(newFormCmd(a))
	cmd.AddCommand(newServeCmd(a))

	return cmd
}

// init loads configuration, sets up logging and builds the calculation service.
// Commands other than serve log warnings only unless --log-level is given.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.Logging.Level
	switch {
	case cmd.Flags().Changed("log-level"):
		level = a.logLevel
	case cmd.Name() != serveCmdName:
		level = zerolog.WarnLevel.String()
	}
	logging.Setup(cfg.Server.Env, level)

	set, err := criteria.NewSet(a.engine, cfg.Criteria.Expressions())
	if err != nil {
		return fmt.Errorf("failed to compile criteria: %w", err)
	}

	a.cfg = cfg
	a.svc = processing.NewCalculationService(a.engine, set)
	return nil
}
