package cmd

import (
	"os"

	"github.com/koki-develop/samplesize/internal/logger"
	"github.com/koki-develop/samplesize/internal/report"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	logLevel string
	plain    bool
	noColor  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "samplesize",
		Short: "Calculate power-of-two downsampling factors for images",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logger.ParseLogLevel(flags.logLevel)
			if err != nil {
				return err
			}
			logger.Initialize(level, cmd.ErrOrStderr())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level (error, warn, info, debug, trace)")
	rootCmd.PersistentFlags().BoolVar(&flags.plain, "plain", false, "print tab separated output")
	rootCmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newCalcCmd(flags), newProbeCmd(flags))
	return rootCmd
}

func (f *rootFlags) writer(cmd *cobra.Command) *report.Writer {
	return report.NewWriter(cmd.OutOrStdout(), &report.Option{
		Plain:   f.plain,
		NoColor: f.noColor,
	})
}

func Execute() {
	err := newRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
