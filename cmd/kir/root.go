package main

import (
	"github.com/spf13/cobra"

	"github.com/waozixyz/kir/internal/logger"
)

type rootFlags struct {
	verbose bool
	strict  bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "kir",
		Short:         "kir inspects and converts KIR component-tree files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.verbose {
				return log.SetLevel("debug")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.strict, "strict", false, "Fail on malformed input instead of clamping")

	cmd.AddCommand(newDumpCmd(flags, log))
	cmd.AddCommand(newDiffCmd(flags, log))
	cmd.AddCommand(newConvertCmd(flags, log))
	cmd.AddCommand(newValidateCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
