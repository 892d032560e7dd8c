package main

import (
	"github.com/spf13/cobra"

	"github.com/waozixyz/kir/internal/logger"
)

func newConvertCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "convert <in.kir> <out.kir>",
		Short: "Convert a KIR file between binary and JSON formats",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0], flags.strict)
			if err != nil {
				return err
			}
			if err := saveDocument(args[1], format, doc); err != nil {
				return err
			}
			if flags.verbose {
				log.WithFields(map[string]any{
					"in":  args[0],
					"out": args[1],
				}).Info("converted")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "to", "", "Output format: binary or json (default: by extension)")
	return cmd
}
