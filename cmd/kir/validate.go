package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waozixyz/kir"
	"github.com/waozixyz/kir/internal/logger"
)

func newValidateCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file.kir>",
		Short: "Check a KIR file for consistency violations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0], flags.strict)
			if err != nil {
				return err
			}
			errs := kir.Validate(doc.Root)
			if len(errs) == 0 {
				if flags.verbose {
					log.WithFields(map[string]any{"file": args[0]}).Info("valid")
				}
				return nil
			}
			for _, e := range errs {
				fmt.Fprintln(cmd.OutOrStdout(), e.Error())
			}
			return fmt.Errorf("%d violation(s) found", len(errs))
		},
	}
	return cmd
}
