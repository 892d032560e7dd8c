package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waozixyz/kir/internal/logger"
	"github.com/waozixyz/kir/pkg/dump"
)

func newDiffCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <left.kir> <right.kir>",
		Short: "Compare two KIR files structurally",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			left, err := loadDocument(args[0], flags.strict)
			if err != nil {
				return err
			}
			right, err := loadDocument(args[1], flags.strict)
			if err != nil {
				return err
			}

			differ, report := dump.Diff(left.Root, right.Root)
			if !differ {
				if flags.verbose {
					log.Debug("trees are identical")
				}
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			return errors.New("trees differ")
		},
	}
	return cmd
}
