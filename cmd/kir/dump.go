package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/waozixyz/kir/internal/logger"
	"github.com/waozixyz/kir/pkg/dump"
)

func newDumpCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	opts := dump.Options{}

	cmd := &cobra.Command{
		Use:   "dump <file.kir>",
		Short: "Print the component tree of a KIR file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(args[0], flags.strict)
			if err != nil {
				return err
			}
			if flags.verbose {
				log.WithFields(map[string]any{
					"file":       args[0],
					"components": doc.Root.Count(),
				}).Debug("loaded document")
			}
			fmt.Fprint(cmd.OutOrStdout(), dump.Tree(doc.Root, opts))
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.MaxDepth, "depth", 0, "Limit tree depth (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.ShowStyle, "style", false, "Show key style fields per node")
	cmd.Flags().BoolVar(&opts.ShowBounds, "bounds", false, "Show computed bounds per node")
	cmd.Flags().BoolVar(&opts.ShowHidden, "hidden", false, "Include hidden nodes")

	return cmd
}
