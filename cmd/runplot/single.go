package main

import (
	"github.com/spf13/cobra"
)

func newSingleCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "single <log> [flags]",
		Short: "render one run log: criterion, loss and error pages with train/valid/test curves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := flags.renderer()
			if err != nil {
				return err
			}
			doc, err := r.RenderSingle(args[0], flags.output)
			if err != nil {
				return err
			}
			return flags.finish(cmd, doc)
		},
	}

	flags.bind(cmd)
	return cmd
}
