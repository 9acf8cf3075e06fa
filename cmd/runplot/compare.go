package main

import (
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "compare <log>... [flags]",
		Short: "render many run logs: one page per catalog entry, one curve per run",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, c, err := flags.renderer()
			if err != nil {
				return err
			}
			doc, err := r.RenderManyWith(c, args, flags.output)
			if err != nil {
				return err
			}
			return flags.finish(cmd, doc)
		},
	}

	flags.bind(cmd)
	return cmd
}
