// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"flexui.org/layout"
)

func newLayoutCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "layout [scene]",
		Short: "Print the layout tree of a scene after its script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, _, err := opts.run(cmd, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), layout.Format(res.UI.Node()))
			return err
		},
	}
}
