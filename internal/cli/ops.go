// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"flexui.org/op"
)

func newOpsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ops [scene]",
		Short: "Print the drawing primitives of a scene after its script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, res, _, err := opts.run(cmd, args[0])
			if err != nil {
				return err
			}
			var ops op.Ops
			hint := res.UI.Draw(op.NewRecorder(&ops), s.Theme, res.Cursor)
			w := cmd.OutOrStdout()
			if err := writeOps(w, &ops, 0); err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "cursor %v\n", hint)
			return err
		},
	}
}

// writeOps writes a line per primitive of ops, with the content of
// clips indented below them.
func writeOps(w io.Writer, ops *op.Ops, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, p := range ops.List() {
		if c, ok := p.(op.ClipOp); ok {
			if _, err := fmt.Fprintf(w, "%sclip %v\n", indent, c.Rect); err != nil {
				return err
			}
			if err := writeOps(w, c.Ops, depth+1); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s%v\n", indent, p); err != nil {
			return err
		}
	}
	return nil
}
