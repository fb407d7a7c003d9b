// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"image"
	"image/png"
	"math"
	"os"

	"github.com/spf13/cobra"

	"flexui.org/op"
	"flexui.org/raster"
)

func newRenderCmd(opts *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene after its script to a PNG image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, res, shaper, err := opts.run(cmd, args[0])
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)
			var ops op.Ops
			res.UI.Draw(op.NewRecorder(&ops), s.Theme, res.Cursor)
			w, h := int(math.Ceil(float64(s.Size.Width))), int(math.Ceil(float64(s.Size.Height)))
			img := image.NewRGBA(image.Rect(0, 0, w, h))
			raster.New(shaper).Frame(&ops, img)
			if err := writePNG(output, img); err != nil {
				return err
			}
			p.done("rendered", "path", output, "width", w, "height", h, "primitives", ops.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "out.png", "output file")
	return cmd
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
