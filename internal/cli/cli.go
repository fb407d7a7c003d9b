// SPDX-License-Identifier: Unlicense OR MIT

/*
Package cli implements the flexui command.

The command loads a scene file describing a widget tree and a script
of input events, plays the script and reports the result:

	flexui layout scene.toml      # print the layout tree
	flexui ops scene.toml         # print the drawing primitives
	flexui render -o out.png scene.toml

Every command accepts --verbose (-v) for debug logging of the user
interface passes, --typeface to pick one of the bundled fonts ("go",
"go-mono" or "roboto") and --font to measure and draw text with a
TrueType or OpenType file instead.
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"flexui.org/app"
	"flexui.org/font"
	"flexui.org/font/gofont"
	"flexui.org/font/opentype"
	"flexui.org/font/roboto"
	"flexui.org/internal/scene"
	"flexui.org/text"
)

// options are the flags shared by every command.
type options struct {
	verbose  bool
	font     string
	typeface string
}

// typefaces are the bundled fonts selectable with --typeface.
var typefaces = map[string]font.Font{
	"go":      {Typeface: "Go"},
	"go-mono": {Typeface: "Go", Variant: "Mono"},
	"roboto":  {Typeface: "Roboto"},
}

var errUnknownTypeface = errors.New("unknown typeface")

// Execute runs the flexui command with the arguments of the process.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	root := &cobra.Command{
		Use:          "flexui",
		Short:        "Lay out, inspect and render flexui scenes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.font, "font", "", "font file for measuring and drawing text")
	root.PersistentFlags().StringVar(&opts.typeface, "typeface", "go", "bundled font: go, go-mono or roboto")

	root.AddCommand(newLayoutCmd(opts))
	root.AddCommand(newOpsCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	return root
}

// shaper returns a text shaper for the font of opts.
func (o *options) shaper() (*text.Shaper, error) {
	if o.font == "" {
		f, ok := typefaces[o.typeface]
		if !ok {
			return nil, fmt.Errorf("%q: %w", o.typeface, errUnknownTypeface)
		}
		faces := append(gofont.Collection(), roboto.Regular())
		return text.NewShaper(font.Lookup(faces, f)), nil
	}
	src, err := os.ReadFile(o.font)
	if err != nil {
		return nil, err
	}
	f, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", o.font, err)
	}
	return text.NewShaper(f), nil
}

// run loads the scene at path and plays its script.
func (o *options) run(cmd *cobra.Command, path string) (*scene.Scene, scene.Result, *text.Shaper, error) {
	logger := loggerFromContext(cmd.Context())
	shaper, err := o.shaper()
	if err != nil {
		return nil, scene.Result{}, nil, err
	}
	s, err := scene.Load(path)
	if err != nil {
		return nil, scene.Result{}, nil, err
	}
	p := newProgress(logger)
	res := s.Run(shaper, app.WithLogger(logger))
	p.done("ran scene", "path", path, "steps", len(s.Steps), "messages", len(res.Messages))
	for _, msg := range res.Messages {
		logger.Info("message", "value", msg)
	}
	return s, res, shaper, nil
}
