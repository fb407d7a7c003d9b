// SPDX-License-Identifier: Unlicense OR MIT

package main

// A custom widget drawing arbitrary geometry. The program renders
// one frame with the pointer at the given position into a PNG file.

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"flexui.org/app"
	"flexui.org/example/geometry/rainbow"
	"flexui.org/f32"
	"flexui.org/font/gofont"
	"flexui.org/io/event"
	"flexui.org/io/pointer"
	"flexui.org/layout"
	"flexui.org/op"
	"flexui.org/raster"
	"flexui.org/text"
	"flexui.org/unit"
	"flexui.org/widget"
)

var (
	output  = flag.String("o", "geometry.png", "output file")
	width   = flag.Float64("width", 800, "window width")
	height  = flag.Float64("height", 600, "window height")
	cursorX = flag.Float64("x", -1, "pointer x position, negative for no pointer")
	cursorY = flag.Float64("y", -1, "pointer y position")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func view() widget.Widget {
	content := widget.NewColumn(
		rainbow.New(),
		widget.NewText("In this example we draw a custom widget Rainbow, using "+
			"the Mesh primitive. This primitive supplies a list of "+
			"triangles, expressed as vertices and indices."),
		widget.NewText("Move your cursor over it, and see the center vertex "+
			"follow you!"),
		widget.NewText("Every Vertex defines its own color. You could use the "+
			"Mesh primitive to render virtually any two-dimensional "+
			"geometry for your widget."),
	).
		WithPadding(layout.UniformInset(20)).
		WithSpacing(20).
		WithMaxWidth(500)

	scrollable := widget.NewScrollable(
		widget.NewContainer(content).WithWidth(unit.Fill).CenterX(),
	)

	return widget.NewContainer(scrollable).
		WithWidth(unit.Fill).
		WithHeight(unit.Fill).
		CenterY()
}

func run() error {
	size := f32.Sz(float32(*width), float32(*height))
	shaper := text.NewShaper(gofont.Regular().Face)
	ui := app.Build(view(), size, app.Cache{}, shaper)

	var cursor widget.Cursor
	if *cursorX >= 0 && *cursorY >= 0 {
		p := f32.Pt(float32(*cursorX), float32(*cursorY))
		cursor = widget.At(p)
		ui.Update([]event.Event{pointer.Event{Kind: pointer.Move, Position: p}}, cursor, shaper)
	}

	var ops op.Ops
	ui.Draw(op.NewRecorder(&ops), widget.NewTheme(), cursor)
	img := image.NewRGBA(image.Rect(0, 0, int(*width), int(*height)))
	raster.New(shaper).Frame(&ops, img)

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
