// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides the drawing primitives for 2D graphics.

A Quad fills a rectangle, optionally with rounded corners and a
border. A Mesh draws colored triangles. A Text draws a run of text
inside a rectangle.

Primitives are drawn by passing them to an op.Renderer.
*/
package paint
