// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// breaker splits text at line break opportunities, following the
// Unicode line breaking algorithm.
type breaker struct {
	seg *segment.Segmenter
}

func newBreaker() *breaker {
	return &breaker{seg: segment.NewSegmenter(uax14.NewLineWrap())}
}

// segments returns the pieces of a paragraph between consecutive
// break opportunities. Every piece keeps its trailing spaces.
func (b *breaker) segments(para string) []string {
	var segs []string
	b.seg.Init(strings.NewReader(para))
	for b.seg.Next() {
		segs = append(segs, b.seg.Text())
	}
	return segs
}

// wrap breaks str into lines no wider than maxWidth, as measured by
// advance. Newlines force a break. A segment wider than maxWidth
// gets a line of its own and overflows.
func (b *breaker) wrap(str string, maxWidth float32, advance func(string) float32) []Line {
	var lines []Line
	for _, para := range strings.Split(str, "\n") {
		para = strings.TrimRight(para, "\r")
		var (
			line  strings.Builder
			width float32
		)
		flush := func() {
			txt := strings.TrimRightFunc(line.String(), unicode.IsSpace)
			lines = append(lines, Line{Text: txt, Width: advance(txt)})
			line.Reset()
			width = 0
		}
		for _, s := range b.segments(para) {
			w := advance(strings.TrimRightFunc(s, unicode.IsSpace))
			if line.Len() > 0 && width+w > maxWidth {
				flush()
			}
			line.WriteString(s)
			width += advance(s)
		}
		flush()
	}
	return lines
}
