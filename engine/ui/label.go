package ui

import (
	"strings"

	"github.com/hubastard/groveray/engine/colors"
	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/native"
)

type Label struct {
	Common[*Label]
	text     string
	size     float32
	spacing  float32
	font     *gfx.Font
	tint     native.Color
	wrap     bool
	maxWidth float32
	laidOut  string
}

func NewLabel(s string) *Label {
	l := &Label{text: s, size: 16, spacing: 1, tint: colors.White}
	l.Common = newCommon(l)
	return l
}

func (l *Label) FontSize(size float32) *Label { l.size = size; return l }
func (l *Label) Font(f *gfx.Font) *Label      { l.font = f; return l }
func (l *Label) Color(c native.Color) *Label  { l.tint = c; return l }
func (l *Label) Wrap(on bool) *Label          { l.wrap = on; return l }
func (l *Label) SetText(s string) *Label      { l.text = s; return l }
func (l *Label) Spacing(px float32) *Label    { l.spacing = px; return l }

// MaxWidth turns wrapping on for positive widths.
func (l *Label) MaxWidth(w float32) *Label {
	l.maxWidth = w
	if w > 0 {
		l.wrap = true
	}
	return l
}

// Text returns the string as laid out, with wrap points turned into newlines.
func (l *Label) Text() string {
	if l.laidOut == "" {
		return l.text
	}
	return l.laidOut
}

func (l *Label) Layout(ctx *Context, c Constraints) [2]float32 {
	m := ctx.measurer(l.font)
	if m == nil {
		return [2]float32{}
	}
	pad := l.base.padding
	limit := c.Max[0]
	if l.maxWidth > 0 && (limit == 0 || l.maxWidth < limit) {
		limit = l.maxWidth
	}
	if limit > 0 {
		limit = max(0, limit-pad[0]-pad[2])
	}

	l.laidOut = l.text
	if l.wrap && limit > 0 {
		l.laidOut = wrap(m, l.text, l.size, l.spacing, limit)
	}
	content := native.Vector2{}
	if l.laidOut != "" {
		content = m.Measure(l.laidOut, l.size, l.spacing)
	}
	l.base.size = [2]float32{
		l.base.resolve(0, content.X+pad[0]+pad[2], c),
		l.base.resolve(1, content.Y+pad[1]+pad[3], c),
	}
	return l.base.size
}

// wrap breaks each line of s at spaces so no line is wider than limit. A
// single word wider than limit keeps its own line.
func wrap(m Measurer, s string, size, spacing, limit float32) string {
	var lines []string
	for _, raw := range strings.Split(s, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			next := cur + " " + w
			if m.Measure(next, size, spacing).X > limit {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur = next
		}
		lines = append(lines, cur)
	}
	return strings.Join(lines, "\n")
}

func (l *Label) Draw(ctx *Context, dst gfx.Canvas2D) error {
	if err := l.base.drawBackground(dst); err != nil {
		return err
	}
	s := l.Text()
	if s == "" || l.tint.A == 0 {
		return nil
	}
	font := l.font
	if font == nil {
		font = ctx.Font
	}
	x, y, _, _ := l.base.inner()
	return dst.DrawText(font, s, native.Vector2{X: x, Y: y}, l.size, l.spacing, l.tint)
}
