package text

import "github.com/hubastard/groveray/engine/native"

// LineHeight is the baseline-to-baseline distance at the atlas size.
func (a *Atlas) LineHeight() float32 { return a.Ascent - a.Descent + a.LineGap }

// Layout walks s and reports, for every visible glyph, where it lands when
// drawn at size with spacing extra pixels between glyphs. Positions are
// top-left origin with +Y down; pos is the top-left corner of the first line.
func (a *Atlas) Layout(s string, pos native.Vector2, size, spacing float32, emit func(g Glyph, dst native.Rectangle)) {
	scale := size / a.SizePx
	penX, top := pos.X, pos.Y
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			penX = pos.X
			top += a.LineHeight() * scale
			prev = -1
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			g, ok = a.Glyphs[' ']
			if !ok {
				continue
			}
		}
		if prev >= 0 {
			penX += a.Kerning[[2]rune{prev, r}] * scale
			penX += spacing
		}
		if emit != nil && !g.Rect.Empty() {
			emit(g, native.Rectangle{
				X:      penX + g.BearingX*scale,
				Y:      top + (a.Ascent-g.BearingY)*scale,
				Width:  float32(g.Rect.Dx()) * scale,
				Height: float32(g.Rect.Dy()) * scale,
			})
		}
		penX += g.Advance * scale
		prev = r
	}
}

// Measure returns the width of the widest line and the height of all lines.
func (a *Atlas) Measure(s string, size, spacing float32) native.Vector2 {
	if s == "" {
		return native.Vector2{}
	}
	scale := size / a.SizePx
	var width, line float32
	lines := 1
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			width = max(width, line)
			line, prev = 0, -1
			lines++
			continue
		}
		g, ok := a.Glyphs[r]
		if !ok {
			g, ok = a.Glyphs[' ']
			if !ok {
				continue
			}
		}
		if prev >= 0 {
			line += a.Kerning[[2]rune{prev, r}]*scale + spacing
		}
		line += g.Advance * scale
		prev = r
	}
	width = max(width, line)
	height := size + float32(lines-1)*a.LineHeight()*scale
	return native.Vector2{X: width, Y: height}
}
