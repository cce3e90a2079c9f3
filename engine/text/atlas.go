// Package text rasterises opentype fonts into glyph atlases and lays out
// strings against them. It has no GPU dependency; the backend uploads
// Atlas.Image as a texture.
package text

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/hubastard/groveray/engine/native"
)

type Glyph struct {
	Rune     rune
	Advance  float32 // pixels
	BearingX float32 // left bearing in pixels
	BearingY float32 // baseline to glyph top
	Rect     image.Rectangle
}

type Atlas struct {
	SizePx                   float32
	Ascent, Descent, LineGap float32
	Glyphs                   map[rune]Glyph
	Order                    []rune
	Kerning                  map[[2]rune]float32
	Image                    *image.RGBA

	ttf   []byte
	runes []rune
	sizes map[float32]*Atlas
}

const (
	padding      = 2
	maxAtlasSize = 4096
)

// ASCII is the printable Latin-1 range loaded when no codepoints are given.
func ASCII() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(32); r <= 126; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Default builds an atlas from the embedded Go Regular face.
func Default(sizePx float32) (*Atlas, error) {
	return Build(goregular.TTF, sizePx, nil)
}

func LoadFile(path string, sizePx float32, runes []rune) (*Atlas, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return Build(data, sizePx, runes)
}

// Build rasterises runes (ASCII when empty) as white glyphs with alpha
// coverage into a shelf-packed square atlas.
func Build(ttf []byte, sizePx float32, runes []rune) (*Atlas, error) {
	if sizePx <= 0 {
		return nil, fmt.Errorf("font size %v must be positive", sizePx)
	}
	ft, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: float64(sizePx), DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer face.Close()

	if len(runes) == 0 {
		runes = ASCII()
	}

	m := face.Metrics()
	a := &Atlas{
		SizePx:  sizePx,
		Ascent:  float32(m.Ascent.Round()),
		Descent: float32(-m.Descent.Round()),
		Glyphs:  make(map[rune]Glyph, len(runes)),
		Kerning: make(map[[2]rune]float32),
		ttf:     ttf,
		runes:   runes,
	}
	a.LineGap = float32(m.Height.Round()) - a.Ascent + a.Descent

	for _, r := range runes {
		if _, dup := a.Glyphs[r]; dup {
			continue
		}
		br, adv, ok := face.GlyphBounds(r)
		if !ok {
			continue
		}
		w, h := (br.Max.X - br.Min.X).Ceil(), (br.Max.Y - br.Min.Y).Ceil()
		a.Glyphs[r] = Glyph{
			Rune:     r,
			Advance:  float32(adv.Round()),
			BearingX: float32(br.Min.X.Round()),
			BearingY: float32(-br.Min.Y.Round()),
			Rect:     image.Rect(0, 0, w, h),
		}
		a.Order = append(a.Order, r)
	}
	if len(a.Order) == 0 {
		return nil, fmt.Errorf("font has none of the %d requested glyphs", len(runes))
	}

	size, err := a.pack()
	if err != nil {
		return nil, err
	}
	a.Image = image.NewRGBA(image.Rect(0, 0, size, size))
	drawer := &font.Drawer{Dst: a.Image, Src: image.White, Face: face}
	for _, r := range a.Order {
		g := a.Glyphs[r]
		if g.Rect.Empty() {
			continue
		}
		// Dot sits on the baseline, shifted left by the bearing.
		drawer.Dot = fixed.P(g.Rect.Min.X-int(g.BearingX), g.Rect.Min.Y+int(g.BearingY))
		drawer.DrawString(string(r))
	}

	for _, l := range a.Order {
		for _, r := range a.Order {
			if dx := face.Kern(l, r); dx != 0 {
				a.Kerning[[2]rune{l, r}] = float32(dx.Round())
			}
		}
	}
	return a, nil
}

// At returns the same face rasterised at sizePx, building it on first use.
func (a *Atlas) At(sizePx float32) (*Atlas, error) {
	if sizePx == a.SizePx {
		return a, nil
	}
	if b, ok := a.sizes[sizePx]; ok {
		return b, nil
	}
	b, err := Build(a.ttf, sizePx, a.runes)
	if err != nil {
		return nil, err
	}
	if a.sizes == nil {
		a.sizes = make(map[float32]*Atlas)
	}
	a.sizes[sizePx] = b
	return b, nil
}

// pack places glyph rects in rows, doubling the atlas until everything fits.
func (a *Atlas) pack() (int, error) {
	for size := 128; size <= maxAtlasSize; size *= 2 {
		x, y, rowH := padding, padding, 0
		fits := true
		placed := make(map[rune]image.Rectangle, len(a.Order))
		for _, r := range a.Order {
			g := a.Glyphs[r]
			w, h := g.Rect.Dx(), g.Rect.Dy()
			if w == 0 || h == 0 {
				placed[r] = image.Rectangle{}
				continue
			}
			if x+w+padding > size {
				x, y, rowH = padding, y+rowH+padding, 0
			}
			if w+2*padding > size || y+h+padding > size {
				fits = false
				break
			}
			placed[r] = image.Rect(x, y, x+w, y+h)
			x += w + padding
			rowH = max(rowH, h)
		}
		if fits {
			for r, rect := range placed {
				g := a.Glyphs[r]
				g.Rect = rect
				a.Glyphs[r] = g
			}
			return size, nil
		}
	}
	return 0, fmt.Errorf("font atlas too large (>%d)", maxAtlasSize)
}

// Native describes the atlas with the glyph table layout of native.Font,
// sampling from tex.
func (a *Atlas) Native(tex native.Texture) native.Font {
	f := native.Font{
		BaseSize:     int32(a.SizePx),
		GlyphCount:   int32(len(a.Order)),
		GlyphPadding: padding,
		Texture:      tex,
		Recs:         make([]native.Rectangle, len(a.Order)),
		Glyphs:       make([]native.GlyphInfo, len(a.Order)),
	}
	for i, r := range a.Order {
		g := a.Glyphs[r]
		f.Recs[i] = native.Rectangle{
			X: float32(g.Rect.Min.X), Y: float32(g.Rect.Min.Y),
			Width: float32(g.Rect.Dx()), Height: float32(g.Rect.Dy()),
		}
		f.Glyphs[i] = native.GlyphInfo{
			Value:    r,
			OffsetX:  int32(g.BearingX),
			OffsetY:  int32(a.Ascent - g.BearingY),
			AdvanceX: int32(g.Advance),
		}
	}
	return f
}

// Pixels returns the atlas as a native RGBA8 image sharing its pixel slice.
func (a *Atlas) Pixels() native.Image {
	b := a.Image.Bounds()
	return native.Image{
		Pixels:  a.Image.Pix,
		Width:   int32(b.Dx()),
		Height:  int32(b.Dy()),
		Mipmaps: 1,
		Format:  native.PixelFormatR8G8B8A8,
	}
}

// Draw copies the coverage of g, tinted by src, onto dst at the given rect.
func (a *Atlas) Draw(dst draw.Image, at image.Rectangle, g Glyph, src image.Image) {
	draw.DrawMask(dst, at, src, image.Point{}, a.Image, g.Rect.Min, draw.Over)
}
