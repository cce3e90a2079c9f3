package ui

import "github.com/hubastard/groveray/engine/gfx"

type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Panel stacks its children in a row, or a column when Vertical. Children
// that expand along the main axis share the leftover space evenly.
type Panel struct {
	Common[*Panel]
	vertical   bool
	gap        float32
	mainAlign  Align
	crossAlign Align
}

func NewPanel(children ...Element) *Panel {
	p := &Panel{gap: 10}
	p.Common = newCommon(p)
	return p.Children(children...)
}

func (p *Panel) Vertical(v bool) *Panel    { p.vertical = v; return p }
func (p *Panel) Gap(g float32) *Panel      { p.gap = g; return p }
func (p *Panel) AlignMain(a Align) *Panel  { p.mainAlign = a; return p }
func (p *Panel) AlignCross(a Align) *Panel { p.crossAlign = a; return p }

func (p *Panel) axes() (main, cross int) {
	if p.vertical {
		return 1, 0
	}
	return 0, 1
}

func (p *Panel) Layout(ctx *Context, c Constraints) [2]float32 {
	b := &p.base
	main, cross := p.axes()
	pad := b.padding
	padAxis := [2]float32{pad[0] + pad[2], pad[1] + pad[3]}

	childMax := [2]float32{}
	for a := range childMax {
		if c.Max[a] > 0 {
			childMax[a] = max(0, c.Max[a]-padAxis[a])
		}
	}

	kids := b.children
	sizes := make([][2]float32, len(kids))
	var mainSum, maxCross float32
	expanding := 0
	for i, k := range kids {
		// Expanding children are measured at their content size first.
		cc := Constraints{Max: childMax}
		if k.Node().mode[main] == SizeExpand {
			cc.Max[main] = 0
			expanding++
		}
		sizes[i] = k.Layout(ctx, cc)
		mainSum += sizes[i][main]
		maxCross = max(maxCross, sizes[i][cross])
	}
	gaps := float32(0)
	if len(kids) > 1 {
		gaps = p.gap * float32(len(kids)-1)
	}

	var outer [2]float32
	outer[main] = b.resolve(main, mainSum+gaps+padAxis[main], c)
	outer[cross] = b.resolve(cross, maxCross+padAxis[cross], c)
	b.size = outer
	innerMain := max(0, outer[main]-padAxis[main])
	innerCross := max(0, outer[cross]-padAxis[cross])

	if expanding > 0 {
		share := max(0, innerMain-mainSum-gaps) / float32(expanding)
		for i, k := range kids {
			if k.Node().mode[main] == SizeExpand {
				sizes[i][main] += share
				mainSum += share
			}
		}
	}

	cursor := float32(0)
	switch left := max(0, innerMain-mainSum-gaps); p.mainAlign {
	case AlignCenter:
		cursor = left / 2
	case AlignEnd:
		cursor = left
	}

	origin := [2]float32{b.pos[0] + pad[0], b.pos[1] + pad[1]}
	for i, k := range kids {
		size := sizes[i]
		if p.crossAlign == AlignStretch || k.Node().mode[cross] == SizeExpand {
			size[cross] = innerCross
		}
		size[cross] = clamp(size[cross], 0, innerCross)

		var at [2]float32
		at[main] = origin[main] + cursor
		at[cross] = origin[cross]
		switch p.crossAlign {
		case AlignCenter:
			at[cross] += (innerCross - size[cross]) / 2
		case AlignEnd:
			at[cross] += innerCross - size[cross]
		}
		place(ctx, k, at, size)
		cursor += size[main] + p.gap
	}
	return b.size
}

// place moves k and, when its size changed, lays it out again so its own
// children follow.
func place(ctx *Context, k Element, at, size [2]float32) {
	n := k.Node()
	n.pos = at
	if n.size != size || len(n.children) > 0 {
		n.size = size
		k.Layout(ctx, Constraints{Min: size, Max: size})
	}
}

// Draw lays the tree out against the viewport when p is the root.
func (p *Panel) Draw(ctx *Context, dst gfx.Canvas2D) error {
	b := &p.base
	if b.parent == nil {
		b.pos = [2]float32{ctx.Viewport.X, ctx.Viewport.Y}
		p.Layout(ctx, Constraints{Max: [2]float32{ctx.Viewport.Width, ctx.Viewport.Height}})
	}
	if err := b.drawBackground(dst); err != nil {
		return err
	}
	for _, k := range b.children {
		if err := k.Draw(ctx, dst); err != nil {
			return err
		}
	}
	return nil
}
