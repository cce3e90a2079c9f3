package main

import (
	"math"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/colors"
	"github.com/hubastard/groveray/engine/core"
	"github.com/hubastard/groveray/engine/gfx"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
	"github.com/hubastard/groveray/engine/physics"
)

const (
	ballRadius = 14
	maxBalls   = 48
)

// Layer2D drops balls onto a static floor and draws a spinning badge into a
// render texture that is then composited over the scene.
type Layer2D struct {
	world  *physics.World
	floor  native.Rectangle
	balls  []*physics.Body
	badge  *gfx.RenderTexture
	ticks  int
	t      float32
	width  float32
	height float32
}

func (l *Layer2D) OnAttach(e *core.Engine) {
	log := logging.Named("sandbox")
	l.width, l.height = float32(e.Window.Width()), float32(e.Window.Height())

	var err error
	if l.world, err = e.Ctx.Physics(); err != nil {
		log.Warn("running without physics", zap.Error(err))
	} else {
		l.floor = native.Rectangle{X: 100, Y: l.height - 60, Width: l.width - 200, Height: 40}
		centre := native.Vector2{X: l.floor.X + l.floor.Width/2, Y: l.floor.Y + l.floor.Height/2}
		// zero density pins the floor in place
		if _, err := l.world.CreateRectangle(centre, l.floor.Width, l.floor.Height, 0); err != nil {
			log.Warn("floor", zap.Error(err))
		}
	}

	if l.badge, err = gfx.LoadRenderTexture(e.Ctx.Native(), 128, 128); err != nil {
		log.Warn("render texture unavailable", zap.Error(err))
	}
}

func (l *Layer2D) OnDetach(e *core.Engine) {
	if l.badge != nil {
		_ = l.badge.Close()
	}
	if l.world != nil {
		// closes every body still alive
		_ = l.world.Close()
	}
}

func (l *Layer2D) OnUpdate(e *core.Engine, dt float64) {
	l.t += float32(dt)
	l.ticks++
	if l.world == nil {
		return
	}
	if l.ticks%20 == 0 && len(l.balls) < maxBalls {
		x := l.width/2 + 200*float32(math.Sin(float64(l.t)*1.7))
		if b, err := l.world.CreateCircle(native.Vector2{X: x, Y: 40}, ballRadius, 1); err == nil {
			l.balls = append(l.balls, b)
		}
	}
	l.world.Step()

	// drop balls that fell off the floor
	kept := l.balls[:0]
	for _, b := range l.balls {
		if b.Position().Y > l.height+ballRadius {
			_ = b.Close()
			continue
		}
		kept = append(kept, b)
	}
	l.balls = kept
}

func (l *Layer2D) OnRender(e *core.Engine, d *gfx.Drawing, alpha float64) error {
	if l.badge != nil {
		err := d.DrawToTexture(l.badge, func(t *gfx.TextureTarget) error {
			t.ClearBackground(colors.Blank)
			return t.DrawShape(gfx.Poly{Center: native.Vector2{X: 64, Y: 64}, Sides: 6, Radius: 56, Rotation: l.t * 90}, colors.Gold)
		})
		if err != nil {
			return err
		}
	}

	cam := native.Camera2D{Zoom: 1}
	return d.Draw2D(cam, func(m *gfx.Mode2D) error {
		if err := m.DrawShape(gfx.Rect{Rec: l.floor}, colors.DarkGray); err != nil {
			return err
		}
		for _, b := range l.balls {
			if err := m.DrawShape(gfx.Circle{Center: b.Position(), Radius: ballRadius}, colors.Maroon); err != nil {
				return err
			}
			if err := m.DrawShapeLines(gfx.Circle{Center: b.Position(), Radius: ballRadius}, 1, colors.Black); err != nil {
				return err
			}
		}
		if l.badge == nil {
			return nil
		}
		return m.DrawBlend(native.BlendAdditive, func(b *gfx.Blended) error {
			return b.DrawTexture(l.badge.Texture(), native.Vector2{X: l.width - 160, Y: 32}, 0, 1, colors.WithAlpha(colors.White, 0.8))
		})
	})
}
