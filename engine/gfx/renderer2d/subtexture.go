package renderer2d

import "github.com/hubastard/groveray/engine/native"

// SubTexture describes a UV sub-rect of a full texture.
type SubTexture struct {
	Texture uint32
	U0, V0  float32 // top-left
	U1, V1  float32 // bottom-right
}

// FromPixels builds a subtexture from pixel coordinates within a w×h texture.
// Negative source sizes flip the sampled region.
func FromPixels(tex native.Texture, src native.Rectangle) SubTexture {
	w, h := float32(tex.Width), float32(tex.Height)
	if w == 0 || h == 0 {
		return SubTexture{Texture: tex.ID, U1: 1, V1: 1}
	}
	return SubTexture{
		Texture: tex.ID,
		U0:      src.X / w,
		V0:      src.Y / h,
		U1:      (src.X + src.Width) / w,
		V1:      (src.Y + src.Height) / h,
	}
}

// Corners returns the UVs in Quad corner order.
func (s SubTexture) Corners() [4]native.Vector2 {
	return [4]native.Vector2{{X: s.U0, Y: s.V0}, {X: s.U1, Y: s.V0}, {X: s.U1, Y: s.V1}, {X: s.U0, Y: s.V1}}
}
