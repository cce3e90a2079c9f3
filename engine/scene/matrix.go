// Package scene holds the float32 camera, projection and mesh maths the
// OpenGL backend feeds to its shaders. Matrices are column-major, GLSL-style.
package scene

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/groveray/engine/native"
)

type Matrix = native.Matrix

func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Translate(x, y, z float32) Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		x, y, z, 1,
	}
}

func Scale(x, y, z float32) Matrix {
	return Matrix{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateZ rotates by a radians counter-clockwise around +Z.
func RotateZ(a float32) Matrix {
	c, s := math32.Cos(a), math32.Sin(a)
	return Matrix{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateAxis rotates by a radians around the axis v, which need not be unit length.
func RotateAxis(v native.Vector3, a float32) Matrix {
	l := math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if l == 0 {
		return Identity()
	}
	x, y, z := v.X/l, v.Y/l, v.Z/l
	c, s := math32.Cos(a), math32.Sin(a)
	t := 1 - c
	return Matrix{
		x*x*t + c, y*x*t + z*s, z*x*t - y*s, 0,
		x*y*t - z*s, y*y*t + c, z*y*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, z*z*t + c, 0,
		0, 0, 0, 1,
	}
}

func Ortho(l, r, b, t, n, f float32) Matrix {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return Matrix{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// Perspective builds a right-handed projection; fovy is in radians.
func Perspective(fovy, aspect, near, far float32) Matrix {
	f := 1 / math32.Tan(fovy/2)
	nf := 1 / (near - far)
	return Matrix{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}

func LookAt(eye, target, up native.Vector3) Matrix {
	f := normalize(sub(target, eye))
	s := normalize(cross(f, up))
	u := cross(s, f)
	return Matrix{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-dot(s, eye), -dot(u, eye), dot(f, eye), 1,
	}
}

// Mul returns a·b, so b is applied to a point first.
func Mul(a, b Matrix) Matrix {
	var out Matrix
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[row+4*k] * b[k+4*col]
			}
			out[row+4*col] = sum
		}
	}
	return out
}

// Apply transforms the point p (w = 1) by m and divides by w.
func Apply(m Matrix, p native.Vector3) native.Vector3 {
	x := m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12]
	y := m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13]
	z := m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14]
	w := m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15]
	if w != 0 && w != 1 {
		x, y, z = x/w, y/w, z/w
	}
	return native.Vector3{X: x, Y: y, Z: z}
}

func sub(a, b native.Vector3) native.Vector3 {
	return native.Vector3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

func dot(a, b native.Vector3) float32 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func cross(a, b native.Vector3) native.Vector3 {
	return native.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v native.Vector3) native.Vector3 {
	l := math32.Sqrt(dot(v, v))
	if l == 0 {
		return v
	}
	return native.Vector3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}
