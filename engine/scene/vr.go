package scene

import (
	"github.com/chewxy/math32"

	"github.com/hubastard/groveray/engine/native"
)

// StereoConfig derives per-eye projection, view offset and lens distortion
// parameters from a head-mounted display description.
func StereoConfig(d native.VrDeviceInfo) native.VrStereoConfig {
	var cfg native.VrStereoConfig
	if d.HResolution <= 0 || d.VResolution <= 0 || d.HScreenSize == 0 || d.EyeToScreenDistance == 0 {
		return cfg
	}

	aspect := float32(d.HResolution) / (2 * float32(d.VResolution))
	lensShift := (d.HScreenSize*0.25 - d.LensSeparationDistance*0.5) / d.HScreenSize
	cfg.LeftLensCenter = [2]float32{0.25 + lensShift, 0.5}
	cfg.RightLensCenter = [2]float32{0.75 - lensShift, 0.5}
	cfg.LeftScreenCenter = [2]float32{0.25, 0.5}
	cfg.RightScreenCenter = [2]float32{0.75, 0.5}

	r := math32.Abs(-1 - 4*lensShift)
	r2 := r * r
	k := d.LensDistortionValues
	distortion := k[0] + k[1]*r2 + k[2]*r2*r2 + k[3]*r2*r2*r2
	if distortion == 0 {
		distortion = 1
	}

	const normW, normH = 0.5, 1.0
	cfg.ScaleIn = [2]float32{2 / normW, 2 / normH / aspect}
	cfg.Scale = [2]float32{normW * 0.5 / distortion, normH * 0.5 * aspect / distortion}

	fovy := 2 * math32.Atan(d.VScreenSize*0.5*distortion/d.EyeToScreenDistance)
	proj := Perspective(fovy, aspect, nearPlane, farPlane)
	shift := 4 * lensShift
	cfg.Projection[0] = Mul(Translate(shift, 0, 0), proj)
	cfg.Projection[1] = Mul(Translate(-shift, 0, 0), proj)

	half := d.InterpupillaryDistance * 0.5
	cfg.ViewOffset[0] = Translate(half, 0, 0)
	cfg.ViewOffset[1] = Translate(-half, 0, 0)
	return cfg
}
