package gfx

import (
	"github.com/hubastard/groveray/engine/handle"
	"github.com/hubastard/groveray/engine/native"
)

func vrKind(lib native.Library) handle.Kind[native.VrStereoConfig] {
	return handle.Kind[native.VrStereoConfig]{ID: handle.KindVrStereoConfig, Release: lib.UnloadVrStereoConfig}
}

// VrStereoConfig holds the per-eye projection for a head mounted display.
type VrStereoConfig struct {
	*handle.Handle[native.VrStereoConfig]
}

func LoadVrStereoConfig(lib native.Library, device native.VrDeviceInfo) *VrStereoConfig {
	return &VrStereoConfig{Handle: vrKind(lib).Owned(lib.LoadVrStereoConfig(device))}
}

// OculusRiftCV1 is the reference device used by the native examples.
var OculusRiftCV1 = native.VrDeviceInfo{
	HResolution:            2160,
	VResolution:            1200,
	HScreenSize:            0.133793,
	VScreenSize:            0.0669,
	EyeToScreenDistance:    0.041,
	LensSeparationDistance: 0.07,
	InterpupillaryDistance: 0.07,
	LensDistortionValues:   [4]float32{1.0, 0.22, 0.24, 0.0},
	ChromaAbCorrection:     [4]float32{0.996, -0.004, 1.014, 0.0},
}
