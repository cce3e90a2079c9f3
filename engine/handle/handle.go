// Package handle implements owned and borrowed wrappers around native resources.
//
// A Handle pairs a native value with an ownership flag. Closing an owned
// handle calls its kind's release function exactly once; closing a borrowed
// handle never calls it.
package handle

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/logging"
)

// ResourceKind enumerates every native resource type groveray wraps.
type ResourceKind int

const (
	KindImage ResourceKind = iota
	KindTexture
	KindRenderTexture
	KindFont
	KindShader
	KindMesh
	KindMaterial
	KindModel
	KindModelAnimation
	KindVrStereoConfig
	KindWave
	KindSound
	KindSoundAlias
	KindMusic
	KindAudioStream
	KindAutomationEvents
	KindPhysicsBody
)

var kindNames = [...]string{
	KindImage:            "image",
	KindTexture:          "texture",
	KindRenderTexture:    "render texture",
	KindFont:             "font",
	KindShader:           "shader",
	KindMesh:             "mesh",
	KindMaterial:         "material",
	KindModel:            "model",
	KindModelAnimation:   "model animation",
	KindVrStereoConfig:   "vr stereo config",
	KindWave:             "wave",
	KindSound:            "sound",
	KindSoundAlias:       "sound alias",
	KindMusic:            "music",
	KindAudioStream:      "audio stream",
	KindAutomationEvents: "automation events",
	KindPhysicsBody:      "physics body",
}

// String returns the noun used in UnableToLoad errors.
func (k ResourceKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "resource"
	}
	return kindNames[k]
}

// Kind is the load/validate/release triple of one resource type.
type Kind[T any] struct {
	ID ResourceKind
	// Valid reports whether a freshly loaded value is usable. Nil means always valid.
	Valid func(T) bool
	// Release frees the native allocation. Nil means nothing to free.
	Release func(T)
}

// Owned wraps v; Close will release it.
func (k Kind[T]) Owned(v T) *Handle[T] {
	return &Handle[T]{kind: k, inner: v, owned: true}
}

// Unowned wraps v as a borrowed view; Close never releases it.
func (k Kind[T]) Unowned(v T) *Handle[T] {
	return &Handle[T]{kind: k, inner: v}
}

// Load runs load and wraps the result as owned. An invalid result yields
// UnableToLoad(kind) and no handle; the release function is not called.
func (k Kind[T]) Load(load func() T) (*Handle[T], error) {
	v := load()
	if k.Valid != nil && !k.Valid(v) {
		logging.Named("handle").Warn("native load failed", zap.Stringer("kind", k.ID))
		return nil, errors.UnableToLoad(k.ID.String())
	}
	return k.Owned(v), nil
}

// Handle is a native value plus an ownership flag.
type Handle[T any] struct {
	kind   Kind[T]
	inner  T
	owned  bool
	closed bool
}

// Raw returns a copy of the native value.
func (h *Handle[T]) Raw() T { return h.inner }

// Ptr returns a pointer to the native value for in-place native calls.
// The pointer is only valid while the handle is open.
func (h *Handle[T]) Ptr() *T { return &h.inner }

func (h *Handle[T]) Owned() bool        { return h.owned }
func (h *Handle[T]) Closed() bool       { return h.closed }
func (h *Handle[T]) Kind() ResourceKind { return h.kind.ID }

// Take transfers the native value to the caller and closes the handle,
// as when a mesh is absorbed into a model. The caller becomes responsible
// for releasing it. Only an open owned handle can give its value away; ok is
// false otherwise and the handle is left untouched.
func (h *Handle[T]) Take() (v T, ok bool) {
	if h == nil || !h.owned || h.closed {
		return v, false
	}
	h.owned = false
	h.closed = true
	return h.inner, true
}

// Close releases the native value if the handle owns it. Subsequent calls are no-ops.
func (h *Handle[T]) Close() error {
	if h == nil || h.closed {
		return nil
	}
	h.closed = true
	if !h.owned || h.kind.Release == nil {
		return nil
	}
	h.owned = false
	h.kind.Release(h.inner)
	logging.Named("handle").Debug("released", zap.Stringer("kind", h.kind.ID))
	return nil
}
