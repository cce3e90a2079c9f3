// Package audio wraps the native audio device and its resources: waves,
// sounds and their aliases, streamed music, raw audio streams and stream
// processors.
//
// Loaders that need the mixer (sounds, music, streams) fail with
// SubsystemNotInitialized("audio") until a Device is open.
package audio

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/guard"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

// Device is the open audio device. Only one exists at a time; it holds the
// context's audio lock until closed.
type Device struct {
	lib    native.Library
	tok    *guard.Token
	closed bool
}

// Open turns the native device on if needed. On failure the token is
// released and SubsystemNotInitialized("audio") is returned.
func Open(lib native.Library, tok *guard.Token) (*Device, error) {
	if !lib.IsAudioDeviceReady() {
		lib.InitAudioDevice()
	}
	if !lib.IsAudioDeviceReady() {
		tok.Release()
		logging.Named("audio").Warn("audio device unavailable")
		return nil, errors.SubsystemNotInitialized("audio")
	}
	logging.Named("audio").Info("audio device ready", zap.Float32("volume", lib.GetMasterVolume()))
	return &Device{lib: lib, tok: tok}, nil
}

func (d *Device) MasterVolume() float32 { return d.lib.GetMasterVolume() }

// SetMasterVolume sets the mixer output level, 0 to 1.
func (d *Device) SetMasterVolume(volume float32) { d.lib.SetMasterVolume(volume) }

// Ready reports whether the native device is on.
func (d *Device) Ready() bool { return !d.closed && d.lib.IsAudioDeviceReady() }

// Close shuts the native device down and frees the audio lock.
func (d *Device) Close() error {
	if d == nil || d.closed {
		return nil
	}
	d.closed = true
	d.lib.CloseAudioDevice()
	d.tok.Release()
	logging.Named("audio").Info("audio device closed")
	return nil
}

// requireDevice guards loaders that feed the mixer.
func requireDevice(lib native.Library) error {
	if !lib.IsAudioDeviceReady() {
		return errors.SubsystemNotInitialized("audio")
	}
	return nil
}
