//go:build profile

// Package profiler records nested timing spans and writes them as an
// evented speedscope profile. Without the "profile" build tag every call is
// a no-op.
package profiler

import (
	"runtime"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/logging"
)

var (
	rec   atomic.Pointer[ring]
	names interner
)

const Enabled = true

// Init must be called once with the number of events to keep.
func Init(capacity int) {
	rec.Store(newRing(capacity))
}

// Start opens a span and returns the func that closes it.
func Start(name string) func() {
	r := rec.Load()
	if r == nil {
		return func() {}
	}
	id := names.id(name)
	start := time.Now().UnixNano()
	r.push(event{atNS: start, frame: id, open: true})
	return func() {
		r.push(event{atNS: max(time.Now().UnixNano(), start), frame: id})
	}
}

// Dump writes everything recorded so far to path.
func Dump(path string) error {
	r := rec.Load()
	if r == nil {
		return ErrNoEvents
	}
	doc, err := encode(r.snapshot(), names.all())
	if err != nil {
		return err
	}
	if err := writeFile(doc, path); err != nil {
		return err
	}
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	logging.Named("profiler").Info("profile written",
		zap.String("path", path),
		zap.Int("events", len(doc.Profiles[0].Events)),
		zap.Uint64("heap_bytes", m.Alloc),
		zap.Uint64("mallocs", m.Mallocs))
	return nil
}
