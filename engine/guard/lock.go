// Package guard provides the named non-blocking locks that keep each native
// subsystem single-holder, and the scope stack that keeps nested modes LIFO.
package guard

import (
	"sync"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/logging"
)

// Lock is a named lock that never waits.
type Lock struct {
	name string
	mu   sync.Mutex
	held bool
}

func NewLock(name string) *Lock { return &Lock{name: name} }

func (l *Lock) Name() string { return l.name }

// Held reports whether a token is outstanding.
func (l *Lock) Held() bool { return l.held }

// TryAcquire returns a token, or ThreadAlreadyLocked(name) if the lock is held.
func (l *Lock) TryAcquire() (*Token, error) {
	if !l.mu.TryLock() {
		logging.Named("guard").Debug("lock busy", zap.String("lock", l.name))
		return nil, errors.ThreadAlreadyLocked(l.name)
	}
	l.held = true
	return &Token{lock: l}, nil
}

// Token is proof that its lock is held.
type Token struct {
	lock *Lock
	done bool
}

// Released reports whether Release has run.
func (t *Token) Released() bool { return t.done }

// Release frees the lock. Subsequent calls are no-ops.
func (t *Token) Release() {
	if t == nil || t.done {
		return
	}
	t.done = true
	t.lock.held = false
	t.lock.mu.Unlock()
}

// State is the set of subsystem locks owned by a context.
type State struct {
	locks map[string]*Lock
}

func NewState(names ...string) *State {
	s := &State{locks: make(map[string]*Lock, len(names))}
	for _, n := range names {
		s.locks[n] = NewLock(n)
	}
	return s
}

// Acquire takes the named lock without waiting.
func (s *State) Acquire(name string) (*Token, error) {
	l, ok := s.locks[name]
	if !ok {
		return nil, errors.SubsystemNotInitialized(name)
	}
	return l.TryAcquire()
}

// Held reports whether the named lock is currently held.
func (s *State) Held(name string) bool {
	l, ok := s.locks[name]
	return ok && l.Held()
}
