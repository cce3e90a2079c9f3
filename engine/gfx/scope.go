package gfx

import (
	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/guard"
	"github.com/hubastard/groveray/engine/logging"
	"github.com/hubastard/groveray/engine/native"
)

// slotName is reported by every failed mode acquisition.
const slotName = "drawing"

// scope is the shared state of every mode guard. Each scope owns one child
// slot; a nested mode holds it for its lifetime, so siblings exclude each other.
type scope struct {
	lib    native.Library
	name   string
	stack  *guard.Stack
	frame  *guard.Frame
	slot   *guard.Lock
	parent *guard.Token // this scope's hold on its parent slot (or the context lock)
	up     *scope
	child  *scope // the nested mode holding slot, if any
	sealed *guard.Token // taken on End so no child can open afterwards
	end    func()
	ended  bool
}

func newScope(lib native.Library, name string, stack *guard.Stack, parent *guard.Token, end func()) *scope {
	return &scope{
		lib:    lib,
		name:   name,
		stack:  stack,
		frame:  stack.Push(name),
		slot:   guard.NewLock(slotName),
		parent: parent,
		end:    end,
	}
}

// open acquires the child slot, then issues begin. Nothing native runs when
// the slot is taken.
func (s *scope) open(name string, begin, end func()) (*scope, error) {
	tok, err := s.slot.TryAcquire()
	if err != nil {
		return nil, err
	}
	begin()
	logging.Named("gfx").Debug("begin", zap.String("mode", name))
	c := newScope(s.lib, name, s.stack, tok, end)
	c.up, s.child = s, c
	return c, nil
}

// End issues the native end call exactly once. It fails with
// NestingViolation while a nested mode is still open.
func (s *scope) End() error {
	if s.ended {
		return nil
	}
	if err := s.stack.Pop(s.frame); err != nil {
		return err
	}
	s.end()
	s.ended = true
	s.sealed, _ = s.slot.TryAcquire()
	s.parent.Release()
	if s.up != nil && s.up.child == s {
		s.up.child = nil
	}
	logging.Named("gfx").Debug("end", zap.String("mode", s.name))
	return nil
}

// Unwind ends every mode still open inside this one, innermost first, then
// this one. When anything had to be closed for the caller it reports
// NestingViolation naming this mode; every native end is still issued.
func (s *scope) Unwind() error {
	if s.ended {
		return nil
	}
	var leaked []*scope
	for c := s.child; c != nil; c = c.child {
		leaked = append(leaked, c)
	}
	for i := len(leaked) - 1; i >= 0; i-- {
		logging.Named("gfx").Warn("mode left open by callback",
			zap.String("mode", leaked[i].name), zap.String("parent", s.name))
		if err := leaked[i].End(); err != nil {
			return err
		}
	}
	if err := s.End(); err != nil {
		return err
	}
	if len(leaked) > 0 {
		return errors.NestingViolation(s.name)
	}
	return nil
}

// Ended reports whether End has completed.
func (s *scope) Ended() bool { return s.ended }

// active reports whether draw calls may target this scope: it must be open
// and innermost.
func (s *scope) active() bool {
	if !s.ended && s.stack.Top() == s.frame {
		return true
	}
	logging.Named("gfx").Warn("draw call on inactive mode dropped",
		zap.String("mode", s.name), zap.Bool("ended", s.ended))
	return false
}

type unwinder interface{ Unwind() error }

// scoped runs f with g and unwinds g on every exit path, panics included.
// Modes f left open are closed first.
func scoped[G unwinder](g G, err error, f func(G) error) (rerr error) {
	if err != nil {
		return err
	}
	defer func() {
		if endErr := g.Unwind(); endErr != nil {
			if rerr == nil {
				rerr = endErr
			} else {
				rerr = errors.Join(rerr, endErr)
			}
		}
	}()
	return f(g)
}
