package guard

import (
	"slices"

	"go.uber.org/zap"

	"github.com/hubastard/groveray/engine/errors"
	"github.com/hubastard/groveray/engine/logging"
)

// Stack tracks open scopes so they can only be closed innermost first.
type Stack struct {
	frames []*Frame
}

// Frame is one open scope on a Stack.
type Frame struct {
	Name string
}

// Push opens a scope named name on top of the stack.
func (s *Stack) Push(name string) *Frame {
	f := &Frame{Name: name}
	s.frames = append(s.frames, f)
	return f
}

// Pop closes f. It fails with NestingViolation when f is not the innermost
// open scope, and is a no-op when f was already popped.
func (s *Stack) Pop(f *Frame) error {
	i := slices.Index(s.frames, f)
	if i < 0 {
		return nil
	}
	if i != len(s.frames)-1 {
		logging.Named("guard").Warn("scope closed out of order",
			zap.String("scope", f.Name), zap.String("innermost", s.frames[len(s.frames)-1].Name))
		return errors.NestingViolation(f.Name)
	}
	s.frames = s.frames[:i]
	return nil
}

// Top returns the innermost open scope, or nil.
func (s *Stack) Top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

// Depth returns the number of open scopes.
func (s *Stack) Depth() int { return len(s.frames) }
