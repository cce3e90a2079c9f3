package core

import "github.com/hubastard/groveray/engine/gfx"

type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, d *gfx.Drawing, alpha float64) error
}

type LayerStack struct{ list []Layer }

func (ls *LayerStack) Len() int { return len(ls.list) }

func (ls *LayerStack) Push(l Layer) { ls.list = append(ls.list, l) }
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.list) == 0 {
		return nil, false
	}
	i := len(ls.list) - 1
	l := ls.list[i]
	ls.list = ls.list[:i]
	return l, true
}

// ForEach visits bottom to top and stops at the first error.
func (ls *LayerStack) ForEach(f func(Layer) error) error {
	for _, l := range ls.list {
		if err := f(l); err != nil {
			return err
		}
	}
	return nil
}
