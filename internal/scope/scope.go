// Package scope implements the nested name-binding stack used while
// emitting a single event or function body: a stack of frames, each a
// mapping from name to LocalVar, searched inner-to-outer.
package scope

import (
	"github.com/hackermdch/giscript/internal/types"
)

// LocalVar is a script-level local variable as tracked during emission.
// Content is the non-owning reference to whatever currently supplies its
// value in the graph being built — a getter node for ordinary locals, or
// an input-pin index for a formal parameter of an event entrypoint. Its
// concrete shape is owned by internal/emitter; scope only stores it.
type LocalVar struct {
	Type    types.Type
	Content interface{}
}

type frame map[string]*LocalVar

// Stack is a stack of name-binding frames with shadowing rules: `Add`
// rejects a name already bound in the top frame only; outer frames may be
// shadowed freely.
type Stack struct {
	frames []frame
}

// New creates a Stack with one empty top-level frame.
func New() *Stack {
	s := &Stack{}
	s.Enter()
	return s
}

// Enter pushes a fresh, empty frame.
func (s *Stack) Enter() {
	s.frames = append(s.frames, frame{})
}

// Exit pops the top frame, dropping its bindings.
func (s *Stack) Exit() {
	if len(s.frames) == 0 {
		return
	}
	s.frames = s.frames[:len(s.frames)-1]
}

// Depth reports how many frames are currently on the stack.
func (s *Stack) Depth() int { return len(s.frames) }

// Find searches inner-to-outer for name, returning nil if not bound.
func (s *Stack) Find(name string) *LocalVar {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if lv, ok := s.frames[i][name]; ok {
			return lv
		}
	}
	return nil
}

// ExistsInCurrent reports whether name is already bound in the top frame.
func (s *Stack) ExistsInCurrent(name string) bool {
	if len(s.frames) == 0 {
		return false
	}
	_, ok := s.frames[len(s.frames)-1][name]
	return ok
}

// Add binds name in the top frame. It returns false without modifying the
// stack if name already exists in the top frame; callers turn that into a
// Redefinition diagnostic.
func (s *Stack) Add(name string, lv *LocalVar) bool {
	if len(s.frames) == 0 {
		s.Enter()
	}
	top := s.frames[len(s.frames)-1]
	if _, exists := top[name]; exists {
		return false
	}
	top[name] = lv
	return true
}
