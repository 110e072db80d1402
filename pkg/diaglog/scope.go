package diaglog

// Scope is an ordered stack of key/value frames representing the active
// logging scope of one logical operation. Lookups resolve innermost-frame
// first. A Scope has no internal locking: it must be owned by a single
// operation and never shared across concurrent ones.
type Scope struct {
	frames []*scopeFrame
}

type scopeFrame struct {
	values map[string]Value
}

// NewScope creates an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Enter pushes a new frame and returns a handle that restores the prior
// top-of-stack when released. Callers release on every exit path:
//
//	handle := scope.Enter(diaglog.State{diaglog.ActivityIDKey: diaglog.ID(id)})
//	defer handle.Release()
//
// Nesting is unbounded; releasing an outer handle also pops any inner
// frames that were not separately released.
func (s *Scope) Enter(values State) *ScopeHandle {
	frame := &scopeFrame{values: make(map[string]Value, len(values))}
	for k, v := range values {
		frame.values[k] = v
	}
	s.frames = append(s.frames, frame)
	return &ScopeHandle{scope: s, frame: frame}
}

// Lookup searches frames from innermost to outermost and returns the
// first match.
func (s *Scope) Lookup(key string) (Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].values[key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Depth returns the number of active frames.
func (s *Scope) Depth() int {
	return len(s.frames)
}

// ScopeHandle restores a scope to the state preceding its Enter call.
type ScopeHandle struct {
	scope    *Scope
	frame    *scopeFrame
	released bool
}

// Release pops the frame this handle created and every frame pushed after
// it. Releasing twice, or after an enclosing handle was released, is a
// no-op.
func (h *ScopeHandle) Release() {
	if h.released {
		return
	}
	h.released = true
	for i := len(h.scope.frames) - 1; i >= 0; i-- {
		if h.scope.frames[i] == h.frame {
			h.scope.frames = h.scope.frames[:i]
			return
		}
	}
}
