package hello_world

import "sync"

// AddonState holds the lines, the reverse flag and whether the kickstart section has
// been seen. Every change is a replacement of the whole value, after which the
// corresponding signal is emitted.
type AddonState struct {
	lock    sync.RWMutex
	seen    bool
	reverse bool
	lines   []string

	LinesChanged   Signal
	ReverseChanged Signal
}

// NewAddonState returns an empty state.
func NewAddonState() *AddonState { return &AddonState{} }

// Lines returns a copy of the stored lines.
func (s *AddonState) Lines() []string {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return copyLines(s.lines)
}

// SetLines replaces the stored lines and emits LinesChanged.
func (s *AddonState) SetLines(lines []string) {
	s.lock.Lock()
	s.lines = copyLines(lines)
	s.lock.Unlock()
	s.LinesChanged.Emit()
}

func (s *AddonState) Reverse() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.reverse
}

// SetReverse replaces the reverse flag and emits ReverseChanged.
func (s *AddonState) SetReverse(reverse bool) {
	s.lock.Lock()
	s.reverse = reverse
	s.lock.Unlock()
	s.ReverseChanged.Emit()
}

// Seen reports whether the state came from a kickstart section. Only seen state is
// written back into a generated kickstart.
func (s *AddonState) Seen() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.seen
}

func (s *AddonState) SetSeen(seen bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.seen = seen
}

func copyLines(lines []string) []string {
	if lines == nil {
		return nil
	}
	c := make([]string, len(lines))
	copy(c, lines)
	return c
}
