package hello_world

import "sync"

// Signal is a list of callbacks to be called whenever the signal is emitted.
type Signal struct {
	lock      sync.Mutex
	callbacks []func()
}

// Connect registers a callback. Callbacks are called in the order they were connected.
func (s *Signal) Connect(callback func()) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.callbacks = append(s.callbacks, callback)
}

// Emit synchronously calls every connected callback. Callbacks may connect further
// callbacks, which will only be called on the next Emit.
func (s *Signal) Emit() {
	s.lock.Lock()
	callbacks := make([]func(), len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.lock.Unlock()
	for _, callback := range callbacks {
		callback()
	}
}
