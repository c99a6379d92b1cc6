// Package parse holds the token state consumed by the argument processor.
package parse

import (
	"github.com/ef-ds/deque"
)

// State is the queue of arguments still to be processed. Arguments are consumed from the
// front and may be pushed back onto the front to be processed again.
type State interface {
	Next() (string, bool)     // Remove and return the front argument
	PushFront(args ...string) // Push args onto the front, args[0] ends up first
	Drain() []string          // Remove and return all remaining arguments in order
	Len() int                 // Number of remaining arguments
}

// DefaultState is the deque-backed implementation of State
type DefaultState struct {
	queue *deque.Deque
}

// NewState creates a new State seeded with args
func NewState(args []string) State {
	s := &DefaultState{queue: deque.New()}
	for _, arg := range args {
		s.queue.PushBack(arg)
	}

	return s
}

// Next removes and returns the front argument
func (s *DefaultState) Next() (string, bool) {
	v, ok := s.queue.PopFront()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// PushFront pushes args onto the front of the queue preserving their order
func (s *DefaultState) PushFront(args ...string) {
	for i := len(args) - 1; i >= 0; i-- {
		s.queue.PushFront(args[i])
	}
}

// Drain removes and returns all remaining arguments
func (s *DefaultState) Drain() []string {
	rest := make([]string, 0, s.queue.Len())
	for {
		arg, ok := s.Next()
		if !ok {
			break
		}
		rest = append(rest, arg)
	}

	return rest
}

// Len returns the number of remaining arguments
func (s *DefaultState) Len() int {
	return s.queue.Len()
}
