// Package random provides implementations of the random-draw port.
package random

import (
	"math/rand"
	"sync"
)

// SystemSource draws from the process-wide PRNG.
type SystemSource struct{}

func NewSystemSource() SystemSource { return SystemSource{} }

func (SystemSource) Float64() float64 { return rand.Float64() }

// Scripted replays a fixed sequence of draws, for deterministic tests.
// When the sequence is exhausted it repeats the final value.
// It is safe for concurrent use.
type Scripted struct {
	mu    sync.Mutex
	draws []float64
	next  int
}

func NewScripted(draws ...float64) *Scripted {
	if len(draws) == 0 {
		panic("random: NewScripted needs at least one draw")
	}
	return &Scripted{draws: draws}
}

func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.draws[s.next]
	if s.next < len(s.draws)-1 {
		s.next++
	}
	return v
}
