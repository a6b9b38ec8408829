// Package genid provides run-scoped identifier sequences for generated
// entities. A Sequence is created per generation call and threaded through
// it, so concurrent pipeline invocations never share counter state.
package genid

import "fmt"

// Sequence issues monotonically increasing ids with a fixed prefix,
// zero-padded to three digits: TC-001, TC-002, and so on.
type Sequence struct {
	prefix string
	n      int
}

// NewSequence returns a sequence whose ids carry the given prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

// Next returns the next id in the sequence.
func (s *Sequence) Next() string {
	s.n++
	return fmt.Sprintf("%s-%03d", s.prefix, s.n)
}

// Count reports how many ids have been issued.
func (s *Sequence) Count() int {
	return s.n
}
