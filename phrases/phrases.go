// Package phrases picks one phrase from a fixed set and writes it into a
// display element.
package phrases

import (
	"context"
	"errors"
	"math/rand/v2"
)

var (
	// ErrTargetNotFound is returned when the element to render into does not
	// exist on the surface.
	ErrTargetNotFound = errors.New("target not found")
	ErrEmptySet       = errors.New("phrase set is empty")
)

// Set is an ordered, immutable list of phrases. Duplicates are kept and each
// copy is a separate candidate.
type Set struct {
	phrases []string
}

func NewSet(phrases ...string) (Set, error) {
	if len(phrases) == 0 {
		return Set{}, ErrEmptySet
	}
	return Set{phrases: append([]string(nil), phrases...)}, nil
}

func (s Set) Len() int {
	return len(s.phrases)
}

func (s Set) At(i int) string {
	return s.phrases[i]
}

// All returns a copy of the phrases in order.
func (s Set) All() []string {
	return append([]string(nil), s.phrases...)
}

// Source returns an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type SourceFunc func(n int) int

func (f SourceFunc) IntN(n int) int {
	return f(n)
}

// DefaultSource draws from the process-wide math/rand/v2 generator and is safe
// for concurrent use.
var DefaultSource Source = SourceFunc(rand.IntN)

// Element is a single display location holding one text value.
type Element interface {
	SetText(ctx context.Context, text string) error
}

// Surface locates elements by their identifier.
type Surface interface {
	Element(ctx context.Context, id string) (Element, error)
}
