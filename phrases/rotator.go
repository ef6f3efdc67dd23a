package phrases

import (
	"context"
	"fmt"
)

// Rotator writes a uniformly drawn phrase into a target on every update. It
// carries no state between calls.
type Rotator struct {
	set    Set
	source Source
}

func NewRotator(set Set, source Source) *Rotator {
	if source == nil {
		source = DefaultSource
	}
	return &Rotator{set: set, source: source}
}

func (r *Rotator) Set() Set {
	return r.set
}

// Pick draws one phrase without writing it anywhere. It returns "" for the
// zero Set.
func (r *Rotator) Pick() string {
	if r.set.Len() == 0 {
		return ""
	}
	return r.set.At(r.source.IntN(r.set.Len()))
}

// UpdateMessage draws a phrase and writes it into target with a single
// SetText call. Errors from the target are returned as is.
func (r *Rotator) UpdateMessage(ctx context.Context, target Element) error {
	// Only an untyped nil is caught here; elements in package display also
	// answer ErrTargetNotFound on a nil receiver.
	if target == nil {
		return ErrTargetNotFound
	}
	if r.set.Len() == 0 {
		return ErrEmptySet
	}
	return target.SetText(ctx, r.Pick())
}

// UpdateElement looks up id on surface and updates it. Nothing is drawn when
// the element cannot be found.
func (r *Rotator) UpdateElement(ctx context.Context, surface Surface, id string) error {
	target, err := surface.Element(ctx, id)
	if err != nil {
		return fmt.Errorf("element %q: %w", id, err)
	}
	return r.UpdateMessage(ctx, target)
}
