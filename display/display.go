// Package display holds the surfaces a phrase can be rendered into.
package display

import "context"

// Creator provisions a new element on a surface and returns its identifier.
type Creator interface {
	Create(ctx context.Context, id string) (string, error)
}
