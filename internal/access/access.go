// Package access holds the ownership and visibility rule shared by pins and boards.
package access

import (
	"pinboard/internal/model"

	"github.com/google/uuid"
)

// Resource is anything that has an owner and a private flag.
type Resource interface {
	OwnedBy() uuid.UUID
	IsPrivate() bool
}

var (
	_ Resource = (*model.Pin)(nil)
	_ Resource = (*model.Board)(nil)
)

// CanView reports whether the caller may read r. Public resources are readable
// by anyone, anonymous callers included; private ones only by their owner.
func CanView(r Resource, caller *model.Identity) bool {
	return !r.IsPrivate() || caller.Is(r.OwnedBy())
}

// CanMutate reports whether the caller may change or delete r. Only the owner may.
func CanMutate(r Resource, caller *model.Identity) bool {
	return caller.Is(r.OwnedBy())
}
