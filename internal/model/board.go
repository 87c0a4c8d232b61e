package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Board is a titled, ordered collection of pin references. Membership lives
// on the board only; pins know nothing about the boards that list them.
type Board struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Title     string         `gorm:"not null"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Private   bool           `gorm:"not null;default:false"`
	PinIDs    pq.StringArray `gorm:"type:text[];not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Board) OwnedBy() uuid.UUID { return b.OwnerID }
func (b *Board) IsPrivate() bool    { return b.Private }

// HasPin reports whether the pin is referenced by the board.
func (b *Board) HasPin(pinID uuid.UUID) bool {
	id := pinID.String()
	for _, p := range b.PinIDs {
		if p == id {
			return true
		}
	}
	return false
}

// AddPin appends the pin unless it is already present. It returns false on a duplicate.
func (b *Board) AddPin(pinID uuid.UUID) bool {
	if b.HasPin(pinID) {
		return false
	}
	b.PinIDs = append(b.PinIDs, pinID.String())
	return true
}

// RemovePin drops the pin from the board, keeping the order of the rest.
// It returns false if the pin was not on the board.
func (b *Board) RemovePin(pinID uuid.UUID) bool {
	id := pinID.String()
	for i, p := range b.PinIDs {
		if p == id {
			b.PinIDs = append(b.PinIDs[:i], b.PinIDs[i+1:]...)
			return true
		}
	}
	return false
}

// PinUUIDs returns the referenced pin ids in board order. Malformed entries are skipped.
func (b *Board) PinUUIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(b.PinIDs))
	for _, p := range b.PinIDs {
		id, err := uuid.Parse(p)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
