package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	Name           string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// Identity is the resolved caller of a request. A nil *Identity is an anonymous caller.
type Identity struct {
	ID   uuid.UUID
	Name string
}

// Is reports whether the caller is the given user.
func (i *Identity) Is(userID uuid.UUID) bool {
	return i != nil && i.ID == userID
}
