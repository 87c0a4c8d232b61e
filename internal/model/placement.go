package model

import "github.com/google/uuid"

// Placement holds the canvas coordinates of a pin on a board.
type Placement struct {
	BoardID uuid.UUID `gorm:"type:uuid;primaryKey"`
	PinID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	X       int       `gorm:"not null;default:0"`
	Y       int       `gorm:"not null;default:0"`
}
