package model

import (
	"time"

	"github.com/google/uuid"
)

// Pin is an image with a caption. OwnerID and CreatedAt are fixed at creation.
type Pin struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ImageURL  string    `gorm:"not null"`
	Caption   string
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Private   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (p *Pin) OwnedBy() uuid.UUID { return p.OwnerID }
func (p *Pin) IsPrivate() bool    { return p.Private }
