package repository

import (
	"context"
	"errors"

	"pinboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PinRepositoryInterface interface {
	Create(ctx context.Context, pin *model.Pin) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Pin, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Pin, error)
	GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Pin, error)
	Update(ctx context.Context, pin *model.Pin) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type PinRepository struct {
	db *gorm.DB
}

var _ PinRepositoryInterface = (*PinRepository)(nil)

func NewPinRepository(db *gorm.DB) *PinRepository {
	return &PinRepository{db: db}
}

func (r *PinRepository) Create(ctx context.Context, pin *model.Pin) error {
	return r.db.WithContext(ctx).Create(pin).Error
}

// GetByID returns nil, nil when the pin does not exist.
func (r *PinRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Pin, error) {
	var pin model.Pin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&pin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pin, nil
}

// GetByIDs returns the pins that exist among ids, in no particular order.
func (r *PinRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Pin, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var pins []model.Pin
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&pins).Error
	return pins, err
}

// GetOwned lists the owner's pins, newest first.
func (r *PinRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Pin, error) {
	var pins []model.Pin
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&pins).Error
	return pins, err
}

// Update writes the mutable fields only; owner and creation time are never rewritten.
func (r *PinRepository) Update(ctx context.Context, pin *model.Pin) error {
	return r.db.WithContext(ctx).
		Model(pin).
		Select("ImageURL", "Caption", "Private").
		Updates(pin).Error
}

func (r *PinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Pin{}).Error
}
