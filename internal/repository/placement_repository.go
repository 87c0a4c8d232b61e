package repository

import (
	"context"

	"pinboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlacementRepositoryInterface interface {
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Placement, error)
	Upsert(ctx context.Context, placement *model.Placement) error
	Delete(ctx context.Context, boardID, pinID uuid.UUID) error
}

type PlacementRepository struct {
	db *gorm.DB
}

var _ PlacementRepositoryInterface = (*PlacementRepository)(nil)

func NewPlacementRepository(db *gorm.DB) *PlacementRepository {
	return &PlacementRepository{db: db}
}

func (r *PlacementRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Placement, error) {
	var placements []model.Placement
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&placements).Error
	return placements, err
}

// Upsert stores the coordinates, replacing any previous ones for the same board and pin.
func (r *PlacementRepository) Upsert(ctx context.Context, placement *model.Placement) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "board_id"}, {Name: "pin_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"x", "y"}),
	}).Create(placement).Error
}

func (r *PlacementRepository) Delete(ctx context.Context, boardID, pinID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("board_id = ? AND pin_id = ?", boardID, pinID).
		Delete(&model.Placement{}).Error
}
