package repository

import (
	"context"
	"errors"

	"pinboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepositoryInterface interface {
	Create(ctx context.Context, board *model.Board) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type BoardRepository struct {
	db *gorm.DB
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) Create(ctx context.Context, board *model.Board) error {
	if board.PinIDs == nil {
		board.PinIDs = []string{}
	}
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *BoardRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil to indicate that the board was not found
		}
		return nil, err
	}
	return &board, nil
}

// Update writes title, privacy and pin membership. The owner and creation
// time are never rewritten.
func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	if board.PinIDs == nil {
		board.PinIDs = []string{}
	}
	return r.db.WithContext(ctx).
		Model(board).
		Select("Title", "Private", "PinIDs", "UpdatedAt").
		Updates(board).Error
}

// Delete removes the board. Its placements go with it; its pins stay.
func (r *BoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Board{}).Error
}
