package repository_test

import (
	"context"
	"testing"
	"time"

	"pinboard/internal/model"
	"pinboard/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var pinColumns = []string{"id", "image_url", "caption", "owner_id", "private", "created_at"}

func TestPinRepository_Create(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	pinRepo := repository.NewPinRepository(gormDB)

	pinID := uuid.New()
	pin := &model.Pin{
		ImageURL: "http://x/1.png",
		Caption:  "cat",
		OwnerID:  uuid.New(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "pins"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(pinID.String()))
	mock.ExpectCommit()

	// Act
	err := pinRepo.Create(context.Background(), pin)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, pinID, pin.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinRepository_GetByID_Found(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	pinRepo := repository.NewPinRepository(gormDB)

	pinID, ownerID := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "pins" WHERE id = .* LIMIT`).
		WillReturnRows(sqlmock.NewRows(pinColumns).
			AddRow(pinID.String(), "http://x/1.png", "cat", ownerID.String(), true, time.Now()))

	pin, err := pinRepo.GetByID(context.Background(), pinID)

	require.NoError(t, err)
	require.NotNil(t, pin)
	assert.Equal(t, pinID, pin.ID)
	assert.Equal(t, ownerID, pin.OwnerID)
	assert.Equal(t, "http://x/1.png", pin.ImageURL)
	assert.True(t, pin.Private)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinRepository_GetByID_NotFound(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	pinRepo := repository.NewPinRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "pins" WHERE id = .* LIMIT`).
		WillReturnError(gorm.ErrRecordNotFound)

	pin, err := pinRepo.GetByID(context.Background(), uuid.New())

	assert.NoError(t, err)
	assert.Nil(t, pin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinRepository_GetByID_Error(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	pinRepo := repository.NewPinRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "pins"`).WillReturnError(assert.AnError)

	pin, err := pinRepo.GetByID(context.Background(), uuid.New())

	assert.Error(t, err)
	assert.Nil(t, pin)
}

func TestPinRepository_GetOwned(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	pinRepo := repository.NewPinRepository(gormDB)

	ownerID := uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "pins" WHERE owner_id = .* ORDER BY created_at DESC`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows(pinColumns).
			AddRow(uuid.New().String(), "http://x/2.png", "", ownerID.String(), false, time.Now()).
			AddRow(uuid.New().String(), "http://x/1.png", "", ownerID.String(), false, time.Now()))

	pins, err := pinRepo.GetOwned(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Len(t, pins, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinRepository_GetByIDs_Empty(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	pinRepo := repository.NewPinRepository(gormDB)

	pins, err := pinRepo.GetByIDs(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, pins)
	// no query is issued for an empty id list
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinRepository_GetByIDs(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	pinRepo := repository.NewPinRepository(gormDB)

	existing, missing := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT .* FROM "pins" WHERE id IN`).
		WillReturnRows(sqlmock.NewRows(pinColumns).
			AddRow(existing.String(), "http://x/1.png", "", uuid.New().String(), false, time.Now()))

	pins, err := pinRepo.GetByIDs(context.Background(), []uuid.UUID{existing, missing})

	assert.NoError(t, err)
	require.Len(t, pins, 1)
	assert.Equal(t, existing, pins[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinRepository_UpdateLeavesOwnerAlone(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	pinRepo := repository.NewPinRepository(gormDB)

	pin := &model.Pin{ID: uuid.New(), ImageURL: "http://x/3.png", Caption: "dog", OwnerID: uuid.New()}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "pins" SET "image_url"=.*,"caption"=.*,"private"=.* WHERE "id" = `).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := pinRepo.Update(context.Background(), pin)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPinRepository_Delete(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	pinRepo := repository.NewPinRepository(gormDB)

	pinID := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "pins" WHERE id = `).
		WithArgs(pinID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := pinRepo.Delete(context.Background(), pinID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
