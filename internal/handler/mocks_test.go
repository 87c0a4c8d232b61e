package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"pinboard/internal/middleware"
	"pinboard/internal/model"
	"pinboard/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	user := args.Get(0)
	if user == nil {
		return nil, args.Error(1)
	}
	return user.(*model.User), args.Error(1)
}

type MockPinRepository struct {
	mock.Mock
}

func (m *MockPinRepository) Create(ctx context.Context, pin *model.Pin) error {
	args := m.Called(ctx, pin)
	return args.Error(0)
}

func (m *MockPinRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Pin, error) {
	args := m.Called(ctx, id)
	pin := args.Get(0)
	if pin == nil {
		return nil, args.Error(1)
	}
	return pin.(*model.Pin), args.Error(1)
}

func (m *MockPinRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Pin, error) {
	args := m.Called(ctx, ids)
	pins := args.Get(0)
	if pins == nil {
		return nil, args.Error(1)
	}
	return pins.([]model.Pin), args.Error(1)
}

func (m *MockPinRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Pin, error) {
	args := m.Called(ctx, ownerID)
	pins := args.Get(0)
	if pins == nil {
		return nil, args.Error(1)
	}
	return pins.([]model.Pin), args.Error(1)
}

func (m *MockPinRepository) Update(ctx context.Context, pin *model.Pin) error {
	args := m.Called(ctx, pin)
	return args.Error(0)
}

func (m *MockPinRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) GetOwned(ctx context.Context, ownerID uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, ownerID)
	boards := args.Get(0)
	if boards == nil {
		return nil, args.Error(1)
	}
	return boards.([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPlacementRepository struct {
	mock.Mock
}

func (m *MockPlacementRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.Placement, error) {
	args := m.Called(ctx, boardID)
	placements := args.Get(0)
	if placements == nil {
		return nil, args.Error(1)
	}
	return placements.([]model.Placement), args.Error(1)
}

func (m *MockPlacementRepository) Upsert(ctx context.Context, placement *model.Placement) error {
	args := m.Called(ctx, placement)
	return args.Error(0)
}

func (m *MockPlacementRepository) Delete(ctx context.Context, boardID, pinID uuid.UUID) error {
	args := m.Called(ctx, boardID, pinID)
	return args.Error(0)
}

// newEngine builds a test engine with the real templates. When caller is not
// nil every request is made as that caller.
func newEngine(t *testing.T, caller *model.Identity) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()

	tmpl, err := web.Templates()
	require.NoError(t, err)
	r.SetHTMLTemplate(tmpl)

	r.Use(func(c *gin.Context) {
		if caller != nil {
			c.Set(middleware.CallerKey, caller)
		}
		c.Next()
	})
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}
