package access_test

import (
	"testing"

	"pinboard/internal/access"
	"pinboard/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCanView(t *testing.T) {
	owner := &model.Identity{ID: uuid.New(), Name: "owner"}
	stranger := &model.Identity{ID: uuid.New(), Name: "stranger"}

	tests := []struct {
		name     string
		private  bool
		caller   *model.Identity
		expected bool
	}{
		{"public, owner", false, owner, true},
		{"public, stranger", false, stranger, true},
		{"public, anonymous", false, nil, true},
		{"private, owner", true, owner, true},
		{"private, stranger", true, stranger, false},
		{"private, anonymous", true, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pin := &model.Pin{OwnerID: owner.ID, Private: tt.private}
			board := &model.Board{OwnerID: owner.ID, Private: tt.private}

			assert.Equal(t, tt.expected, access.CanView(pin, tt.caller))
			assert.Equal(t, tt.expected, access.CanView(board, tt.caller))
		})
	}
}

func TestCanMutate(t *testing.T) {
	owner := &model.Identity{ID: uuid.New()}
	stranger := &model.Identity{ID: uuid.New()}

	for _, private := range []bool{false, true} {
		pin := &model.Pin{OwnerID: owner.ID, Private: private}
		board := &model.Board{OwnerID: owner.ID, Private: private}

		assert.True(t, access.CanMutate(pin, owner))
		assert.True(t, access.CanMutate(board, owner))
		assert.False(t, access.CanMutate(pin, stranger))
		assert.False(t, access.CanMutate(board, stranger))
		assert.False(t, access.CanMutate(pin, nil))
		assert.False(t, access.CanMutate(board, nil))
	}
}

func TestCanMutate_ZeroOwnerIsNotAnonymous(t *testing.T) {
	pin := &model.Pin{OwnerID: uuid.Nil}

	assert.False(t, access.CanMutate(pin, nil))
}
