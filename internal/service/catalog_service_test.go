package service

import (
	"context"
	"errors"
	"testing"

	"Marketplace/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestCatalogService_CategoryPath(t *testing.T) {
	ctx := context.Background()
	rootID, midID, leafID := uuid.New(), uuid.New(), uuid.New()

	t.Run("root first", func(t *testing.T) {
		m := new(mockCatalogRepo)
		m.On("GetCategory", mock.Anything, leafID).Return(&model.Category{ID: leafID, Name: "Sneakers", ParentID: &midID}, nil).Once()
		m.On("GetCategory", mock.Anything, midID).Return(&model.Category{ID: midID, Name: "Shoes", ParentID: &rootID}, nil).Once()
		m.On("GetCategory", mock.Anything, rootID).Return(&model.Category{ID: rootID, Name: "Apparel"}, nil).Once()

		path, err := NewCatalogService(m).CategoryPath(ctx, leafID)
		require.NoError(t, err)
		var names []string
		for _, c := range path {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"Apparel", "Shoes", "Sneakers"}, names)
		m.AssertExpectations(t)
	})

	t.Run("cycle detected", func(t *testing.T) {
		m := new(mockCatalogRepo)
		m.On("GetCategory", mock.Anything, leafID).Return(&model.Category{ID: leafID, ParentID: &midID}, nil).Once()
		m.On("GetCategory", mock.Anything, midID).Return(&model.Category{ID: midID, ParentID: &leafID}, nil).Once()

		path, err := NewCatalogService(m).CategoryPath(ctx, leafID)
		assert.Nil(t, path)
		assert.ErrorIs(t, err, ErrCategoryCycle)
	})

	t.Run("missing category", func(t *testing.T) {
		m := new(mockCatalogRepo)
		m.On("GetCategory", mock.Anything, leafID).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := NewCatalogService(m).CategoryPath(ctx, leafID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("depth bounded", func(t *testing.T) {
		m := new(mockCatalogRepo)
		// каждый вызов возвращает новую категорию со свежим родителем
		m.On("GetCategory", mock.Anything, mock.Anything).Return(func(_ context.Context, id uuid.UUID) (*model.Category, error) {
			return &model.Category{ID: id, ParentID: ptr(uuid.New())}, nil
		})

		_, err := NewCatalogService(m).CategoryPath(ctx, leafID)
		assert.ErrorIs(t, err, ErrCategoryTooDeep)
		m.AssertNumberOfCalls(t, "GetCategory", maxCategoryDepth)
	})
}

func TestCatalogService_CreateSourceItem(t *testing.T) {
	ctx := context.Background()
	catID := uuid.New()

	t.Run("unknown category", func(t *testing.T) {
		m := new(mockCatalogRepo)
		m.On("GetCategory", mock.Anything, catID).Return(nil, gorm.ErrRecordNotFound).Once()

		_, err := NewCatalogService(m).CreateSourceItem(ctx, "Keds", &catID, nil)
		assert.ErrorIs(t, err, ErrNotFound)
		m.AssertNotCalled(t, "CreateSourceItem", mock.Anything, mock.Anything)
	})

	t.Run("details normalized", func(t *testing.T) {
		m := new(mockCatalogRepo)
		m.On("GetCategory", mock.Anything, catID).Return(&model.Category{ID: catID}, nil).Once()
		m.On("CreateSourceItem", mock.Anything, mock.MatchedBy(func(s *model.SourceItem) bool {
			return s.SourceItemName == "Keds" && string(s.SourceItemDetails) == `{"color": "red"}`
		})).Return(&model.SourceItem{SourceItemName: "Keds"}, nil).Once()

		_, err := NewCatalogService(m).CreateSourceItem(ctx, "Keds", &catID, datatypes.JSON(`"{\"color\": \"red\"}"`))
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})
}

func TestCatalogService_SourceItemExists(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	m := new(mockCatalogRepo)
	svc := NewCatalogService(m)

	m.On("GetSourceItem", mock.Anything, id).Return(&model.SourceItem{ID: id}, nil).Once()
	ok, err := svc.SourceItemExists(ctx, id)
	assert.NoError(t, err)
	assert.True(t, ok)

	m.On("GetSourceItem", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound).Once()
	ok, err = svc.SourceItemExists(ctx, id)
	assert.NoError(t, err)
	assert.False(t, ok)

	boom := errors.New("db down")
	m.On("GetSourceItem", mock.Anything, id).Return(nil, boom).Once()
	_, err = svc.SourceItemExists(ctx, id)
	assert.ErrorIs(t, err, boom)
}
