package repo

import (
	"Marketplace/internal/model"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func TestCatalogRepository_CategoriesAndSourceItems(t *testing.T) {
	db := newTestDB(t)
	r := NewCatalogRepository(db)
	ctx := context.Background()

	root, err := r.CreateCategory(ctx, &model.Category{Name: "Sneaker brands"})
	require.NoError(t, err)
	child, err := r.CreateCategory(ctx, &model.Category{Name: "Nike", ParentID: &root.ID})
	require.NoError(t, err)

	got, err := r.GetCategory(ctx, child.ID)
	require.NoError(t, err)
	if assert.NotNil(t, got.ParentID) {
		assert.Equal(t, root.ID, *got.ParentID)
	}

	src, err := r.CreateSourceItem(ctx, &model.SourceItem{SourceItemName: "Air Jordan", CategoryID: &child.ID, SourceItemDetails: datatypes.JSON(`{"color":"red"}`)})
	require.NoError(t, err)
	gotSrc, err := r.GetSourceItem(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, "Air Jordan", gotSrc.SourceItemName)
	assert.JSONEq(t, `{"color":"red"}`, string(gotSrc.SourceItemDetails))

	_, err = r.GetCategory(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = r.GetSourceItem(ctx, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
