package repo

import (
	"context"

	"Marketplace/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository — категории и source items.
type CatalogRepository interface {
	CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error)
	CreateSourceItem(ctx context.Context, s *model.SourceItem) (*model.SourceItem, error)
	GetSourceItem(ctx context.Context, id uuid.UUID) (*model.SourceItem, error)
}

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

func (r *catalogRepo) CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	if err := r.db.WithContext(ctx).Omit("Parent").Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *catalogRepo) GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Take(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *catalogRepo) CreateSourceItem(ctx context.Context, s *model.SourceItem) (*model.SourceItem, error) {
	if err := r.db.WithContext(ctx).Omit("Category").Create(s).Error; err != nil {
		return nil, err
	}
	return s, nil
}

func (r *catalogRepo) GetSourceItem(ctx context.Context, id uuid.UUID) (*model.SourceItem, error) {
	var s model.SourceItem
	if err := r.db.WithContext(ctx).Take(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
