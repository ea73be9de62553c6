package service

import (
	"context"
	"errors"
	"fmt"

	"Marketplace/internal/model"
	"Marketplace/internal/repo"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// maxCategoryDepth ограничивает обход дерева категорий.
const maxCategoryDepth = 64

var ErrCategoryTooDeep = fmt.Errorf("category tree deeper than %d levels", maxCategoryDepth)

// CatalogService — категории и source items.
type CatalogService struct {
	repo repo.CatalogRepository
}

func NewCatalogService(r repo.CatalogRepository) *CatalogService {
	return &CatalogService{repo: r}
}

// CreateCategory создаёт категорию. parentID, если задан, должен ссылаться на существующую категорию.
func (s *CatalogService) CreateCategory(ctx context.Context, name string, parentID *uuid.UUID) (*model.Category, error) {
	if parentID != nil {
		if _, err := s.repo.GetCategory(ctx, *parentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("parent category %s: %w", parentID, ErrNotFound)
			}
			return nil, err
		}
	}
	return s.repo.CreateCategory(ctx, &model.Category{Name: name, ParentID: parentID})
}

func (s *CatalogService) CreateSourceItem(ctx context.Context, name string, categoryID *uuid.UUID, details datatypes.JSON) (*model.SourceItem, error) {
	if categoryID != nil {
		if _, err := s.repo.GetCategory(ctx, *categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("category %s: %w", categoryID, ErrNotFound)
			}
			return nil, err
		}
	}
	return s.repo.CreateSourceItem(ctx, &model.SourceItem{
		SourceItemName:    name,
		CategoryID:        categoryID,
		SourceItemDetails: NormalizeBlob(details),
	})
}

// SourceItemExists reports whether a source item with id is stored.
func (s *CatalogService) SourceItemExists(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := s.repo.GetSourceItem(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CategoryPath возвращает путь от корня дерева до категории id включительно.
func (s *CatalogService) CategoryPath(ctx context.Context, id uuid.UUID) ([]model.Category, error) {
	var path []model.Category
	seen := make(map[uuid.UUID]struct{})
	next := &id
	for next != nil {
		if _, ok := seen[*next]; ok {
			return nil, fmt.Errorf("category %s: %w", *next, ErrCategoryCycle)
		}
		if len(path) == maxCategoryDepth {
			return nil, ErrCategoryTooDeep
		}
		seen[*next] = struct{}{}

		c, err := s.repo.GetCategory(ctx, *next)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("category %s: %w", *next, ErrNotFound)
			}
			return nil, err
		}
		path = append(path, *c)
		next = c.ParentID
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
