package repo

import (
	"context"
	"fmt"

	"Marketplace/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListingRow — листинг вместе с алиасом автора в его сообществе.
type ListingRow struct {
	model.Listing
	ListedByAlias *string
}

// ItemRow — item листинга с полями source item (left join, поэтому все nullable).
type ItemRow struct {
	model.Item
	SourceItemName    *string
	CategoryID        *uuid.UUID
	SourceItemDetails datatypes.JSON
}

// ListingRepository определяет контракт доступа к листингам и их детальным записям.
type ListingRepository interface {
	// CreateListing атомарно сохраняет листинг, детальную запись (item или lodging, не обе)
	// и строку join-таблицы. При любой ошибке транзакция откатывается целиком.
	CreateListing(ctx context.Context, listing *model.Listing, item *model.Item, lodging *model.Lodging) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.Listing, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (*model.Item, error)
	GetLodgingByID(ctx context.Context, id uuid.UUID) (*model.Lodging, error)

	// GetWithAlias ищет листинг с inner join на community_profiles.
	// Без профиля автора листинг считается отсутствующим.
	GetWithAlias(ctx context.Context, id uuid.UUID) (*ListingRow, error)
	GetListingItem(ctx context.Context, listingID uuid.UUID) (*ItemRow, error)
	GetListingLodging(ctx context.Context, listingID uuid.UUID) (*model.Lodging, error)
}

type listingRepo struct {
	db *gorm.DB
}

// NewListingRepository создаёт реализацию репозитория листингов.
func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepo{db: db}
}

func (r *listingRepo) CreateListing(ctx context.Context, listing *model.Listing, item *model.Item, lodging *model.Lodging) error {
	if item != nil && lodging != nil {
		return fmt.Errorf("listing %s: item and lodging are mutually exclusive", listing.ID)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(listing).Error; err != nil {
			return fmt.Errorf("insert listing: %w", err)
		}

		switch {
		case item != nil:
			if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
				return fmt.Errorf("insert item: %w", err)
			}
			link := &model.ListingItem{ListingID: listing.ID, ItemID: item.ID}
			if err := tx.Omit(clause.Associations).Create(link).Error; err != nil {
				return fmt.Errorf("insert listing_item: %w", err)
			}
		case lodging != nil:
			if err := tx.Omit(clause.Associations).Create(lodging).Error; err != nil {
				return fmt.Errorf("insert lodging: %w", err)
			}
			link := &model.ListingLodging{ListingID: listing.ID, LodgingID: lodging.ID}
			if err := tx.Omit(clause.Associations).Create(link).Error; err != nil {
				return fmt.Errorf("insert listing_lodging: %w", err)
			}
		}
		return nil
	})
}

func (r *listingRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	var l model.Listing
	if err := r.db.WithContext(ctx).Take(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listingRepo) GetItemByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Take(&it, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *listingRepo) GetLodgingByID(ctx context.Context, id uuid.UUID) (*model.Lodging, error) {
	var l model.Lodging
	if err := r.db.WithContext(ctx).Take(&l, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *listingRepo) GetWithAlias(ctx context.Context, id uuid.UUID) (*ListingRow, error) {
	var row ListingRow
	err := r.db.WithContext(ctx).
		Model(&model.Listing{}).
		Select("listings.*, community_profiles.alias AS listed_by_alias").
		Joins("JOIN community_profiles ON community_profiles.community_id = listings.community_id"+
			" AND community_profiles.user_id = listings.listed_by_id").
		Where("listings.id = ?", id).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *listingRepo) GetListingItem(ctx context.Context, listingID uuid.UUID) (*ItemRow, error) {
	var row ItemRow
	err := r.db.WithContext(ctx).
		Model(&model.ListingItem{}).
		Select("items.*, source_items.source_item_name, source_items.category_id, source_items.source_item_details").
		Joins("JOIN items ON items.id = listing_items.item_id").
		Joins("LEFT JOIN source_items ON source_items.id = items.source_item_id").
		Where("listing_items.listing_id = ?", listingID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *listingRepo) GetListingLodging(ctx context.Context, listingID uuid.UUID) (*model.Lodging, error) {
	var l model.Lodging
	err := r.db.WithContext(ctx).
		Model(&model.ListingLodging{}).
		Select("lodgings.*").
		Joins("JOIN lodgings ON lodgings.id = listing_lodgings.lodging_id").
		Where("listing_lodgings.listing_id = ?", listingID).
		Take(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}
