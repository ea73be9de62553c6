package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Marketplace/internal/model"
	"Marketplace/internal/repo"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Detail — детальная часть листинга: *ItemDetail или *LodgingDetail.
type Detail interface {
	Kind() model.ListingType
}

// ItemDetail — item листинга; поля source item заполнены, только если он есть.
type ItemDetail struct {
	model.Item
	SourceItemName    *string
	CategoryID        *uuid.UUID
	SourceItemDetails datatypes.JSON
	// CategoryPath — имена категорий от корня.
	CategoryPath []string
}

func (*ItemDetail) Kind() model.ListingType { return model.ListingTypeItem }

type LodgingDetail struct {
	model.Lodging
}

func (*LodgingDetail) Kind() model.ListingType { return model.ListingTypeLodging }

// ListingView — листинг вместе с алиасом автора и деталями. Detail == nil, если деталей нет.
type ListingView struct {
	Listing       model.Listing
	ListedByAlias *string
	Detail        Detail
}

// ListingService создаёт и читает листинги.
type ListingService struct {
	repo    repo.ListingRepository
	catalog *CatalogService
	auth    Authorizer
	logger  *zap.SugaredLogger
	now     func() time.Time
}

func NewListingService(r repo.ListingRepository, catalog *CatalogService, auth Authorizer, logger *zap.SugaredLogger) *ListingService {
	if auth == nil {
		auth = AllowAll{}
	}
	return &ListingService{
		repo:    r,
		catalog: catalog,
		auth:    auth,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create проверяет запрос и атомарно сохраняет листинг вместе с деталями.
// Возвращает сохранённое состояние, перечитанное из базы.
func (s *ListingService) Create(ctx context.Context, in CreateListingInput) (*ListingView, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	listingType := model.ListingType(*in.ListingType)
	if listingType == model.ListingTypeItem && in.Item.SourceItemID != nil {
		ok, err := s.catalog.SourceItemExists(ctx, *in.Item.SourceItemID)
		if err != nil {
			return nil, fmt.Errorf("lookup source item: %w", err)
		}
		if !ok {
			return nil, NewValidationError("source_item_id", "Source item doesn't exist")
		}
	}

	if err := s.auth.AuthorizeListing(ctx, in.ActorID, *in.CommunityID, *in.ListedByID); err != nil {
		return nil, err
	}

	listing := &model.Listing{
		CommunityID:       *in.CommunityID,
		ListedByID:        *in.ListedByID,
		Status:            model.ListingStatus(*in.Status),
		ListingType:       listingType,
		SaleType:          model.SaleType(*in.SaleType),
		ListingPriceCents: *in.ListingPriceCents,
		ListingTitle:      *in.ListingTitle,
		ListingDesc:       in.ListingDesc,
		AvailableCount:    *in.AvailableCount,
	}
	if listing.Status == model.ListingStatusActive {
		now := s.now()
		listing.ListedOn = &now
	}

	var (
		item    *model.Item
		lodging *model.Lodging
	)
	switch listingType {
	case model.ListingTypeItem:
		item = &model.Item{
			SourceItemID:    in.Item.SourceItemID,
			ItemName:        *in.Item.ItemName,
			Condition:       model.Condition(*in.Item.Condition),
			Photos:          NormalizeBlob(in.Item.Photos),
			ShippingZipcode: *in.Item.ShippingZipcode,
			ItemDetails:     NormalizeBlob(in.Item.ItemDetails),
		}
	case model.ListingTypeLodging:
		lodging = &model.Lodging{
			LodgingName:    *in.Lodging.LodgingName,
			Address:        *in.Lodging.Address,
			StartDate:      *in.Lodging.StartDate,
			EndDate:        *in.Lodging.EndDate,
			LodgingType:    model.LodgingType(*in.Lodging.LodgingType),
			LodgingURL:     in.Lodging.LodgingURL,
			LodgingDetails: NormalizeBlob(in.Lodging.LodgingDetails),
		}
	}

	if err := s.repo.CreateListing(ctx, listing, item, lodging); err != nil {
		return nil, fmt.Errorf("create listing: %w", err)
	}
	s.logger.Infow("listing created", "listing_id", listing.ID, "listing_type", listingType)

	stored, err := s.repo.GetByID(ctx, listing.ID)
	if err != nil {
		return nil, fmt.Errorf("reload listing %s: %w", listing.ID, err)
	}
	view := &ListingView{Listing: *stored}

	switch {
	case item != nil:
		it, err := s.repo.GetItemByID(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("reload item %s: %w", item.ID, err)
		}
		view.Detail = &ItemDetail{Item: *it}
	case lodging != nil:
		l, err := s.repo.GetLodgingByID(ctx, lodging.ID)
		if err != nil {
			return nil, fmt.Errorf("reload lodging %s: %w", lodging.ID, err)
		}
		view.Detail = &LodgingDetail{Lodging: *l}
	}
	return view, nil
}

// Get возвращает листинг с алиасом автора. Листинг без профиля автора в сообществе
// считается отсутствующим (ErrListingNotFound).
func (s *ListingService) Get(ctx context.Context, id uuid.UUID) (*ListingView, error) {
	row, err := s.repo.GetWithAlias(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("get listing %s: %w", id, err)
	}
	view := &ListingView{Listing: row.Listing, ListedByAlias: row.ListedByAlias}

	switch row.ListingType {
	case model.ListingTypeItem:
		detail, err := s.itemDetail(ctx, id)
		if err != nil {
			return nil, err
		}
		if detail != nil {
			view.Detail = detail
		}
	case model.ListingTypeLodging:
		l, err := s.repo.GetListingLodging(ctx, id)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			s.logger.Warnw("listing has no lodging row", "listing_id", id)
		case err != nil:
			return nil, fmt.Errorf("get lodging of listing %s: %w", id, err)
		default:
			view.Detail = &LodgingDetail{Lodging: *l}
		}
	}
	return view, nil
}

// itemDetail returns nil without error when the listing has no item row.
func (s *ListingService) itemDetail(ctx context.Context, listingID uuid.UUID) (*ItemDetail, error) {
	row, err := s.repo.GetListingItem(ctx, listingID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Warnw("listing has no item row", "listing_id", listingID)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item of listing %s: %w", listingID, err)
	}

	detail := &ItemDetail{
		Item:              row.Item,
		SourceItemName:    row.SourceItemName,
		CategoryID:        row.CategoryID,
		SourceItemDetails: row.SourceItemDetails,
	}
	if row.CategoryID != nil {
		path, err := s.catalog.CategoryPath(ctx, *row.CategoryID)
		if err != nil {
			s.logger.Warnw("category path unavailable", "listing_id", listingID, "category_id", *row.CategoryID, "error", err)
		} else {
			for _, c := range path {
				detail.CategoryPath = append(detail.CategoryPath, c.Name)
			}
		}
	}
	return detail, nil
}
