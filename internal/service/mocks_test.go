package service

import (
	"context"

	"Marketplace/internal/model"
	"Marketplace/internal/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// мок для repo.ListingRepository
type mockListingRepo struct{ mock.Mock }

func (m *mockListingRepo) CreateListing(ctx context.Context, listing *model.Listing, item *model.Item, lodging *model.Lodging) error {
	return m.Called(ctx, listing, item, lodging).Error(0)
}

func (m *mockListingRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Listing, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, uuid.UUID) (*model.Listing, error)); ok {
		return fn(ctx, id)
	}
	if v, ok := args.Get(0).(*model.Listing); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) GetItemByID(ctx context.Context, id uuid.UUID) (*model.Item, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, uuid.UUID) (*model.Item, error)); ok {
		return fn(ctx, id)
	}
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) GetLodgingByID(ctx context.Context, id uuid.UUID) (*model.Lodging, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, uuid.UUID) (*model.Lodging, error)); ok {
		return fn(ctx, id)
	}
	if v, ok := args.Get(0).(*model.Lodging); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) GetWithAlias(ctx context.Context, id uuid.UUID) (*repo.ListingRow, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*repo.ListingRow); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) GetListingItem(ctx context.Context, listingID uuid.UUID) (*repo.ItemRow, error) {
	args := m.Called(ctx, listingID)
	if v, ok := args.Get(0).(*repo.ItemRow); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockListingRepo) GetListingLodging(ctx context.Context, listingID uuid.UUID) (*model.Lodging, error) {
	args := m.Called(ctx, listingID)
	if v, ok := args.Get(0).(*model.Lodging); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ListingRepository = (*mockListingRepo)(nil)

// мок для repo.CatalogRepository
type mockCatalogRepo struct{ mock.Mock }

func (m *mockCatalogRepo) CreateCategory(ctx context.Context, c *model.Category) (*model.Category, error) {
	args := m.Called(ctx, c)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	args := m.Called(ctx, id)
	if fn, ok := args.Get(0).(func(context.Context, uuid.UUID) (*model.Category, error)); ok {
		return fn(ctx, id)
	}
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) CreateSourceItem(ctx context.Context, s *model.SourceItem) (*model.SourceItem, error) {
	args := m.Called(ctx, s)
	if v, ok := args.Get(0).(*model.SourceItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCatalogRepo) GetSourceItem(ctx context.Context, id uuid.UUID) (*model.SourceItem, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.SourceItem); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.CatalogRepository = (*mockCatalogRepo)(nil)

// мок для repo.CommunityRepository
type mockCommunityRepo struct{ mock.Mock }

func (m *mockCommunityRepo) CreateCommunity(ctx context.Context, c *model.Community) (*model.Community, error) {
	args := m.Called(ctx, c)
	if v, ok := args.Get(0).(*model.Community); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommunityRepo) CreateProfile(ctx context.Context, p *model.CommunityProfile) (*model.CommunityProfile, error) {
	args := m.Called(ctx, p)
	if v, ok := args.Get(0).(*model.CommunityProfile); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCommunityRepo) GetProfile(ctx context.Context, communityID, userID uuid.UUID) (*model.CommunityProfile, error) {
	args := m.Called(ctx, communityID, userID)
	if v, ok := args.Get(0).(*model.CommunityProfile); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.CommunityRepository = (*mockCommunityRepo)(nil)

// мок для repo.UserRepository
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

func ptr[T any](v T) *T { return &v }
