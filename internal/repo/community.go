package repo

import (
	"context"

	"Marketplace/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommunityRepository — доступ к сообществам и профилям пользователей в них.
type CommunityRepository interface {
	CreateCommunity(ctx context.Context, c *model.Community) (*model.Community, error)
	CreateProfile(ctx context.Context, p *model.CommunityProfile) (*model.CommunityProfile, error)
	// GetProfile возвращает gorm.ErrRecordNotFound, если пользователь не состоит в сообществе.
	GetProfile(ctx context.Context, communityID, userID uuid.UUID) (*model.CommunityProfile, error)
}

type communityRepo struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepo{db: db}
}

func (r *communityRepo) CreateCommunity(ctx context.Context, c *model.Community) (*model.Community, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (r *communityRepo) CreateProfile(ctx context.Context, p *model.CommunityProfile) (*model.CommunityProfile, error) {
	if err := r.db.WithContext(ctx).Omit("Community", "User").Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *communityRepo) GetProfile(ctx context.Context, communityID, userID uuid.UUID) (*model.CommunityProfile, error) {
	var p model.CommunityProfile
	err := r.db.WithContext(ctx).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
