package service

import (
	"context"

	"Marketplace/internal/model"
	"Marketplace/internal/repo"

	"github.com/google/uuid"
)

type CommunityService struct {
	repo repo.CommunityRepository
}

func NewCommunityService(r repo.CommunityRepository) *CommunityService {
	return &CommunityService{repo: r}
}

func (s *CommunityService) CreateCommunity(ctx context.Context, name, uri string) (*model.Community, error) {
	return s.repo.CreateCommunity(ctx, &model.Community{Name: name, URI: uri})
}

// Join создаёт профиль пользователя в сообществе под заданным алиасом.
func (s *CommunityService) Join(ctx context.Context, communityID, userID uuid.UUID, alias string) (*model.CommunityProfile, error) {
	return s.repo.CreateProfile(ctx, &model.CommunityProfile{
		CommunityID: communityID,
		UserID:      userID,
		Alias:       alias,
	})
}
