package service

import (
	"context"
	"errors"
	"fmt"

	"Marketplace/internal/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Authorizer решает, может ли пользователь выставить листинг от имени listedByID в сообществе.
// actorID — пользователь из токена запроса, nil для анонимного запроса.
type Authorizer interface {
	AuthorizeListing(ctx context.Context, actorID *uuid.UUID, communityID, listedByID uuid.UUID) error
}

// AllowAll разрешает всё. Используется по умолчанию.
type AllowAll struct{}

func (AllowAll) AuthorizeListing(context.Context, *uuid.UUID, uuid.UUID, uuid.UUID) error {
	return nil
}

// MembershipAuthorizer требует, чтобы листинг выставлял сам автор и у него был профиль в сообществе.
type MembershipAuthorizer struct {
	Communities repo.CommunityRepository
}

func NewMembershipAuthorizer(communities repo.CommunityRepository) *MembershipAuthorizer {
	return &MembershipAuthorizer{Communities: communities}
}

func (a *MembershipAuthorizer) AuthorizeListing(ctx context.Context, actorID *uuid.UUID, communityID, listedByID uuid.UUID) error {
	if actorID == nil || *actorID != listedByID {
		return ErrForbidden
	}
	if _, err := a.Communities.GetProfile(ctx, communityID, listedByID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrForbidden
		}
		return fmt.Errorf("lookup community profile: %w", err)
	}
	return nil
}
