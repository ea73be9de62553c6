package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"Marketplace/internal/model"
	"Marketplace/internal/repo"

	"gorm.io/gorm"
)

type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя; email должен быть свободен.
func (s *UserService) Register(ctx context.Context, email, firstName, lastName, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	u := &model.User{Email: email, FirstName: firstName, LastName: lastName}
	if err := u.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.CreateUser(ctx, u)
}
