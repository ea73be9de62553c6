package seed

import (
	"context"
	"fmt"
	"time"

	"Marketplace/internal/middleware"
	"Marketplace/internal/model"
	"Marketplace/internal/repo"
	"Marketplace/internal/service"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DemoPassword — пароль демо-пользователя.
const DemoPassword = "marketplace"

// Result — созданные демо-данные и токен демо-пользователя.
type Result struct {
	Community  *model.Community
	User       *model.User
	Categories []*model.Category
	SourceItem *model.SourceItem
	Token      string
}

// Run создаёт демо-сообщество, пользователя с профилем, цепочку категорий и source item.
// Всё создаётся в одной транзакции.
func Run(ctx context.Context, db *gorm.DB, authSecret string) (*Result, error) {
	res := &Result{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		communities := service.NewCommunityService(repo.NewCommunityRepository(tx))
		users := service.NewUserService(repo.NewUserRepository(tx))
		catalog := service.NewCatalogService(repo.NewCatalogRepository(tx))

		var err error
		if res.Community, err = communities.CreateCommunity(ctx, "Sneaker Gang", "sneakergang"); err != nil {
			return fmt.Errorf("create community: %w", err)
		}
		if res.User, err = users.Register(ctx, "demo@marketplace.local", "Bob", "Brown", DemoPassword); err != nil {
			return fmt.Errorf("register user: %w", err)
		}
		if _, err = communities.Join(ctx, res.Community.ID, res.User.ID, "bobby"); err != nil {
			return fmt.Errorf("join community: %w", err)
		}

		var parentID *uuid.UUID
		for _, name := range []string{"Apparel", "Shoes", "Sneakers"} {
			c, err := catalog.CreateCategory(ctx, name, parentID)
			if err != nil {
				return fmt.Errorf("create category %q: %w", name, err)
			}
			res.Categories = append(res.Categories, c)
			parentID = &c.ID
		}

		res.SourceItem, err = catalog.CreateSourceItem(ctx, "Keds", parentID, datatypes.JSON(`{"color": "red"}`))
		if err != nil {
			return fmt.Errorf("create source item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	res.Token, err = middleware.IssueToken(res.User.ID, authSecret, 30*24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return res, nil
}
