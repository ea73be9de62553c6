package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Marketplace/internal/cli/repo/fs"
	"Marketplace/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

type statusCmd struct{}

func (statusCmd) Name() string { return "status" }
func (statusCmd) Description() string {
	return "Показать сервер и сохранённый токен"
}
func (statusCmd) Usage() string { return "status" }

// Run печатает адрес сервера и пользователя из сохранённого токена.
// Подпись токена не проверяется: секрет есть только у сервера.
func (statusCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	fmt.Fprintf(Out, "server: %s\n", cfg.ServerURL)

	token, err := tokenStore(cfg).Load()
	if errors.Is(err, fs.ErrNoToken) {
		fmt.Fprintln(Out, "token:  none (anonymous)")
		return nil
	}
	if err != nil {
		return err
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return fmt.Errorf("stored token is malformed: %w", err)
	}
	fmt.Fprintf(Out, "user:   %s\n", claims.Subject)
	if claims.ExpiresAt != nil {
		state := "valid until"
		if claims.ExpiresAt.Before(time.Now()) {
			state = "expired at"
		}
		fmt.Fprintf(Out, "token:  %s %s\n", state, claims.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
