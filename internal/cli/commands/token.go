package commands

import (
	"context"
	"fmt"

	"Marketplace/internal/config"
)

type tokenCmd struct{}

func (tokenCmd) Name() string { return "token" }
func (tokenCmd) Description() string {
	return "Сохранить auth-токен для следующих запросов"
}
func (tokenCmd) Usage() string { return "token <jwt>" }

func (tokenCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := tokenStore(cfg).Save(args[0]); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	fmt.Fprintf(Out, "Token saved to %s\n", cfg.TokenFile)
	return nil
}

func init() { RegisterCmd(tokenCmd{}) }
