package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"Marketplace/internal/cli/api"
	"Marketplace/internal/config"
)

type getCmd struct{}

func (getCmd) Name() string        { return "get" }
func (getCmd) Description() string { return "Показать листинг по id" }
func (getCmd) Usage() string       { return "get <listing-id>" }

func (getCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(ctx, endpoint(cfg, "listing", args[0]), storedToken(cfg))
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		printJSON(body)
		return nil
	case http.StatusNotFound:
		return errors.New("listing does not exist")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(getCmd{}) }
