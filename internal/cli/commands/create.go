package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"Marketplace/internal/cli/api"
	"Marketplace/internal/config"
)

type createCmd struct{}

func (createCmd) Name() string { return "create" }
func (createCmd) Description() string {
	return "Создать листинг из JSON-файла (- читает stdin)"
}
func (createCmd) Usage() string { return "create <payload.json|->" }

func (createCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}

	var (
		payload []byte
		err     error
	)
	if args[0] == "-" {
		payload, err = io.ReadAll(In)
	} else {
		payload, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("read payload: %w", err)
	}
	if !json.Valid(payload) {
		return errors.New("payload is not valid JSON")
	}

	resp, body, err := api.PostJSON(ctx, endpoint(cfg, "listing", "create"), json.RawMessage(payload), storedToken(cfg))
	if err != nil {
		return err
	}
	switch resp.StatusCode {
	case http.StatusOK:
		printJSON(body)
		return nil
	case http.StatusUnprocessableEntity:
		fmt.Fprintln(Out, "Validation failed:")
		if err := printFieldErrors(body); err != nil {
			return err
		}
		return errors.New("listing rejected")
	case http.StatusForbidden:
		return errors.New("not allowed to create listing for this user/community (store a token with `token`)")
	default:
		return fmt.Errorf("server status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func init() { RegisterCmd(createCmd{}) }
