package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"Marketplace/internal/cli/repo"
	"Marketplace/internal/cli/repo/fs"
	"Marketplace/internal/config"
)

// apiPrefix — префикс маршрутов сервера.
const apiPrefix = "/marketplace/api"

func endpoint(cfg *config.Config, parts ...string) string {
	escaped := make([]string, 0, len(parts))
	for _, p := range parts {
		escaped = append(escaped, url.PathEscape(p))
	}
	return strings.TrimRight(cfg.ServerURL, "/") + apiPrefix + "/" + strings.Join(escaped, "/")
}

func tokenStore(cfg *config.Config) repo.TokenStore {
	return fs.TokenFileStore{Path: cfg.TokenFile}
}

// storedToken возвращает сохранённый токен или "" для анонимного запроса.
func storedToken(cfg *config.Config) string {
	if cfg.TokenFile == "" {
		return ""
	}
	token, err := tokenStore(cfg).Load()
	if err != nil {
		return ""
	}
	return token
}

// printJSON печатает тело ответа с отступами; не-JSON печатается как есть.
func printJSON(body []byte) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		fmt.Fprintln(Out, strings.TrimSpace(string(body)))
		return
	}
	fmt.Fprintln(Out, buf.String())
}

// printFieldErrors печатает 422-ответ сервера: поле и причины, по одному полю на строку.
func printFieldErrors(body []byte) error {
	var resp struct {
		Errors struct {
			JSON map[string][]string `json:"json"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("decode validation errors: %w", err)
	}
	fields := make([]string, 0, len(resp.Errors.JSON))
	for f := range resp.Errors.JSON {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(Out, "  %s: %s\n", f, strings.Join(resp.Errors.JSON[f], " "))
	}
	return nil
}
