package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"Marketplace/internal/cli/repo"
)

// ErrNoToken — токен ещё не сохранён.
var ErrNoToken = errors.New("no stored token")

// TokenFileStore хранит auth-токен CLI в файле.
type TokenFileStore struct {
	Path string
}

var _ repo.TokenStore = TokenFileStore{}

// Save сохраняет auth‑токен в файл (0600), создавая каталог при необходимости.
func (s TokenFileStore) Save(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

// Load читает auth‑токен из файла.
func (s TokenFileStore) Load() (string, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", err
	}
	// обрезаем завершающие переводы строки/пробелы
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}
