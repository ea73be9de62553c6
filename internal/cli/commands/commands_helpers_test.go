package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"Marketplace/internal/config"
)

// withTempConfig возвращает конфиг с токен-файлом во временном каталоге,
// чтобы тесты не трогали $HOME.
func withTempConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()
	return &config.Config{
		ServerURL: serverURL,
		TokenFile: filepath.Join(t.TempDir(), "token"),
	}
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}
