package service

import (
	"bytes"
	"encoding/json"

	"gorm.io/datatypes"
)

// NormalizeBlob приводит blob-поле к одному структурному JSON-представлению.
// Старые клиенты присылают объект/массив строкой ("{\"size\": 14}"): такая строка
// разворачивается в сам объект. Всё остальное сохраняется как есть.
func NormalizeBlob(raw datatypes.JSON) datatypes.JSON {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] != '"' {
		return datatypes.JSON(trimmed)
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return datatypes.JSON(trimmed)
	}
	inner := bytes.TrimSpace([]byte(s))
	if len(inner) > 0 && (inner[0] == '{' || inner[0] == '[') && json.Valid(inner) {
		return datatypes.JSON(inner)
	}
	return datatypes.JSON(trimmed)
}

// isJSONList reports whether a normalized blob is absent or a JSON array.
func isJSONList(raw datatypes.JSON) bool {
	return len(raw) == 0 || raw[0] == '['
}
