package middleware

import (
	"compress/gzip"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// WithGzip сжимает JSON и текстовые ответы для клиентов с Accept-Encoding: gzip.
var WithGzip = chimw.Compress(gzip.DefaultCompression, "application/json", "text/plain")
