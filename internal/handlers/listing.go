package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"Marketplace/internal/config"
	"Marketplace/internal/middleware"
	"Marketplace/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxBodyBytes ограничивает тело запроса на создание листинга.
const maxBodyBytes = 1 << 20

// msgListingNotFound — тело 404.
const msgListingNotFound = "listing does not exist"

// ListingHandler обрабатывает чтение и создание листингов.
type ListingHandler struct {
	ListingService *service.ListingService
	Logger         *zap.SugaredLogger
	Config         *config.Config
}

func NewListingHandler(listingService *service.ListingService, logger *zap.SugaredLogger, cfg *config.Config) *ListingHandler {
	return &ListingHandler{ListingService: listingService, Logger: logger, Config: cfg}
}

// Get возвращает листинг по id. Невалидный id — такой же 404, как отсутствующий листинг.
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, msgListingNotFound, http.StatusNotFound)
		return
	}

	view, err := h.ListingService.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, "Get", err)
		return
	}
	writeJSON(w, http.StatusOK, newListingResponse(view))
}

// Create создаёт листинг из плоского JSON-тела.
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.Logger.Warnw("Create: failed to read body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		h.Logger.Warnw("Create: malformed JSON body")
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		h.writeError(w, "Create", service.NewValidationError(service.SchemaField, service.MsgInvalidInput))
		return
	}

	in := decodeCreateListing(raw)
	if uid, ok := middleware.GetUserIDFromContext(r.Context()); ok {
		in.ActorID = &uid
	}

	view, err := h.ListingService.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, "Create", err)
		return
	}
	writeJSON(w, http.StatusOK, newListingResponse(view))
}

type validationBody struct {
	Errors struct {
		JSON map[string][]string `json:"json"`
	} `json:"errors"`
}

func (h *ListingHandler) writeError(w http.ResponseWriter, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		var body validationBody
		body.Errors.JSON = verr.Fields
		writeJSON(w, http.StatusUnprocessableEntity, body)
	case errors.Is(err, service.ErrListingNotFound):
		http.Error(w, msgListingNotFound, http.StatusNotFound)
	case errors.Is(err, service.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	default:
		h.Logger.Errorw(op+": service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
