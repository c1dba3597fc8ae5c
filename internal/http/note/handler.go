package note

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/paynote/paynote/internal/http/render"
	"github.com/paynote/paynote/internal/http/session"
	"github.com/paynote/paynote/internal/note"
	"github.com/paynote/paynote/internal/summary"
)

type Handler struct {
	svc *note.Service
}

func NewHandler(svc *note.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

// PersonRoutes serves the per-counterparty view.
func (h *Handler) PersonRoutes(r chi.Router) {
	r.Get("/{name}/transactions", h.listByPerson)
}

// amountValue accepts a JSON number or a numeric string ("5000.7"), so
// clients that post form values as strings are handled the same way as
// JSON-native ones.
type amountValue float64

func (a *amountValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	s = strings.Trim(s, `"`)

	if s == "" || s == "null" {
		*a = 0
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("amount must be a valid number greater than 0")
	}

	*a = amountValue(f)

	return nil
}

type noteRequest struct {
	PersonName string      `json:"personName"`
	Amount     amountValue `json:"amount"`
	Purpose    string      `json:"purpose"`
	Type       string      `json:"type"`
}

func (req noteRequest) params() note.Params {
	return note.Params{
		PersonName: req.PersonName,
		Amount:     float64(req.Amount),
		Purpose:    req.Purpose,
		Direction:  req.Type,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.svc.Create(r.Context(), session.Owner(r.Context()), req.params())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusCreated, mutationResponse{
		Message:     "Transaction created successfully",
		Transaction: toResponse(n),
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.List(r.Context(), session.Owner(r.Context()))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponseList(notes))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, http.StatusNotFound, "Transaction not found")
		return
	}

	n, err := h.svc.Get(r.Context(), session.Owner(r.Context()), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, toResponse(n))
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, http.StatusNotFound, "Transaction not found")
		return
	}

	var req noteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		render.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.svc.Update(r.Context(), session.Owner(r.Context()), id, req.params())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, mutationResponse{
		Message:     "Transaction updated successfully",
		Transaction: toResponse(n),
	})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Error(w, http.StatusNotFound, "Transaction not found")
		return
	}

	if err := h.svc.Delete(r.Context(), session.Owner(r.Context()), id); err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]string{
		"message": "Transaction deleted successfully",
	})
}

func (h *Handler) listByPerson(w http.ResponseWriter, r *http.Request) {
	// chi hands back the raw path segment when the URL carries escapes, so
	// percent-encoded names ("Asha%26Co") must be decoded before the
	// exact-match filter sees them. An already-decoded value may contain a
	// literal %, in which case it is used as-is.
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}

	notes, err := h.svc.ListByPerson(r.Context(), session.Owner(r.Context()), name)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	render.JSON(w, http.StatusOK, personResponse{
		Person:       toPersonSummary(summary.ForPerson(name, notes)),
		Transactions: toResponseList(notes),
	})
}

// writeServiceError maps domain errors onto the error taxonomy: validation
// failures are 400, missing or foreign-owned notes are 404, anything else
// is a 500 with the detail kept server-side.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *note.ValidationError
	if errors.As(err, &verr) {
		render.Error(w, http.StatusBadRequest, verr.Error())
		return
	}

	if errors.Is(err, note.ErrNotFound) {
		render.Error(w, http.StatusNotFound, "Transaction not found")
		return
	}

	slog.Error("note request failed", "error", err)
	render.Error(w, http.StatusInternalServerError, "Internal server error")
}
