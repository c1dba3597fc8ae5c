package summary

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

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
	r.Get("/", h.global)
	r.Get("/people", h.people)
}

type entryResponse struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
	Count  int    `json:"count"`
}

type globalResponse struct {
	TotalToReceive int64           `json:"totalToReceive"`
	TotalToGive    int64           `json:"totalToGive"`
	NetBalance     int64           `json:"netBalance"`
	ToReceive      []entryResponse `json:"toReceive"`
	ToGive         []entryResponse `json:"toGive"`
}

type personResponse struct {
	Name          string `json:"name"`
	TotalGiven    int64  `json:"totalGiven"`
	TotalReceived int64  `json:"totalReceived"`
	NetAmount     int64  `json:"netAmount"`
	Count         int    `json:"count"`
}

// global recomputes the full balance view from the owner's entire note set
// on every call; there is no cache.
func (h *Handler) global(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListAll(r.Context(), session.Owner(r.Context()))
	if err != nil {
		slog.Error("summary request failed", "error", err)
		render.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	g := summary.ForOwner(notes)
	toReceive, toGive := summary.Classify(summary.GroupByPerson(notes))

	render.JSON(w, http.StatusOK, globalResponse{
		TotalToReceive: g.TotalToReceive,
		TotalToGive:    g.TotalToGive,
		NetBalance:     g.NetBalance,
		ToReceive:      toEntries(toReceive),
		ToGive:         toEntries(toGive),
	})
}

func (h *Handler) people(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListAll(r.Context(), session.Owner(r.Context()))
	if err != nil {
		slog.Error("summary request failed", "error", err)
		render.Error(w, http.StatusInternalServerError, "Internal server error")

		return
	}

	people := summary.People(notes, r.URL.Query().Get("q"))

	resp := make([]personResponse, len(people))
	for i, p := range people {
		resp[i] = personResponse{
			Name:          p.Name,
			TotalGiven:    p.TotalGiven,
			TotalReceived: p.TotalReceived,
			NetAmount:     p.NetAmount,
			Count:         p.Count,
		}
	}

	render.JSON(w, http.StatusOK, resp)
}

func toEntries(entries []summary.Entry) []entryResponse {
	resp := make([]entryResponse, len(entries))
	for i, e := range entries {
		resp[i] = entryResponse{Name: e.Name, Amount: e.Amount, Count: e.Count}
	}

	return resp
}
