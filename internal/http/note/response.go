package note

import (
	"time"

	"github.com/google/uuid"

	"github.com/paynote/paynote/internal/note"
	"github.com/paynote/paynote/internal/summary"
)

type noteResponse struct {
	ID         uuid.UUID `json:"id"`
	PersonName string    `json:"personName"`
	Amount     int64     `json:"amount"`
	Purpose    string    `json:"purpose"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type mutationResponse struct {
	Message     string       `json:"message"`
	Transaction noteResponse `json:"transaction"`
}

type personSummaryResponse struct {
	Name          string `json:"name"`
	TotalGiven    int64  `json:"totalGiven"`
	TotalReceived int64  `json:"totalReceived"`
	NetAmount     int64  `json:"netAmount"`
	Count         int    `json:"count"`
}

type personResponse struct {
	Person       personSummaryResponse `json:"person"`
	Transactions []noteResponse        `json:"transactions"`
}

func toResponse(n *note.Note) noteResponse {
	return noteResponse{
		ID:         n.ID,
		PersonName: n.PersonName,
		Amount:     n.Amount,
		Purpose:    n.Purpose,
		Type:       string(n.Direction),
		CreatedAt:  n.CreatedAt,
		UpdatedAt:  n.UpdatedAt,
	}
}

func toResponseList(notes []*note.Note) []noteResponse {
	resp := make([]noteResponse, len(notes))
	for i, n := range notes {
		resp[i] = toResponse(n)
	}

	return resp
}

func toPersonSummary(p summary.Person) personSummaryResponse {
	return personSummaryResponse{
		Name:          p.Name,
		TotalGiven:    p.TotalGiven,
		TotalReceived: p.TotalReceived,
		NetAmount:     p.NetAmount,
		Count:         p.Count,
	}
}
