package summary_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paynote/paynote/internal/auth"
	"github.com/paynote/paynote/internal/http/session"
	summaryHandler "github.com/paynote/paynote/internal/http/summary"
	"github.com/paynote/paynote/internal/note"
)

// fixedRepo serves a canned note set for one owner.
type fixedRepo struct {
	owner uuid.UUID
	notes []*note.Note
}

func (r *fixedRepo) CreateNote(context.Context, *note.Note) error { return nil }
func (r *fixedRepo) GetNote(context.Context, uuid.UUID, uuid.UUID) (*note.Note, error) {
	return nil, note.ErrNotFound
}
func (r *fixedRepo) UpdateNote(context.Context, *note.Note) error { return note.ErrNotFound }
func (r *fixedRepo) DeleteNote(context.Context, uuid.UUID, uuid.UUID) error {
	return note.ErrNotFound
}

func (r *fixedRepo) ListNotes(_ context.Context, owner uuid.UUID, limit int) ([]*note.Note, error) {
	if owner != r.owner {
		return nil, nil
	}

	notes := r.notes
	if limit > 0 && len(notes) > limit {
		notes = notes[:limit]
	}

	return notes, nil
}

func (r *fixedRepo) ListNotesByPerson(_ context.Context, owner uuid.UUID, personName string) ([]*note.Note, error) {
	var matched []*note.Note

	all, _ := r.ListNotes(context.Background(), owner, 0)
	for _, n := range all {
		if n.PersonName == personName {
			matched = append(matched, n)
		}
	}

	return matched, nil
}

type stubUserRepo struct{}

func (stubUserRepo) CreateUser(context.Context, *auth.User) error { return nil }
func (stubUserRepo) GetUserByEmail(context.Context, string) (*auth.User, error) {
	return nil, auth.ErrUserNotFound
}
func (stubUserRepo) GetUser(context.Context, uuid.UUID) (*auth.User, error) {
	return nil, auth.ErrUserNotFound
}

func fixture(owner uuid.UUID) *fixedRepo {
	mk := func(person string, amount int64, dir note.Direction, purpose string) *note.Note {
		return &note.Note{
			ID:         uuid.New(),
			Owner:      owner,
			PersonName: person,
			Amount:     amount,
			Purpose:    purpose,
			Direction:  dir,
		}
	}

	return &fixedRepo{
		owner: owner,
		notes: []*note.Note{
			mk("Asha", 300, note.DirectionReceived, ""),
			mk("Asha", 100, note.DirectionGiven, ""),
			mk("Ramesh", 5000, note.DirectionGiven, "rent advance"),
			mk("Vikram", 80, note.DirectionGiven, ""),
			mk("Vikram", 80, note.DirectionReceived, ""),
		},
	}
}

func get(t *testing.T, srv *httptest.Server, authSvc *auth.Service, owner uuid.UUID, path string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)

	token, err := authSvc.IssueToken(owner)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	return resp
}

func newServer(t *testing.T, owner uuid.UUID) (*httptest.Server, *auth.Service) {
	t.Helper()

	authSvc := auth.NewService(stubUserRepo{}, "test-secret", time.Hour)
	noteSvc := note.NewService(fixture(owner))

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(session.Middleware(authSvc))
		r.Route("/summary", summaryHandler.NewHandler(noteSvc).Routes)
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return srv, authSvc
}

func TestGlobalSummary(t *testing.T) {
	owner := uuid.New()
	srv, authSvc := newServer(t, owner)

	resp := get(t, srv, authSvc, owner, "/summary")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		TotalToReceive int64 `json:"totalToReceive"`
		TotalToGive    int64 `json:"totalToGive"`
		NetBalance     int64 `json:"netBalance"`
		ToReceive      []struct {
			Name   string `json:"name"`
			Amount int64  `json:"amount"`
			Count  int    `json:"count"`
		} `json:"toReceive"`
		ToGive []struct {
			Name   string `json:"name"`
			Amount int64  `json:"amount"`
		} `json:"toGive"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

	assert.Equal(t, int64(380), got.TotalToReceive)
	assert.Equal(t, int64(5180), got.TotalToGive)
	assert.Equal(t, int64(-4800), got.NetBalance)

	// Asha owes 200; the owner owes Ramesh 5000; Vikram is settled and
	// appears in neither list.
	require.Len(t, got.ToReceive, 1)
	assert.Equal(t, "Asha", got.ToReceive[0].Name)
	assert.Equal(t, int64(200), got.ToReceive[0].Amount)
	assert.Equal(t, 2, got.ToReceive[0].Count)

	require.Len(t, got.ToGive, 1)
	assert.Equal(t, "Ramesh", got.ToGive[0].Name)
	assert.Equal(t, int64(5000), got.ToGive[0].Amount)
}

func TestGlobalSummary_EmptyOwner(t *testing.T) {
	owner := uuid.New()
	srv, authSvc := newServer(t, owner)

	// A different owner has no notes at all.
	resp := get(t, srv, authSvc, uuid.New(), "/summary")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got struct {
		NetBalance int64 `json:"netBalance"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, int64(0), got.NetBalance)
}

func TestPeopleSummary(t *testing.T) {
	owner := uuid.New()
	srv, authSvc := newServer(t, owner)

	type person struct {
		Name      string `json:"name"`
		NetAmount int64  `json:"netAmount"`
		Count     int    `json:"count"`
	}

	t.Run("All", func(t *testing.T) {
		resp := get(t, srv, authSvc, owner, "/summary/people")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []person
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

		require.Len(t, got, 3)
		assert.Equal(t, "Asha", got[0].Name)
		assert.Equal(t, int64(200), got[0].NetAmount)
		assert.Equal(t, "Ramesh", got[1].Name)
		assert.Equal(t, "Vikram", got[2].Name)
		assert.Equal(t, int64(0), got[2].NetAmount)
	})

	t.Run("QueryByPurpose", func(t *testing.T) {
		resp := get(t, srv, authSvc, owner, "/summary/people?q=rent")
		defer resp.Body.Close()

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got []person
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))

		require.Len(t, got, 1)
		assert.Equal(t, "Ramesh", got[0].Name)
	})
}
