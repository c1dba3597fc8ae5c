package note

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=note
type Repository interface {
	CreateNote(ctx context.Context, n *Note) error
	GetNote(ctx context.Context, owner, id uuid.UUID) (*Note, error)
	ListNotes(ctx context.Context, owner uuid.UUID, limit int) ([]*Note, error)
	ListNotesByPerson(ctx context.Context, owner uuid.UUID, personName string) ([]*Note, error)
	UpdateNote(ctx context.Context, n *Note) error
	DeleteNote(ctx context.Context, owner, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Params carries the four business fields of a note as submitted by the
// caller. Amount is the raw numeric input before flooring.
type Params struct {
	PersonName string
	Amount     float64
	Purpose    string
	Direction  string
}

// validate normalizes Params into the stored form. Nothing is persisted if
// any field is rejected.
func validate(params Params) (personName string, amount int64, purpose string, dir Direction, err error) {
	personName = strings.TrimSpace(params.PersonName)
	if personName == "" {
		return "", 0, "", "", &ValidationError{Field: "personName", Reason: "is required"}
	}

	amount, err = ParseAmount(params.Amount)
	if err != nil {
		return "", 0, "", "", err
	}

	dir, err = ParseDirection(params.Direction)
	if err != nil {
		return "", 0, "", "", err
	}

	return personName, amount, strings.TrimSpace(params.Purpose), dir, nil
}

func (s *Service) Create(ctx context.Context, owner uuid.UUID, params Params) (*Note, error) {
	personName, amount, purpose, dir, err := validate(params)
	if err != nil {
		return nil, err
	}

	n := &Note{
		Owner:      owner,
		PersonName: personName,
		Amount:     amount,
		Purpose:    purpose,
		Direction:  dir,
	}
	if err := s.repo.CreateNote(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

// List returns the owner's most recent notes, newest first, capped at the
// dashboard page size.
func (s *Service) List(ctx context.Context, owner uuid.UUID) ([]*Note, error) {
	return s.repo.ListNotes(ctx, owner, DashboardLimit)
}

// ListAll returns the owner's entire note set, newest first. Summary views
// aggregate over this, so it is never paged.
func (s *Service) ListAll(ctx context.Context, owner uuid.UUID) ([]*Note, error) {
	return s.repo.ListNotes(ctx, owner, 0)
}

// ListByPerson returns every note the owner holds against personName,
// newest first. The match is exact and case-sensitive.
func (s *Service) ListByPerson(ctx context.Context, owner uuid.UUID, personName string) ([]*Note, error) {
	return s.repo.ListNotesByPerson(ctx, owner, personName)
}

func (s *Service) Get(ctx context.Context, owner, id uuid.UUID) (*Note, error) {
	return s.repo.GetNote(ctx, owner, id)
}

// Update replaces all four business fields of the note. A note owned by a
// different account yields ErrNotFound, same as a missing one.
func (s *Service) Update(ctx context.Context, owner, id uuid.UUID, params Params) (*Note, error) {
	personName, amount, purpose, dir, err := validate(params)
	if err != nil {
		return nil, err
	}

	n := &Note{
		ID:         id,
		Owner:      owner,
		PersonName: personName,
		Amount:     amount,
		Purpose:    purpose,
		Direction:  dir,
	}
	if err := s.repo.UpdateNote(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}

func (s *Service) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.repo.DeleteNote(ctx, owner, id)
}
