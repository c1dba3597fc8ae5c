package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/paynote/paynote/internal/note"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanNote reads a note row and returns a populated Note.
// Expected column order: id, user_id, person_name, amount, purpose, direction, created_at, updated_at
func scanNote(s scanner) (*note.Note, error) {
	var n note.Note

	var direction string

	if err := s.Scan(
		&n.ID, &n.Owner, &n.PersonName, &n.Amount, &n.Purpose, &direction,
		&n.CreatedAt, &n.UpdatedAt,
	); err != nil {
		return nil, err
	}

	n.Direction = note.Direction(direction)

	return &n, nil
}

const selectNoteColumns = `
	id, user_id, person_name, amount, purpose, direction, created_at, updated_at
`

func (s *Store) CreateNote(ctx context.Context, n *note.Note) error {
	query := `
		INSERT INTO notes (user_id, person_name, amount, purpose, direction, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		n.Owner,
		n.PersonName,
		n.Amount,
		n.Purpose,
		n.Direction,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating note: %w", err)
	}

	return nil
}

func (s *Store) GetNote(ctx context.Context, owner, id uuid.UUID) (*note.Note, error) {
	query := `SELECT ` + selectNoteColumns + `
		FROM notes
		WHERE id = $1 AND user_id = $2`

	n, err := scanNote(s.db.QueryRowContext(ctx, query, id, owner))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, note.ErrNotFound
		}

		return nil, fmt.Errorf("getting note: %w", err)
	}

	return n, nil
}

// ListNotes returns the owner's notes newest first. A limit of 0 or less
// means no limit.
func (s *Store) ListNotes(ctx context.Context, owner uuid.UUID, limit int) ([]*note.Note, error) {
	query := `SELECT ` + selectNoteColumns + `
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC`

	args := []any{owner}

	if limit > 0 {
		query += " LIMIT $2"

		args = append(args, limit)
	}

	return s.queryNotes(ctx, query, args...)
}

func (s *Store) ListNotesByPerson(ctx context.Context, owner uuid.UUID, personName string) ([]*note.Note, error) {
	query := `SELECT ` + selectNoteColumns + `
		FROM notes
		WHERE user_id = $1 AND person_name = $2
		ORDER BY created_at DESC`

	return s.queryNotes(ctx, query, owner, personName)
}

func (s *Store) queryNotes(ctx context.Context, query string, args ...any) ([]*note.Note, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var notes []*note.Note

	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}

		notes = append(notes, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating note rows: %w", err)
	}

	return notes, nil
}

// UpdateNote replaces the four business fields of the note identified by
// n.ID under n.Owner. Missing and foreign-owned rows both report ErrNotFound.
func (s *Store) UpdateNote(ctx context.Context, n *note.Note) error {
	query := `
		UPDATE notes
		SET person_name = $1, amount = $2, purpose = $3, direction = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		n.PersonName,
		n.Amount,
		n.Purpose,
		n.Direction,
		n.ID,
		n.Owner,
	).Scan(&n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return note.ErrNotFound
		}

		return fmt.Errorf("updating note: %w", err)
	}

	return nil
}

func (s *Store) DeleteNote(ctx context.Context, owner, id uuid.UUID) error {
	query := `
		DELETE FROM notes
		WHERE id = $1 AND user_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting note: %w", err)
	}

	if affected == 0 {
		return note.ErrNotFound
	}

	return nil
}
