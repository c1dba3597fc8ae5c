package note

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// Direction says which way the money moved from the owner's point of view.
type Direction string

const (
	DirectionGiven    Direction = "given"
	DirectionReceived Direction = "received"
)

// DashboardLimit is the page size for the recent-notes dashboard view.
const DashboardLimit = 50

// Note represents a single payment note: money given to, or received from,
// a named person.
type Note struct {
	ID         uuid.UUID
	Owner      uuid.UUID
	PersonName string
	Amount     int64 // whole units, always >= 1
	Purpose    string
	Direction  Direction
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ErrNotFound is returned when a note does not exist under the given owner.
// A note belonging to a different owner is reported the same way.
var ErrNotFound = errors.New("note not found")

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ParseAmount applies the single amount rule: the input must be a finite
// number greater than zero; fractional values are floored, never rounded,
// so the stored amount is always an integer >= 1.
func ParseAmount(v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: "amount", Reason: "must be a valid number greater than 0"}
	}

	if v <= 0 {
		return 0, &ValidationError{Field: "amount", Reason: "must be a valid number greater than 0"}
	}

	// int64(f) is implementation-defined once f cannot be represented, so
	// anything at or beyond MaxInt64 is rejected before the conversion.
	if v >= math.MaxInt64 {
		return 0, &ValidationError{Field: "amount", Reason: "must be a valid number greater than 0"}
	}

	floored := int64(math.Floor(v))
	if floored < 1 {
		return 0, &ValidationError{Field: "amount", Reason: "must be a valid number greater than 0"}
	}

	return floored, nil
}

// ParseDirection validates the direction enum.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionGiven, DirectionReceived:
		return Direction(s), nil
	}

	return "", &ValidationError{Field: "type", Reason: `must be "given" or "received"`}
}
