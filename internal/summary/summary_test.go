package summary_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paynote/paynote/internal/note"
	"github.com/paynote/paynote/internal/summary"
)

func newNote(person string, amount int64, dir note.Direction) *note.Note {
	return &note.Note{
		ID:         uuid.New(),
		PersonName: person,
		Amount:     amount,
		Direction:  dir,
	}
}

func TestForPerson(t *testing.T) {
	t.Run("SingleGivenNote", func(t *testing.T) {
		p := summary.ForPerson("Ramesh", []*note.Note{
			newNote("Ramesh", 5000, note.DirectionGiven),
		})

		assert.Equal(t, int64(5000), p.TotalGiven)
		assert.Equal(t, int64(0), p.TotalReceived)
		assert.Equal(t, int64(-5000), p.NetAmount)
		assert.Equal(t, 1, p.Count)
	})

	t.Run("MixedDirections", func(t *testing.T) {
		p := summary.ForPerson("Asha", []*note.Note{
			newNote("Asha", 300, note.DirectionReceived),
			newNote("Asha", 100, note.DirectionGiven),
		})

		assert.Equal(t, int64(100), p.TotalGiven)
		assert.Equal(t, int64(300), p.TotalReceived)
		assert.Equal(t, int64(200), p.NetAmount)
		assert.Equal(t, 2, p.Count)
	})

	t.Run("Empty", func(t *testing.T) {
		p := summary.ForPerson("Nobody", nil)

		assert.Equal(t, int64(0), p.NetAmount)
		assert.Equal(t, 0, p.Count)
	})
}

func TestForOwner(t *testing.T) {
	g := summary.ForOwner([]*note.Note{
		newNote("Asha", 300, note.DirectionReceived),
		newNote("Asha", 100, note.DirectionGiven),
		newNote("Ramesh", 5000, note.DirectionGiven),
	})

	assert.Equal(t, int64(300), g.TotalToReceive)
	assert.Equal(t, int64(5100), g.TotalToGive)
	assert.Equal(t, int64(-4800), g.NetBalance)
}

func TestGroupByPerson(t *testing.T) {
	notes := []*note.Note{
		newNote("Asha", 300, note.DirectionReceived),
		newNote("Ramesh", 5000, note.DirectionGiven),
		newNote("Asha", 100, note.DirectionGiven),
		newNote("ramesh", 50, note.DirectionGiven),
	}

	groups := summary.GroupByPerson(notes)

	// Grouping is case-sensitive: "Ramesh" and "ramesh" are distinct.
	require.Len(t, groups, 3)
	assert.Equal(t, 2, groups["Asha"].Count)
	assert.Equal(t, 1, groups["Ramesh"].Count)
	assert.Equal(t, 1, groups["ramesh"].Count)

	// Partitions are disjoint and cover the input exactly.
	total := 0
	for _, p := range groups {
		total += p.Count
	}
	assert.Equal(t, len(notes), total)
}

func TestGroupByPerson_NetMatchesGlobalContribution(t *testing.T) {
	notes := []*note.Note{
		newNote("Asha", 300, note.DirectionReceived),
		newNote("Asha", 100, note.DirectionGiven),
		newNote("Asha", 40, note.DirectionReceived),
	}

	p := summary.GroupByPerson(notes)["Asha"]
	g := summary.ForOwner(notes)

	assert.Equal(t, g.NetBalance, p.NetAmount)
}

func TestClassify(t *testing.T) {
	notes := []*note.Note{
		// Asha nets +200: owes the owner.
		newNote("Asha", 300, note.DirectionReceived),
		newNote("Asha", 100, note.DirectionGiven),
		// Ramesh nets -5000: the owner owes him.
		newNote("Ramesh", 5000, note.DirectionGiven),
		// Vikram nets 0: appears in neither list.
		newNote("Vikram", 80, note.DirectionGiven),
		newNote("Vikram", 80, note.DirectionReceived),
	}

	toReceive, toGive := summary.Classify(summary.GroupByPerson(notes))

	require.Len(t, toReceive, 1)
	assert.Equal(t, "Asha", toReceive[0].Name)
	assert.Equal(t, int64(200), toReceive[0].Amount)
	assert.Equal(t, 2, toReceive[0].Count)

	require.Len(t, toGive, 1)
	assert.Equal(t, "Ramesh", toGive[0].Name)
	assert.Equal(t, int64(5000), toGive[0].Amount)
}

func TestClassify_Ordering(t *testing.T) {
	notes := []*note.Note{
		newNote("Asha", 200, note.DirectionReceived),
		newNote("Binod", 500, note.DirectionReceived),
		newNote("Chitra", 500, note.DirectionReceived),
	}

	toReceive, toGive := summary.Classify(summary.GroupByPerson(notes))

	require.Len(t, toReceive, 3)
	assert.Empty(t, toGive)

	// Amount descending, name ascending on ties.
	assert.Equal(t, "Binod", toReceive[0].Name)
	assert.Equal(t, "Chitra", toReceive[1].Name)
	assert.Equal(t, "Asha", toReceive[2].Name)
}

func TestPeople(t *testing.T) {
	notes := []*note.Note{
		newNote("Asha", 300, note.DirectionReceived),
		newNote("Ramesh", 5000, note.DirectionGiven),
		newNote("Binod", 50, note.DirectionGiven),
	}
	notes[2].Purpose = "cricket gear"

	t.Run("NoQueryReturnsAllSortedByName", func(t *testing.T) {
		people := summary.People(notes, "")

		require.Len(t, people, 3)
		assert.Equal(t, "Asha", people[0].Name)
		assert.Equal(t, "Binod", people[1].Name)
		assert.Equal(t, "Ramesh", people[2].Name)
	})

	t.Run("QueryMatchesNameCaseInsensitive", func(t *testing.T) {
		people := summary.People(notes, "ramesh")

		require.Len(t, people, 1)
		assert.Equal(t, "Ramesh", people[0].Name)
	})

	t.Run("QueryMatchesPurpose", func(t *testing.T) {
		people := summary.People(notes, "cricket")

		require.Len(t, people, 1)
		assert.Equal(t, "Binod", people[0].Name)
	})

	t.Run("NoMatches", func(t *testing.T) {
		assert.Empty(t, summary.People(notes, "zzz"))
	})
}
