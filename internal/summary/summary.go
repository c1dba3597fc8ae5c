// Package summary derives balance views from a set of payment notes. It is
// pure computation: nothing here touches persistence, and every view is
// recomputed from the note set it is handed.
package summary

import (
	"sort"
	"strings"

	"github.com/paynote/paynote/internal/note"
)

// Person aggregates all notes held against one counterparty.
type Person struct {
	Name          string
	TotalGiven    int64
	TotalReceived int64
	NetAmount     int64 // received - given; positive means they owe the owner
	Count         int
}

// Global aggregates an owner's entire note set.
type Global struct {
	TotalToReceive int64
	TotalToGive    int64
	NetBalance     int64 // to receive - to give
}

// Entry is one row of a derived receivables or payables list.
type Entry struct {
	Name   string
	Amount int64
	Count  int
}

// ForPerson computes the summary over notes that all belong to a single
// counterparty.
func ForPerson(name string, notes []*note.Note) Person {
	p := Person{Name: name}
	for _, n := range notes {
		p.add(n)
	}

	return p
}

func (p *Person) add(n *note.Note) {
	if n.Direction == note.DirectionGiven {
		p.TotalGiven += n.Amount
	} else {
		p.TotalReceived += n.Amount
	}

	p.Count++
	p.NetAmount = p.TotalReceived - p.TotalGiven
}

// ForOwner computes the global balance across every note.
func ForOwner(notes []*note.Note) Global {
	var g Global

	for _, n := range notes {
		if n.Direction == note.DirectionGiven {
			g.TotalToGive += n.Amount
		} else {
			g.TotalToReceive += n.Amount
		}
	}

	g.NetBalance = g.TotalToReceive - g.TotalToGive

	return g
}

// GroupByPerson partitions notes by exact, case-sensitive person name.
// Every note lands in exactly one group.
func GroupByPerson(notes []*note.Note) map[string]Person {
	groups := make(map[string]Person)

	for _, n := range notes {
		p, ok := groups[n.PersonName]
		if !ok {
			p = Person{Name: n.PersonName}
		}

		p.add(n)
		groups[n.PersonName] = p
	}

	return groups
}

// Classify splits grouped people into the two derived lists: toReceive holds
// people whose received total exceeds their given total, toGive the inverse.
// A person whose totals are equal appears in neither. Lists are ordered by
// amount descending, name ascending on ties, so output is deterministic.
func Classify(groups map[string]Person) (toReceive, toGive []Entry) {
	for _, p := range groups {
		switch {
		case p.TotalReceived > p.TotalGiven:
			toReceive = append(toReceive, Entry{
				Name:   p.Name,
				Amount: p.TotalReceived - p.TotalGiven,
				Count:  p.Count,
			})
		case p.TotalGiven > p.TotalReceived:
			toGive = append(toGive, Entry{
				Name:   p.Name,
				Amount: p.TotalGiven - p.TotalReceived,
				Count:  p.Count,
			})
		}
	}

	sortEntries(toReceive)
	sortEntries(toGive)

	return toReceive, toGive
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Amount != entries[j].Amount {
			return entries[i].Amount > entries[j].Amount
		}

		return entries[i].Name < entries[j].Name
	})
}

// People returns every grouped person sorted by name. The optional query
// keeps only people whose notes match it by case-insensitive substring on
// person name or purpose.
func People(notes []*note.Note, query string) []Person {
	if query != "" {
		q := strings.ToLower(query)

		var matched []*note.Note

		for _, n := range notes {
			if strings.Contains(strings.ToLower(n.PersonName), q) ||
				strings.Contains(strings.ToLower(n.Purpose), q) {
				matched = append(matched, n)
			}
		}

		notes = matched
	}

	groups := GroupByPerson(notes)

	people := make([]Person, 0, len(groups))
	for _, p := range groups {
		people = append(people, p)
	}

	sort.Slice(people, func(i, j int) bool {
		return people[i].Name < people[j].Name
	})

	return people
}
