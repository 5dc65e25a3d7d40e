// Package projection derives the upcoming and settled views from stored records.
package projection

import (
	"sort"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// Project returns the ordered set of upcoming occurrences as of today.
//
// Stored records dated after today become actual occurrences; each record whose
// next date is after today contributes one virtual occurrence. A virtual
// occurrence sharing a dedup key with an occurrence already in the set is
// dropped, so an actual record always hides the virtual one it duplicates.
func Project(records []domain.Transaction, today time.Time) []domain.Occurrence {
	day := domain.DayOf(today)

	actual := make([]domain.Occurrence, 0)
	virtual := make([]domain.Occurrence, 0)
	for _, r := range records {
		if domain.DayOf(r.Date).After(day) {
			actual = append(actual, domain.NewActualOccurrence(r))
		}
		if r.NextDate != nil && domain.DayOf(*r.NextDate).After(day) {
			virtual = append(virtual, domain.NewVirtualOccurrence(r))
		}
	}

	seen := make(map[string]struct{}, len(actual)+len(virtual))
	out := make([]domain.Occurrence, 0, len(actual)+len(virtual))
	insert := func(o domain.Occurrence) {
		key := domain.KeyOf(o.Transaction).String()
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, o)
	}
	for _, o := range actual {
		insert(o)
	}
	for _, o := range virtual {
		insert(o)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return domain.DayOf(out[i].Date()).Before(domain.DayOf(out[j].Date()))
	})
	return out
}

// Settled returns the records dated today or earlier, in input order.
func Settled(records []domain.Transaction, today time.Time) []domain.Transaction {
	day := domain.DayOf(today)
	out := make([]domain.Transaction, 0, len(records))
	for _, r := range records {
		if !domain.DayOf(r.Date).After(day) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// FindOccurrence looks up an upcoming occurrence by its (possibly virtual) ID.
func FindOccurrence(occurrences []domain.Occurrence, id string) (domain.Occurrence, bool) {
	for _, o := range occurrences {
		if o.Transaction.ID == id {
			return o, true
		}
	}
	return domain.Occurrence{}, false
}
