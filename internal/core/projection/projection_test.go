package projection

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func record(id string, date time.Time, next *time.Time) domain.Transaction {
	return domain.Transaction{
		ID:           id,
		AccountID:    "acc_1",
		CategoryID:   "cat_rent",
		Kind:         domain.KindExpense,
		AmountMinor:  5000,
		CurrencyCode: "USD",
		Date:         date,
		NextDate:     next,
		Tags:         []string{},
	}
}

func TestProject_MonthlyRecurringProducesOneVirtual(t *testing.T) {
	records := []domain.Transaction{record("r1", day(2024, 1, 5), ptr(day(2024, 3, 5)))}

	got := Project(records, day(2024, 2, 1))

	require.Len(t, got, 1)
	assert.True(t, got[0].IsVirtual())
	assert.Equal(t, "r1", got[0].ParentID)
	assert.Equal(t, day(2024, 3, 5), got[0].Date())
	assert.Equal(t, int64(5000), got[0].Transaction.AmountMinor)
}

func TestProject_PastNextDateProducesNothing(t *testing.T) {
	records := []domain.Transaction{
		record("r1", day(2024, 1, 5), ptr(day(2024, 2, 1))),
		record("r2", day(2024, 1, 10), nil),
	}

	assert.Empty(t, Project(records, day(2024, 2, 1)))
}

func TestProject_ActualWinsOverVirtualFromAnotherRecord(t *testing.T) {
	parent := record("parent", day(2024, 1, 5), ptr(day(2024, 3, 5)))
	promoted := record("promoted", day(2024, 3, 5), nil)

	got := Project([]domain.Transaction{parent, promoted}, day(2024, 2, 1))

	require.Len(t, got, 1)
	assert.False(t, got[0].IsVirtual())
	assert.Equal(t, "promoted", got[0].Transaction.ID)
}

func TestProject_TwoCollidingVirtualsKeepFirst(t *testing.T) {
	a := record("a", day(2024, 1, 5), ptr(day(2024, 3, 5)))
	b := record("b", day(2024, 1, 6), ptr(day(2024, 3, 5)))

	got := Project([]domain.Transaction{a, b}, day(2024, 2, 1))

	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ParentID)
}

func TestProject_SortedByDayAndCountedOnce(t *testing.T) {
	future := record("future", day(2024, 4, 1), ptr(day(2024, 5, 1)))
	future.AmountMinor = 700
	soon := record("soon", day(2024, 1, 1), ptr(day(2024, 2, 10)))
	soon.Description = "gym"

	got := Project([]domain.Transaction{future, soon}, day(2024, 2, 1))

	require.Len(t, got, 3)
	assert.Equal(t, day(2024, 2, 10), got[0].Date())
	assert.Equal(t, day(2024, 4, 1), got[1].Date())
	assert.Equal(t, day(2024, 5, 1), got[2].Date())

	keys := map[string]int{}
	for _, o := range got {
		keys[domain.KeyOf(o.Transaction).String()]++
	}
	for k, n := range keys {
		assert.Equal(t, 1, n, k)
	}
}

func TestProject_TimeOfDayIgnored(t *testing.T) {
	r := record("r1", day(2024, 1, 5), ptr(time.Date(2024, 2, 1, 23, 59, 0, 0, time.UTC)))

	assert.Empty(t, Project([]domain.Transaction{r}, time.Date(2024, 2, 1, 0, 1, 0, 0, time.UTC)))
}

func TestSettled(t *testing.T) {
	records := []domain.Transaction{
		record("past", day(2024, 1, 5), nil),
		record("today", time.Date(2024, 2, 1, 18, 0, 0, 0, time.UTC), nil),
		record("future", day(2024, 2, 2), nil),
	}

	got := Settled(records, day(2024, 2, 1))

	require.Len(t, got, 2)
	assert.Equal(t, "past", got[0].ID)
	assert.Equal(t, "today", got[1].ID)
}

func TestFindOccurrence(t *testing.T) {
	occs := Project([]domain.Transaction{record("r1", day(2024, 1, 5), ptr(day(2024, 3, 5)))}, day(2024, 2, 1))

	o, ok := FindOccurrence(occs, domain.VirtualID("r1"))
	assert.True(t, ok)
	assert.Equal(t, "r1", o.ParentID)

	_, ok = FindOccurrence(occs, "missing")
	assert.False(t, ok)
}
