package domain

import (
	"strconv"
	"strings"
	"time"
)

// OccurrenceSource tells whether an upcoming entry exists in the store or was synthesized.
type OccurrenceSource string

const (
	SourceActual  OccurrenceSource = "actual"
	SourceVirtual OccurrenceSource = "virtual"
)

const virtualIDPrefix = "virtual:"

// Occurrence is a read-only upcoming entry. For virtual occurrences Transaction.ID
// holds the virtual identifier and ParentID the template record's ID.
type Occurrence struct {
	Source      OccurrenceSource `json:"source"`
	ParentID    string           `json:"parentID,omitempty"`
	Transaction Transaction      `json:"transaction"`
}

// IsVirtual reports whether the occurrence was derived from a parent's next date.
func (o Occurrence) IsVirtual() bool {
	return o.Source == SourceVirtual
}

// Date returns the occurrence date.
func (o Occurrence) Date() time.Time {
	return o.Transaction.Date
}

// VirtualID derives the identifier of the virtual occurrence projected from parentID.
func VirtualID(parentID string) string {
	return virtualIDPrefix + parentID
}

// ParentIDFromVirtual extracts the parent ID from a virtual identifier.
func ParentIDFromVirtual(id string) (string, bool) {
	if !strings.HasPrefix(id, virtualIDPrefix) {
		return "", false
	}
	parent := strings.TrimPrefix(id, virtualIDPrefix)
	return parent, parent != ""
}

// NewActualOccurrence wraps a stored future record.
func NewActualOccurrence(t Transaction) Occurrence {
	return Occurrence{Source: SourceActual, Transaction: t.Clone()}
}

// NewVirtualOccurrence derives the virtual occurrence of parent. The caller
// guarantees parent.NextDate is set.
func NewVirtualOccurrence(parent Transaction) Occurrence {
	v := parent.Clone()
	v.ID = VirtualID(parent.ID)
	v.Date = DayOf(*parent.NextDate)
	v.NextDate = nil
	return Occurrence{Source: SourceVirtual, ParentID: parent.ID, Transaction: v}
}

// DedupKey identifies the logical financial event an occurrence represents.
type DedupKey struct {
	AccountID    string
	CategoryID   string
	Kind         TransactionKind
	AmountMinor  int64
	CurrencyCode string
	Day          time.Time
	Description  string
}

// KeyOf builds the dedup key of a transaction-shaped value.
func KeyOf(t Transaction) DedupKey {
	return DedupKey{
		AccountID:    t.AccountID,
		CategoryID:   t.CategoryID,
		Kind:         t.Kind,
		AmountMinor:  t.AmountMinor,
		CurrencyCode: t.CurrencyCode,
		Day:          DayOf(t.Date),
		Description:  t.Description,
	}
}

func (k DedupKey) String() string {
	return strings.Join([]string{
		k.AccountID, k.CategoryID, string(k.Kind),
		strconv.FormatInt(k.AmountMinor, 10), k.CurrencyCode,
		k.Day.Format("2006-01-02"), k.Description,
	}, "|")
}
