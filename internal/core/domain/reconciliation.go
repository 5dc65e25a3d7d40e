package domain

import "sync"

// ReconciliationResult describes what a promote or dismiss did to the store.
type ReconciliationResult struct {
	Created   *Transaction `json:"created,omitempty"`   // record created by a promotion
	Parent    *Transaction `json:"parent,omitempty"`    // parent after its next date was cleared
	DeletedID string       `json:"deletedID,omitempty"` // actual-future record removed by a dismissal
	Stale     bool         `json:"stale"`               // nothing to do: already reconciled elsewhere
}

// RecordSet is a view-local cache of records, held by clients of this module
// (a screen or a long-lived consumer) rather than by the HTTP service, which
// refetches per request. Reconciliation results are merged with Apply once the
// store calls finished; after Close the owning view is gone and late results
// are ignored.
type RecordSet struct {
	mu      sync.Mutex
	records []Transaction
	closed  bool
}

// NewRecordSet copies records into a new set.
func NewRecordSet(records []Transaction) *RecordSet {
	rs := &RecordSet{}
	rs.Replace(records)
	return rs
}

// Records returns a copy of the current records.
func (rs *RecordSet) Records() []Transaction {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]Transaction, len(rs.records))
	for i, r := range rs.records {
		out[i] = r.Clone()
	}
	return out
}

// Replace swaps the cached records for a fresh fetch.
func (rs *RecordSet) Replace(records []Transaction) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.records = make([]Transaction, len(records))
	for i, r := range records {
		rs.records[i] = r.Clone()
	}
}

// Close marks the owning view as gone.
func (rs *RecordSet) Close() {
	rs.mu.Lock()
	rs.closed = true
	rs.mu.Unlock()
}

// Apply merges a reconciliation result. It returns false when the set is closed.
func (rs *RecordSet) Apply(res ReconciliationResult) bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	if rs.closed {
		return false
	}
	if res.Stale {
		return true
	}
	if res.DeletedID != "" {
		kept := rs.records[:0]
		for _, r := range rs.records {
			if r.ID != res.DeletedID {
				kept = append(kept, r)
			}
		}
		rs.records = kept
	}
	if res.Parent != nil {
		for i := range rs.records {
			if rs.records[i].ID == res.Parent.ID {
				rs.records[i] = res.Parent.Clone()
			}
		}
	}
	if res.Created != nil && rs.indexOf(res.Created.ID) < 0 {
		rs.records = append(rs.records, res.Created.Clone())
	}
	return true
}

func (rs *RecordSet) indexOf(id string) int {
	for i, r := range rs.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
