package domain

// Dashboard is the combined settled/upcoming/summary view of one record kind.
type Dashboard struct {
	Kind     TransactionKind `json:"kind"`
	Settled  []Transaction   `json:"settled"`
	Upcoming []Occurrence    `json:"upcoming"`
	Summary  Summary         `json:"summary"`
}
