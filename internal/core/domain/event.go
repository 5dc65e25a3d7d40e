package domain

import "time"

// ChangeType names the mutation behind a ChangeEvent.
type ChangeType string

const (
	ChangeCreated   ChangeType = "created"
	ChangeUpdated   ChangeType = "updated"
	ChangeDeleted   ChangeType = "deleted"
	ChangePromoted  ChangeType = "promoted"
	ChangeDismissed ChangeType = "dismissed"
)

// ChangeEvent tells consumers that stored records changed and views should refetch.
type ChangeEvent struct {
	Type           ChangeType      `json:"type"`
	Kind           TransactionKind `json:"kind"`
	TransactionIDs []string        `json:"transactionIDs"`
	UserID         string          `json:"userID,omitempty"`
	OccurredAt     time.Time       `json:"occurredAt"`
}
