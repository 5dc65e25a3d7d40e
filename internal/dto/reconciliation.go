package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// ReconciliationResponse defines the data returned after a promote or dismiss.
type ReconciliationResponse struct {
	Created   *TransactionResponse `json:"created,omitempty"`
	Parent    *TransactionResponse `json:"parent,omitempty"`
	DeletedID string               `json:"deletedID,omitempty"`
	Stale     bool                 `json:"stale"`
}

// ToReconciliationResponse converts a domain.ReconciliationResult to ReconciliationResponse DTO
func ToReconciliationResponse(r domain.ReconciliationResult) ReconciliationResponse {
	res := ReconciliationResponse{DeletedID: r.DeletedID, Stale: r.Stale}
	if r.Created != nil {
		c := ToTransactionResponse(r.Created)
		res.Created = &c
	}
	if r.Parent != nil {
		p := ToTransactionResponse(r.Parent)
		res.Parent = &p
	}
	return res
}
