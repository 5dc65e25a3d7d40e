package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// OccurrenceResponse defines the data returned for an upcoming occurrence.
type OccurrenceResponse struct {
	Source   string              `json:"source"`
	ParentID string              `json:"parentID,omitempty"`
	Record   TransactionResponse `json:"record"`
}

// ToOccurrenceResponse converts a domain.Occurrence to OccurrenceResponse DTO
func ToOccurrenceResponse(o domain.Occurrence) OccurrenceResponse {
	return OccurrenceResponse{
		Source:   string(o.Source),
		ParentID: o.ParentID,
		Record:   ToTransactionResponse(&o.Transaction),
	}
}

// ToListOccurrenceResponse converts a slice of domain.Occurrence to a slice of OccurrenceResponse DTOs
func ToListOccurrenceResponse(occs []domain.Occurrence) []OccurrenceResponse {
	res := make([]OccurrenceResponse, len(occs))
	for i, o := range occs {
		res[i] = ToOccurrenceResponse(o)
	}
	return res
}

// DailyPointResponse is one point of the 7-day series.
type DailyPointResponse struct {
	Day      string `json:"day"`
	SumMinor int64  `json:"sumMinor"`
}

// SummaryResponse defines the aggregated figures returned with a dashboard.
type SummaryResponse struct {
	Totals     []domain.CurrencyTotal `json:"totals"`
	KPIs       domain.KPIs            `json:"kpis"`
	Categories []domain.CategoryShare `json:"categories"`
	Daily      []DailyPointResponse   `json:"daily"`
	DailyMax   int64                  `json:"dailyMax"`
}

// ToSummaryResponse converts a domain.Summary to SummaryResponse DTO
func ToSummaryResponse(s domain.Summary) SummaryResponse {
	daily := make([]DailyPointResponse, len(s.Daily))
	for i, p := range s.Daily {
		daily[i] = DailyPointResponse{Day: p.Day.Format(DateLayout), SumMinor: p.SumMinor}
	}
	return SummaryResponse{
		Totals:     s.Totals,
		KPIs:       s.KPIs,
		Categories: s.Categories,
		Daily:      daily,
		DailyMax:   s.DailyMax,
	}
}

// DashboardResponse wraps the settled list, the upcoming list and the summary of one kind.
type DashboardResponse struct {
	Kind     string                `json:"kind"`
	Settled  []TransactionResponse `json:"settled"`
	Upcoming []OccurrenceResponse  `json:"upcoming"`
	Summary  SummaryResponse       `json:"summary"`
}

// ToDashboardResponse converts a domain.Dashboard to DashboardResponse DTO
func ToDashboardResponse(d *domain.Dashboard) DashboardResponse {
	return DashboardResponse{
		Kind:     string(d.Kind),
		Settled:  ToListTransactionResponse(d.Settled),
		Upcoming: ToListOccurrenceResponse(d.Upcoming),
		Summary:  ToSummaryResponse(d.Summary),
	}
}

// ListOccurrencesResponse wraps the upcoming list.
type ListOccurrencesResponse struct {
	Occurrences []OccurrenceResponse `json:"occurrences"`
}
