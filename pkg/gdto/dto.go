// Package gdto holds request types shared across domains.
package gdto

// PaginationRequest is the common list query. Filter is interpreted per
// endpoint: a status filter on booking lists, a name/city search on venue
// lists.
type PaginationRequest struct {
	Page   int    `json:"page" query:"page" validate:"omitempty,numeric,min=1"`
	Limit  int    `json:"limit" query:"limit" validate:"omitempty,numeric,min=1,max=100"`
	Filter string `json:"filter" query:"filter" validate:"omitempty,min=3"`
}
