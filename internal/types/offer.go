// Package types provides type definitions for structured data used throughout the forum-agent system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Offer represents a job posting published within a forum
type Offer struct {
	ID           int    `json:"id" validate:"required"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	ContractType string `json:"contract_type,omitempty"`
	Sector       string `json:"sector,omitempty"`
	Location     string `json:"location,omitempty"`
}

// Forum represents a recruitment event containing companies, offers, and programmes
type Forum struct {
	ID        int    `json:"id" validate:"required"`
	Name      string `json:"name"`
	Kind      string `json:"kind,omitempty"` // virtual, physical, or hybrid
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
