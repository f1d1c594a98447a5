package models

import "time"

type Menu struct {
	ID             uint         `json:"id"`
	Name           string       `json:"name"`
	Category       MenuCategory `json:"category"`
	Price          int64        `json:"price"`
	Description    string       `json:"description"`
	ImageURL       string       `json:"image_url"`
	AllowedStores  []StoreType  `json:"allowed_stores"`
	AllowedRegions []string     `json:"allowed_regions"`
	HasServiceFee  bool         `json:"has_service_fee"` // derived, never taken from input
	TaxRate        int          `json:"tax_rate"`

	// Set when the menu was promoted from an approved proposal
	SourceProposalID *uint `json:"source_proposal_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy so stored slices are never shared.
func (m Menu) Clone() Menu {
	out := m
	out.AllowedStores = append([]StoreType(nil), m.AllowedStores...)
	out.AllowedRegions = append([]string(nil), m.AllowedRegions...)
	if m.SourceProposalID != nil {
		id := *m.SourceProposalID
		out.SourceProposalID = &id
	}
	return out
}
