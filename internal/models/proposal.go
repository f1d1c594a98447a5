package models

import "time"

type ProposalStatus string

const (
	ProposalPending  ProposalStatus = "Pending"
	ProposalApproved ProposalStatus = "Approved"
	ProposalRejected ProposalStatus = "Rejected"
)

func (s ProposalStatus) IsValid() bool {
	return s == ProposalPending || s == ProposalApproved || s == ProposalRejected
}

// ProposerSnapshot is copied from the submitting user at submission time.
// Later changes to the user do not touch historical proposals.
type ProposerSnapshot struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region"`
}

type Proposal struct {
	ID             uint             `json:"id"`
	MenuName       string           `json:"menu_name"`
	Description    string           `json:"description"`
	Price          int64            `json:"price"`
	ImageURL       string           `json:"image_url"`
	RMNotes        string           `json:"rm_notes"`
	GMComment      *string          `json:"gm_comment,omitempty"`
	Category       MenuCategory     `json:"category"`
	AllowedStores  []StoreType      `json:"allowed_stores"`
	AllowedRegions []string         `json:"allowed_regions"`
	HasServiceFee  bool             `json:"has_service_fee"`
	TaxRate        int              `json:"tax_rate"`
	Status         ProposalStatus   `json:"status"`
	Proposer       ProposerSnapshot `json:"proposer"`

	// Filled only by the transition out of Pending
	MenuID    *uint      `json:"menu_id,omitempty"`
	DecidedBy *uint      `json:"decided_by,omitempty"`
	DecidedAt *time.Time `json:"decided_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Proposal) Clone() Proposal {
	out := p
	out.AllowedStores = append([]StoreType(nil), p.AllowedStores...)
	out.AllowedRegions = append([]string(nil), p.AllowedRegions...)
	if p.GMComment != nil {
		c := *p.GMComment
		out.GMComment = &c
	}
	if p.MenuID != nil {
		id := *p.MenuID
		out.MenuID = &id
	}
	if p.DecidedBy != nil {
		id := *p.DecidedBy
		out.DecidedBy = &id
	}
	if p.DecidedAt != nil {
		at := *p.DecidedAt
		out.DecidedAt = &at
	}
	return out
}
