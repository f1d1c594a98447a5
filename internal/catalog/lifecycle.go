package catalog

import (
	"strings"
	"time"

	"eatz-backend/internal/models"
)

// proposerRegionFallback stamps proposals submitted by users without a region.
const proposerRegionFallback = "N/A"

// Submit builds a new Pending proposal from a form. The id is left for the
// store to assign.
func Submit(form MenuForm, proposer models.User, now time.Time) (models.Proposal, error) {
	fields, err := form.normalize()
	if err != nil {
		return models.Proposal{}, err
	}

	region := proposer.Region
	if region == "" {
		region = proposerRegionFallback
	}

	p := models.Proposal{
		RMNotes: strings.TrimSpace(form.RMNotes),
		Status:  models.ProposalPending,
		Proposer: models.ProposerSnapshot{
			ID:     proposer.ID,
			Name:   proposer.Name,
			Region: region,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	fields.applyToProposal(&p)
	return p, nil
}

// Revise replaces the menu fields of a Pending proposal. A blank RMNotes keeps
// the previous notes.
func Revise(p models.Proposal, form MenuForm, now time.Time) (models.Proposal, error) {
	if p.Status != models.ProposalPending {
		return models.Proposal{}, &InvalidStateError{ProposalID: p.ID, Status: p.Status}
	}
	fields, err := form.normalize()
	if err != nil {
		return models.Proposal{}, err
	}

	out := p.Clone()
	fields.applyToProposal(&out)
	if notes := strings.TrimSpace(form.RMNotes); notes != "" {
		out.RMNotes = notes
	}
	out.UpdatedAt = now
	return out, nil
}

// Decide moves a Pending proposal to Approved or Rejected. On approval it also
// returns the menu to promote; the store assigns its id and commits both
// records together.
func Decide(p models.Proposal, decision models.ProposalStatus, comment string, decidedBy uint, now time.Time) (models.Proposal, *models.Menu, error) {
	if p.Status != models.ProposalPending {
		return models.Proposal{}, nil, &InvalidStateError{ProposalID: p.ID, Status: p.Status}
	}
	if decision != models.ProposalApproved && decision != models.ProposalRejected {
		return models.Proposal{}, nil, invalid("decision", "decision must be Approved or Rejected, got %q", decision)
	}

	out := p.Clone()
	out.Status = decision
	if c := strings.TrimSpace(comment); c != "" {
		out.GMComment = &c
	}
	out.DecidedBy = &decidedBy
	decidedAt := now
	out.DecidedAt = &decidedAt
	out.UpdatedAt = now

	if decision != models.ProposalApproved {
		return out, nil, nil
	}

	menu := PromoteToMenu(out, now)
	return out, &menu, nil
}

// PromoteToMenu copies a proposal's menu fields into a new menu record.
func PromoteToMenu(p models.Proposal, now time.Time) models.Menu {
	src := p.ID
	return models.Menu{
		Name:             p.MenuName,
		Category:         p.Category,
		Price:            p.Price,
		Description:      p.Description,
		ImageURL:         p.ImageURL,
		AllowedStores:    append([]models.StoreType(nil), p.AllowedStores...),
		AllowedRegions:   append([]string(nil), p.AllowedRegions...),
		HasServiceFee:    p.HasServiceFee,
		TaxRate:          p.TaxRate,
		SourceProposalID: &src,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
