package catalog

import "eatz-backend/internal/models"

type EventType string

const (
	EventMenuCreated       EventType = "menu.created"
	EventMenuUpdated       EventType = "menu.updated"
	EventProposalSubmitted EventType = "proposal.submitted"
	EventProposalRevised   EventType = "proposal.revised"
	EventProposalDecided   EventType = "proposal.decided"
)

// Event describes one committed mutation. For an approval, Menu holds the
// promoted menu next to the decided proposal.
type Event struct {
	Type  EventType
	Actor models.User

	MenuBefore *models.Menu
	Menu       *models.Menu

	ProposalBefore *models.Proposal
	Proposal       *models.Proposal
}
