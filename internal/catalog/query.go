package catalog

import (
	"strings"

	"eatz-backend/internal/models"
)

// MenuFilter narrows ListMenus. Zero values match everything.
type MenuFilter struct {
	Category  models.MenuCategory
	StoreType models.StoreType
	Region    string
	Search    string
}

func (f MenuFilter) Validate() error {
	return validateFilter(f.Category, f.StoreType)
}

func (f MenuFilter) matches(m *models.Menu) bool {
	if f.Category != "" && m.Category != f.Category {
		return false
	}
	if f.StoreType != "" && !containsStore(m.AllowedStores, f.StoreType) {
		return false
	}
	if f.Region != "" && !MatchesRegion(m.AllowedRegions, f.Region) {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(m.Name), q) && !strings.Contains(strings.ToLower(m.Description), q) {
			return false
		}
	}
	return true
}

// ProposalFilter narrows ListProposals and CountProposals.
type ProposalFilter struct {
	Status     models.ProposalStatus
	Category   models.MenuCategory
	StoreType  models.StoreType
	Region     string
	ProposerID uint
}

func (f ProposalFilter) Validate() error {
	if f.Status != "" && !f.Status.IsValid() {
		return invalid("status", "unknown status %q", f.Status)
	}
	return validateFilter(f.Category, f.StoreType)
}

func (f ProposalFilter) matches(p *models.Proposal) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.ProposerID != 0 && p.Proposer.ID != f.ProposerID {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.StoreType != "" && !containsStore(p.AllowedStores, f.StoreType) {
		return false
	}
	if f.Region != "" && !MatchesRegion(p.AllowedRegions, f.Region) {
		return false
	}
	return true
}

type StatusCounts struct {
	All      int `json:"all"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func validateFilter(category models.MenuCategory, store models.StoreType) error {
	if category != "" && !category.IsValid() {
		return invalid("category", "unknown category %q", category)
	}
	if store != "" && !store.IsValid() {
		return invalid("store_type", "unknown store type %q", store)
	}
	return nil
}

func containsStore(stores []models.StoreType, want models.StoreType) bool {
	for _, s := range stores {
		if s == want {
			return true
		}
	}
	return false
}

// ListMenus returns matching menus, oldest first.
func (s *Store) ListMenus(f MenuFilter) []models.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Menu, 0, len(s.menus))
	for i := range s.menus {
		if f.matches(&s.menus[i]) {
			out = append(out, s.menus[i].Clone())
		}
	}
	return out
}

// ListProposals returns matching proposals, newest first.
func (s *Store) ListProposals(f ProposalFilter) []models.Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Proposal, 0, len(s.proposals))
	for i := range s.proposals {
		if f.matches(&s.proposals[i]) {
			out = append(out, s.proposals[i].Clone())
		}
	}
	return out
}

// CountProposals counts matching proposals per status. The Status field of
// the filter is ignored so every bucket is filled.
func (s *Store) CountProposals(f ProposalFilter) StatusCounts {
	f.Status = ""

	s.mu.RLock()
	defer s.mu.RUnlock()

	var c StatusCounts
	for i := range s.proposals {
		p := &s.proposals[i]
		if !f.matches(p) {
			continue
		}
		c.All++
		switch p.Status {
		case models.ProposalPending:
			c.Pending++
		case models.ProposalApproved:
			c.Approved++
		case models.ProposalRejected:
			c.Rejected++
		}
	}
	return c
}
