package catalog

import (
	"log/slog"
	"sync"
	"time"

	"eatz-backend/internal/models"
)

// Store owns the menu and proposal collections. Menus are kept oldest first,
// proposals newest first. Every method returns copies.
type Store struct {
	mu             sync.RWMutex
	menus          []models.Menu
	proposals      []models.Proposal
	nextMenuID     uint
	nextProposalID uint
	subscribers    []func(Event)

	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		nextMenuID:     1,
		nextProposalID: 1,
		now:            time.Now,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to run after every committed mutation. Callbacks run
// synchronously on the mutating goroutine, outside the store lock.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) publish(subs []func(Event), ev Event) {
	for _, fn := range subs {
		fn(ev)
	}
}

// ----------------------------------------
// MENUS
// ----------------------------------------

func (s *Store) AddMenu(actor models.User, form MenuForm) (models.Menu, error) {
	fields, err := form.normalize()
	if err != nil {
		return models.Menu{}, err
	}

	s.mu.Lock()
	now := s.now()
	m := models.Menu{CreatedAt: now, UpdatedAt: now}
	fields.applyToMenu(&m)
	m = s.insertMenuLocked(m)
	subs := s.subscribers
	s.mu.Unlock()

	s.logger.Info("menu created", "menu_id", m.ID, "category", m.Category, "user_id", actor.ID)
	after := m.Clone()
	s.publish(subs, Event{Type: EventMenuCreated, Actor: actor, Menu: &after})
	return m, nil
}

func (s *Store) UpdateMenu(actor models.User, id uint, form MenuForm) (models.Menu, error) {
	fields, err := form.normalize()
	if err != nil {
		return models.Menu{}, err
	}

	s.mu.Lock()
	idx := s.menuIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Menu{}, &NotFoundError{Entity: "menu", ID: id}
	}
	before := s.menus[idx].Clone()
	fields.applyToMenu(&s.menus[idx])
	s.menus[idx].UpdatedAt = s.now()
	m := s.menus[idx].Clone()
	subs := s.subscribers
	s.mu.Unlock()

	s.logger.Info("menu updated", "menu_id", id, "user_id", actor.ID)
	after := m.Clone()
	s.publish(subs, Event{Type: EventMenuUpdated, Actor: actor, MenuBefore: &before, Menu: &after})
	return m, nil
}

func (s *Store) GetMenu(id uint) (models.Menu, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.menuIndexLocked(id)
	if idx < 0 {
		return models.Menu{}, &NotFoundError{Entity: "menu", ID: id}
	}
	return s.menus[idx].Clone(), nil
}

func (s *Store) insertMenuLocked(m models.Menu) models.Menu {
	m.ID = s.nextMenuID
	s.nextMenuID++
	s.menus = append(s.menus, m)
	return m.Clone()
}

func (s *Store) menuIndexLocked(id uint) int {
	for i := range s.menus {
		if s.menus[i].ID == id {
			return i
		}
	}
	return -1
}

// ----------------------------------------
// PROPOSALS
// ----------------------------------------

func (s *Store) AddProposal(proposer models.User, form MenuForm) (models.Proposal, error) {
	s.mu.Lock()
	p, err := Submit(form, proposer, s.now())
	if err != nil {
		s.mu.Unlock()
		return models.Proposal{}, err
	}
	p = s.insertProposalLocked(p)
	subs := s.subscribers
	s.mu.Unlock()

	s.logger.Info("proposal submitted", "proposal_id", p.ID, "proposer_id", proposer.ID, "region", p.Proposer.Region)
	after := p.Clone()
	s.publish(subs, Event{Type: EventProposalSubmitted, Actor: proposer, Proposal: &after})
	return p, nil
}

// UpdateProposal edits the menu fields of a Pending proposal.
func (s *Store) UpdateProposal(actor models.User, id uint, form MenuForm) (models.Proposal, error) {
	s.mu.Lock()
	idx := s.proposalIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Proposal{}, &NotFoundError{Entity: "proposal", ID: id}
	}
	before := s.proposals[idx].Clone()
	revised, err := Revise(before, form, s.now())
	if err != nil {
		s.mu.Unlock()
		return models.Proposal{}, err
	}
	s.proposals[idx] = revised
	p := revised.Clone()
	subs := s.subscribers
	s.mu.Unlock()

	s.logger.Info("proposal revised", "proposal_id", id, "user_id", actor.ID)
	after := p.Clone()
	s.publish(subs, Event{Type: EventProposalRevised, Actor: actor, ProposalBefore: &before, Proposal: &after})
	return p, nil
}

// DecideProposal applies a GM decision. Approval also creates the promoted
// menu; both writes happen under one lock so neither is visible alone.
func (s *Store) DecideProposal(actor models.User, id uint, decision models.ProposalStatus, comment string) (models.Proposal, error) {
	s.mu.Lock()
	idx := s.proposalIndexLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return models.Proposal{}, &NotFoundError{Entity: "proposal", ID: id}
	}
	before := s.proposals[idx].Clone()
	decided, menu, err := Decide(before, decision, comment, actor.ID, s.now())
	if err != nil {
		s.mu.Unlock()
		return models.Proposal{}, err
	}

	var promoted *models.Menu
	if menu != nil {
		m := s.insertMenuLocked(*menu)
		decided.MenuID = &m.ID
		promoted = &m
	}
	s.proposals[idx] = decided
	p := decided.Clone()
	subs := s.subscribers
	s.mu.Unlock()

	if promoted != nil {
		s.logger.Info("proposal approved", "proposal_id", id, "menu_id", promoted.ID, "user_id", actor.ID)
	} else {
		s.logger.Info("proposal rejected", "proposal_id", id, "user_id", actor.ID)
	}
	after := p.Clone()
	s.publish(subs, Event{Type: EventProposalDecided, Actor: actor, ProposalBefore: &before, Proposal: &after, Menu: promoted})
	return p, nil
}

func (s *Store) GetProposal(id uint) (models.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.proposalIndexLocked(id)
	if idx < 0 {
		return models.Proposal{}, &NotFoundError{Entity: "proposal", ID: id}
	}
	return s.proposals[idx].Clone(), nil
}

func (s *Store) insertProposalLocked(p models.Proposal) models.Proposal {
	p.ID = s.nextProposalID
	s.nextProposalID++
	s.proposals = append([]models.Proposal{p}, s.proposals...)
	return p.Clone()
}

func (s *Store) proposalIndexLocked(id uint) int {
	for i := range s.proposals {
		if s.proposals[i].ID == id {
			return i
		}
	}
	return -1
}
