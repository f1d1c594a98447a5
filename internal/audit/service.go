package audit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eatz-backend/internal/catalog"
	"eatz-backend/internal/models"
)

const (
	EntityMenu     = "menu"
	EntityProposal = "proposal"
)

type LogOptions struct {
	User        models.User
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// Trail keeps the audit log in memory, oldest entry first.
type Trail struct {
	mu     sync.RWMutex
	logs   []models.AuditLog
	nextID uint
	now    func() time.Time
	logger *slog.Logger
}

func NewTrail(logger *slog.Logger) *Trail {
	if logger == nil {
		logger = slog.Default()
	}
	return &Trail{nextID: 1, now: time.Now, logger: logger}
}

func (t *Trail) WriteLog(opts LogOptions) models.AuditLog {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry := models.AuditLog{
		ID:          t.nextID,
		CreatedAt:   t.now(),
		UserID:      opts.User.ID,
		UserName:    opts.User.Name,
		UserRole:    opts.User.Role,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  t.snapshot(opts.Before),
		AfterData:   t.snapshot(opts.After),
	}
	t.nextID++
	t.logs = append(t.logs, entry)
	return entry
}

// snapshot encodes v as JSON; absent values become "null".
func (t *Trail) snapshot(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.logger.Warn("audit snapshot failed", "error", err)
		return "null"
	}
	return string(b)
}

// Record turns a catalog event into audit entries. It is meant to be passed
// to catalog.Store.Subscribe.
func (t *Trail) Record(ev catalog.Event) {
	switch ev.Type {
	case catalog.EventMenuCreated:
		t.WriteLog(LogOptions{
			User:        ev.Actor,
			EntityType:  EntityMenu,
			EntityID:    ev.Menu.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Menu created: %s", ev.Menu.Name),
			After:       deref(ev.Menu),
		})

	case catalog.EventMenuUpdated:
		t.WriteLog(LogOptions{
			User:        ev.Actor,
			EntityType:  EntityMenu,
			EntityID:    ev.Menu.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Menu updated: %s", ev.Menu.Name),
			Before:      deref(ev.MenuBefore),
			After:       deref(ev.Menu),
		})

	case catalog.EventProposalSubmitted:
		t.WriteLog(LogOptions{
			User:        ev.Actor,
			EntityType:  EntityProposal,
			EntityID:    ev.Proposal.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Proposal submitted: %s", ev.Proposal.MenuName),
			After:       deref(ev.Proposal),
		})

	case catalog.EventProposalRevised:
		t.WriteLog(LogOptions{
			User:        ev.Actor,
			EntityType:  EntityProposal,
			EntityID:    ev.Proposal.ID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Proposal revised: %s", ev.Proposal.MenuName),
			Before:      deref(ev.ProposalBefore),
			After:       deref(ev.Proposal),
		})

	case catalog.EventProposalDecided:
		action := models.AuditActionReject
		if ev.Proposal.Status == models.ProposalApproved {
			action = models.AuditActionApprove
		}
		t.WriteLog(LogOptions{
			User:        ev.Actor,
			EntityType:  EntityProposal,
			EntityID:    ev.Proposal.ID,
			Action:      action,
			Description: fmt.Sprintf("Proposal %s: %s", ev.Proposal.Status, ev.Proposal.MenuName),
			Before:      deref(ev.ProposalBefore),
			After:       deref(ev.Proposal),
		})
		if ev.Menu != nil {
			t.WriteLog(LogOptions{
				User:        ev.Actor,
				EntityType:  EntityMenu,
				EntityID:    ev.Menu.ID,
				Action:      models.AuditActionCreate,
				Description: fmt.Sprintf("Menu promoted from proposal #%d: %s", ev.Proposal.ID, ev.Menu.Name),
				After:       deref(ev.Menu),
			})
		}

	default:
		t.logger.Warn("unhandled catalog event", "type", ev.Type)
	}
}

// deref keeps a nil pointer from turning into a non-nil interface.
func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

type Filter struct {
	EntityType string
	EntityID   uint
	UserID     uint
}

// List returns matching entries, newest first.
func (t *Trail) List(f Filter) []models.AuditLog {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.AuditLog, 0)
	for i := len(t.logs) - 1; i >= 0; i-- {
		l := t.logs[i]
		if f.EntityType != "" && l.EntityType != f.EntityType {
			continue
		}
		if f.EntityID != 0 && l.EntityID != f.EntityID {
			continue
		}
		if f.UserID != 0 && l.UserID != f.UserID {
			continue
		}
		out = append(out, l)
	}
	return out
}
