package audit

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"eatz-backend/internal/catalog"
	"eatz-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gm = models.User{ID: 1, Name: "Alex Johnson", Role: models.RoleGM}
	rm = models.User{ID: 2, Name: "Benny Carter", Role: models.RoleRM, Region: "Jakarta"}
)

func newAuditedStore(t *testing.T) (*catalog.Store, *Trail) {
	t.Helper()
	store := catalog.NewStore()
	trail := NewTrail(nil)
	store.Subscribe(trail.Record)
	return store, trail
}

func latteForm() catalog.MenuForm {
	return catalog.MenuForm{
		Name:          "Es Kopi Susu",
		Description:   "Iced milk coffee",
		Price:         25000,
		Category:      models.CategoryCoffee,
		AllowedStores: []models.StoreType{models.StoreCoffeeShop},
		RMNotes:       "Popular with students",
	}
}

func TestRecordMenuCreateAndUpdate(t *testing.T) {
	store, trail := newAuditedStore(t)

	m, err := store.AddMenu(gm, latteForm())
	require.NoError(t, err)

	form := latteForm()
	form.Price = 27000
	_, err = store.UpdateMenu(gm, m.ID, form)
	require.NoError(t, err)

	logs := trail.List(Filter{EntityType: EntityMenu})
	require.Len(t, logs, 2)
	assert.Equal(t, models.AuditActionUpdate, logs[0].Action)
	assert.Equal(t, models.AuditActionCreate, logs[1].Action)
	assert.Equal(t, "null", logs[1].BeforeData)

	var before, after models.Menu
	require.NoError(t, json.Unmarshal([]byte(logs[0].BeforeData), &before))
	require.NoError(t, json.Unmarshal([]byte(logs[0].AfterData), &after))
	assert.Equal(t, int64(25000), before.Price)
	assert.Equal(t, int64(27000), after.Price)
	assert.Equal(t, gm.Name, logs[0].UserName)
}

func TestRecordApprovalWritesProposalAndMenuEntries(t *testing.T) {
	store, trail := newAuditedStore(t)

	p, err := store.AddProposal(rm, latteForm())
	require.NoError(t, err)
	decided, err := store.DecideProposal(gm, p.ID, models.ProposalApproved, "Go ahead")
	require.NoError(t, err)
	require.NotNil(t, decided.MenuID)

	logs := trail.List(Filter{})
	require.Len(t, logs, 3)
	assert.Equal(t, EntityMenu, logs[0].EntityType)
	assert.Equal(t, *decided.MenuID, logs[0].EntityID)
	assert.Equal(t, models.AuditActionCreate, logs[0].Action)
	assert.Equal(t, models.AuditActionApprove, logs[1].Action)
	assert.Equal(t, models.AuditActionCreate, logs[2].Action)
	assert.Equal(t, rm.ID, logs[2].UserID)

	assert.Len(t, trail.List(Filter{UserID: gm.ID}), 2)
	assert.Len(t, trail.List(Filter{EntityType: EntityProposal, EntityID: p.ID}), 2)
}

func TestRecordRejectionAndFailedDecision(t *testing.T) {
	store, trail := newAuditedStore(t)

	p, err := store.AddProposal(rm, latteForm())
	require.NoError(t, err)
	_, err = store.DecideProposal(gm, p.ID, models.ProposalRejected, "")
	require.NoError(t, err)

	_, err = store.DecideProposal(gm, p.ID, models.ProposalApproved, "")
	require.ErrorIs(t, err, catalog.ErrInvalidState)

	logs := trail.List(Filter{})
	require.Len(t, logs, 2, "failed transitions leave no trace")
	assert.Equal(t, models.AuditActionReject, logs[0].Action)
}

func TestListAuditLogsHandler(t *testing.T) {
	store, trail := newAuditedStore(t)
	_, err := store.AddMenu(gm, latteForm())
	require.NoError(t, err)
	_, err = store.AddProposal(rm, latteForm())
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/logs", ListAuditLogsHandler(trail))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/logs?entity_type=proposal", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out []AuditLogResponse
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 1)
	assert.Equal(t, EntityProposal, out[0].EntityType)

	for _, q := range []string{"?entity_type=expense", "?entity_id=abc", "?user_id=0"} {
		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/logs"+q, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}
