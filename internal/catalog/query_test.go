package catalog

import (
	"testing"

	"eatz-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.SeedDemoData())
	return s
}

func menuNames(menus []models.Menu) []string {
	names := make([]string, 0, len(menus))
	for _, m := range menus {
		names = append(names, m.Name)
	}
	return names
}

func TestListMenusFilters(t *testing.T) {
	s := seededStore(t)
	form := nasiGoreng()
	form.Name = "Batagor Bandung"
	_, err := s.AddMenu(testGM, form)
	require.NoError(t, err)

	assert.Equal(t, []string{"Americano"}, menuNames(s.ListMenus(MenuFilter{Category: models.CategoryCoffee})))
	assert.Equal(t, []string{"Instant Coffee Sachet"}, menuNames(s.ListMenus(MenuFilter{StoreType: models.StoreDrinkStall})))
	assert.Equal(t,
		[]string{"Americano", "Iced Lemon Tea"},
		menuNames(s.ListMenus(MenuFilter{StoreType: models.StoreCoffeeShop})))
	assert.Equal(t,
		[]string{"Nasi Goreng Spesial", "Batagor Bandung"},
		menuNames(s.ListMenus(MenuFilter{Category: models.CategoryFood, StoreType: models.StoreExpress})))
}

func TestListMenusRegionFilter(t *testing.T) {
	s := seededStore(t)
	form := nasiGoreng()
	form.Name = "Batagor Bandung"
	_, err := s.AddMenu(testGM, form)
	require.NoError(t, err)

	assert.Len(t, s.ListMenus(MenuFilter{Region: "Bandung"}), 6)
	assert.Len(t, s.ListMenus(MenuFilter{Region: "Surabaya"}), 5)
	// "All" also matches regions that are listed nowhere
	assert.Len(t, s.ListMenus(MenuFilter{Region: "Makassar"}), 5)
}

func TestListMenusSearch(t *testing.T) {
	s := seededStore(t)

	assert.Equal(t, []string{"Americano"}, menuNames(s.ListMenus(MenuFilter{Search: "ESPRESSO"})))
	assert.Equal(t, []string{"Instant Coffee Sachet"}, menuNames(s.ListMenus(MenuFilter{Search: "sachet"})))
	assert.Empty(t, s.ListMenus(MenuFilter{Search: "rendang"}))
}

func TestListProposalsFilters(t *testing.T) {
	s := seededStore(t)
	_, err := s.AddProposal(testRM, kopiAren())
	require.NoError(t, err)

	mine := s.ListProposals(ProposalFilter{ProposerID: testRM.ID})
	require.Len(t, mine, 2)
	assert.Greater(t, mine[0].ID, mine[1].ID)

	pending := s.ListProposals(ProposalFilter{Status: models.ProposalPending})
	assert.Len(t, pending, 2)

	snacks := s.ListProposals(ProposalFilter{Category: models.CategorySnack})
	require.Len(t, snacks, 1)
	assert.Equal(t, "Cireng Bumbu Rujak", snacks[0].MenuName)

	assert.Len(t, s.ListProposals(ProposalFilter{StoreType: models.StoreCoffeeShop}), 2)
	assert.Len(t, s.ListProposals(ProposalFilter{Region: "Surabaya"}), 4)
}

func TestCountProposalsIgnoresStatusFilter(t *testing.T) {
	s := seededStore(t)

	counts := s.CountProposals(ProposalFilter{Status: models.ProposalRejected, ProposerID: testRM.ID})
	assert.Equal(t, StatusCounts{All: 1, Pending: 1}, counts)
}

func TestFilterValidate(t *testing.T) {
	assert.NoError(t, MenuFilter{}.Validate())
	assert.ErrorIs(t, MenuFilter{Category: "Dessert"}.Validate(), ErrValidation)
	assert.ErrorIs(t, MenuFilter{StoreType: "Kiosk"}.Validate(), ErrValidation)
	assert.ErrorIs(t, ProposalFilter{Status: "Archived"}.Validate(), ErrValidation)
	assert.NoError(t, ProposalFilter{Status: models.ProposalApproved, Category: models.CategorySnack}.Validate())
}
