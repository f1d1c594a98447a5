package dashboard

import (
	"eatz-backend/internal/auth"
	"eatz-backend/internal/catalog"
	"eatz-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Figures below are placeholders until sales data is wired in.
const (
	monthlyProfit     int64 = 1_200_000_000
	regionProfit      int64 = 250_000_000
	totalTransactions       = 2847
	regionBestSeller        = "Kopi Aren"

	recentProposalLimit = 3
)

type TopMenu struct {
	Name     string `json:"name"`
	Sales    int    `json:"sales"`
	Trend    string `json:"trend"`
	ImageURL string `json:"image_url"`
}

var topMenus = []TopMenu{
	{Name: "Nasi Goreng Spesial", Sales: 1240, Trend: "+12%", ImageURL: "https://images.unsplash.com/photo-1512058564366-185109023977?auto=format&fit=crop&q=60&w=100"},
	{Name: "Americano", Sales: 980, Trend: "+8%", ImageURL: "https://images.unsplash.com/photo-1507133750040-4a8f570215de?auto=format&fit=crop&q=60&w=100"},
	{Name: "Kopi Gula Aren", Sales: 875, Trend: "+15%", ImageURL: "https://images.unsplash.com/photo-1579888069124-4f4955b2d72b?auto=format&fit=crop&q=60&w=100"},
}

type Filters struct {
	Category  models.MenuCategory `json:"category,omitempty"`
	StoreType models.StoreType    `json:"store_type,omitempty"`
	Region    string              `json:"region,omitempty"`
}

type SummaryResponse struct {
	Role    models.UserRole `json:"role"`
	Region  string          `json:"region,omitempty"`
	Filters Filters         `json:"filters"`

	// GM
	MonthlyProfit     int64 `json:"monthly_profit,omitempty"`
	PendingProposals  int   `json:"pending_proposals"`
	ActiveMenus       int   `json:"active_menus"`
	ApprovedProposals int   `json:"approved_proposals"`

	// RM
	RegionProfit      int64  `json:"region_profit,omitempty"`
	ActiveProposals   int    `json:"active_proposals"`
	RegionBestSeller  string `json:"region_best_seller,omitempty"`
	TotalTransactions int    `json:"total_transactions,omitempty"`

	TopMenus        []TopMenu         `json:"top_menus"`
	RecentProposals []models.Proposal `json:"recent_proposals"`
}

// GET /api/dashboard/summary?category=Coffee&store_type=DineIn&region=Bandung
// The filters only narrow the active menu count.
func SummaryHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		mf := catalog.MenuFilter{
			Category:  models.MenuCategory(c.Query("category")),
			StoreType: models.StoreType(c.Query("store_type")),
			Region:    c.Query("region"),
		}
		if err := mf.Validate(); err != nil {
			return err
		}

		resp := SummaryResponse{
			Role:   user.Role,
			Region: user.Region,
			Filters: Filters{
				Category:  mf.Category,
				StoreType: mf.StoreType,
				Region:    mf.Region,
			},
			ActiveMenus: len(store.ListMenus(mf)),
			TopMenus:    topMenus,
		}

		var scope catalog.ProposalFilter
		if user.Role == models.RoleRM {
			scope.ProposerID = user.ID
		}
		counts := store.CountProposals(scope)

		switch user.Role {
		case models.RoleGM:
			resp.MonthlyProfit = monthlyProfit
			resp.PendingProposals = counts.Pending
			resp.ApprovedProposals = counts.Approved
		case models.RoleRM:
			resp.RegionProfit = regionProfit
			resp.ActiveProposals = counts.Pending
			resp.RegionBestSeller = regionBestSeller
			resp.TotalTransactions = totalTransactions
		}

		recent := store.ListProposals(scope)
		if len(recent) > recentProposalLimit {
			recent = recent[:recentProposalLimit]
		}
		resp.RecentProposals = recent

		return c.JSON(resp)
	}
}
