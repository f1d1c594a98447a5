package proposal

import (
	"eatz-backend/internal/auth"
	"eatz-backend/internal/catalog"
	"eatz-backend/internal/menu"
	"eatz-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProposalResponse struct {
	models.Proposal
	Breakdown menu.BreakdownResponse `json:"breakdown"`
}

func toResponse(p models.Proposal) ProposalResponse {
	b := catalog.ComputeBreakdown(p.Price, p.HasServiceFee, p.TaxRate)
	return ProposalResponse{Proposal: p, Breakdown: menu.NewBreakdownResponse(b)}
}

type DecisionRequest struct {
	Decision models.ProposalStatus `json:"decision"`
	Comment  string                `json:"comment"`
}

// scopedFilter reads the list filters. Region managers only ever see
// their own proposals.
func scopedFilter(c *fiber.Ctx, user models.User) (catalog.ProposalFilter, error) {
	f := catalog.ProposalFilter{
		Status:    models.ProposalStatus(c.Query("status")),
		Category:  models.MenuCategory(c.Query("category")),
		StoreType: models.StoreType(c.Query("store_type")),
		Region:    c.Query("region"),
	}
	if user.Role == models.RoleRM {
		f.ProposerID = user.ID
	}
	return f, f.Validate()
}

// loadVisible fetches a proposal the caller is allowed to see.
func loadVisible(c *fiber.Ctx, store *catalog.Store, user models.User) (models.Proposal, error) {
	id, err := menu.ParseID(c, "id")
	if err != nil {
		return models.Proposal{}, err
	}
	p, err := store.GetProposal(id)
	if err != nil {
		return models.Proposal{}, err
	}
	if user.Role == models.RoleRM && p.Proposer.ID != user.ID {
		return models.Proposal{}, fiber.NewError(fiber.StatusForbidden, "proposal belongs to another region manager")
	}
	return p, nil
}

// GET /api/proposals?status=Pending&category=Coffee&store_type=DineIn&region=Jakarta
func ListProposalsHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		f, err := scopedFilter(c, user)
		if err != nil {
			return err
		}

		list := store.ListProposals(f)
		resp := make([]ProposalResponse, 0, len(list))
		for _, p := range list {
			resp = append(resp, toResponse(p))
		}
		return c.JSON(resp)
	}
}

// GET /api/proposals/summary
// Counts per status for the tab badges; the status filter is ignored.
func SummaryHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		f, err := scopedFilter(c, user)
		if err != nil {
			return err
		}
		return c.JSON(store.CountProposals(f))
	}
}

// GET /api/proposals/:id
func GetProposalHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		p, err := loadVisible(c, store, user)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(p))
	}
}

// POST /api/proposals
func SubmitProposalHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var form catalog.MenuForm
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		p, err := store.AddProposal(user, form)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(p))
	}
}

// PUT /api/proposals/:id
func UpdateProposalHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		existing, err := loadVisible(c, store, user)
		if err != nil {
			return err
		}

		var form catalog.MenuForm
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		p, err := store.UpdateProposal(user, existing.ID, form)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(p))
	}
}

// POST /api/admin/proposals/:id/decision
func DecisionHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		id, err := menu.ParseID(c, "id")
		if err != nil {
			return err
		}

		var body DecisionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		p, err := store.DecideProposal(user, id, body.Decision, body.Comment)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(p))
	}
}
