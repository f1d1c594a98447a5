package menu

import (
	"strconv"
	"strings"

	"eatz-backend/internal/auth"
	"eatz-backend/internal/catalog"
	"eatz-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type BreakdownResponse struct {
	BasePrice    float64 `json:"base_price"`
	ServiceFee   float64 `json:"service_fee"`
	Tax          float64 `json:"tax"`
	Total        float64 `json:"total"`
	RoundedTotal int64   `json:"rounded_total"`
}

func NewBreakdownResponse(b catalog.Breakdown) BreakdownResponse {
	return BreakdownResponse{
		BasePrice:    b.BasePrice.InexactFloat64(),
		ServiceFee:   b.ServiceFee.InexactFloat64(),
		Tax:          b.Tax.InexactFloat64(),
		Total:        b.Total.InexactFloat64(),
		RoundedTotal: b.RoundedTotal(),
	}
}

type MenuResponse struct {
	models.Menu
	Breakdown BreakdownResponse `json:"breakdown"`
}

func toResponse(m models.Menu) MenuResponse {
	return MenuResponse{Menu: m, Breakdown: NewBreakdownResponse(catalog.BreakdownFor(m))}
}

// ParseID reads a positive numeric route parameter.
func ParseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}

// ---- RULES & PREVIEW ----

type CategoryRule struct {
	Category      models.MenuCategory `json:"category"`
	AllowedStores []models.StoreType  `json:"allowed_stores"`
}

type RulesResponse struct {
	Categories        []CategoryRule     `json:"categories"`
	StoreTypes        []models.StoreType `json:"store_types"`
	Regions           []string           `json:"regions"`
	ServiceFeeStores  []models.StoreType `json:"service_fee_stores"`
	ServiceFeePercent int                `json:"service_fee_percent"`
	DefaultTaxRate    int                `json:"default_tax_rate"`
}

// GET /api/catalog/rules
func RulesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		resp := RulesResponse{
			StoreTypes:        models.StoreTypes,
			Regions:           append([]string{models.RegionAll}, models.Regions...),
			ServiceFeeStores:  []models.StoreType{models.StoreDineIn, models.StoreCoffeeShop},
			ServiceFeePercent: catalog.ServiceFeePercent,
			DefaultTaxRate:    catalog.DefaultTaxRate,
		}
		for _, cat := range models.Categories {
			resp.Categories = append(resp.Categories, CategoryRule{
				Category:      cat,
				AllowedStores: catalog.AllowedStoresFor(cat),
			})
		}
		return c.JSON(resp)
	}
}

type PreviewRequest struct {
	Category       models.MenuCategory `json:"category"`
	Price          int64               `json:"price"`
	AllowedStores  []models.StoreType  `json:"allowed_stores"`
	AllowedRegions []string            `json:"allowed_regions"`
	ToggleRegion   string              `json:"toggle_region"`
}

type PreviewResponse struct {
	AllowedStores   []models.StoreType `json:"allowed_stores"`
	AvailableStores []models.StoreType `json:"available_stores"`
	AllowedRegions  []string           `json:"allowed_regions"`
	HasServiceFee   bool               `json:"has_service_fee"`
	TaxRate         int                `json:"tax_rate"`
	Breakdown       BreakdownResponse  `json:"breakdown"`
}

// POST /api/catalog/preview
// Recomputes what the menu form shows while it is being filled in: stores
// that survive a category change, the derived fee flag and the price parts.
func PreviewHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body PreviewRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if !body.Category.IsValid() {
			return &catalog.ValidationError{Field: "category", Message: "unknown category \"" + string(body.Category) + "\""}
		}
		if body.Price < 0 {
			return &catalog.ValidationError{Field: "price", Message: "must not be negative"}
		}

		stores := catalog.RetainAllowedStores(body.Category, body.AllowedStores)
		regions := body.AllowedRegions
		if r := strings.TrimSpace(body.ToggleRegion); r != "" {
			regions = catalog.ToggleRegion(regions, r)
		}
		fee := catalog.DeriveServiceFee(stores)

		return c.JSON(PreviewResponse{
			AllowedStores:   stores,
			AvailableStores: catalog.AllowedStoresFor(body.Category),
			AllowedRegions:  catalog.NormalizeRegions(regions),
			HasServiceFee:   fee,
			TaxRate:         catalog.DefaultTaxRate,
			Breakdown:       NewBreakdownResponse(catalog.ComputeBreakdown(body.Price, fee, catalog.DefaultTaxRate)),
		})
	}
}

// ---- MENUS ----

// GET /api/menus?category=Coffee&store_type=DineIn&region=Bandung&q=kopi
func ListMenusHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := catalog.MenuFilter{
			Category:  models.MenuCategory(c.Query("category")),
			StoreType: models.StoreType(c.Query("store_type")),
			Region:    c.Query("region"),
			Search:    c.Query("q"),
		}
		if err := f.Validate(); err != nil {
			return err
		}

		menus := store.ListMenus(f)
		resp := make([]MenuResponse, 0, len(menus))
		for _, m := range menus {
			resp = append(resp, toResponse(m))
		}
		return c.JSON(resp)
	}
}

// GET /api/menus/:id
func GetMenuHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParseID(c, "id")
		if err != nil {
			return err
		}
		m, err := store.GetMenu(id)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(m))
	}
}

// POST /api/admin/menus
func CreateMenuHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}

		var form catalog.MenuForm
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		m, err := store.AddMenu(user, form)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(toResponse(m))
	}
}

// PUT /api/admin/menus/:id
func UpdateMenuHandler(store *catalog.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.CurrentUser(c)
		if err != nil {
			return err
		}
		id, err := ParseID(c, "id")
		if err != nil {
			return err
		}

		var form catalog.MenuForm
		if err := c.BodyParser(&form); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		m, err := store.UpdateMenu(user, id, form)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(m))
	}
}
