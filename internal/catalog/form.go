package catalog

import (
	"strings"

	"eatz-backend/internal/models"
)

// DefaultImageURL replaces an empty image reference at save time.
const DefaultImageURL = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&q=60&w=500"

// MenuForm is what the menu and proposal forms submit. HasServiceFee and
// TaxRate may be sent by clients but are ignored: both are derived here.
type MenuForm struct {
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Price          int64               `json:"price"`
	Category       models.MenuCategory `json:"category"`
	ImageURL       string              `json:"image_url"`
	AllowedStores  []models.StoreType  `json:"allowed_stores"`
	AllowedRegions []string            `json:"allowed_regions"`
	RMNotes        string              `json:"rm_notes"`
	HasServiceFee  *bool               `json:"has_service_fee,omitempty"`
	TaxRate        *int                `json:"tax_rate,omitempty"`
}

// menuFields holds validated menu data shared by Menu and Proposal.
type menuFields struct {
	name          string
	description   string
	price         int64
	category      models.MenuCategory
	imageURL      string
	stores        []models.StoreType
	regions       []string
	hasServiceFee bool
	taxRate       int
}

func (f MenuForm) normalize() (menuFields, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return menuFields{}, invalid("name", "menu name is required")
	}
	if f.Price < 0 {
		return menuFields{}, invalid("price", "price cannot be negative")
	}

	stores, err := ValidateStores(f.Category, f.AllowedStores)
	if err != nil {
		return menuFields{}, err
	}

	imageURL := strings.TrimSpace(f.ImageURL)
	if imageURL == "" {
		imageURL = DefaultImageURL
	}

	return menuFields{
		name:          name,
		description:   strings.TrimSpace(f.Description),
		price:         f.Price,
		category:      f.Category,
		imageURL:      imageURL,
		stores:        stores,
		regions:       NormalizeRegions(f.AllowedRegions),
		hasServiceFee: DeriveServiceFee(stores),
		taxRate:       DefaultTaxRate,
	}, nil
}

func (mf menuFields) applyToMenu(m *models.Menu) {
	m.Name = mf.name
	m.Description = mf.description
	m.Price = mf.price
	m.Category = mf.category
	m.ImageURL = mf.imageURL
	m.AllowedStores = mf.stores
	m.AllowedRegions = mf.regions
	m.HasServiceFee = mf.hasServiceFee
	m.TaxRate = mf.taxRate
}

func (mf menuFields) applyToProposal(p *models.Proposal) {
	p.MenuName = mf.name
	p.Description = mf.description
	p.Price = mf.price
	p.Category = mf.category
	p.ImageURL = mf.imageURL
	p.AllowedStores = mf.stores
	p.AllowedRegions = mf.regions
	p.HasServiceFee = mf.hasServiceFee
	p.TaxRate = mf.taxRate
}
