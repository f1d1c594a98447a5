package catalog

import (
	"fmt"

	"eatz-backend/internal/models"
)

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?auto=format&fit=crop&q=60&w=500"
}

var demoMenus = []MenuForm{
	{Name: "Nasi Goreng Spesial", Category: models.CategoryFood, Price: 45000, Description: "Nasi goreng klasik dengan telur, ayam, dan udang.", ImageURL: unsplash("photo-1512058564366-185109023977"), AllowedStores: []models.StoreType{models.StoreDineIn, models.StoreExpress}},
	{Name: "Americano", Category: models.CategoryCoffee, Price: 25000, Description: "Espresso dengan tambahan air panas.", ImageURL: unsplash("photo-1507133750040-4a8f570215de"), AllowedStores: []models.StoreType{models.StoreDineIn, models.StoreCoffeeShop}},
	{Name: "French Fries", Category: models.CategorySnack, Price: 20000, Description: "Kentang goreng renyah.", ImageURL: unsplash("photo-1576107232684-c7be35d0879a"), AllowedStores: []models.StoreType{models.StoreSnackStall, models.StoreDineIn, models.StoreExpress}},
	{Name: "Iced Lemon Tea", Category: models.CategoryBeverage, Price: 18000, Description: "Teh dingin dengan perasan lemon segar.", ImageURL: unsplash("photo-1556679343-af51b89736f5"), AllowedStores: []models.StoreType{models.StoreDineIn, models.StoreExpress, models.StoreCoffeeShop}},
	{Name: "Instant Coffee Sachet", Category: models.CategoryInstantBeverage, Price: 10000, Description: "Kopi instan sachet siap seduh.", ImageURL: unsplash("photo-1596591603954-4a0b0f792646"), AllowedStores: []models.StoreType{models.StoreDrinkStall}},
}

type demoProposal struct {
	form     MenuForm
	proposer models.User
	status   models.ProposalStatus
}

var demoProposals = []demoProposal{
	{
		form:     MenuForm{Name: "Kopi Gula Aren", Category: models.CategoryCoffee, Price: 28000, Description: "Kopi susu dengan pemanis gula aren asli.", ImageURL: unsplash("photo-1579888069124-4f4955b2d72b"), AllowedStores: []models.StoreType{models.StoreCoffeeShop, models.StoreDineIn}, RMNotes: "Sangat populer di kalangan anak muda Jakarta saat ini. Potensi sales tinggi."},
		proposer: models.User{ID: 2, Name: "Benny Carter", Role: models.RoleRM, Region: "Jakarta"},
		status:   models.ProposalPending,
	},
	{
		form:     MenuForm{Name: "Soto Betawi", Category: models.CategoryFood, Price: 55000, Description: "Soto khas Jakarta dengan kuah santan dan daging sapi.", ImageURL: unsplash("photo-1627891152229-285d03a11a32"), AllowedStores: []models.StoreType{models.StoreDineIn, models.StoreExpress}, RMNotes: "Menu otentik yang dapat menarik wisatawan dan penduduk lokal."},
		proposer: models.User{ID: 3, Name: "Citra Dewi", Role: models.RoleRM, Region: "Bandung"},
		status:   models.ProposalApproved,
	},
	{
		form:     MenuForm{Name: "Cireng Bumbu Rujak", Category: models.CategorySnack, Price: 22000, Description: "Camilan aci goreng dengan saus rujak pedas manis.", ImageURL: unsplash("photo-1629278282361-18579d57a5e9"), AllowedStores: []models.StoreType{models.StoreSnackStall, models.StoreDineIn, models.StoreExpress}, RMNotes: "Menu ini tidak cocok dengan citra brand kita yang premium."},
		proposer: models.User{ID: 4, Name: "Dodi Hermawan", Role: models.RoleRM, Region: "Surabaya"},
		status:   models.ProposalRejected,
	},
}

// SeedDemoData loads the demo catalog. Records go through the same
// validation as user input, so derived fields are recomputed. Subscribers are
// not notified.
func (s *Store) SeedDemoData() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for _, form := range demoMenus {
		fields, err := form.normalize()
		if err != nil {
			return fmt.Errorf("demo menu %q: %w", form.Name, err)
		}
		m := models.Menu{CreatedAt: now, UpdatedAt: now}
		fields.applyToMenu(&m)
		s.insertMenuLocked(m)
	}

	// Historical decisions predate the session and have no promoted menu.
	for _, dp := range demoProposals {
		p, err := Submit(dp.form, dp.proposer, now)
		if err != nil {
			return fmt.Errorf("demo proposal %q: %w", dp.form.Name, err)
		}
		p.Status = dp.status
		s.insertProposalLocked(p)
	}
	return nil
}
