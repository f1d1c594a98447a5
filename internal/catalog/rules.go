package catalog

import (
	"strings"

	"eatz-backend/internal/models"
)

var allowedStores = map[models.MenuCategory][]models.StoreType{
	models.CategorySnack:           {models.StoreSnackStall, models.StoreDineIn, models.StoreExpress},
	models.CategoryInstantBeverage: {models.StoreDrinkStall},
	models.CategoryCoffee:          {models.StoreCoffeeShop, models.StoreDineIn},
	models.CategoryFood:            {models.StoreDineIn, models.StoreExpress},
	models.CategoryBeverage:        {models.StoreDineIn, models.StoreCoffeeShop, models.StoreExpress},
}

// AllowedStoresFor returns the store types a category may be sold through.
// Unknown categories get an empty set.
func AllowedStoresFor(category models.MenuCategory) []models.StoreType {
	return append([]models.StoreType(nil), allowedStores[category]...)
}

func isAllowed(category models.MenuCategory, store models.StoreType) bool {
	for _, s := range allowedStores[category] {
		if s == store {
			return true
		}
	}
	return false
}

// DeriveServiceFee is true iff the menu is sold through DineIn or CoffeeShop.
func DeriveServiceFee(stores []models.StoreType) bool {
	for _, s := range stores {
		if s == models.StoreDineIn || s == models.StoreCoffeeShop {
			return true
		}
	}
	return false
}

// RetainAllowedStores drops the selections a new category does not permit.
// Callers must run it whenever a form's category changes.
func RetainAllowedStores(category models.MenuCategory, stores []models.StoreType) []models.StoreType {
	out := make([]models.StoreType, 0, len(stores))
	for _, s := range stores {
		if isAllowed(category, s) {
			out = append(out, s)
		}
	}
	return out
}

// ValidateStores checks a store selection against the category table and
// returns it de-duplicated in input order.
func ValidateStores(category models.MenuCategory, stores []models.StoreType) ([]models.StoreType, error) {
	if !category.IsValid() {
		return nil, invalid("category", "unknown category %q", category)
	}
	if len(stores) == 0 {
		return nil, invalid("allowed_stores", "select at least one store type")
	}

	seen := make(map[models.StoreType]bool, len(stores))
	out := make([]models.StoreType, 0, len(stores))
	for _, s := range stores {
		if !s.IsValid() {
			return nil, invalid("allowed_stores", "unknown store type %q", s)
		}
		if !isAllowed(category, s) {
			return nil, invalid("allowed_stores", "%s is not sold through %s", category, s)
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out, nil
}

// NormalizeRegions applies the region selection rules: an empty selection
// means every region, and "All" excludes every other entry.
func NormalizeRegions(regions []string) []string {
	seen := make(map[string]bool, len(regions))
	out := make([]string, 0, len(regions))
	for _, r := range regions {
		r = strings.TrimSpace(r)
		if r == "" || seen[r] {
			continue
		}
		if r == models.RegionAll {
			return []string{models.RegionAll}
		}
		seen[r] = true
		out = append(out, r)
	}
	if len(out) == 0 {
		return []string{models.RegionAll}
	}
	return out
}

// ToggleRegion flips one region in a selection the way the region picker does.
// The result may be empty; NormalizeRegions turns that into "All" on save.
func ToggleRegion(current []string, region string) []string {
	if region == models.RegionAll {
		return []string{models.RegionAll}
	}

	out := make([]string, 0, len(current)+1)
	found := false
	for _, r := range current {
		if r == models.RegionAll {
			continue
		}
		if r == region {
			found = true
			continue
		}
		out = append(out, r)
	}
	if !found {
		out = append(out, region)
	}
	return out
}

// MatchesRegion reports whether a region filter selects the given allowed regions.
func MatchesRegion(allowed []string, region string) bool {
	for _, r := range allowed {
		if r == models.RegionAll || r == region {
			return true
		}
	}
	return false
}
