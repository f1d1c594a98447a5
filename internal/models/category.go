package models

type MenuCategory string

const (
	CategoryFood            MenuCategory = "Food"
	CategoryBeverage        MenuCategory = "Beverage"
	CategoryCoffee          MenuCategory = "Coffee"
	CategorySnack           MenuCategory = "Snack"
	CategoryInstantBeverage MenuCategory = "InstantBeverage"
)

// Categories lists every sellable category in display order.
var Categories = []MenuCategory{
	CategoryFood,
	CategoryBeverage,
	CategoryCoffee,
	CategorySnack,
	CategoryInstantBeverage,
}

func (c MenuCategory) IsValid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

type StoreType string

const (
	StoreDineIn     StoreType = "DineIn"
	StoreCoffeeShop StoreType = "CoffeeShop"
	StoreExpress    StoreType = "Express"
	StoreSnackStall StoreType = "SnackStall"
	StoreDrinkStall StoreType = "DrinkStall"
)

// StoreTypes lists every outlet format.
var StoreTypes = []StoreType{
	StoreDineIn,
	StoreCoffeeShop,
	StoreExpress,
	StoreSnackStall,
	StoreDrinkStall,
}

func (s StoreType) IsValid() bool {
	for _, v := range StoreTypes {
		if v == s {
			return true
		}
	}
	return false
}

// RegionAll is the sentinel for "sold in every region".
const RegionAll = "All"

// Regions are the named regions offered by the dashboard filters.
var Regions = []string{
	"Jakarta",
	"Jakarta Selatan",
	"Jakarta Pusat",
	"Jakarta Utara",
	"Jakarta Barat",
	"Jakarta Timur",
	"Bandung",
	"Surabaya",
}
