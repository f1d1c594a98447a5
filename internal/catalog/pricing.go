package catalog

import (
	"eatz-backend/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// ServiceFeePercent applies when a menu is sold through DineIn or CoffeeShop.
	ServiceFeePercent = 5
	// DefaultTaxRate is the tax percentage every menu carries.
	DefaultTaxRate = 10
)

var hundred = decimal.NewFromInt(100)

type Breakdown struct {
	BasePrice  decimal.Decimal
	ServiceFee decimal.Decimal
	Tax        decimal.Decimal
	Total      decimal.Decimal
}

// ComputeBreakdown returns the customer-facing price parts. Arithmetic is
// exact; rounding is left to RoundedTotal.
func ComputeBreakdown(basePrice int64, hasServiceFee bool, taxRatePercent int) Breakdown {
	base := decimal.NewFromInt(basePrice)

	fee := decimal.Zero
	if hasServiceFee {
		fee = base.Mul(decimal.NewFromInt(ServiceFeePercent)).Div(hundred)
	}
	tax := base.Mul(decimal.NewFromInt(int64(taxRatePercent))).Div(hundred)

	return Breakdown{
		BasePrice:  base,
		ServiceFee: fee,
		Tax:        tax,
		Total:      base.Add(fee).Add(tax),
	}
}

// RoundedTotal rounds the total to whole currency units, half away from zero.
func (b Breakdown) RoundedTotal() int64 {
	return b.Total.Round(0).IntPart()
}

func BreakdownFor(m models.Menu) Breakdown {
	return ComputeBreakdown(m.Price, m.HasServiceFee, m.TaxRate)
}
