package catalog

import (
	"testing"

	"eatz-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestComputeBreakdownWithServiceFee(t *testing.T) {
	b := ComputeBreakdown(28000, true, DefaultTaxRate)

	assertDecimal(t, "28000", b.BasePrice)
	assertDecimal(t, "1400", b.ServiceFee)
	assertDecimal(t, "2800", b.Tax)
	assertDecimal(t, "32200", b.Total)
	assert.Equal(t, int64(32200), b.RoundedTotal())
}

func TestComputeBreakdownWithoutServiceFee(t *testing.T) {
	b := ComputeBreakdown(10000, false, DefaultTaxRate)

	assert.True(t, b.ServiceFee.IsZero())
	assertDecimal(t, "1000", b.Tax)
	assertDecimal(t, "11000", b.Total)
}

func TestComputeBreakdownProperties(t *testing.T) {
	for _, price := range []int64{0, 1, 7, 15, 999, 18000, 45000, 1234567} {
		for _, fee := range []bool{true, false} {
			b := ComputeBreakdown(price, fee, DefaultTaxRate)
			base := decimal.NewFromInt(price)

			wantFee := decimal.Zero
			if fee {
				wantFee = base.Mul(decimal.RequireFromString("0.05"))
			}
			assert.True(t, wantFee.Equal(b.ServiceFee), "fee for %d", price)
			assert.True(t, base.Mul(decimal.RequireFromString("0.10")).Equal(b.Tax), "tax for %d", price)
			assert.True(t, base.Add(b.ServiceFee).Add(b.Tax).Equal(b.Total), "total for %d", price)
			assert.False(t, b.ServiceFee.IsNegative())
			assert.False(t, b.Tax.IsNegative())
			assert.True(t, b.Total.GreaterThanOrEqual(base))
			assert.Equal(t, b, ComputeBreakdown(price, fee, DefaultTaxRate))
		}
	}
}

func TestRoundedTotal(t *testing.T) {
	// 7 + 0.35 + 0.7 = 8.05
	assert.Equal(t, int64(8), ComputeBreakdown(7, true, DefaultTaxRate).RoundedTotal())
	// 15 + 0.75 + 1.5 = 17.25
	assert.Equal(t, int64(17), ComputeBreakdown(15, true, DefaultTaxRate).RoundedTotal())
	// 5 + 0.5 = 5.5
	assert.Equal(t, int64(6), ComputeBreakdown(5, false, DefaultTaxRate).RoundedTotal())
}

func TestBreakdownForMenu(t *testing.T) {
	m := models.Menu{Price: 20000, HasServiceFee: false, TaxRate: DefaultTaxRate}
	b := BreakdownFor(m)
	assert.Equal(t, int64(22000), b.RoundedTotal())
	assert.True(t, b.ServiceFee.IsZero())
}
