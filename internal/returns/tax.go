package returns

import (
	"github.com/shopspring/decimal"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/models"
)

// Simplified Indian new-regime slabs: nothing up to 7L, then 10% to 10L,
// 15% to 12L, 20% to 15L, and 30% above.
var slabs = []struct {
	upTo decimal.Decimal
	rate decimal.Decimal
}{
	{decimal.NewFromInt(700000), decimal.Zero},
	{decimal.NewFromInt(1000000), decimal.NewFromFloat(0.10)},
	{decimal.NewFromInt(1200000), decimal.NewFromFloat(0.15)},
	{decimal.NewFromInt(1500000), decimal.NewFromFloat(0.20)},
}

var topSlabRate = decimal.NewFromFloat(0.30)

// slabTax computes income tax under the simplified slab table.
func slabTax(income decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, s := range slabs {
		if income.LessThanOrEqual(s.upTo) {
			return tax.Add(income.Sub(lower).Mul(s.rate))
		}
		tax = tax.Add(s.upTo.Sub(lower).Mul(s.rate))
		lower = s.upTo
	}
	return tax.Add(income.Sub(lower).Mul(topSlabRate))
}

// taxBenefit is the tax saved by deducting the pension contributions: the
// deduction is the lesser of the contributions, the profile's wage fraction
// of annual income, and the profile's hard cap.
func taxBenefit(contributions, annualIncome decimal.Decimal, p models.ProductProfile) decimal.Decimal {
	deduction := contributions
	if wageCap := annualIncome.Mul(p.WageDeductionFraction); wageCap.LessThan(deduction) {
		deduction = wageCap
	}
	if p.DeductionCap.LessThan(deduction) {
		deduction = p.DeductionCap
	}
	if deduction.IsNegative() {
		return decimal.Zero
	}
	return slabTax(annualIncome).Sub(slabTax(annualIncome.Sub(deduction)))
}
