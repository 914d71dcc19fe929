package models

import "github.com/shopspring/decimal"

// ProductProfile is the immutable configuration of one investment product.
// Rates are decimal fractions (0.0711 for 7.11%), never percentages.
type ProductProfile struct {
	Name              string
	AnnualRate        decimal.Decimal
	CompoundsPerYear  int
	InflationRate     decimal.Decimal
	TaxBenefitEnabled bool

	// Tax-benefit parameters, only consulted when TaxBenefitEnabled is set.
	// The deduction is capped at the lesser of DeductionCap and
	// WageDeductionFraction of annual income.
	DeductionCap          decimal.Decimal
	WageDeductionFraction decimal.Decimal
}

// NPSProfile returns the National Pension System preset: 7.11% annual return
// compounded monthly, with the section 80CCD style deduction benefit.
func NPSProfile() ProductProfile {
	return ProductProfile{
		Name:                  "nps",
		AnnualRate:            decimal.NewFromFloat(0.0711),
		CompoundsPerYear:      12,
		TaxBenefitEnabled:     true,
		DeductionCap:          decimal.NewFromInt(200000),
		WageDeductionFraction: decimal.NewFromFloat(0.10),
	}
}

// IndexFundProfile returns the NIFTY 50 index preset: 14.49% annual return
// compounded monthly, no tax benefit.
func IndexFundProfile() ProductProfile {
	return ProductProfile{
		Name:             "index",
		AnnualRate:       decimal.NewFromFloat(0.1449),
		CompoundsPerYear: 12,
	}
}

// WithInflation returns a copy of the profile carrying the request's
// inflation rate as a decimal fraction.
func (p ProductProfile) WithInflation(rate decimal.Decimal) ProductProfile {
	p.InflationRate = rate
	return p
}
