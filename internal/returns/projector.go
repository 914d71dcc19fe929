package returns

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/models"
)

var (
	ErrNonPositiveRate = errors.New("annual rate must be positive")
	ErrCompounding     = errors.New("compounding frequency must be positive")
	ErrInflation       = errors.New("inflation rate must be greater than -100%")
	ErrHorizon         = errors.New("projection horizon must be at least one year")
)

var one = decimal.NewFromInt(1)

// Horizon is the projection span in whole years.
type Horizon struct {
	Years int
}

// Projection is the outcome of compounding one contribution stream forward.
// TaxBenefit stays zero unless the product profile enables it.
type Projection struct {
	Contributions          decimal.Decimal `json:"contributions"`
	NominalValue           decimal.Decimal `json:"nominalValue"`
	InflationAdjustedValue decimal.Decimal `json:"inflationAdjustedValue"`
	TaxBenefit             decimal.Decimal `json:"taxBenefit"`
}

// Projector computes compound-interest projections for one product profile.
type Projector struct {
	Profile models.ProductProfile
}

func NewProjector(profile models.ProductProfile) Projector {
	return Projector{Profile: profile}
}

// Project compounds the remnant of every transaction forward over the
// horizon. The nominal value applies the periodic rate annualRate/n over n
// times the horizon years; the inflation-adjusted value compounds the same
// stream at the periodic real rate (1+nominal)/(1+inflation)-1. An empty
// stream projects to zero; an invalid rate or horizon is a domain error.
func (pr Projector) Project(txns []models.Transaction, horizon Horizon, annualIncome decimal.Decimal) (Projection, error) {
	p := pr.Profile
	if !p.AnnualRate.IsPositive() {
		return Projection{}, ErrNonPositiveRate
	}
	if p.CompoundsPerYear <= 0 {
		return Projection{}, ErrCompounding
	}
	if p.InflationRate.LessThanOrEqual(one.Neg()) {
		return Projection{}, ErrInflation
	}
	if horizon.Years <= 0 {
		return Projection{}, ErrHorizon
	}

	contributions := decimal.Zero
	for _, t := range txns {
		contributions = contributions.Add(t.Remnant)
	}

	n := decimal.NewFromInt(int64(p.CompoundsPerYear))
	periods := int32(p.CompoundsPerYear * horizon.Years)

	growth := one.Add(p.AnnualRate.Div(n)).Pow(decimal.NewFromInt32(periods))
	realRatio := one.Add(p.AnnualRate.Div(n)).Div(one.Add(p.InflationRate.Div(n)))
	realGrowth := realRatio.Pow(decimal.NewFromInt32(periods))

	projection := Projection{
		Contributions:          contributions.Round(2),
		NominalValue:           contributions.Mul(growth).Round(2),
		InflationAdjustedValue: contributions.Mul(realGrowth).Round(2),
		TaxBenefit:             decimal.Zero,
	}
	if p.TaxBenefitEnabled && contributions.IsPositive() {
		projection.TaxBenefit = taxBenefit(contributions, annualIncome, p).Round(2)
	}
	return projection, nil
}

// HorizonFromAge derives the projection span from the saver's age: years to
// the retirement age, or the minimum span for savers already at or past it.
func HorizonFromAge(age, retirementAge, minYears int) Horizon {
	if age < retirementAge {
		return Horizon{Years: retirementAge - age}
	}
	return Horizon{Years: minYears}
}
