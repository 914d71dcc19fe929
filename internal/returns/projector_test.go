package returns

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func contribution(date models.Date, remnant string) models.Transaction {
	return models.Transaction{Date: date, Remnant: dec(remnant)}
}

var (
	jan5 = models.NewDate(2024, time.January, 5)
	feb5 = models.NewDate(2024, time.February, 5)
)

func TestProjectPensionSchemeScenario(t *testing.T) {
	// Transactions 1230 and 980 enrich to remnants 70 and 20; the 90 total
	// compounds monthly at 7.11% for one year and is discounted at 5%
	// inflation through the periodic real rate.
	profile := models.NPSProfile().WithInflation(dec("0.05"))
	projector := NewProjector(profile)

	proj, err := projector.Project([]models.Transaction{
		contribution(jan5, "70"),
		contribution(feb5, "20"),
	}, Horizon{Years: 1}, dec("1200000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !proj.Contributions.Equal(dec("90")) {
		t.Fatalf("contributions = %s, want 90", proj.Contributions)
	}
	if !proj.NominalValue.Equal(dec("96.61")) {
		t.Fatalf("nominal = %s, want 96.61", proj.NominalValue)
	}
	if !proj.InflationAdjustedValue.Equal(dec("91.91")) {
		t.Fatalf("inflation adjusted = %s, want 91.91", proj.InflationAdjustedValue)
	}
	// Deduction is the full 90 contribution; the saved tax is 15% of it.
	if !proj.TaxBenefit.Equal(dec("13.5")) {
		t.Fatalf("tax benefit = %s, want 13.5", proj.TaxBenefit)
	}
}

func TestProjectEmptyStreamIsZero(t *testing.T) {
	projector := NewProjector(models.NPSProfile())

	proj, err := projector.Project(nil, Horizon{Years: 10}, dec("1200000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !proj.NominalValue.IsZero() || !proj.InflationAdjustedValue.IsZero() || !proj.TaxBenefit.IsZero() {
		t.Fatalf("expected zero projection, got %+v", proj)
	}
}

func TestProjectDomainErrors(t *testing.T) {
	txns := []models.Transaction{contribution(jan5, "70")}

	cases := []struct {
		name    string
		profile models.ProductProfile
		horizon Horizon
		want    error
	}{
		{
			name: "zero rate",
			profile: models.ProductProfile{
				AnnualRate:       decimal.Zero,
				CompoundsPerYear: 12,
			},
			horizon: Horizon{Years: 10},
			want:    ErrNonPositiveRate,
		},
		{
			name: "negative rate",
			profile: models.ProductProfile{
				AnnualRate:       dec("-0.05"),
				CompoundsPerYear: 12,
			},
			horizon: Horizon{Years: 10},
			want:    ErrNonPositiveRate,
		},
		{
			name: "zero compounding frequency",
			profile: models.ProductProfile{
				AnnualRate: dec("0.0711"),
			},
			horizon: Horizon{Years: 10},
			want:    ErrCompounding,
		},
		{
			name:    "zero horizon",
			profile: models.NPSProfile(),
			horizon: Horizon{},
			want:    ErrHorizon,
		},
		{
			name:    "inflation at -100%",
			profile: models.NPSProfile().WithInflation(dec("-1")),
			horizon: Horizon{Years: 10},
			want:    ErrInflation,
		},
	}

	for _, tc := range cases {
		_, err := NewProjector(tc.profile).Project(txns, tc.horizon, dec("1200000"))
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestProjectNominalGrowsWithRate(t *testing.T) {
	txns := []models.Transaction{contribution(jan5, "1000")}
	horizon := Horizon{Years: 10}

	base := models.ProductProfile{CompoundsPerYear: 12}

	low := base
	low.AnnualRate = dec("0.05")
	high := base
	high.AnnualRate = dec("0.10")

	lowProj, err := NewProjector(low).Project(txns, horizon, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	highProj, err := NewProjector(high).Project(txns, horizon, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !highProj.NominalValue.GreaterThan(lowProj.NominalValue) {
		t.Fatalf("nominal at 10%% (%s) not greater than at 5%% (%s)", highProj.NominalValue, lowProj.NominalValue)
	}
	if !lowProj.NominalValue.Equal(dec("1647.01")) {
		t.Fatalf("nominal at 5%% = %s, want 1647.01", lowProj.NominalValue)
	}
	if !highProj.NominalValue.Equal(dec("2707.04")) {
		t.Fatalf("nominal at 10%% = %s, want 2707.04", highProj.NominalValue)
	}
}

func TestProjectIndexFundNeverHasTaxBenefit(t *testing.T) {
	profile := models.IndexFundProfile().WithInflation(dec("0.05"))
	projector := NewProjector(profile)

	proj, err := projector.Project([]models.Transaction{
		contribution(jan5, "500000"),
	}, Horizon{Years: 20}, dec("5000000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !proj.TaxBenefit.IsZero() {
		t.Fatalf("tax benefit = %s, want 0 for the index profile", proj.TaxBenefit)
	}
}

func TestProjectZeroInflationMatchesNominal(t *testing.T) {
	profile := models.NPSProfile()
	projector := NewProjector(profile)

	proj, err := projector.Project([]models.Transaction{
		contribution(jan5, "90"),
	}, Horizon{Years: 1}, decimal.Zero)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !proj.InflationAdjustedValue.Equal(proj.NominalValue) {
		t.Fatalf("inflation adjusted %s != nominal %s at zero inflation", proj.InflationAdjustedValue, proj.NominalValue)
	}
}

func TestHorizonFromAge(t *testing.T) {
	cases := []struct {
		age  int
		want int
	}{
		{25, 35},
		{59, 1},
		{60, 5},
		{70, 5},
	}

	for _, tc := range cases {
		if got := HorizonFromAge(tc.age, 60, 5); got.Years != tc.want {
			t.Fatalf("HorizonFromAge(%d) = %d, want %d", tc.age, got.Years, tc.want)
		}
	}
}
