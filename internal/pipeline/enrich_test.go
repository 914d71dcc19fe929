package pipeline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/models"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(id string, date models.Date, amount string) models.Transaction {
	return models.Transaction{ID: id, Date: date, Amount: dec(amount)}
}

var (
	jan5 = models.NewDate(2024, time.January, 5)
	feb5 = models.NewDate(2024, time.February, 5)
	mar5 = models.NewDate(2024, time.March, 5)
)

func TestEnrich(t *testing.T) {
	cases := []struct {
		amount  string
		ceiling string
		remnant string
	}{
		{"1230", "1300", "70"},
		{"980", "1000", "20"},
		{"100", "100", "0"},
		{"0", "0", "0"},
		{"1234.56", "1300", "65.44"},
		{"0.01", "100", "99.99"},
		{"-50", "0", "50"},
		{"-150", "-100", "50"},
	}

	for _, tc := range cases {
		got := Enrich([]models.Transaction{txn("t1", jan5, tc.amount)})[0]
		if !got.Ceiling.Equal(dec(tc.ceiling)) {
			t.Fatalf("Enrich(%s) ceiling = %s, want %s", tc.amount, got.Ceiling, tc.ceiling)
		}
		if !got.Remnant.Equal(dec(tc.remnant)) {
			t.Fatalf("Enrich(%s) remnant = %s, want %s", tc.amount, got.Remnant, tc.remnant)
		}
	}
}

func TestEnrichCeilingProperties(t *testing.T) {
	amounts := []string{"0", "1", "99.99", "100", "100.01", "250", "1230", "99999.95"}

	for _, amount := range amounts {
		got := Enrich([]models.Transaction{txn("t1", jan5, amount)})[0]
		if got.Ceiling.LessThan(got.Amount) {
			t.Fatalf("ceiling %s < amount %s", got.Ceiling, got.Amount)
		}
		if !got.Ceiling.Sub(got.Amount).Equal(got.Remnant) {
			t.Fatalf("remnant %s != ceiling %s - amount %s", got.Remnant, got.Ceiling, got.Amount)
		}
		if !got.Ceiling.Mod(decimal.NewFromInt(100)).IsZero() {
			t.Fatalf("ceiling %s is not a multiple of 100", got.Ceiling)
		}
	}
}

func TestEnrichDoesNotMutateInput(t *testing.T) {
	in := []models.Transaction{txn("t1", jan5, "1230")}
	Enrich(in)
	if !in[0].Ceiling.IsZero() || !in[0].Remnant.IsZero() {
		t.Fatalf("input mutated: %+v", in[0])
	}
}
