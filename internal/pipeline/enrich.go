package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/models"
)

var hundred = decimal.NewFromInt(100)

// Enrich derives ceiling and remnant for every transaction: the ceiling is
// the amount rounded up to the nearest multiple of 100, the remnant is the
// gap between the two. The input slice is not mutated. Negative amounts still
// enrich to a mathematically valid ceiling; rejecting them is Validate's job.
func Enrich(txns []models.Transaction) []models.Transaction {
	out := make([]models.Transaction, len(txns))
	for i, t := range txns {
		t.Ceiling = t.Amount.Div(hundred).Ceil().Mul(hundred)
		t.Remnant = t.Ceiling.Sub(t.Amount)
		out[i] = t
	}
	return out
}
