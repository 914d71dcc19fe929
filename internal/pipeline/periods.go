package pipeline

import (
	"errors"
	"fmt"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/models"
)

// UngroupedID is the evaluation group holding transactions outside every
// k period.
const UngroupedID = "ungrouped"

var ErrEvaluationOverlap = errors.New("transaction falls in more than one evaluation period")

// Applied is the output of the period rule engine: the full adjusted
// transaction list, plus the evaluation grouping over the same transactions.
type Applied struct {
	Transactions []models.Transaction
	Groups       map[string][]models.Transaction
}

// ApplyPeriods runs the period rules over enriched transactions in the fixed
// order q, then p, then k:
//
//   - q (override): the remnant is replaced by the period's value. When
//     several q periods cover the same date, the one declared last in the
//     request wins.
//   - p (bonus): every covering p period adds its value to the remnant, on
//     top of any q override. Overlapping bonuses are additive.
//   - k (evaluation): the remnant is untouched; transactions are partitioned
//     into one group per k period, with an "ungrouped" bucket for the rest.
//     A transaction covered by two k periods is a conflict, not a pick.
//
// Any invalid period aborts the whole call before a single rule is applied.
func ApplyPeriods(txns []models.Transaction, periods []models.Period) (Applied, error) {
	var overrides, bonuses, evaluations []models.Period
	for _, p := range periods {
		if err := p.Validate(); err != nil {
			return Applied{}, err
		}
		switch p.Kind {
		case models.PeriodOverride:
			overrides = append(overrides, p)
		case models.PeriodBonus:
			bonuses = append(bonuses, p)
		case models.PeriodEvaluation:
			evaluations = append(evaluations, p)
		}
	}

	applied := Applied{
		Transactions: make([]models.Transaction, len(txns)),
		Groups:       make(map[string][]models.Transaction),
	}
	for _, p := range evaluations {
		applied.Groups[p.GroupID()] = []models.Transaction{}
	}

	for i, t := range txns {
		for _, p := range overrides {
			if p.Contains(t.Date) {
				t.Remnant = p.Value
			}
		}
		for _, p := range bonuses {
			if p.Contains(t.Date) {
				t.Remnant = t.Remnant.Add(p.Value)
			}
		}

		groupID := UngroupedID
		matched := 0
		for _, p := range evaluations {
			if p.Contains(t.Date) {
				matched++
				if matched > 1 {
					return Applied{}, fmt.Errorf("transaction %s on %s: %w", t.ID, t.Date, ErrEvaluationOverlap)
				}
				groupID = p.GroupID()
			}
		}

		applied.Transactions[i] = t
		applied.Groups[groupID] = append(applied.Groups[groupID], t)
	}

	return applied, nil
}
