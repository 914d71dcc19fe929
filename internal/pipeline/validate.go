package pipeline

import (
	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/models"
)

type ViolationKind string

const (
	ViolationNegativeAmount ViolationKind = "negative_amount"
	ViolationDuplicate      ViolationKind = "duplicate"
)

// Violation names the transactions that break one rule. A duplicate violation
// references every transaction sharing the duplicated (date, amount) key.
type Violation struct {
	Kind           ViolationKind `json:"kind"`
	TransactionIDs []string      `json:"transaction_ids"`
}

type ValidationResult struct {
	Violations []Violation `json:"violations,omitempty"`
}

func (r ValidationResult) OK() bool {
	return len(r.Violations) == 0
}

// FlaggedIDs returns the ids the caller should drop before continuing the
// pipeline: every negative-amount transaction, and every duplicate except the
// first occurrence of its key.
func (r ValidationResult) FlaggedIDs() map[string]bool {
	flagged := make(map[string]bool)
	for _, v := range r.Violations {
		ids := v.TransactionIDs
		if v.Kind == ViolationDuplicate {
			ids = ids[1:]
		}
		for _, id := range ids {
			flagged[id] = true
		}
	}
	return flagged
}

// Validate inspects a batch for negative amounts and duplicate (date, amount)
// keys. It never mutates the batch and reports every violation at once so
// callers can surface all problems together.
func Validate(txns []models.Transaction) ValidationResult {
	var result ValidationResult

	byKey := make(map[string][]string)
	keyOrder := make([]string, 0, len(txns))
	for _, t := range txns {
		if t.Amount.IsNegative() {
			result.Violations = append(result.Violations, Violation{
				Kind:           ViolationNegativeAmount,
				TransactionIDs: []string{t.ID},
			})
		}
		key := t.Key()
		if _, seen := byKey[key]; !seen {
			keyOrder = append(keyOrder, key)
		}
		byKey[key] = append(byKey[key], t.ID)
	}

	for _, key := range keyOrder {
		if ids := byKey[key]; len(ids) > 1 {
			result.Violations = append(result.Violations, Violation{
				Kind:           ViolationDuplicate,
				TransactionIDs: ids,
			})
		}
	}

	return result
}
