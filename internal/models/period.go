package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// PeriodKind tags the three period rule variants. The kind drives which
// fields are meaningful and how the rule engine treats the period.
type PeriodKind string

const (
	// PeriodOverride (q) replaces the remnant with a fixed value.
	PeriodOverride PeriodKind = "q"
	// PeriodBonus (p) adds a bonus to the remnant.
	PeriodBonus PeriodKind = "p"
	// PeriodEvaluation (k) groups transactions for separate projection.
	PeriodEvaluation PeriodKind = "k"
)

var (
	ErrPeriodRange    = errors.New("period start is after end")
	ErrPeriodKind     = errors.New("unrecognized period kind")
	ErrPeriodNegative = errors.New("period value must not be negative")
)

// Period is one rule over a closed date interval. Value carries the fixed
// replacement remnant for override periods and the bonus amount for bonus
// periods; evaluation periods have no value.
type Period struct {
	Kind  PeriodKind
	Start Date
	End   Date
	Value decimal.Decimal
}

// Contains reports whether d falls inside the period's inclusive interval.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start.Time) && !d.After(p.End.Time)
}

func (p Period) Validate() error {
	switch p.Kind {
	case PeriodOverride, PeriodBonus, PeriodEvaluation:
	default:
		return fmt.Errorf("period %q: %w", p.Kind, ErrPeriodKind)
	}
	if p.Start.After(p.End.Time) {
		return fmt.Errorf("period %s..%s: %w", p.Start, p.End, ErrPeriodRange)
	}
	if p.Value.IsNegative() {
		return fmt.Errorf("period %s..%s: %w", p.Start, p.End, ErrPeriodNegative)
	}
	return nil
}

// GroupID labels the evaluation group an evaluation period defines.
func (p Period) GroupID() string {
	return p.Start.String() + ".." + p.End.String()
}

// OverridePeriod is the wire shape of a q period.
type OverridePeriod struct {
	Fixed decimal.Decimal `json:"fixed"`
	Start Date            `json:"start"`
	End   Date            `json:"end"`
}

// BonusPeriod is the wire shape of a p period.
type BonusPeriod struct {
	Extra decimal.Decimal `json:"extra"`
	Start Date            `json:"start"`
	End   Date            `json:"end"`
}

// EvaluationPeriod is the wire shape of a k period.
type EvaluationPeriod struct {
	Start Date `json:"start"`
	End   Date `json:"end"`
}

// CollectPeriods normalizes the three request lists into the period sum type,
// preserving declaration order within each kind. Declaration order matters:
// overlapping override periods resolve to the last one declared.
func CollectPeriods(q []OverridePeriod, p []BonusPeriod, k []EvaluationPeriod) []Period {
	periods := make([]Period, 0, len(q)+len(p)+len(k))
	for _, op := range q {
		periods = append(periods, Period{Kind: PeriodOverride, Start: op.Start, End: op.End, Value: op.Fixed})
	}
	for _, bp := range p {
		periods = append(periods, Period{Kind: PeriodBonus, Start: bp.Start, End: bp.End, Value: bp.Extra})
	}
	for _, ep := range k {
		periods = append(periods, Period{Kind: PeriodEvaluation, Start: ep.Start, End: ep.End})
	}
	return periods
}
