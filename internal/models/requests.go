package models

import "github.com/shopspring/decimal"

// ValidatorRequest is the body of POST /transactions:validator.
type ValidatorRequest struct {
	Wage         decimal.Decimal `json:"wage"`
	Transactions []Transaction   `json:"transactions"`
}

// FilterRequest is the body of POST /transactions:filter.
type FilterRequest struct {
	Q            []OverridePeriod   `json:"q"`
	P            []BonusPeriod      `json:"p"`
	K            []EvaluationPeriod `json:"k"`
	Transactions []Transaction      `json:"transactions"`
}

// ReturnsRequest is the body of the returns endpoints. Inflation arrives as a
// percentage (5.5 means 5.5%) and is converted at the handler boundary.
type ReturnsRequest struct {
	Age          int                `json:"age"`
	Wage         decimal.Decimal    `json:"wage"`
	Inflation    decimal.Decimal    `json:"inflation"`
	Q            []OverridePeriod   `json:"q"`
	P            []BonusPeriod      `json:"p"`
	K            []EvaluationPeriod `json:"k"`
	Transactions []Transaction      `json:"transactions"`
}
