package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. It marshals as an
// ISO-8601 date string.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected %s", s, dateLayout)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid date %s: expected a quoted %s string", data, dateLayout)
	}
	parsed, err := ParseDate(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Transaction is the canonical pipeline record. Ceiling and Remnant are
// derived by the enrichment stage; until then they are zero.
type Transaction struct {
	ID       string          `json:"id,omitempty"`
	Date     Date            `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category,omitempty"`
	Ceiling  decimal.Decimal `json:"ceiling"`
	Remnant  decimal.Decimal `json:"remnant"`
}

// Key is the business identity of a transaction, used for duplicate
// detection. Two transactions with the same date and amount are duplicates
// regardless of their ids.
func (t Transaction) Key() string {
	return t.Date.String() + "|" + t.Amount.String()
}

// EnsureIDs assigns a UUID to every transaction the client submitted without
// an id, so that validation violations can always name a transaction.
func EnsureIDs(txns []Transaction) []Transaction {
	out := make([]Transaction, len(txns))
	for i, t := range txns {
		if t.ID == "" {
			t.ID = uuid.New().String()
		}
		out[i] = t
	}
	return out
}
