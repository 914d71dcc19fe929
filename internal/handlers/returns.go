package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/models"
	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/pipeline"
	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/returns"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

type savingsEntry struct {
	Start      string          `json:"start"`
	End        string          `json:"end"`
	Amount     decimal.Decimal `json:"amount"`
	Nominal    decimal.Decimal `json:"nominal"`
	Profits    decimal.Decimal `json:"profits"`
	TaxBenefit decimal.Decimal `json:"taxBenefit"`
}

type returnsResponse struct {
	TotalTransactionAmount decimal.Decimal `json:"totalTransactionAmount"`
	TotalCeiling           decimal.Decimal `json:"totalCeiling"`
	SavingsByDates         []savingsEntry  `json:"savingsByDates"`
}

// NPSReturns handles POST /returns:nps — National Pension System projection
// with tax benefit.
func (h *Handler) NPSReturns(w http.ResponseWriter, r *http.Request) {
	h.calculateReturns(w, r, models.NPSProfile())
}

// IndexReturns handles POST /returns:index — NIFTY 50 index projection, no
// tax benefit.
func (h *Handler) IndexReturns(w http.ResponseWriter, r *http.Request) {
	h.calculateReturns(w, r, models.IndexFundProfile())
}

func (h *Handler) calculateReturns(w http.ResponseWriter, r *http.Request, profile models.ProductProfile) {
	var req models.ReturnsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Age <= 0 {
		writeError(w, http.StatusBadRequest, "age must be positive")
		return
	}
	if req.Wage.IsNegative() {
		writeError(w, http.StatusBadRequest, "wage must not be negative")
		return
	}
	if req.Inflation.IsNegative() {
		writeError(w, http.StatusBadRequest, "inflation must not be negative")
		return
	}

	// Inflation arrives as a percentage.
	profile = profile.WithInflation(req.Inflation.Div(hundred))

	txns := pipeline.Enrich(models.EnsureIDs(req.Transactions))
	result := pipeline.Validate(txns)
	flagged := result.FlaggedIDs()
	if len(flagged) > 0 {
		h.log.Warn().Int("dropped", len(flagged)).Msg("skipping invalid transactions")
	}

	valid := []models.Transaction{}
	totalAmount := decimal.Zero
	totalCeiling := decimal.Zero
	for _, t := range txns {
		if flagged[t.ID] {
			continue
		}
		valid = append(valid, t)
		totalAmount = totalAmount.Add(t.Amount)
		totalCeiling = totalCeiling.Add(t.Ceiling)
	}

	applied, err := pipeline.ApplyPeriods(valid, models.CollectPeriods(req.Q, req.P, req.K))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	horizon := returns.HorizonFromAge(req.Age, h.cfg.RetirementAge, h.cfg.MinHorizonYears)
	annualIncome := req.Wage.Mul(twelve)
	projector := returns.NewProjector(profile)

	entries := []savingsEntry{}
	if len(req.K) > 0 {
		for _, kp := range req.K {
			period := models.Period{Kind: models.PeriodEvaluation, Start: kp.Start, End: kp.End}
			proj, err := projector.Project(applied.Groups[period.GroupID()], horizon, annualIncome)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			entries = append(entries, newSavingsEntry(kp.Start, kp.End, proj))
		}
	} else if len(applied.Transactions) > 0 {
		start, end := dateSpan(applied.Transactions)
		proj, err := projector.Project(applied.Transactions, horizon, annualIncome)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		entries = append(entries, newSavingsEntry(start, end, proj))
	}

	h.log.Info().
		Str("profile", profile.Name).
		Int("years", horizon.Years).
		Int("transactions", len(valid)).
		Int("groups", len(entries)).
		Msg("calculated returns")

	writeJSON(w, http.StatusOK, returnsResponse{
		TotalTransactionAmount: totalAmount.Round(2),
		TotalCeiling:           totalCeiling.Round(2),
		SavingsByDates:         entries,
	})
}

func newSavingsEntry(start, end models.Date, proj returns.Projection) savingsEntry {
	return savingsEntry{
		Start:      start.String(),
		End:        end.String(),
		Amount:     proj.Contributions,
		Nominal:    proj.NominalValue,
		Profits:    proj.InflationAdjustedValue.Sub(proj.Contributions),
		TaxBenefit: proj.TaxBenefit,
	}
}

func dateSpan(txns []models.Transaction) (models.Date, models.Date) {
	start, end := txns[0].Date, txns[0].Date
	for _, t := range txns[1:] {
		if t.Date.Before(start.Time) {
			start = t.Date
		}
		if t.Date.After(end.Time) {
			end = t.Date
		}
	}
	return start, end
}
