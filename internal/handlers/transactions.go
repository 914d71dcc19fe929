package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/models"
	"github.com/yashmarathe21/blk-hacking-ind-retirement-yash-marathe/internal/pipeline"
)

const (
	msgNegativeAmount = "Negative amounts are not allowed"
	msgDuplicate      = "Duplicate transaction"
)

// invalidTransaction is a rejected transaction echoed back with the reasons
// it was rejected.
type invalidTransaction struct {
	models.Transaction
	Message string `json:"message"`
}

// filteredTransaction is an adjusted transaction plus its evaluation-period
// membership flag.
type filteredTransaction struct {
	models.Transaction
	InKPeriod bool `json:"inKPeriod"`
}

// ParseTransactions handles POST /transactions:parse — enrich a raw batch
// with ceiling and remnant.
func (h *Handler) ParseTransactions(w http.ResponseWriter, r *http.Request) {
	var txns []models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&txns); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	enriched := pipeline.Enrich(models.EnsureIDs(txns))
	h.log.Debug().Int("count", len(enriched)).Msg("enriched transactions")
	writeJSON(w, http.StatusOK, enriched)
}

// ValidateTransactions handles POST /transactions:validator — split a batch
// into valid and invalid transactions, reporting every violation at once.
func (h *Handler) ValidateTransactions(w http.ResponseWriter, r *http.Request) {
	var req models.ValidatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txns := pipeline.Enrich(models.EnsureIDs(req.Transactions))
	result := pipeline.Validate(txns)
	messages := violationMessages(result)

	valid := []models.Transaction{}
	invalid := []invalidTransaction{}
	for _, t := range txns {
		if msgs, ok := messages[t.ID]; ok {
			invalid = append(invalid, invalidTransaction{Transaction: t, Message: strings.Join(msgs, "; ")})
			continue
		}
		valid = append(valid, t)
	}

	h.log.Info().Int("valid", len(valid)).Int("invalid", len(invalid)).Msg("validated transactions")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":   valid,
		"invalid": invalid,
	})
}

// FilterTransactions handles POST /transactions:filter — enrich, validate,
// apply the period rules, and drop transactions left with no remnant.
func (h *Handler) FilterTransactions(w http.ResponseWriter, r *http.Request) {
	var req models.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txns := pipeline.Enrich(models.EnsureIDs(req.Transactions))
	result := pipeline.Validate(txns)
	messages := violationMessages(result)

	kept := []models.Transaction{}
	invalid := []invalidTransaction{}
	for _, t := range txns {
		if msgs, ok := messages[t.ID]; ok {
			invalid = append(invalid, invalidTransaction{Transaction: t, Message: strings.Join(msgs, "; ")})
			continue
		}
		kept = append(kept, t)
	}

	applied, err := pipeline.ApplyPeriods(kept, models.CollectPeriods(req.Q, req.P, req.K))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	inK := make(map[string]bool)
	for groupID, group := range applied.Groups {
		if groupID == pipeline.UngroupedID {
			continue
		}
		for _, t := range group {
			inK[t.ID] = true
		}
	}

	valid := []filteredTransaction{}
	for _, t := range applied.Transactions {
		if !t.Remnant.IsPositive() {
			continue
		}
		valid = append(valid, filteredTransaction{Transaction: t, InKPeriod: inK[t.ID]})
	}

	h.log.Info().Int("valid", len(valid)).Int("invalid", len(invalid)).Msg("filtered transactions")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"valid":   valid,
		"invalid": invalid,
	})
}

// violationMessages maps each offending transaction id to its rejection
// messages. The first occurrence of a duplicated key stays valid; only the
// repeats are flagged.
func violationMessages(result pipeline.ValidationResult) map[string][]string {
	messages := make(map[string][]string)
	for _, v := range result.Violations {
		switch v.Kind {
		case pipeline.ViolationNegativeAmount:
			for _, id := range v.TransactionIDs {
				messages[id] = append(messages[id], msgNegativeAmount)
			}
		case pipeline.ViolationDuplicate:
			for _, id := range v.TransactionIDs[1:] {
				messages[id] = append(messages[id], msgDuplicate)
			}
		}
	}
	return messages
}
