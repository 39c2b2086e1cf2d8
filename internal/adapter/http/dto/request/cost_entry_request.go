package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidCostDate = errors.New("invalid cost date")
)

// CostEntryRequest is the payload for creating or replacing a ledger entry.
//
// `total_cost` is intentionally absent: the server derives it from quantity
// and unit cost, and any client-supplied value would be ignored anyway.
type CostEntryRequest struct {
	CostType    string  `json:"cost_type" binding:"required"`
	Subtype     string  `json:"subtype"`
	Description string  `json:"description" binding:"required"`
	Quantity    float64 `json:"quantity" binding:"required"`
	UnitCost    float64 `json:"unit_cost" binding:"required"`
	CostDate    string  `json:"cost_date"`
	Vendor      string  `json:"vendor"`
	MarkupPct   float64 `json:"markup_pct"`
	MarkupType  string  `json:"markup_type"`
	ApprovedBy  string  `json:"approved_by"`
}

// ResolveCostDate parses the optional cost_date field. An empty value means
// "use the server clock" and returns the zero time with no error.
func (r CostEntryRequest) ResolveCostDate() (time.Time, error) {
	v := strings.TrimSpace(r.CostDate)
	if v == "" {
		return time.Time{}, nil
	}
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse("2006-01-02", v); err == nil {
		return ts, nil
	}
	return time.Time{}, ErrInvalidCostDate
}
