package entities

import "time"

// CostType classifies a ledger entry. The set is closed: unknown values are
// rejected at the ingestion boundary instead of being defaulted.

type CostType string

const (
	CostTypeLabor         CostType = "labor"
	CostTypeMaterial      CostType = "material"
	CostTypeEquipment     CostType = "equipment"
	CostTypeSubcontractor CostType = "subcontractor"
	CostTypeOverhead      CostType = "overhead"
	CostTypeOther         CostType = "other"
)

// CostTypes lists every valid cost type in display order.
var CostTypes = []CostType{
	CostTypeLabor,
	CostTypeMaterial,
	CostTypeEquipment,
	CostTypeSubcontractor,
	CostTypeOverhead,
	CostTypeOther,
}

// Valid reports whether t is one of the closed enum members.
func (t CostType) Valid() bool {
	switch t {
	case CostTypeLabor, CostTypeMaterial, CostTypeEquipment,
		CostTypeSubcontractor, CostTypeOverhead, CostTypeOther:
		return true
	}
	return false
}

// MarkupType qualifies an optional markup applied at billing time.

type MarkupType string

const (
	MarkupTypeFlat   MarkupType = "flat"
	MarkupTypeMargin MarkupType = "margin"
)

// CostEntry is one line of a job's cost ledger, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// TotalCost is derived (Quantity * UnitCost) when the entry is written and
// never accepted from callers.
//
type CostEntry struct {
	ID          string     `json:"id"`
	JobID       string     `json:"job_id"`
	CostType    CostType   `json:"cost_type"`
	Subtype     string     `json:"subtype,omitempty"`
	Description string     `json:"description"`
	Quantity    float64    `json:"quantity"`
	UnitCost    float64    `json:"unit_cost"`
	TotalCost   float64    `json:"total_cost"`
	CostDate    time.Time  `json:"cost_date"`
	Vendor      string     `json:"vendor,omitempty"`
	MarkupPct   float64    `json:"markup_pct,omitempty"`
	MarkupType  MarkupType `json:"markup_type,omitempty"`
	ApprovedBy  string     `json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
