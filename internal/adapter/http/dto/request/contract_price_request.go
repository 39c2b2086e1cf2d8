package request

// ContractPriceRequest sets an explicit contract price on a job.
type ContractPriceRequest struct {
	ContractPrice float64 `json:"contract_price" binding:"required"`
}
