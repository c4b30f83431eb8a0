package dto

import (
	"time"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecyclingOperationRequest is the input of the recycling workflow.
// Every reference is optional; rate and materialUsed are checked by the service.
type CreateRecyclingOperationRequest struct {
	MeterReadingID *string          `json:"meterReadingID"`
	IntakeID       *string          `json:"intakeID"`
	MaterialUsed   *decimal.Decimal `json:"materialUsed"`
	Bangori        *decimal.Decimal `json:"bangori"`
	Rate           *decimal.Decimal `json:"rate"`
	ManagerID      *string          `json:"managerID"`
	OperatorID     *string          `json:"operatorID"`
	PackerID       *string          `json:"packerID"`
	Date           *time.Time       `json:"date"`
}

// ListRecyclingOperationsParams defines token-based pagination for operations.
type ListRecyclingOperationsParams struct {
	Limit     int    `form:"limit,default=20" binding:"min=0,max=200"`
	NextToken string `form:"nextToken"`
}

type ListRecyclingOperationsResponse struct {
	Operations []domain.RecyclingOperation `json:"operations"`
	NextToken  *string                     `json:"nextToken,omitempty"`
}
