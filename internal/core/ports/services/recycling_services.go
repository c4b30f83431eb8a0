package services

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
)

type RecyclingReaderSvc interface {
	GetOperation(ctx context.Context, operationID string) (*domain.RecyclingOperation, error)
	ListOperations(ctx context.Context, params dto.ListRecyclingOperationsParams) (*dto.ListRecyclingOperationsResponse, error)
}

type RecyclingWriterSvc interface {
	// RecordOperation derives costs, updates payroll accruals and the customer's
	// payable, and stores the operation in one unit of work.
	RecordOperation(ctx context.Context, req dto.CreateRecyclingOperationRequest, userID string) (*domain.RecyclingOutcome, error)
}

type RecyclingSvcFacade interface {
	RecyclingReaderSvc
	RecyclingWriterSvc
}
