package services

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
)

type PayableSvcFacade interface {
	// RecordPayment reduces the customer's payable, creating it at zero first if needed.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, userID string) (*domain.CustomerPayment, *domain.AccountPayable, error)
	GetPayable(ctx context.Context, customerID string) (*domain.AccountPayable, error)
	ListPayables(ctx context.Context, params dto.ListParams) ([]domain.AccountPayable, error)
	ListPayments(ctx context.Context, customerID string) ([]domain.CustomerPayment, error)
}
