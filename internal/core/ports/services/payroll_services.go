package services

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
)

type PayrollSvcFacade interface {
	// PaySalary debits the ledger, records the payment and reduces the accrual.
	PaySalary(ctx context.Context, req dto.PaySalaryRequest, userID string) (*dto.PaySalaryResponse, error)
	ListAccruals(ctx context.Context) ([]domain.PayrollAccrual, error)
	ListSalaryPayments(ctx context.Context, params dto.ListParams) ([]domain.SalaryPayment, error)
	SalarySummary(ctx context.Context) ([]domain.RoleSalarySummary, error)
}
