package services

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
)

// PartySvcFacade manages customers and staff members.
type PartySvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, params dto.ListParams) ([]domain.Customer, error)

	CreateStaff(ctx context.Context, req dto.CreateStaffRequest, userID string) (*domain.StaffMember, error)
	GetStaff(ctx context.Context, staffID string) (*domain.StaffMember, error)
	ListStaff(ctx context.Context, role *domain.StaffRole, params dto.ListParams) ([]domain.StaffMember, error)
}
