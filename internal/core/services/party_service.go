package services

import (
	"context"
	"log/slog"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	portssvc "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/services"
	"github.com/abdulhafizu/HafeezVentures2/internal/dto"
	"github.com/google/uuid"
)

type partyService struct {
	BaseService
	customerRepo portsrepo.CustomerRepositoryFacade
	staffRepo    portsrepo.StaffRepositoryFacade
}

func NewPartyService(customerRepo portsrepo.CustomerRepositoryFacade, staffRepo portsrepo.StaffRepositoryFacade, options ...ServiceOption) portssvc.PartySvcFacade {
	svc := &partyService{
		BaseService:  newBaseService(),
		customerRepo: customerRepo,
		staffRepo:    staffRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error) {
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		Name:        req.Name,
		Email:       optionalRef(req.Email),
		PhoneNumber: req.PhoneNumber,
		Address:     optionalRef(req.Address),
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		s.LogError(ctx, err, "Failed to save customer", slog.String("customer_id", customer.CustomerID))
		return nil, err
	}
	s.LogInfo(ctx, "Customer created", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

func (s *partyService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.customerRepo.FindCustomerByID(ctx, customerID)
}

func (s *partyService) ListCustomers(ctx context.Context, params dto.ListParams) ([]domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list customers")
		return nil, err
	}
	return customers, nil
}

func (s *partyService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest, userID string) (*domain.StaffMember, error) {
	if !req.Role.IsValid() {
		return nil, apperrors.NewFieldError("role", "must be one of manager, operator, packer")
	}
	staff := domain.StaffMember{
		StaffID:     uuid.NewString(),
		Role:        req.Role,
		Name:        req.Name,
		Email:       optionalRef(req.Email),
		PhoneNumber: req.PhoneNumber,
		Address:     optionalRef(req.Address),
		AuditFields: domain.NewAuditFields(userID, s.now()),
	}
	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		s.LogError(ctx, err, "Failed to save staff member", slog.String("staff_id", staff.StaffID))
		return nil, err
	}
	s.LogInfo(ctx, "Staff member created",
		slog.String("staff_id", staff.StaffID),
		slog.String("role", string(staff.Role)))
	return &staff, nil
}

func (s *partyService) GetStaff(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	return s.staffRepo.FindStaffByID(ctx, staffID)
}

func (s *partyService) ListStaff(ctx context.Context, role *domain.StaffRole, params dto.ListParams) ([]domain.StaffMember, error) {
	if role != nil && !role.IsValid() {
		return nil, apperrors.NewFieldError("role", "must be one of manager, operator, packer")
	}
	staff, err := s.staffRepo.ListStaff(ctx, role, params.Limit, params.Offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list staff members")
		return nil, err
	}
	return staff, nil
}
