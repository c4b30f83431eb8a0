package repositories

import (
	"context"

	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
)

type CustomerReader interface {
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}

type CustomerWriter interface {
	SaveCustomer(ctx context.Context, customer domain.Customer) error
}

type CustomerRepositoryFacade interface {
	CustomerReader
	CustomerWriter
}

type StaffReader interface {
	FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error)
	ListStaff(ctx context.Context, role *domain.StaffRole, limit int, offset int) ([]domain.StaffMember, error)
}

type StaffWriter interface {
	SaveStaff(ctx context.Context, staff domain.StaffMember) error
}

type StaffRepositoryFacade interface {
	StaffReader
	StaffWriter
}

// IntakeReader defines read operations for material intakes.
type IntakeReader interface {
	FindIntakeByID(ctx context.Context, intakeID string) (*domain.MaterialIntake, error)

	// FindIntakeBySerial returns ErrNotFound when no intake carries the serial.
	FindIntakeBySerial(ctx context.Context, serial string) (*domain.MaterialIntake, error)

	ListIntakes(ctx context.Context, limit int, offset int) ([]domain.MaterialIntake, error)
}

// IntakeWriter defines write operations for material intakes.
type IntakeWriter interface {
	// SaveIntake inserts the intake. A serial collision returns ErrDuplicate.
	SaveIntake(ctx context.Context, intake domain.MaterialIntake) error
}

type IntakeRepositoryFacade interface {
	IntakeReader
	IntakeWriter
}
