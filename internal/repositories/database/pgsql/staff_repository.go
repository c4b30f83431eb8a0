package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/abdulhafizu/HafeezVentures2/internal/apperrors"
	"github.com/abdulhafizu/HafeezVentures2/internal/core/domain"
	portsrepo "github.com/abdulhafizu/HafeezVentures2/internal/core/ports/repositories"
	"github.com/abdulhafizu/HafeezVentures2/internal/models"
	"github.com/abdulhafizu/HafeezVentures2/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxStaffRepository struct {
	pool *pgxpool.Pool
}

func newPgxStaffRepository(pool *pgxpool.Pool) portsrepo.StaffRepositoryFacade {
	return &PgxStaffRepository{pool: pool}
}

var _ portsrepo.StaffRepositoryFacade = (*PgxStaffRepository)(nil)

const staffColumns = `staff_id, role, name, email, phone_number, address, created_at, created_by, last_updated_at, last_updated_by`

func scanStaffMember(row pgx.Row) (*domain.StaffMember, error) {
	var m models.StaffMember
	if err := row.Scan(
		&m.StaffID,
		&m.Role,
		&m.Name,
		&m.Email,
		&m.PhoneNumber,
		&m.Address,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	s := mapping.ToDomainStaffMember(m)
	return &s, nil
}

func (r *PgxStaffRepository) SaveStaff(ctx context.Context, staff domain.StaffMember) error {
	m := mapping.ToModelStaffMember(staff)
	query := `
		INSERT INTO staff_members (staff_id, role, name, email, phone_number, address, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.StaffID,
		m.Role,
		m.Name,
		m.Email,
		m.PhoneNumber,
		m.Address,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: staff member %s already exists", apperrors.ErrDuplicate, m.StaffID)
		}
		return fmt.Errorf("failed to save staff member %s: %w", m.StaffID, err)
	}
	return nil
}

func (r *PgxStaffRepository) FindStaffByID(ctx context.Context, staffID string) (*domain.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members WHERE staff_id = $1;`
	s, err := scanStaffMember(r.pool.QueryRow(ctx, query, staffID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find staff member %s: %w", staffID, err)
	}
	return s, nil
}

// ListStaff returns staff ordered by name, optionally restricted to one role.
func (r *PgxStaffRepository) ListStaff(ctx context.Context, role *domain.StaffRole, limit int, offset int) ([]domain.StaffMember, error) {
	var roleFilter *string
	if role != nil {
		s := string(*role)
		roleFilter = &s
	}
	query := `
		SELECT ` + staffColumns + `
		FROM staff_members
		WHERE ($1::text IS NULL OR role = $1)
		ORDER BY name, staff_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, roleFilter, defaultLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff members: %w", err)
	}
	defer rows.Close()

	staff := []domain.StaffMember{}
	for rows.Next() {
		s, err := scanStaffMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff member row: %w", err)
		}
		staff = append(staff, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff member rows: %w", err)
	}
	return staff, nil
}
