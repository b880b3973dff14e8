package employee

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"lbc/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
  id, name, surname, fiscal_number, fiscal_number_country, social_number,
  date_of_birth, employment_type, employee_role, hire_date, termination_date,
  salary_base, manager_id, is_active, created_at, updated_at`

func (s *Store) Insert(ctx context.Context, e Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (name, surname, fiscal_number, fiscal_number_country, social_number,
                           date_of_birth, employment_type, employee_role, hire_date,
                           salary_base, manager_id)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
    RETURNING id
  `, e.Name, e.Surname, nullIfEmpty(e.FiscalNumber), nullIfEmpty(e.FiscalCountry), nullIfEmpty(e.SocialNumber),
		e.DateOfBirth, e.EmploymentType, e.Role, e.HireDate, e.SalaryBase, nullIfEmpty(e.ManagerID)).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, e Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET name = $2, surname = $3, fiscal_number = $4, fiscal_number_country = $5,
        social_number = $6, date_of_birth = $7, employment_type = $8, employee_role = $9,
        hire_date = $10, termination_date = $11, salary_base = $12, manager_id = $13,
        updated_at = now()
    WHERE id = $1
  `, e.ID, e.Name, e.Surname, nullIfEmpty(e.FiscalNumber), nullIfEmpty(e.FiscalCountry),
		nullIfEmpty(e.SocialNumber), e.DateOfBirth, e.EmploymentType, e.Role,
		e.HireDate, e.TerminationDate, e.SalaryBase, nullIfEmpty(e.ManagerID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)
	return scanEmployee(row)
}

// LockByID reads the employee row with FOR UPDATE so validation and the
// subsequent write happen against the same snapshot.
func (s *Store) LockByID(ctx context.Context, id string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1 FOR UPDATE`, id)
	return scanEmployee(row)
}

func (s *Store) List(ctx context.Context, activeOnly bool) ([]Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name, surname`
	if activeOnly {
		query = `SELECT ` + employeeColumns + ` FROM employees WHERE is_active ORDER BY name, surname`
	}
	rows, err := s.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

// ManagerOf returns the manager of the given employee, empty when the
// employee has no manager or does not exist.
func (s *Store) ManagerOf(ctx context.Context, id string) (string, error) {
	var managerID *string
	err := s.DB.QueryRow(ctx, `SELECT manager_id FROM employees WHERE id = $1`, id).Scan(&managerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if managerID == nil {
		return "", nil
	}
	return *managerID, nil
}

func (s *Store) SetManager(ctx context.Context, id, managerID string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET manager_id = $2, updated_at = now() WHERE id = $1
  `, id, nullIfEmpty(managerID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) CountActiveSubordinates(ctx context.Context, id string) (int64, error) {
	var count int64
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM employees WHERE manager_id = $1 AND is_active
  `, id).Scan(&count)
	return count, err
}

func (s *Store) Subordinates(ctx context.Context, managerID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE manager_id = $1 AND is_active
    ORDER BY name, surname
  `, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (s *Store) Managers(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE is_active AND id IN (
      SELECT DISTINCT manager_id FROM employees WHERE manager_id IS NOT NULL AND is_active
    )
    ORDER BY name, surname
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (s *Store) TopLevel(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE manager_id IS NULL AND is_active
    ORDER BY name, surname
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (s *Store) HiredBetween(ctx context.Context, start, end time.Time) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE hire_date >= $1 AND hire_date <= $2 AND is_active
    ORDER BY hire_date
  `, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEmployees(rows)
}

func (s *Store) Deactivate(ctx context.Context, id string, terminationDate time.Time) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees
    SET is_active = false, termination_date = $2, updated_at = now()
    WHERE id = $1
  `, id, terminationDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) FiscalNumberTaken(ctx context.Context, fiscalNumber, country, excludeID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM employees
    WHERE fiscal_number = $1 AND fiscal_number_country = $2 AND is_active AND id != COALESCE($3, '00000000-0000-0000-0000-000000000000')::uuid
  `, fiscalNumber, country, nullIfEmpty(excludeID)).Scan(&count)
	return count > 0, err
}

func (s *Store) SocialNumberTaken(ctx context.Context, socialNumber, excludeID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM employees
    WHERE social_number = $1 AND is_active AND id != COALESCE($2, '00000000-0000-0000-0000-000000000000')::uuid
  `, socialNumber, nullIfEmpty(excludeID)).Scan(&count)
	return count > 0, err
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var e Employee
	var fiscal, fiscalCountry, social, managerID *string
	err := row.Scan(&e.ID, &e.Name, &e.Surname, &fiscal, &fiscalCountry, &social,
		&e.DateOfBirth, &e.EmploymentType, &e.Role, &e.HireDate, &e.TerminationDate,
		&e.SalaryBase, &managerID, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	e.FiscalNumber = deref(fiscal)
	e.FiscalCountry = deref(fiscalCountry)
	e.SocialNumber = deref(social)
	e.ManagerID = deref(managerID)
	return e, nil
}

func scanEmployees(rows pgx.Rows) ([]Employee, error) {
	var employees []Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
