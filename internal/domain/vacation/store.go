package vacation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"lbc/internal/platform/querier"
)

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

const vacationColumns = `
  id, employee_id, start_date, end_date, days_requested, vacation_status,
  is_active, approved_by, approval_date, request_notes, rejection_reason,
  created_at, updated_at`

func (s *Store) Insert(ctx context.Context, v Vacation) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO vacations (employee_id, start_date, end_date, days_requested, vacation_status, request_notes)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, v.EmployeeID, v.StartDate, v.EndDate, v.DaysRequested, v.Status, v.RequestNotes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, v Vacation) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE vacations
    SET start_date = $2, end_date = $3, days_requested = $4, vacation_status = $5,
        is_active = $6, approved_by = $7, approval_date = $8, request_notes = $9,
        rejection_reason = $10, updated_at = now()
    WHERE id = $1
  `, v.ID, v.StartDate, v.EndDate, v.DaysRequested, v.Status, v.Active,
		nullIfEmpty(v.ApprovedBy), v.ApprovalDate, v.RequestNotes, nullIfEmpty(v.RejectionReason))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (Vacation, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+vacationColumns+` FROM vacations WHERE id = $1`, id)
	return scanVacation(row)
}

func (s *Store) LockByID(ctx context.Context, id string) (Vacation, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+vacationColumns+` FROM vacations WHERE id = $1 FOR UPDATE`, id)
	return scanVacation(row)
}

func (s *Store) List(ctx context.Context) ([]Vacation, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+vacationColumns+` FROM vacations ORDER BY start_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVacations(rows)
}

func (s *Store) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Vacation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+vacationColumns+`
    FROM vacations
    WHERE employee_id = $1 AND date_part('year', start_date) = $2
    ORDER BY start_date
  `, employeeID, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVacations(rows)
}

func (s *Store) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM employees WHERE id = $1 AND is_active
  `, employeeID).Scan(&count)
	return count > 0, err
}

func scanVacation(row pgx.Row) (Vacation, error) {
	var v Vacation
	var approvedBy, rejectionReason *string
	err := row.Scan(&v.ID, &v.EmployeeID, &v.StartDate, &v.EndDate, &v.DaysRequested,
		&v.Status, &v.Active, &approvedBy, &v.ApprovalDate, &v.RequestNotes,
		&rejectionReason, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Vacation{}, ErrNotFound
	}
	if err != nil {
		return Vacation{}, err
	}
	if approvedBy != nil {
		v.ApprovedBy = *approvedBy
	}
	if rejectionReason != nil {
		v.RejectionReason = *rejectionReason
	}
	return v, nil
}

func scanVacations(rows pgx.Rows) ([]Vacation, error) {
	var vacations []Vacation
	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		vacations = append(vacations, v)
	}
	return vacations, rows.Err()
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
