package booking

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

const bookingColumns = `
  id, employee_id, vacation_id, start_date, end_date, days_reserved,
  booking_status, is_active, request_notes, created_at, updated_at`

// LockEmployee takes a row lock on the employee so concurrent reservations
// for the same person serialize their conflict checks.
func (s *Store) LockEmployee(ctx context.Context, employeeID string) error {
	var id string
	err := s.DB.QueryRow(ctx, `
    SELECT id FROM employees WHERE id = $1 AND is_active FOR UPDATE
  `, employeeID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrEmployeeNotFound
	}
	return err
}

func (s *Store) Insert(ctx context.Context, b Booking) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO bookings (employee_id, start_date, end_date, days_reserved, booking_status, request_notes)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, b.EmployeeID, b.StartDate, b.EndDate, b.DaysReserved, b.Status, b.Notes).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, b Booking) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE bookings
    SET start_date = $2, end_date = $3, days_reserved = $4, booking_status = $5,
        is_active = $6, vacation_id = $7, request_notes = $8, updated_at = now()
    WHERE id = $1
  `, b.ID, b.StartDate, b.EndDate, b.DaysReserved, b.Status, b.Active, nullIfEmpty(b.VacationID), b.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, id string) (Booking, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	return scanBooking(row)
}

// LockByID reads the booking with FOR UPDATE for update and state-transition
// flows.
func (s *Store) LockByID(ctx context.Context, id string) (Booking, error) {
	row := s.DB.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	return scanBooking(row)
}

func (s *Store) List(ctx context.Context) ([]Booking, error) {
	rows, err := s.DB.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY start_date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// ActiveByEmployee returns the reservations that participate in conflict
// checks for one employee.
func (s *Store) ActiveByEmployee(ctx context.Context, employeeID string) ([]Booking, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+bookingColumns+`
    FROM bookings
    WHERE employee_id = $1 AND is_active AND booking_status = $2
    ORDER BY start_date
  `, employeeID, StatusReserved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBooking(row pgx.Row) (Booking, error) {
	var b Booking
	var vacationID *string
	err := row.Scan(&b.ID, &b.EmployeeID, &vacationID, &b.StartDate, &b.EndDate,
		&b.DaysReserved, &b.Status, &b.Active, &b.Notes, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrNotFound
	}
	if err != nil {
		return Booking{}, err
	}
	if vacationID != nil {
		b.VacationID = *vacationID
	}
	return b, nil
}

func scanBookings(rows pgx.Rows) ([]Booking, error) {
	var bookings []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
