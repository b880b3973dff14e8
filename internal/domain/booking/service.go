package booking

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"lbc/internal/domain/calendar"
)

type Service struct {
	pool  *pgxpool.Pool
	store *Store
}

func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool, store: NewStore(pool)}
}

type CreateInput struct {
	EmployeeID   string
	StartDate    time.Time
	DaysReserved int
	Notes        string
}

func (s *Service) Get(ctx context.Context, id string) (Booking, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Booking, error) {
	return s.store.List(ctx)
}

func (s *Service) ActiveByEmployee(ctx context.Context, employeeID string) ([]Booking, error) {
	return s.store.ActiveByEmployee(ctx, employeeID)
}

// Create derives the end date from the requested business days, then runs the
// conflict check and the insert in one transaction holding the employee row
// lock, so two concurrent requests cannot both pass against a stale snapshot.
func (s *Service) Create(ctx context.Context, in CreateInput) (Booking, error) {
	if in.DaysReserved <= 0 {
		return Booking{}, ErrInvalidDays
	}
	start := calendar.Normalize(in.StartDate)
	if start.Before(calendar.Normalize(time.Now().UTC())) {
		return Booking{}, ErrPastStartDate
	}

	end, err := calendar.EndDateForBusinessDays(start, in.DaysReserved)
	if err != nil {
		return Booking{}, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Booking{}, err
	}
	defer tx.Rollback(ctx)

	txStore := NewStore(tx)
	if err := txStore.LockEmployee(ctx, in.EmployeeID); err != nil {
		return Booking{}, err
	}

	existing, err := txStore.ActiveByEmployee(ctx, in.EmployeeID)
	if err != nil {
		return Booking{}, err
	}
	if HasConflict(in.EmployeeID, start, end, existing, "") {
		return Booking{}, ErrConflict
	}

	id, err := txStore.Insert(ctx, Booking{
		EmployeeID:   in.EmployeeID,
		StartDate:    start,
		EndDate:      end,
		DaysReserved: in.DaysReserved,
		Status:       StatusReserved,
		Notes:        in.Notes,
	})
	if err != nil {
		return Booking{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Booking{}, err
	}
	return s.store.GetByID(ctx, id)
}

// Update recomputes the end date and re-checks conflicts, excluding the
// booking being modified.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Booking, error) {
	if in.DaysReserved <= 0 {
		return Booking{}, ErrInvalidDays
	}
	start := calendar.Normalize(in.StartDate)

	end, err := calendar.EndDateForBusinessDays(start, in.DaysReserved)
	if err != nil {
		return Booking{}, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Booking{}, err
	}
	defer tx.Rollback(ctx)

	txStore := NewStore(tx)
	if err := txStore.LockEmployee(ctx, in.EmployeeID); err != nil {
		return Booking{}, err
	}

	current, err := txStore.LockByID(ctx, id)
	if err != nil {
		return Booking{}, err
	}
	if current.Status == StatusCancelled {
		return Booking{}, ErrCancelled
	}

	existing, err := txStore.ActiveByEmployee(ctx, in.EmployeeID)
	if err != nil {
		return Booking{}, err
	}
	if HasConflict(in.EmployeeID, start, end, existing, id) {
		return Booking{}, ErrConflict
	}

	current.EmployeeID = in.EmployeeID
	current.StartDate = start
	current.EndDate = end
	current.DaysReserved = in.DaysReserved
	current.Notes = in.Notes
	if err := txStore.Update(ctx, current); err != nil {
		return Booking{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Booking{}, err
	}
	return s.store.GetByID(ctx, id)
}

// Cancel retires a reservation. A booking already converted to a vacation
// request stays on the books.
func (s *Service) Cancel(ctx context.Context, id string) (Booking, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Booking{}, err
	}
	defer tx.Rollback(ctx)

	txStore := NewStore(tx)
	current, err := txStore.LockByID(ctx, id)
	if err != nil {
		return Booking{}, err
	}
	if current.Status == StatusCancelled {
		return Booking{}, ErrCancelled
	}
	if current.VacationID != "" {
		return Booking{}, ErrLinked
	}

	current.Status = StatusCancelled
	current.Active = false
	if err := txStore.Update(ctx, current); err != nil {
		return Booking{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Booking{}, err
	}
	return current, nil
}

// LinkVacation attaches the vacation request created from this booking. A
// booking links at most once.
func (s *Service) LinkVacation(ctx context.Context, id, vacationID string) (Booking, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Booking{}, err
	}
	defer tx.Rollback(ctx)

	txStore := NewStore(tx)
	current, err := txStore.LockByID(ctx, id)
	if err != nil {
		return Booking{}, err
	}
	if current.Status == StatusCancelled {
		return Booking{}, ErrCancelled
	}
	if current.VacationID != "" {
		return Booking{}, ErrAlreadyLinked
	}

	current.VacationID = vacationID
	if err := txStore.Update(ctx, current); err != nil {
		return Booking{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Booking{}, err
	}
	return current, nil
}
