package vacation

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
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Notes      string
}

func (s *Service) Get(ctx context.Context, id string) (Vacation, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Vacation, error) {
	return s.store.List(ctx)
}

func (s *Service) ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Vacation, error) {
	return s.store.ListByEmployeeYear(ctx, employeeID, year)
}

// Create stores a pending request. DaysRequested is the inclusive calendar
// count between the dates; an inverted range surfaces as
// calendar.ErrInvalidRange.
func (s *Service) Create(ctx context.Context, in CreateInput) (Vacation, error) {
	start := calendar.Normalize(in.StartDate)
	end := calendar.Normalize(in.EndDate)

	days, err := calendar.CalendarDaysBetween(start, end)
	if err != nil {
		return Vacation{}, err
	}

	exists, err := s.store.EmployeeExists(ctx, in.EmployeeID)
	if err != nil {
		return Vacation{}, err
	}
	if !exists {
		return Vacation{}, ErrEmployeeNotFound
	}

	id, err := s.store.Insert(ctx, Vacation{
		EmployeeID:    in.EmployeeID,
		StartDate:     start,
		EndDate:       end,
		DaysRequested: days,
		Status:        StatusPending,
		RequestNotes:  in.Notes,
	})
	if err != nil {
		return Vacation{}, err
	}
	return s.store.GetByID(ctx, id)
}

// Update rewrites the period and recomputes the day count.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Vacation, error) {
	start := calendar.Normalize(in.StartDate)
	end := calendar.Normalize(in.EndDate)

	days, err := calendar.CalendarDaysBetween(start, end)
	if err != nil {
		return Vacation{}, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Vacation{}, err
	}
	defer tx.Rollback(ctx)

	txStore := NewStore(tx)
	current, err := txStore.LockByID(ctx, id)
	if err != nil {
		return Vacation{}, err
	}

	current.StartDate = start
	current.EndDate = end
	current.DaysRequested = days
	current.RequestNotes = in.Notes
	if err := txStore.Update(ctx, current); err != nil {
		return Vacation{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Vacation{}, err
	}
	return s.store.GetByID(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id, approver string) (Vacation, error) {
	return s.transition(ctx, id, func(v *Vacation) error {
		return v.Approve(approver, time.Now().UTC())
	})
}

func (s *Service) Reject(ctx context.Context, id, approver, reason string) (Vacation, error) {
	return s.transition(ctx, id, func(v *Vacation) error {
		v.Reject(approver, reason, time.Now().UTC())
		return nil
	})
}

func (s *Service) Cancel(ctx context.Context, id string) (Vacation, error) {
	return s.transition(ctx, id, func(v *Vacation) error {
		return v.Cancel()
	})
}

func (s *Service) transition(ctx context.Context, id string, apply func(*Vacation) error) (Vacation, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Vacation{}, err
	}
	defer tx.Rollback(ctx)

	txStore := NewStore(tx)
	current, err := txStore.LockByID(ctx, id)
	if err != nil {
		return Vacation{}, err
	}
	if err := apply(&current); err != nil {
		return Vacation{}, err
	}
	if err := txStore.Update(ctx, current); err != nil {
		return Vacation{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Vacation{}, err
	}
	return current, nil
}
