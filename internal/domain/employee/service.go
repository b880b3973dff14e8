package employee

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

func (s *Service) Get(ctx context.Context, id string) (Employee, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, activeOnly bool) ([]Employee, error) {
	return s.store.List(ctx, activeOnly)
}

func (s *Service) Subordinates(ctx context.Context, managerID string) ([]Employee, error) {
	if _, err := s.store.GetByID(ctx, managerID); err != nil {
		return nil, err
	}
	return s.store.Subordinates(ctx, managerID)
}

func (s *Service) Managers(ctx context.Context) ([]Employee, error) {
	return s.store.Managers(ctx)
}

func (s *Service) TopLevel(ctx context.Context) ([]Employee, error) {
	return s.store.TopLevel(ctx)
}

func (s *Service) HiredBetween(ctx context.Context, start, end time.Time) ([]Employee, error) {
	if start.After(end) {
		return nil, calendar.ErrInvalidRange
	}
	return s.store.HiredBetween(ctx, start, end)
}

// Create validates identifiers and the manager reference, then inserts. A
// brand-new employee has no subordinates, so no cycle check is needed beyond
// the manager existing.
func (s *Service) Create(ctx context.Context, e Employee) (Employee, error) {
	if err := s.validateIdentifiers(ctx, e, ""); err != nil {
		return Employee{}, err
	}
	if e.ManagerID != "" {
		if _, err := s.store.GetByID(ctx, e.ManagerID); err != nil {
			if err == ErrNotFound {
				return Employee{}, ErrManagerNotFound
			}
			return Employee{}, err
		}
	}

	id, err := s.store.Insert(ctx, e)
	if err != nil {
		return Employee{}, err
	}
	return s.store.GetByID(ctx, id)
}

// Update re-validates the manager relation inside the same transaction that
// writes it, so a concurrent reassignment cannot slip a cycle past the check.
func (s *Service) Update(ctx context.Context, id string, e Employee) (Employee, error) {
	if err := s.validateIdentifiers(ctx, e, id); err != nil {
		return Employee{}, err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return Employee{}, err
	}
	defer tx.Rollback(ctx)

	txStore := NewStore(tx)
	current, err := txStore.LockByID(ctx, id)
	if err != nil {
		return Employee{}, err
	}

	if err := s.validateManager(ctx, txStore, id, e.ManagerID); err != nil {
		return Employee{}, err
	}

	e.ID = id
	e.Active = current.Active
	if err := txStore.Update(ctx, e); err != nil {
		return Employee{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Employee{}, err
	}
	return s.store.GetByID(ctx, id)
}

// AssignManager validates the forest invariant and writes the pointer in one
// transaction.
func (s *Service) AssignManager(ctx context.Context, employeeID, managerID string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	txStore := NewStore(tx)
	if _, err := txStore.LockByID(ctx, employeeID); err != nil {
		return err
	}
	if err := s.validateManager(ctx, txStore, employeeID, managerID); err != nil {
		return err
	}
	if err := txStore.SetManager(ctx, employeeID, managerID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Service) RemoveManager(ctx context.Context, employeeID string) error {
	return s.AssignManager(ctx, employeeID, "")
}

// Deactivate blocks while the employee still manages active subordinates.
func (s *Service) Deactivate(ctx context.Context, id string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	txStore := NewStore(tx)
	current, err := txStore.LockByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.Active {
		return ErrAlreadyInactive
	}

	subordinates, err := txStore.CountActiveSubordinates(ctx, id)
	if err != nil {
		return err
	}
	if !CanDelete(subordinates) {
		return ErrHasSubordinates
	}

	if err := txStore.Deactivate(ctx, id, calendar.Normalize(time.Now().UTC())); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *Service) validateManager(ctx context.Context, store *Store, employeeID, managerID string) error {
	if managerID != "" {
		if _, err := store.GetByID(ctx, managerID); err != nil {
			if err == ErrNotFound {
				return ErrManagerNotFound
			}
			return err
		}
	}
	lookup := func(id string) (string, error) {
		return store.ManagerOf(ctx, id)
	}
	return ValidateManagerAssignment(employeeID, managerID, lookup)
}

func (s *Service) validateIdentifiers(ctx context.Context, e Employee, excludeID string) error {
	if e.FiscalNumber != "" {
		if !ValidFiscalNumber(e.FiscalCountry, e.FiscalNumber) {
			return ErrInvalidFiscal
		}
		taken, err := s.store.FiscalNumberTaken(ctx, e.FiscalNumber, e.FiscalCountry, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateFiscal
		}
	}
	if e.SocialNumber != "" {
		if !ValidNISS(e.SocialNumber) {
			return ErrInvalidSocial
		}
		taken, err := s.store.SocialNumberTaken(ctx, e.SocialNumber, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return ErrDuplicateSocial
		}
	}
	return nil
}
