package memory

import (
	"context"
	"sync"

	"github.com/hrportal/payroll-backend-go/internal/domain/settlement"
)

// settlementRepositoryImpl is the only mutable store in the demo dataset, so
// it takes a lock where the read-only repositories do not.
type settlementRepositoryImpl struct {
	mu          sync.RWMutex
	settlements []settlement.Settlement
}

func NewSettlementRepository(settlements []settlement.Settlement) settlement.Repository {
	return &settlementRepositoryImpl{settlements: settlements}
}

// GetByID implements settlement.Repository.
func (r *settlementRepositoryImpl) GetByID(ctx context.Context, id string) (settlement.Settlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.settlements {
		if s.ID == id {
			return s, nil
		}
	}
	return settlement.Settlement{}, settlement.ErrSettlementNotFound
}

// GetByEmployeeID implements settlement.Repository.
func (r *settlementRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (settlement.Settlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.settlements {
		if s.EmployeeID == employeeID {
			return s, nil
		}
	}
	return settlement.Settlement{}, settlement.ErrSettlementNotFound
}

// ListByStatus implements settlement.Repository.
func (r *settlementRepositoryImpl) ListByStatus(ctx context.Context, status settlement.Status) ([]settlement.Settlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []settlement.Settlement
	for _, s := range r.settlements {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

// List implements settlement.Repository.
func (r *settlementRepositoryImpl) List(ctx context.Context) ([]settlement.Settlement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]settlement.Settlement, len(r.settlements))
	copy(out, r.settlements)
	return out, nil
}

// Insert implements settlement.Repository.
func (r *settlementRepositoryImpl) Insert(ctx context.Context, s settlement.Settlement) (settlement.Settlement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.settlements {
		if existing.ID == s.ID {
			return settlement.Settlement{}, settlement.ErrSettlementAlreadyExists
		}
	}
	r.settlements = append(r.settlements, s)
	return s, nil
}

// Update implements settlement.Repository.
func (r *settlementRepositoryImpl) Update(ctx context.Context, s settlement.Settlement) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.settlements {
		if existing.ID == s.ID {
			r.settlements[i] = s
			return nil
		}
	}
	return settlement.ErrSettlementNotFound
}
