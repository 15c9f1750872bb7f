package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/transfers-client/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/persistence"
)

var _ port_persistence.TransferRepository = (*TransferRepository)(nil)

type TransferRepository struct {
	mu        sync.RWMutex
	byID      map[string]port_persistence.StoredTransfer
	byRequest map[string]string
}

func NewTransferRepository() *TransferRepository {
	return &TransferRepository{
		byID:      make(map[string]port_persistence.StoredTransfer),
		byRequest: make(map[string]string),
	}
}

func (r *TransferRepository) GetByUniqueRequestID(_ context.Context, key string) (*port_persistence.StoredTransfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byRequest[key]
	if !ok {
		return nil, port_persistence.ErrNotFound
	}

	stored := r.byID[id]
	return &stored, nil
}

func (r *TransferRepository) Create(_ context.Context, t domain_transfer.Transfer, requestHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; exists {
		return port_persistence.ErrConflict
	}

	if t.UniqueRequestID != "" {
		if _, exists := r.byRequest[t.UniqueRequestID]; exists {
			return port_persistence.ErrConflict
		}
		r.byRequest[t.UniqueRequestID] = t.ID
	}

	r.byID[t.ID] = port_persistence.StoredTransfer{Transfer: t, RequestHash: requestHash}
	return nil
}

func (r *TransferRepository) GetByID(_ context.Context, transferID string) (*port_persistence.StoredTransfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[transferID]
	if !ok {
		return nil, port_persistence.ErrNotFound
	}

	return &stored, nil
}

// Find returns the page of matches selected by c.Offset and c.Limit, and the total match count.
func (r *TransferRepository) Find(_ context.Context, c port_persistence.Criteria) ([]domain_transfer.Transfer, int, error) {
	r.mu.RLock()
	found := make([]domain_transfer.Transfer, 0, len(r.byID))
	for _, stored := range r.byID {
		if matchesCriteria(c, stored.Transfer) {
			found = append(found, stored.Transfer)
		}
	}
	r.mu.RUnlock()

	orderKey := func(t domain_transfer.Transfer) time.Time { return t.CreatedAt }
	if c.OrderBy == port_persistence.OrderUpdatedAt {
		orderKey = func(t domain_transfer.Transfer) time.Time { return t.UpdatedAt }
	}

	sort.Slice(found, func(i, j int) bool {
		a, b := orderKey(found[i]), orderKey(found[j])
		if !a.Equal(b) {
			if c.Descending {
				return a.After(b)
			}
			return a.Before(b)
		}
		return found[i].ID < found[j].ID
	})

	total := len(found)

	if c.Offset < 0 {
		c.Offset = 0
	}

	if c.Offset >= total {
		return []domain_transfer.Transfer{}, total, nil
	}

	end := total
	if c.Limit > 0 && c.Offset+c.Limit < total {
		end = c.Offset + c.Limit
	}

	return found[c.Offset:end], total, nil
}

func matchesCriteria(c port_persistence.Criteria, t domain_transfer.Transfer) bool {
	switch {
	case c.ShortReference != "" && t.ShortReference != c.ShortReference:
		return false
	case c.Currency != "" && t.Currency != c.Currency:
		return false
	case c.Status != "" && t.Status != c.Status:
		return false
	case c.SourceAccountID != "" && t.SourceAccountID != c.SourceAccountID:
		return false
	case c.DestinationAccountID != "" && t.DestinationAccountID != c.DestinationAccountID:
		return false
	case c.AmountFrom != nil && t.Amount.LessThan(*c.AmountFrom):
		return false
	case c.AmountTo != nil && t.Amount.GreaterThan(*c.AmountTo):
		return false
	case !c.CreatedFrom.IsZero() && t.CreatedAt.Before(c.CreatedFrom):
		return false
	case !c.CreatedBefore.IsZero() && !t.CreatedAt.Before(c.CreatedBefore):
		return false
	}
	return true
}
