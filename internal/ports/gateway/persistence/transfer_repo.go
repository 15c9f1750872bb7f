package port_persistence

import (
	"context"
	"errors"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/transfers-client/internal/domain/transfer"
	"github.com/shopspring/decimal"
)

const (
	OrderCreatedAt = "created_at"
	OrderUpdatedAt = "updated_at"
)

var (
	ErrNotFound = errors.New("persistence: not found")
	ErrConflict = errors.New("persistence: conflict")
)

type StoredTransfer struct {
	Transfer    domain_transfer.Transfer
	RequestHash string
}

type Criteria struct {
	ShortReference       string
	Currency             string
	Status               domain_transfer.Status
	SourceAccountID      string
	DestinationAccountID string
	AmountFrom           *decimal.Decimal
	AmountTo             *decimal.Decimal
	// CreatedFrom is inclusive and CreatedBefore exclusive; zero values are unbounded.
	CreatedFrom   time.Time
	CreatedBefore time.Time

	// OrderBy is OrderCreatedAt or OrderUpdatedAt.
	OrderBy    string
	Descending bool
	Offset     int
	Limit      int
}

type TransferRepository interface {
	GetByUniqueRequestID(ctx context.Context, key string) (*StoredTransfer, error)
	Create(ctx context.Context, t domain_transfer.Transfer, requestHash string) error
	GetByID(ctx context.Context, transferID string) (*StoredTransfer, error)
	Find(ctx context.Context, c Criteria) ([]domain_transfer.Transfer, int, error)
}
