package sandbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/transfers-client/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/persistence"
	port_platform "github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/platform"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultPerPage = 25
	MaxPerPage     = 100
)

type CreateInput struct {
	SourceAccountID      string
	DestinationAccountID string
	Currency             string
	Amount               string
	Reason               string
	UniqueRequestID      string
	OnBehalfOf           string
}

type FindInput struct {
	Criteria port_persistence.Criteria
	Page     int
	PerPage  int
}

// Service is an in-memory stand-in for the remote transfers API.
type Service struct {
	repo   port_persistence.TransferRepository
	clock  port_platform.Clock
	ids    port_platform.IDGenerator
	logger *slog.Logger
}

func NewService(
	repo port_persistence.TransferRepository,
	clock port_platform.Clock,
	ids port_platform.IDGenerator,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		repo:   repo,
		clock:  clock,
		ids:    ids,
		logger: logger,
	}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (domain_transfer.Transfer, error) {
	amount, err := checkCreate(&in)
	if err != nil {
		return domain_transfer.Transfer{}, err
	}

	hash := HashCreateInput(in, amount)

	if in.UniqueRequestID != "" {
		stored, err := s.repo.GetByUniqueRequestID(ctx, in.UniqueRequestID)
		switch {
		case err == nil:
			if stored.RequestHash != hash {
				return domain_transfer.Transfer{}, idempotencyConflict()
			}
			return stored.Transfer, nil
		case !errors.Is(err, port_persistence.ErrNotFound):
			return domain_transfer.Transfer{}, fmt.Errorf("failed to look up unique_request_id: %w", err)
		}
	}

	now := s.clock.Now()
	id := s.ids.NewUUID()

	t := domain_transfer.Transfer{
		ID:                   id.String(),
		ShortReference:       shortReference(now, s.ids.NewUUID()),
		SourceAccountID:      in.SourceAccountID,
		DestinationAccountID: in.DestinationAccountID,
		Currency:             in.Currency,
		Amount:               amount,
		Status:               domain_transfer.StatusPending,
		Reason:               in.Reason,
		CreatorAccountID:     in.OnBehalfOf,
		UniqueRequestID:      in.UniqueRequestID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, t, hash); err != nil {
		if errors.Is(err, port_persistence.ErrConflict) {
			return domain_transfer.Transfer{}, idempotencyConflict()
		}
		return domain_transfer.Transfer{}, fmt.Errorf("failed to store transfer: %w", err)
	}

	s.logger.InfoContext(ctx, "transfer created",
		"transfer_id", t.ID,
		"short_reference", t.ShortReference,
		"currency", t.Currency,
		"amount", t.Amount.String(),
	)

	return t, nil
}

func (s *Service) Get(ctx context.Context, id string) (domain_transfer.Transfer, error) {
	stored, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain_transfer.Transfer{}, err
	}
	return stored.Transfer, nil
}

func (s *Service) Find(ctx context.Context, in FindInput) (domain_transfer.TransferList, error) {
	if in.Page == 0 {
		in.Page = 1
	}
	if in.PerPage == 0 {
		in.PerPage = DefaultPerPage
	}
	if in.Page < 0 || in.PerPage < 0 {
		return domain_transfer.TransferList{}, ErrInvalidPage
	}
	if in.PerPage > MaxPerPage {
		in.PerPage = MaxPerPage
	}

	c := in.Criteria
	if c.OrderBy == "" {
		c.OrderBy = port_persistence.OrderCreatedAt
	}
	c.Limit = in.PerPage
	c.Offset = pageOffset(in.Page, in.PerPage)

	transfers, total, err := s.repo.Find(ctx, c)
	if err != nil {
		return domain_transfer.TransferList{}, fmt.Errorf("failed to find transfers: %w", err)
	}

	return domain_transfer.TransferList{
		Transfers:  transfers,
		Pagination: paginate(total, in.Page, in.PerPage, c.OrderBy, c.Descending),
	}, nil
}

// pageOffset saturates at math.MaxInt, which no repository reaches.
func pageOffset(page, perPage int) int {
	if page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}
	return (page - 1) * perPage
}

// checkCreate applies the server-side rules and normalizes currency in place.
func checkCreate(in *CreateInput) (decimal.Decimal, error) {
	in.SourceAccountID = strings.TrimSpace(in.SourceAccountID)
	in.DestinationAccountID = strings.TrimSpace(in.DestinationAccountID)

	if in.SourceAccountID == "" {
		return decimal.Decimal{}, &FieldError{Field: "source_account_id", Code: "source_account_id_is_required", Err: domain_transfer.ErrInvalidAccountID}
	}

	if in.DestinationAccountID == "" {
		return decimal.Decimal{}, &FieldError{Field: "destination_account_id", Code: "destination_account_id_is_required", Err: domain_transfer.ErrInvalidAccountID}
	}

	if in.SourceAccountID == in.DestinationAccountID {
		return decimal.Decimal{}, &FieldError{Field: "destination_account_id", Code: "destination_account_id_same_as_source", Err: domain_transfer.ErrSameAccount}
	}

	cur := strings.ToUpper(strings.TrimSpace(in.Currency))
	if len(cur) != 3 {
		return decimal.Decimal{}, &FieldError{Field: "currency", Code: "currency_is_in_invalid_format", Err: domain_transfer.ErrInvalidCurrency}
	}
	in.Currency = cur

	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil || !amount.IsPositive() {
		return decimal.Decimal{}, &FieldError{Field: "amount", Code: "amount_type_is_wrong", Err: domain_transfer.ErrInvalidAmount}
	}

	return amount, nil
}

func idempotencyConflict() error {
	return &FieldError{Field: "unique_request_id", Code: "unique_request_id_is_already_used", Err: ErrIdempotencyConflict}
}

// shortReference renders YYYYMMDD-XXXXXX from the creation date and a random id.
func shortReference(now time.Time, id uuid.UUID) string {
	return fmt.Sprintf("%s-%X", now.Format("20060102"), id[:3])
}

func paginate(total, page, perPage int, orderBy string, descending bool) domain_transfer.Pagination {
	totalPages := (total + perPage - 1) / perPage

	p := domain_transfer.Pagination{
		TotalEntries: total,
		TotalPages:   totalPages,
		CurrentPage:  page,
		PerPage:      perPage,
		PreviousPage: -1,
		NextPage:     -1,
		Order:        orderBy,
		OrderAscDesc: "asc",
	}

	if descending {
		p.OrderAscDesc = "desc"
	}
	if page > 1 && totalPages > 0 {
		p.PreviousPage = min(page-1, totalPages)
	}
	if page < totalPages {
		p.NextPage = page + 1
	}

	return p
}
