// Package transfers is the importable surface of the transfers client.
//
// Every operation validates its parameters first. A non-nil error from Create,
// Get or Find means nothing was sent; otherwise the returned Call settles with
// the API's response or the requester's error, unchanged.
package transfers

import (
	"log/slog"

	"github.com/PedroCamargo-dev/transfers-client/internal/adapter/httpclient"
	domain_transfer "github.com/PedroCamargo-dev/transfers-client/internal/domain/transfer"
	impl_transfer "github.com/PedroCamargo-dev/transfers-client/internal/impl/usecase/transfer"
	"github.com/PedroCamargo-dev/transfers-client/internal/platform/async"
	port_client "github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/client"
	port_transfer "github.com/PedroCamargo-dev/transfers-client/internal/ports/usecase/transfer"
)

type (
	Operations = port_transfer.TransferOperations

	Transfer     = domain_transfer.Transfer
	TransferList = domain_transfer.TransferList
	Pagination   = domain_transfer.Pagination
	Status       = domain_transfer.Status
	Amount       = domain_transfer.Amount

	CreateParams = domain_transfer.CreateParams
	GetParams    = domain_transfer.GetParams
	FindParams   = domain_transfer.FindParams

	MissingParameterError = domain_transfer.MissingParameterError

	Requester      = port_client.Requester
	RequesterFunc  = port_client.RequesterFunc
	RequestOptions = port_client.RequestOptions

	HTTPConfig = httpclient.Config
	HTTPOption = httpclient.Option
	APIError   = httpclient.APIError
)

type Call[T any] = async.Call[T]

const (
	StatusPending   = domain_transfer.StatusPending
	StatusCompleted = domain_transfer.StatusCompleted
	StatusCancelled = domain_transfer.StatusCancelled
)

var (
	ErrMissingParameter = domain_transfer.ErrMissingParameter

	NewAmount   = domain_transfer.NewAmount
	ParseAmount = domain_transfer.ParseAmount

	WithHTTPClient = httpclient.WithHTTPClient
	IsNotFound     = httpclient.IsNotFound
)

// New binds the transfers operations to requester.
func New(requester Requester, logger *slog.Logger) Operations {
	return impl_transfer.NewTransferOperationsImpl(requester, logger)
}

// NewHTTPRequester returns the default HTTP requester for cfg.
func NewHTTPRequester(cfg HTTPConfig, logger *slog.Logger, opts ...HTTPOption) (Requester, error) {
	r, err := httpclient.New(cfg, logger, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}
