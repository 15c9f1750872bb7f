package impl_transfer

import (
	"context"
	"log/slog"
	"net/url"

	domain_transfer "github.com/PedroCamargo-dev/transfers-client/internal/domain/transfer"
	"github.com/PedroCamargo-dev/transfers-client/internal/platform/async"
	port_client "github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/client"
	port_transfer "github.com/PedroCamargo-dev/transfers-client/internal/ports/usecase/transfer"
)

const (
	transfersPath = "/v2/transfers/"
	createPath    = transfersPath + "create"
	findPath      = transfersPath + "find"
)

var _ port_transfer.TransferOperations = (*TransferOperationsImpl)(nil)

type TransferOperationsImpl struct {
	requester port_client.Requester
	logger    *slog.Logger
}

func NewTransferOperationsImpl(requester port_client.Requester, logger *slog.Logger) *TransferOperationsImpl {
	if logger == nil {
		logger = slog.Default()
	}

	return &TransferOperationsImpl{
		requester: requester,
		logger:    logger,
	}
}

func (o *TransferOperationsImpl) Create(ctx context.Context, params *domain_transfer.CreateParams) (*async.Call[*domain_transfer.Transfer], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	qs, err := params.Query()
	if err != nil {
		return nil, err
	}

	return dispatch[domain_transfer.Transfer](ctx, o, port_client.RequestOptions{
		URL:    createPath,
		Method: port_client.MethodPost,
		Query:  qs,
	}), nil
}

func (o *TransferOperationsImpl) Get(ctx context.Context, params *domain_transfer.GetParams) (*async.Call[*domain_transfer.Transfer], error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	qs, err := params.Query()
	if err != nil {
		return nil, err
	}

	return dispatch[domain_transfer.Transfer](ctx, o, port_client.RequestOptions{
		URL:    transfersPath + url.PathEscape(params.ID),
		Method: port_client.MethodGet,
		Query:  qs,
	}), nil
}

func (o *TransferOperationsImpl) Find(ctx context.Context, params *domain_transfer.FindParams) (*async.Call[*domain_transfer.TransferList], error) {
	qs, err := params.Query()
	if err != nil {
		return nil, err
	}

	return dispatch[domain_transfer.TransferList](ctx, o, port_client.RequestOptions{
		URL:    findPath,
		Method: port_client.MethodGet,
		Query:  qs,
	}), nil
}

// dispatch hands opts to the requester on its own goroutine. The requester's
// error is returned as is.
func dispatch[T any](ctx context.Context, o *TransferOperationsImpl, opts port_client.RequestOptions) *async.Call[*T] {
	o.logger.DebugContext(ctx, "dispatching transfers request", "method", opts.Method, "url", opts.URL)

	return async.Go(ctx, func(ctx context.Context) (*T, error) {
		out := new(T)
		if err := o.requester.Request(ctx, opts, out); err != nil {
			return nil, err
		}
		return out, nil
	})
}
