package port_transfer

import (
	"context"

	domain_transfer "github.com/PedroCamargo-dev/transfers-client/internal/domain/transfer"
	"github.com/PedroCamargo-dev/transfers-client/internal/platform/async"
)

// TransferOperations is the client binding for the transfers resource.
//
// A non-nil error return means the call was rejected locally and nothing was sent.
// Otherwise the returned Call settles with the remote result or the remote error.
type TransferOperations interface {
	Create(ctx context.Context, params *domain_transfer.CreateParams) (*async.Call[*domain_transfer.Transfer], error)
	Get(ctx context.Context, params *domain_transfer.GetParams) (*async.Call[*domain_transfer.Transfer], error)
	Find(ctx context.Context, params *domain_transfer.FindParams) (*async.Call[*domain_transfer.TransferList], error)
}
