package impl_transfer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"sync"
	"testing"

	domain_transfer "github.com/PedroCamargo-dev/transfers-client/internal/domain/transfer"
	impl_transfer "github.com/PedroCamargo-dev/transfers-client/internal/impl/usecase/transfer"
	port_client "github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/client"
	gwmocks "github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func newOperations(ctrl *gomock.Controller) (*impl_transfer.TransferOperationsImpl, *gwmocks.MockRequester) {
	requester := gwmocks.NewMockRequester(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return impl_transfer.NewTransferOperationsImpl(requester, logger), requester
}

func validCreateParams() *domain_transfer.CreateParams {
	return &domain_transfer.CreateParams{
		SourceAccountID:      "A",
		DestinationAccountID: "B",
		Currency:             "USD",
		Amount:               domain_transfer.NewAmount(decimal.NewFromInt(10)),
	}
}

func TestCreate_MissingParameter_FailsBeforeRequest(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(p *domain_transfer.CreateParams)
		wantParam string
	}{
		{"sourceAccountId", func(p *domain_transfer.CreateParams) { p.SourceAccountID = "" }, "sourceAccountId"},
		{"destinationAccountId", func(p *domain_transfer.CreateParams) { p.DestinationAccountID = "" }, "destinationAccountId"},
		{"currency", func(p *domain_transfer.CreateParams) { p.Currency = "" }, "currency"},
		{"amount", func(p *domain_transfer.CreateParams) { p.Amount = nil }, "amount"},
		{"all missing reports sourceAccountId", func(p *domain_transfer.CreateParams) { *p = domain_transfer.CreateParams{} }, "sourceAccountId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ops, requester := newOperations(ctrl)
			requester.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			params := validCreateParams()
			tt.mutate(params)

			call, err := ops.Create(context.Background(), params)
			if call != nil {
				t.Fatalf("expected no call, got one")
			}
			if !errors.Is(err, domain_transfer.ErrMissingParameter) {
				t.Fatalf("expected ErrMissingParameter, got %v", err)
			}
			if err.Error() != tt.wantParam+" is required" {
				t.Fatalf("expected %q, got %q", tt.wantParam+" is required", err.Error())
			}
		})
	}
}

func TestCreate_NilParams_TreatedAsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops, requester := newOperations(ctrl)
	requester.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := ops.Create(context.Background(), nil)
	if err == nil || err.Error() != "sourceAccountId is required" {
		t.Fatalf("expected 'sourceAccountId is required', got %v", err)
	}
}

func TestCreate_HappyPath_PostsFullParamsAsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops, requester := newOperations(ctrl)

	requester.EXPECT().
		Request(gomock.Any(), port_client.RequestOptions{
			URL:    "/v2/transfers/create",
			Method: "POST",
			Query: url.Values{
				"sourceAccountId":      {"A"},
				"destinationAccountId": {"B"},
				"currency":             {"USD"},
				"amount":               {"10"},
			},
		}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ port_client.RequestOptions, out any) error {
			tr, ok := out.(*domain_transfer.Transfer)
			if !ok {
				t.Fatalf("expected *Transfer target, got %T", out)
			}
			tr.ID = "t_1"
			tr.Status = domain_transfer.StatusPending
			return nil
		}).
		Times(1)

	call, err := ops.Create(context.Background(), validCreateParams())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tr, err := call.Wait(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tr.ID != "t_1" {
		t.Fatalf("expected transfer id t_1, got %s", tr.ID)
	}
	if tr.Status != domain_transfer.StatusPending {
		t.Fatalf("expected status pending, got %s", tr.Status)
	}
}

func TestGet_MissingID_FailsBeforeRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops, requester := newOperations(ctrl)
	requester.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, params := range []*domain_transfer.GetParams{nil, {}, {OnBehalfOf: "c_1"}} {
		call, err := ops.Get(context.Background(), params)
		if call != nil {
			t.Fatalf("expected no call, got one")
		}
		if err == nil || err.Error() != "id is required" {
			t.Fatalf("expected 'id is required', got %v", err)
		}
	}
}

func TestGet_HappyPath_IDInPathNotQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops, requester := newOperations(ctrl)

	requester.EXPECT().
		Request(gomock.Any(), port_client.RequestOptions{
			URL:    "/v2/transfers/t_123",
			Method: "GET",
			Query:  url.Values{"foo": {"bar"}},
		}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ port_client.RequestOptions, out any) error {
			out.(*domain_transfer.Transfer).ID = "t_123"
			return nil
		})

	call, err := ops.Get(context.Background(), &domain_transfer.GetParams{
		ID:    "t_123",
		Extra: url.Values{"foo": {"bar"}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tr, err := call.Result()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if tr.ID != "t_123" {
		t.Fatalf("expected transfer id t_123, got %s", tr.ID)
	}
}

func TestGet_EscapesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops, requester := newOperations(ctrl)

	requester.EXPECT().
		Request(gomock.Any(), port_client.RequestOptions{
			URL:    "/v2/transfers/a%2Fb%20c",
			Method: "GET",
			Query:  url.Values{},
		}, gomock.Any()).
		Return(nil)

	call, err := ops.Get(context.Background(), &domain_transfer.GetParams{ID: "a/b c"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	call.Result()
}

func TestFind_NoValidation(t *testing.T) {
	for _, params := range []*domain_transfer.FindParams{nil, {}} {
		ctrl := gomock.NewController(t)

		ops, requester := newOperations(ctrl)

		requester.EXPECT().
			Request(gomock.Any(), port_client.RequestOptions{
				URL:    "/v2/transfers/find",
				Method: "GET",
				Query:  url.Values{},
			}, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ port_client.RequestOptions, out any) error {
				list := out.(*domain_transfer.TransferList)
				list.Transfers = []domain_transfer.Transfer{{ID: "t_1"}}
				list.Pagination.TotalEntries = 1
				return nil
			})

		call, err := ops.Find(context.Background(), params)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		list, err := call.Result()
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(list.Transfers) != 1 || list.Pagination.TotalEntries != 1 {
			t.Fatalf("expected the requester's list, got %+v", list)
		}

		ctrl.Finish()
	}
}

func TestFind_PassesCriteria(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops, requester := newOperations(ctrl)

	requester.EXPECT().
		Request(gomock.Any(), port_client.RequestOptions{
			URL:    "/v2/transfers/find",
			Method: "GET",
			Query: url.Values{
				"currency": {"EUR"},
				"page":     {"3"},
				"anything": {"goes"},
			},
		}, gomock.Any()).
		Return(nil)

	call, err := ops.Find(context.Background(), &domain_transfer.FindParams{
		Currency: "EUR",
		Page:     3,
		Extra:    url.Values{"anything": {"goes"}},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	call.Result()
}

func TestRemoteError_PropagatesUnmodified(t *testing.T) {
	remoteErr := errors.New("connection reset by peer")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops, requester := newOperations(ctrl)
	requester.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).Return(remoteErr).Times(3)

	createCall, err := ops.Create(context.Background(), validCreateParams())
	if err != nil {
		t.Fatalf("expected no local error, got %v", err)
	}
	getCall, err := ops.Get(context.Background(), &domain_transfer.GetParams{ID: "t_1"})
	if err != nil {
		t.Fatalf("expected no local error, got %v", err)
	}
	findCall, err := ops.Find(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no local error, got %v", err)
	}

	if _, err := createCall.Result(); err != remoteErr {
		t.Fatalf("create: expected the exact remote error, got %v", err)
	}
	if _, err := getCall.Result(); err != remoteErr {
		t.Fatalf("get: expected the exact remote error, got %v", err)
	}
	if _, err := findCall.Result(); err != remoteErr {
		t.Fatalf("find: expected the exact remote error, got %v", err)
	}
}

func TestCalls_AreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ops, requester := newOperations(ctrl)

	release := make(chan struct{})
	var mu sync.Mutex
	seen := map[string]bool{}

	requester.EXPECT().
		Request(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts port_client.RequestOptions, out any) error {
			if opts.URL == "/v2/transfers/slow" {
				<-release
			}
			mu.Lock()
			seen[opts.URL] = true
			mu.Unlock()
			out.(*domain_transfer.Transfer).ID = opts.URL
			return nil
		}).
		Times(2)

	slow, err := ops.Get(context.Background(), &domain_transfer.GetParams{ID: "slow"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	fast, err := ops.Get(context.Background(), &domain_transfer.GetParams{ID: "fast"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	tr, err := fast.Result()
	if err != nil || tr.ID != "/v2/transfers/fast" {
		t.Fatalf("expected fast call to settle first, got %v, %v", tr, err)
	}

	select {
	case <-slow.Done():
		t.Fatal("expected slow call to still be pending")
	default:
	}

	close(release)
	if _, err := slow.Result(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if !seen["/v2/transfers/slow"] || !seen["/v2/transfers/fast"] {
		t.Fatalf("expected both requests to be issued, got %v", seen)
	}
}
