package domain_transfer

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/shopspring/decimal"
)

// Amount is a decimal amount encoded in query strings as its plain decimal form.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) *Amount {
	return &Amount{Decimal: d}
}

func ParseAmount(s string) (*Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("transfer: invalid amount %q: %w", s, err)
	}
	return NewAmount(d), nil
}

func (a Amount) EncodeValues(key string, v *url.Values) error {
	v.Set(key, a.String())
	return nil
}

type CreateParams struct {
	SourceAccountID      string  `url:"sourceAccountId" validate:"required"`
	DestinationAccountID string  `url:"destinationAccountId" validate:"required"`
	Currency             string  `url:"currency" validate:"required"`
	Amount               *Amount `url:"amount" validate:"required"`

	Reason          string `url:"reason,omitempty"`
	UniqueRequestID string `url:"uniqueRequestId,omitempty"`
	OnBehalfOf      string `url:"onBehalfOf,omitempty"`
}

func (p *CreateParams) Validate() error {
	if p == nil {
		p = &CreateParams{}
	}
	return checkRequired(p)
}

func (p *CreateParams) Query() (url.Values, error) {
	return query.Values(p)
}

type GetParams struct {
	ID string `param:"id" url:"-" validate:"required"`

	OnBehalfOf string     `url:"onBehalfOf,omitempty"`
	Extra      url.Values `url:"-"`
}

func (p *GetParams) Validate() error {
	if p == nil {
		p = &GetParams{}
	}
	return checkRequired(p)
}

// Query returns every parameter except id, which travels in the path.
func (p *GetParams) Query() (url.Values, error) {
	v, err := query.Values(p)
	if err != nil {
		return nil, err
	}
	if p != nil {
		mergeExtra(v, p.Extra)
	}
	v.Del("id")
	return v, nil
}

type FindParams struct {
	ShortReference       string    `url:"shortReference,omitempty"`
	Currency             string    `url:"currency,omitempty"`
	Status               Status    `url:"status,omitempty"`
	SourceAccountID      string    `url:"sourceAccountId,omitempty"`
	DestinationAccountID string    `url:"destinationAccountId,omitempty"`
	AmountFrom           *Amount   `url:"amountFrom,omitempty"`
	AmountTo             *Amount   `url:"amountTo,omitempty"`
	CreatedAtFrom        time.Time `url:"createdAtFrom,omitempty" layout:"2006-01-02"`
	CreatedAtTo          time.Time `url:"createdAtTo,omitempty" layout:"2006-01-02"`
	Page                 int       `url:"page,omitempty"`
	PerPage              int       `url:"perPage,omitempty"`
	Order                string    `url:"order,omitempty"`
	OrderAscDesc         string    `url:"orderAscDesc,omitempty"`
	OnBehalfOf           string    `url:"onBehalfOf,omitempty"`

	Extra url.Values `url:"-"`
}

func (p *FindParams) Query() (url.Values, error) {
	v, err := query.Values(p)
	if err != nil {
		return nil, err
	}
	if p != nil {
		mergeExtra(v, p.Extra)
	}
	return v, nil
}

func mergeExtra(dst, extra url.Values) {
	for k, vals := range extra {
		for _, val := range vals {
			dst.Add(k, val)
		}
	}
}
