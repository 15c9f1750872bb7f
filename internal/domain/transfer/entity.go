package domain_transfer

import (
	"time"

	"github.com/shopspring/decimal"
)

type Transfer struct {
	ID                   string          `json:"id"`
	ShortReference       string          `json:"short_reference"`
	SourceAccountID      string          `json:"source_account_id"`
	DestinationAccountID string          `json:"destination_account_id"`
	Currency             string          `json:"currency"`
	Amount               decimal.Decimal `json:"amount"`
	Status               Status          `json:"status"`
	Reason               string          `json:"reason"`
	CreatorAccountID     string          `json:"creator_account_id"`
	CreatorContactID     string          `json:"creator_contact_id"`
	UniqueRequestID      string          `json:"unique_request_id,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	CompletedAt          *time.Time      `json:"completed_at"`
}

// TransferList is a page of transfers as returned by the find endpoint.
type TransferList struct {
	Transfers  []Transfer `json:"transfers"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	TotalEntries int    `json:"total_entries"`
	TotalPages   int    `json:"total_pages"`
	CurrentPage  int    `json:"current_page"`
	PerPage      int    `json:"per_page"`
	PreviousPage int    `json:"previous_page"`
	NextPage     int    `json:"next_page"`
	Order        string `json:"order"`
	OrderAscDesc string `json:"order_asc_desc"`
}
