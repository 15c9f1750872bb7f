package sandbox

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/transfers-client/internal/domain/transfer"
	port_persistence "github.com/PedroCamargo-dev/transfers-client/internal/ports/gateway/persistence"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type errorMessage struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params"`
}

type errorBody struct {
	ErrorCode     string                    `json:"error_code"`
	ErrorMessages map[string][]errorMessage `json:"error_messages"`
}

type handler struct {
	svc    *Service
	logger *slog.Logger
}

// NewRouter serves the transfers endpoints. Parameters are read from the query
// string on every route, POST included.
func NewRouter(svc *Service, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	h := &handler{svc: svc, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Route("/v2/transfers", func(r chi.Router) {
		r.Post("/create", h.create)
		r.Get("/find", h.find)
		r.Get("/{id}", h.get)
	})

	return r
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	t, err := h.svc.Create(r.Context(), CreateInput{
		SourceAccountID:      q.Get("source_account_id"),
		DestinationAccountID: q.Get("destination_account_id"),
		Currency:             q.Get("currency"),
		Amount:               q.Get("amount"),
		Reason:               q.Get("reason"),
		UniqueRequestID:      q.Get("unique_request_id"),
		OnBehalfOf:           q.Get("on_behalf_of"),
	})
	if err != nil {
		h.writeError(w, r, "transfer_create_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(id); err == nil {
			id = unescaped
		}
	}

	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "transfer_not_found", err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (h *handler) find(w http.ResponseWriter, r *http.Request) {
	in, err := parseFindInput(r.URL.Query())
	if err != nil {
		h.writeError(w, r, "transfer_find_failed", err)
		return
	}

	list, err := h.svc.Find(r.Context(), in)
	if err != nil {
		h.writeError(w, r, "transfer_find_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func parseFindInput(q url.Values) (FindInput, error) {
	in := FindInput{
		Criteria: port_persistence.Criteria{
			ShortReference:       q.Get("short_reference"),
			Currency:             strings.ToUpper(strings.TrimSpace(q.Get("currency"))),
			Status:               domain_transfer.Status(q.Get("status")),
			SourceAccountID:      q.Get("source_account_id"),
			DestinationAccountID: q.Get("destination_account_id"),
			Descending:           q.Get("order_asc_desc") == "desc",
		},
	}

	for _, bound := range []struct {
		key string
		dst **decimal.Decimal
	}{
		{"amount_from", &in.Criteria.AmountFrom},
		{"amount_to", &in.Criteria.AmountTo},
	} {
		raw := q.Get(bound.key)
		if raw == "" {
			continue
		}
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return FindInput{}, &FieldError{Field: bound.key, Code: bound.key + "_type_is_wrong", Err: domain_transfer.ErrInvalidAmount}
		}
		*bound.dst = &d
	}

	switch order := q.Get("order"); order {
	case "", port_persistence.OrderCreatedAt, port_persistence.OrderUpdatedAt:
		in.Criteria.OrderBy = order
	default:
		return FindInput{}, &FieldError{Field: "order", Code: "order_is_invalid", Err: ErrInvalidOrder}
	}

	from, err := parseDate(q.Get("created_at_from"))
	if err != nil {
		return FindInput{}, &FieldError{Field: "created_at_from", Code: "created_at_from_is_in_invalid_format", Err: ErrInvalidDate}
	}
	to, err := parseDate(q.Get("created_at_to"))
	if err != nil {
		return FindInput{}, &FieldError{Field: "created_at_to", Code: "created_at_to_is_in_invalid_format", Err: ErrInvalidDate}
	}
	in.Criteria.CreatedFrom = from
	if !to.IsZero() {
		// created_at_to names a whole day.
		in.Criteria.CreatedBefore = to.AddDate(0, 0, 1)
	}

	if in.Page, err = atoiOrZero(q.Get("page")); err != nil {
		return FindInput{}, &FieldError{Field: "page", Code: "page_type_is_wrong", Err: ErrInvalidPage}
	}
	if in.PerPage, err = atoiOrZero(q.Get("per_page")); err != nil {
		return FindInput{}, &FieldError{Field: "per_page", Code: "per_page_type_is_wrong", Err: ErrInvalidPage}
	}

	return in, nil
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

func atoiOrZero(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func (h *handler) writeError(w http.ResponseWriter, r *http.Request, code string, err error) {
	var fieldErr *FieldError

	switch {
	case errors.As(err, &fieldErr):
		writeJSON(w, http.StatusBadRequest, errorBody{
			ErrorCode: code,
			ErrorMessages: map[string][]errorMessage{
				fieldErr.Field: {{Code: fieldErr.Code, Message: fieldErr.Err.Error(), Params: map[string]any{}}},
			},
		})
	case errors.Is(err, ErrInvalidPage):
		writeJSON(w, http.StatusBadRequest, errorBody{
			ErrorCode: code,
			ErrorMessages: map[string][]errorMessage{
				"per_page": {{Code: "per_page_is_invalid", Message: err.Error(), Params: map[string]any{}}},
			},
		})
	case errors.Is(err, port_persistence.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{
			ErrorCode: "transfer_not_found",
			ErrorMessages: map[string][]errorMessage{
				"id": {{Code: "transfer_not_found", Message: "Transfer was not found for this id", Params: map[string]any{}}},
			},
		})
	default:
		h.logger.ErrorContext(r.Context(), "sandbox request failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{
			ErrorCode:     "internal_server_error",
			ErrorMessages: map[string][]errorMessage{},
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.InfoContext(r.Context(), "sandbox request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"elapsed", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
