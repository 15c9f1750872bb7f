package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	domain_transfer "github.com/PedroCamargo-dev/transfers-client/internal/domain/transfer"
	port_transfer "github.com/PedroCamargo-dev/transfers-client/internal/ports/usecase/transfer"
	"golang.org/x/sync/errgroup"
)

const (
	exitOK     = 0
	exitRemote = 1
	exitUsage  = 2
)

const dateLayout = "2006-01-02"

type cli struct {
	ops    port_transfer.TransferOperations
	stdout io.Writer
	stderr io.Writer
}

func (c *cli) dispatch(ctx context.Context, args []string) int {
	if len(args) == 0 {
		c.usage()
		return exitUsage
	}

	switch args[0] {
	case "create":
		return c.create(ctx, args[1:])
	case "get":
		return c.get(ctx, args[1:])
	case "find":
		return c.find(ctx, args[1:])
	case "help", "-h", "--help":
		c.usage()
		return exitOK
	default:
		fmt.Fprintf(c.stderr, "unknown command %q\n", args[0])
		c.usage()
		return exitUsage
	}
}

func (c *cli) usage() {
	fmt.Fprintln(c.stderr, "usage: transfers <create|get|find> [flags]")
	fmt.Fprintln(c.stderr, "  create -source ID -destination ID -currency CUR -amount N [-reason R] [-unique-request-id K]")
	fmt.Fprintln(c.stderr, "  get [-on-behalf-of ID] ID...")
	fmt.Fprintln(c.stderr, "  find [-currency CUR] [-status S] [-page N] [-per-page N] ...")
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func (c *cli) create(ctx context.Context, args []string) int {
	var (
		p      domain_transfer.CreateParams
		amount string
	)

	fs := c.flagSet("create")
	fs.StringVar(&p.SourceAccountID, "source", "", "source account id")
	fs.StringVar(&p.DestinationAccountID, "destination", "", "destination account id")
	fs.StringVar(&p.Currency, "currency", "", "currency code")
	fs.StringVar(&amount, "amount", "", "amount to transfer")
	fs.StringVar(&p.Reason, "reason", "", "user-visible reason")
	fs.StringVar(&p.UniqueRequestID, "unique-request-id", "", "idempotency key")
	fs.StringVar(&p.OnBehalfOf, "on-behalf-of", "", "contact id to act for")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if amount != "" {
		a, err := domain_transfer.ParseAmount(amount)
		if err != nil {
			fmt.Fprintln(c.stderr, err)
			return exitUsage
		}
		p.Amount = a
	}

	call, err := c.ops.Create(ctx, &p)
	if err != nil {
		return c.fail(err)
	}

	t, err := call.Wait(ctx)
	if err != nil {
		return c.fail(err)
	}

	return c.print(t)
}

func (c *cli) get(ctx context.Context, args []string) int {
	var onBehalfOf string

	fs := c.flagSet("get")
	fs.StringVar(&onBehalfOf, "on-behalf-of", "", "contact id to act for")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	ids := fs.Args()
	if len(ids) == 0 {
		ids = []string{""}
	}

	params := make([]*domain_transfer.GetParams, len(ids))
	for i, id := range ids {
		params[i] = &domain_transfer.GetParams{ID: id, OnBehalfOf: onBehalfOf}
		if err := params[i].Validate(); err != nil {
			return c.fail(err)
		}
	}

	results := make([]*domain_transfer.Transfer, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range params {
		g.Go(func() error {
			call, err := c.ops.Get(gctx, p)
			if err != nil {
				return err
			}
			t, err := call.Wait(gctx)
			if err != nil {
				return err
			}
			results[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return c.fail(err)
	}

	if len(results) == 1 {
		return c.print(results[0])
	}
	return c.print(results)
}

func (c *cli) find(ctx context.Context, args []string) int {
	var (
		p           domain_transfer.FindParams
		status      string
		amountFrom  string
		amountTo    string
		createdFrom string
		createdTo   string
	)

	fs := c.flagSet("find")
	fs.StringVar(&p.ShortReference, "short-reference", "", "short reference")
	fs.StringVar(&p.Currency, "currency", "", "currency code")
	fs.StringVar(&status, "status", "", "pending, completed or cancelled")
	fs.StringVar(&p.SourceAccountID, "source", "", "source account id")
	fs.StringVar(&p.DestinationAccountID, "destination", "", "destination account id")
	fs.StringVar(&amountFrom, "amount-from", "", "minimum amount")
	fs.StringVar(&amountTo, "amount-to", "", "maximum amount")
	fs.StringVar(&createdFrom, "created-at-from", "", "earliest creation date (YYYY-MM-DD)")
	fs.StringVar(&createdTo, "created-at-to", "", "latest creation date (YYYY-MM-DD)")
	fs.IntVar(&p.Page, "page", 0, "page number")
	fs.IntVar(&p.PerPage, "per-page", 0, "results per page")
	fs.StringVar(&p.Order, "order", "", "field to order by")
	fs.StringVar(&p.OrderAscDesc, "order-asc-desc", "", "asc or desc")
	fs.StringVar(&p.OnBehalfOf, "on-behalf-of", "", "contact id to act for")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	p.Status = domain_transfer.Status(status)
	if status != "" && !p.Status.Valid() {
		fmt.Fprintf(c.stderr, "invalid status %q\n", status)
		return exitUsage
	}

	var err error
	if p.AmountFrom, err = optionalAmount(amountFrom); err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitUsage
	}
	if p.AmountTo, err = optionalAmount(amountTo); err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitUsage
	}
	if p.CreatedAtFrom, err = optionalDate(createdFrom); err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitUsage
	}
	if p.CreatedAtTo, err = optionalDate(createdTo); err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitUsage
	}

	call, err := c.ops.Find(ctx, &p)
	if err != nil {
		return c.fail(err)
	}

	list, err := call.Wait(ctx)
	if err != nil {
		return c.fail(err)
	}

	return c.print(list)
}

func optionalAmount(s string) (*domain_transfer.Amount, error) {
	if s == "" {
		return nil, nil
	}
	return domain_transfer.ParseAmount(s)
}

func optionalDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func (c *cli) fail(err error) int {
	fmt.Fprintln(c.stderr, err)
	if errors.Is(err, domain_transfer.ErrMissingParameter) {
		return exitUsage
	}
	return exitRemote
}

func (c *cli) print(v any) int {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitRemote
	}
	return exitOK
}
