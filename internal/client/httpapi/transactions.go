package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// TransactionKind selects the transaction mode on open and determines the
// terminal action WithTransaction takes on successful scope exit.
type TransactionKind string

const (
	Read   TransactionKind = "read"
	Write  TransactionKind = "write"
	Schema TransactionKind = "schema"
)

// Transaction is a handle to a server-side transaction. It is owned by the
// scope that opened it until exactly one of close/commit/rollback is issued;
// the server, not the client, rejects operations against a terminated id.
type Transaction struct {
	ID   string
	Kind TransactionKind
}

// OpenTransaction opens a transaction of the given kind on the database.
// Prefer WithTransaction unless the transaction has to outlive the current
// scope: the caller then owns the terminal call.
func (c *Client) OpenTransaction(ctx context.Context, database string, kind TransactionKind) (*Transaction, error) {
	resp, err := invoke[openTransactionResponse](ctx, c, descriptor{
		name: "openTransaction",
		verb: http.MethodPost,
		path: "/v1/transactions/open",
	}, openTransactionRequest{DatabaseName: database, TransactionType: kind})
	if err != nil {
		return nil, err
	}
	return &Transaction{ID: resp.TransactionID, Kind: kind}, nil
}

// CloseTransaction closes the transaction without persisting anything.
func (c *Client) CloseTransaction(ctx context.Context, transactionID string) error {
	_, err := invoke[struct{}](ctx, c, descriptor{
		name: "closeTransaction",
		verb: http.MethodPost,
		path: fmt.Sprintf("/v1/transactions/%s/close", url.PathEscape(transactionID)),
	}, nil)
	return err
}

// CommitTransaction persists the transaction's changes and terminates it.
func (c *Client) CommitTransaction(ctx context.Context, transactionID string) error {
	_, err := invoke[struct{}](ctx, c, descriptor{
		name: "commitTransaction",
		verb: http.MethodPost,
		path: fmt.Sprintf("/v1/transactions/%s/commit", url.PathEscape(transactionID)),
	}, nil)
	return err
}

// RollbackTransaction discards the transaction's changes and terminates it.
func (c *Client) RollbackTransaction(ctx context.Context, transactionID string) error {
	_, err := invoke[struct{}](ctx, c, descriptor{
		name: "rollbackTransaction",
		verb: http.MethodPost,
		path: fmt.Sprintf("/v1/transactions/%s/rollback", url.PathEscape(transactionID)),
	}, nil)
	return err
}

// WithTransaction opens a transaction, runs fn inside it, and guarantees
// exactly one terminal call no matter how fn exits:
//
//   - fn fails, panics, or the context is cancelled: the transaction is
//     closed. A close failure is a *ReleaseError joined onto fn's error,
//     because an open transaction left behind is a leaked remote resource.
//   - fn succeeds: Read transactions are closed (nothing to persist),
//     Write and Schema transactions are committed. A failure of that
//     terminal call is returned as a *ReleaseError.
//
// Release calls run on a context detached from cancellation so that an
// abandoned caller still releases what it acquired.
func (c *Client) WithTransaction(ctx context.Context, database string, kind TransactionKind, fn func(context.Context, *Transaction) error) (err error) {
	tx, err := c.OpenTransaction(ctx, database, kind)
	if err != nil {
		return err
	}

	released := false
	defer func() {
		if released {
			return
		}
		relCtx := context.WithoutCancel(ctx)
		if cerr := c.CloseTransaction(relCtx, tx.ID); cerr != nil {
			rerr := &ReleaseError{Resource: "transaction", ID: tx.ID, Action: "close", Err: cerr}
			c.log.Error(relCtx, "transaction release failed", "transactionId", tx.ID, "error", cerr)
			err = errors.Join(err, rerr)
		}
	}()

	if err = fn(ctx, tx); err != nil {
		return err
	}

	released = true
	relCtx := context.WithoutCancel(ctx)

	if kind == Read {
		if cerr := c.CloseTransaction(relCtx, tx.ID); cerr != nil {
			return &ReleaseError{Resource: "transaction", ID: tx.ID, Action: "close", Err: cerr}
		}
		return nil
	}
	if cerr := c.CommitTransaction(relCtx, tx.ID); cerr != nil {
		return &ReleaseError{Resource: "transaction", ID: tx.ID, Action: "commit", Err: cerr}
	}
	return nil
}
