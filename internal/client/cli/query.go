package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tqlclient/internal/client/httpapi"
	"github.com/dmitrijs2005/tqlclient/internal/filex"
)

// query runs a query file in a one-shot transaction: `query <file> [kind]`.
// The kind defaults to read; write and schema transactions are committed.
func (a *App) query(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: query <file> [read|write|schema]")
	}

	database, err := a.requireDatabase()
	if err != nil {
		return err
	}

	kind := httpapi.Read
	if len(args) == 2 {
		switch httpapi.TransactionKind(args[1]) {
		case httpapi.Read, httpapi.Write, httpapi.Schema:
			kind = httpapi.TransactionKind(args[1])
		default:
			return fmt.Errorf("unknown transaction kind %q", args[1])
		}
	}

	text, err := filex.ReadSource(args[0])
	if err != nil {
		return err
	}

	answer, err := a.api.QueryOneShot(ctx, database, kind, kind != httpapi.Read, text)
	if err != nil {
		var serr *httpapi.SyntaxError
		if errors.As(err, &serr) {
			return fmt.Errorf("%s: %w", args[0], serr)
		}
		return err
	}

	fmt.Fprintln(a.out, string(answer))
	return nil
}
