package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tqlclient/internal/filex"
)

// check validates a schema file plus query files against a throwaway
// database: `check <schema-file> <query-file>...`.
func (a *App) check(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: check <schema-file> <query-file>...")
	}

	schema, err := filex.ReadSource(args[0])
	if err != nil {
		return err
	}
	queries, err := filex.ReadSources(args[1:])
	if err != nil {
		return err
	}

	report, err := a.validator.Validate(ctx, schema, queries)
	if err != nil {
		return err
	}

	for i, c := range report.Checks {
		if c.Err != nil {
			fmt.Fprintf(a.out, "FAIL %s: %s\n", args[1+i], c.Err.Message)
		} else {
			fmt.Fprintf(a.out, "OK   %s\n", args[1+i])
		}
	}

	if report.Failed() {
		return errors.New("validation failed")
	}
	return nil
}
