package cli

import (
	"context"
	"errors"
	"fmt"
)

// databases handles `databases`, `databases create <name>` and
// `databases delete <name>`.
func (a *App) databases(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.listDatabases(ctx)
	}

	switch args[0] {
	case "create":
		if len(args) != 2 {
			return errors.New("usage: databases create <name>")
		}
		if err := a.api.CreateDatabase(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "created database %s\n", args[1])
		return nil

	case "delete":
		if len(args) != 2 {
			return errors.New("usage: databases delete <name>")
		}
		if err := a.api.DeleteDatabase(ctx, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "deleted database %s\n", args[1])
		return nil

	default:
		return fmt.Errorf("unknown databases subcommand %q", args[0])
	}
}

func (a *App) listDatabases(ctx context.Context) error {
	dbs, err := a.api.GetDatabases(ctx)
	if err != nil {
		return err
	}
	if len(dbs) == 0 {
		fmt.Fprintln(a.out, "no databases")
		return nil
	}
	for _, db := range dbs {
		fmt.Fprintln(a.out, db.Name)
	}
	return nil
}
