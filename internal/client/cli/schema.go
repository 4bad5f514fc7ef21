package cli

import (
	"context"
	"fmt"
)

// schema prints the configured database's schema, or only its type
// definitions when typesOnly is set.
func (a *App) schema(ctx context.Context, typesOnly bool) error {
	database, err := a.requireDatabase()
	if err != nil {
		return err
	}

	var text string
	if typesOnly {
		text, err = a.api.GetDatabaseTypeSchema(ctx, database)
	} else {
		text, err = a.api.GetDatabaseSchema(ctx, database)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, text)
	return nil
}
