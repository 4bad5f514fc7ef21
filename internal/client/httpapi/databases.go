package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// CreateDatabase creates a database with the given name.
func (c *Client) CreateDatabase(ctx context.Context, name string) error {
	_, err := invoke[struct{}](ctx, c, descriptor{
		name: "createDatabase",
		verb: http.MethodPost,
		path: fmt.Sprintf("/v1/databases/%s", url.PathEscape(name)),
	}, nil)
	return err
}

// DeleteDatabase deletes the database with the given name.
func (c *Client) DeleteDatabase(ctx context.Context, name string) error {
	_, err := invoke[struct{}](ctx, c, descriptor{
		name: "deleteDatabase",
		verb: http.MethodDelete,
		path: fmt.Sprintf("/v1/databases/%s", url.PathEscape(name)),
	}, nil)
	return err
}

// temporaryDatabaseName derives a collision-free name for a throwaway
// database from a caller-supplied label.
func temporaryDatabaseName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, now.UnixNano())
}

// WithTemporaryDatabase creates a throwaway database named after prefix,
// runs fn against it, and deletes it unconditionally when fn returns —
// also on failure, panic, or cancellation. Used for isolated validation
// runs that must not touch a shared database.
//
// A delete failure is returned as a *ReleaseError (joined onto fn's error
// if both fail): the leftover database is a leaked remote resource the
// caller cannot otherwise observe.
func (c *Client) WithTemporaryDatabase(ctx context.Context, prefix string, fn func(context.Context, string) error) (err error) {
	name := temporaryDatabaseName(prefix, time.Now())

	if err := c.CreateDatabase(ctx, name); err != nil {
		return err
	}

	defer func() {
		relCtx := context.WithoutCancel(ctx)
		if derr := c.DeleteDatabase(relCtx, name); derr != nil {
			rerr := &ReleaseError{Resource: "database", ID: name, Action: "delete", Err: derr}
			c.log.Error(relCtx, "database release failed", "database", name, "error", derr)
			err = errors.Join(err, rerr)
		}
	}()

	return fn(ctx, name)
}
