package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/tqlclient/internal/client/auth"
)

// SignIn authenticates the given credentials and returns the issued token.
// This is the only operation that carries no bearer token. It also serves
// as the auth.Authenticator behind the token cache, so callers normally
// never invoke it themselves.
func (c *Client) SignIn(ctx context.Context, creds auth.Credentials) (auth.Token, error) {
	body := signInRequest{Username: creds.Username, Password: creds.Password}
	return invoke[auth.Token](ctx, c, descriptor{
		name:   "signIn",
		verb:   http.MethodPost,
		path:   "/v1/signin",
		noAuth: true,
	}, body)
}

// GetCurrentUser fetches the server's view of the configured user.
func (c *Client) GetCurrentUser(ctx context.Context) (User, error) {
	return invoke[User](ctx, c, descriptor{
		name: "getCurrentUser",
		verb: http.MethodGet,
		path: fmt.Sprintf("/v1/users/%s", url.PathEscape(c.creds.Username)),
	}, nil)
}

// GetDatabases lists all databases on the server.
func (c *Client) GetDatabases(ctx context.Context) ([]Database, error) {
	resp, err := invoke[databasesResponse](ctx, c, descriptor{
		name: "getDatabases",
		verb: http.MethodGet,
		path: "/v1/databases",
	}, nil)
	if err != nil {
		return nil, err
	}
	return resp.Databases, nil
}

// GetDatabaseSchema returns the database's schema as TQL text.
func (c *Client) GetDatabaseSchema(ctx context.Context, database string) (string, error) {
	return invoke[string](ctx, c, descriptor{
		name: "getDatabaseSchema",
		verb: http.MethodGet,
		path: fmt.Sprintf("/v1/databases/%s/schema", url.PathEscape(database)),
	}, nil)
}

// GetDatabaseTypeSchema returns only the type definitions of the database's
// schema as TQL text.
func (c *Client) GetDatabaseTypeSchema(ctx context.Context, database string) (string, error) {
	return invoke[string](ctx, c, descriptor{
		name: "getDatabaseTypeSchema",
		verb: http.MethodGet,
		path: fmt.Sprintf("/v1/databases/%s/type-schema", url.PathEscape(database)),
	}, nil)
}

// Analyze submits query text for a server-side syntax check inside the given
// transaction. A *SyntaxError reports the rejection; the successful answer
// payload is returned undecoded.
func (c *Client) Analyze(ctx context.Context, transactionID, query string) (json.RawMessage, error) {
	return invoke[json.RawMessage](ctx, c, descriptor{
		name: "analyze",
		verb: http.MethodPost,
		path: fmt.Sprintf("/v1/transactions/%s/analyze", url.PathEscape(transactionID)),
	}, queryRequest{Query: query})
}

// Query runs query text inside the given transaction and returns the answer
// payload undecoded.
func (c *Client) Query(ctx context.Context, transactionID, query string) (json.RawMessage, error) {
	return invoke[json.RawMessage](ctx, c, descriptor{
		name: "query",
		verb: http.MethodPost,
		path: fmt.Sprintf("/v1/transactions/%s/query", url.PathEscape(transactionID)),
	}, queryRequest{Query: query})
}

// QueryOneShot runs query text in a server-managed transaction of the given
// kind, committing it when commit is true.
func (c *Client) QueryOneShot(ctx context.Context, database string, kind TransactionKind, commit bool, query string) (json.RawMessage, error) {
	return invoke[json.RawMessage](ctx, c, descriptor{
		name: "oneShotQuery",
		verb: http.MethodPost,
		path: "/v1/query",
	}, oneShotQueryRequest{
		Query:           query,
		DatabaseName:    database,
		TransactionType: kind,
		Commit:          commit,
	})
}
