// Package cli wires configuration, the API client, and application services
// into the command-line surface. It is thin glue: every command is a direct
// call into the client's public operations.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/tqlclient/internal/client/auth"
	"github.com/dmitrijs2005/tqlclient/internal/client/config"
	"github.com/dmitrijs2005/tqlclient/internal/client/httpapi"
	"github.com/dmitrijs2005/tqlclient/internal/client/services"
)

// api is the slice of the HTTP client the CLI commands consume.
type api interface {
	GetCurrentUser(ctx context.Context) (httpapi.User, error)
	GetDatabases(ctx context.Context) ([]httpapi.Database, error)
	CreateDatabase(ctx context.Context, name string) error
	DeleteDatabase(ctx context.Context, name string) error
	GetDatabaseSchema(ctx context.Context, database string) (string, error)
	GetDatabaseTypeSchema(ctx context.Context, database string) (string, error)
	QueryOneShot(ctx context.Context, database string, kind httpapi.TransactionKind, commit bool, query string) (json.RawMessage, error)
}

type App struct {
	config    *config.Config
	api       api
	validator services.ValidateService
	out       io.Writer
}

// NewApp builds the App from configuration. The password is prompted for
// when not configured, so it never has to live in a config file.
func NewApp(cfg *config.Config) (*App, error) {
	if cfg.Username == "" {
		return nil, errors.New("username is required (-u flag or config file)")
	}

	password := cfg.Password
	if password == "" {
		pw, err := GetPassword(os.Stderr)
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		password = string(pw)
	}

	client := httpapi.New(cfg.Endpoint,
		auth.Credentials{Username: cfg.Username, Password: password},
		httpapi.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	)

	return &App{
		config:    cfg,
		api:       client,
		validator: services.NewValidateService(client),
		out:       os.Stdout,
	}, nil
}

// Run dispatches one command. args is the positional remainder of the
// command line (flags are consumed by the config loader).
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return errors.New("no command given")
	}

	cmd, rest := args[0], args[1:]

	switch cmd {
	case "user":
		return a.user(ctx)
	case "databases":
		return a.databases(ctx, rest)
	case "schema":
		return a.schema(ctx, false)
	case "type-schema":
		return a.schema(ctx, true)
	case "query":
		return a.query(ctx, rest)
	case "check":
		return a.check(ctx, rest)
	case "help":
		a.usage()
		return nil
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, `Usage: tql [flags] <command>

Commands:
  user                          show the signed-in user
  databases [create|delete <name>]
                                list, create or delete databases
  schema                        print the schema of the configured database
  type-schema                   print only the type definitions
  query <file> [read|write|schema]
                                run a query file in a one-shot transaction
  check <schema-file> <query-file>...
                                validate sources against a throwaway database
  help                          show this help

Flags: -a endpoint, -u username, -p password, -d database, -t timeout, -c config file`)
}

func (a *App) user(ctx context.Context) error {
	u, err := a.api.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, u.Username)
	return nil
}

// requireDatabase guards the commands that need a configured database name.
func (a *App) requireDatabase() (string, error) {
	if a.config.Database == "" {
		return "", errors.New("database is required (-d flag or config file)")
	}
	return a.config.Database, nil
}
