// Package services contains application services for the CLI, built on the
// public operations of the HTTP API client.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tqlclient/internal/client/httpapi"
)

// Client is the subset of the API client the services need. Kept as an
// interface so tests can substitute a fake.
type Client interface {
	WithTemporaryDatabase(ctx context.Context, prefix string, fn func(context.Context, string) error) error
	WithTransaction(ctx context.Context, database string, kind httpapi.TransactionKind, fn func(context.Context, *httpapi.Transaction) error) error
	Query(ctx context.Context, transactionID, query string) (json.RawMessage, error)
	Analyze(ctx context.Context, transactionID, query string) (json.RawMessage, error)
}

// QueryCheck is the validation outcome for one query source.
type QueryCheck struct {
	Source string
	Err    *httpapi.SyntaxError // nil when the query parsed cleanly
}

// ValidationReport summarizes one validation run.
type ValidationReport struct {
	Checks []QueryCheck
}

// Failed reports whether any query was rejected.
func (r *ValidationReport) Failed() bool {
	for _, c := range r.Checks {
		if c.Err != nil {
			return true
		}
	}
	return false
}

// ValidateService checks a schema plus query sources against a throwaway
// database, so validation never touches a shared one.
//
// Contract:
//   - Validate: create a temporary database, define the schema in it, then
//     analyze each query against that schema. Syntax rejections go into the
//     report; any other failure aborts the run. The temporary database is
//     deleted however the run ends.
type ValidateService interface {
	Validate(ctx context.Context, schema string, queries []string) (*ValidationReport, error)
}

type validateService struct {
	client Client
}

// NewValidateService constructs a ValidateService bound to the given API client.
func NewValidateService(client Client) ValidateService {
	return &validateService{client: client}
}

func (s *validateService) Validate(ctx context.Context, schema string, queries []string) (*ValidationReport, error) {
	report := &ValidationReport{}

	err := s.client.WithTemporaryDatabase(ctx, "validate", func(ctx context.Context, database string) error {
		if err := s.defineSchema(ctx, database, schema); err != nil {
			return fmt.Errorf("define schema: %w", err)
		}

		for i, q := range queries {
			check, err := s.analyzeQuery(ctx, database, q)
			if err != nil {
				return fmt.Errorf("analyze query %d: %w", i+1, err)
			}
			report.Checks = append(report.Checks, check)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// defineSchema loads the schema in a schema transaction; the scoped helper
// commits it on success.
func (s *validateService) defineSchema(ctx context.Context, database, schema string) error {
	return s.client.WithTransaction(ctx, database, httpapi.Schema, func(ctx context.Context, tx *httpapi.Transaction) error {
		_, err := s.client.Query(ctx, tx.ID, schema)
		return err
	})
}

// analyzeQuery runs the server-side syntax check in a read transaction.
// A syntax rejection is a result, not a failure of the run.
func (s *validateService) analyzeQuery(ctx context.Context, database, query string) (QueryCheck, error) {
	check := QueryCheck{Source: query}

	err := s.client.WithTransaction(ctx, database, httpapi.Read, func(ctx context.Context, tx *httpapi.Transaction) error {
		_, err := s.client.Analyze(ctx, tx.ID, query)
		return err
	})
	if err != nil {
		var serr *httpapi.SyntaxError
		if errors.As(err, &serr) {
			check.Err = serr
			return check, nil
		}
		return check, err
	}
	return check, nil
}
