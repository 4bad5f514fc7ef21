package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dmitrijs2005/tqlclient/internal/client/httpapi"
	"github.com/stretchr/testify/require"
)

// ---- fake client ----

// fakeClient implements Client for ValidateService unit tests. The scoped
// helpers mimic the real client's discipline: run fn, record one release.
type fakeClient struct {
	// behavior
	CreateErr  error
	QueryErr   error
	AnalyzeErr map[string]error // per query text

	// recorded calls
	TempDBs      []string
	TempDeletes  int
	Transactions []httpapi.TransactionKind
	Queries      []string
	Analyzed     []string
}

func (f *fakeClient) WithTemporaryDatabase(ctx context.Context, prefix string, fn func(context.Context, string) error) error {
	if f.CreateErr != nil {
		return f.CreateErr
	}
	name := prefix + "-1"
	f.TempDBs = append(f.TempDBs, name)
	err := fn(ctx, name)
	f.TempDeletes++
	return err
}

func (f *fakeClient) WithTransaction(ctx context.Context, database string, kind httpapi.TransactionKind, fn func(context.Context, *httpapi.Transaction) error) error {
	f.Transactions = append(f.Transactions, kind)
	return fn(ctx, &httpapi.Transaction{ID: "tx-1", Kind: kind})
}

func (f *fakeClient) Query(ctx context.Context, transactionID, query string) (json.RawMessage, error) {
	f.Queries = append(f.Queries, query)
	return nil, f.QueryErr
}

func (f *fakeClient) Analyze(ctx context.Context, transactionID, query string) (json.RawMessage, error) {
	f.Analyzed = append(f.Analyzed, query)
	return nil, f.AnalyzeErr[query]
}

func TestValidate_CleanRun(t *testing.T) {
	t.Parallel()

	fc := &fakeClient{}
	svc := NewValidateService(fc)

	report, err := svc.Validate(context.Background(), "define person sub entity;", []string{"match $x isa person;", "match $y isa person;"})
	require.NoError(t, err)
	require.False(t, report.Failed())
	require.Len(t, report.Checks, 2)

	// one schema transaction for the schema, one read transaction per query
	require.Equal(t, []httpapi.TransactionKind{httpapi.Schema, httpapi.Read, httpapi.Read}, fc.Transactions)
	require.Equal(t, []string{"define person sub entity;"}, fc.Queries)
	require.Equal(t, 1, fc.TempDeletes)
}

func TestValidate_SyntaxErrorGoesIntoReport(t *testing.T) {
	t.Parallel()

	bad := "mtach $x isa person;"
	fc := &fakeClient{
		AnalyzeErr: map[string]error{
			bad: &httpapi.SyntaxError{APIError: httpapi.APIError{Code: httpapi.SyntaxErrorCode, Message: "unexpected token"}},
		},
	}
	svc := NewValidateService(fc)

	report, err := svc.Validate(context.Background(), "define person sub entity;", []string{bad, "match $x isa person;"})
	require.NoError(t, err)
	require.True(t, report.Failed())
	require.Len(t, report.Checks, 2)
	require.NotNil(t, report.Checks[0].Err)
	require.Equal(t, "unexpected token", report.Checks[0].Err.Message)
	require.Nil(t, report.Checks[1].Err)
}

func TestValidate_SchemaFailureAbortsRun(t *testing.T) {
	t.Parallel()

	boom := errors.New("schema broken")
	fc := &fakeClient{QueryErr: boom}
	svc := NewValidateService(fc)

	_, err := svc.Validate(context.Background(), "not a schema", []string{"match $x isa person;"})
	require.ErrorIs(t, err, boom)
	require.Empty(t, fc.Analyzed)
	require.Equal(t, 1, fc.TempDeletes, "temporary database must still be released")
}

func TestValidate_NonSyntaxAnalyzeFailureAborts(t *testing.T) {
	t.Parallel()

	q := "match $x isa person;"
	boom := &httpapi.APIError{Code: "SRV1", Message: "server on fire"}
	fc := &fakeClient{AnalyzeErr: map[string]error{q: boom}}
	svc := NewValidateService(fc)

	_, err := svc.Validate(context.Background(), "define person sub entity;", []string{q})
	var aerr *httpapi.APIError
	require.ErrorAs(t, err, &aerr)
}

func TestValidate_CreateFailurePropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("create failed")
	fc := &fakeClient{CreateErr: boom}
	svc := NewValidateService(fc)

	_, err := svc.Validate(context.Background(), "define person sub entity;", nil)
	require.ErrorIs(t, err, boom)
}
