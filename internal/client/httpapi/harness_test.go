package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/tqlclient/internal/client/auth"
	"github.com/dmitrijs2005/tqlclient/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testCreds = auth.Credentials{Username: "alice", Password: "pw"}

// testToken builds a signed bearer token expiring at exp.
func testToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   testCreds.Username,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set(common.ContentTypeHeader, common.ContentTypeJSON)
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// newTestClient wires a client to a test server built around mux. The
// sign-in route is registered here so authenticated routes work out of the
// box; the returned counter reports how many sign-ins the server saw.
func newTestClient(t *testing.T, mux *http.ServeMux, opts ...Option) (*Client, *int64) {
	t.Helper()

	var signIns int64
	token := testToken(t, time.Now().Add(time.Hour))

	mux.HandleFunc("POST /v1/signin", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&signIns, 1)
		var req signInRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Username != testCreds.Username || req.Password != testCreds.Password {
			writeJSON(t, w, http.StatusUnauthorized, APIError{Code: "AUT1", Message: "invalid credentials"})
			return
		}
		writeJSON(t, w, http.StatusOK, auth.Token{Token: token})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return New(srv.URL, testCreds, opts...), &signIns
}

// requireBearer asserts the request carries the expected Authorization header.
func requireBearer(t *testing.T, r *http.Request) {
	t.Helper()
	h := r.Header.Get(common.AuthorizationHeader)
	require.True(t, len(h) > len(common.BearerPrefix), "missing bearer token on %s", r.URL.Path)
}
