package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/logging"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*Server, *service.Service) {
	t.Helper()

	backend, err := store.NewStore(filepath.Join(t.TempDir(), "tally.db"), migrations.FS, 1)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = backend.Close()
	})

	cfg := config.NewDefault()
	svc := service.NewService(backend, cfg, logging.Discard())

	ctx := context.Background()
	_, err = svc.Account.CreateAccount(ctx, "acc-1", decimal.RequireFromString("100.00"))
	require.NoError(t, err)
	_, err = svc.Account.CreateAccount(ctx, "acc-2", decimal.Zero)
	require.NoError(t, err)

	return New(svc, cfg, logging.Discard()), svc
}

func do(t *testing.T, s *Server, method, target, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func doList(t *testing.T, s *Server, target string) (int, []map[string]any) {
	t.Helper()

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out []map[string]any
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp.StatusCode, out
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}

func TestTransferCreated(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := do(t, s, http.MethodPost, "/api/transfer", `{"from":"acc-1","to":"acc-2","amount":"30.00"}`)
	require.Equal(t, http.StatusCreated, code, body)

	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "30.00", body["amount"])
	assert.Equal(t, "completed", body["status"])
	_, hasTo := body["to"]
	assert.False(t, hasTo)

	from, ok := body["from"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "acc-1", from["id"])
	assert.Equal(t, "70.00", from["balance"])

	code, account := do(t, s, http.MethodGet, "/api/accounts/acc-2", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "30.00", account["balance"])
}

func TestTransferNumericAmount(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := do(t, s, http.MethodPost, "/api/transfer", `{"from":"acc-1","to":"acc-2","amount":12.5}`)
	require.Equal(t, http.StatusCreated, code, body)
	assert.Equal(t, "12.50", body["amount"])
}

func TestTransferInsufficientFunds(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := do(t, s, http.MethodPost, "/api/transfer", `{"from":"acc-1","to":"acc-2","amount":"500.00"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "insufficient_funds", body["kind"])
	assert.Equal(t, insufficientFundsCause, body["cause"])
	assert.EqualValues(t, http.StatusBadRequest, body["code"])

	_, account := do(t, s, http.MethodGet, "/api/accounts/acc-1", "")
	assert.Equal(t, "100.00", account["balance"])
}

func TestTransferErrors(t *testing.T) {
	s, _ := newTestServer(t)

	cases := []struct {
		name string
		body string
		code int
		kind string
	}{
		{"unknown account", `{"from":"acc-1","to":"ghost","amount":"1"}`, http.StatusNotFound, "not_found"},
		{"self transfer", `{"from":"acc-1","to":"acc-1","amount":"1"}`, http.StatusBadRequest, "invalid_transfer"},
		{"zero amount", `{"from":"acc-1","to":"acc-2","amount":"0"}`, http.StatusBadRequest, "invalid_transfer"},
		{"missing amount", `{"from":"acc-1","to":"acc-2"}`, http.StatusBadRequest, "invalid_transfer"},
		{"malformed json", `{"from":`, http.StatusBadRequest, "malformed_request"},
		{"bad amount", `{"from":"acc-1","to":"acc-2","amount":"ten"}`, http.StatusBadRequest, "malformed_request"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := do(t, s, http.MethodPost, "/api/transfer", tc.body)
			assert.Equal(t, tc.code, code, body)
			assert.Equal(t, tc.kind, body["kind"])
			assert.EqualValues(t, tc.code, body["code"])
		})
	}
}

func TestGetAccountNotFound(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := do(t, s, http.MethodGet, "/api/accounts/ghost", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "no such account", body["error"])
}

func TestListEndpoints(t *testing.T) {
	s, svc := newTestServer(t)
	ctx := context.Background()

	receipt, err := svc.Transfer.Transfer(ctx, "acc-1", "acc-2", decimal.NewFromInt(5))
	require.NoError(t, err)

	code, accounts := doList(t, s, "/api/accounts")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, accounts, 2)
	assert.Equal(t, "acc-1", accounts[0]["id"])
	assert.Equal(t, "95.00", accounts[0]["balance"])

	code, txs := doList(t, s, "/api/transactions?limit=10")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, txs, 1)
	assert.Equal(t, receipt.ID, txs[0]["id"])
	assert.Equal(t, "acc-2", txs[0]["to"])

	code, txs = doList(t, s, "/api/accounts/acc-2/transactions")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, txs, 1)

	code, tx := do(t, s, http.MethodGet, "/api/transactions/"+receipt.ID, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "5.00", tx["amount"])

	code, _ = do(t, s, http.MethodGet, "/api/transactions/nope", "")
	assert.Equal(t, http.StatusNotFound, code)

	code, body := do(t, s, http.MethodGet, "/api/transactions?limit=-3", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "malformed_request", body["kind"])

	code, _ = do(t, s, http.MethodGet, "/api/accounts/ghost/transactions", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestUnknownRoute(t *testing.T) {
	s, _ := newTestServer(t)

	code, body := do(t, s, http.MethodGet, "/api/nothing", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", body["kind"])
}

func TestErrorBodyHidesStorageDetail(t *testing.T) {
	body := errorBody(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, body.Code)
	assert.Equal(t, "storage failure", body.Error)
	assert.Empty(t, body.Cause)
}
