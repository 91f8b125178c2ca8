package app

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shared-ledger/internal/config"
	"shared-ledger/internal/testutil"
	"shared-ledger/pkg/logger"
)

type apiClient struct {
	t      *testing.T
	server *httptest.Server
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()

	cfg := config.Config{
		CORSOrigins: []string{"http://localhost:5173"},
		Cache: config.CacheConfig{
			CategoriesTTL: time.Minute,
			GroupsTTL:     time.Minute,
		},
	}
	handler, err := BuildHandler(cfg, testutil.OpenSQLite(t), prometheus.NewRegistry(), logger.Discard())
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &apiClient{t: t, server: server}
}

func (c *apiClient) do(method, path string, query url.Values, payload any) (int, []byte) {
	c.t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(c.t, err)
		body = bytes.NewReader(data)
	}

	target := c.server.URL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequest(method, target, body)
	require.NoError(c.t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.server.Client().Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)
	return resp.StatusCode, data
}

func (c *apiClient) decode(data []byte, dst any) {
	c.t.Helper()
	require.NoError(c.t, json.Unmarshal(data, dst), string(data))
}

func (c *apiClient) errorCode(data []byte) string {
	c.t.Helper()
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	c.decode(data, &envelope)
	return envelope.Error.Code
}

func (c *apiClient) register(username string) {
	c.t.Helper()
	status, body := c.do(http.MethodPost, "/api/register", nil, map[string]string{"username": username, "password": "pw-" + username})
	require.Equal(c.t, http.StatusCreated, status, string(body))
}

func (c *apiClient) createGroup(username string) string {
	c.t.Helper()
	status, body := c.do(http.MethodPost, "/api/create_group", url.Values{"username": {username}}, nil)
	require.Equal(c.t, http.StatusCreated, status, string(body))
	var resp struct {
		InviteCode string `json:"invite_code"`
	}
	c.decode(body, &resp)
	require.Len(c.t, resp.InviteCode, 6)
	return resp.InviteCode
}

func (c *apiClient) addRecord(username, groupID string, amount float64, recordType, when string) int {
	c.t.Helper()
	status, _ := c.do(http.MethodPost, "/api/add_record", nil, map[string]any{
		"username": username,
		"group_id": groupID,
		"amount":   amount,
		"type":     recordType,
		"category": "General",
		"time":     when,
	})
	return status
}

type summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

type record struct {
	ID       int64   `json:"id"`
	Amount   float64 `json:"amount"`
	Type     string  `json:"type"`
	Time     string  `json:"time"`
	Username string  `json:"username"`
}

type searchResult struct {
	Data    []record `json:"data"`
	Summary summary  `json:"summary"`
}

func TestRegisterAndLogin(t *testing.T) {
	api := newAPI(t)
	api.register("alice")

	status, body := api.do(http.MethodPost, "/api/register", nil, map[string]string{"username": "alice", "password": "other"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "username_taken", api.errorCode(body))

	status, body = api.do(http.MethodPost, "/api/login", nil, map[string]string{"username": "alice", "password": "pw-alice"})
	require.Equal(t, http.StatusOK, status, string(body))
	var login struct {
		Status   string `json:"status"`
		Username string `json:"username"`
	}
	api.decode(body, &login)
	assert.Equal(t, "success", login.Status)
	assert.Equal(t, "alice", login.Username)

	status, body = api.do(http.MethodPost, "/api/login", nil, map[string]string{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid_credentials", api.errorCode(body))

	status, _ = api.do(http.MethodPost, "/api/register", nil, map[string]string{"username": "bob"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMonthlySummaryFlow(t *testing.T) {
	api := newAPI(t)
	api.register("alice")
	code := api.createGroup("alice")

	require.Equal(t, http.StatusCreated, api.addRecord("alice", code, 100, "income", "2026-03-01"))
	require.Equal(t, http.StatusCreated, api.addRecord("alice", code, 40, "expense", "2026-03-02"))

	status, body := api.do(http.MethodGet, "/api/get_summary", url.Values{
		"username": {"alice"}, "group_id": {code}, "year": {"2026"}, "month": {"3"},
	}, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var got summary
	api.decode(body, &got)
	assert.Equal(t, summary{Income: 100, Expense: 40, Balance: 60}, got)

	status, body = api.do(http.MethodGet, "/api/search_records", url.Values{
		"username": {"alice"}, "group_id": {code}, "filter_type": {"expense"},
	}, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var search searchResult
	api.decode(body, &search)
	require.Len(t, search.Data, 1)
	assert.Equal(t, "alice", search.Data[0].Username)
	assert.Equal(t, summary{Expense: 40, Balance: -40}, search.Summary)

	status, body = api.do(http.MethodGet, "/api/get_analytics", url.Values{
		"username": {"alice"}, "group_id": {code}, "year": {"2026"}, "month": {"3"},
	}, nil)
	require.Equal(t, http.StatusOK, status, string(body))
	var analytics struct {
		Income []struct {
			Type     string  `json:"type"`
			Category string  `json:"category"`
			Total    float64 `json:"total"`
		} `json:"income"`
		Expense []struct {
			Total float64 `json:"total"`
		} `json:"expense"`
	}
	api.decode(body, &analytics)
	require.Len(t, analytics.Income, 1)
	assert.Equal(t, "income", analytics.Income[0].Type)
	assert.Equal(t, "General", analytics.Income[0].Category)
	assert.Equal(t, 100.0, analytics.Income[0].Total)
	require.Len(t, analytics.Expense, 1)
	assert.Equal(t, 40.0, analytics.Expense[0].Total)
}

func TestAccessGate(t *testing.T) {
	api := newAPI(t)
	api.register("alice")
	api.register("bob")
	code := api.createGroup("alice")
	require.Equal(t, http.StatusCreated, api.addRecord("alice", code, 10, "expense", "2026-01-01"))

	assert.Equal(t, http.StatusForbidden, api.addRecord("bob", code, 10, "expense", "2026-01-02"))

	status, body := api.do(http.MethodGet, "/api/search_records", url.Values{"username": {"bob"}, "group_id": {code}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"data":[],"summary":{"income":0,"expense":0,"balance":0}}`, string(body))

	status, body = api.do(http.MethodGet, "/api/get_records", url.Values{"username": {"alice"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"data":[]}`, string(body))

	for i := 0; i < 2; i++ {
		status, body = api.do(http.MethodPost, "/api/join_group", url.Values{"username": {"bob"}, "invite_code": {code}}, nil)
		require.Equal(t, http.StatusOK, status, string(body))
	}

	status, body = api.do(http.MethodGet, "/api/get_my_groups", url.Values{"username": {"bob"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"groups":["`+code+`"]}`, string(body))

	assert.Equal(t, http.StatusCreated, api.addRecord("bob", code, 10, "expense", "2026-01-02"))

	status, body = api.do(http.MethodPost, "/api/join_group", url.Values{"username": {"bob"}, "invite_code": {"ZZZZZZ"}}, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "group_not_found", api.errorCode(body))

	status, _ = api.do(http.MethodPost, "/api/create_group", url.Values{"username": {"ghost"}}, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRecentRecordsAndDelete(t *testing.T) {
	api := newAPI(t)
	api.register("alice")
	code := api.createGroup("alice")
	for day := 1; day <= 12; day++ {
		require.Equal(t, http.StatusCreated, api.addRecord("alice", code, float64(day), "expense", "2026-01-"+twoDigits(day)))
	}

	status, body := api.do(http.MethodGet, "/api/get_records", url.Values{"username": {"alice"}, "group_id": {code}}, nil)
	require.Equal(t, http.StatusOK, status)
	var recent struct {
		Data []record `json:"data"`
	}
	api.decode(body, &recent)
	require.Len(t, recent.Data, 10)
	assert.Equal(t, "2026-01-12", recent.Data[0].Time)

	status, _ = api.do(http.MethodDelete, "/api/delete_record", url.Values{"record_id": {itoa(recent.Data[0].ID)}}, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = api.do(http.MethodDelete, "/api/delete_record", url.Values{"record_id": {itoa(recent.Data[0].ID)}}, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = api.do(http.MethodGet, "/api/get_records", url.Values{"username": {"alice"}, "group_id": {code}}, nil)
	require.Equal(t, http.StatusOK, status)
	api.decode(body, &recent)
	assert.Equal(t, "2026-01-11", recent.Data[0].Time)

	status, _ = api.do(http.MethodDelete, "/api/delete_record", url.Values{"record_id": {"abc"}}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCategories(t *testing.T) {
	api := newAPI(t)

	for i := 0; i < 2; i++ {
		status, body := api.do(http.MethodPost, "/api/add_category", url.Values{"group_id": {"AB12CD"}, "type": {"expense"}, "name": {"Food"}}, nil)
		require.Equal(t, http.StatusOK, status, string(body))
	}
	status, body := api.do(http.MethodPost, "/api/add_category", url.Values{"group_id": {"AB12CD"}, "type": {"bogus"}, "name": {"Food"}}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid_request", api.errorCode(body))

	status, body = api.do(http.MethodGet, "/api/get_categories", url.Values{"group_id": {"AB12CD"}, "type": {"expense"}}, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `["Food"]`, string(body))

	status, body = api.do(http.MethodGet, "/api/get_categories", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))
}

func TestSummaryRequiresPeriod(t *testing.T) {
	api := newAPI(t)

	status, body := api.do(http.MethodGet, "/api/get_summary", url.Values{"username": {"alice"}, "group_id": {"AB12CD"}, "month": {"3"}}, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "invalid_request", api.errorCode(body))
}

func TestHealthMetricsAndCORS(t *testing.T) {
	api := newAPI(t)

	status, body := api.do(http.MethodGet, "/api/health", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	status, body = api.do(http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, strings.Contains(string(body), `ledger_http_requests_total{method="GET",route="/api/health",status="200"} 1`), string(body))

	req, err := http.NewRequest(http.MethodOptions, api.server.URL+"/api/add_record", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:5173")
	resp, err := api.server.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:5173", resp.Header.Get("Access-Control-Allow-Origin"))
}
