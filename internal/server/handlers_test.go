package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/marketwise/savings-calculator/internal/calculation"
	"github.com/marketwise/savings-calculator/internal/config"
	"github.com/marketwise/savings-calculator/internal/domain"
)

func newTestServer(leads LeadDispatcher) *Server {
	engine := calculation.NewEngine(
		config.DefaultIndustryTable(),
		config.DefaultToolCatalog(),
		config.DefaultMarketerTiers(),
	)
	s := New(engine, leads, nil)
	s.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	s.newID = func() string { return "lead-test-id" }
	return s
}

func doRequest(t *testing.T, s *Server, method, path, body string) *fasthttp.RequestCtx {
	t.Helper()
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(path)
	if body != "" {
		req.Header.SetContentType("application/json")
		req.SetBodyString(body)
	}
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	s.Handler()(ctx)
	return ctx
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(nil)
	ctx := doRequest(t, s, fasthttp.MethodGet, "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), `"ok"`)
}

func TestCalculateEndpoint(t *testing.T) {
	s := newTestServer(nil)
	body := `{
		"industry": "restaurant",
		"business_size": "medium",
		"marketing_budget": 3000,
		"marketer_type": "full_time",
		"current_tools": ["facebook_ads", "analytics"]
	}`
	ctx := doRequest(t, s, fasthttp.MethodPost, "/api/v1/calculate", body)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var result domain.SavingsResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.Equal(t, "restaurant", result.Industry)
	assert.Equal(t, "300", result.Savings.Monthly.String())
	assert.NotEmpty(t, result.Recommendations)
}

func TestCalculateValidationFailure(t *testing.T) {
	s := newTestServer(nil)
	ctx := doRequest(t, s, fasthttp.MethodPost, "/api/v1/calculate",
		`{"industry": "spacefaring", "business_size": "medium", "marketing_budget": 3000}`)
	require.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())

	var resp errorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.True(t, resp.Error)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "not supported")
}

func TestCalculateMalformedBody(t *testing.T) {
	s := newTestServer(nil)
	ctx := doRequest(t, s, fasthttp.MethodPost, "/api/v1/calculate", `{not json`)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestUnknownRoute(t *testing.T) {
	s := newTestServer(nil)
	ctx := doRequest(t, s, fasthttp.MethodGet, "/api/v1/nothing", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestMethodNotAllowed(t *testing.T) {
	s := newTestServer(nil)
	ctx := doRequest(t, s, fasthttp.MethodGet, "/api/v1/calculate", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestLeadSubmission(t *testing.T) {
	var captured domain.Lead
	dispatcher := DispatcherFunc(func(_ context.Context, lead domain.Lead) error {
		captured = lead
		return nil
	})
	s := newTestServer(dispatcher)

	body := `{
		"name": "Dana Smith",
		"email": "dana@example.com",
		"company": "Dana's Diner",
		"input": {
			"industry": "restaurant",
			"business_size": "medium",
			"marketing_budget": 3000,
			"marketer_type": "full_time"
		}
	}`
	ctx := doRequest(t, s, fasthttp.MethodPost, "/api/v1/leads", body)
	require.Equal(t, fasthttp.StatusAccepted, ctx.Response.StatusCode())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "lead-test-id", resp["id"])

	assert.Equal(t, "Dana Smith", captured.Name)
	require.NotNil(t, captured.Result)
	assert.Equal(t, "restaurant", captured.Result.Industry)
}

func TestLeadWithoutInput(t *testing.T) {
	var captured domain.Lead
	dispatcher := DispatcherFunc(func(_ context.Context, lead domain.Lead) error {
		captured = lead
		return nil
	})
	s := newTestServer(dispatcher)

	ctx := doRequest(t, s, fasthttp.MethodPost, "/api/v1/leads",
		`{"name": "Dana Smith", "email": "dana@example.com"}`)
	require.Equal(t, fasthttp.StatusAccepted, ctx.Response.StatusCode())
	assert.Nil(t, captured.Result)
}

func TestLeadMissingContactFields(t *testing.T) {
	s := newTestServer(nil)
	ctx := doRequest(t, s, fasthttp.MethodPost, "/api/v1/leads", `{"phone": "555-0100"}`)
	require.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())

	var resp errorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Len(t, resp.Errors, 2)
}

func TestLeadInvalidCalculationInput(t *testing.T) {
	s := newTestServer(nil)
	body := `{
		"name": "Dana Smith",
		"email": "dana@example.com",
		"input": {"industry": "spacefaring", "business_size": "medium", "marketing_budget": 100}
	}`
	ctx := doRequest(t, s, fasthttp.MethodPost, "/api/v1/leads", body)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
}

func TestLeadDispatchFailure(t *testing.T) {
	dispatcher := DispatcherFunc(func(_ context.Context, _ domain.Lead) error {
		return errors.New("crm unreachable")
	})
	s := newTestServer(dispatcher)

	ctx := doRequest(t, s, fasthttp.MethodPost, "/api/v1/leads",
		`{"name": "Dana Smith", "email": "dana@example.com"}`)
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
}
