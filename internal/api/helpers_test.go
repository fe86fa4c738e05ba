package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type testServer struct {
	products *mockProductService
	search   *mockSearchService
	users    *mockUserService
	auth     *mockAuthService
	handler  http.Handler
}

func newTestServer(t *testing.T, diagnostics bool) *testServer {
	t.Helper()

	ts := &testServer{
		products: new(mockProductService),
		search:   new(mockSearchService),
		users:    new(mockUserService),
		auth:     new(mockAuthService),
	}
	h := NewHandler(Services{
		Products: ts.products,
		Search:   ts.search,
		Users:    ts.users,
		Auth:     ts.auth,
		Tokens:   stubVerifier{token: testToken},
	}, diagnostics)
	ts.handler = h.Routes()
	return ts
}

func (ts *testServer) do(t *testing.T, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}
