package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()
	server, err := NewServer(ServerConfig{
		Port:      8080,
		Version:   "v1",
		GitCommit: "commit",
		BuildTime: "time",
		GoVersion: "go1.24",
	})
	require.NoError(t, err)
	return server
}

func doRequest(t *testing.T, server *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	server.Handler().ServeHTTP(w, req)
	return w
}

func TestNewServerInvalidPort(t *testing.T) {
	_, err := NewServer(ServerConfig{Port: 70000})
	assert.Error(t, err)
}

func TestServer_StartWithContextShutsDown(t *testing.T) {
	server, err := NewServer(ServerConfig{Bind: "127.0.0.1", Port: 0})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.StartWithContext(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}

func TestHandler_Health(t *testing.T) {
	server := setupTestServer(t)

	w := doRequest(t, server, "GET", "/api/v1/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp HealthResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
}

func TestHandler_Version(t *testing.T) {
	server := setupTestServer(t)

	w := doRequest(t, server, "GET", "/api/v1/version", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp VersionResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	require.NoError(t, err)
	assert.Equal(t, "v1", resp.Version)
	assert.Equal(t, "commit", resp.GitCommit)
	assert.Equal(t, "time", resp.BuildTime)
	assert.Equal(t, "go1.24", resp.GoVersion)
}

func TestHandler_Enums(t *testing.T) {
	server := setupTestServer(t)

	w := doRequest(t, server, "GET", "/api/v1/enums", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp EnumsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	domains := make(map[string]bool)
	for _, v := range resp.Vocabularies {
		domains[v.Domain] = v.Open
		assert.NotEmpty(t, v.Tokens, v.Domain)
	}
	assert.Equal(t, map[string]bool{
		"target":           true,
		"lib":              true,
		"module":           true,
		"moduleResolution": false,
		"jsx":              false,
	}, domains)
}

func TestHandler_Parse(t *testing.T) {
	server := setupTestServer(t)

	body := `{
		// comment
		"compilerOptions": {"target": "esnext", "out": "a.js",},
		"references": true
	}`
	w := doRequest(t, server, "POST", "/api/v1/parse", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp struct {
		Document struct {
			CompilerOptions map[string]any `json:"compilerOptions"`
			References      any            `json:"references"`
		} `json:"document"`
		Deprecations []map[string]string `json:"deprecations"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ESNext", resp.Document.CompilerOptions["target"])
	assert.Equal(t, true, resp.Document.References)
	require.Len(t, resp.Deprecations, 1)
	assert.Equal(t, "compilerOptions.out", resp.Deprecations[0]["field"])
}

func TestHandler_ParseErrors(t *testing.T) {
	server := setupTestServer(t)

	tests := []struct {
		name     string
		target   string
		body     string
		code     int
		category string
		field    string
	}{
		{
			name:     "syntax",
			target:   "/api/v1/parse",
			body:     "{\n  \"files\": [\"a.ts\",]\n}",
			code:     http.StatusUnprocessableEntity,
			category: "syntax",
		},
		{
			name:     "kind mismatch",
			target:   "/api/v1/parse",
			body:     `{"compilerOptions": {"strict": "yes"}}`,
			code:     http.StatusUnprocessableEntity,
			category: "kind-mismatch",
			field:    "compilerOptions.strict",
		},
		{
			name:     "invalid enum",
			target:   "/api/v1/parse",
			body:     `{"compilerOptions": {"jsx": "React"}}`,
			code:     http.StatusUnprocessableEntity,
			category: "invalid-enum",
			field:    "compilerOptions.jsx",
		},
		{
			name:     "shape mismatch",
			target:   "/api/v1/parse",
			body:     `{"typeAcquisition": "yes"}`,
			code:     http.StatusUnprocessableEntity,
			category: "shape-mismatch",
			field:    "typeAcquisition",
		},
		{
			name:   "unknown policy",
			target: "/api/v1/parse?trailingCommas=none",
			body:   `{}`,
			code:   http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, server, "POST", tt.target, tt.body)
			require.Equal(t, tt.code, w.Code, w.Body.String())

			var resp ErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Code)
			assert.Equal(t, tt.category, resp.Category)
			assert.Equal(t, tt.field, resp.Field)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHandler_ParseSyntaxPosition(t *testing.T) {
	server := setupTestServer(t)

	w := doRequest(t, server, "POST", "/api/v1/parse", "{\n  \"include\": [\"src\",]\n}")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Line)
	assert.Positive(t, resp.Column)
}

func TestHandler_ParseLenientPolicy(t *testing.T) {
	server := setupTestServer(t)

	w := doRequest(t, server, "POST", "/api/v1/parse?trailingCommas=all", `{"include": ["src",]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ParseResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"src"}, resp.Document.Include)
	assert.Empty(t, resp.Deprecations)
}

func TestHandler_ParseTooLarge(t *testing.T) {
	server := setupTestServer(t)

	body := `{"include": ["` + strings.Repeat("a", MaxDocumentSize) + `"]}`
	w := doRequest(t, server, "POST", "/api/v1/parse", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	server := setupTestServer(t)

	w := doRequest(t, server, "GET", "/api/v1/parse", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
