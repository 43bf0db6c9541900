package main

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/iotest"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/tailgen/internal/accel"
	"github.com/yacobolo/tailgen/internal/optimizer"
	"github.com/yacobolo/tailgen/internal/theme"
)

func newTestHandler() http.Handler {
	compiler := accel.NewCompiler(accel.NewMemoryCache(64))
	s := &server{
		compiler:  compiler,
		pool:      accel.NewPool(compiler, 2),
		optimizer: optimizer.New(optimizer.DefaultConfig(), nil),
		theme:     theme.Default(),
		maxBody:   1 << 16,
		log:       newLogger(io.Discard, charmlog.DebugLevel),
	}
	return s.routes()
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(newTestHandler())
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, ts *httptest.Server, path, contentType, body string) (int, string, string) {
	t.Helper()

	resp, err := http.Post(ts.URL+path, contentType, strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header.Get("Content-Type"), string(data)
}

func TestServeHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, version, body["version"])
}

func TestServeCompile(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		status   int
		contains []string
	}{
		{
			name:     "classes",
			body:     `{"classes": ["p-4", "hover:bg-blue-500"]}`,
			status:   http.StatusOK,
			contains: []string{".p-4{padding:1rem}", `.hover\:bg-blue-500:hover{background-color:#3b82f6}`},
		},
		{
			name:     "elements",
			body:     `{"elements": [["m-2"], ["flex", "text-sm"]]}`,
			status:   http.StatusOK,
			contains: []string{".m-2{margin:0.5rem}", ".flex{display:flex}"},
		},
		{
			name:     "gradient",
			body:     `{"classes": ["bg-gradient-to-r", "from-blue-500", "to-red-500"]}`,
			status:   http.StatusOK,
			contains: []string{"linear-gradient(to right, #3b82f6, #ef4444)"},
		},
		{
			name:     "unknown class",
			body:     `{"classes": ["p-4", "bg-blu-500"]}`,
			status:   http.StatusUnprocessableEntity,
			contains: []string{`"token":"bg-blu-500"`},
		},
		{
			name:     "unknown class in element",
			body:     `{"elements": [["p-4"], ["nope-1"]]}`,
			status:   http.StatusUnprocessableEntity,
			contains: []string{"element 1"},
		},
		{
			name:     "empty request",
			body:     `{}`,
			status:   http.StatusBadRequest,
			contains: []string{"classes or elements required"},
		},
		{
			name:     "invalid json",
			body:     `{"classes":`,
			status:   http.StatusBadRequest,
			contains: []string{"invalid JSON body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, body := post(t, ts, "/compile", "application/json", tt.body)
			assert.Equal(t, tt.status, status, body)
			for _, want := range tt.contains {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestServeCompile_ContentType(t *testing.T) {
	ts := newTestServer(t)

	_, contentType, _ := post(t, ts, "/compile", "application/json", `{"classes": ["p-4"]}`)
	assert.Equal(t, "text/css; charset=utf-8", contentType)

	_, contentType, _ = post(t, ts, "/compile", "application/json", `{}`)
	assert.Equal(t, "application/json", contentType)
}

func TestServeOptimize(t *testing.T) {
	ts := newTestServer(t)

	status, contentType, body := post(t, ts, "/optimize", "text/css",
		"/* c */ .a { color: #ffffff; } .a { margin: 0px; }")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "text/css; charset=utf-8", contentType)
	assert.Equal(t, ".a{color:#fff;margin:0}", body)
}

func TestServeOptimize_ReadErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   io.Reader
		status int
		want   string
	}{
		{
			name:   "body over limit",
			body:   strings.NewReader(strings.Repeat(".a{color:red}", 1<<13)),
			status: http.StatusRequestEntityTooLarge,
			want:   "reading body",
		},
		{
			name:   "broken body",
			body:   iotest.ErrReader(errors.New("connection reset")),
			status: http.StatusBadRequest,
			want:   "connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newTestHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/optimize", tt.body))

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestServeMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/compile")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}
