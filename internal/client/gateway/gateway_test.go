package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken struct {
	token string
}

func (s staticToken) Token(context.Context) (string, bool) {
	return s.token, s.token != ""
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (r *tokenResponse) Validate() error {
	if len(r.Token) < 10 {
		return errors.New("token too short")
	}
	return nil
}

type captured struct {
	method      string
	path        string
	contentType string
	auth        string
	requestID   string
	body        map[string]any
}

func newServer(t *testing.T, status int, respBody string) (*httptest.Server, *captured) {
	t.Helper()
	got := &captured{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.method = r.Method
		got.path = r.URL.Path
		got.contentType = r.Header.Get("Content-Type")
		got.auth = r.Header.Get("Authorization")
		got.requestID = r.Header.Get(RequestIDHeader)
		b, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(b, &got.body)

		w.WriteHeader(status)
		_, _ = io.WriteString(w, respBody)
	}))
	t.Cleanup(ts.Close)
	return ts, got
}

func TestPost_SendsJSONWithBearerAndDecodes(t *testing.T) {
	ts, got := newServer(t, http.StatusOK, `{"token":"abcdefghijkl","extra":true}`)
	g := New(ts.URL+"/", staticToken{"tok-123"})

	var out tokenResponse
	err := g.Post(context.Background(), "login", map[string]string{"username": "anna"}, &out)
	require.NoError(t, err)

	assert.Equal(t, "abcdefghijkl", out.Token)
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/login", got.path)
	assert.Equal(t, "application/json", got.contentType)
	assert.Equal(t, "Bearer tok-123", got.auth)
	assert.Equal(t, "anna", got.body["username"])
	_, err = uuid.Parse(got.requestID)
	assert.NoError(t, err, "request id must be a uuid")
}

func TestPost_NoTokenNoAuthorizationHeader(t *testing.T) {
	ts, got := newServer(t, http.StatusOK, `{}`)
	g := New(ts.URL, staticToken{})

	require.NoError(t, g.Post(context.Background(), "admin/update-user", struct{}{}, nil))
	assert.Empty(t, got.auth)
}

func TestPost_NilOutIgnoresBody(t *testing.T) {
	ts, _ := newServer(t, http.StatusOK, `this is not json`)
	g := New(ts.URL, nil)

	require.NoError(t, g.Post(context.Background(), "service/place-order", map[string]int{"tableId": 1}, nil))
}

func TestPost_BackendErrorEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantDetails string
	}{
		{
			name:     "code only",
			status:   http.StatusUnauthorized,
			body:     `{"code":"invalid_credentials"}`,
			wantCode: "invalid_credentials",
		},
		{
			name:        "code and details",
			status:      http.StatusBadRequest,
			body:        `{"code":"no_password_set","details":"set one first"}`,
			wantCode:    "no_password_set",
			wantDetails: "set one first",
		},
		{
			name:        "not json",
			status:      http.StatusInternalServerError,
			body:        `Internal Server Error`,
			wantCode:    UnknownCode,
			wantDetails: "Internal Server Error",
		},
		{
			name:        "empty code",
			status:      http.StatusBadRequest,
			body:        `{"code":""}`,
			wantCode:    UnknownCode,
			wantDetails: `{"code":""}`,
		},
		{
			name:        "details is an object",
			status:      http.StatusBadRequest,
			body:        `{"code":"invalid_request","details":{"field":"name"}}`,
			wantCode:    UnknownCode,
			wantDetails: `{"code":"invalid_request","details":{"field":"name"}}`,
		},
		{
			name:        "empty body",
			status:      http.StatusBadGateway,
			body:        ``,
			wantCode:    UnknownCode,
			wantDetails: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := newServer(t, tt.status, tt.body)
			g := New(ts.URL, nil)

			var out tokenResponse
			err := g.Post(context.Background(), "login", struct{}{}, &out)

			var be *BackendError
			require.True(t, errors.As(err, &be), "want *BackendError, got %v", err)
			assert.Equal(t, tt.status, be.Status)
			assert.Equal(t, tt.wantCode, be.Code)
			assert.Equal(t, tt.wantDetails, be.Details)
			assert.Equal(t, tt.wantCode, Code(err))
		})
	}
}

func TestPost_BackendErrorEvenWithoutShape(t *testing.T) {
	ts, _ := newServer(t, http.StatusConflict, `{"code":"table_already_exists"}`)
	g := New(ts.URL, nil)

	err := g.Post(context.Background(), "admin/create-table", struct{}{}, nil)
	assert.Equal(t, "table_already_exists", Code(err))
}

func TestPost_ShapeMismatchNamesEndpoint(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"fails validation", `{"token":"short"}`},
		{"wrong type", `{"token":42}`},
		{"empty body", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, _ := newServer(t, http.StatusOK, tt.body)
			g := New(ts.URL, nil)

			var out tokenResponse
			err := g.Post(context.Background(), "set-password", struct{}{}, &out)

			require.ErrorIs(t, err, ErrResponseShape)
			var se *ResponseShapeError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "set-password", se.Endpoint)
			assert.Contains(t, err.Error(), "set-password")
			assert.NotContains(t, err.Error(), "too short")
		})
	}
}

func TestPost_TransportFailureIsUnavailable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	g := New(url, nil)
	err := g.Post(context.Background(), "login", struct{}{}, nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestPost_TimeoutIsUnavailable(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		ts.Close()
	})

	g := New(ts.URL, nil, WithTimeout(50*time.Millisecond))
	err := g.Post(context.Background(), "login", struct{}{}, nil)
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestPost_UnencodableBody(t *testing.T) {
	g := New("http://127.0.0.1:1", nil)
	err := g.Post(context.Background(), "login", map[string]any{"ch": make(chan int)}, nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestPost_RateLimitWaits(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	t.Cleanup(ts.Close)

	g := New(ts.URL, nil, WithRateLimit(1, 1))

	require.NoError(t, g.Post(context.Background(), "x", struct{}{}, nil))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := g.Post(ctx, "x", struct{}{}, nil)
	require.ErrorIs(t, err, ErrUnavailable, "second call cannot get a token within the deadline")
	assert.Equal(t, int32(1), calls.Load())
}

func TestPing(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		ts, got := newServer(t, http.StatusOK, `ok`)
		g := New(ts.URL, nil)
		require.NoError(t, g.Ping(context.Background()))
		assert.Equal(t, http.MethodGet, got.method)
		assert.Equal(t, "/health", got.path)
	})

	t.Run("unhealthy", func(t *testing.T) {
		ts, _ := newServer(t, http.StatusServiceUnavailable, ``)
		g := New(ts.URL, nil)
		require.ErrorIs(t, g.Ping(context.Background()), ErrUnavailable)
	})
}

func TestCode_NonBackendError(t *testing.T) {
	assert.Empty(t, Code(errors.New("boom")))
	assert.Empty(t, Code(nil))
}
