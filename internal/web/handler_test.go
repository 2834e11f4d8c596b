package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"oldphonepad/internal/app"
	"oldphonepad/internal/config"
	"oldphonepad/internal/metrics"
	"oldphonepad/internal/repository"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// mockHistory allows controlling behavior per-method for tests
type mockHistory struct {
	SaveFn   func(input string, res app.Result) (*app.Decoding, error)
	LoadFn   func(id string) (*app.Decoding, error)
	RecentFn func(limit int) ([]*app.Decoding, error)
}

func (m *mockHistory) Save(input string, res app.Result) (*app.Decoding, error) {
	return m.SaveFn(input, res)
}
func (m *mockHistory) Load(id string) (*app.Decoding, error) {
	return m.LoadFn(id)
}
func (m *mockHistory) Recent(limit int) ([]*app.Decoding, error) {
	return m.RecentFn(limit)
}

func newTestHandler(repo repository.History) (*PadHandler, *metrics.Decoder) {
	m := metrics.NewDecoder()
	cfg := &config.Config{MaxInputLength: 32}
	return NewPadHandler(repo, m, cfg, zap.NewNop()), m
}

func saveAll() *mockHistory {
	return &mockHistory{
		SaveFn: func(input string, res app.Result) (*app.Decoding, error) {
			return app.NewDecoding(input, res), nil
		},
	}
}

func decodeResult(t *testing.T, resp *http.Response) app.Decoding {
	t.Helper()
	var out struct {
		Result app.Decoding `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out.Result
}

func TestDecodeOK(t *testing.T) {
	h, m := newTestHandler(saveAll())

	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{"input":"4433555 555666#"}`))
	w := httptest.NewRecorder()
	h.Decode(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.StatusCode)
	}
	d := decodeResult(t, resp)
	if d.Text != "HELLO" {
		t.Fatalf("expected HELLO, got %q", d.Text)
	}
	if d.ID == uuid.Nil {
		t.Fatalf("missing id in response")
	}
	if got := testutil.ToFloat64(m.Decodes.WithLabelValues(metrics.ResultOK)); got != 1 {
		t.Fatalf("expected 1 ok decode, got %v", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantResult string
	}{
		{
			name:       "invalid json",
			body:       "{invalid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing input",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantResult: metrics.ResultMissing,
		},
		{
			name:       "null input",
			body:       `{"input":null}`,
			wantStatus: http.StatusBadRequest,
			wantResult: metrics.ResultMissing,
		},
		{
			name:       "no send marker",
			body:       `{"input":"222"}`,
			wantStatus: http.StatusBadRequest,
			wantResult: metrics.ResultMissingSend,
		},
		{
			name:       "too long",
			body:       `{"input":"` + strings.Repeat("2", 40) + `#"}`,
			wantStatus: http.StatusBadRequest,
			wantResult: metrics.ResultRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(saveAll())

			req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Decode(w, req)

			if w.Result().StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Result().StatusCode)
			}
			if tt.wantResult != "" {
				if got := testutil.ToFloat64(m.Decodes.WithLabelValues(tt.wantResult)); got != 1 {
					t.Errorf("expected 1 %s decode, got %v", tt.wantResult, got)
				}
			}
		})
	}
}

func TestDecodeEmptyTextIsOK(t *testing.T) {
	h, _ := newTestHandler(saveAll())

	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{"input":"***#999"}`))
	w := httptest.NewRecorder()
	h.Decode(w, req)

	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Result().StatusCode)
	}
	if d := decodeResult(t, w.Result()); d.Text != "" || d.Deletes != 3 {
		t.Fatalf("unexpected decoding: %+v", d)
	}
}

func TestDecodeLengthCountsUpToSend(t *testing.T) {
	h, m := newTestHandler(saveAll())

	for _, input := range []string{"33#", "33#" + strings.Repeat("9", 40), "33##" + strings.Repeat("*", 100)} {
		req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{"input":"`+input+`"}`))
		w := httptest.NewRecorder()
		h.Decode(w, req)

		if w.Result().StatusCode != http.StatusOK {
			t.Fatalf("expected 200 for %q, got %d", input, w.Result().StatusCode)
		}
		if d := decodeResult(t, w.Result()); d.Text != "E" {
			t.Fatalf("expected E for %q, got %q", input, d.Text)
		}
	}
	if got := testutil.ToFloat64(m.Decodes.WithLabelValues(metrics.ResultRejected)); got != 0 {
		t.Fatalf("expected no rejected decodes, got %v", got)
	}
}

func TestDecodeBodyTooLarge(t *testing.T) {
	m := metrics.NewDecoder()
	cfg := &config.Config{MaxInputLength: 32, MaxBodyBytes: 64}
	h := NewPadHandler(saveAll(), m, cfg, zap.NewNop())

	body := `{"input":"33#` + strings.Repeat("9", 100) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Decode(w, req)

	if w.Result().StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Result().StatusCode)
	}
	if got := testutil.ToFloat64(m.Decodes.WithLabelValues(metrics.ResultRejected)); got != 1 {
		t.Fatalf("expected 1 rejected decode, got %v", got)
	}
}

func TestHistoryEnvelope(t *testing.T) {
	h, _ := newTestHandler(&mockHistory{
		RecentFn: func(limit int) ([]*app.Decoding, error) {
			return []*app.Decoding{app.NewDecoding("22#", app.Result{Text: "B"})}, nil
		},
	})

	w := httptest.NewRecorder()
	h.History(w, httptest.NewRequest(http.MethodGet, "/history", nil))

	var out DecodingListResponse
	if err := json.NewDecoder(w.Result().Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out.Result) != 1 || out.Result[0].Text != "B" {
		t.Fatalf("unexpected history: %+v", out.Result)
	}
}

func TestDecodeSaveFailed(t *testing.T) {
	h, _ := newTestHandler(&mockHistory{
		SaveFn: func(input string, res app.Result) (*app.Decoding, error) {
			return nil, app.ErrBusinessLogic
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{"input":"33#"}`))
	w := httptest.NewRecorder()
	h.Decode(w, req)

	if w.Result().StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when repo returns ErrBusinessLogic, got %d", w.Result().StatusCode)
	}
}

func TestGetDecoding(t *testing.T) {
	stored := app.NewDecoding("33#", app.Result{Text: "E", Presses: 2})
	tests := []struct {
		name       string
		loadErr    error
		wantStatus int
	}{
		{"found", nil, http.StatusOK},
		{"bad id", app.ErrInvalidInput, http.StatusBadRequest},
		{"not found", repository.ErrNotFound, http.StatusNotFound},
		{"unexpected", errFake, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			h, _ := newTestHandler(&mockHistory{
				LoadFn: func(id string) (*app.Decoding, error) {
					gotID = id
					if tt.loadErr != nil {
						return nil, tt.loadErr
					}
					return stored, nil
				},
			})

			r := chi.NewRouter()
			r.Get("/decode/{id}", h.GetDecoding)
			req := httptest.NewRequest(http.MethodGet, "/decode/"+stored.ID.String(), nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Result().StatusCode != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Result().StatusCode)
			}
			if gotID != stored.ID.String() {
				t.Fatalf("expected id %s passed to repo, got %s", stored.ID, gotID)
			}
		})
	}
}

var errFake = errors.New("boom")

func TestHistory(t *testing.T) {
	var gotLimit int
	h, _ := newTestHandler(&mockHistory{
		RecentFn: func(limit int) ([]*app.Decoding, error) {
			gotLimit = limit
			return []*app.Decoding{app.NewDecoding("2#", app.Result{Text: "A"})}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/history?limit=5", nil)
	w := httptest.NewRecorder()
	h.History(w, req)
	if w.Result().StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Result().StatusCode)
	}
	if gotLimit != 5 {
		t.Fatalf("expected limit 5, got %d", gotLimit)
	}

	for _, bad := range []string{"abc", "-1"} {
		req = httptest.NewRequest(http.MethodGet, "/history?limit="+bad, nil)
		w = httptest.NewRecorder()
		h.History(w, req)
		if w.Result().StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400 for limit=%s, got %d", bad, w.Result().StatusCode)
		}
	}
}

func TestRoutesWithInMemoryHistory(t *testing.T) {
	repo := repository.NewInMemoryHistory(10)
	h, m := newTestHandler(repo)
	r := chi.NewRouter()
	RegisterRoutes(r, h, m)

	req := httptest.NewRequest(http.MethodPost, "/decode", strings.NewReader(`{"input":"8 88777444666*664#"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	created := decodeResult(t, w.Result())
	if created.Text != "TURING" {
		t.Fatalf("expected TURING, got %q", created.Text)
	}

	req = httptest.NewRequest(http.MethodGet, "/decode/"+created.ID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if got := decodeResult(t, w.Result()); got.ID != created.ID || got.Text != "TURING" {
		t.Fatalf("unexpected decoding: %+v", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/decode/"+uuid.NewString(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "oldphonepad_decodes_total") {
		t.Fatalf("metrics not served: %d", w.Code)
	}
}

func TestLoggerMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(10 * time.Millisecond)
		w.WriteHeader(http.StatusTeapot)
	})

	r := chi.NewRouter()
	r.Use(LoggerMiddleware(logger))
	r.Get("/test", testHandler)

	req := httptest.NewRequest("GET", "/test?param=value", nil)
	req.Header.Set(requestIDHeader, "req-1")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected status code %d, got %d", http.StatusTeapot, w.Code)
	}
	if got := w.Header().Get(requestIDHeader); got != "req-1" {
		t.Errorf("Expected request id to be echoed, got %q", got)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()

	tests := []struct {
		field    string
		expected string
	}{
		{"method", "GET"},
		{"url", "/test?param=value"},
		{"request_id", "req-1"},
	}

	for _, tt := range tests {
		if got := fields[tt.field]; got != tt.expected {
			t.Errorf("Expected %s to be %v, got %v", tt.field, tt.expected, got)
		}
	}

	if status, ok := fields["status"].(int64); !ok || status != http.StatusTeapot {
		t.Errorf("Expected status %d, got %v", http.StatusTeapot, fields["status"])
	}

	duration, ok := fields["duration"].(time.Duration)
	if !ok {
		t.Error("Duration field not found or wrong type")
	} else if duration < 10*time.Millisecond {
		t.Errorf("Duration too short: %v", duration)
	}
}

func TestLoggerMiddlewareGeneratesRequestID(t *testing.T) {
	r := chi.NewRouter()
	r.Use(LoggerMiddleware(zap.NewNop()))
	r.Get("/test", func(w http.ResponseWriter, r *http.Request) {})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/test", nil))

	if _, err := uuid.Parse(w.Header().Get(requestIDHeader)); err != nil {
		t.Fatalf("expected generated uuid request id, got %q", w.Header().Get(requestIDHeader))
	}
}
