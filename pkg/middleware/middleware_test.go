package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/tpm-api/pkg/log"
)

func TestCors(t *testing.T) {
	tests := []struct {
		name       string
		origins    []string
		origin     string
		method     string
		wantHeader string
		wantStatus int
	}{
		{
			name:       "Deve liberar origem permitida",
			origins:    []string{"http://localhost:3000"},
			origin:     "http://localhost:3000",
			method:     http.MethodGet,
			wantHeader: "http://localhost:3000",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Não deve liberar origem desconhecida",
			origins:    []string{"http://localhost:3000"},
			origin:     "http://evil.example",
			method:     http.MethodGet,
			wantHeader: "",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Deve aceitar curinga",
			origins:    []string{"*"},
			origin:     "http://qualquer.example",
			method:     http.MethodGet,
			wantHeader: "http://qualquer.example",
			wantStatus: http.StatusOK,
		},
		{
			name:       "Deve responder preflight sem chamar o próximo handler",
			origins:    []string{"http://localhost:3000"},
			origin:     "http://localhost:3000",
			method:     http.MethodOptions,
			wantHeader: "http://localhost:3000",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/v1/budgets", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			Cors(tt.origins)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantHeader, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.method != http.MethodOptions, called)
		})
	}
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard/kpis", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"SRV_001"`)
}

func TestLoggingMiddleware_PropagaStatus(t *testing.T) {
	log.SetupTestLogger()

	var requestID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = log.GetRequestID(r.Context())
		w.WriteHeader(http.StatusConflict)
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/budgets", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, requestID, rec.Header().Get(RequestIDHeader))
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name     string
		incoming string
		validate func(t *testing.T, requestID string)
	}{
		{
			name:     "Deve reaproveitar o X-Request-ID enviado pelo cliente",
			incoming: "dash-2024.08_20",
			validate: func(t *testing.T, requestID string) {
				assert.Equal(t, "dash-2024.08_20", requestID)
			},
		},
		{
			name: "Deve gerar um UUID quando o cabeçalho está ausente",
			validate: func(t *testing.T, requestID string) {
				_, err := uuid.Parse(requestID)
				assert.NoError(t, err)
			},
		},
		{
			name:     "Deve descartar identificador com caracteres inválidos",
			incoming: "abc\nforged=1",
			validate: func(t *testing.T, requestID string) {
				assert.NotEqual(t, "abc\nforged=1", requestID)
				_, err := uuid.Parse(requestID)
				assert.NoError(t, err)
			},
		},
		{
			name:     "Deve descartar identificador longo demais",
			incoming: strings.Repeat("a", 65),
			validate: func(t *testing.T, requestID string) {
				assert.Len(t, requestID, 36)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = log.GetRequestID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/kpis", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			LoggingMiddleware()(next).ServeHTTP(rec, req)

			assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
			tt.validate(t, seen)
		})
	}
}
