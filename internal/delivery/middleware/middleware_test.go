package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"printhub/config"
	deliverycontext "printhub/internal/delivery/context"
	"printhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "reuses well-formed id", incoming: "req-42", keep: true},
		{name: "mints when missing", incoming: ""},
		{name: "replaces id with spaces", incoming: "req 42\nlevel=ERROR"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			e := echo.New()
			e.Use(NewRequestIDMiddleware(logger).Process)

			var seenCtxID string
			e.GET("/", func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("inside")

				return c.NoContent(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(echo.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(echo.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, seenCtxID)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			assert.Equal(t, got, record["request_id"])
		})
	}
}

func TestLoggerMiddleware_LogsCommittedStatusAndPrincipal(t *testing.T) {
	logger, buf := newBufferLogger()
	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)

	userID := uuid.New()
	e.GET("/order/:id", func(c echo.Context) error {
		deliverycontext.SetPrincipal(c, &entity.Principal{ID: userID}, entity.RoleUser)

		return echo.NewHTTPError(http.StatusNotFound, "missing")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/order/abc", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "WARN", record["level"])
	assert.Equal(t, "/order/:id", record["route"])
	assert.EqualValues(t, http.StatusNotFound, record["status"])
	assert.Equal(t, userID.String(), record["user_id"])
	assert.Equal(t, "user", record["role"])
	assert.NotContains(t, record, "user_agent")
}

func TestLoggerMiddleware_SkipsHealthUnlessDebug(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, buf := newBufferLogger()
		cfg := &config.Config{}
		cfg.Env.Debug = debug

		e := echo.New()
		e.Use(NewLoggerMiddleware(logger, cfg).Handle)
		e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, debug, buf.Len() > 0, "debug=%v", debug)
	}
}
