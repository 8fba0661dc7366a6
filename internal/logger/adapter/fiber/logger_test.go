package fiber_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/socioshare/socioshare/internal/logger/adapter/fiber"

	"github.com/socioshare/socioshare/internal/logger"
)

// expectedLoggerJSONFormat implements loggers default json format.
type expectedLoggerJSONFormat struct {
	Status    int    `json:"status"`
	URI       string `json:"URI"`
	Method    string `json:"method"`
	RequestID string `json:"request_id"`
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	stdout := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()
	os.Stdout = stdout

	return <-outC
}

func TestNew(t *testing.T) {
	cfg := adapter.Config{
		Config: logger.Log{
			LogLevel:                 "info",
			AppName:                  "test",
			ServiceName:              "test",
			EnableAccessLogToConsole: true,
			Console:                  logger.Console{Enabled: true, UseConsoleWriter: false},
		},
	}

	out := captureStdout(t, func() {
		app := fiber.New()
		app.Use(adapter.New(cfg))
		app.Get("/ping", func(c *fiber.Ctx) error {
			c.Locals(adapter.RequestIDKey, "testreqid0001")
			return c.SendString("pong")
		})

		req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Performance"))
	})

	require.NotEmpty(t, out, "expected one access log line")

	var line expectedLoggerJSONFormat
	require.NoError(t, json.Unmarshal([]byte(out), &line))
	assert.Equal(t, fiber.StatusOK, line.Status)
	assert.Equal(t, "/ping", line.URI)
	assert.Equal(t, fiber.MethodGet, line.Method)
	assert.Equal(t, "testreqid0001", line.RequestID)
}

func TestNewSkipsCheckAlive(t *testing.T) {
	cfg := adapter.Config{
		Config: logger.Log{
			LogLevel:                 "info",
			AppName:                  "test",
			ServiceName:              "test",
			EnableAccessLogToConsole: true,
			DisableCheckAlive:        true,
			Console:                  logger.Console{Enabled: true, UseConsoleWriter: false},
		},
		CheckAliveURI: "/checkalive",
	}

	out := captureStdout(t, func() {
		app := fiber.New()
		app.Use(adapter.New(cfg))
		app.Get("/checkalive", func(c *fiber.Ctx) error {
			return c.SendString("ok")
		})

		req := httptest.NewRequest(fiber.MethodGet, "/checkalive", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
	})

	assert.Empty(t, out, "checkalive calls must not be logged")
}
