package platforms

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socioshare/socioshare/internal/config"
	settingsdoc "github.com/socioshare/socioshare/internal/settings"
)

func TestGet(t *testing.T) {
	app := fiber.New()

	require.NoError(t, Handler.Init(app, &config.Config{}, nil))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, Path, nil))
	require.NoError(t, err)

	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Platforms []settingsdoc.Platform `json:"platforms"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	require.Len(t, body.Platforms, len(settingsdoc.Platforms()))
	assert.Equal(t, "whatsapp", body.Platforms[0].ID)

	for _, p := range body.Platforms {
		assert.NotEmpty(t, p.Label, "platform %s", p.ID)
		assert.NotEmpty(t, p.Color, "platform %s", p.ID)
	}
}

func TestInitNilApp(t *testing.T) {
	assert.Error(t, Handler.Init(nil, &config.Config{}, nil))
}
