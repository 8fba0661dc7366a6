package webhooks

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socioshare/socioshare/internal/config"
	"github.com/socioshare/socioshare/internal/shopify"
	"github.com/socioshare/socioshare/internal/store"
)

const testSecret = "shhh-api-secret"

func setupApp(t *testing.T) (*fiber.App, store.Store) {
	t.Helper()

	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Shopify.APISecret = testSecret

	service := &Service{
		cfg:   cfg,
		store: fs,
	}

	app := fiber.New()
	app.Post(Path, service.Post)

	return app, fs
}

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(body))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func deliver(t *testing.T, app *fiber.App, topic, shop, body, signature string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(shopify.HeaderWebhookTopic, topic)
	req.Header.Set(shopify.HeaderShopDomain, shop)

	if signature != "" {
		req.Header.Set(shopify.HeaderWebhookHMAC, signature)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func TestComplianceTopicsAreAcknowledged(t *testing.T) {
	app, _ := setupApp(t)

	for _, topic := range []string{
		shopify.TopicCustomersDataRequest,
		shopify.TopicCustomersRedact,
	} {
		body := `{"shop_domain":"shop.myshopify.com"}`
		resp := deliver(t, app, topic, "shop.myshopify.com", body, sign(body))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "topic %s", topic)
	}
}

func TestInvalidSignatureRejected(t *testing.T) {
	app, _ := setupApp(t)

	body := `{"shop_domain":"shop.myshopify.com"}`

	resp := deliver(t, app, shopify.TopicCustomersRedact, "shop.myshopify.com", body, "bogus")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = deliver(t, app, shopify.TopicCustomersRedact, "shop.myshopify.com", body, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUnknownTopicNotFound(t *testing.T) {
	app, _ := setupApp(t)

	body := `{}`

	resp := deliver(t, app, "orders/create", "shop.myshopify.com", body, sign(body))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestShopRedactClearsSettingsRecord(t *testing.T) {
	app, st := setupApp(t)

	require.NoError(t, st.Put("shop.myshopify.com", []byte(`{"buttonStyle":"text-only"}`)))

	body := `{"shop_domain":"shop.myshopify.com"}`
	resp := deliver(t, app, shopify.TopicShopRedact, "shop.myshopify.com", body, sign(body))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got, err := st.Get("shop.myshopify.com")
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(got))
}

func TestDevModeSkipsSignatureCheck(t *testing.T) {
	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)

	cfg := &config.Config{DevMode: true}

	service := &Service{cfg: cfg, store: fs}

	app := fiber.New()
	app.Post(Path, service.Post)

	resp := deliver(t, app, shopify.TopicCustomersRedact, "shop.myshopify.com", `{}`, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
