package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidWebhookSignature(t *testing.T) {
	secret := "webhook-secret"
	body := []byte(`{"shop_domain":"example.myshopify.com"}`)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	assert.True(t, ValidWebhookSignature(secret, body, signature))
	assert.False(t, ValidWebhookSignature("other-secret", body, signature))
	assert.False(t, ValidWebhookSignature(secret, []byte(`{}`), signature))
	assert.False(t, ValidWebhookSignature(secret, body, "not-a-signature"))
	assert.False(t, ValidWebhookSignature(secret, body, ""))
}
