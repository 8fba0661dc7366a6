package shopify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Webhook headers set by the host platform.
const (
	HeaderWebhookHMAC  = "X-Shopify-Hmac-Sha256"
	HeaderWebhookTopic = "X-Shopify-Topic"
	HeaderShopDomain   = "X-Shopify-Shop-Domain"
)

// Compliance webhook topics every app must acknowledge.
const (
	TopicCustomersDataRequest = "customers/data_request"
	TopicCustomersRedact      = "customers/redact"
	TopicShopRedact           = "shop/redact"
)

// ValidWebhookSignature reports whether signature is the base64 encoded
// HMAC-SHA256 of body under the app's client secret.
func ValidWebhookSignature(secret string, body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)

	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
