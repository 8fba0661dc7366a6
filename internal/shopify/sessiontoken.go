// Package shopify implements the thin slice of the host platform contract
// this service consumes: embedded-app session token verification and
// webhook signature checking. The full OAuth/embedding handshake is owned
// by the platform and is not reproduced here.
package shopify

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// LocalsShopKey is the fiber.Ctx locals key holding the verified shop domain.
const LocalsShopKey = "shopify_shop"

var (
	// ErrNoToken is returned when the Authorization header carries no bearer token.
	ErrNoToken = errors.New("missing bearer session token")

	// ErrTokenReplayed is returned when a session token jti was already seen.
	ErrTokenReplayed = errors.New("session token already used")

	// ErrEmptyDest is returned when the token dest claim names no shop.
	ErrEmptyDest = errors.New("session token dest claim is empty")
)

// SessionClaims are the claims of an embedded-app session token. The host
// platform signs them HS256 with the app's client secret; dest names the
// shop the token was issued for and aud repeats the app's client id.
type SessionClaims struct {
	Dest string `json:"dest"`
	jwt.RegisteredClaims
}

// TokenVerifier validates embedded-app session tokens.
type TokenVerifier struct {
	apiKey string
	secret []byte
	replay fiber.Storage // optional jti cache, nil disables replay detection
}

// NewTokenVerifier creates a TokenVerifier for the given app credentials.
// replay may be nil.
func NewTokenVerifier(apiKey, apiSecret string, replay fiber.Storage) *TokenVerifier {
	return &TokenVerifier{
		apiKey: apiKey,
		secret: []byte(apiSecret),
		replay: replay,
	}
}

// Verify parses and validates a raw session token and returns the shop
// domain it was issued for.
func (v *TokenVerifier) Verify(raw string) (string, error) {
	claims := new(SessionClaims)

	_, err := jwt.ParseWithClaims(raw, claims,
		func(_ *jwt.Token) (interface{}, error) { return v.secret, nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithAudience(v.apiKey),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", errors.Wrap(err, "invalid session token")
	}

	shop := shopFromDest(claims.Dest)
	if shop == "" {
		return "", ErrEmptyDest
	}

	if err := v.checkReplay(claims); err != nil {
		return "", err
	}

	return shop, nil
}

// checkReplay rejects a token whose jti was already accepted. The jti is
// cached until the token would have expired anyway.
func (v *TokenVerifier) checkReplay(claims *SessionClaims) error {
	if v.replay == nil || claims.ID == "" {
		return nil
	}

	key := "jti:" + claims.ID

	seen, err := v.replay.Get(key)
	if err != nil {
		// cache trouble must not lock merchants out, skip replay detection
		log.Warn().Err(err).Msg("session token replay cache unavailable")

		return nil
	}

	if len(seen) > 0 {
		return ErrTokenReplayed
	}

	ttl := time.Minute
	if claims.ExpiresAt != nil {
		if until := time.Until(claims.ExpiresAt.Time); until > 0 {
			ttl = until
		}
	}

	if err := v.replay.Set(key, []byte{1}, ttl); err != nil {
		log.Warn().Err(err).Msg("failed to record session token jti")
	}

	return nil
}

// Middleware returns a fiber middleware enforcing a valid session token on
// every request not skipped by next. The verified shop is stored in
// c.Locals(LocalsShopKey); when a shop query parameter is present it must
// match the token's shop.
func (v *TokenVerifier) Middleware(next func(c *fiber.Ctx) bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if next != nil && next(c) {
			return c.Next()
		}

		raw := bearerToken(c.Get(fiber.HeaderAuthorization))
		if raw == "" {
			return unauthorized(c, ErrNoToken)
		}

		shop, err := v.Verify(raw)
		if err != nil {
			return unauthorized(c, err)
		}

		if q := c.Query("shop"); q != "" && q != shop {
			log.Warn().Str("token_shop", shop).Str("query_shop", q).Msg("session token shop mismatch")

			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"success": false,
				"error":   "session token does not match shop",
			})
		}

		c.Locals(LocalsShopKey, shop)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, err error) error {
	log.Debug().Err(err).Msg("session token rejected")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"success": false,
		"error":   "invalid session token",
	})
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}

	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// shopFromDest extracts the shop domain from a dest claim such as
// "https://example.myshopify.com".
func shopFromDest(dest string) string {
	shop := strings.TrimPrefix(dest, "https://")
	shop = strings.TrimPrefix(shop, "http://")

	return strings.TrimSuffix(shop, "/")
}
