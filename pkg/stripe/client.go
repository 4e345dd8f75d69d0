package stripe

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v84"
	checkoutsession "github.com/stripe/stripe-go/v84/checkout/session"

	"github.com/themosthappypiano/thewoofingoven/pkg/config"
	"github.com/themosthappypiano/thewoofingoven/pkg/logger"
)

const (
	testEnv = "test"
	liveEnv = "live"
)

var (
	errAPIKeyRequired = errors.New("stripe api key is required")
	errInvalidAPIKey  = errors.New("stripe api key must be a secret key (sk_/rk_)")
)

// Client wraps Stripe's API plus env-specific metadata. A nil Client means no
// payment backend is configured and checkout runs in synthetic mode.
type Client struct {
	environment string
	baseURL     string
}

// NewClient initializes Stripe once with the configured secret key. It returns
// (nil, nil) when no live key is configured so callers can fall back to the
// synthetic checkout flow.
func NewClient(ctx context.Context, cfg config.StripeConfig, logg *logger.Logger) (*Client, error) {
	if !cfg.Live() {
		if logg != nil {
			logg.Warn(ctx, "no stripe credentials configured, checkout will return synthetic sessions")
		}
		return nil, nil
	}

	apiKey := strings.TrimSpace(cfg.SecretKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}

	env, err := environmentForKey(apiKey)
	if err != nil {
		return nil, err
	}

	stripe.Key = apiKey

	if logg != nil {
		logg.Info(ctx, fmt.Sprintf("stripe client initialized (%s)", env))
	}

	return &Client{
		environment: env,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Environment reports the normalized Stripe environment in use.
func (c *Client) Environment() string {
	if c == nil {
		return ""
	}
	return c.environment
}

// BaseURL returns the storefront origin used for redirect URLs.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL
}

// CreateCheckoutSession submits a Checkout Session to Stripe.
func (c *Client) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	if c == nil {
		return nil, errors.New("stripe client not configured")
	}
	if params != nil {
		params.Context = ctx
	}
	return checkoutsession.New(params)
}

func environmentForKey(key string) (string, error) {
	switch {
	case strings.HasPrefix(key, "sk_test"), strings.HasPrefix(key, "rk_test"):
		return testEnv, nil
	case strings.HasPrefix(key, "sk_live"), strings.HasPrefix(key, "rk_live"):
		return liveEnv, nil
	default:
		return "", errInvalidAPIKey
	}
}
