package config

import (
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	envTwitterBearerToken = "TWITTER_BEARER_TOKEN"
	envNewsAPIKey         = "NEWS_API_KEY"
	envRateLimitPerMinute = "RATE_LIMIT_PER_MINUTE"
	envRetryAttempts      = "RETRY_ATTEMPTS"
	envTimeoutSeconds     = "TIMEOUT_SECONDS"
)

// APIConfig holds credentials and limits for outbound calls to sentiment data providers.
// A nil credential means the key was not set and the provider is disabled.
type APIConfig struct {
	TwitterBearerToken *string
	NewsAPIKey         *string
	RateLimitPerMinute int
	RetryAttempts      int
	TimeoutSeconds     int
}

// LoadAPIConfig reads the provider credentials and request limits from env.
func LoadAPIConfig(env Env) (APIConfig, error) {
	rateLimit, err := env.intValue(envRateLimitPerMinute, "60")
	if err != nil {
		return APIConfig{}, err
	}
	retries, err := env.intValue(envRetryAttempts, "3")
	if err != nil {
		return APIConfig{}, err
	}
	timeout, err := env.intValue(envTimeoutSeconds, "30")
	if err != nil {
		return APIConfig{}, err
	}

	return APIConfig{
		TwitterBearerToken: env.optionalValue(envTwitterBearerToken),
		NewsAPIKey:         env.optionalValue(envNewsAPIKey),
		RateLimitPerMinute: rateLimit,
		RetryAttempts:      retries,
		TimeoutSeconds:     timeout,
	}, nil
}

// HasTwitterAccess reports whether a non-empty Twitter bearer token is configured.
func (c APIConfig) HasTwitterAccess() bool {
	return c.TwitterBearerToken != nil && *c.TwitterBearerToken != ""
}

// HasNewsAccess reports whether a non-empty news API key is configured.
func (c APIConfig) HasNewsAccess() bool {
	return c.NewsAPIKey != nil && *c.NewsAPIKey != ""
}

// RequestTimeout returns the per-request timeout.
func (c APIConfig) RequestTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// NewLimiter returns a token bucket that admits RateLimitPerMinute requests per
// minute with a burst of the full per-minute budget.
func (c APIConfig) NewLimiter() *rate.Limiter {
	perMinute := c.RateLimitPerMinute
	if perMinute <= 0 {
		perMinute = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

// Validate checks the request limits. Loading never calls it.
func (c APIConfig) Validate() error {
	if c.RateLimitPerMinute <= 0 {
		return newError(ErrNonPositiveRateLimit, envRateLimitPerMinute, strconv.Itoa(c.RateLimitPerMinute), nil)
	}
	if c.RetryAttempts < 0 {
		return newError(ErrNegativeRetryAttempts, envRetryAttempts, strconv.Itoa(c.RetryAttempts), nil)
	}
	if c.TimeoutSeconds <= 0 {
		return newError(ErrNonPositiveTimeout, envTimeoutSeconds, strconv.Itoa(c.TimeoutSeconds), nil)
	}
	return nil
}
