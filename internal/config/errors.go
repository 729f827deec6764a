package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCredentialFile is returned when the Firebase credentials file does not exist.
	ErrMissingCredentialFile = errors.New("firebase credentials file not found")
	// ErrEmptyProjectID is returned when the Firebase project id resolves to an empty string.
	ErrEmptyProjectID = errors.New("firebase project id cannot be empty")
	// ErrUnknownMode is returned when TRADING_MODE does not name a trading mode.
	ErrUnknownMode = errors.New("unknown trading mode")
	// ErrInvalidNumericValue is returned when a numeric setting cannot be coerced.
	ErrInvalidNumericValue = errors.New("invalid numeric value")
	// ErrOutOfRangeStopLoss is returned when the stop-loss fraction is outside (0, 1).
	ErrOutOfRangeStopLoss = errors.New("stop loss fraction must be between 0 and 1")
	// ErrNonPositiveTakeProfit is returned when the take-profit fraction is not positive.
	ErrNonPositiveTakeProfit = errors.New("take profit fraction must be positive")
	// ErrNonPositivePositionSize is returned when the maximum position size is not positive.
	ErrNonPositivePositionSize = errors.New("max position size must be positive")
	// ErrUnknownSentimentSource is returned when SENTIMENT_SOURCES names an unsupported source.
	ErrUnknownSentimentSource = errors.New("unknown sentiment source")
	// ErrNonPositiveRateLimit is returned when the outbound request budget is not positive.
	ErrNonPositiveRateLimit = errors.New("rate limit per minute must be positive")
	// ErrNegativeRetryAttempts is returned when the retry count is negative.
	ErrNegativeRetryAttempts = errors.New("retry attempts must be non-negative")
	// ErrNonPositiveTimeout is returned when the request timeout is not positive.
	ErrNonPositiveTimeout = errors.New("timeout seconds must be positive")
)

// Error describes a configuration failure for a single setting.
// Kind is one of the sentinel errors above and Err, when set, is the underlying cause.
type Error struct {
	Key   string
	Value string
	Kind  error
	Err   error
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Key != "" {
		msg = fmt.Sprintf("%s: %s (value %q)", e.Key, msg, e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel kind and the cause to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, key, value string, cause error) *Error {
	return &Error{Key: key, Value: value, Kind: kind, Err: cause}
}

// KindOf returns the sentinel kind carried by err, or nil if err is not a configuration error.
func KindOf(err error) error {
	var cfgErr *Error
	if errors.As(err, &cfgErr) {
		return cfgErr.Kind
	}
	return nil
}

// KindName returns a stable identifier for the sentinel kind of err, e.g. "OutOfRangeStopLoss".
func KindName(err error) string {
	switch KindOf(err) {
	case ErrMissingCredentialFile:
		return "MissingCredentialFile"
	case ErrEmptyProjectID:
		return "EmptyProjectId"
	case ErrUnknownMode:
		return "UnknownMode"
	case ErrInvalidNumericValue:
		return "InvalidNumericValue"
	case ErrOutOfRangeStopLoss:
		return "OutOfRangeStopLoss"
	case ErrNonPositiveTakeProfit:
		return "NonPositiveTakeProfit"
	case ErrNonPositivePositionSize:
		return "NonPositivePositionSize"
	case ErrUnknownSentimentSource:
		return "UnknownSentimentSource"
	case ErrNonPositiveRateLimit:
		return "NonPositiveRateLimit"
	case ErrNegativeRetryAttempts:
		return "NegativeRetryAttempts"
	case ErrNonPositiveTimeout:
		return "NonPositiveTimeout"
	default:
		return ""
	}
}
