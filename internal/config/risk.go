package config

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const (
	envTradingMode        = "TRADING_MODE"
	envMaxPositionSize    = "MAX_POSITION_SIZE"
	envStopLossPct        = "STOP_LOSS_PCT"
	envTakeProfitPct      = "TAKE_PROFIT_PCT"
	envSentimentThreshold = "SENTIMENT_THRESHOLD"
	envCooloffPeriod      = "COOLOFF_PERIOD"
)

// TradingMode selects how orders are executed.
type TradingMode int

const (
	// ModePaper simulates fills without touching real money.
	ModePaper TradingMode = iota + 1
	// ModeLive trades real money.
	ModeLive
	// ModeBacktest replays historical data.
	ModeBacktest
)

var tradingModes = map[string]TradingMode{
	"PAPER":    ModePaper,
	"LIVE":     ModeLive,
	"BACKTEST": ModeBacktest,
}

// ParseTradingMode maps a mode name to its TradingMode. Names are case-sensitive.
func ParseTradingMode(name string) (TradingMode, error) {
	mode, ok := tradingModes[name]
	if !ok {
		return 0, newError(ErrUnknownMode, envTradingMode, name, nil)
	}
	return mode, nil
}

func (m TradingMode) String() string {
	switch m {
	case ModePaper:
		return "PAPER"
	case ModeLive:
		return "LIVE"
	case ModeBacktest:
		return "BACKTEST"
	default:
		return "TradingMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// RiskConfig bounds trading behaviour. Loading only coerces values; call
// Validate before the bounds are relied upon.
type RiskConfig struct {
	Mode               TradingMode
	MaxPositionSize    decimal.Decimal
	StopLossFraction   float64
	TakeProfitFraction float64
	SentimentThreshold float64
	CooloffSeconds     int
}

// LoadRiskConfig reads the trading risk settings from env.
func LoadRiskConfig(env Env) (RiskConfig, error) {
	mode, err := ParseTradingMode(env.Get(envTradingMode, "PAPER"))
	if err != nil {
		return RiskConfig{}, err
	}

	maxPosition, err := env.decimalValue(envMaxPositionSize, "10000")
	if err != nil {
		return RiskConfig{}, err
	}
	stopLoss, err := env.floatValue(envStopLossPct, "0.02")
	if err != nil {
		return RiskConfig{}, err
	}
	takeProfit, err := env.floatValue(envTakeProfitPct, "0.05")
	if err != nil {
		return RiskConfig{}, err
	}
	threshold, err := env.floatValue(envSentimentThreshold, "0.7")
	if err != nil {
		return RiskConfig{}, err
	}
	cooloff, err := env.intValue(envCooloffPeriod, "300")
	if err != nil {
		return RiskConfig{}, err
	}

	return RiskConfig{
		Mode:               mode,
		MaxPositionSize:    maxPosition,
		StopLossFraction:   stopLoss,
		TakeProfitFraction: takeProfit,
		SentimentThreshold: threshold,
		CooloffSeconds:     cooloff,
	}, nil
}

// Validate checks the risk bounds and returns the first violation:
// stop-loss range, then take-profit sign, then position size sign.
func (c RiskConfig) Validate() error {
	// Negated comparisons so that NaN fails.
	if !(c.StopLossFraction > 0 && c.StopLossFraction < 1) {
		return newError(ErrOutOfRangeStopLoss, envStopLossPct, formatFloat(c.StopLossFraction), nil)
	}
	if !(c.TakeProfitFraction > 0) {
		return newError(ErrNonPositiveTakeProfit, envTakeProfitPct, formatFloat(c.TakeProfitFraction), nil)
	}
	if !c.MaxPositionSize.IsPositive() {
		return newError(ErrNonPositivePositionSize, envMaxPositionSize, c.MaxPositionSize.String(), nil)
	}
	return nil
}

// CooloffPeriod returns the minimum time between trades.
func (c RiskConfig) CooloffPeriod() time.Duration {
	return time.Duration(c.CooloffSeconds) * time.Second
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
