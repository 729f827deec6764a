package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SnapshotOptions selects the sources assembled into an Env.
// Precedence: Overrides > process environment > .env file > YAML file > defaults.
type SnapshotOptions struct {
	ConfigFile string
	EnvFile    string
	// SkipProcessEnv leaves the process environment out of the snapshot.
	SkipProcessEnv bool
	Overrides      map[string]string
}

// yamlConfig represents the YAML configuration file structure.
// Scalars are decoded as their source text so the usual coercion rules apply.
type yamlConfig struct {
	Firebase         yamlFirebase `yaml:"firebase"`
	Trading          yamlTrading  `yaml:"trading"`
	API              yamlAPI      `yaml:"api"`
	SentimentSources []string     `yaml:"sentiment_sources"`
}

type yamlFirebase struct {
	ProjectID       *string `yaml:"project_id"`
	CredentialsPath *string `yaml:"credentials_path"`
	CollectionName  *string `yaml:"collection_name"`
}

type yamlTrading struct {
	Mode               *string `yaml:"mode"`
	MaxPositionSize    *string `yaml:"max_position_size"`
	StopLossPct        *string `yaml:"stop_loss_pct"`
	TakeProfitPct      *string `yaml:"take_profit_pct"`
	SentimentThreshold *string `yaml:"sentiment_threshold"`
	CooloffPeriod      *string `yaml:"cooloff_period"`
}

type yamlAPI struct {
	TwitterBearerToken *string `yaml:"twitter_bearer_token"`
	NewsAPIKey         *string `yaml:"news_api_key"`
	RateLimitPerMinute *string `yaml:"rate_limit_per_minute"`
	RetryAttempts      *string `yaml:"retry_attempts"`
	TimeoutSeconds     *string `yaml:"timeout_seconds"`
}

// Snapshot assembles an Env from the configured sources.
func Snapshot(opts SnapshotOptions) (Env, error) {
	layers := make([]Env, 0, 4)

	if opts.ConfigFile != "" {
		fromYAML, err := ReadYAML(opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("load YAML config: %w", err)
		}
		layers = append(layers, fromYAML)
	}

	if opts.EnvFile != "" {
		fromDotenv, err := ReadDotenv(opts.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
		layers = append(layers, fromDotenv)
	}

	if !opts.SkipProcessEnv {
		layers = append(layers, FromOS())
	}

	layers = append(layers, Env(opts.Overrides))

	return Merge(layers...), nil
}

// ReadDotenv parses a .env file without touching the process environment.
func ReadDotenv(path string) (Env, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Env(values), nil
}

// ReadYAML loads a YAML configuration file and flattens it onto environment keys.
func ReadYAML(path string) (Env, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return flattenYAML(&yamlCfg), nil
}

func flattenYAML(yamlCfg *yamlConfig) Env {
	env := make(Env)
	set := func(key string, value *string) {
		if value != nil {
			env[key] = *value
		}
	}

	set(envFirebaseProjectID, yamlCfg.Firebase.ProjectID)
	set(envFirebaseCredentialsPath, yamlCfg.Firebase.CredentialsPath)
	set(envFirebaseCollection, yamlCfg.Firebase.CollectionName)

	set(envTradingMode, yamlCfg.Trading.Mode)
	set(envMaxPositionSize, yamlCfg.Trading.MaxPositionSize)
	set(envStopLossPct, yamlCfg.Trading.StopLossPct)
	set(envTakeProfitPct, yamlCfg.Trading.TakeProfitPct)
	set(envSentimentThreshold, yamlCfg.Trading.SentimentThreshold)
	set(envCooloffPeriod, yamlCfg.Trading.CooloffPeriod)

	set(envTwitterBearerToken, yamlCfg.API.TwitterBearerToken)
	set(envNewsAPIKey, yamlCfg.API.NewsAPIKey)
	set(envRateLimitPerMinute, yamlCfg.API.RateLimitPerMinute)
	set(envRetryAttempts, yamlCfg.API.RetryAttempts)
	set(envTimeoutSeconds, yamlCfg.API.TimeoutSeconds)

	if yamlCfg.SentimentSources != nil {
		env[envSentimentSources] = strings.Join(yamlCfg.SentimentSources, ",")
	}

	return env
}
