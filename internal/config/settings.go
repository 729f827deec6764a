package config

import "slices"

// Settings aggregates every sub-configuration of the trading system.
// It is built once at startup and must not be modified afterwards.
type Settings struct {
	Storage StorageConfig
	Risk    RiskConfig
	API     APIConfig
	Sources []SentimentSource
}

// Load builds Settings from env, loading storage, risk, API and sentiment
// sources in that order. The first failure aborts loading; no partial
// Settings is ever returned. Business rules are not enforced; see Validate.
func Load(env Env) (*Settings, error) {
	storage, err := LoadStorageConfig(env)
	if err != nil {
		return nil, err
	}
	risk, err := LoadRiskConfig(env)
	if err != nil {
		return nil, err
	}
	api, err := LoadAPIConfig(env)
	if err != nil {
		return nil, err
	}
	sources, err := LoadSources(env)
	if err != nil {
		return nil, err
	}

	return &Settings{
		Storage: storage,
		Risk:    risk,
		API:     api,
		Sources: sources,
	}, nil
}

// Validate enforces the risk bounds, then the API limits.
func (s *Settings) Validate() error {
	if err := s.Risk.Validate(); err != nil {
		return err
	}
	return s.API.Validate()
}

// SourceEnabled reports whether source is in the enabled set.
func (s *Settings) SourceEnabled(source SentimentSource) bool {
	return slices.Contains(s.Sources, source)
}
