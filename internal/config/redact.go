package config

import "strings"

const redactedMask = "***"

// View is an audit-friendly rendering of Settings with credentials masked.
type View struct {
	Storage StorageView `json:"storage" yaml:"storage"`
	Risk    RiskView    `json:"risk" yaml:"risk"`
	API     APIView     `json:"api" yaml:"api"`
	Sources []string    `json:"sentimentSources" yaml:"sentiment_sources"`
}

// StorageView is the audit rendering of StorageConfig.
type StorageView struct {
	ProjectID       string `json:"projectId" yaml:"project_id"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentials_path"`
	CollectionName  string `json:"collectionName" yaml:"collection_name"`
}

// RiskView is the audit rendering of RiskConfig.
type RiskView struct {
	Mode               string  `json:"mode" yaml:"mode"`
	MaxPositionSize    string  `json:"maxPositionSize" yaml:"max_position_size"`
	StopLossFraction   float64 `json:"stopLossFraction" yaml:"stop_loss_fraction"`
	TakeProfitFraction float64 `json:"takeProfitFraction" yaml:"take_profit_fraction"`
	SentimentThreshold float64 `json:"sentimentThreshold" yaml:"sentiment_threshold"`
	CooloffSeconds     int     `json:"cooloffSeconds" yaml:"cooloff_seconds"`
}

// APIView is the audit rendering of APIConfig. Unset credentials stay empty.
type APIView struct {
	TwitterBearerToken string `json:"twitterBearerToken,omitempty" yaml:"twitter_bearer_token,omitempty"`
	NewsAPIKey         string `json:"newsApiKey,omitempty" yaml:"news_api_key,omitempty"`
	HasTwitterAccess   bool   `json:"hasTwitterAccess" yaml:"has_twitter_access"`
	HasNewsAccess      bool   `json:"hasNewsAccess" yaml:"has_news_access"`
	RateLimitPerMinute int    `json:"rateLimitPerMinute" yaml:"rate_limit_per_minute"`
	RetryAttempts      int    `json:"retryAttempts" yaml:"retry_attempts"`
	TimeoutSeconds     int    `json:"timeoutSeconds" yaml:"timeout_seconds"`
}

// Redacted returns a View of s with credentials masked down to their last four characters.
func (s *Settings) Redacted() View {
	sources := make([]string, len(s.Sources))
	for i, source := range s.Sources {
		sources[i] = string(source)
	}

	return View{
		Storage: StorageView{
			ProjectID:       s.Storage.ProjectID,
			CredentialsPath: s.Storage.CredentialsPath,
			CollectionName:  s.Storage.CollectionName,
		},
		Risk: RiskView{
			Mode:               s.Risk.Mode.String(),
			MaxPositionSize:    s.Risk.MaxPositionSize.String(),
			StopLossFraction:   s.Risk.StopLossFraction,
			TakeProfitFraction: s.Risk.TakeProfitFraction,
			SentimentThreshold: s.Risk.SentimentThreshold,
			CooloffSeconds:     s.Risk.CooloffSeconds,
		},
		API: APIView{
			TwitterBearerToken: mask(s.API.TwitterBearerToken),
			NewsAPIKey:         mask(s.API.NewsAPIKey),
			HasTwitterAccess:   s.API.HasTwitterAccess(),
			HasNewsAccess:      s.API.HasNewsAccess(),
			RateLimitPerMinute: s.API.RateLimitPerMinute,
			RetryAttempts:      s.API.RetryAttempts,
			TimeoutSeconds:     s.API.TimeoutSeconds,
		},
		Sources: sources,
	}
}

func mask(secret *string) string {
	if secret == nil || *secret == "" {
		return ""
	}
	value := *secret
	// Short secrets are masked entirely.
	if len(value) <= 8 {
		return redactedMask
	}
	return redactedMask + value[len(value)-4:]
}

// MaskedValue masks value for log output, keeping only the last four characters
// of long values.
func MaskedValue(value string) string {
	return mask(&value)
}

// IsSecretKey reports whether key names a credential that must never be printed verbatim.
func IsSecretKey(key string) bool {
	switch key {
	case envTwitterBearerToken, envNewsAPIKey:
		return true
	}
	upper := strings.ToUpper(key)
	return strings.Contains(upper, "TOKEN") || strings.Contains(upper, "SECRET") || strings.HasSuffix(upper, "_KEY")
}
