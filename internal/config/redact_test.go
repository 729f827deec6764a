package config

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRedacted(t *testing.T) {
	token := "AAAAAAAAAAAAAAAAAAAAAbcd1234"
	shortKey := "abc123"
	settings := &Settings{
		Storage: StorageConfig{ProjectID: "sentiment-prod", CredentialsPath: "/etc/firebase.json", CollectionName: "signals"},
		Risk: RiskConfig{
			Mode:               ModeLive,
			MaxPositionSize:    decimal.RequireFromString("2500.5"),
			StopLossFraction:   0.02,
			TakeProfitFraction: 0.05,
		},
		API:     APIConfig{TwitterBearerToken: &token, NewsAPIKey: &shortKey, RateLimitPerMinute: 60},
		Sources: []SentimentSource{SourceTwitter, SourceNews},
	}

	view := settings.Redacted()

	if view.API.TwitterBearerToken != "***1234" {
		t.Fatalf("expected token masked to last four characters, got %q", view.API.TwitterBearerToken)
	}
	if view.API.NewsAPIKey != "***" {
		t.Fatalf("expected short key to be fully masked, got %q", view.API.NewsAPIKey)
	}
	if strings.Contains(view.API.TwitterBearerToken, "AAAA") {
		t.Fatalf("token leaked through redaction")
	}
	if !view.API.HasTwitterAccess || !view.API.HasNewsAccess {
		t.Fatalf("expected access flags to be reported")
	}
	if view.Risk.Mode != "LIVE" || view.Risk.MaxPositionSize != "2500.5" {
		t.Fatalf("unexpected risk view %+v", view.Risk)
	}
	if len(view.Sources) != 2 || view.Sources[0] != "twitter" {
		t.Fatalf("unexpected sources %v", view.Sources)
	}
}

func TestRedactedUnsetCredentials(t *testing.T) {
	settings := &Settings{}
	view := settings.Redacted()

	if view.API.TwitterBearerToken != "" || view.API.NewsAPIKey != "" {
		t.Fatalf("expected unset credentials to stay empty, got %+v", view.API)
	}
	if view.Sources == nil || len(view.Sources) != 0 {
		t.Fatalf("expected empty sources slice, got %v", view.Sources)
	}
}

func TestMaskedValueAndSecretKeys(t *testing.T) {
	if MaskedValue("") != "" {
		t.Fatalf("expected empty value to stay empty")
	}
	if MaskedValue("0123456789") != "***6789" {
		t.Fatalf("unexpected mask %q", MaskedValue("0123456789"))
	}

	secrets := []string{"TWITTER_BEARER_TOKEN", "NEWS_API_KEY", "APCA_API_SECRET_KEY", "telegram_bot_token"}
	for _, key := range secrets {
		if !IsSecretKey(key) {
			t.Fatalf("expected %s to be treated as secret", key)
		}
	}
	for _, key := range []string{"TRADING_MODE", "FIREBASE_PROJECT_ID", "KEYBOARD"} {
		if IsSecretKey(key) {
			t.Fatalf("expected %s to be printable", key)
		}
	}
}
