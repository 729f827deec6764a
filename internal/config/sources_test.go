package config

import (
	"errors"
	"slices"
	"testing"
)

func TestLoadSources(t *testing.T) {
	tests := []struct {
		name    string
		env     Env
		want    []SentimentSource
		wantErr error
	}{
		{name: "Unset", env: Env{}, want: []SentimentSource{}},
		{name: "Empty", env: Env{"SENTIMENT_SOURCES": ""}, want: []SentimentSource{}},
		{name: "List", env: Env{"SENTIMENT_SOURCES": "twitter,news"}, want: []SentimentSource{SourceTwitter, SourceNews}},
		{name: "CaseAndSpaces", env: Env{"SENTIMENT_SOURCES": " REDDIT , Instagram "}, want: []SentimentSource{SourceReddit, SourceInstagram}},
		{name: "Duplicates", env: Env{"SENTIMENT_SOURCES": "news,twitter,NEWS,,"}, want: []SentimentSource{SourceNews, SourceTwitter}},
		{name: "Unknown", env: Env{"SENTIMENT_SOURCES": "twitter,tiktok"}, wantErr: ErrUnknownSentimentSource},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := LoadSources(tc.env)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !slices.Equal(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestParseSentimentSource(t *testing.T) {
	source, err := ParseSentimentSource("TWITTER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceTwitter {
		t.Fatalf("expected twitter, got %s", source)
	}

	if _, err := ParseSentimentSource("fax"); KindName(err) != "UnknownSentimentSource" {
		t.Fatalf("expected UnknownSentimentSource, got %v", err)
	}
}
