package config

import "strings"

const envSentimentSources = "SENTIMENT_SOURCES"

// SentimentSource is an external platform that sentiment signals are drawn from.
type SentimentSource string

const (
	SourceTwitter   SentimentSource = "twitter"
	SourceNews      SentimentSource = "news"
	SourceReddit    SentimentSource = "reddit"
	SourceInstagram SentimentSource = "instagram"
)

var knownSources = map[SentimentSource]struct{}{
	SourceTwitter:   {},
	SourceNews:      {},
	SourceReddit:    {},
	SourceInstagram: {},
}

// ParseSentimentSource maps a source name to a SentimentSource, ignoring case
// and surrounding whitespace.
func ParseSentimentSource(name string) (SentimentSource, error) {
	source := SentimentSource(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := knownSources[source]; !ok {
		return "", newError(ErrUnknownSentimentSource, envSentimentSources, name, nil)
	}
	return source, nil
}

// LoadSources reads the comma-separated SENTIMENT_SOURCES list. Blank entries are
// skipped and duplicates collapse onto their first occurrence. An unset key
// enables no sources.
func LoadSources(env Env) ([]SentimentSource, error) {
	raw, ok := env.Lookup(envSentimentSources)
	if !ok {
		return []SentimentSource{}, nil
	}

	parts := strings.Split(raw, ",")
	sources := make([]SentimentSource, 0, len(parts))
	seen := make(map[SentimentSource]struct{}, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		source, err := ParseSentimentSource(part)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[source]; dup {
			continue
		}
		seen[source] = struct{}{}
		sources = append(sources, source)
	}
	return sources, nil
}
