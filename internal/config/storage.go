package config

import "os"

const (
	envFirebaseProjectID       = "FIREBASE_PROJECT_ID"
	envFirebaseCredentialsPath = "FIREBASE_CREDENTIALS_PATH"
	envFirebaseCollection      = "FIREBASE_COLLECTION"

	defaultCredentialsPath = "./firebase_credentials.json"
	defaultCollectionName  = "sentiment_trading"
)

// StorageConfig identifies the Firebase project used as the state store.
type StorageConfig struct {
	ProjectID       string
	CredentialsPath string
	CollectionName  string
}

// LoadStorageConfig reads the Firebase settings from env. The credentials file
// must exist on disk and the project id must be non-empty.
func LoadStorageConfig(env Env) (StorageConfig, error) {
	cfg := StorageConfig{
		ProjectID:       env.Get(envFirebaseProjectID, ""),
		CredentialsPath: env.Get(envFirebaseCredentialsPath, defaultCredentialsPath),
		CollectionName:  env.Get(envFirebaseCollection, defaultCollectionName),
	}

	if _, err := os.Stat(cfg.CredentialsPath); err != nil {
		return StorageConfig{}, newError(ErrMissingCredentialFile, envFirebaseCredentialsPath, cfg.CredentialsPath, err)
	}
	if cfg.ProjectID == "" {
		return StorageConfig{}, newError(ErrEmptyProjectID, envFirebaseProjectID, cfg.ProjectID, nil)
	}

	return cfg, nil
}
