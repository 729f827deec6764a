package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/sentiment-trading/internal/api"
	"github.com/eugenenazirov/sentiment-trading/internal/config"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func loadSettings(t *testing.T, overrides map[string]string) *config.Settings {
	t.Helper()

	dir := t.TempDir()
	credentials := writeFile(t, dir, "firebase_credentials.json", `{"type":"service_account"}`)
	configFile := writeFile(t, dir, "settings.yaml", `
firebase:
  project_id: sentiment-integration
  credentials_path: `+credentials+`
trading:
  mode: LIVE
  max_position_size: 2500
sentiment_sources: [twitter, news]
`)
	envFile := writeFile(t, dir, ".env", "TWITTER_BEARER_TOKEN=integration-bearer-4242\n")

	env, err := config.Snapshot(config.SnapshotOptions{
		ConfigFile:     configFile,
		EnvFile:        envFile,
		SkipProcessEnv: true,
		Overrides:      overrides,
	})
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}

	settings, err := config.Load(env)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return settings
}

func get(t *testing.T, handler http.Handler, target string, out any) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from %s, got %d", target, rec.Code)
	}
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", target, err)
	}
}

func TestIntegrationFlow(t *testing.T) {
	settings := loadSettings(t, nil)
	router := api.NewRouter(api.NewHandler(settings), zaptest.NewLogger(t))

	var settingsResp struct {
		Settings config.View `json:"settings"`
	}
	get(t, router, "/api/settings", &settingsResp)

	view := settingsResp.Settings
	if view.Storage.ProjectID != "sentiment-integration" || view.Risk.Mode != "LIVE" {
		t.Fatalf("unexpected settings view %+v", view)
	}
	if view.Risk.MaxPositionSize != "2500" {
		t.Fatalf("unexpected max position size %s", view.Risk.MaxPositionSize)
	}
	if !view.API.HasTwitterAccess || view.API.HasNewsAccess {
		t.Fatalf("unexpected access flags %+v", view.API)
	}
	if view.API.TwitterBearerToken != "***4242" {
		t.Fatalf("unexpected masked token %q", view.API.TwitterBearerToken)
	}

	var validation struct {
		Valid bool   `json:"valid"`
		Kind  string `json:"kind"`
	}
	get(t, router, "/api/settings/validation", &validation)
	if !validation.Valid {
		t.Fatalf("expected settings to be valid, got kind %q", validation.Kind)
	}
}

func TestIntegrationInspectBeforeEnforce(t *testing.T) {
	settings := loadSettings(t, map[string]string{"STOP_LOSS_PCT": "0"})
	router := api.NewRouter(api.NewHandler(settings), zaptest.NewLogger(t), api.WithLogging(false))

	var settingsResp struct {
		Settings config.View `json:"settings"`
	}
	get(t, router, "/api/settings", &settingsResp)
	if settingsResp.Settings.Risk.StopLossFraction != 0 {
		t.Fatalf("expected raw stop loss to be visible, got %v", settingsResp.Settings.Risk.StopLossFraction)
	}

	var validation struct {
		Valid bool   `json:"valid"`
		Kind  string `json:"kind"`
	}
	get(t, router, "/api/settings/validation", &validation)
	if validation.Valid || validation.Kind != "OutOfRangeStopLoss" {
		t.Fatalf("expected OutOfRangeStopLoss, got %+v", validation)
	}
}
