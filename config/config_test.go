package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env:
  env: develop
  serviceName: chaintrace
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
secretKey:
  access: access-secret
  refresh: refresh-secret
tracking:
  estimatedDeliveryDays: 0
chain:
  enabled: false
  rpcUrl: ""
`

func writeSampleConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(sampleConfig), 0o600))

	return dir
}

func TestNew_AppliesDefaults(t *testing.T) {
	t.Chdir(writeSampleConfig(t))

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "develop", cfg.Env.Env)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultAccessTTL, cfg.Auth.AccessTTL)
	assert.Equal(t, 7, cfg.Tracking.EstimatedDeliveryDays)
	assert.True(t, cfg.Tracking.Enforce())
	assert.Equal(t, defaultQRCodeLevel, cfg.QRCode.ErrorCorrectionLevel)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestNew_EnvOverridesYAML(t *testing.T) {
	t.Chdir(writeSampleConfig(t))
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CHAIN_RPCURL", "http://localhost:8545")
	t.Setenv("CHAIN_ENABLED", "true")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Chain.Enabled)
	assert.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.ErrorContains(t, err, "absent.yaml not found")
}

func TestTrackingConfig_Enforce(t *testing.T) {
	t.Parallel()

	off := false
	var nilCfg *TrackingConfig

	assert.True(t, nilCfg.Enforce())
	assert.True(t, (&TrackingConfig{}).Enforce())
	assert.False(t, (&TrackingConfig{EnforceTransitions: &off}).Enforce())
}
