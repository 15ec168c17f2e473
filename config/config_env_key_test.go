package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	t.Parallel()

	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"tracking": map[string]any{
			"enforceTransitions":    true,
			"estimatedDeliveryDays": 7,
		},
		"chain": map[string]any{
			"rpcUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "TRACKING_ENFORCETRANSITIONS", want: "tracking.enforceTransitions"},
		{envKey: "CHAIN_RPCURL", want: "chain.rpcUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Parallel()

	env := map[string]string{
		"POSTGRES_REPLICAS_0_HOST":     "replica-0",
		"POSTGRES_REPLICAS_0_PORT":     "5432",
		"POSTGRES_REPLICAS_0_USERNAME": "reader",
		"POSTGRES_REPLICAS_1_HOST":     "replica-1",
	}

	replicas := buildReplicasFromEnv(func(key string) string { return env[key] })

	if assert.Len(t, replicas, 1) {
		assert.Equal(t, "replica-0", replicas[0].Host)
		assert.Equal(t, "5432", replicas[0].Port)
		assert.Equal(t, "reader", replicas[0].UserName)
	}
}
