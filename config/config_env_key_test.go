package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"sessionTTL": "168h",
			"cookieName": "storefront_session",
		},
		"inventory": map[string]any{
			"lowStockThreshold": 5,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_SESSIONTTL", want: "auth.sessionTTL"},
		{envKey: "AUTH_COOKIENAME", want: "auth.cookieName"},
		{envKey: "INVENTORY_LOWSTOCKTHRESHOLD", want: "inventory.lowStockThreshold"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	if got := cfg.SessionTTL(); got != defaultSessionTTL {
		t.Fatalf("SessionTTL() = %v, want %v", got, defaultSessionTTL)
	}
	if got := cfg.SessionCookieName(); got != defaultSessionCookieName {
		t.Fatalf("SessionCookieName() = %q, want %q", got, defaultSessionCookieName)
	}
	if got := cfg.LowStockThreshold(); got != defaultLowStockThreshold {
		t.Fatalf("LowStockThreshold() = %d, want %d", got, defaultLowStockThreshold)
	}

	cfg.Inventory = &InventoryConfig{LowStockThreshold: 12}
	if got := cfg.LowStockThreshold(); got != 12 {
		t.Fatalf("LowStockThreshold() = %d, want 12", got)
	}
}
