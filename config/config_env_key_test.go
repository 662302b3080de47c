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
		"pubsub": map[string]any{
			"topicId": "",
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
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
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

func TestCanonicalizeEnvKey_CommerceAndAuthKeys(t *testing.T) {
	existing := map[string]any{
		"commerce": map[string]any{
			"freeShippingThreshold": 50,
			"orderNumberPrefix":     "ORD",
		},
		"auth": map[string]any{
			"accessTokenTTL": "15m",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "COMMERCE_FREESHIPPINGTHRESHOLD", want: "commerce.freeShippingThreshold"},
		{envKey: "COMMERCE_ORDERNUMBERPREFIX", want: "commerce.orderNumberPrefix"},
		{envKey: "AUTH_ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
		{envKey: "AUTH__ACCESSTOKENTTL", want: "auth.accessTokenTTL"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != defaultBcryptCost {
		t.Fatalf("BcryptCost = %d, want %d", cfg.Auth.BcryptCost, defaultBcryptCost)
	}
	if cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL || cfg.Auth.RefreshTokenTTL != defaultRefreshTokenTTL {
		t.Fatalf("unexpected token TTLs: %v / %v", cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	}
	if cfg.Commerce.OrderNumberPrefix != defaultOrderNumberPrefix {
		t.Fatalf("OrderNumberPrefix = %q, want %q", cfg.Commerce.OrderNumberPrefix, defaultOrderNumberPrefix)
	}
	if cfg.PubSub.Provider != "noop" {
		t.Fatalf("PubSub.Provider = %q, want noop", cfg.PubSub.Provider)
	}
	if cfg.QRCode.Size != defaultQRCodeSize {
		t.Fatalf("QRCode.Size = %d, want %d", cfg.QRCode.Size, defaultQRCodeSize)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:     &AuthConfig{BcryptCost: 4},
		Commerce: &CommerceConfig{OrderNumberPrefix: "BZR", ShippingFee: 3},
	}
	applyDefaults(cfg)

	if cfg.Auth.BcryptCost != 4 {
		t.Fatalf("BcryptCost overwritten: %d", cfg.Auth.BcryptCost)
	}
	if cfg.Commerce.OrderNumberPrefix != "BZR" || cfg.Commerce.ShippingFee != 3 {
		t.Fatalf("commerce overwritten: %+v", cfg.Commerce)
	}
}
