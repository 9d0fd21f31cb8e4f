package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Auth)
	assert.True(t, cfg.Auth.UnknownRoleIsUser)
	assert.Equal(t, defaultAccessTTL, cfg.Auth.AccessTTL)
	assert.Equal(t, defaultRefreshTTL, cfg.Auth.RefreshTTL)
	assert.Equal(t, defaultBackfillTimeout, cfg.Auth.BackfillTimeout)
	assert.Equal(t, "0.50", cfg.Pricing.StaplingSurcharge)
	assert.Equal(t, "strict", cfg.Orders.StatusPolicy)
	assert.Equal(t, int64(defaultMaxDocumentSize), cfg.Orders.MaxDocumentSize)
	assert.True(t, cfg.Shop.SingleShopPerOwner)
	assert.Equal(t, 24*time.Hour, cfg.Storage.LinkTTL)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.QRCode)
	assert.NotNil(t, cfg.Firebase)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{AccessTTL: time.Minute, UnknownRoleIsUser: false},
		Pricing: &PricingConfig{StaplingSurcharge: "1.25"},
		Orders:  &OrdersConfig{StatusPolicy: "free"},
		Shop:    &ShopConfig{SingleShopPerOwner: false},
	}

	applyDefaults(cfg)

	assert.Equal(t, time.Minute, cfg.Auth.AccessTTL)
	assert.False(t, cfg.Auth.UnknownRoleIsUser)
	assert.Equal(t, "1.25", cfg.Pricing.StaplingSurcharge)
	assert.Equal(t, "free", cfg.Orders.StatusPolicy)
	assert.False(t, cfg.Shop.SingleShopPerOwner)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		cfg.SecretKey.Access = "a"
		cfg.SecretKey.Refresh = "r"
		cfg.Storage.BucketURL = "mem://"

		return cfg
	}

	require.NoError(t, validate(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "missing secrets", mutate: func(c *Config) { c.SecretKey.Refresh = "" }, want: "secretKey"},
		{name: "bad port", mutate: func(c *Config) { c.HTTP.Port = 70000 }, want: "http.port"},
		{name: "negative surcharge", mutate: func(c *Config) { c.Pricing.StaplingSurcharge = "-0.10" }, want: "staplingSurcharge"},
		{name: "garbled surcharge", mutate: func(c *Config) { c.Pricing.StaplingSurcharge = "fifty cents" }, want: "staplingSurcharge"},
		{name: "unknown policy", mutate: func(c *Config) { c.Orders.StatusPolicy = "lenient" }, want: "statusPolicy"},
		{name: "no bucket", mutate: func(c *Config) { c.Storage.BucketURL = " " }, want: "bucketUrl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
env:
  env: develop
  serviceName: printhub
auth:
  unknownRoleIsUser: true
  backfillTimeout: 5s
storage:
  bucketUrl: mem://
  linkTTL: 24h
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlContent), 0o600))

	t.Chdir(dir)
	t.Setenv("AUTH_UNKNOWNROLEISUSER", "false")
	t.Setenv("STORAGE_LINKTTL", "1h")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "printhub", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Auth)
	assert.False(t, cfg.Auth.UnknownRoleIsUser)
	assert.Equal(t, 5*time.Second, cfg.Auth.BackfillTimeout)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, "mem://", cfg.Storage.BucketURL)
	assert.Equal(t, time.Hour, cfg.Storage.LinkTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}
