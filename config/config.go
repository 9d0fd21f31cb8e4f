package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultStaplingSurcharge = "0.50"
	defaultStatusPolicy      = "strict"
	defaultMaxDocumentSize   = 20 << 20
	defaultLinkTTL           = 24 * time.Hour
	defaultAccessTTL         = 15 * time.Minute
	defaultRefreshTTL        = 7 * 24 * time.Hour
	defaultBackfillTimeout   = 5 * time.Second
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Pricing configuration for order quotes
	Pricing *PricingConfig `json:"pricing" yaml:"pricing"`

	// Orders configuration for the order lifecycle
	Orders *OrdersConfig `json:"orders" yaml:"orders"`

	Shop *ShopConfig `json:"shop" yaml:"shop"`

	// Storage configuration for uploaded print documents
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for order pickup codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	MaxActiveSessions int           `json:"maxActiveSessions" yaml:"maxActiveSessions"`
	AccessTTL         time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL        time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`

	// UnknownRoleIsUser lets principals without a resolvable role into user-only routes.
	UnknownRoleIsUser bool `json:"unknownRoleIsUser" yaml:"unknownRoleIsUser"`

	// ResolveTimeout bounds the profile lookup during role resolution. Zero means no bound.
	ResolveTimeout time.Duration `json:"resolveTimeout" yaml:"resolveTimeout"`

	// BackfillTimeout bounds the asynchronous write of a resolved role into the session metadata.
	BackfillTimeout time.Duration `json:"backfillTimeout" yaml:"backfillTimeout"`

	// AdminSignupSecret allows sign-up with the admin role. Empty disables admin sign-up.
	AdminSignupSecret string `json:"adminSignupSecret" yaml:"adminSignupSecret"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PricingConfig defines order pricing configuration
type PricingConfig struct {
	// StaplingSurcharge is added per copy when stapling is requested, e.g. "0.50".
	StaplingSurcharge string `json:"staplingSurcharge" yaml:"staplingSurcharge"`
}

// OrdersConfig defines order lifecycle configuration
type OrdersConfig struct {
	// StatusPolicy is "strict" (forward-only transitions) or "free" (any status to any status).
	StatusPolicy    string `json:"statusPolicy" yaml:"statusPolicy"`
	MaxDocumentSize int64  `json:"maxDocumentSize" yaml:"maxDocumentSize"`
}

// ShopConfig defines shop management configuration
type ShopConfig struct {
	SingleShopPerOwner bool `json:"singleShopPerOwner" yaml:"singleShopPerOwner"`
}

// StorageConfig defines object storage configuration for print documents
type StorageConfig struct {
	// BucketURL is a gocloud.dev blob URL, e.g. "file:///var/lib/printhub/documents" or "gs://bucket".
	BucketURL string        `json:"bucketUrl" yaml:"bucketUrl"`
	KeyPrefix string        `json:"keyPrefix" yaml:"keyPrefix"`
	LinkTTL   time.Duration `json:"linkTTL" yaml:"linkTTL"`

	// PublicBaseURL and SigningKey are used to sign links for file-backed buckets.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	SigningKey    string `json:"signingKey" yaml:"signingKey"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, empty disables publishing
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the expected audience of Pub/Sub push OIDC tokens. Empty derives it from the request URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// VerifyPushToken enables OIDC verification of push requests in the notifier.
	VerifyPushToken bool `json:"verifyPushToken" yaml:"verifyPushToken"`
}

// LoadWithEnv reads <currEnv>.yaml from the working directory or one of configPath (relative to
// it) and overlays environment variables such as AUTH_ACCESSTTL onto the matching YAML keys.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	path, err := findConfigFile(currEnv+".yaml", configPath)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fileKeys := k.Raw()
	envProvider := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fileKeys), value
		},
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, "load environment overrides")
	}

	cfg := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func findConfigFile(name string, dirs []string) (string, error) {
	candidates := []string{filepath.Join(defaultPath, name)}
	if len(dirs) > 0 {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "resolve working directory")
		}
		for _, dir := range dirs {
			candidates = append(candidates, filepath.Join(wd, dir, name))
		}
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s not found in %v", name, candidates)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the sections and values a minimal config.yaml may omit.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{UnknownRoleIsUser: true}
	}
	if cfg.Auth.AccessTTL <= 0 {
		cfg.Auth.AccessTTL = defaultAccessTTL
	}
	if cfg.Auth.RefreshTTL <= 0 {
		cfg.Auth.RefreshTTL = defaultRefreshTTL
	}
	if cfg.Auth.BackfillTimeout <= 0 {
		cfg.Auth.BackfillTimeout = defaultBackfillTimeout
	}

	if cfg.Pricing == nil {
		cfg.Pricing = &PricingConfig{}
	}
	if strings.TrimSpace(cfg.Pricing.StaplingSurcharge) == "" {
		cfg.Pricing.StaplingSurcharge = defaultStaplingSurcharge
	}

	if cfg.Orders == nil {
		cfg.Orders = &OrdersConfig{}
	}
	if cfg.Orders.StatusPolicy == "" {
		cfg.Orders.StatusPolicy = defaultStatusPolicy
	}
	if cfg.Orders.MaxDocumentSize <= 0 {
		cfg.Orders.MaxDocumentSize = defaultMaxDocumentSize
	}

	if cfg.Shop == nil {
		cfg.Shop = &ShopConfig{SingleShopPerOwner: true}
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.LinkTTL <= 0 {
		cfg.Storage.LinkTTL = defaultLinkTTL
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
}

// validate rejects settings the services would otherwise only discover on first use.
func validate(cfg *Config) error {
	var problems []string

	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		problems = append(problems, "secretKey.access and secretKey.refresh are required")
	}
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		problems = append(problems, "http.port must be between 0 and 65535")
	}
	if surcharge, err := decimal.NewFromString(cfg.Pricing.StaplingSurcharge); err != nil || surcharge.IsNegative() {
		problems = append(problems, "pricing.staplingSurcharge must be a non-negative decimal")
	}
	switch cfg.Orders.StatusPolicy {
	case "strict", "free":
	default:
		problems = append(problems, "orders.statusPolicy must be strict or free")
	}
	if strings.TrimSpace(cfg.Storage.BucketURL) == "" {
		problems = append(problems, "storage.bucketUrl is required")
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	return nil
}

// canonicalizeEnvKey maps POSTGRES_MASTER_USERNAME to postgres.master.userName by matching each
// segment against the keys already loaded from YAML. Unknown segments stay lower case.
func canonicalizeEnvKey(rawKey string, known map[string]any) string {
	var path []string
	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := matchKey(known, segment)
		path = append(path, key)
		known = child
	}

	return strings.Join(path, ".")
}

func matchKey(known map[string]any, segment string) (string, map[string]any) {
	for key, value := range known {
		if foldKey(key) == segment {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func foldKey(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// buildReplicasFromEnv reads read replicas from POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD},
// stopping at the first index without both host and port.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig
	for i := 0; ; i++ {
		get := func(field string) string {
			return os.Getenv("POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_" + field)
		}

		host, port := get("HOST"), get("PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: get("USERNAME"),
			Password: get("PASSWORD"),
		})
	}
}
