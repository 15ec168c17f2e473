package config

import (
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize    = "1MB"
	defaultBcryptCost            = 10
	defaultAccessTTL             = 15 * time.Minute
	defaultRefreshTTL            = 7 * 24 * time.Hour
	defaultEstimatedDeliveryDays = 7
	defaultReceiptTimeout        = 30 * time.Second
	defaultGeocodingBaseURL      = "https://nominatim.openstreetmap.org"
	defaultGeocodingUserAgent    = "chaintrace/1.0"
	defaultGeocodingTimeout      = 5 * time.Second
	defaultGeocodingMaxElapsed   = 10 * time.Second
	defaultQRCodeSize            = 256
	defaultQRCodeLevel           = "M"
	defaultMetricsPath           = "/metrics"
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

	// Migration controls schema creation on startup.
	Migration struct {
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`
	} `json:"migration" yaml:"migration"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Tracking *TrackingConfig `json:"tracking" yaml:"tracking"`

	// Chain enables on-chain receipt checks for purchase creation.
	Chain *ChainConfig `json:"chain" yaml:"chain"`

	// Geocoding fills tracking addresses from device coordinates.
	Geocoding *GeocodingConfig `json:"geocoding" yaml:"geocoding"`

	// PubSub configuration for tracking event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for shipping-label QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines password hashing and token lifetimes.
type AuthConfig struct {
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
}

// TrackingConfig tunes the tracking timeline.
type TrackingConfig struct {
	// EnforceTransitions rejects out-of-order statuses. Unset means enforced.
	EnforceTransitions    *bool `json:"enforceTransitions" yaml:"enforceTransitions"`
	EstimatedDeliveryDays int   `json:"estimatedDeliveryDays" yaml:"estimatedDeliveryDays"`
}

// Enforce reports whether status transitions are checked.
func (c *TrackingConfig) Enforce() bool {
	return c == nil || c.EnforceTransitions == nil || *c.EnforceTransitions
}

type ChainConfig struct {
	Enabled        bool          `json:"enabled" yaml:"enabled"`
	RPCURL         string        `json:"rpcUrl" yaml:"rpcUrl"`
	ReceiptTimeout time.Duration `json:"receiptTimeout" yaml:"receiptTimeout"`
}

type GeocodingConfig struct {
	Enabled    bool          `json:"enabled" yaml:"enabled"`
	BaseURL    string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent  string        `json:"userAgent" yaml:"userAgent"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
	MaxElapsed time.Duration `json:"maxElapsed" yaml:"maxElapsed"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint of the notifier (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// PushAudience is the audience of push OIDC tokens. Empty means the push URL.
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`

	// PushServiceAccount, when set, must match the email claim of push tokens.
	PushServiceAccount string `json:"pushServiceAccount" yaml:"pushServiceAccount"`
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

type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// applyDefaults fills optional sections so consumers never see nil.
func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = defaultBcryptCost
	}
	if c.Auth.AccessTTL == 0 {
		c.Auth.AccessTTL = defaultAccessTTL
	}
	if c.Auth.RefreshTTL == 0 {
		c.Auth.RefreshTTL = defaultRefreshTTL
	}

	if c.Tracking == nil {
		c.Tracking = &TrackingConfig{}
	}
	if c.Tracking.EstimatedDeliveryDays <= 0 {
		c.Tracking.EstimatedDeliveryDays = defaultEstimatedDeliveryDays
	}

	if c.Chain == nil {
		c.Chain = &ChainConfig{}
	}
	if c.Chain.ReceiptTimeout == 0 {
		c.Chain.ReceiptTimeout = defaultReceiptTimeout
	}

	if c.Geocoding == nil {
		c.Geocoding = &GeocodingConfig{}
	}
	if c.Geocoding.BaseURL == "" {
		c.Geocoding.BaseURL = defaultGeocodingBaseURL
	}
	if c.Geocoding.UserAgent == "" {
		c.Geocoding.UserAgent = defaultGeocodingUserAgent
	}
	if c.Geocoding.Timeout == 0 {
		c.Geocoding.Timeout = defaultGeocodingTimeout
	}
	if c.Geocoding.MaxElapsed == 0 {
		c.Geocoding.MaxElapsed = defaultGeocodingMaxElapsed
	}

	if c.QRCode == nil {
		c.QRCode = &QRCodeConfig{}
	}
	if c.QRCode.Size == 0 {
		c.QRCode.Size = defaultQRCodeSize
	}
	if c.QRCode.ErrorCorrectionLevel == "" {
		c.QRCode.ErrorCorrectionLevel = defaultQRCodeLevel
	}

	if c.Metrics == nil {
		c.Metrics = &MetricsConfig{}
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
}
