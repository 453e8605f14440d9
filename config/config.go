package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"vesselwatch/internal/util"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultMaxBoundaryFile    = "32MB"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`

		// AutoMigrate creates missing tables when the database connects
		AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

		// SlowQueryThreshold marks gorm queries logged as slow
		SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
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

	// Redis backs the boundary state store when engine.geofence.stateStore is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Engine configuration for geofencing, retries and dispatch
	Engine *EngineConfig `json:"engine" yaml:"engine"`

	// BorderImport restricts where boundary files may be loaded from
	BorderImport *BorderImportConfig `json:"borderImport" yaml:"borderImport"`

	// Auth verifies operator bearer tokens on the API; an empty secret disables it
	Auth *AuthConfig `json:"auth" yaml:"auth"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the redis connection
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	// KeyPrefix namespaces every key written by the service
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "noop" to drop events
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic carrying position samples (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Pub/Sub topic for token invalidation and notification status events
	EventsTopicID string `json:"eventsTopicId" yaml:"eventsTopicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Audience expected on Pub/Sub push OIDC tokens; empty disables verification
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// EngineConfig groups the tunables of the notification engine
type EngineConfig struct {
	// Port of the engine's push and tracking HTTP server
	Port int `json:"port" yaml:"port"`

	Geofence  GeofenceConfig  `json:"geofence" yaml:"geofence"`
	Retry     RetryConfig     `json:"retry" yaml:"retry"`
	Scheduler SchedulerConfig `json:"scheduler" yaml:"scheduler"`
	Dedup     DedupConfig     `json:"dedup" yaml:"dedup"`
	Tracking  TrackingConfig  `json:"tracking" yaml:"tracking"`
}

// GeofenceConfig defines how positions are evaluated against boundaries
type GeofenceConfig struct {
	// Distance in meters under which a ship is warned about a boundary
	WarningThresholdMeters float64 `json:"warningThresholdMeters" yaml:"warningThresholdMeters"`

	// Notification type codes raised for each event
	NearWarningTypeCode string `json:"nearWarningTypeCode" yaml:"nearWarningTypeCode"`
	CrossedTypeCode     string `json:"crossedTypeCode" yaml:"crossedTypeCode"`

	// StateStore selects the boundary state backend: "postgres", "redis" or "memory"
	StateStore string `json:"stateStore" yaml:"stateStore"`

	// Maximum compare-and-swap attempts per sample
	MaxCASAttempts int `json:"maxCasAttempts" yaml:"maxCasAttempts"`
}

// RetryConfig defines the exponential backoff between delivery attempts
type RetryConfig struct {
	BaseDelay       time.Duration `json:"baseDelay" yaml:"baseDelay"`
	MaxDelay        time.Duration `json:"maxDelay" yaml:"maxDelay"`
	DefaultMaxRetry int           `json:"defaultMaxRetry" yaml:"defaultMaxRetry"`
}

// SchedulerConfig defines the recurring sweeps
type SchedulerConfig struct {
	// Cron spec of the due-notification sweep (seconds field enabled)
	SweepSpec string `json:"sweepSpec" yaml:"sweepSpec"`

	// Cron spec of the orphan-claim recovery sweep
	RecoverySpec string `json:"recoverySpec" yaml:"recoverySpec"`

	// Cron spec of the boundary reload
	BoundaryRefreshSpec string `json:"boundaryRefreshSpec" yaml:"boundaryRefreshSpec"`

	BatchSize             int           `json:"batchSize" yaml:"batchSize"`
	Workers               int           `json:"workers" yaml:"workers"`
	AttemptTimeout        time.Duration `json:"attemptTimeout" yaml:"attemptTimeout"`
	ClaimLivenessDeadline time.Duration `json:"claimLivenessDeadline" yaml:"claimLivenessDeadline"`
}

// DedupConfig defines duplicate suppression
type DedupConfig struct {
	CoalescingWindow time.Duration `json:"coalescingWindow" yaml:"coalescingWindow"`
}

// TrackingConfig defines per-ship position polling
type TrackingConfig struct {
	// Start trackers for every tracking-enabled ship when the engine boots
	AutoStart bool `json:"autoStart" yaml:"autoStart"`

	PollInterval time.Duration `json:"pollInterval" yaml:"pollInterval"`

	// Base URL of the GPS provider; empty disables tracking
	SourceEndpoint string        `json:"sourceEndpoint" yaml:"sourceEndpoint"`
	SourceTimeout  time.Duration `json:"sourceTimeout" yaml:"sourceTimeout"`
}

// BorderImportConfig defines boundary file import
type BorderImportConfig struct {
	// URL schemes accepted by the importer, e.g. file, gs, mem
	AllowedSchemes []string `json:"allowedSchemes" yaml:"allowedSchemes"`
	// Largest boundary file read, e.g. "32MB"
	MaxFileSize string `json:"maxFileSize" yaml:"maxFileSize"`
}

// AuthConfig defines how operator access tokens are verified
type AuthConfig struct {
	// HMAC secret shared with the platform's identity service
	Secret string `json:"secret" yaml:"secret"`
	// Expected iss claim; empty accepts any issuer
	Issuer string `json:"issuer" yaml:"issuer"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	// echo panics on a malformed body limit, fail at load instead
	if _, err := util.ParseBytes(cfg.HTTP.MaxRequestBodySize); err != nil {
		return nil, errors.Wrap(err, "http.maxRequestBodySize")
	}

	if cfg.BorderImport == nil {
		cfg.BorderImport = &BorderImportConfig{}
	}
	if strings.TrimSpace(cfg.BorderImport.MaxFileSize) == "" {
		cfg.BorderImport.MaxFileSize = defaultMaxBoundaryFile
	}
	if _, err := util.ParseBytes(cfg.BorderImport.MaxFileSize); err != nil {
		return nil, errors.Wrap(err, "borderImport.maxFileSize")
	}

	if cfg.Engine == nil {
		cfg.Engine = &EngineConfig{}
	}
	cfg.Engine.applyDefaults()

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func (e *EngineConfig) applyDefaults() {
	if e.Port <= 0 {
		e.Port = 8081
	}
	if e.Geofence.WarningThresholdMeters <= 0 {
		e.Geofence.WarningThresholdMeters = 1000
	}
	if e.Geofence.StateStore == "" {
		e.Geofence.StateStore = "postgres"
	}
	if e.Geofence.MaxCASAttempts <= 0 {
		e.Geofence.MaxCASAttempts = 5
	}
	if e.Retry.BaseDelay <= 0 {
		e.Retry.BaseDelay = 30 * time.Second
	}
	if e.Retry.MaxDelay <= 0 {
		e.Retry.MaxDelay = time.Hour
	}
	if e.Retry.DefaultMaxRetry <= 0 {
		e.Retry.DefaultMaxRetry = 3
	}
	if e.Scheduler.SweepSpec == "" {
		e.Scheduler.SweepSpec = "*/10 * * * * *"
	}
	if e.Scheduler.RecoverySpec == "" {
		e.Scheduler.RecoverySpec = "0 * * * * *"
	}
	if e.Scheduler.BoundaryRefreshSpec == "" {
		e.Scheduler.BoundaryRefreshSpec = "0 */5 * * * *"
	}
	if e.Scheduler.BatchSize <= 0 {
		e.Scheduler.BatchSize = 100
	}
	if e.Scheduler.Workers <= 0 {
		e.Scheduler.Workers = 8
	}
	if e.Scheduler.AttemptTimeout <= 0 {
		e.Scheduler.AttemptTimeout = 15 * time.Second
	}
	if e.Scheduler.ClaimLivenessDeadline <= 0 {
		e.Scheduler.ClaimLivenessDeadline = 2 * time.Minute
	}
	if e.Dedup.CoalescingWindow <= 0 {
		e.Dedup.CoalescingWindow = 10 * time.Minute
	}
	if e.Tracking.PollInterval <= 0 {
		e.Tracking.PollInterval = 30 * time.Second
	}
	if e.Tracking.SourceTimeout <= 0 {
		e.Tracking.SourceTimeout = 10 * time.Second
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
