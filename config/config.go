package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Conflict resolution specifics
	GoogleCalendar GoogleCalendarConfig
	RuleStore      RuleStoreConfig
	Resolver       ResolverConfig
	RateLimit      RateLimitConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// RuleStoreConfig configures the external priority-rules service and its cache.
type RuleStoreConfig struct {
	URL       string
	Timeout   string
	CacheSize int
	CacheTTL  string
}

// ResolverConfig configures the rescheduling engine.
type ResolverConfig struct {
	Mode                     string // "propose" or "apply"
	Prioritization           string // "oracle" or "given-order"
	DurationToleranceMinutes int
	SlotGranularityMinutes   int
	MaxCandidateSlots        int
	WindowDays               int
	Timezone                 string
}

// RateLimitConfig configures per-client request throttling.
type RateLimitConfig struct {
	Enabled         bool
	RequestsPerMin  int
	Burst           int
	ClientCacheSize int
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.RuleStore.URL = viper.GetString("rule_store.url")
	cfg.RuleStore.Timeout = viper.GetString("rule_store.timeout")
	cfg.RuleStore.CacheSize = viper.GetInt("rule_store.cache_size")
	cfg.RuleStore.CacheTTL = viper.GetString("rule_store.cache_ttl")
	if ruleStoreURL := viper.GetString("rule_store_url"); ruleStoreURL != "" {
		cfg.RuleStore.URL = ruleStoreURL
	}

	cfg.Resolver.Mode = viper.GetString("resolver.mode")
	cfg.Resolver.Prioritization = viper.GetString("resolver.prioritization")
	cfg.Resolver.DurationToleranceMinutes = viper.GetInt("resolver.duration_tolerance_minutes")
	cfg.Resolver.SlotGranularityMinutes = viper.GetInt("resolver.slot_granularity_minutes")
	cfg.Resolver.MaxCandidateSlots = viper.GetInt("resolver.max_candidate_slots")
	cfg.Resolver.WindowDays = viper.GetInt("resolver.window_days")
	cfg.Resolver.Timezone = viper.GetString("resolver.timezone")
	if err := validateResolverConfig(&cfg.Resolver); err != nil {
		return nil, err
	}

	cfg.RateLimit.Enabled = viper.GetBool("rate_limit.enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")
	cfg.RateLimit.ClientCacheSize = viper.GetInt("rate_limit.client_cache_size")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// The oracle is optional: with prioritization "given-order" the engine
	// never calls an LLM, so an empty provider list is only fatal when the
	// oracle is actually selected.
	if cfg.Resolver.Prioritization == "oracle" && len(cfg.LLM.Providers) == 0 {
		return nil, fmt.Errorf("resolver.prioritization is %q but no LLM providers configured - please add llm.providers section to config.yaml", cfg.Resolver.Prioritization)
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rule_store.timeout", "5s")
	viper.SetDefault("rule_store.cache_size", 256)
	viper.SetDefault("rule_store.cache_ttl", "5m")

	viper.SetDefault("resolver.mode", "propose")
	viper.SetDefault("resolver.prioritization", "oracle")
	viper.SetDefault("resolver.duration_tolerance_minutes", 15)
	viper.SetDefault("resolver.slot_granularity_minutes", 30)
	viper.SetDefault("resolver.max_candidate_slots", 5)
	viper.SetDefault("resolver.window_days", 7)
	viper.SetDefault("resolver.timezone", "UTC")

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)
	viper.SetDefault("rate_limit.client_cache_size", 1024)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

func validateResolverConfig(cfg *ResolverConfig) error {
	switch cfg.Mode {
	case "propose", "apply":
	default:
		return fmt.Errorf("resolver.mode must be \"propose\" or \"apply\", got %q", cfg.Mode)
	}
	switch cfg.Prioritization {
	case "oracle", "given-order":
	default:
		return fmt.Errorf("resolver.prioritization must be \"oracle\" or \"given-order\", got %q", cfg.Prioritization)
	}
	if cfg.DurationToleranceMinutes < 0 {
		return fmt.Errorf("resolver.duration_tolerance_minutes must not be negative")
	}
	if cfg.WindowDays <= 0 {
		return fmt.Errorf("resolver.window_days must be positive")
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
