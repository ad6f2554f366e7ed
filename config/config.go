package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Healthcare assistant specifics
	Embedding EmbeddingConfig
	Router    RouterConfig
	Routes    []RouteConfig
	Clinic    ClinicConfig
	RateLimit RateLimitConfig
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

// EmbeddingConfig selects and configures the embedding provider backing
// message classification.
type EmbeddingConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

type RouterConfig struct {
	Threshold float64
	CacheSize int
}

// RouteConfig declares one intent route and its example utterances.
type RouteConfig struct {
	Name       string   `yaml:"name"`
	Utterances []string `yaml:"utterances"`
}

type ClinicConfig struct {
	Location string
}

type RateLimitConfig struct {
	ChatPerMin int
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

	// Embedding provider
	cfg.Embedding.Provider = viper.GetString("embedding.provider")
	cfg.Embedding.APIKey = expandEnvVar(viper.GetString("embedding.api_key"))
	cfg.Embedding.BaseURL = viper.GetString("embedding.base_url")
	cfg.Embedding.Model = viper.GetString("embedding.model")
	cfg.Embedding.Timeout = viper.GetDuration("embedding.timeout")
	if voyageKey := viper.GetString("voyage_api_key"); voyageKey != "" && cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = voyageKey
	}
	if openaiKey := viper.GetString("openai_api_key"); openaiKey != "" && cfg.Embedding.APIKey == "" {
		cfg.Embedding.APIKey = openaiKey
	}

	// Router
	cfg.Router.Threshold = viper.GetFloat64("router.threshold")
	cfg.Router.CacheSize = viper.GetInt("router.cache_size")

	// Routes
	if viper.IsSet("routes") {
		routesRaw := viper.Get("routes")
		if routesList, ok := routesRaw.([]interface{}); ok {
			for _, r := range routesList {
				if routeMap, ok := r.(map[string]interface{}); ok {
					route := RouteConfig{
						Name:       getStringFromMap(routeMap, "name"),
						Utterances: getStringSliceFromMap(routeMap, "utterances"),
					}
					cfg.Routes = append(cfg.Routes, route)
				}
			}
		}
	}
	if len(cfg.Routes) == 0 {
		cfg.Routes = DefaultRoutes()
	}

	if err := validateRoutes(cfg.Routes); err != nil {
		return nil, err
	}

	// Clinic
	cfg.Clinic.Location = viper.GetString("clinic.location")

	// Rate limit
	cfg.RateLimit.ChatPerMin = viper.GetInt("rate_limit.chat_per_min")

	return cfg, nil
}

// DefaultRoutes returns the built-in intent routes the service ships with.
func DefaultRoutes() []RouteConfig {
	return []RouteConfig{
		{
			Name: "Pre_Auth",
			Utterances: []string{
				"I need to get prior authorization for a medical procedure.",
				"Can you help me with the prior authorization process?",
				"I need approval for an MRI. Can you help?",
			},
		},
		{
			Name: "Appointment_Schedular",
			Utterances: []string{
				"I need to schedule an appointment. What information do you need from me?",
				"Can you help me schedule a procedure for next week?",
				"Is there availability for an MRI appointment this Friday?",
			},
		},
	}
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// Embedding defaults
	viper.SetDefault("embedding.provider", "voyage")
	viper.SetDefault("embedding.timeout", "10s")

	// Router defaults
	viper.SetDefault("router.threshold", 0.75)
	viper.SetDefault("router.cache_size", 512)

	viper.SetDefault("clinic.location", "Main Clinic")
	viper.SetDefault("rate_limit.chat_per_min", 60)
}

// validateRoutes rejects configured routes the registry would refuse anyway,
// so misconfiguration fails at startup rather than on the first request.
func validateRoutes(routes []RouteConfig) error {
	seen := make(map[string]bool, len(routes))
	for i, route := range routes {
		if route.Name == "" {
			return fmt.Errorf("route %d: name is required", i)
		}
		if len(route.Utterances) == 0 {
			return fmt.Errorf("route %s: at least one utterance is required", route.Name)
		}
		if seen[route.Name] {
			return fmt.Errorf("route %s: duplicate name", route.Name)
		}
		seen[route.Name] = true
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

func getStringSliceFromMap(m map[string]interface{}, key string) []string {
	val, ok := m[key]
	if !ok {
		return nil
	}

	items, ok := val.([]interface{})
	if !ok {
		return nil
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if str, ok := item.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
