package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig

	Todoist TodoistConfig
	Export  ExportConfig
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

// TodoistConfig carries the OAuth application credentials and the
// upstream endpoints. The URLs are overridable so tests and on-prem
// mirrors can point elsewhere.
type TodoistConfig struct {
	ClientID     string
	ClientSecret string
	AuthURL      string
	TokenURL     string
	APIBaseURL   string
	Scopes       []string
}

type ExportConfig struct {
	RateLimitPerMin int
	StateTTLMinutes int
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

	// Todoist OAuth application
	cfg.Todoist.ClientID = viper.GetString("todoist.client_id")
	cfg.Todoist.ClientSecret = viper.GetString("todoist.client_secret")
	cfg.Todoist.AuthURL = viper.GetString("todoist.auth_url")
	cfg.Todoist.TokenURL = viper.GetString("todoist.token_url")
	cfg.Todoist.APIBaseURL = viper.GetString("todoist.api_base_url")
	if clientID := viper.GetString("todoist_client_id"); clientID != "" {
		cfg.Todoist.ClientID = clientID
	}
	if clientSecret := viper.GetString("todoist_client_secret"); clientSecret != "" {
		cfg.Todoist.ClientSecret = clientSecret
	}

	// Scopes arrive as a YAML list from config.yaml or as one
	// comma-separated string from env; normalize both spellings.
	var scopes []string
	for _, raw := range viper.GetStringSlice("todoist.scopes") {
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				scopes = append(scopes, s)
			}
		}
	}
	cfg.Todoist.Scopes = scopes

	// Export behavior
	cfg.Export.RateLimitPerMin = viper.GetInt("export.rate_limit_per_min")
	cfg.Export.StateTTLMinutes = viper.GetInt("export.state_ttl_minutes")

	if cfg.Todoist.ClientID == "" || cfg.Todoist.ClientSecret == "" {
		return nil, fmt.Errorf("todoist client_id and client_secret are required - set TODOIST_CLIENT_ID and TODOIST_CLIENT_SECRET")
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

	viper.SetDefault("todoist.auth_url", "https://todoist.com/oauth/authorize")
	viper.SetDefault("todoist.token_url", "https://todoist.com/oauth/access_token")
	viper.SetDefault("todoist.api_base_url", "https://api.todoist.com")
	viper.SetDefault("todoist.scopes", "data:read")

	viper.SetDefault("export.rate_limit_per_min", 30)
	viper.SetDefault("export.state_ttl_minutes", 10)
}
