package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. SNAP_SERVER_PORT.
const EnvPrefix = "SNAP"

// Load reads the server configuration from, in increasing precedence,
// defaults, an optional config.yaml in the working directory, a .env file
// and environment variables. The plain PORT and GEMINI_API_KEY /
// OPENAI_API_KEY variables are honoured as aliases.
func Load() (*Config, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	v.SetDefault("server.port", 3000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.max_body_bytes", 10<<20)
	v.SetDefault("llm.provider", ProviderGemini)
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", "gemini-1.5-flash")
	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.openai_base_url", "")
	v.SetDefault("llm.openai_model", "gpt-4o-mini")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.timeout_seconds", 60)

	aliases := map[string]string{
		"server.port":        "PORT",
		"llm.gemini_api_key": "GEMINI_API_KEY",
		"llm.openai_api_key": "OPENAI_API_KEY",
	}
	for key, alias := range aliases {
		if err := v.BindEnv(key, envName(key), alias); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := decode(v, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadClient reads the terminal client configuration. Flags in fs, when
// set, take precedence over the environment; fs may be nil.
func LoadClient(fs *pflag.FlagSet) (*ClientConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	v.SetDefault("client.server_url", "http://localhost:3000")
	v.SetDefault("client.timeout_seconds", 90)
	v.SetDefault("client.log_level", "warn")

	if fs != nil {
		flagKeys := map[string]string{
			"server":    "client.server_url",
			"timeout":   "client.timeout_seconds",
			"log-level": "client.log_level",
		}
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg ClientConfig
	if err := decode(v, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newViper() (*viper.Viper, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

func decode(v *viper.Viper, out any) error {
	if err := v.Unmarshal(out); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(out); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
