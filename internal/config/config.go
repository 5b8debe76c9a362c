package config

// Provider names accepted by llm.provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Config holds the API server configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port           int      `mapstructure:"port"            validate:"required,gt=0,lt=65536"`
	LogLevel       string   `mapstructure:"log_level"       validate:"required,oneof=debug info warn error"`
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
	MaxBodyBytes   int64    `mapstructure:"max_body_bytes"  validate:"required,gt=0"`
}

// LLMConfig contains all LLM integration related settings.
//
// The provider credential is deliberately not required here: a server
// without a key still starts, and every generation request then fails with
// a configuration error.
type LLMConfig struct {
	Provider           string `mapstructure:"provider"             validate:"required,oneof=gemini openai"`
	GeminiAPIKey       string `mapstructure:"gemini_api_key"`
	ModelName          string `mapstructure:"model_name"           validate:"required"`
	OpenAIAPIKey       string `mapstructure:"openai_api_key"`
	OpenAIBaseURL      string `mapstructure:"openai_base_url"      validate:"omitempty,url"`
	OpenAIModel        string `mapstructure:"openai_model"         validate:"required"`
	PromptTemplatePath string `mapstructure:"prompt_template_path" validate:"omitempty,file"`
	TimeoutSeconds     int    `mapstructure:"timeout_seconds"      validate:"required,gt=0"`
}

// APIKey returns the credential of the selected provider.
func (c LLMConfig) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIAPIKey
	}
	return c.GeminiAPIKey
}

// ClientConfig holds the terminal client configuration.
type ClientConfig struct {
	Client ClientSettings `mapstructure:"client" validate:"required"`
}

// ClientSettings are the GenerationClient settings.
type ClientSettings struct {
	ServerURL      string `mapstructure:"server_url"      validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	LogLevel       string `mapstructure:"log_level"       validate:"required,oneof=debug info warn error"`
}
