package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"symptom-assistant/internal/core"
	"symptom-assistant/internal/db"
	"symptom-assistant/internal/llm"
)

// LLM providers.
const (
	ProviderOpenAI  = "openai"
	ProviderGateway = "gateway"
)

type Config struct {
	DatabaseDriver   string
	DatabaseURL      string
	LogNotifyChannel string
	LLMProvider      string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	ChatModel        string
	GatewayURL       string
	DefaultLocale    string
	AnswerMaxChars   int
	Port             string
}

func Load() (*Config, error) {
	driver := strings.ToLower(os.Getenv("DATABASE_DRIVER"))
	if driver == "" {
		driver = db.DriverSQLite
	}
	dbURL := os.Getenv("DATABASE_URL")
	switch driver {
	case db.DriverSQLite:
		if dbURL == "" {
			dbURL = db.DefaultDSN
		}
	case db.DriverPostgres:
		if dbURL == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is required for postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	provider := strings.ToLower(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = ProviderOpenAI
	}
	gatewayURL := os.Getenv("LLM_GATEWAY_URL")
	switch provider {
	case ProviderOpenAI:
	case ProviderGateway:
		if gatewayURL == "" {
			return nil, fmt.Errorf("LLM_GATEWAY_URL environment variable is required for the gateway provider")
		}
	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q", provider)
	}

	chatModel := os.Getenv("OPENAI_MODEL_CHAT")
	if chatModel == "" {
		chatModel = llm.DefaultChatModel
	}

	locale := os.Getenv("DEFAULT_LOCALE")
	if locale == "" {
		locale = "ru"
	}
	if _, err := core.LookupLocale(locale); err != nil {
		return nil, fmt.Errorf("DEFAULT_LOCALE: %w", err)
	}

	maxChars := core.DefaultMaxChars
	if v := os.Getenv("ANSWER_MAX_CHARS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("ANSWER_MAX_CHARS must be a positive integer, got %q", v)
		}
		maxChars = n
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		DatabaseDriver:   driver,
		DatabaseURL:      dbURL,
		LogNotifyChannel: os.Getenv("LOG_NOTIFY_CHANNEL"),
		LLMProvider:      provider,
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    os.Getenv("OPENAI_BASE_URL"),
		ChatModel:        chatModel,
		GatewayURL:       gatewayURL,
		DefaultLocale:    locale,
		AnswerMaxChars:   maxChars,
		Port:             port,
	}, nil
}

// NewLLMClient builds the completion client selected by LLMProvider.
func (c *Config) NewLLMClient() llm.Client {
	if c.LLMProvider == ProviderGateway {
		return llm.NewGatewayClient(c.GatewayURL, c.ChatModel)
	}
	return llm.NewOpenAIClient(c.OpenAIAPIKey, c.OpenAIBaseURL, c.ChatModel)
}
