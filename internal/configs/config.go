package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"findhome-bot/internal/constants"

	"github.com/joho/godotenv"
)

// AppConfig хранит всю конфигурацию бота
type AppConfig struct {
	AppName     string
	FiltersFile string

	Discord      DiscordConfig
	Provider     ProviderConfig
	Session      SessionConfig
	HTTP         HTTPConfig
	RabbitMQ     RabbitMQConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

type DiscordConfig struct {
	Token         string
	GuildID       string // пустая строка - slash-команда регистрируется глобально
	CommandPrefix string
	CommandName   string
}

type ProviderConfig struct {
	SearchURL   string
	Timeout     time.Duration
	RandomDelay time.Duration
}

type SessionConfig struct {
	Timeout time.Duration
}

type HTTPConfig struct {
	Enabled        bool
	Port           string
	AllowedOrigins []string
}

type RabbitMQConfig struct {
	URL      string // пустая строка - события не публикуются
	Exchange string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// LoadConfig загружает конфигурацию из переменных окружения.
// .env-файл необязателен: без него используются только переменные окружения.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		AppName:     getEnvAsString("APP_NAME", "findhome-bot"),
		FiltersFile: getEnvAsString("FILTERS_FILE", ""),
	}

	cfg.Discord.Token = strings.TrimSpace(os.Getenv("DISCORD_BOT_TOKEN"))
	if cfg.Discord.Token == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN environment variable is required")
	}
	cfg.Discord.GuildID = getEnvAsString("DISCORD_GUILD_ID", "")
	cfg.Discord.CommandPrefix = getEnvAsString("COMMAND_PREFIX", "!")
	cfg.Discord.CommandName = getEnvAsString("COMMAND_NAME", "findhome")
	if cfg.Discord.CommandName == "" {
		return nil, fmt.Errorf("COMMAND_NAME must not be empty")
	}

	cfg.Provider.SearchURL = getEnvAsString("PROVIDER_URL", constants.RealtorSearchURL)
	cfg.Provider.Timeout = getEnvAsDuration("PROVIDER_TIMEOUT", 15*time.Second)
	cfg.Provider.RandomDelay = getEnvAsDuration("PROVIDER_DELAY", 0)

	cfg.Session.Timeout = getEnvAsDuration("SESSION_TIMEOUT", 60*time.Second)
	if cfg.Session.Timeout <= 0 {
		return nil, fmt.Errorf("SESSION_TIMEOUT must be positive, got %s", cfg.Session.Timeout)
	}

	cfg.HTTP.Enabled = getEnvAsBool("HTTP_ENABLED", true)
	cfg.HTTP.Port = getEnvAsString("HTTP_PORT", "8080")
	cfg.HTTP.AllowedOrigins = getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"})

	cfg.RabbitMQ.URL = getEnvAsString("RABBITMQ_URL", "")
	cfg.RabbitMQ.Exchange = getEnvAsString("RABBITMQ_EXCHANGE", constants.DefaultEventsExchange)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}

		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

// getEnvAsBool читает переменную окружения как bool или возвращает значение по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valDur, err := time.ParseDuration(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as duration: %v. Using default value: %s\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valDur
}

// getEnvAsList разбирает список через запятую, пустые элементы отбрасываются
func getEnvAsList(key string, defaultValue []string) []string {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(valStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
