package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	DB     DBConfig
	Redis  RedisConfig
	LLM    LLMConfig
	Quiz   QuizConfig
	Batch  BatchConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  string
}

type LoggerConfig struct {
	Level string
	Env   string
}

// DBConfig selects the store. Driver is one of memory, sqlite, mysql or oracle.
type DBConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	Path            string // sqlite database file
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig is optional; an empty Address disables hint tracking.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

// LLMConfig selects the text generation backend: gemini, openai, anthropic or ollama.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

type QuizConfig struct {
	Locale                string
	ExemplarsFile         string
	LeaderboardSize       int
	HintTTL               time.Duration
	SharedEmptyIsNotFound bool
}

type TopicConfig struct {
	Subject string `mapstructure:"subject"`
	Scope   string `mapstructure:"scope"`
	Choice  bool   `mapstructure:"choice"`
}

type BatchConfig struct {
	Topics      []TopicConfig
	Count       int
	Concurrency int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.cors_origins", "*")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "quiz")
	v.SetDefault("database.path", "quiz.db")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "5m")

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("llm.provider", "gemini")
	v.SetDefault("llm.model", "gemini-2.0-flash")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.timeout", "30s")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 1024)

	v.SetDefault("quiz.locale", "ko")
	v.SetDefault("quiz.exemplars_file", "")
	v.SetDefault("quiz.leaderboard_size", 10)
	v.SetDefault("quiz.hint_ttl", "24h")
	v.SetDefault("quiz.shared_empty_is_not_found", true)

	v.SetDefault("batch.count", 5)
	v.SetDefault("batch.concurrency", 4)
}

// LoadConfig reads config.yaml and applies environment overrides such as
// DATABASE_DRIVER or LLM_API_KEY. A missing file leaves the defaults in place.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(envReplacer())
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func envReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			CORSOrigins:  v.GetString("server.cors_origins"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		DB: DBConfig{
			Driver:          strings.ToLower(v.GetString("database.driver")),
			Host:            v.GetString("database.host"),
			Port:            v.GetInt("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.name"),
			Path:            v.GetString("database.path"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(v.GetString("llm.provider")),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			BaseURL:     v.GetString("llm.base_url"),
			Timeout:     v.GetDuration("llm.timeout"),
			Temperature: v.GetFloat64("llm.temperature"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
		},
		Quiz: QuizConfig{
			Locale:                v.GetString("quiz.locale"),
			ExemplarsFile:         v.GetString("quiz.exemplars_file"),
			LeaderboardSize:       v.GetInt("quiz.leaderboard_size"),
			HintTTL:               v.GetDuration("quiz.hint_ttl"),
			SharedEmptyIsNotFound: v.GetBool("quiz.shared_empty_is_not_found"),
		},
		Batch: BatchConfig{
			Count:       v.GetInt("batch.count"),
			Concurrency: v.GetInt("batch.concurrency"),
		},
	}

	if err := v.UnmarshalKey("batch.topics", &cfg.Batch.Topics); err != nil {
		return nil, fmt.Errorf("failed to decode batch.topics: %w", err)
	}
	return cfg, nil
}
