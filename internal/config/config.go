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

const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	DB        DBConfig
	Server    ServerConfig
	LLM       LLMConfig
	Redis     RedisConfig
	CacheTTLs CacheTTLConfig
	Logger    LoggerConfig
	Upload    UploadConfig
	Batch     BatchConfig
}

type DBConfig struct {
	Driver string
	DSN    string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// LLMConfig configures the generation collaborator. The API key is read once here
// and handed to the client constructor.
type LLMConfig struct {
	Provider    string
	Model       string
	APIKey      string
	ServerURL   string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CacheTTLConfig struct {
	GeneratedQuiz string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type UploadConfig struct {
	MaxBytes int
}

type BatchConfig struct {
	Concurrency int
}

func setDefaults(v *viper.Viper, env string) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 30)

	v.SetDefault("db.driver", "sqlite3")
	if env == EnvTesting {
		v.SetDefault("db.dsn", "file:autoquiz_test.db")
	} else {
		v.SetDefault("db.dsn", "file:autoquiz.db")
	}

	v.SetDefault("llm.provider", "openai")
	v.SetDefault("llm.model", "gpt-3.5-turbo")
	v.SetDefault("llm.server_url", "http://localhost:11434")
	v.SetDefault("llm.temperature", 0.7)
	v.SetDefault("llm.max_tokens", 500)
	v.SetDefault("llm.timeout", 30)

	v.SetDefault("redis.db", 0)
	v.SetDefault("cache_ttls.generated_quiz", "24h")

	v.SetDefault("logger.level", "info")
	v.SetDefault("upload.max_bytes", 20*1024*1024)
	v.SetDefault("batch.concurrency", 4)
}

// LoadConfig reads config.yaml (when present) and the environment. ENV selects the
// development, testing or production profile.
func LoadConfig() (*Config, error) {
	env := os.Getenv("ENV")
	if env == "" {
		env = EnvDevelopment
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if env == EnvTesting {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v, env)

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

	cfg := &Config{
		Env: env,
		DB: DBConfig{
			Driver: v.GetString("db.driver"),
			DSN:    v.GetString("db.dsn"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			IdleTimeout:  time.Duration(v.GetInt("server.idle_timeout")) * time.Second,
		},
		LLM: LLMConfig{
			Provider:    v.GetString("llm.provider"),
			Model:       v.GetString("llm.model"),
			APIKey:      v.GetString("llm.api_key"),
			ServerURL:   v.GetString("llm.server_url"),
			Temperature: v.GetFloat64("llm.temperature"),
			MaxTokens:   v.GetInt("llm.max_tokens"),
			Timeout:     time.Duration(v.GetInt("llm.timeout")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			GeneratedQuiz: v.GetString("cache_ttls.generated_quiz"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   env,
		},
		Upload: UploadConfig{
			MaxBytes: v.GetInt("upload.max_bytes"),
		},
		Batch: BatchConfig{
			Concurrency: v.GetInt("batch.concurrency"),
		},
	}

	// Legacy deployment variable names.
	if uri := os.Getenv("DATABASE_URI"); uri != "" {
		cfg.DB.DSN = uri
	}
	if env == EnvTesting {
		if uri := os.Getenv("TEST_DATABASE_URI"); uri != "" {
			cfg.DB.DSN = uri
		}
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = key
	}
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		cfg.Redis.Address = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		cfg.Redis.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted sensibly.
func (c *Config) Validate() error {
	switch c.DB.Driver {
	case "sqlite3", "postgres", "oracle":
	default:
		return fmt.Errorf("unsupported db.driver %q", c.DB.Driver)
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("db.dsn must be set")
	}
	switch c.LLM.Provider {
	case "openai", "ollama":
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", c.Server.Port)
	}
	return nil
}

// ParseTTLStringOrDefault parses a duration such as "24h", returning defaultTTL when the
// string is empty, malformed or not positive.
func (c *Config) ParseTTLStringOrDefault(ttlString string, defaultTTL time.Duration) time.Duration {
	if ttlString == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(ttlString)
	if err != nil || d <= 0 {
		return defaultTTL
	}
	return d
}
