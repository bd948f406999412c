package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Redis     RedisConfig
	Game      GameConfig
	Questions QuestionsConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig carries the gameplay tuning knobs. The defaults reproduce
// the original rules: 10 xp per correct answer and a session time limit
// of 60 + 15*level seconds.
type GameConfig struct {
	DefaultLanguage          string
	XPPerCorrectAnswer       int
	TimeLimitBaseSeconds     int
	TimeLimitPerLevelSeconds int
	SessionTokenTTL          time.Duration
}

// QuestionsConfig controls the generated question bank.
type QuestionsConfig struct {
	MaxLevel int
	PerLevel int
	Seed     int64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10)
	viper.SetDefault("server.write_timeout", 10)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("game.default_language", "pt")
	viper.SetDefault("game.xp_per_correct_answer", 10)
	viper.SetDefault("game.time_limit_base_seconds", 60)
	viper.SetDefault("game.time_limit_per_level_seconds", 15)
	viper.SetDefault("game.session_token_ttl", "720h")
	viper.SetDefault("questions.max_level", 5)
	viper.SetDefault("questions.per_level", 20)
	viper.SetDefault("questions.seed", 1)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Game: GameConfig{
			DefaultLanguage:          viper.GetString("game.default_language"),
			XPPerCorrectAnswer:       viper.GetInt("game.xp_per_correct_answer"),
			TimeLimitBaseSeconds:     viper.GetInt("game.time_limit_base_seconds"),
			TimeLimitPerLevelSeconds: viper.GetInt("game.time_limit_per_level_seconds"),
			SessionTokenTTL:          viper.GetDuration("game.session_token_ttl"),
		},
		Questions: QuestionsConfig{
			MaxLevel: viper.GetInt("questions.max_level"),
			PerLevel: viper.GetInt("questions.per_level"),
			Seed:     viper.GetInt64("questions.seed"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	return config, nil
}
