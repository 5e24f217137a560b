package config

import (
	"log"
	"os"

	"github.com/spf13/viper"
)

// LLMConfig holds the optional coach-model provider settings. The API key is
// only ever read from the environment, never from the yaml file.
type LLMConfig struct {
	APIKey  string `mapstructure:"-"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // "memory" or a SQLite file path
	}
	RoutineRewardTokens int64     `mapstructure:"routine_reward_tokens"`
	LLM                 LLMConfig `mapstructure:"llm"`
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from file and environment variables.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("../config") // for running from locations like tests

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "memory")
	viper.SetDefault("routine_reward_tokens", 10)
	viper.SetDefault("llm.model", "gpt-4o-mini")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] Configuration file (config.yaml) not found. Using environment variables and defaults.")
		} else {
			log.Fatalf("FATAL: [Config] Error reading configuration file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal configuration into AppConfig struct: %v", err)
	}

	// Environment variable overrides
	if port := os.Getenv("SERVER_PORT"); port != "" {
		AppConfig.Server.Port = port
		log.Printf("INFO: [Config] Server port overridden by environment variable SERVER_PORT: %s", port)
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		AppConfig.Database.DSN = dsn
		log.Println("INFO: [Config] Database DSN overridden by environment variable DATABASE_DSN.")
	}

	AppConfig.LLM.APIKey = os.Getenv("LLM_API_KEY")
	if AppConfig.LLM.APIKey == "" {
		log.Println("WARN: [Config] LLM_API_KEY is not set. The coach briefing endpoint will be disabled.")
	}

	log.Println("INFO: [Config] Configuration loading complete.")
}
