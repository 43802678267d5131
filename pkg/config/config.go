package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	WhatsApp WhatsAppConfig `mapstructure:"whatsapp"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
}

type WhatsAppConfig struct {
	// DBPath is the sqlite file backing the whatsmeow session store.
	DBPath   string `mapstructure:"db_path"`
	LogLevel string `mapstructure:"log_level"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
}

// Load reads the yaml config at path, applying defaults. The OpenAI
// credential may come from the OPENAI_API_KEY environment variable instead
// of the file. A missing file is not an error; defaults plus the
// environment variable are enough to run.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("whatsapp.db_path", "bot.db")
	v.SetDefault("whatsapp.log_level", "ERROR")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.max_tokens", 256)
	v.SetDefault("openai.temperature", 0.7)

	v.AutomaticEnv()

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if apiKey := v.GetString("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}

	return &config, nil
}
