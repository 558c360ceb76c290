package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	DB       DBConfig       `yaml:"db"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Redis    RedisConfig    `yaml:"redis"`
	EduLegit EduLegitConfig `yaml:"edulegit"`
	Host     HostConfig     `yaml:"host"`
	Settings SettingsConfig `yaml:"settings"`
}

type HTTPConfig struct {
	Address string        `yaml:"address"`
	Timeout time.Duration `yaml:"timeout"`
}

type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"` //nolint:gosec // config struct, not hardcoded cred
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type KafkaConfig struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

type RedisConfig struct {
	Address string `yaml:"address"`
}

// EduLegitConfig holds the remote API connection settings. The connect and
// total timeouts are short on purpose: init runs on the submission request
// path and must not hold it for long.
type EduLegitConfig struct {
	BaseURL        string        `yaml:"base_url"`
	APIToken       string        `yaml:"api_token"`
	WebhookToken   string        `yaml:"webhook_token"`
	CallbackURL    string        `yaml:"callback_url"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	Timeout        time.Duration `yaml:"timeout"`
}

type HostConfig struct {
	Release       string `yaml:"release"`
	PluginRelease string `yaml:"plugin_release"`
}

// SettingsConfig carries the global defaults for the per-assignment feature
// flags. Assignment-level overrides live in the database and win over these.
type SettingsConfig struct {
	EnablePlagiarism bool `yaml:"enable_plagiarism"`
	EnableAI         bool `yaml:"enable_ai"`
	EnableScreen     bool `yaml:"enable_screen"`
	EnableCamera     bool `yaml:"enable_camera"`
	EnableAttention  bool `yaml:"enable_attention"`
}

func Load() (*Config, error) {
	configPath := getConfigPath()
	data, err := os.ReadFile(configPath) //nolint:gosec // config path from env/flag
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	setDefaults(&cfg)
	overrideFromEnv(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func getConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}

	possiblePaths := []string{
		"config/config.yaml",
		"/etc/edulegit-service/config.yaml",
		"./config.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return "config.yaml"
}

func setDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.Timeout == 0 {
		cfg.HTTP.Timeout = 30 * time.Second
	}

	if cfg.EduLegit.BaseURL == "" {
		cfg.EduLegit.BaseURL = "https://api.edulegit.com"
	}
	if cfg.EduLegit.ConnectTimeout == 0 {
		cfg.EduLegit.ConnectTimeout = 7 * time.Second
	}
	if cfg.EduLegit.Timeout == 0 {
		cfg.EduLegit.Timeout = 10 * time.Second
	}

	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = "edulegit-submission-events"
	}
}

func overrideFromEnv(cfg *Config) {
	if val := os.Getenv("HTTP_ADDRESS"); val != "" {
		cfg.HTTP.Address = val
	}

	if val := os.Getenv("DB_HOST"); val != "" {
		cfg.DB.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			cfg.DB.Port = port
		}
	}
	if val := os.Getenv("DB_USER"); val != "" {
		cfg.DB.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		cfg.DB.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		cfg.DB.DBName = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		cfg.DB.SSLMode = val
	}

	if val := os.Getenv("KAFKA_BROKERS"); val != "" {
		cfg.Kafka.Brokers = strings.Split(val, ",")
	}
	if val := os.Getenv("KAFKA_TOPIC"); val != "" {
		cfg.Kafka.Topic = val
	}

	if val := os.Getenv("REDIS_ADDRESS"); val != "" {
		cfg.Redis.Address = val
	}

	if val := os.Getenv("EDULEGIT_BASE_URL"); val != "" {
		cfg.EduLegit.BaseURL = val
	}
	if val := os.Getenv("EDULEGIT_API_TOKEN"); val != "" {
		cfg.EduLegit.APIToken = val
	}
	if val := os.Getenv("EDULEGIT_WEBHOOK_TOKEN"); val != "" {
		cfg.EduLegit.WebhookToken = val
	}
	if val := os.Getenv("EDULEGIT_CALLBACK_URL"); val != "" {
		cfg.EduLegit.CallbackURL = val
	}
}

func validateConfig(cfg *Config) error {
	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.DBName == "" {
		return fmt.Errorf("database configuration is incomplete")
	}

	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("at least one Kafka broker must be specified")
	}

	if cfg.EduLegit.APIToken == "" {
		return fmt.Errorf("EduLegit API token must be set")
	}

	if cfg.EduLegit.CallbackURL == "" {
		return fmt.Errorf("EduLegit callback URL must be set")
	}

	return nil
}

// GlobalSettings flattens the config-level defaults into the key space used
// by assignment-level overrides.
func (c *Config) GlobalSettings() map[string]string {
	return map[string]string{
		"enable_plagiarism": strconv.FormatBool(c.Settings.EnablePlagiarism),
		"enable_ai":         strconv.FormatBool(c.Settings.EnableAI),
		"enable_screen":     strconv.FormatBool(c.Settings.EnableScreen),
		"enable_camera":     strconv.FormatBool(c.Settings.EnableCamera),
		"enable_attention":  strconv.FormatBool(c.Settings.EnableAttention),
		"ws_token":          c.EduLegit.WebhookToken,
	}
}
