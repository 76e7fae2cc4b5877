package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	ResourceAPI  ResourceAPIConfig  `toml:"resource_api"`
	AuthProvider AuthProviderConfig `toml:"auth_provider"`
	Admin        AdminConfig        `toml:"admin"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// ResourceAPIConfig настройки клиента внешнего Resource API
// Внешний API владеет всеми данными (автомобили, бронирования,
// отзывы, избранное); сервис не хранит их сам
type ResourceAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// AuthProviderConfig настройки клиента провайдера аутентификации и хранилища
type AuthProviderConfig struct {
	URL           string `toml:"url"`
	AnonKey       string `toml:"anon_key"`
	Timeout       int    `toml:"timeout"` // секунды
	StorageBucket string `toml:"storage_bucket"`
}

// AdminConfig настройки привилегированной учётной записи
// Email сравнивается с email текущей сессии; это подсказка для UI,
// реальная проверка прав выполняется внешним API
type AdminConfig struct {
	Email string `toml:"email"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.ResourceAPI.URL == "" {
		return fmt.Errorf("config: resource_api.url is required")
	}
	if c.AuthProvider.URL == "" {
		return fmt.Errorf("config: auth_provider.url is required")
	}
	if c.Admin.Email == "" {
		return fmt.Errorf("config: admin.email is required")
	}
	return nil
}
