package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/annel0/mmo-guard/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации.

type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Metadata MetadataConfig `yaml:"metadata"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

type LoggingConfig struct {
	Dir          string `yaml:"dir"`
	ConsoleLevel string `yaml:"console_level"`
	FileLevel    string `yaml:"file_level"`
}

type MetadataConfig struct {
	RedisAddr      string `yaml:"redis_addr"`
	RedisPassword  string `yaml:"redis_password"`
	RedisDB        int    `yaml:"redis_db"`
	KeyPrefix      string `yaml:"key_prefix"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type MetricsConfig struct {
	Port int `yaml:"port"`
}

// Default возвращает конфигурацию по умолчанию (все значения берутся из геттеров)
func Default() *Config {
	return &Config{}
}

// GetDir возвращает каталог логов
func (l *LoggingConfig) GetDir() string {
	return getStringWithEnvFallback(l.Dir, "GUARD_LOG_DIR", "logs")
}

// Levels разбирает уровни логирования для консоли и файла
func (l *LoggingConfig) Levels() (logging.LogLevel, logging.LogLevel, error) {
	console, err := logging.ParseLevel(l.ConsoleLevel)
	if err != nil {
		return logging.INFO, logging.TRACE, fmt.Errorf("logging.console_level: %w", err)
	}

	if l.FileLevel == "" {
		return console, logging.TRACE, nil
	}
	file, err := logging.ParseLevel(l.FileLevel)
	if err != nil {
		return logging.INFO, logging.TRACE, fmt.Errorf("logging.file_level: %w", err)
	}
	return console, file, nil
}

// GetRedisAddr возвращает адрес Redis с метками сущностей. Пустая строка
// означает, что загрузка меток из Redis отключена.
func (m *MetadataConfig) GetRedisAddr() string {
	return getStringWithEnvFallback(m.RedisAddr, "GUARD_REDIS_ADDR", "")
}

// GetTimeout возвращает таймаут операций с Redis
func (m *MetadataConfig) GetTimeout() time.Duration {
	if m.TimeoutSeconds > 0 {
		return time.Duration(m.TimeoutSeconds) * time.Second
	}
	return 5 * time.Second
}

// GetPort возвращает порт Prometheus метрик с поддержкой fallback значений
func (m *MetricsConfig) GetPort() int {
	return getPortWithEnvFallback(m.Port, "GUARD_METRICS_PORT", 2112)
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}

	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}

	return defaultPort
}

// getStringWithEnvFallback возвращает значение с приоритетом: config -> env -> default
func getStringWithEnvFallback(configValue, envVar, defaultValue string) string {
	if configValue != "" {
		return configValue
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		return envVal
	}
	return defaultValue
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV GUARD_CONFIG, иначе возвращает
// конфигурацию по умолчанию.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("GUARD_CONFIG")
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
