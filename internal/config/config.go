package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"geoquiz/internal/domain"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    domain.GameConfig
	Logging LoggingConfig
}

// ServerConfig holds network-related configuration
type ServerConfig struct {
	Bind          string
	Port          int
	DiscoveryPort int
	HostName      string // name shown to players discovering the session
	GracePeriod   time.Duration
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Bind:          getEnv("GEOQUIZ_BIND", "0.0.0.0"),
			Port:          getEnvInt("GEOQUIZ_PORT", 8080),
			DiscoveryPort: getEnvInt("GEOQUIZ_DISCOVERY_PORT", 8081),
			HostName:      getEnv("GEOQUIZ_SESSION_NAME", defaultHostName()),
			GracePeriod:   getEnvDuration("GEOQUIZ_GRACE_PERIOD", 3*time.Second),
		},
		Game: domain.DefaultGameConfig(),
		Logging: LoggingConfig{
			Level:  getEnv("GEOQUIZ_LOG_LEVEL", "info"),
			Format: getEnv("GEOQUIZ_LOG_FORMAT", "text"),
		},
	}
}

// Validate checks ports and game parameters.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Server.DiscoveryPort < 0 || c.Server.DiscoveryPort > 65535 {
		return fmt.Errorf("invalid discovery port: %d", c.Server.DiscoveryPort)
	}
	if c.Server.Port == c.Server.DiscoveryPort {
		return fmt.Errorf("game and discovery ports must differ")
	}
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("%w: questions %d-%d, time %d-%ds, at least one difficulty level",
			err, domain.MinQuestions, domain.MaxQuestions, domain.MinTime, domain.MaxTime)
	}
	return nil
}

// GameAddr returns the game listener address in host:port format
func (c *Config) GameAddr() string {
	return net.JoinHostPort(c.Server.Bind, strconv.Itoa(c.Server.Port))
}

func defaultHostName() string {
	name, err := os.Hostname()
	if err != nil {
		return "geoquiz host"
	}
	return name
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvDuration returns an environment variable as a duration or a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
