package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	GeoIP    GeoIPConfig    `mapstructure:"geoip"`
	Bloom    BloomConfig    `mapstructure:"bloom"`
	RocketMQ RocketMQConfig `mapstructure:"rocketmq"`
	Recorder RecorderConfig `mapstructure:"recorder"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Stats    StatsConfig    `mapstructure:"stats"`
	Sweep    SweepConfig    `mapstructure:"sweep"`
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

// SQLConfig represents the relational store configuration. The DSN
// selects the driver: a "sqlite://" prefix opens an embedded database,
// anything else is treated as a MySQL DSN.
type SQLConfig struct {
	DSN string `mapstructure:"dsn"`
}

// RedisConfig represents Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// GeoIPConfig points at a MaxMind City database on disk. An empty path
// disables lookups; events then carry "unknown" geo fields.
type GeoIPConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// BloomConfig represents the slug Bloom Filter configuration
type BloomConfig struct {
	Capacity  int64   `mapstructure:"capacity"`
	ErrorRate float64 `mapstructure:"error_rate"`
}

// RocketMQConfig represents RocketMQ configuration. An empty nameserver
// disables the MQ pipeline and click events are persisted in-process.
type RocketMQConfig struct {
	NameServer string `mapstructure:"nameserver"`
	Topic      string `mapstructure:"topic"`
	Group      string `mapstructure:"group"`
}

// RecorderConfig represents the click recorder configuration
type RecorderConfig struct {
	QueueSize int `mapstructure:"queue_size"`
}

// AuthConfig carries the secrets for the API boundary and IP hashing.
type AuthConfig struct {
	JWTSecret    string `mapstructure:"jwt_secret"`
	IPHashSecret string `mapstructure:"ip_hash_secret"`
}

// StatsConfig represents aggregation query limits
type StatsConfig struct {
	QueryTimeout  time.Duration `mapstructure:"query_timeout"`
	MaxExportRows int           `mapstructure:"max_export_rows"`
}

// SweepConfig represents the expiry sweep configuration
type SweepConfig struct {
	Interval time.Duration `mapstructure:"interval"`
}

// Global config instance
var cfg *Config

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Set defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Expand environment variables
	cfg.Database.Redis.Password = expandEnv(cfg.Database.Redis.Password)
	cfg.Database.SQL.DSN = expandEnv(cfg.Database.SQL.DSN)
	cfg.Auth.JWTSecret = expandEnv(cfg.Auth.JWTSecret)
	cfg.Auth.IPHashSecret = expandEnv(cfg.Auth.IPHashSecret)

	return cfg, nil
}

// Get returns the global config instance
func Get() *Config {
	return cfg
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("bloom.capacity", 100000000)
	v.SetDefault("bloom.error_rate", 0.01)
	v.SetDefault("rocketmq.topic", "click_events")
	v.SetDefault("rocketmq.group", "lark_consumer_group")
	v.SetDefault("recorder.queue_size", 1000)
	v.SetDefault("stats.query_timeout", 10*time.Second)
	v.SetDefault("stats.max_export_rows", 10000)
	v.SetDefault("sweep.interval", time.Hour)
}

// expandEnv expands environment variables in the string
func expandEnv(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envKey := s[2 : len(s)-1]
		return viper.GetString(envKey)
	}
	return s
}
