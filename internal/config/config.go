// Package config provides configuration for the registry server.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr        string `mapstructure:"http_addr"`
	GRPCAddr        string `mapstructure:"grpc_addr"`
	MySQLDSN        string `mapstructure:"mysql_dsn"`
	RedisAddr       string `mapstructure:"redis_addr"`
	ArtistAccount   string `mapstructure:"artist_account"`
	RegistryAccount string `mapstructure:"registry_account"`
	WorkerCount     int    `mapstructure:"worker_count"`
	EventQueueSize  int    `mapstructure:"event_queue_size"`
}

func Defaults() Config {
	return Config{
		HTTPAddr:        ":8080",
		GRPCAddr:        ":50051",
		MySQLDSN:        "root:root@tcp(localhost:3306)/artregistry?parseTime=true",
		RedisAddr:       "localhost:6379",
		ArtistAccount:   "artist",
		RegistryAccount: "registry",
		WorkerCount:     4,
		EventQueueSize:  10000,
	}
}

// Load reads the yaml config at path (optional) with ARTREGISTRY_*
// environment variables taking precedence over the file.
func Load(path string) (Config, error) {
	defaults := Defaults()

	v := viper.New()
	v.SetDefault("http_addr", defaults.HTTPAddr)
	v.SetDefault("grpc_addr", defaults.GRPCAddr)
	v.SetDefault("mysql_dsn", defaults.MySQLDSN)
	v.SetDefault("redis_addr", defaults.RedisAddr)
	v.SetDefault("artist_account", defaults.ArtistAccount)
	v.SetDefault("registry_account", defaults.RegistryAccount)
	v.SetDefault("worker_count", defaults.WorkerCount)
	v.SetDefault("event_queue_size", defaults.EventQueueSize)

	v.SetEnvPrefix("ARTREGISTRY")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.ArtistAccount == cfg.RegistryAccount {
		return Config{}, fmt.Errorf("artist_account and registry_account must differ")
	}
	return cfg, nil
}
