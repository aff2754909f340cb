package config

import "os"

type Config struct {
	Port              string
	PropertyDBHost    string
	PropertyDBPort    string
	PropertyCacheHost string
	PropertyCachePort string
	JaegerAddress     string
	SeedOnStartup     bool
}

func NewConfig() *Config {
	return &Config{
		Port:              os.Getenv("PROPERTIES_SERVICE_PORT"),
		PropertyDBHost:    os.Getenv("PROPERTY_DB_HOST"),
		PropertyDBPort:    os.Getenv("PROPERTY_DB_PORT"),
		PropertyCacheHost: os.Getenv("PROPERTY_CACHE_HOST"),
		PropertyCachePort: os.Getenv("PROPERTY_CACHE_PORT"),
		JaegerAddress:     os.Getenv("JAEGER_ADDRESS"),
		SeedOnStartup:     os.Getenv("SEED_ON_STARTUP") == "true",
	}
}
