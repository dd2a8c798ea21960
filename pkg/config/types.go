package config

import (
	"time"
)

type StoreKind string

const (
	StoreKindFS    StoreKind = "fs"
	StoreKindRedis StoreKind = "redis"
)

type RedisSettings struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type StoreSettings struct {
	Kind      StoreKind     `yaml:"kind"`
	Directory string        `yaml:"directory"`
	Redis     RedisSettings `yaml:"redis"`
	TTL       time.Duration `yaml:"ttl"`
}

type CatalogSettings struct {
	Path string `yaml:"path"`
}

type Config struct {
	LogLevel string          `yaml:"logLevel"`
	Store    StoreSettings   `yaml:"store"`
	Catalog  CatalogSettings `yaml:"catalog"`
}
