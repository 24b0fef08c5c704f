package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/globook/globook-backend/pkg/circuit_breaker"
	"github.com/globook/globook-backend/pkg/kafka"
	"github.com/globook/globook-backend/pkg/logger"
	"github.com/globook/globook-backend/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"GLOBOOK_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"GLOBOOK_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

type Config struct {
	Server         HTTPServer             `yaml:"server"`
	Database       postgres.DB            `yaml:"db"`
	Kafka          kafka.Config           `yaml:"kafka"`
	Log            logger.Log             `yaml:"log"`
	CircuitBreaker circuit_breaker.Config `yaml:"circuitBreaker"`
	SecretKey      string                 `yaml:"-" envconfig:"SECRET_KEY"`
	Debug          bool                   `yaml:"debug" envconfig:"DEBUG"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment. Options set defaults that the
// environment may override.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
	})

	return cfg
}

func Load(ops ...Option) (*Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// String renders the config as JSON with credentials masked.
func (c Config) String() string {
	if c.SecretKey != "" {
		c.SecretKey = "***"
	}
	c.Database.DSN = postgres.RedactDSN(c.Database.DSN)
	jscfg, _ := json.MarshalIndent(c, "", "	") //nolint:errcheck
	return string(jscfg)
}

func (c Config) Print() {
	fmt.Println(c.String())
}
