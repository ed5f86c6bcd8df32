package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBUsername string `yaml:"db_username"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"port"`
	DBName     string `yaml:"db_name"`
	DisableTLS bool   `yaml:"disable_tls"`

	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`

	BaseUrl string `yaml:"base_url"`

	// AdminPasswordHash is the bcrypt hash of the shared admin secret the
	// Edit*/Reset* operations are gated on. It is a single shop-wide value,
	// not a per-user credential.
	AdminPasswordHash string `yaml:"admin_password_hash"`
}

func NewConfig() (*Config, error) {
	return Load("config.yaml")
}

func Load(path string) (*Config, error) {
	var c Config

	yamlFile, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, &c)
	if err != nil {
		return nil, err
	}

	if c.DBUsername == "" || c.DBPassword == "" || c.DBHost == "" || c.DBName == "" {
		return nil, errors.New("missing required database configuration")
	}
	if c.AdminPasswordHash == "" {
		return nil, errors.New("missing admin_password_hash")
	}

	return &c, nil
}
