package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultHttpPort       = 8080
	defaultLogDir         = "logs"
	defaultHistorySize    = 100
	defaultMaxInputLength = 4096
	defaultMaxBodyBytes   = 1 << 20
)

type Config struct {
	Env            string `yaml:"env" env-default:"local"`
	HttpPort       int    `yaml:"http_port" env-default:"8080"`
	LogDir         string `yaml:"log_dir" env-default:"logs"`
	HistorySize    int    `yaml:"history_size" env-default:"100"`
	MaxInputLength int    `yaml:"max_input_length" env-default:"4096"` // до первого '#'
	MaxBodyBytes   int64  `yaml:"max_body_bytes" env-default:"1048576"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Env == "" {
		c.Env = "local"
	}
	if c.HttpPort == 0 {
		c.HttpPort = defaultHttpPort
	}
	if c.LogDir == "" {
		c.LogDir = defaultLogDir
	}
	if c.HistorySize <= 0 {
		c.HistorySize = defaultHistorySize
	}
	if c.MaxInputLength <= 0 {
		c.MaxInputLength = defaultMaxInputLength
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaultMaxBodyBytes
	}
}

func MustLoad() *Config {
	// .env необязателен, переменные окружения могут быть заданы снаружи
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to read .env: %v", err)
	}
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		log.Fatal("CONFIG_PATH env is required")
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}
