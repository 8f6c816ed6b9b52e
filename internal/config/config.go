package config

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env       string          `yaml:"env" env:"ENV" env-default:"local"`
	Server    ServerConfig    `yaml:"rest"`
	Storage   StorageConfig   `yaml:"storage"`
	Documents DocumentsConfig `yaml:"documents"`
	Sessions  SessionsConfig  `yaml:"sessions"`
}

type ServerConfig struct {
	Port           string   `yaml:"port" env:"PORT" env-default:"8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

type StorageConfig struct {
	// Driver is one of bolt, sqlite, postgres, memory.
	Driver      string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"bolt"`
	Path        string `yaml:"path" env:"STORAGE_PATH" env-default:"./data/docdesk.db"`
	DatabaseUrl string `yaml:"database_url" env:"DATABASE_URL"`
	Key         string `yaml:"key" env:"STORAGE_KEY" env-default:"documentTemplates"`
}

// DSN is what storage.Open expects for the configured driver.
func (s StorageConfig) DSN() string {
	if s.Driver == "postgres" {
		return s.DatabaseUrl
	}
	return s.Path
}

type DocumentsConfig struct {
	BaseURL     string `yaml:"base_url" env:"DOCUMENTS_BASE_URL" env-required:"true"`
	DefaultLogo string `yaml:"default_logo" env:"DOCUMENTS_DEFAULT_LOGO"`
}

type SessionsConfig struct {
	IdleTTL       time.Duration `yaml:"idle_ttl" env:"SESSIONS_IDLE_TTL" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env:"SESSIONS_SWEEP_INTERVAL" env-default:"1m"`
}

func MustLoad() *Config {
	path := fetchConfigPath()

	if path == "" {
		panic("Config file not found in path")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		panic("Config file not found in path: " + path)
	}

	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Load reads the YAML file at path, then applies environment overrides.
func Load(path string) (*Config, error) {
	var config Config
	log.Printf("Loading config from %s", path)
	if err := cleanenv.ReadConfig(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "config path")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}
	if res == "" {
		res = "./config/local.yaml"
	}

	return res
}
